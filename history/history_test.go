package history

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thefrederiksen/azprune/types"
)

func openStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestSaveAndListScans(t *testing.T) {
	store := openStore(t)

	records := []types.Record{
		{Name: "disk1", ID: "/a", Cost: 6.4},
		{Name: "ip1", ID: "/b", Cost: 3.65},
	}

	runID, err := store.SaveScan("sub-1", "Production", records)
	require.NoError(t, err)
	assert.NotEmpty(t, runID)

	entries, err := store.ListScans(0)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	entry := entries[0]
	assert.Equal(t, runID, entry.RunID)
	assert.Equal(t, "sub-1", entry.SubscriptionID)
	assert.Equal(t, "Production", entry.SubscriptionName)
	assert.Equal(t, 2, entry.RecordCount)
	assert.InDelta(t, 10.05, entry.TotalWaste, 0.001)
	assert.Len(t, entry.Records, 2)
}

func TestListScansNewestFirstWithLimit(t *testing.T) {
	store := openStore(t)

	var lastID string
	for i := 0; i < 5; i++ {
		id, err := store.SaveScan("sub-1", "Prod", []types.Record{
			{Name: fmt.Sprintf("r%d", i), ID: fmt.Sprintf("/%d", i)},
		})
		require.NoError(t, err)
		lastID = id
	}

	entries, err := store.ListScans(3)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, lastID, entries[0].RunID)
	assert.Equal(t, "r4", entries[0].Records[0].Name)
}

func TestGetScan(t *testing.T) {
	store := openStore(t)

	runID, err := store.SaveScan("sub-1", "Prod", []types.Record{{Name: "x", ID: "/x"}})
	require.NoError(t, err)

	entry, err := store.GetScan(runID)
	require.NoError(t, err)
	require.NotNil(t, entry)
	assert.Equal(t, "x", entry.Records[0].Name)

	missing, err := store.GetScan("no-such-run")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestOpenEmptyList(t *testing.T) {
	store := openStore(t)

	entries, err := store.ListScans(10)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
