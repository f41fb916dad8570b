package export

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thefrederiksen/azprune/types"
)

func sampleRecords() []types.Record {
	return []types.Record{
		{
			Name:          "old-disk",
			Type:          "microsoft.compute/disks",
			TypeDisplay:   "Managed Disk",
			ResourceGroup: "rg-legacy",
			Location:      "westeurope",
			ID:            "/subscriptions/s1/resourceGroups/rg-legacy/providers/Microsoft.Compute/disks/old-disk",
			Cost:          6.4,
			CostDisplay:   "$6.40",
			Details:       "128 GB",
			RiskLevel:     types.RiskMedium,
		},
	}
}

func TestPortalURL(t *testing.T) {
	url := PortalURL("/subscriptions/s1/resourceGroups/rg/providers/x/y", "tenant-1")
	assert.Equal(t, "https://portal.azure.com/#@tenant-1/resource/subscriptions/s1/resourceGroups/rg/providers/x/y", url)

	assert.Empty(t, PortalURL("", "tenant-1"))
	assert.Empty(t, PortalURL("/id", ""))
}

func TestToCSV(t *testing.T) {
	dir := t.TempDir()

	path, err := ToCSV(sampleRecords(), dir, "My Production Sub", "tenant-1")
	require.NoError(t, err)

	assert.Contains(t, filepath.Base(path), "My-Production-Sub")
	assert.Contains(t, filepath.Base(path), "scan_")

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, csvColumns, rows[0])
	assert.Equal(t, "old-disk", rows[1][0])
	assert.Equal(t, "Managed Disk", rows[1][1])
	assert.Equal(t, "MEDIUM", rows[1][2])
	assert.NotEmpty(t, rows[1][3]) // safety guidance from the catalog
	assert.Equal(t, "$6.40", rows[1][6])
	assert.Contains(t, rows[1][9], "https://portal.azure.com/#@tenant-1/resource/")
}

func TestToCSVCreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "exports")
	_, err := ToCSV(nil, dir, "sub", "t")
	require.NoError(t, err)

	_, err = os.Stat(dir)
	assert.NoError(t, err)
}

func TestToJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	require.NoError(t, ToJSON(sampleRecords(), path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded []types.Record
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Len(t, decoded, 1)
	assert.Equal(t, "old-disk", decoded[0].Name)
	assert.Equal(t, types.RiskMedium, decoded[0].RiskLevel)
}

func TestSanitizeName(t *testing.T) {
	assert.Equal(t, "My-Prod-Sub", sanitizeName("My Prod Sub"))
	assert.Equal(t, "dev_test_", sanitizeName("dev/test!"))
	assert.Len(t, sanitizeName(string(make([]byte, 100))), 50)
}
