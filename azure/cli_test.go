package azure

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAccount(t *testing.T) {
	data := []byte(`{
		"id": "00000000-0000-0000-0000-000000000001",
		"name": "Production",
		"tenantId": "11111111-1111-1111-1111-111111111111",
		"state": "Enabled",
		"isDefault": true
	}`)

	account, err := parseAccount(data)
	require.NoError(t, err)
	assert.Equal(t, "00000000-0000-0000-0000-000000000001", account.ID)
	assert.Equal(t, "Production", account.Name)
	assert.Equal(t, "11111111-1111-1111-1111-111111111111", account.TenantID)
	assert.True(t, account.IsDefault)
}

func TestParseAccountMissingID(t *testing.T) {
	_, err := parseAccount([]byte(`{"name": "Production"}`))
	assert.ErrorContains(t, err, "az login")
}

func TestParseAccountBadJSON(t *testing.T) {
	_, err := parseAccount([]byte(`ERROR: please run az login`))
	assert.ErrorContains(t, err, "parsing")
}

func TestParseAccountListFiltersDisabled(t *testing.T) {
	data := []byte(`[
		{"id": "sub-1", "name": "Production", "state": "Enabled", "isDefault": true},
		{"id": "sub-2", "name": "Old Sandbox", "state": "Disabled"},
		{"id": "sub-3", "name": "Dev", "state": "Enabled"}
	]`)

	accounts, err := parseAccountList(data)
	require.NoError(t, err)
	require.Len(t, accounts, 2)
	assert.Equal(t, "sub-1", accounts[0].ID)
	assert.Equal(t, "sub-3", accounts[1].ID)
}

func TestDataToRows(t *testing.T) {
	rows, err := dataToRows([]any{
		map[string]any{"name": "a", "diskSizeGB": float64(64)},
		map[string]any{"name": "b"},
	})
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "a", rows[0].Str("name", ""))
	assert.Equal(t, 64, rows[0].Int("diskSizeGB", 0))
}

func TestDataToRowsNil(t *testing.T) {
	rows, err := dataToRows(nil)
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestDataToRowsWrongShape(t *testing.T) {
	_, err := dataToRows(map[string]any{"rows": []any{}})
	assert.Error(t, err)
}
