package detectors

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thefrederiksen/azprune/costs"
	"github.com/thefrederiksen/azprune/types"
)

func fixedRows(rows []types.Row) QueryFunc {
	return func(ctx context.Context, query string) ([]types.Row, error) {
		return rows, nil
	}
}

func TestRegistryOrder(t *testing.T) {
	reg := Registry()
	require.Len(t, reg, 22)

	// Expensive kinds first, free clutter last.
	assert.Equal(t, "ddos_plan", reg[0].Kind)
	assert.Equal(t, "disk", reg[7].Kind)
	assert.Equal(t, "certificate", reg[21].Kind)

	seen := make(map[string]bool)
	for _, d := range reg {
		assert.NotEmpty(t, d.Name)
		assert.NotEmpty(t, d.Query)
		assert.NotEmpty(t, d.ResourceType)
		assert.NotNil(t, d.transform, d.Kind)
		assert.False(t, seen[d.Kind], "duplicate kind %s", d.Kind)
		seen[d.Kind] = true
	}
}

func TestEveryKindHasACostPriority(t *testing.T) {
	for _, d := range Registry() {
		_, ok := costs.KindPriority[d.Kind]
		assert.True(t, ok, d.Kind)
	}
}

func TestByKind(t *testing.T) {
	d, ok := ByKind("app_service_plan")
	require.True(t, ok)
	assert.Equal(t, "App Service Plans", d.Name)

	_, ok = ByKind("nope")
	assert.False(t, ok)
}

func TestDetectQueryError(t *testing.T) {
	boom := errors.New("throttled")
	_, err := disks.Detect(context.Background(), func(ctx context.Context, query string) ([]types.Row, error) {
		return nil, boom
	})
	assert.ErrorIs(t, err, boom)
}

func TestDetectBuildsOneRecordPerRow(t *testing.T) {
	rows := []types.Row{
		{"name": "nsg-a", "resourceGroup": "rg1", "location": "westeurope", "id": "/sub/a", "subscriptionId": "s1", "securityRulesCount": float64(3)},
		{"name": "nsg-b", "resourceGroup": "rg2", "location": "westeurope", "id": "/sub/b", "subscriptionId": "s1"},
	}
	records, err := nsgs.Detect(context.Background(), fixedRows(rows))
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "nsg-a", records[0].Name)
	assert.Equal(t, "microsoft.network/networksecuritygroups", records[0].Type)
	assert.Equal(t, "NSG", records[0].TypeDisplay)
	assert.Equal(t, "3 custom rules | Not attached", records[0].Details)
	assert.Equal(t, "No custom rules | Not attached", records[1].Details)
	assert.Equal(t, types.RiskLow, records[0].RiskLevel)
	assert.Equal(t, "$0", records[0].CostDisplay)
}

func TestAppServicePlanLinuxWithInstances(t *testing.T) {
	rows := []types.Row{{
		"name": "asp-prod", "resourceGroup": "rg", "location": "westus", "id": "/sub/asp", "subscriptionId": "s1",
		"sku": "B1", "tier": "Basic", "size": "B1", "capacity": float64(2), "kind": "app,linux",
	}}
	records, err := appServicePlans.Detect(context.Background(), fixedRows(rows))
	require.NoError(t, err)
	require.Len(t, records, 1)

	assert.InDelta(t, 110.0, records[0].Cost, 0.001)
	assert.Equal(t, "Linux | SKU: B1 | 2 instances | No apps", records[0].Details)
}

func TestAppServicePlanEmptyRowDefaults(t *testing.T) {
	records, err := appServicePlans.Detect(context.Background(), fixedRows([]types.Row{{}}))
	require.NoError(t, err)
	require.Len(t, records, 1)

	assert.Equal(t, "SKU: B1 | No apps", records[0].Details)
	assert.InDelta(t, 55.0, records[0].Cost, 0.001)
}

func TestDDoSPlanCostAndDetails(t *testing.T) {
	rows := []types.Row{{"name": "ddos", "id": "/x", "provisioningState": "Succeeded"}}
	records, err := ddosPlans.Detect(context.Background(), fixedRows(rows))
	require.NoError(t, err)

	assert.Equal(t, "No protected VNets | HIGH COST | State: Succeeded", records[0].Details)
	assert.Equal(t, "$2,944", records[0].CostDisplay)
	assert.Equal(t, types.RiskMedium, records[0].RiskLevel)
}

func TestVNetGatewayHighRisk(t *testing.T) {
	rows := []types.Row{{"name": "vpn-gw", "id": "/x", "sku": "VpnGw2", "gatewayType": "Vpn"}}
	records, err := vnetGateways.Detect(context.Background(), fixedRows(rows))
	require.NoError(t, err)

	assert.Equal(t, types.RiskHigh, records[0].RiskLevel)
	assert.Equal(t, "Type: Vpn | SKU: VpnGw2 | No connections", records[0].Details)
	assert.InDelta(t, 361.0, records[0].Cost, 0.001)
}

func TestGlobalResourcesDefaultLocation(t *testing.T) {
	rows := []types.Row{{"name": "tm", "id": "/x"}}
	records, err := trafficManagers.Detect(context.Background(), fixedRows(rows))
	require.NoError(t, err)
	assert.Equal(t, "global", records[0].Location)

	records, err = privateDNSZones.Detect(context.Background(), fixedRows(rows))
	require.NoError(t, err)
	assert.Equal(t, "global", records[0].Location)
}

func TestResourceGroupIsOwnGroup(t *testing.T) {
	rows := []types.Row{{"name": "rg-empty", "id": "/x", "location": "westus", "tags": map[string]any{"owner": "bob"}}}
	records, err := resourceGroups.Detect(context.Background(), fixedRows(rows))
	require.NoError(t, err)

	assert.Equal(t, "rg-empty", records[0].ResourceGroup)
	assert.Equal(t, "Owner: bob | Empty", records[0].Details)
	assert.Equal(t, 0.0, records[0].Cost)
}

func TestNICWithPublicIPAddsWaste(t *testing.T) {
	rows := []types.Row{{
		"name": "web01-nic", "id": "/x",
		"ipConfigs": []any{
			map[string]any{"properties": map[string]any{"publicIPAddress": map[string]any{"id": "/ip"}}},
		},
	}}
	records, err := nics.Detect(context.Background(), fixedRows(rows))
	require.NoError(t, err)

	assert.InDelta(t, 4.0, records[0].Cost, 0.001)
	assert.Equal(t, "VM: web01 | Has Public IP (+$4.00/mo)", records[0].Details)
}

func TestNICEmptyRowFallback(t *testing.T) {
	records, err := nics.Detect(context.Background(), fixedRows([]types.Row{{}}))
	require.NoError(t, err)
	assert.Equal(t, "No Public IP", records[0].Details)
}

func TestCertificateEmptyRowFallback(t *testing.T) {
	records, err := certificates.Detect(context.Background(), fixedRows([]types.Row{{}}))
	require.NoError(t, err)
	assert.Equal(t, "Expired certificate", records[0].Details)
}

func TestDiskDetails(t *testing.T) {
	created := time.Now().AddDate(0, -3, 0).Format(time.RFC3339)
	rows := []types.Row{{
		"name": "db01_OsDisk_1_abc123", "id": "/x",
		"diskSizeGB": float64(128), "sku": "Premium_LRS", "timeCreated": created,
	}}
	records, err := disks.Detect(context.Background(), fixedRows(rows))
	require.NoError(t, err)

	assert.Equal(t, "VM: db01 | 128 GB | Created 3 months ago", records[0].Details)
	assert.InDelta(t, 19.2, records[0].Cost, 0.001)
	assert.Equal(t, types.RiskMedium, records[0].RiskLevel)
}

func TestPublicIPNameHeuristics(t *testing.T) {
	rows := []types.Row{{
		"name": "aads-pip", "id": "/x", "sku": "Standard",
		"ipAddress": "20.1.2.3", "allocationMethod": "Static",
	}}
	records, err := publicIPs.Detect(context.Background(), fixedRows(rows))
	require.NoError(t, err)

	assert.Equal(t, "Azure AD DS | IP: 20.1.2.3 | SKU: Standard | Static", records[0].Details)
	assert.InDelta(t, 4.0, records[0].Cost, 0.001)
}

func TestStoppedVMSizeDisplay(t *testing.T) {
	rows := []types.Row{{
		"name": "vm1", "id": "/x", "vmSize": "Standard_D2s_v3", "osType": "Linux",
	}}
	records, err := stoppedVMs.Detect(context.Background(), fixedRows(rows))
	require.NoError(t, err)

	assert.Equal(t, "D2s v3 | Linux | Deallocated", records[0].Details)
	assert.InDelta(t, 15.0, records[0].Cost, 0.001)
}

func TestVMNameFromNIC(t *testing.T) {
	tests := []struct {
		nic  string
		want string
	}{
		{"web01-nic", "web01"},
		{"web01VMNic", "web01"},
		{"web01_nic", "web01"},
		{"appserver123", "appserver"},
		{"ab1", ""},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, vmNameFromNIC(tt.nic), tt.nic)
	}
}

func TestVMNameFromDisk(t *testing.T) {
	assert.Equal(t, "db01", vmNameFromDisk("db01_OsDisk_1_3fa85f64"))
	assert.Equal(t, "db01", vmNameFromDisk("db01_DataDisk_0_3fa85f64"))
	assert.Equal(t, "web", vmNameFromDisk("web-osdisk"))
	assert.Equal(t, "", vmNameFromDisk("random-disk-name"))
}

func TestFormatAge(t *testing.T) {
	now := time.Now()
	assert.Equal(t, "today", formatAge(now.Format(time.RFC3339)))
	assert.Equal(t, "1 day ago", formatAge(now.AddDate(0, 0, -1).Format(time.RFC3339)))
	assert.Equal(t, "5 days ago", formatAge(now.AddDate(0, 0, -5).Format(time.RFC3339)))
	assert.Equal(t, "2 months ago", formatAge(now.AddDate(0, 0, -65).Format(time.RFC3339)))
	assert.Equal(t, "1 year ago", formatAge(now.AddDate(0, 0, -400).Format(time.RFC3339)))
	assert.Equal(t, "", formatAge(""))
	assert.Equal(t, "", formatAge("not-a-time"))
}

func TestDaysExpired(t *testing.T) {
	past := time.Now().AddDate(0, 0, -30).Format(time.RFC3339)
	assert.Equal(t, "Expired 30 days ago", daysExpired(past))
	assert.Equal(t, "", daysExpired(time.Now().AddDate(0, 0, 7).Format(time.RFC3339)))
	assert.Equal(t, "", daysExpired(""))
}
