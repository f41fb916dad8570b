package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/thefrederiksen/azprune/types"
)

func TestRiskLevels(t *testing.T) {
	tests := []struct {
		resourceType string
		want         string
	}{
		// low: no data, easily recreated
		{"microsoft.network/networkinterfaces", types.RiskLow},
		{"microsoft.network/publicipaddresses", types.RiskLow},
		{"microsoft.network/networksecuritygroups", types.RiskLow},
		{"microsoft.network/routetables", types.RiskLow},
		{"microsoft.compute/availabilitysets", types.RiskLow},
		{"microsoft.network/ipgroups", types.RiskLow},
		{"microsoft.resources/subscriptions/resourcegroups", types.RiskLow},
		{"microsoft.network/trafficmanagerprofiles", types.RiskLow},
		{"microsoft.network/frontdoorwebapplicationfirewallpolicies", types.RiskLow},
		{"microsoft.web/connections", types.RiskLow},
		{"microsoft.web/certificates", types.RiskLow},
		{"microsoft.network/loadbalancers", types.RiskLow},
		{"microsoft.web/serverfarms", types.RiskLow},
		{"microsoft.sql/servers/elasticpools", types.RiskLow},
		// medium: holds persisted state or affects connectivity
		{"microsoft.compute/disks", types.RiskMedium},
		{"microsoft.compute/virtualmachines", types.RiskMedium},
		{"microsoft.network/privatednszones", types.RiskMedium},
		{"microsoft.network/privateendpoints", types.RiskMedium},
		{"microsoft.network/applicationgateways", types.RiskMedium},
		{"microsoft.network/natgateways", types.RiskMedium},
		{"microsoft.network/ddosprotectionplans", types.RiskMedium},
		// high: cross-premises connectivity, long re-provisioning
		{"microsoft.network/virtualnetworkgateways", types.RiskHigh},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, RiskLevel(tt.resourceType), tt.resourceType)
	}
}

func TestLookupCaseInsensitive(t *testing.T) {
	g := Lookup("Microsoft.Compute/Disks")
	assert.Equal(t, "Managed Disk", g.FriendlyName)
	assert.Equal(t, types.RiskMedium, g.RiskLevel)
}

func TestLookupUnknownType(t *testing.T) {
	g := Lookup("microsoft.cache/redis")
	assert.Equal(t, types.RiskMedium, g.RiskLevel)
	assert.Equal(t, "Redis", g.FriendlyName)
	assert.NotEmpty(t, g.Description)
	assert.NotEmpty(t, g.SafeToDelete)
	assert.NotEmpty(t, g.RecoveryInfo)
}

func TestAllEntriesFullyPopulated(t *testing.T) {
	for resourceType, g := range guidance {
		assert.NotEmpty(t, g.FriendlyName, resourceType)
		assert.Contains(t, []string{types.RiskLow, types.RiskMedium, types.RiskHigh}, g.RiskLevel, resourceType)
		assert.NotEmpty(t, g.Description, resourceType)
		assert.NotEmpty(t, g.WhyOrphaned, resourceType)
		assert.NotEmpty(t, g.SafeToDelete, resourceType)
		assert.NotEmpty(t, g.CheckBeforeDelete, resourceType)
		assert.NotEmpty(t, g.DeletionImpact, resourceType)
		assert.NotEmpty(t, g.RecoveryInfo, resourceType)
	}
}

func TestBadge(t *testing.T) {
	assert.Equal(t, "[OK]", Badge(types.RiskLow))
	assert.Equal(t, "[CHECK]", Badge(types.RiskMedium))
	assert.Equal(t, "[WARN]", Badge(types.RiskHigh))
	assert.Equal(t, "[CHECK]", Badge("unknown"))
}
