package detectors

import (
	"fmt"
	"strings"

	"github.com/thefrederiksen/azprune/costs"
	"github.com/thefrederiksen/azprune/types"
)

// Priority 1: resources that bill $50-3000+/month while doing nothing.

const queryDDoSPlans = `
Resources
| where type == "microsoft.network/ddosprotectionplans"
| where isnull(properties.virtualNetworks) or array_length(properties.virtualNetworks) == 0
| project id, name, resourceGroup, location, subscriptionId,
          provisioningState = properties.provisioningState
`

var ddosPlans = Detector{
	Name:         "DDoS Protection Plans",
	Kind:         "ddos_plan",
	ResourceType: "microsoft.network/ddosprotectionplans",
	TypeDisplay:  "DDoS Plan",
	Query:        queryDDoSPlans,
	transform: func(row types.Row) (float64, []string) {
		details := []string{"No protected VNets", "HIGH COST"}
		if state := row.Str("provisioningState", ""); state != "" {
			details = append(details, "State: "+state)
		}
		return costs.DDoSPlan(), details
	},
}

const queryAppGateways = `
Resources
| where type =~ 'microsoft.network/applicationgateways'
| extend backendPoolsCount = array_length(properties.backendAddressPools)
| mvexpand backendPools = properties.backendAddressPools
| extend backendIPCount = array_length(backendPools.properties.backendIPConfigurations)
| extend backendAddressesCount = array_length(backendPools.properties.backendAddresses)
| summarize backendIPCount = sum(backendIPCount), backendAddressesCount = sum(backendAddressesCount) by id, name, resourceGroup, location, subscriptionId, tier = tostring(sku.tier), capacity = toint(sku.capacity)
| where backendIPCount == 0 and backendAddressesCount == 0
`

var appGateways = Detector{
	Name:         "Application Gateways",
	Kind:         "app_gateway",
	ResourceType: "microsoft.network/applicationgateways",
	TypeDisplay:  "App Gateway",
	Query:        queryAppGateways,
	transform: func(row types.Row) (float64, []string) {
		tier := row.Str("tier", "Standard_v2")
		capacity := row.Int("capacity", 2)
		if capacity == 0 {
			capacity = 2
		}
		details := []string{
			"Tier: " + tier,
			fmt.Sprintf("Capacity: %d", capacity),
			"Empty backend pools",
		}
		return costs.AppGateway(tier, capacity), details
	},
}

const queryVNetGateways = `
Resources
| where type =~ "microsoft.network/virtualnetworkgateways"
| extend vpnClientConfiguration = properties.vpnClientConfiguration
| extend sku = sku.name
| extend gatewayType = properties.gatewayType
| join kind=leftouter (
    Resources
    | where type =~ "microsoft.network/connections"
    | mv-expand Resource = pack_array(properties.virtualNetworkGateway1.id, properties.virtualNetworkGateway2.id)
    | project Resource = tostring(Resource), connectionId = id
) on $left.id == $right.Resource
| where isempty(vpnClientConfiguration) and isempty(connectionId)
| project id, name, resourceGroup, location, subscriptionId, sku, gatewayType
`

var vnetGateways = Detector{
	Name:         "VNet Gateways",
	Kind:         "vnet_gateway",
	ResourceType: "microsoft.network/virtualnetworkgateways",
	TypeDisplay:  "VNet Gateway",
	Query:        queryVNetGateways,
	transform: func(row types.Row) (float64, []string) {
		sku := row.Str("sku", "VpnGw1")
		gatewayType := row.Str("gatewayType", "Vpn")
		details := []string{
			"Type: " + gatewayType,
			"SKU: " + sku,
			"No connections",
		}
		return costs.VNetGateway(sku), details
	},
}

const querySQLElasticPools = `
Resources
| where type =~ 'microsoft.sql/servers/elasticpools'
| extend poolId = tolower(id)
| join kind=leftouter (
    Resources
    | where type =~ 'Microsoft.Sql/servers/databases'
    | where isnotempty(properties.elasticPoolId)
    | extend elasticPoolId = tolower(tostring(properties.elasticPoolId))
    | project elasticPoolId, databaseId = id
) on $left.poolId == $right.elasticPoolId
| summarize databaseCount = countif(isnotempty(databaseId)) by id, name, resourceGroup, location, subscriptionId, sku = tostring(sku.name), tier = tostring(sku.tier), dtu = toint(properties.dtu)
| where databaseCount == 0
`

var sqlElasticPools = Detector{
	Name:         "SQL Elastic Pools",
	Kind:         "sql_elastic_pool",
	ResourceType: "microsoft.sql/servers/elasticpools",
	TypeDisplay:  "SQL Elastic Pool",
	Query:        querySQLElasticPools,
	transform: func(row types.Row) (float64, []string) {
		sku := row.Str("sku", "StandardPool")
		tier := row.Str("tier", "Standard")
		dtu := row.Int("dtu", 50)
		if dtu == 0 {
			dtu = 50
		}
		details := []string{
			"SKU: " + sku,
			"Tier: " + tier,
			fmt.Sprintf("%d eDTU", dtu),
			"No databases",
		}
		return costs.SQLElasticPool(dtu, tier), details
	},
}

const queryAppServicePlans = `
Resources
| where type =~ "microsoft.web/serverfarms"
| where properties.numberOfSites == 0
| project id, name, resourceGroup, location, subscriptionId,
          sku = sku.name,
          tier = sku.tier,
          size = sku.size,
          capacity = sku.capacity,
          kind = kind
`

var appServicePlans = Detector{
	Name:         "App Service Plans",
	Kind:         "app_service_plan",
	ResourceType: "microsoft.web/serverfarms",
	TypeDisplay:  "App Service Plan",
	Query:        queryAppServicePlans,
	transform: func(row types.Row) (float64, []string) {
		sku := row.Str("sku", "B1")
		size := row.Str("size", "B1")
		capacity := row.Int("capacity", 1)
		if capacity == 0 {
			capacity = 1
		}
		kind := strings.ToLower(row.Str("kind", ""))

		// Per-instance rate times instance count.
		cost := costs.AppServicePlan(size) * float64(capacity)

		var details []string
		switch {
		case strings.Contains(kind, "linux"):
			details = append(details, "Linux")
		case strings.Contains(kind, "windows"):
			details = append(details, "Windows")
		case strings.Contains(kind, "functionapp"):
			details = append(details, "Functions")
		}
		details = append(details, "SKU: "+sku)
		if capacity > 1 {
			details = append(details, fmt.Sprintf("%d instances", capacity))
		}
		details = append(details, "No apps")
		return cost, details
	},
}

const queryNATGateways = `
Resources
| where type == "microsoft.network/natgateways"
| where isnull(properties.subnets) or array_length(properties.subnets) == 0
| project id, name, resourceGroup, location, subscriptionId,
          publicIpAddresses = properties.publicIpAddresses,
          publicIpPrefixes = properties.publicIpPrefixes,
          idleTimeoutMinutes = properties.idleTimeoutInMinutes
`

var natGateways = Detector{
	Name:         "NAT Gateways",
	Kind:         "nat_gateway",
	ResourceType: "microsoft.network/natgateways",
	TypeDisplay:  "NAT Gateway",
	Query:        queryNATGateways,
	transform: func(row types.Row) (float64, []string) {
		idleTimeout := row.Int("idleTimeoutMinutes", 4)
		if idleTimeout == 0 {
			idleTimeout = 4
		}

		var details []string
		if n := len(row.Slice("publicIpAddresses")); n > 0 {
			details = append(details, fmt.Sprintf("%d Public IP(s)", n))
		}
		if n := len(row.Slice("publicIpPrefixes")); n > 0 {
			details = append(details, fmt.Sprintf("%d IP Prefix(es)", n))
		}
		details = append(details,
			fmt.Sprintf("Idle: %dmin", idleTimeout),
			"Not attached to subnet",
		)
		return costs.NATGateway(0), details
	},
}

const queryLoadBalancers = `
Resources
| where type == "microsoft.network/loadbalancers"
| extend backendPools = properties.backendAddressPools
| extend poolCount = array_length(backendPools)
| extend firstPoolIPs = iff(poolCount > 0, array_length(backendPools[0].properties.backendIPConfigurations), 0)
| extend firstPoolAddrs = iff(poolCount > 0, array_length(backendPools[0].properties.loadBalancerBackendAddresses), 0)
| where poolCount == 0 or (firstPoolIPs == 0 and firstPoolAddrs == 0)
| project id, name, resourceGroup, location, subscriptionId,
          sku = sku.name,
          frontendIPCount = array_length(properties.frontendIPConfigurations),
          rulesCount = array_length(properties.loadBalancingRules)
`

var loadBalancers = Detector{
	Name:         "Load Balancers",
	Kind:         "load_balancer",
	ResourceType: "microsoft.network/loadbalancers",
	TypeDisplay:  "Load Balancer",
	Query:        queryLoadBalancers,
	transform: func(row types.Row) (float64, []string) {
		sku := row.Str("sku", "Standard")
		frontendCount := row.Int("frontendIPCount", 0)
		rulesCount := row.Int("rulesCount", 0)

		details := []string{"SKU: " + sku}
		if frontendCount > 0 {
			details = append(details, fmt.Sprintf("%d Frontend IP(s)", frontendCount))
		}
		if rulesCount > 0 {
			details = append(details, fmt.Sprintf("%d rule(s)", rulesCount))
		}
		details = append(details, "Empty backend")
		return costs.LoadBalancer(sku, rulesCount), details
	},
}
