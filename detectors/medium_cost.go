package detectors

import (
	"fmt"
	"strings"

	"github.com/thefrederiksen/azprune/costs"
	"github.com/thefrederiksen/azprune/types"
)

// Priority 2: $4-25/month each, but they tend to accumulate in bulk.

const queryDisks = `
Resources
| where type == 'microsoft.compute/disks'
| where isnull(properties.managedBy)
| where properties.diskState != 'ActiveSAS'
| project name, resourceGroup, location, id, subscriptionId,
          diskSizeGB = properties.diskSizeGB,
          sku = sku.name,
          timeCreated = properties.timeCreated,
          tags
`

var disks = Detector{
	Name:         "Managed Disks",
	Kind:         "disk",
	ResourceType: "microsoft.compute/disks",
	TypeDisplay:  "Managed Disk",
	Query:        queryDisks,
	transform: func(row types.Row) (float64, []string) {
		sizeGB := row.Int("diskSizeGB", 0)
		sku := row.Str("sku", "Standard_LRS")
		tags := row.Tags("tags")

		var details []string
		if vm := vmNameFromDisk(row.Str("name", "")); vm != "" {
			details = append(details, "VM: "+vm)
		}
		details = append(details, fmt.Sprintf("%d GB", sizeGB))
		if age := formatAge(row.Str("timeCreated", "")); age != "" {
			details = append(details, "Created "+age)
		}
		if v, ok := tags["purpose"]; ok {
			details = append(details, "Purpose: "+v)
		} else if v, ok := tags["application"]; ok {
			details = append(details, "App: "+v)
		} else if v, ok := tags["environment"]; ok {
			details = append(details, "Env: "+v)
		}
		return costs.Disk(sizeGB, sku), details
	},
}

const queryPublicIPs = `
Resources
| where type == 'microsoft.network/publicipaddresses'
| where isnull(properties.ipConfiguration)
| project name, resourceGroup, location, id, subscriptionId,
          sku = sku.name,
          ipAddress = properties.ipAddress,
          allocationMethod = properties.publicIPAllocationMethod,
          tags
`

var publicIPs = Detector{
	Name:         "Public IPs",
	Kind:         "public_ip",
	ResourceType: "microsoft.network/publicipaddresses",
	TypeDisplay:  "Public IP",
	Query:        queryPublicIPs,
	transform: func(row types.Row) (float64, []string) {
		sku := row.Str("sku", "Basic")
		tags := row.Tags("tags")

		var details []string
		if ip := row.Str("ipAddress", ""); ip != "" {
			details = append(details, "IP: "+ip)
		}
		details = append(details, "SKU: "+sku)
		if alloc := row.Str("allocationMethod", ""); alloc != "" {
			details = append(details, alloc)
		}

		// Guess the original owner from the IP's name.
		nameLower := strings.ToLower(row.Str("name", ""))
		switch {
		case strings.Contains(nameLower, "aads") || strings.Contains(nameLower, "adds"):
			details = prepend(details, "Azure AD DS")
		case strings.Contains(nameLower, "vnet"):
			details = prepend(details, "VNet related")
		case strings.Contains(nameLower, "lb") || strings.Contains(nameLower, "loadbalancer"):
			details = prepend(details, "Load Balancer")
		case strings.Contains(nameLower, "gw") || strings.Contains(nameLower, "gateway"):
			details = prepend(details, "Gateway")
		}

		if v, ok := tags["purpose"]; ok {
			details = prepend(details, "Purpose: "+v)
		} else if v, ok := tags["service"]; ok {
			details = prepend(details, "Service: "+v)
		}
		return costs.PublicIP(sku), details
	},
}

const queryTrafficManagers = `
Resources
| where type == "microsoft.network/trafficmanagerprofiles"
| where isnull(properties.endpoints) or array_length(properties.endpoints) == 0
| project id, name, resourceGroup, location, subscriptionId,
          trafficRoutingMethod = properties.trafficRoutingMethod,
          profileStatus = properties.profileStatus,
          dnsName = properties.dnsConfig.relativeName
`

var trafficManagers = Detector{
	Name:            "Traffic Manager Profiles",
	Kind:            "traffic_manager",
	ResourceType:    "microsoft.network/trafficmanagerprofiles",
	TypeDisplay:     "Traffic Manager",
	Query:           queryTrafficManagers,
	defaultLocation: "global",
	transform: func(row types.Row) (float64, []string) {
		var details []string
		if routing := row.Str("trafficRoutingMethod", ""); routing != "" {
			details = append(details, "Routing: "+routing)
		}
		if status := row.Str("profileStatus", ""); status != "" {
			details = append(details, "Status: "+status)
		}
		if dns := row.Str("dnsName", ""); dns != "" {
			details = append(details, "DNS: "+dns)
		}
		details = append(details, "No endpoints")
		return costs.TrafficManager(0, 0), details
	},
}

const queryFrontDoorWAFs = `
Resources
| where type == "microsoft.network/frontdoorwebapplicationfirewallpolicies"
| where isnull(properties.securityPolicyLinks) or array_length(properties.securityPolicyLinks) == 0
| where isnull(properties.frontendEndpointLinks) or array_length(properties.frontendEndpointLinks) == 0
| project id, name, resourceGroup, location, subscriptionId,
          customRulesCount = array_length(properties.customRules.rules),
          managedRulesCount = array_length(properties.managedRules.managedRuleSets),
          policySettings = properties.policySettings
`

var frontDoorWAFs = Detector{
	Name:            "Front Door WAF Policies",
	Kind:            "frontdoor_waf",
	ResourceType:    "microsoft.network/frontdoorwebapplicationfirewallpolicies",
	TypeDisplay:     "FD WAF Policy",
	Query:           queryFrontDoorWAFs,
	defaultLocation: "global",
	transform: func(row types.Row) (float64, []string) {
		customRules := row.Int("customRulesCount", 0)
		managedRules := row.Int("managedRulesCount", 0)
		settings := row.Map("policySettings")

		var details []string
		if customRules > 0 {
			details = append(details, fmt.Sprintf("%d custom rules", customRules))
		}
		if managedRules > 0 {
			details = append(details, fmt.Sprintf("%d managed rulesets", managedRules))
		}
		if mode, ok := settings["mode"].(string); ok && mode != "" {
			details = append(details, "Mode: "+mode)
		}
		details = append(details, "Not linked")
		return costs.FrontDoorWAF(customRules), details
	},
}

const queryPrivateEndpoints = `
Resources
| where type == "microsoft.network/privateendpoints"
| mv-expand connection = properties.privateLinkServiceConnections
| mv-expand manualConnection = properties.manualPrivateLinkServiceConnections
| extend connState = coalesce(
    tostring(connection.properties.privateLinkServiceConnectionState.status),
    tostring(manualConnection.properties.privateLinkServiceConnectionState.status)
)
| where connState == "Disconnected" or connState == "Rejected"
| project id, name, resourceGroup, location, subscriptionId,
          connectionState = connState,
          subnet = tostring(split(properties.subnet.id, "/")[-1])
`

var privateEndpoints = Detector{
	Name:         "Private Endpoints",
	Kind:         "private_endpoint",
	ResourceType: "microsoft.network/privateendpoints",
	TypeDisplay:  "Private Endpoint",
	Query:        queryPrivateEndpoints,
	transform: func(row types.Row) (float64, []string) {
		details := []string{"State: " + row.Str("connectionState", "Disconnected")}
		if subnet := row.Str("subnet", ""); subnet != "" {
			details = append(details, "Subnet: "+subnet)
		}
		return costs.PrivateEndpoint(), details
	},
}

func prepend(parts []string, s string) []string {
	return append([]string{s}, parts...)
}
