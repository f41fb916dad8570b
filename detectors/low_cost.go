package detectors

import (
	"fmt"
	"strings"

	"github.com/thefrederiksen/azprune/costs"
	"github.com/thefrederiksen/azprune/types"
)

// Priority 3 and 4: free or near-free clutter. Worth cleaning for hygiene
// even when the dollar amount is zero.

const queryStoppedVMs = `
Resources
| where type == 'microsoft.compute/virtualmachines'
| where properties.extended.instanceView.powerState.displayStatus == 'VM deallocated'
    or properties.extended.instanceView.powerState.code == 'PowerState/deallocated'
| project name, resourceGroup, location, id, subscriptionId,
          vmSize = properties.hardwareProfile.vmSize,
          osType = properties.storageProfile.osDisk.osType,
          timeCreated = properties.timeCreated,
          tags
`

var stoppedVMs = Detector{
	Name:         "Stopped VMs",
	Kind:         "vm",
	ResourceType: "microsoft.compute/virtualmachines",
	TypeDisplay:  "Virtual Machine",
	Query:        queryStoppedVMs,
	emptyDetails: "Stopped VM",
	transform: func(row types.Row) (float64, []string) {
		vmSize := row.Str("vmSize", "")
		tags := row.Tags("tags")

		var details []string
		if vmSize != "" {
			sizeDisplay := strings.ReplaceAll(strings.ReplaceAll(vmSize, "Standard_", ""), "_", " ")
			details = append(details, sizeDisplay)
		}
		if osType := row.Str("osType", ""); osType != "" {
			details = append(details, osType)
		}
		details = append(details, "Deallocated")
		if age := formatAge(row.Str("timeCreated", "")); age != "" {
			details = append(details, "Created "+age)
		}
		if v, ok := tags["purpose"]; ok {
			details = prepend(details, "Purpose: "+v)
		} else if v, ok := tags["environment"]; ok {
			details = prepend(details, "Env: "+v)
		}
		return costs.StoppedVM(vmSize), details
	},
}

const queryNICs = `
Resources
| where type == 'microsoft.network/networkinterfaces'
| where isnull(properties.virtualMachine)
| project name, resourceGroup, location, id, subscriptionId,
          ipConfigs = properties.ipConfigurations,
          tags
`

var nics = Detector{
	Name:         "Network Interfaces",
	Kind:         "nic",
	ResourceType: "microsoft.network/networkinterfaces",
	TypeDisplay:  "Network Interface",
	Query:        queryNICs,
	emptyDetails: "Orphaned NIC",
	transform: func(row types.Row) (float64, []string) {
		cost := costs.NIC()
		tags := row.Tags("tags")

		var details []string
		if vm := vmNameFromNIC(row.Str("name", "")); vm != "" {
			details = append(details, "VM: "+vm)
		}

		// A public IP still attached to a dead NIC keeps billing.
		hasPublicIP := false
		for _, cfg := range row.Slice("ipConfigs") {
			config, ok := cfg.(map[string]any)
			if !ok {
				continue
			}
			props, ok := config["properties"].(map[string]any)
			if !ok {
				continue
			}
			if props["publicIPAddress"] != nil {
				hasPublicIP = true
				break
			}
		}
		if hasPublicIP {
			ipCost := costs.PublicIP("Standard")
			cost += ipCost
			details = append(details, fmt.Sprintf("Has Public IP (+$%.2f/mo)", ipCost))
		} else {
			details = append(details, "No Public IP")
		}

		if v, ok := tags["vm"]; ok {
			details = prepend(details, "VM: "+v)
		} else if v, ok := tags["purpose"]; ok {
			details = append(details, "Purpose: "+v)
		}
		return cost, details
	},
}

const queryNSGs = `
Resources
| where type == "microsoft.network/networksecuritygroups"
| where isnull(properties.networkInterfaces) or array_length(properties.networkInterfaces) == 0
| where isnull(properties.subnets) or array_length(properties.subnets) == 0
| project id, name, resourceGroup, location, subscriptionId,
          securityRulesCount = array_length(properties.securityRules)
`

var nsgs = Detector{
	Name:         "Network Security Groups",
	Kind:         "nsg",
	ResourceType: "microsoft.network/networksecuritygroups",
	TypeDisplay:  "NSG",
	Query:        queryNSGs,
	transform: func(row types.Row) (float64, []string) {
		var details []string
		if rules := row.Int("securityRulesCount", 0); rules > 0 {
			details = append(details, fmt.Sprintf("%d custom rules", rules))
		} else {
			details = append(details, "No custom rules")
		}
		details = append(details, "Not attached")
		return costs.NSG(), details
	},
}

const queryRouteTables = `
Resources
| where type == "microsoft.network/routetables"
| where isnull(properties.subnets) or array_length(properties.subnets) == 0
| project id, name, resourceGroup, location, subscriptionId,
          routesCount = array_length(properties.routes),
          disableBgp = properties.disableBgpRoutePropagation
`

var routeTables = Detector{
	Name:         "Route Tables",
	Kind:         "route_table",
	ResourceType: "microsoft.network/routetables",
	TypeDisplay:  "Route Table",
	Query:        queryRouteTables,
	transform: func(row types.Row) (float64, []string) {
		var details []string
		if routes := row.Int("routesCount", 0); routes > 0 {
			details = append(details, fmt.Sprintf("%d routes", routes))
		} else {
			details = append(details, "No routes")
		}
		if row.Bool("disableBgp") {
			details = append(details, "BGP disabled")
		}
		details = append(details, "Not attached")
		return costs.RouteTable(), details
	},
}

const queryAvailabilitySets = `
Resources
| where type == "microsoft.compute/availabilitysets"
| where isnull(properties.virtualMachines) or array_length(properties.virtualMachines) == 0
| project id, name, resourceGroup, location, subscriptionId,
          faultDomains = properties.platformFaultDomainCount,
          updateDomains = properties.platformUpdateDomainCount,
          sku = sku.name
`

var availabilitySets = Detector{
	Name:         "Availability Sets",
	Kind:         "availability_set",
	ResourceType: "microsoft.compute/availabilitysets",
	TypeDisplay:  "Avail Set",
	Query:        queryAvailabilitySets,
	transform: func(row types.Row) (float64, []string) {
		faultDomains := row.Int("faultDomains", 2)
		if faultDomains == 0 {
			faultDomains = 2
		}
		updateDomains := row.Int("updateDomains", 5)
		if updateDomains == 0 {
			updateDomains = 5
		}
		details := []string{
			"SKU: " + row.Str("sku", "Classic"),
			fmt.Sprintf("FD: %d", faultDomains),
			fmt.Sprintf("UD: %d", updateDomains),
			"No VMs",
		}
		return costs.AvailabilitySet(), details
	},
}

const queryIPGroups = `
Resources
| where type == "microsoft.network/ipgroups"
| where isnull(properties.firewalls) or array_length(properties.firewalls) == 0
| where isnull(properties.firewallPolicies) or array_length(properties.firewallPolicies) == 0
| project id, name, resourceGroup, location, subscriptionId,
          ipAddressCount = array_length(properties.ipAddresses)
`

var ipGroups = Detector{
	Name:         "IP Groups",
	Kind:         "ip_group",
	ResourceType: "microsoft.network/ipgroups",
	TypeDisplay:  "IP Group",
	Query:        queryIPGroups,
	transform: func(row types.Row) (float64, []string) {
		var details []string
		if n := row.Int("ipAddressCount", 0); n > 0 {
			details = append(details, fmt.Sprintf("%d IP(s)", n))
		} else {
			details = append(details, "Empty")
		}
		details = append(details, "No firewall associations")
		return costs.IPGroup(), details
	},
}

const queryPrivateDNSZones = `
Resources
| where type == "microsoft.network/privatednszones"
| where isnull(properties.numberOfVirtualNetworkLinks) or properties.numberOfVirtualNetworkLinks == 0
| project id, name, resourceGroup, location, subscriptionId,
          recordCount = properties.numberOfRecordSets,
          maxRecords = properties.maxNumberOfRecordSets
`

var privateDNSZones = Detector{
	Name:            "Private DNS Zones",
	Kind:            "private_dns",
	ResourceType:    "microsoft.network/privatednszones",
	TypeDisplay:     "Private DNS",
	Query:           queryPrivateDNSZones,
	defaultLocation: "global",
	transform: func(row types.Row) (float64, []string) {
		var details []string
		if records := row.Int("recordCount", 0); records > 0 {
			details = append(details, fmt.Sprintf("%d records", records))
		} else {
			details = append(details, "No records")
		}
		details = append(details, "No VNet links")
		return costs.PrivateDNSZone(), details
	},
}

const queryResourceGroups = `
ResourceContainers
| where type == "microsoft.resources/subscriptions/resourcegroups"
| join kind=leftouter (
    Resources
    | summarize resourceCount = count() by resourceGroup, subscriptionId
) on $left.name == $right.resourceGroup and $left.subscriptionId == $right.subscriptionId
| where isnull(resourceCount) or resourceCount == 0
| project id, name, location, subscriptionId, tags
`

var resourceGroups = Detector{
	Name:         "Resource Groups",
	Kind:         "resource_group",
	ResourceType: "microsoft.resources/subscriptions/resourcegroups",
	TypeDisplay:  "Resource Group",
	Query:        queryResourceGroups,
	groupIsName:  true,
	transform: func(row types.Row) (float64, []string) {
		tags := row.Tags("tags")

		details := []string{"Empty"}
		if v, ok := tags["environment"]; ok {
			details = prepend(details, "Env: "+v)
		} else if v, ok := tags["purpose"]; ok {
			details = prepend(details, "Purpose: "+v)
		} else if v, ok := tags["owner"]; ok {
			details = prepend(details, "Owner: "+v)
		}
		return costs.ResourceGroup(), details
	},
}

const queryAPIConnections = `
Resources
| where type == "microsoft.web/connections"
| where properties.statuses[0].status == "Error"
    or properties.statuses[0].status == "Disconnected"
| project id, name, resourceGroup, location, subscriptionId,
          status = properties.statuses[0].status,
          errorMessage = properties.statuses[0].error.message,
          api = properties.api.displayName
`

var apiConnections = Detector{
	Name:         "API Connections",
	Kind:         "api_connection",
	ResourceType: "microsoft.web/connections",
	TypeDisplay:  "API Connection",
	Query:        queryAPIConnections,
	transform: func(row types.Row) (float64, []string) {
		var details []string
		if api := row.Str("api", ""); api != "" {
			details = append(details, "API: "+api)
		}
		details = append(details, "Status: "+row.Str("status", "Error"))
		if msg := row.Str("errorMessage", ""); msg != "" && len(msg) < 50 {
			details = append(details, msg)
		}
		return costs.APIConnection(), details
	},
}

const queryCertificates = `
Resources
| where type == "microsoft.web/certificates"
| extend expirationDate = todatetime(properties.expirationDate)
| where expirationDate < now()
| project id, name, resourceGroup, location, subscriptionId,
          expirationDate,
          issuer = properties.issuer,
          subjectName = properties.subjectName,
          thumbprint = properties.thumbprint
`

var certificates = Detector{
	Name:         "Certificates",
	Kind:         "certificate",
	ResourceType: "microsoft.web/certificates",
	TypeDisplay:  "Certificate",
	Query:        queryCertificates,
	emptyDetails: "Expired certificate",
	transform: func(row types.Row) (float64, []string) {
		var details []string
		if expired := daysExpired(row.Str("expirationDate", "")); expired != "" {
			details = append(details, expired)
		}
		if subject := row.Str("subjectName", ""); subject != "" && len(subject) < 40 {
			details = append(details, "Subject: "+subject)
		}
		if issuer := row.Str("issuer", ""); issuer != "" && len(issuer) < 30 {
			details = append(details, "Issuer: "+issuer)
		}
		if thumb := row.Str("thumbprint", ""); thumb != "" {
			if len(thumb) > 8 {
				thumb = thumb[:8]
			}
			details = append(details, "Thumb: "+thumb+"...")
		}
		return costs.Certificate(), details
	},
}
