package catalog

import "github.com/thefrederiksen/azprune/types"

// guidance is indexed by lowercase Azure resource type.
var guidance = map[string]Guidance{
	// Low risk: safe to delete, no data loss, easily recreated.
	"microsoft.network/networkinterfaces": {
		FriendlyName:      "Network Interface (NIC)",
		RiskLevel:         types.RiskLow,
		Description:       "A virtual network adapter that connects a VM to a network.",
		WhyOrphaned:       "Not attached to any VM. Usually left behind when a VM was deleted.",
		SafeToDelete:      "Yes - NICs don't contain data, just configuration.",
		CheckBeforeDelete: "Verify no VM is being provisioned that needs this NIC.",
		DeletionImpact:    "No impact - the NIC is not being used.",
		RecoveryInfo:      "Cannot be recovered, but easily recreated if needed.",
	},
	"microsoft.network/publicipaddresses": {
		FriendlyName:      "Public IP Address",
		RiskLevel:         types.RiskLow,
		Description:       "A public IP address that can be assigned to Azure resources.",
		WhyOrphaned:       "Not attached to any resource (NIC, Load Balancer, etc.).",
		SafeToDelete:      "Yes - Just an IP address, easily recreated.",
		CheckBeforeDelete: "If static IP, verify the IP address isn't documented elsewhere (DNS, firewall rules).",
		DeletionImpact:    "You will lose this specific IP address. Dynamic IPs get a new address on recreation.",
		RecoveryInfo:      "Cannot recover the same IP - you'll get a new one.",
	},
	"microsoft.network/networksecuritygroups": {
		FriendlyName:      "Network Security Group (NSG)",
		RiskLevel:         types.RiskLow,
		Description:       "A firewall that filters network traffic to/from Azure resources.",
		WhyOrphaned:       "Not attached to any subnet or network interface.",
		SafeToDelete:      "Yes - Not protecting anything currently.",
		CheckBeforeDelete: "Review the rules - you may want to save them for reference.",
		DeletionImpact:    "No impact - the NSG is not filtering any traffic.",
		RecoveryInfo:      "Cannot be recovered, but rules can be recreated.",
	},
	"microsoft.network/routetables": {
		FriendlyName:      "Route Table",
		RiskLevel:         types.RiskLow,
		Description:       "Custom routing rules for network traffic in a virtual network.",
		WhyOrphaned:       "Not attached to any subnet.",
		SafeToDelete:      "Yes - Not routing any traffic currently.",
		CheckBeforeDelete: "Review the routes - you may want to document them.",
		DeletionImpact:    "No impact - the route table is not in use.",
		RecoveryInfo:      "Cannot be recovered, but routes can be recreated.",
	},
	"microsoft.compute/availabilitysets": {
		FriendlyName:      "Availability Set",
		RiskLevel:         types.RiskLow,
		Description:       "A logical grouping of VMs for high availability (fault/update domains).",
		WhyOrphaned:       "No VMs are assigned to this availability set.",
		SafeToDelete:      "Yes - Just metadata, no resources inside.",
		CheckBeforeDelete: "Verify no VMs are being provisioned that need this set.",
		DeletionImpact:    "No impact - just removes empty container.",
		RecoveryInfo:      "Cannot be recovered, but easily recreated.",
	},
	"microsoft.network/ipgroups": {
		FriendlyName:      "IP Group",
		RiskLevel:         types.RiskLow,
		Description:       "A container for IP addresses used in Azure Firewall rules.",
		WhyOrphaned:       "Not associated with any Azure Firewall or policy.",
		SafeToDelete:      "Yes - Just a list of IPs, not used anywhere.",
		CheckBeforeDelete: "Verify no firewall rules are being created that need this group.",
		DeletionImpact:    "No impact - the IP list is not referenced.",
		RecoveryInfo:      "Cannot be recovered, but IP list can be recreated.",
	},
	"microsoft.resources/subscriptions/resourcegroups": {
		FriendlyName:      "Resource Group",
		RiskLevel:         types.RiskLow,
		Description:       "A container that holds related Azure resources.",
		WhyOrphaned:       "Contains no resources.",
		SafeToDelete:      "Yes - Empty container with no resources.",
		CheckBeforeDelete: "Double-check it's truly empty and not reserved for future use.",
		DeletionImpact:    "No impact - just removes empty container.",
		RecoveryInfo:      "Cannot be recovered, but easily recreated.",
	},
	"microsoft.network/trafficmanagerprofiles": {
		FriendlyName:      "Traffic Manager Profile",
		RiskLevel:         types.RiskLow,
		Description:       "DNS-based traffic load balancer for distributing traffic globally.",
		WhyOrphaned:       "Has no endpoints configured.",
		SafeToDelete:      "Yes - Not routing any traffic.",
		CheckBeforeDelete: "Verify no DNS records point to this profile.",
		DeletionImpact:    "No impact - no endpoints to receive traffic.",
		RecoveryInfo:      "Cannot be recovered, but easily recreated.",
	},
	"microsoft.network/frontdoorwebapplicationfirewallpolicies": {
		FriendlyName:      "Front Door WAF Policy",
		RiskLevel:         types.RiskLow,
		Description:       "Web Application Firewall policy for Azure Front Door.",
		WhyOrphaned:       "Not linked to any Front Door endpoints.",
		SafeToDelete:      "Yes - Not protecting any endpoints.",
		CheckBeforeDelete: "Document custom rules if you want to reuse them later.",
		DeletionImpact:    "No impact - policy is not applied anywhere.",
		RecoveryInfo:      "Cannot be recovered, but rules can be recreated.",
	},
	"microsoft.web/connections": {
		FriendlyName:      "API Connection",
		RiskLevel:         types.RiskLow,
		Description:       "A connector used by Logic Apps to connect to external services.",
		WhyOrphaned:       "In Error or Disconnected state - connection is broken.",
		SafeToDelete:      "Yes - Already broken, needs to be fixed or replaced.",
		CheckBeforeDelete: "Check if any Logic Apps reference this connection.",
		DeletionImpact:    "Logic Apps using this connection may fail (they may already be failing).",
		RecoveryInfo:      "Create a new connection with the same settings.",
	},
	"microsoft.web/certificates": {
		FriendlyName:      "App Service Certificate",
		RiskLevel:         types.RiskLow,
		Description:       "SSL/TLS certificate for securing App Service applications.",
		WhyOrphaned:       "Certificate has expired.",
		SafeToDelete:      "Yes - Expired certificates provide no security value.",
		CheckBeforeDelete: "Ensure a new certificate has been provisioned.",
		DeletionImpact:    "No impact if already replaced. Apps using expired cert are already insecure.",
		RecoveryInfo:      "Purchase or provision a new certificate.",
	},
	"microsoft.network/loadbalancers": {
		FriendlyName:      "Load Balancer",
		RiskLevel:         types.RiskLow,
		Description:       "Distributes network traffic across multiple backend resources.",
		WhyOrphaned:       "Backend pool is empty - no resources to load balance.",
		SafeToDelete:      "Yes - Not routing traffic to any backends.",
		CheckBeforeDelete: "Verify no resources are being added to this load balancer.",
		DeletionImpact:    "No impact - no backends receiving traffic.",
		RecoveryInfo:      "Cannot be recovered, but easily recreated.",
	},
	"microsoft.web/serverfarms": {
		FriendlyName:      "App Service Plan",
		RiskLevel:         types.RiskLow,
		Description:       "The compute resources (VMs) that host App Service applications.",
		WhyOrphaned:       "No apps are hosted on this plan.",
		SafeToDelete:      "Yes - Empty plan just costs money with no benefit.",
		CheckBeforeDelete: "Verify no apps are being deployed to this plan.",
		DeletionImpact:    "No impact - no apps hosted.",
		RecoveryInfo:      "Cannot be recovered, but easily recreated.",
	},
	"microsoft.sql/servers/elasticpools": {
		FriendlyName:      "SQL Elastic Pool",
		RiskLevel:         types.RiskLow,
		Description:       "Shared compute resources for multiple Azure SQL databases.",
		WhyOrphaned:       "No databases are in this pool.",
		SafeToDelete:      "Yes - Empty pool just costs money with no benefit.",
		CheckBeforeDelete: "Verify no databases are being added to this pool.",
		DeletionImpact:    "No impact - no databases in pool.",
		RecoveryInfo:      "Cannot be recovered, but easily recreated.",
	},

	// Medium risk: verify before deleting, may contain data or affect services.
	"microsoft.compute/disks": {
		FriendlyName: "Managed Disk",
		RiskLevel:    types.RiskMedium,
		Description:  "A virtual hard drive that stores VM data (OS or data disk).",
		WhyOrphaned:  "Not attached to any VM. The original VM may have been deleted.",
		SafeToDelete: "CAUTION - This disk may contain important data!",
		CheckBeforeDelete: "1. Check disk name for hints about original VM\n" +
			"2. Consider mounting to a VM to check contents\n" +
			"3. Take a snapshot before deleting if unsure\n" +
			"4. Verify data is backed up elsewhere",
		DeletionImpact: "ALL DATA ON THE DISK WILL BE PERMANENTLY LOST.",
		RecoveryInfo:   "CANNOT be recovered after deletion. Create snapshot first if unsure.",
	},
	"microsoft.compute/virtualmachines": {
		FriendlyName: "Virtual Machine",
		RiskLevel:    types.RiskMedium,
		Description:  "A stopped/deallocated VM that is not currently running.",
		WhyOrphaned:  "VM is deallocated (stopped). May be intentionally stopped.",
		SafeToDelete: "CAUTION - Verify this VM is not needed before deleting.",
		CheckBeforeDelete: "1. Check with team/owner if VM is still needed\n" +
			"2. Verify any data on the VM is backed up\n" +
			"3. Check if VM is stopped temporarily (maintenance window)",
		DeletionImpact: "VM and its OS disk will be deleted. Data disks may remain orphaned.",
		RecoveryInfo:   "Cannot be recovered. Disks may be retained depending on settings.",
	},
	"microsoft.network/privatednszones": {
		FriendlyName: "Private DNS Zone",
		RiskLevel:    types.RiskMedium,
		Description:  "A private DNS zone for name resolution within virtual networks.",
		WhyOrphaned:  "Not linked to any virtual networks.",
		SafeToDelete: "CAUTION - DNS records may still be needed by applications.",
		CheckBeforeDelete: "1. Check if any apps reference these DNS names\n" +
			"2. Verify records are documented elsewhere\n" +
			"3. Check if VNet link is being configured",
		DeletionImpact: "All DNS records in this zone will be deleted.",
		RecoveryInfo:   "Cannot be recovered. Records must be recreated manually.",
	},
	"microsoft.network/privateendpoints": {
		FriendlyName: "Private Endpoint",
		RiskLevel:    types.RiskMedium,
		Description:  "A network interface connecting to an Azure service privately.",
		WhyOrphaned:  "Connection is in Disconnected or Rejected state.",
		SafeToDelete: "CAUTION - The target service may still need private connectivity.",
		CheckBeforeDelete: "1. Verify the target service doesn't need this endpoint\n" +
			"2. Check if connection needs to be re-approved\n" +
			"3. Confirm private DNS records can be cleaned up",
		DeletionImpact: "Private connectivity to the service will be lost.",
		RecoveryInfo:   "Must create a new private endpoint and get approval.",
	},
	"microsoft.network/applicationgateways": {
		FriendlyName: "Application Gateway",
		RiskLevel:    types.RiskMedium,
		Description:  "A Layer 7 load balancer for web traffic with WAF capabilities.",
		WhyOrphaned:  "Backend pools are empty - no servers to route to.",
		SafeToDelete: "CAUTION - May be in setup phase or temporarily empty.",
		CheckBeforeDelete: "1. Check if backends are being configured\n" +
			"2. Verify SSL certificates aren't needed elsewhere\n" +
			"3. Document custom WAF rules if configured",
		DeletionImpact: "All configuration, rules, and SSL certificates will be lost.",
		RecoveryInfo:   "Cannot be recovered. Complex to recreate - document config first.",
	},
	"microsoft.network/natgateways": {
		FriendlyName: "NAT Gateway",
		RiskLevel:    types.RiskMedium,
		Description:  "Provides outbound internet connectivity for resources in a subnet.",
		WhyOrphaned:  "Not attached to any subnets.",
		SafeToDelete: "CAUTION - Verify subnet outbound connectivity is handled another way.",
		CheckBeforeDelete: "1. Check if subnet is being configured to use this NAT GW\n" +
			"2. Verify resources have alternative outbound connectivity\n" +
			"3. Confirm public IPs can be released",
		DeletionImpact: "Associated public IPs may become orphaned.",
		RecoveryInfo:   "Cannot be recovered, but can recreate with same config.",
	},
	"microsoft.network/ddosprotectionplans": {
		FriendlyName: "DDoS Protection Plan",
		RiskLevel:    types.RiskMedium,
		Description:  "Protection against DDoS attacks for virtual networks.",
		WhyOrphaned:  "No virtual networks are protected by this plan.",
		SafeToDelete: "Yes - VERY expensive ($2,944/mo) with no VNets protected.",
		CheckBeforeDelete: "1. Verify no VNets are being added to this plan\n" +
			"2. Confirm DDoS protection strategy with security team",
		DeletionImpact: "No impact if no VNets are linked.",
		RecoveryInfo:   "Can recreate, but takes time to provision.",
	},

	// High risk: critical infrastructure, verify carefully before any action.
	"microsoft.network/virtualnetworkgateways": {
		FriendlyName: "VNet Gateway",
		RiskLevel:    types.RiskHigh,
		Description:  "Gateway for VPN or ExpressRoute connectivity to on-premises.",
		WhyOrphaned:  "No connections and no VPN clients configured.",
		SafeToDelete: "HIGH RISK - Verify no VPN/ExpressRoute connectivity is needed.",
		CheckBeforeDelete: "1. Check with network team about connectivity requirements\n" +
			"2. Verify no on-premises connections exist\n" +
			"3. Confirm no point-to-site VPN users need access\n" +
			"4. Check for any BGP peering configurations",
		DeletionImpact: "ALL VPN/ExpressRoute connectivity will be lost. Very expensive to recreate.",
		RecoveryInfo:   "Provisioning takes 30-45 minutes. All connections must be reconfigured.",
	},
}
