package costs

// Priority buckets detector kinds by typical monthly cost, highest first.
// Used for registry ordering and default display sort, never correctness.
const (
	PriorityVeryHigh = 1
	PriorityMedium   = 2
	PriorityLow      = 3
	PriorityFree     = 4
)

// KindPriority maps detector kind identifiers to their cost priority.
var KindPriority = map[string]int{
	"ddos_plan":        PriorityVeryHigh, // ~$2,944/mo
	"vnet_gateway":     PriorityVeryHigh, // $130-1000+
	"app_gateway":      PriorityVeryHigh, // $150-500+
	"sql_elastic_pool": PriorityVeryHigh, // $150+
	"app_service_plan": PriorityVeryHigh, // $50-400+
	"nat_gateway":      PriorityMedium,   // ~$32+
	"load_balancer":    PriorityMedium,   // ~$18+
	"disk":             PriorityMedium,   // $2-150+
	"private_endpoint": PriorityLow,      // ~$7
	"public_ip":        PriorityLow,      // ~$4
	"traffic_manager":  PriorityLow,      // $1-10
	"frontdoor_waf":    PriorityLow,      // ~$5+
	"private_dns":      PriorityLow,      // ~$0.50
	"vm":               PriorityLow,      // disk costs only when stopped
	"nic":              PriorityFree,
	"nsg":              PriorityFree,
	"route_table":      PriorityFree,
	"availability_set": PriorityFree,
	"vnet":             PriorityFree,
	"subnet":           PriorityFree,
	"ip_group":         PriorityFree,
	"resource_group":   PriorityFree,
	"api_connection":   PriorityFree,
	"certificate":      PriorityFree, // security concern, not cost
}
