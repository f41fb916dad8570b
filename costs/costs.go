// Package costs estimates monthly USD cost for orphaned Azure resources
// from static rate tables. These are estimates based on list pricing, not
// billing data; actual costs vary by region and negotiated rates.
package costs

import (
	"math"
	"strings"
)

const hoursPerMonth = 730

// NormalizeSKU prepares a SKU or tier label for table lookup:
// lowercase with "-" and "_" stripped, so "VpnGw1-AZ" and "vpngw1az" match.
func NormalizeSKU(sku string) string {
	s := strings.ToLower(sku)
	s = strings.ReplaceAll(s, "-", "")
	s = strings.ReplaceAll(s, "_", "")
	return s
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// NIC estimates the monthly cost of a network interface. NICs are free;
// any cost comes from an attached public IP, added by the detector.
func NIC() float64 { return 0 }

// PublicIP estimates the monthly cost of a public IP address by SKU.
func PublicIP(sku string) float64 {
	if strings.EqualFold(sku, "standard") {
		return 4.00
	}
	return 3.65
}

// Disk estimates the monthly cost of a managed disk from size and tier.
// Standard HDD ~$0.05/GB, Standard SSD ~$0.075/GB, Premium ~$0.15/GB.
func Disk(sizeGB int, tier string) float64 {
	ratePerGB := 0.05
	lower := strings.ToLower(tier)
	switch {
	case strings.Contains(lower, "premium"):
		ratePerGB = 0.15
	case strings.Contains(lower, "standardssd"):
		ratePerGB = 0.075
	}
	return round2(float64(sizeGB) * ratePerGB)
}

// AppGateway estimates the monthly cost of an Application Gateway.
// Standard_v2: $0.25/hr fixed + $0.008/capacity-unit/hr.
// WAF_v2: $0.36/hr fixed + $0.0144/capacity-unit/hr.
func AppGateway(tier string, capacity int) float64 {
	fixedRate, capacityRate := 0.25, 0.008
	if strings.Contains(strings.ToLower(tier), "waf") {
		fixedRate, capacityRate = 0.36, 0.0144
	}
	fixed := fixedRate * hoursPerMonth
	cap := capacityRate * float64(capacity) * hoursPerMonth
	return round2(fixed + cap)
}

var vnetGatewaySKUCosts = map[string]float64{
	"basic":    27.00,
	"vpngw1":   140.00,
	"vpngw1az": 196.00,
	"vpngw2":   361.00,
	"vpngw2az": 506.00,
	"vpngw3":   927.00,
	"vpngw3az": 1298.00,
	"vpngw4":   1825.00,
	"vpngw4az": 2555.00,
	"vpngw5":   3650.00,
	"vpngw5az": 5110.00,
	// ExpressRoute
	"ergw1az":              214.00,
	"ergw2az":              536.00,
	"ergw3az":              1072.00,
	"standard":             214.00,
	"highperformance":      536.00,
	"ultrahighperformance": 1072.00,
}

// VNetGateway estimates the monthly cost of a virtual network gateway by
// SKU. Unrecognized SKUs fall back to the VpnGw1 rate.
func VNetGateway(sku string) float64 {
	if cost, ok := vnetGatewaySKUCosts[NormalizeSKU(sku)]; ok {
		return cost
	}
	return 140.00
}

// NATGateway estimates the monthly cost of a NAT gateway:
// $0.045/hr fixed plus $0.045/GB processed.
func NATGateway(dataProcessedGB float64) float64 {
	hourly := 0.045 * hoursPerMonth
	return round2(hourly + 0.045*dataProcessedGB)
}

// LoadBalancer estimates the monthly cost of a load balancer. Basic is
// free; Standard is $0.025/hr plus $0.005/rule/hr beyond the first 5 rules.
func LoadBalancer(sku string, rules int) float64 {
	if strings.EqualFold(sku, "basic") {
		return 0
	}
	base := 0.025 * hoursPerMonth
	extraRules := rules - 5
	if extraRules < 0 {
		extraRules = 0
	}
	return round2(base + 0.005*float64(extraRules)*hoursPerMonth)
}

var elasticPoolTierRates = map[string]float64{
	"basic":    0.0075,
	"standard": 0.0225,
	"premium":  0.075,
}

// SQLElasticPool estimates the monthly cost of a SQL elastic pool from
// provisioned eDTUs and service tier. Unknown tiers use the Standard rate.
func SQLElasticPool(dtu int, tier string) float64 {
	rate, ok := elasticPoolTierRates[strings.ToLower(tier)]
	if !ok {
		rate = 0.0225
	}
	return round2(float64(dtu) * rate * hoursPerMonth)
}

var appServicePlanSizeCosts = map[string]float64{
	// Free and Shared
	"f1":     0.0,
	"free":   0.0,
	"d1":     10.0,
	"shared": 10.0,
	// Basic
	"b1": 55.0,
	"b2": 109.0,
	"b3": 219.0,
	// Standard
	"s1": 73.0,
	"s2": 146.0,
	"s3": 292.0,
	// Premium
	"p1": 146.0,
	"p2": 292.0,
	"p3": 584.0,
	// Premium v2
	"p1v2": 88.0,
	"p2v2": 175.0,
	"p3v2": 350.0,
	// Premium v3
	"p1v3": 104.0,
	"p2v3": 208.0,
	"p3v3": 416.0,
}

// AppServicePlan estimates the monthly cost of an App Service plan for a
// single instance, keyed by size within tier. Unrecognized sizes fall back
// to the S1 rate.
func AppServicePlan(size string) float64 {
	if cost, ok := appServicePlanSizeCosts[NormalizeSKU(size)]; ok {
		return cost
	}
	return 73.0
}

// DDoSPlan returns the fixed monthly cost of a DDoS Protection Standard
// plan. This is the most expensive thing the scanner finds.
func DDoSPlan() float64 { return 2944.00 }

// TrafficManager estimates the monthly cost of a Traffic Manager profile:
// $0.54 per million DNS queries plus $0.36 per Azure endpoint.
func TrafficManager(endpoints int, queriesMillions float64) float64 {
	return round2(0.54*queriesMillions + 0.36*float64(endpoints))
}

// FrontDoorWAF estimates the monthly cost of a Front Door WAF policy:
// $5 per policy plus $1 per custom rule.
func FrontDoorWAF(customRules int) float64 {
	return round2(5.0 + 1.0*float64(customRules))
}

// PrivateDNSZone returns the per-zone monthly cost of a private DNS zone.
func PrivateDNSZone() float64 { return 0.50 }

// PrivateEndpoint returns the monthly cost of a private endpoint
// ($0.01/hr, excluding data processing).
func PrivateEndpoint() float64 { return round2(0.01 * hoursPerMonth) }

// Free resource kinds. Kept as functions so the detector table reads
// uniformly and the zero is documented per type.

// NSG returns 0; network security groups are free.
func NSG() float64 { return 0 }

// RouteTable returns 0; route tables are free.
func RouteTable() float64 { return 0 }

// AvailabilitySet returns 0; availability sets are free.
func AvailabilitySet() float64 { return 0 }

// IPGroup returns 0; IP groups are free.
func IPGroup() float64 { return 0 }

// ResourceGroup returns 0; resource groups are free.
func ResourceGroup() float64 { return 0 }

// APIConnection returns 0; the cost of Logic Apps connectors is in the
// runs, not the connection object.
func APIConnection() float64 { return 0 }

// Certificate returns 0; App Service certificates are one-time purchases.
// Expired ones are a security concern, not a recurring cost.
func Certificate() float64 { return 0 }
