package types

// Risk levels for orphaned resources. The level reflects data-loss
// potential and blast radius, not cost.
const (
	RiskLow    = "low"
	RiskMedium = "medium"
	RiskHigh   = "high"
)

// Record represents one orphaned Azure resource found by a detector.
// Records are immutable once built; a rescan replaces the whole set.
type Record struct {
	Name           string  `json:"name"`
	Type           string  `json:"type"`
	TypeDisplay    string  `json:"type_display"`
	ResourceGroup  string  `json:"resource_group"`
	Location       string  `json:"location"`
	ID             string  `json:"id"`
	SubscriptionID string  `json:"subscription_id"`
	Cost           float64 `json:"cost"`
	CostDisplay    string  `json:"cost_display"`
	Details        string  `json:"details"`
	RiskLevel      string  `json:"risk_level"`
}

// TotalCost sums the estimated monthly cost across records.
func TotalCost(records []Record) float64 {
	var total float64
	for _, r := range records {
		total += r.Cost
	}
	return total
}

// BuildRecordMap converts a slice of records to a map for lookup by resource ID.
// Records without an ID are skipped; they cannot be addressed individually.
func BuildRecordMap(records []Record) map[string]Record {
	recordMap := make(map[string]Record)
	for _, r := range records {
		if r.ID == "" {
			continue
		}
		recordMap[r.ID] = r
	}
	return recordMap
}
