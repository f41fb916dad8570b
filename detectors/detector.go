// Package detectors finds orphaned Azure resources through Resource Graph
// queries. Each detector pairs one declarative query with a transform that
// merges the raw rows with the cost model and the risk catalog into
// display-ready records. Detectors never talk to Azure directly; the query
// function is injected so a test fixture can stand in for the live service.
package detectors

import (
	"context"
	"strings"

	"github.com/thefrederiksen/azprune/catalog"
	"github.com/thefrederiksen/azprune/costs"
	"github.com/thefrederiksen/azprune/types"
)

// QueryFunc executes a Resource Graph query and returns its rows.
type QueryFunc func(ctx context.Context, query string) ([]types.Row, error)

// transformFunc computes the cost estimate and detail fragments for one
// row. Fragments are joined with " | " in the order returned. A transform
// must tolerate any combination of missing fields and still produce a
// usable result.
type transformFunc func(row types.Row) (cost float64, details []string)

// Detector detects one kind of orphaned resource.
type Detector struct {
	// Name is the display name used in progress messages ("NAT Gateways").
	Name string
	// Kind is the cost-priority key for this detector (costs.KindPriority).
	Kind string
	// ResourceType is the canonical lowercase Azure type identifier.
	ResourceType string
	// TypeDisplay is the short human label shown in result tables.
	TypeDisplay string
	// Query is the Resource Graph query that finds the orphans.
	Query string

	transform transformFunc

	// defaultLocation substitutes for a missing location field. Global
	// resources (Traffic Manager, private DNS, Front Door WAF) report
	// "global" instead of a region.
	defaultLocation string
	// groupIsName is set for resource groups, which are their own group.
	groupIsName bool
	// emptyDetails is used when a row yields no fragments at all.
	emptyDetails string
}

// Detect runs the detector's query and builds one record per row.
// Individual missing fields degrade to defaults; only a query failure
// returns an error.
func (d Detector) Detect(ctx context.Context, query QueryFunc) ([]types.Record, error) {
	rows, err := query(ctx, d.Query)
	if err != nil {
		return nil, err
	}

	records := make([]types.Record, 0, len(rows))
	for _, row := range rows {
		records = append(records, d.buildRecord(row))
	}
	return records, nil
}

func (d Detector) buildRecord(row types.Row) types.Record {
	cost, parts := d.transform(row)

	details := strings.Join(parts, " | ")
	if details == "" {
		details = d.emptyDetails
	}

	group := row.Str("resourceGroup", "")
	if d.groupIsName {
		group = row.Str("name", "")
	}

	return types.Record{
		Name:           row.Str("name", ""),
		Type:           d.ResourceType,
		TypeDisplay:    d.TypeDisplay,
		ResourceGroup:  group,
		Location:       row.Str("location", d.defaultLocation),
		ID:             row.Str("id", ""),
		SubscriptionID: row.Str("subscriptionId", ""),
		Cost:           cost,
		CostDisplay:    costs.FormatCost(cost),
		Details:        details,
		RiskLevel:      catalog.RiskLevel(d.ResourceType),
	}
}
