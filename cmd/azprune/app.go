package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/thefrederiksen/azprune/azure"
	"github.com/thefrederiksen/azprune/catalog"
	"github.com/thefrederiksen/azprune/config"
	"github.com/thefrederiksen/azprune/costs"
	"github.com/thefrederiksen/azprune/types"
)

// loadConfig reads the --config file, or returns defaults when none is
// given.
func loadConfig() (*config.Config, error) {
	if cfgFile == "" {
		return config.Default(), nil
	}
	return config.Load(cfgFile)
}

// resolveAccount picks the subscription to scan: an explicit id or name
// from the flag/config wins, otherwise the Azure CLI default is used.
func resolveAccount(ctx context.Context, wanted string) (*azure.Account, error) {
	if wanted == "" {
		return azure.CurrentAccount(ctx)
	}

	accounts, err := azure.ListSubscriptions(ctx)
	if err != nil {
		return nil, err
	}
	for i, account := range accounts {
		if account.ID == wanted || strings.EqualFold(account.Name, wanted) {
			return &accounts[i], nil
		}
	}
	return nil, fmt.Errorf("subscription %q not found among %d enabled subscriptions", wanted, len(accounts))
}

// renderTable prints records sorted by monthly cost, most expensive
// first. The sort is stable so records with equal cost keep registry
// order.
func renderTable(w io.Writer, records []types.Record) {
	if len(records) == 0 {
		fmt.Fprintln(w, "No orphaned resources found. Clean subscription!")
		return
	}

	sorted := make([]types.Record, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Cost > sorted[j].Cost
	})

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tTYPE\tRISK\tCOST/MONTH\tRESOURCE GROUP\tLOCATION\tDETAILS")
	fmt.Fprintln(tw, "----\t----\t----\t----------\t--------------\t--------\t-------")

	for _, r := range sorted {
		fmt.Fprintf(tw, "%s\t%s\t%s %s\t%s\t%s\t%s\t%s\n",
			truncate(r.Name, 40),
			r.TypeDisplay,
			catalog.Badge(r.RiskLevel),
			strings.ToUpper(r.RiskLevel),
			r.CostDisplay,
			truncate(r.ResourceGroup, 30),
			r.Location,
			truncate(r.Details, 60),
		)
	}
	tw.Flush()

	fmt.Fprintf(w, "\nFound %d orphaned resources wasting %s/month.\n",
		len(records), costs.FormatCost(types.TotalCost(records)))
	fmt.Fprintln(w, "Risk legend: [OK] safe to delete, [CHECK] verify first, [WARN] expensive to recreate.")
}

func printProgress(msg string) {
	fmt.Fprintf(os.Stderr, "%s\n", msg)
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
