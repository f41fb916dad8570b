package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thefrederiksen/azprune/azure"
	"github.com/thefrederiksen/azprune/export"
	"github.com/thefrederiksen/azprune/history"
	"github.com/thefrederiksen/azprune/orchestrator"
)

var (
	scanSubscription string
	scanOutput       string
	scanExportDir    string
	scanNoHistory    bool
)

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Scan a subscription for orphaned resources",
	Long: `Scan a subscription for orphaned resources.

Runs all 22 detectors against Azure Resource Graph: expensive kinds
first (DDoS plans, gateways, elastic pools), then the cheap clutter
(NSGs, route tables, empty resource groups). A failing detector is
skipped, the scan carries on.`,
	Example: `  azprune scan                            # Scan the az CLI default subscription
  azprune scan --subscription Production  # Scan by name or id
  azprune scan --output json              # Machine-readable output
  azprune scan --output csv               # Write a CSV export and print its path
  azprune scan --export-dir ./reports     # Override the CSV directory`,
	RunE: runScan,
}

func init() {
	rootCmd.AddCommand(scanCmd)

	scanCmd.Flags().StringVarP(&scanSubscription, "subscription", "s", "", "Subscription id or name (default: az CLI default)")
	scanCmd.Flags().StringVarP(&scanOutput, "output", "o", "table", "Output format: table, json, csv")
	scanCmd.Flags().StringVar(&scanExportDir, "export-dir", "", "Directory for CSV exports")
	scanCmd.Flags().BoolVar(&scanNoHistory, "no-history", false, "Skip recording this scan in history")
}

func runScan(cmd *cobra.Command, args []string) error {
	validOutputs := []string{"table", "json", "csv"}
	valid := false
	for _, o := range validOutputs {
		if scanOutput == o {
			valid = true
		}
	}
	if !valid {
		return fmt.Errorf("invalid output format: %s (must be one of: %s)",
			scanOutput, strings.Join(validOutputs, ", "))
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	ctx := cmd.Context()

	wanted := scanSubscription
	if wanted == "" {
		wanted = cfg.SubscriptionID
	}
	account, err := resolveAccount(ctx, wanted)
	if err != nil {
		return err
	}

	client, err := azure.NewClient(account.ID, account.TenantID)
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "Scanning subscription %s (%s)...\n\n", account.Name, account.ID)

	scanner := orchestrator.NewScanner(client.Query, orchestrator.Options{
		FailFastThreshold: cfg.FailFastThreshold,
		OnProgress:        printProgress,
	})

	result, err := scanner.Scan(ctx)
	if err != nil {
		return err
	}

	for _, detErr := range result.DetectorErrors {
		fmt.Fprintf(os.Stderr, "Warning: %s failed: %s\n", detErr.Detector, detErr.Error)
	}

	if !scanNoHistory {
		if err := saveHistory(cfg.HistoryDir, account, result); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to record scan history: %v\n", err)
		}
	}

	switch scanOutput {
	case "json":
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))
	case "csv":
		dir := scanExportDir
		if dir == "" {
			dir = cfg.ExportDir
		}
		path, err := export.ToCSV(result.Records, dir, account.Name, account.TenantID)
		if err != nil {
			return err
		}
		fmt.Printf("Exported %d records to %s\n", len(result.Records), path)
	default:
		fmt.Println()
		renderTable(os.Stdout, result.Records)
	}

	return nil
}

func saveHistory(dir string, account *azure.Account, result *orchestrator.Result) error {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return err
	}
	store, err := history.Open(dir)
	if err != nil {
		return err
	}
	defer store.Close()

	_, err = store.SaveScan(account.ID, account.Name, result.Records)
	return err
}
