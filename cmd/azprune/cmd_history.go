package main

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/thefrederiksen/azprune/costs"
	"github.com/thefrederiksen/azprune/history"
)

var (
	historyLimit int
	historyRunID string
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show past scan results",
	Example: `  azprune history               # Recent scans
  azprune history --limit 50    # More of them
  azprune history --run <id>    # Full records of one scan`,
	RunE: runHistory,
}

func init() {
	rootCmd.AddCommand(historyCmd)

	historyCmd.Flags().IntVar(&historyLimit, "limit", 10, "Number of scans to show")
	historyCmd.Flags().StringVar(&historyRunID, "run", "", "Show the full records of one scan by run id")
}

func runHistory(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	store, err := history.Open(cfg.HistoryDir)
	if err != nil {
		return err
	}
	defer store.Close()

	if historyRunID != "" {
		entry, err := store.GetScan(historyRunID)
		if err != nil {
			return err
		}
		if entry == nil {
			return fmt.Errorf("no scan with run id %s", historyRunID)
		}
		fmt.Printf("Scan %s of %s (%s)\n\n", entry.RunID, entry.SubscriptionName, entry.Timestamp.Local().Format(time.RFC1123))
		renderTable(os.Stdout, entry.Records)
		return nil
	}

	entries, err := store.ListScans(historyLimit)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Println("No scans recorded yet. Run 'azprune scan' first.")
		return nil
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "WHEN\tSUBSCRIPTION\tORPHANS\tWASTE/MONTH\tRUN ID")
	for _, entry := range entries {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\t%s\n",
			entry.Timestamp.Local().Format("2006-01-02 15:04"),
			entry.SubscriptionName,
			entry.RecordCount,
			costs.FormatCost(entry.TotalWaste),
			entry.RunID,
		)
	}
	return tw.Flush()
}
