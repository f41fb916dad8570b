package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/thefrederiksen/azprune/azure"
)

var subscriptionsCmd = &cobra.Command{
	Use:     "subscriptions",
	Aliases: []string{"subs"},
	Short:   "List subscriptions visible to the current az login",
	Example: `  azprune subscriptions
  azprune scan --subscription <id from the list>`,
	RunE: runSubscriptions,
}

func init() {
	rootCmd.AddCommand(subscriptionsCmd)
}

func runSubscriptions(cmd *cobra.Command, args []string) error {
	accounts, err := azure.ListSubscriptions(cmd.Context())
	if err != nil {
		return err
	}

	if len(accounts) == 0 {
		fmt.Println("No enabled subscriptions found. Run 'az login' first.")
		return nil
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tSUBSCRIPTION ID\tTENANT\tDEFAULT")
	for _, account := range accounts {
		def := ""
		if account.IsDefault {
			def = "*"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", account.Name, account.ID, account.TenantID, def)
	}
	return tw.Flush()
}
