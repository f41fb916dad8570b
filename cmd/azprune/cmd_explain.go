package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thefrederiksen/azprune/catalog"
	"github.com/thefrederiksen/azprune/detectors"
)

var explainCmd = &cobra.Command{
	Use:   "explain <kind or resource type>",
	Short: "Explain what a finding means and whether deleting it is safe",
	Long: `Explain what a finding means and whether deleting it is safe.

Accepts a detector kind (disk, public_ip, vnet_gateway, ...) or a full
Azure resource type (microsoft.compute/disks).`,
	Example: `  azprune explain disk
  azprune explain vnet_gateway
  azprune explain microsoft.network/publicipaddresses`,
	Args: cobra.ExactArgs(1),
	RunE: runExplain,
}

func init() {
	rootCmd.AddCommand(explainCmd)
}

func runExplain(cmd *cobra.Command, args []string) error {
	resourceType := args[0]
	if d, ok := detectors.ByKind(strings.ToLower(resourceType)); ok {
		resourceType = d.ResourceType
	}

	g := catalog.Lookup(resourceType)

	fmt.Printf("%s %s (%s)\n\n", catalog.Badge(g.RiskLevel), g.FriendlyName, resourceType)
	fmt.Printf("Risk level:          %s\n\n", strings.ToUpper(g.RiskLevel))
	fmt.Printf("What it is:          %s\n", g.Description)
	fmt.Printf("Why it's orphaned:   %s\n", g.WhyOrphaned)
	fmt.Printf("Safe to delete:      %s\n", g.SafeToDelete)
	fmt.Printf("Check first:         %s\n", g.CheckBeforeDelete)
	fmt.Printf("If you delete it:    %s\n", g.DeletionImpact)
	fmt.Printf("Getting it back:     %s\n", g.RecoveryInfo)

	return nil
}
