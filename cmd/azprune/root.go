package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	version = "0.1.0"
	rootCmd = &cobra.Command{
		Use:   "azprune",
		Short: "Azure orphaned resource scanner",
		Long: `Azprune - Azure orphaned resource scanner

Azprune finds Azure resources that cost money while doing nothing:
unattached disks, idle gateways, empty App Service plans, public IPs
bound to nothing, and 18 more kinds of forgotten infrastructure.

Authentication rides on the Azure CLI session (az login). Azprune is
strictly read-only: it detects and recommends, it never deletes.`,
		Version: version,
	}

	cfgFile string
)

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.SetVersionTemplate(`Azprune {{.Version}} - Azure orphaned resource scanner
`)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (default: built-in defaults)")
}
