// Package cmd provides the CLI commands for rental-pricing.
package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"rental-pricing/internal/config"
	"rental-pricing/internal/logging"
)

var (
	cfgFile string
	verbose bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "rental-pricing",
	Short: "Compute itemized stay price quotes",
	Long: `rental-pricing is a deterministic stay pricing engine.

Given a listing, a stay window and a set of pricing rules it computes a
fully itemized, auditable price breakdown per night and in aggregate.

Examples:
  rental-pricing quote request.json
  rental-pricing quote --format json --target USD request.json
  rental-pricing quote --created-at 2026-06-01 request.json`,
}

// Execute runs the CLI
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.rental-pricing.json)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	// Add subcommands
	rootCmd.AddCommand(quoteCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)
}

func initConfig() {
	if cfgFile != "" {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
		config.Set(cfg)
	}

	// Initialize logging
	cfg := config.Get()
	if verbose {
		cfg.Logging.Level = "debug"
	}
	if err := logging.Initialize(cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
	}
}

// versionCmd prints version information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("rental-pricing version 0.1.0")
	},
}

// configCmd groups configuration subcommands
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
}

// configShowCmd prints the effective configuration
var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := json.MarshalIndent(config.Get(), "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil
	},
}

// configInitCmd writes a default configuration file
var configInitCmd = &cobra.Command{
	Use:   "init <path>",
	Short: "Write a default configuration file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.Default().Save(args[0]); err != nil {
			return err
		}
		fmt.Printf("Wrote default configuration to %s\n", args[0])
		return nil
	},
}
