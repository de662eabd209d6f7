// Package cli wires the rf commands together using cobra.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Global flags
var (
	cfgFile        string
	colorFlag      string
	jsonFlag       bool
	noPublicIPFlag bool
	timeoutFlag    string
)

// rootCmd prints the system report when invoked with no subcommand.
var rootCmd = &cobra.Command{
	Use:   "rf",
	Short: "A system fetch for your terminal",
	Long: `rf gathers a fixed set of host metrics - user and hostname, OS, CPU usage
and temperature, window manager, uptime, RAM, disk, and IP addresses - and
prints them with nerd-font glyphs, colored by value.

A metric that can't be collected shows a placeholder instead of failing the
run; rf always prints a complete report and exits 0.

Examples:
  rf
  rf --no-public-ip
  rf --color never
  rf --json`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return fetchCommand()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default searches .rf.yaml upward, then ~/.config/rf/config.yaml)")
	rootCmd.Flags().StringVar(&colorFlag, "color", "", "color mode: auto, always, or never (overrides config)")
	rootCmd.Flags().BoolVar(&jsonFlag, "json", false, "output metrics as JSON instead of the styled report")
	rootCmd.Flags().BoolVar(&noPublicIPFlag, "no-public-ip", false, "skip the public IP lookup (no outbound network call)")
	rootCmd.Flags().StringVar(&timeoutFlag, "timeout", "", "public IP lookup timeout (e.g., 3s, 500ms; overrides config)")
}

// Execute runs the root command. Called once from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Config returns the value of the global --config flag.
func Config() string {
	return cfgFile
}
