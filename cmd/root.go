package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/evc-check/evc-check/evc"
	"github.com/evc-check/evc-check/internal/ui"
)

var (
	// Persistent CLI flags shared by all subcommands
	inventoryPath string // Path to the inventory YAML file
	logLevel      string // Log verbosity level
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "evc-check",
	Short: "EVC mode compatibility checker for virtualization host groups",
	Long: `evc-check determines CPU feature-set compatibility ("EVC mode") across a
group of virtualization hosts: the maximum common mode a host group could run
at, and which hosts are compatible or incompatible with a given mode. It is
read-only and advisory; no host or cluster configuration is ever changed.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)
	},
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(2)
	}
}

// loadComparator loads the inventory file and builds the comparator plus the
// full host list in file order. Any load or validation failure is fatal.
func loadComparator() (*evc.Comparator, []evc.HostRecord) {
	file, err := LoadInventoryFile(inventoryPath)
	if err != nil {
		ui.PrintError(err)
		os.Exit(2)
	}
	inv, hosts, err := file.Build()
	if err != nil {
		ui.PrintError(err)
		os.Exit(2)
	}
	return evc.NewComparator(inv), hosts
}

// init sets up persistent CLI flags
func init() {
	rootCmd.PersistentFlags().StringVar(&inventoryPath, "inventory", "inventory.yaml", "Path to the inventory YAML file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")
}
