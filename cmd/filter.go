package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/evc-check/evc-check/internal/ui"
)

var (
	filterMode         string // Target EVC mode key
	filterCompatible   bool   // Select hosts compatible with the mode
	filterIncompatible bool   // Select hosts incompatible with the mode
)

// validateFilterSelection enforces that exactly one selection flag is active.
// Checked before any inventory I/O.
func validateFilterSelection(compatible, incompatible bool) error {
	if compatible == incompatible {
		return fmt.Errorf("exactly one of --compatible or --incompatible is required")
	}
	return nil
}

// filterCmd partitions the host list by compatibility with a target mode and
// prints the selected partition in inventory order.
var filterCmd = &cobra.Command{
	Use:   "filter",
	Short: "List hosts compatible (or incompatible) with a target EVC mode",
	Run: func(cmd *cobra.Command, args []string) {
		if filterMode == "" {
			ui.PrintError(fmt.Errorf("--mode is required"))
			os.Exit(2)
		}
		if err := validateFilterSelection(filterCompatible, filterIncompatible); err != nil {
			ui.PrintError(err)
			os.Exit(2)
		}
		comparator, hosts := loadComparator()

		selected, err := comparator.FilterByCompatibility(hosts, filterMode, filterCompatible)
		if err != nil {
			ui.PrintError(err)
			os.Exit(2)
		}

		heading := fmt.Sprintf("Hosts compatible with %s", filterMode)
		if filterIncompatible {
			heading = fmt.Sprintf("Hosts incompatible with %s", filterMode)
		}
		ui.PrintHosts(heading, selected)
	},
}

func init() {
	filterCmd.Flags().StringVar(&filterMode, "mode", "", "Target EVC mode key")
	filterCmd.Flags().BoolVar(&filterCompatible, "compatible", false, "Select compatible hosts")
	filterCmd.Flags().BoolVar(&filterIncompatible, "incompatible", false, "Select incompatible hosts")
	rootCmd.AddCommand(filterCmd)
}
