package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/evc-check/evc-check/internal/ui"
)

var maxCommonHosts []string // Host names to include (default: all hosts in file order)

// maxCommonCmd computes the most capable EVC mode every selected host supports.
var maxCommonCmd = &cobra.Command{
	Use:   "max-common",
	Short: "Compute the maximum common EVC mode across a host group",
	Run: func(cmd *cobra.Command, args []string) {
		comparator, all := loadComparator()

		hosts, err := selectHosts(all, maxCommonHosts)
		if err != nil {
			ui.PrintError(err)
			os.Exit(2)
		}

		ui.PrintHosts("Host group", hosts)
		key, err := comparator.MaxCommonBaseline(hosts)
		if err != nil {
			ui.PrintError(err)
			os.Exit(2)
		}
		ui.PrintMaxCommon(key, len(hosts))
		if key == "" {
			os.Exit(1)
		}
	},
}

func init() {
	maxCommonCmd.Flags().StringSliceVar(&maxCommonHosts, "hosts", nil, "Comma-separated host names (default: all hosts)")
	rootCmd.AddCommand(maxCommonCmd)
}
