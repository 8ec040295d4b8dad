package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/evc-check/evc-check/internal/ui"
)

var (
	checkHost string // Host name to check
	checkMode string // Target EVC mode key
)

// checkCmd reports whether one host can run at a target EVC mode.
// Exit code 0 = compatible, 1 = incompatible, 2 = error.
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check one host's compatibility with a target EVC mode",
	Run: func(cmd *cobra.Command, args []string) {
		if checkHost == "" || checkMode == "" {
			ui.PrintError(fmt.Errorf("--host and --mode are required"))
			os.Exit(2)
		}
		comparator, all := loadComparator()

		hosts, err := selectHosts(all, []string{checkHost})
		if err != nil {
			ui.PrintError(err)
			os.Exit(2)
		}
		host := hosts[0]

		compatible, err := comparator.IsCompatible(host, checkMode)
		if err != nil {
			ui.PrintError(err)
			os.Exit(2)
		}
		ui.PrintVerdict(host, checkMode, compatible)
		if !compatible {
			os.Exit(1)
		}
	},
}

func init() {
	checkCmd.Flags().StringVar(&checkHost, "host", "", "Host name")
	checkCmd.Flags().StringVar(&checkMode, "mode", "", "Target EVC mode key")
	rootCmd.AddCommand(checkCmd)
}
