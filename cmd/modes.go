package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/evc-check/evc-check/evc"
	"github.com/evc-check/evc-check/internal/ui"
)

var modesProvider string // Restrict output to one provider

// modesCmd lists each provider's supported EVC mode catalog.
var modesCmd = &cobra.Command{
	Use:   "modes",
	Short: "List the EVC modes each provider supports",
	Run: func(cmd *cobra.Command, args []string) {
		file, err := LoadInventoryFile(inventoryPath)
		if err != nil {
			ui.PrintError(err)
			os.Exit(2)
		}
		inv, _, err := file.Build()
		if err != nil {
			ui.PrintError(err)
			os.Exit(2)
		}

		printed := false
		for _, p := range file.Providers {
			if modesProvider != "" && p.Name != modesProvider {
				continue
			}
			modes, err := inv.ListSupportedModes(evc.ProviderRef(p.Name))
			if err != nil {
				ui.PrintError(err)
				os.Exit(2)
			}
			ui.PrintCatalog(p.Name, evc.Catalog(modes))
			printed = true
		}
		if modesProvider != "" && !printed {
			ui.PrintError(fmt.Errorf("unknown provider %q", modesProvider))
			os.Exit(2)
		}
	},
}

func init() {
	modesCmd.Flags().StringVar(&modesProvider, "provider", "", "Only list modes for this provider")
	rootCmd.AddCommand(modesCmd)
}
