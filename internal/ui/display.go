package ui

import (
	"fmt"
	"os"
	"strings"

	"github.com/evc-check/evc-check/evc"
)

// PrintCatalog renders one provider's EVC mode catalog.
func PrintCatalog(provider string, catalog evc.Catalog) {
	var b strings.Builder

	b.WriteString(titleStyle.Render(fmt.Sprintf("Provider %s", provider)))
	b.WriteString("\n\n")

	if len(catalog) == 0 {
		b.WriteString(dimStyle.Render("  no supported EVC modes"))
		fmt.Println(boxStyle.Render(b.String()))
		return
	}

	for i, rec := range catalog {
		prefix := "├─"
		if i == len(catalog)-1 {
			prefix = "└─"
		}
		b.WriteString(fmt.Sprintf("  %s %s  %s %s\n",
			prefix,
			modeStyle.Render(fmt.Sprintf("%-20s", rec.Key)),
			vendorStyle.Render(string(rec.Vendor)),
			dimStyle.Render(fmt.Sprintf("tier %d", rec.Tier))))
	}

	fmt.Println(boxStyle.Render(b.String()))
}

// PrintHosts renders a host list with each host's own maximum mode.
func PrintHosts(heading string, hosts []evc.HostRecord) {
	fmt.Println(subtitleStyle.Render(heading))
	fmt.Println()

	if len(hosts) == 0 {
		fmt.Println(dimStyle.Render("  none"))
		fmt.Println()
		return
	}

	for i, h := range hosts {
		fmt.Printf("  [%d] %-25s %s %s\n", i+1, h.Name,
			modeStyle.Render(h.MaxModeKey),
			dimStyle.Render(fmt.Sprintf("(%s)", h.Provider)))
	}
	fmt.Println()
}

// PrintMaxCommon renders the outcome of a max-common-mode computation.
// An empty key means the group has no common mode.
func PrintMaxCommon(key string, hostCount int) {
	if key == "" {
		content := fmt.Sprintf("✗ No common EVC mode across %d hosts\n\n  %s",
			hostCount, dimStyle.Render("mixed CPU vendors or an unrecognized host mode"))
		fmt.Println()
		fmt.Println(errorBoxStyle.Render(content))
		fmt.Println()
		return
	}
	content := fmt.Sprintf("✓ Maximum common EVC mode across %d hosts\n\n  Mode: %s",
		hostCount, modeStyle.Render(key))
	fmt.Println()
	fmt.Println(successBoxStyle.Render(content))
	fmt.Println()
}

// PrintVerdict renders a single host-vs-mode compatibility verdict.
func PrintVerdict(host evc.HostRecord, targetKey string, compatible bool) {
	var content string
	if compatible {
		content = fmt.Sprintf("✓ Host %s is compatible with %s\n\n  Host max mode: %s",
			highlightStyle.Render(host.Name), modeStyle.Render(targetKey), modeStyle.Render(host.MaxModeKey))
		fmt.Println()
		fmt.Println(successBoxStyle.Render(content))
	} else {
		content = fmt.Sprintf("✗ Host %s is NOT compatible with %s\n\n  Host max mode: %s",
			highlightStyle.Render(host.Name), modeStyle.Render(targetKey), modeStyle.Render(host.MaxModeKey))
		fmt.Println()
		fmt.Println(errorBoxStyle.Render(content))
	}
	fmt.Println()
}

// PrintError renders an error to stderr.
func PrintError(err error) {
	content := fmt.Sprintf("✗ Error: %v", err)
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, errorBoxStyle.Render(content))
	fmt.Fprintln(os.Stderr)
}

// FormatBool renders a styled yes/no.
func FormatBool(b bool) string {
	if b {
		return goodStyle.Render("yes")
	}
	return dimStyle.Render("no")
}
