package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evc-check/evc-check/evc"
)

func writeInventory(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "inventory.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const validInventory = `
version: "1"
providers:
  - name: vc-01
    modes:
      - {key: intel-haswell, vendor: intel, tier: 1}
      - {key: intel-skylake, vendor: intel, tier: 2}
  - name: vc-02
hosts:
  - {name: esx-01, provider: vc-01, max-mode: intel-skylake}
  - {name: esx-02, provider: vc-01, max-mode: intel-haswell}
  - {name: esx-03, provider: vc-02, max-mode: amd-zen3}
`

func TestLoadInventoryFile_Valid(t *testing.T) {
	file, err := LoadInventoryFile(writeInventory(t, validInventory))
	require.NoError(t, err)

	assert.Len(t, file.Providers, 2)
	assert.Len(t, file.Hosts, 3)

	inv, hosts, err := file.Build()
	require.NoError(t, err)
	require.Len(t, hosts, 3)
	assert.Equal(t, evc.HostRecord{Name: "esx-01", MaxModeKey: "intel-skylake", Provider: "vc-01"}, hosts[0])

	modes, err := inv.ListSupportedModes("vc-01")
	require.NoError(t, err)
	assert.Len(t, modes, 2)

	// Provider without a modes list gets the builtin default catalog.
	modes, err = inv.ListSupportedModes("vc-02")
	require.NoError(t, err)
	assert.Equal(t, []evc.BaselineRecord(evc.DefaultCatalog()), modes)
}

func TestLoadInventoryFile_MissingFile(t *testing.T) {
	_, err := LoadInventoryFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadInventoryFile_UnknownFieldRejected(t *testing.T) {
	// Strict parsing: typos must cause errors, not silent defaults.
	_, err := LoadInventoryFile(writeInventory(t, `
providers:
  - name: vc-01
    modez:
      - {key: intel-haswell, vendor: intel, tier: 1}
`))
	assert.Error(t, err)
}

func TestInventoryFileValidate_Failures(t *testing.T) {
	cases := []struct {
		name    string
		content string
	}{
		{"no providers", `
hosts:
  - {name: esx-01, provider: vc-01, max-mode: intel-haswell}
`},
		{"duplicate provider", `
providers:
  - name: vc-01
  - name: vc-01
`},
		{"duplicate mode key", `
providers:
  - name: vc-01
    modes:
      - {key: intel-haswell, vendor: intel, tier: 1}
      - {key: intel-haswell, vendor: intel, tier: 2}
`},
		{"duplicate tier within vendor", `
providers:
  - name: vc-01
    modes:
      - {key: intel-haswell, vendor: intel, tier: 1}
      - {key: intel-skylake, vendor: intel, tier: 1}
`},
		{"unknown vendor", `
providers:
  - name: vc-01
    modes:
      - {key: via-nano, vendor: via, tier: 1}
`},
		{"host without max-mode", `
providers:
  - name: vc-01
hosts:
  - {name: esx-01, provider: vc-01}
`},
		{"host references unknown provider", `
providers:
  - name: vc-01
hosts:
  - {name: esx-01, provider: vc-99, max-mode: intel-haswell}
`},
		{"duplicate host", `
providers:
  - name: vc-01
hosts:
  - {name: esx-01, provider: vc-01, max-mode: intel-haswell}
  - {name: esx-01, provider: vc-01, max-mode: intel-skylake}
`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := LoadInventoryFile(writeInventory(t, tc.content))
			assert.Error(t, err)
		})
	}
}

func TestInventoryFileValidate_SameTierDifferentVendorsOK(t *testing.T) {
	// Tiers only need to be totally ordered within one vendor lineage.
	_, err := LoadInventoryFile(writeInventory(t, `
providers:
  - name: vc-01
    modes:
      - {key: intel-haswell, vendor: intel, tier: 1}
      - {key: amd-zen, vendor: amd, tier: 1}
`))
	assert.NoError(t, err)
}

func TestSelectHosts(t *testing.T) {
	all := []evc.HostRecord{
		{Name: "esx-01", Provider: "vc-01"},
		{Name: "esx-02", Provider: "vc-01"},
		{Name: "esx-03", Provider: "vc-01"},
	}

	// No names selects everything in file order.
	got, err := selectHosts(all, nil)
	require.NoError(t, err)
	assert.Equal(t, all, got)

	// Names select in the order given.
	got, err = selectHosts(all, []string{"esx-03", "esx-01"})
	require.NoError(t, err)
	assert.Equal(t, []string{"esx-03", "esx-01"}, hostNames(got))

	// Unknown names are errors that name the known hosts.
	_, err = selectHosts(all, []string{"esx-99"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "esx-01")
}

func TestValidateFilterSelection(t *testing.T) {
	assert.NoError(t, validateFilterSelection(true, false))
	assert.NoError(t, validateFilterSelection(false, true))
	assert.Error(t, validateFilterSelection(false, false), "neither flag")
	assert.Error(t, validateFilterSelection(true, true), "both flags")
}
