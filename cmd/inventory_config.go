package cmd

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/evc-check/evc-check/evc"
)

// ModeSpec describes one EVC mode entry in an inventory file.
type ModeSpec struct {
	Key    string `yaml:"key"`
	Vendor string `yaml:"vendor"`
	Tier   int    `yaml:"tier"`
}

// ProviderSpec describes one provider instance in an inventory file.
// An omitted modes list means the provider supports the builtin default
// catalog (evc.DefaultCatalog).
type ProviderSpec struct {
	Name  string     `yaml:"name"`
	Modes []ModeSpec `yaml:"modes"`
}

// HostSpec describes one host in an inventory file.
type HostSpec struct {
	Name     string `yaml:"name"`
	Provider string `yaml:"provider"`
	MaxMode  string `yaml:"max-mode"`
}

// InventoryFile represents the full inventory YAML structure.
// All top-level sections must be listed to satisfy KnownFields(true) strict parsing.
type InventoryFile struct {
	Version   string         `yaml:"version"`
	Providers []ProviderSpec `yaml:"providers"`
	Hosts     []HostSpec     `yaml:"hosts"`
}

// LoadInventoryFile reads and parses an inventory YAML file with strict field
// checking (typos must cause errors), then validates it.
func LoadInventoryFile(path string) (*InventoryFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading inventory file: %w", err)
	}
	var file InventoryFile
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&file); err != nil {
		return nil, fmt.Errorf("parsing inventory file %s: %w", path, err)
	}
	if err := file.Validate(); err != nil {
		return nil, fmt.Errorf("invalid inventory file %s: %w", path, err)
	}
	return &file, nil
}

// Validate checks structural invariants of the inventory file: unique
// provider, mode, and host names; known vendors; tiers totally ordered within
// a vendor; hosts bound to declared providers.
func (f *InventoryFile) Validate() error {
	if len(f.Providers) == 0 {
		return fmt.Errorf("no providers defined")
	}

	providerNames := map[string]bool{}
	for _, p := range f.Providers {
		if p.Name == "" {
			return fmt.Errorf("provider with empty name")
		}
		if providerNames[p.Name] {
			return fmt.Errorf("duplicate provider %q", p.Name)
		}
		providerNames[p.Name] = true

		keys := map[string]bool{}
		tiers := map[string]map[int]bool{}
		for _, m := range p.Modes {
			if m.Key == "" {
				return fmt.Errorf("provider %q: mode with empty key", p.Name)
			}
			if keys[m.Key] {
				return fmt.Errorf("provider %q: duplicate mode key %q", p.Name, m.Key)
			}
			keys[m.Key] = true

			vendor, err := evc.ParseVendor(m.Vendor)
			if err != nil {
				return fmt.Errorf("provider %q, mode %q: %w", p.Name, m.Key, err)
			}
			if tiers[string(vendor)] == nil {
				tiers[string(vendor)] = map[int]bool{}
			}
			if tiers[string(vendor)][m.Tier] {
				return fmt.Errorf("provider %q: duplicate tier %d for vendor %s (tiers must be totally ordered)",
					p.Name, m.Tier, vendor)
			}
			tiers[string(vendor)][m.Tier] = true
		}
	}

	hostNames := map[string]bool{}
	for _, h := range f.Hosts {
		if h.Name == "" {
			return fmt.Errorf("host with empty name")
		}
		if hostNames[h.Name] {
			return fmt.Errorf("duplicate host %q", h.Name)
		}
		hostNames[h.Name] = true
		if h.MaxMode == "" {
			return fmt.Errorf("host %q: max-mode is required", h.Name)
		}
		if !providerNames[h.Provider] {
			return fmt.Errorf("host %q references unknown provider %q", h.Name, h.Provider)
		}
	}
	return nil
}

// Build converts a validated inventory file into a StaticInventory and the
// host list in file order.
func (f *InventoryFile) Build() (*evc.StaticInventory, []evc.HostRecord, error) {
	catalogs := map[evc.ProviderRef]evc.Catalog{}
	for _, p := range f.Providers {
		if len(p.Modes) == 0 {
			catalogs[evc.ProviderRef(p.Name)] = evc.DefaultCatalog()
			continue
		}
		catalog := make(evc.Catalog, 0, len(p.Modes))
		for _, m := range p.Modes {
			vendor, err := evc.ParseVendor(m.Vendor)
			if err != nil {
				return nil, nil, fmt.Errorf("provider %q, mode %q: %w", p.Name, m.Key, err)
			}
			catalog = append(catalog, evc.BaselineRecord{Key: m.Key, Vendor: vendor, Tier: m.Tier})
		}
		catalogs[evc.ProviderRef(p.Name)] = catalog
	}

	hosts := make([]evc.HostRecord, 0, len(f.Hosts))
	for _, h := range f.Hosts {
		hosts = append(hosts, evc.HostRecord{
			Name:       h.Name,
			MaxModeKey: h.MaxMode,
			Provider:   evc.ProviderRef(h.Provider),
		})
	}
	return evc.NewStaticInventory(catalogs), hosts, nil
}

// selectHosts picks the named hosts out of all, preserving the order the
// names were given. Empty names means all hosts in file order.
func selectHosts(all []evc.HostRecord, names []string) ([]evc.HostRecord, error) {
	if len(names) == 0 {
		return all, nil
	}
	byName := map[string]evc.HostRecord{}
	for _, h := range all {
		byName[h.Name] = h
	}
	selected := make([]evc.HostRecord, 0, len(names))
	for _, name := range names {
		h, ok := byName[name]
		if !ok {
			return nil, fmt.Errorf("unknown host %q (known hosts: %v)", name, hostNames(all))
		}
		selected = append(selected, h)
	}
	return selected, nil
}

func hostNames(hosts []evc.HostRecord) []string {
	names := make([]string, 0, len(hosts))
	for _, h := range hosts {
		names = append(names, h.Name)
	}
	return names
}
