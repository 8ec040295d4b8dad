package evc

import "fmt"

// StaticInventory is an in-memory Inventory: a fixed map of provider
// instances to their mode catalogs. It backs the CLI (catalogs loaded from an
// inventory file) and tests; embedders with a live management API supply
// their own Inventory instead.
type StaticInventory struct {
	catalogs map[ProviderRef]Catalog
}

// NewStaticInventory creates a StaticInventory over the given catalogs.
// The catalogs map is used as-is; callers must not mutate it afterwards.
func NewStaticInventory(catalogs map[ProviderRef]Catalog) *StaticInventory {
	return &StaticInventory{catalogs: catalogs}
}

// ListSupportedModes returns the catalog registered for ref.
// An unregistered provider is an inventory error, mirroring an unreachable
// management endpoint in a live implementation.
func (s *StaticInventory) ListSupportedModes(ref ProviderRef) ([]BaselineRecord, error) {
	catalog, ok := s.catalogs[ref]
	if !ok {
		return nil, fmt.Errorf("unknown provider %q", ref)
	}
	return catalog, nil
}

// ProviderFor returns the provider recorded on the host itself.
func (s *StaticInventory) ProviderFor(host HostRecord) (ProviderRef, error) {
	if host.Provider == "" {
		return "", fmt.Errorf("host %q has no provider", host.Name)
	}
	if _, ok := s.catalogs[host.Provider]; !ok {
		return "", fmt.Errorf("host %q references unknown provider %q", host.Name, host.Provider)
	}
	return host.Provider, nil
}

// DefaultCatalog returns the well-known EVC mode table, one entry per CPU
// generation a stock provider recognizes. Inventory files that omit a
// per-provider mode list get this catalog.
func DefaultCatalog() Catalog {
	return Catalog{
		{Key: "intel-merom", Vendor: VendorIntel, Tier: 0},
		{Key: "intel-penryn", Vendor: VendorIntel, Tier: 1},
		{Key: "intel-nehalem", Vendor: VendorIntel, Tier: 2},
		{Key: "intel-westmere", Vendor: VendorIntel, Tier: 3},
		{Key: "intel-sandybridge", Vendor: VendorIntel, Tier: 4},
		{Key: "intel-ivybridge", Vendor: VendorIntel, Tier: 5},
		{Key: "intel-haswell", Vendor: VendorIntel, Tier: 6},
		{Key: "intel-broadwell", Vendor: VendorIntel, Tier: 7},
		{Key: "intel-skylake", Vendor: VendorIntel, Tier: 8},
		{Key: "intel-cascadelake", Vendor: VendorIntel, Tier: 9},
		{Key: "intel-icelake", Vendor: VendorIntel, Tier: 10},
		{Key: "amd-rev-e", Vendor: VendorAMD, Tier: 0},
		{Key: "amd-rev-f", Vendor: VendorAMD, Tier: 1},
		{Key: "amd-greyhound", Vendor: VendorAMD, Tier: 2},
		{Key: "amd-bulldozer", Vendor: VendorAMD, Tier: 3},
		{Key: "amd-piledriver", Vendor: VendorAMD, Tier: 4},
		{Key: "amd-streamroller", Vendor: VendorAMD, Tier: 5},
		{Key: "amd-zen", Vendor: VendorAMD, Tier: 6},
		{Key: "amd-zen2", Vendor: VendorAMD, Tier: 7},
		{Key: "amd-zen3", Vendor: VendorAMD, Tier: 8},
	}
}
