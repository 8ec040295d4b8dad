package evc

// ProviderRef identifies one provider (management endpoint) instance. All
// hosts passed to a single comparator operation must belong to the same
// provider instance; the comparator resolves the provider once from the
// first host and does not validate the rest (first-host-wins).
type ProviderRef string

// HostRecord is a read-only view of one virtualization host as supplied by
// the embedding inventory system. Nothing in this package mutates hosts.
type HostRecord struct {
	Name       string      // display name, used for CLI addressing only
	MaxModeKey string      // most capable EVC mode the host's CPU supports
	Provider   ProviderRef // provider instance the host belongs to
}

// Inventory is the external collaborator that supplies provider catalogs and
// host→provider bindings. Implementations own all connection, session, and
// authentication handling; errors they return propagate to comparator callers
// unmodified apart from %w wrapping.
type Inventory interface {
	// ListSupportedModes returns the provider's current EVC mode catalog.
	// Called fresh on every comparator operation.
	ListSupportedModes(ref ProviderRef) ([]BaselineRecord, error)

	// ProviderFor resolves the provider instance a host belongs to.
	ProviderFor(host HostRecord) (ProviderRef, error)
}
