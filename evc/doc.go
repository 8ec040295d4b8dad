// Package evc implements EVC (Enhanced vMotion Compatibility) mode resolution
// and comparison across virtualization hosts.
//
// # Reading Guide
//
// Start with these three files to understand the core:
//   - baseline.go: BaselineRecord (vendor + tier) and the per-provider Catalog
//   - inventory.go: the Inventory collaborator that supplies catalogs and host→provider bindings
//   - comparator.go: the comparison algorithms (max common mode, per-host compatibility, filtering)
//
// # Architecture
//
// The package is a pure function library over externally supplied data. A
// Comparator wraps an Inventory and re-reads the provider's catalog on every
// operation — the supported mode set can change between provider sessions, so
// nothing is cached across calls. StaticInventory (static.go) is the built-in
// Inventory used by the CLI and tests; embedders with a live management API
// supply their own.
//
// # Key Invariants
//
// Modes are comparable only within one CPU vendor lineage: a higher tier is a
// strict superset of every lower tier's feature set, and modes from different
// vendors are never interchangeable. The maximum common mode of a host group
// is therefore the minimum tier among the hosts' own maximum modes, and any
// vendor mix collapses the result to "no common mode".
package evc
