package evc

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// Comparator implements the EVC comparison algorithms over an Inventory.
// All operations are synchronous, stateless, and read-only: each one fetches
// the provider's catalog fresh and holds nothing across calls.
type Comparator struct {
	inv Inventory
}

// NewComparator creates a Comparator over the given inventory collaborator.
func NewComparator(inv Inventory) *Comparator {
	return &Comparator{inv: inv}
}

// catalog fetches the provider's current mode catalog.
func (c *Comparator) catalog(ref ProviderRef) (Catalog, error) {
	modes, err := c.inv.ListSupportedModes(ref)
	if err != nil {
		return nil, fmt.Errorf("listing supported modes for provider %q: %w", ref, err)
	}
	return Catalog(modes), nil
}

// ResolveBaseline looks up key in the provider's current catalog.
// An unmatched key yields an *UnknownModeError carrying the valid key list.
func (c *Comparator) ResolveBaseline(ref ProviderRef, key string) (BaselineRecord, error) {
	catalog, err := c.catalog(ref)
	if err != nil {
		return BaselineRecord{}, err
	}
	rec, ok := catalog.Resolve(key)
	if !ok {
		return BaselineRecord{}, &UnknownModeError{Key: key, ValidKeys: catalog.Keys()}
	}
	return rec, nil
}

// MaxCommonBaseline computes the most capable EVC mode every host in hosts
// supports, and returns its key. It returns "" (no common mode, not an
// error) when any host's own mode key does not resolve against the catalog,
// or when the hosts span more than one CPU vendor.
//
// The provider is resolved once, from the first host; the result is
// order-independent because min(tier) is.
func (c *Comparator) MaxCommonBaseline(hosts []HostRecord) (string, error) {
	if len(hosts) == 0 {
		return "", ErrNoHosts
	}

	ref, err := c.inv.ProviderFor(hosts[0])
	if err != nil {
		return "", fmt.Errorf("resolving provider for host %q: %w", hosts[0].Name, err)
	}
	catalog, err := c.catalog(ref)
	if err != nil {
		return "", err
	}

	var current BaselineRecord
	for i, host := range hosts {
		rec, ok := catalog.Resolve(host.MaxModeKey)
		if !ok {
			// A host with an unrecognized mode makes no common mode determinable.
			logrus.Debugf("host %q: mode %q not in provider %q catalog, no common mode",
				host.Name, host.MaxModeKey, ref)
			return "", nil
		}
		logrus.Tracef("host %q: max mode %s (vendor=%s tier=%d)", host.Name, rec.Key, rec.Vendor, rec.Tier)
		if i == 0 {
			current = rec
			continue
		}
		if rec.Vendor != current.Vendor {
			// Mixed-vendor groups have no common EVC mode.
			logrus.Debugf("vendor mismatch: host %q is %s, group so far is %s",
				host.Name, rec.Vendor, current.Vendor)
			return "", nil
		}
		if rec.Tier < current.Tier {
			current = rec
		}
	}
	return current.Key, nil
}

// IsCompatible reports whether host can run at the EVC mode named by
// targetKey: same vendor and target tier at or below the host's own maximum.
// An unresolvable targetKey is a caller error (*UnknownModeError); an
// unresolvable host mode simply means the host is compatible with nothing.
func (c *Comparator) IsCompatible(host HostRecord, targetKey string) (bool, error) {
	ref, err := c.inv.ProviderFor(host)
	if err != nil {
		return false, fmt.Errorf("resolving provider for host %q: %w", host.Name, err)
	}
	catalog, err := c.catalog(ref)
	if err != nil {
		return false, err
	}

	target, ok := catalog.Resolve(targetKey)
	if !ok {
		return false, &UnknownModeError{Key: targetKey, ValidKeys: catalog.Keys()}
	}
	hostMax, ok := catalog.Resolve(host.MaxModeKey)
	if !ok {
		logrus.Debugf("host %q: mode %q not in provider %q catalog", host.Name, host.MaxModeKey, ref)
		return false, nil
	}
	return target.Vendor == hostMax.Vendor && target.Tier <= hostMax.Tier, nil
}

// FilterByCompatibility partitions hosts by compatibility with targetKey and
// returns, in input order, the hosts whose compatibility equals
// wantCompatible. The target is resolved once up front; an unresolvable
// targetKey short-circuits with *UnknownModeError and no results.
func (c *Comparator) FilterByCompatibility(hosts []HostRecord, targetKey string, wantCompatible bool) ([]HostRecord, error) {
	if len(hosts) == 0 {
		return nil, ErrNoHosts
	}

	ref, err := c.inv.ProviderFor(hosts[0])
	if err != nil {
		return nil, fmt.Errorf("resolving provider for host %q: %w", hosts[0].Name, err)
	}
	catalog, err := c.catalog(ref)
	if err != nil {
		return nil, err
	}
	target, ok := catalog.Resolve(targetKey)
	if !ok {
		return nil, &UnknownModeError{Key: targetKey, ValidKeys: catalog.Keys()}
	}

	selected := make([]HostRecord, 0, len(hosts))
	for _, host := range hosts {
		compatible := false
		if hostMax, ok := catalog.Resolve(host.MaxModeKey); ok {
			compatible = target.Vendor == hostMax.Vendor && target.Tier <= hostMax.Tier
		}
		if compatible == wantCompatible {
			selected = append(selected, host)
		}
	}
	return selected, nil
}
