package evc

import (
	"fmt"
	"strings"
)

// Vendor identifies a CPU manufacturer lineage. Modes from different vendors
// are never comparable.
type Vendor string

const (
	VendorIntel Vendor = "intel"
	VendorAMD   Vendor = "amd"
)

// ValidVendors is the set of recognized vendor names.
// Shared by ParseVendor and inventory file validation to avoid duplication.
var ValidVendors = map[Vendor]bool{VendorIntel: true, VendorAMD: true}

// ParseVendor maps a vendor name (case-insensitive) to a Vendor.
func ParseVendor(s string) (Vendor, error) {
	v := Vendor(strings.ToLower(strings.TrimSpace(s)))
	if !ValidVendors[v] {
		return "", fmt.Errorf("unknown CPU vendor %q (valid: intel, amd)", s)
	}
	return v, nil
}

// BaselineRecord is one EVC mode known to a provider instance: a named CPU
// feature level with a vendor and an ordering tier. Within a vendor, a higher
// tier is a strict superset of all lower tiers' instruction sets.
type BaselineRecord struct {
	Key    string // unique within a provider instance
	Vendor Vendor
	Tier   int // ordering within Vendor; lower = older/less capable
}

// Catalog is the ordered set of EVC modes one provider instance currently
// supports. It is a point-in-time view: comparator operations fetch a fresh
// Catalog from the Inventory rather than holding one across calls.
type Catalog []BaselineRecord

// Resolve looks up a mode by key (case-sensitive exact match).
// The second return value reports whether the key was found.
func (c Catalog) Resolve(key string) (BaselineRecord, bool) {
	for _, rec := range c {
		if rec.Key == key {
			return rec, true
		}
	}
	return BaselineRecord{}, false
}

// Keys returns the mode keys in catalog order.
func (c Catalog) Keys() []string {
	keys := make([]string, 0, len(c))
	for _, rec := range c {
		keys = append(keys, rec.Key)
	}
	return keys
}
