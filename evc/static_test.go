package evc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaticInventory_ListSupportedModes(t *testing.T) {
	inv := NewStaticInventory(map[ProviderRef]Catalog{
		"vc-01": {{Key: "intel-haswell", Vendor: VendorIntel, Tier: 6}},
	})

	modes, err := inv.ListSupportedModes("vc-01")
	require.NoError(t, err)
	assert.Len(t, modes, 1)
	assert.Equal(t, "intel-haswell", modes[0].Key)

	_, err = inv.ListSupportedModes("vc-02")
	assert.Error(t, err, "unregistered provider must behave like an unreachable endpoint")
}

func TestStaticInventory_ProviderFor(t *testing.T) {
	inv := NewStaticInventory(map[ProviderRef]Catalog{"vc-01": DefaultCatalog()})

	ref, err := inv.ProviderFor(HostRecord{Name: "esx-01", Provider: "vc-01"})
	require.NoError(t, err)
	assert.Equal(t, ProviderRef("vc-01"), ref)

	_, err = inv.ProviderFor(HostRecord{Name: "esx-02"})
	assert.Error(t, err, "host without provider binding")

	_, err = inv.ProviderFor(HostRecord{Name: "esx-03", Provider: "vc-99"})
	assert.Error(t, err, "host bound to unknown provider")
}
