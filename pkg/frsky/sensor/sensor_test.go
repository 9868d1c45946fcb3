package sensor

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/robotalks/frsky.go/pkg/frsky/value"
)

func TestCatalogLookup(t *testing.T) {
	d, ok := Hub.Lookup(HubTemp1)
	require.True(t, ok)
	require.Equal(t, "TEMP1", d.Name)
	require.Equal(t, ProtocolHub, d.Protocol)

	d, ok = Hub.ByName("accx")
	require.True(t, ok)
	require.Equal(t, uint16(0x24), d.ID)
	require.Equal(t, float64(1000), d.Scale)

	d, ok = Sport.Lookup(SportA4)
	require.True(t, ok)
	require.Equal(t, "A4", d.Name)
	require.Equal(t, ProtocolSport, d.Protocol)

	_, ok = Hub.Lookup(0x07)
	require.False(t, ok)
	_, ok = Sport.Lookup(0x0024)
	require.False(t, ok)

	require.Equal(t, Sport, ForProtocol(ProtocolSport))
	require.Equal(t, Hub, ForProtocol(ProtocolHub))
}

func TestCatalogPairs(t *testing.T) {
	for _, c := range []*Catalog{Hub, Sport} {
		all := c.All()
		require.NotEmpty(t, all)
		for n, d := range all {
			if n > 0 {
				require.True(t, all[n-1].ID < d.ID, "catalog must be ordered")
			}
			if d.Part == Whole {
				continue
			}
			pair, ok := c.Lookup(d.Pair)
			require.Truef(t, ok, "pair of %s missing", d.Name)
			require.Equal(t, d.ID, pair.Pair)
			require.NotEqual(t, d.Part, pair.Part)
			require.Equal(t, d.Kind, pair.Kind)
		}
	}
}

func TestQuantize(t *testing.T) {
	testCases := []struct {
		name     string
		catalog  *Catalog
		id       uint16
		physical float64
		raw      int32
	}{
		{"temperature", Hub, HubTemp1, -20, -20},
		{"acceleration", Hub, HubAccX, -1.234, -1234},
		{"current", Hub, HubCurrent, 12.3, 123},
		{"rpm", Hub, HubRPM, 60000, 60000},
		{"altitude", Sport, SportAlt, -12.34, -1234},
		{"vfas", Sport, SportVFAS, 11.1, 1110},
		{"gps speed", Sport, SportGPSSpeed, 3000000, -1294967296},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d, ok := tc.catalog.Lookup(tc.id)
			require.True(t, ok)
			raw, err := d.Quantize(tc.physical)
			require.NoError(t, err)
			require.Equal(t, tc.raw, raw)
			v, err := d.Physical(raw)
			require.NoError(t, err)
			require.InDelta(t, tc.physical, v, 1/d.Scale)
		})
	}
}

func TestQuantizeRange(t *testing.T) {
	d, _ := Hub.Lookup(HubAccX)
	_, err := d.Quantize(40)
	require.IsType(t, &value.RangeError{}, err)

	d, _ = Hub.Lookup(HubRPM)
	_, err = d.Quantize(-1)
	require.IsType(t, &value.RangeError{}, err)
	_, err = d.Quantize(70000)
	require.IsType(t, &value.RangeError{}, err)

	d, _ = Sport.Lookup(SportCurr)
	_, err = d.Quantize(-0.5)
	require.IsType(t, &value.RangeError{}, err)

	d, _ = Hub.Lookup(HubCellVolt)
	_, err = d.Quantize(3.7)
	require.Equal(t, ErrNotScalar, err)
	_, err = d.Physical(0)
	require.Equal(t, ErrNotScalar, err)
}
