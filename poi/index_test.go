package poi_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Excalibur888/PotooMaps/dict"
	"github.com/Excalibur888/PotooMaps/geo"
	"github.com/Excalibur888/PotooMaps/poi"
)

func TestIndex(t *testing.T) {
	d := dict.New[*poi.POI]()
	for _, p := range []*poi.POI{
		{Name: "a", Lat: 45.00, Lon: 5.00},
		{Name: "b", Lat: 45.10, Lon: 5.10},
		{Name: "c", Lat: 45.20, Lon: 5.00},
		{Name: "d", Lat: 48.85, Lon: 2.35},
	} {
		d.Insert(p.Name, p)
	}

	idx := poi.NewIndex(d)
	require.Equal(t, 4, idx.Len())
	require.Equal(t, 2, idx.CountAround(45, 5, 0.15))
	require.Equal(t, 3, idx.CountAround(45.1, 5.05, 0.15))
	require.Zero(t, idx.CountAround(43, 1, 0.15))

	within := idx.Within(geo.Around(48.85, 2.35, 0.01))
	require.Len(t, within, 1)
	require.Equal(t, "d", within[0].Name)
}
