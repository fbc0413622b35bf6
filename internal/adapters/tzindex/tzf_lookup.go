// Package tzindex adapts the embedded tzf polygon index to the ZoneLookup
// port. The index is built once at startup, is read-only afterwards, and
// serves concurrent lookups without locking or network access.
package tzindex

import (
	"fmt"

	"github.com/ringsaturn/tzf"
)

type Index struct {
	finder tzf.F
}

// NewIndex builds the in-process index from the embedded compressed timezone
// polygon data. Construction decompresses the dataset and takes a moment, so
// the composition root does it once and shares the result.
func NewIndex() (*Index, error) {
	finder, err := tzf.NewDefaultFinder()
	if err != nil {
		return nil, fmt.Errorf("build timezone index: %w", err)
	}

	return &Index{finder: finder}, nil
}

// ZoneAt returns the IANA zone whose polygon covers the coordinate.
func (i *Index) ZoneAt(lat, lon float64) (string, bool) {
	// tzf takes (lng, lat), following GeoJSON axis order.
	name := i.finder.GetTimezoneName(lon, lat)
	return name, name != ""
}

// NearestZones returns best-effort candidates for coordinates outside every
// polygon, such as territorial waters off a coast.
func (i *Index) NearestZones(lat, lon float64) []string {
	names, err := i.finder.GetTimezoneNames(lon, lat)
	if err != nil {
		return nil
	}
	return names
}
