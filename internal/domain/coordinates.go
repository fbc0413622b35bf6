package domain

import "fmt"

// Immutable geographic coordinates of the birthplace (WGS 84 degrees).
type GeoCoordinate struct {
	Lat float64
	Lon float64
}

// Validate checks the coordinate against the ranges accepted by the zone
// index and the house computation.
func (c GeoCoordinate) Validate() error {
	if c.Lat < -90 || c.Lat > 90 {
		return fmt.Errorf("latitude %v out of range [-90, 90]: %w", c.Lat, ErrMalformedInput)
	}
	if c.Lon < -180 || c.Lon > 180 {
		return fmt.Errorf("longitude %v out of range [-180, 180]: %w", c.Lon, ErrMalformedInput)
	}
	return nil
}
