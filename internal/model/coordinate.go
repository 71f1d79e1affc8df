package model

import (
	"errors"
	"fmt"
)

// Default location, used whenever no latitude or longitude is configured.
const (
	DefaultLatitude  = 42.6334
	DefaultLongitude = -71.3162
)

// ErrInvalidCoordinate is returned for latitudes or longitudes outside of
// their valid range.
var ErrInvalidCoordinate = errors.New("invalid coordinate")

// Coordinate is a geographic position in degrees.
type Coordinate struct {
	Latitude  float64
	Longitude float64
}

// DefaultCoordinate returns the coordinate used when none is given.
func DefaultCoordinate() Coordinate {
	return Coordinate{Latitude: DefaultLatitude, Longitude: DefaultLongitude}
}

// Validate checks that latitude is within [-90,90] and longitude within
// [-180,180].
func (c Coordinate) Validate() error {
	if c.Latitude < -90 || c.Latitude > 90 {
		return fmt.Errorf("%w: latitude %f not in [-90,90]", ErrInvalidCoordinate, c.Latitude)
	}
	if c.Longitude < -180 || c.Longitude > 180 {
		return fmt.Errorf("%w: longitude %f not in [-180,180]", ErrInvalidCoordinate, c.Longitude)
	}
	return nil
}

func (c Coordinate) String() string {
	return fmt.Sprintf("(%.4f,%.4f)", c.Latitude, c.Longitude)
}
