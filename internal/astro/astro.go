// Package astro computes raw sunrise and sunset instants for a location and
// civil day, backed by third-party solar-position libraries.
package astro

import (
	"fmt"
	"time"

	"github.com/nathan-osman/go-sunrise"
	"github.com/sixdouglas/suncalc"

	"github.com/ja-he/suntimes/internal/model"
)

// Algorithm names, as used in the config file.
const (
	AlgorithmGoSunrise = "go-sunrise"
	AlgorithmSuncalc   = "suncalc"
)

// A Provider computes the (unadjusted) sun times for a location and date.
type Provider interface {
	Get(c model.Coordinate, d model.Date) (model.SunTimes, error)
}

// ForAlgorithm returns the provider registered under the given name.
func ForAlgorithm(name string) (Provider, error) {
	switch name {
	case AlgorithmGoSunrise, "":
		return GoSunrise{}, nil
	case AlgorithmSuncalc:
		return Suncalc{}, nil
	default:
		return nil, fmt.Errorf("unknown algorithm '%s' (expected '%s' or '%s')", name, AlgorithmGoSunrise, AlgorithmSuncalc)
	}
}

// GoSunrise uses github.com/nathan-osman/go-sunrise.
type GoSunrise struct{}

// Get returns the sun times computed with go-sunrise.
func (GoSunrise) Get(c model.Coordinate, d model.Date) (model.SunTimes, error) {
	// calculate sunrise sunset (UTC)
	riseTime, setTime := sunrise.SunriseSunset(c.Latitude, c.Longitude, d.Year, time.Month(d.Month), d.Day)
	return checked(c, d, model.SunTimes{Rise: riseTime.UTC(), Set: setTime.UTC()})
}

// Suncalc uses github.com/sixdouglas/suncalc.
type Suncalc struct{}

// Get returns the sun times computed with suncalc.
func (Suncalc) Get(c model.Coordinate, d model.Date) (model.SunTimes, error) {
	// suncalc picks the solar transit closest to the given instant, so ask
	// about noon rather than midnight
	times := suncalc.GetTimes(d.ToGotime().Add(12*time.Hour), c.Latitude, c.Longitude)
	return checked(c, d, model.SunTimes{Rise: times["sunrise"].Value.UTC(), Set: times["sunset"].Value.UTC()})
}

// checked rejects pairs that cannot be a real day: zero instants (which
// go-sunrise returns for polar day and night), sunsets not after sunrise and
// days longer than 24h (which suncalc produces from NaN hour angles).
func checked(c model.Coordinate, d model.Date, s model.SunTimes) (model.SunTimes, error) {
	length := s.Set.Sub(s.Rise)
	if s.Rise.IsZero() || s.Set.IsZero() || length <= 0 || length > 24*time.Hour {
		return model.SunTimes{}, fmt.Errorf("%w: %s on %s", model.ErrNoSunEvent, c.String(), d.ToString())
	}
	return s, nil
}
