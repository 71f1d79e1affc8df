package model

import (
	"errors"
	"time"
)

// ErrNoSunEvent is returned when no sunrise or sunset can be computed for a
// location and date, e.g. during polar day or polar night.
var ErrNoSunEvent = errors.New("no sunrise/sunset for location and date")

// SunTimes represents the sunrise and sunset times of a date.
type SunTimes struct {
	Rise, Set time.Time
}

// Adjusted returns the sun times narrowed by the margin on both ends, i.e.
// sunrise moved later and sunset moved earlier.
func (s SunTimes) Adjusted(margin time.Duration) SunTimes {
	return SunTimes{
		Rise: s.Rise.Add(margin),
		Set:  s.Set.Add(-margin),
	}
}

// Contains reports whether t lies in the half-open interval [Rise, Set).
func (s SunTimes) Contains(t time.Time) bool {
	return !t.Before(s.Rise) && t.Before(s.Set)
}
