// Package resolver decides which sunrise and sunset instants are relevant
// relative to a reference instant.
package resolver

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/ja-he/suntimes/internal/astro"
	"github.com/ja-he/suntimes/internal/model"
)

// Event kinds accepted by Next.
const (
	KindSunrise = "sunrise"
	KindSunset  = "sunset"
)

// Defaults for the resolver parameters.
const (
	DefaultMargin    = 10 * time.Minute
	DefaultLookahead = 7 * time.Hour
)

// Resolver computes adjusted sun times relative to a reference instant.
type Resolver struct {
	provider  astro.Provider
	margin    time.Duration
	lookahead time.Duration
}

// New creates a new Resolver.
func New(provider astro.Provider, margin, lookahead time.Duration) *Resolver {
	return &Resolver{
		provider:  provider,
		margin:    margin,
		lookahead: lookahead,
	}
}

// Adjusted returns the margin-adjusted sun times for the given civil day.
func (r *Resolver) Adjusted(c model.Coordinate, d model.Date) (model.SunTimes, error) {
	raw, err := r.provider.Get(c, d)
	if err != nil {
		return model.SunTimes{}, err
	}
	return raw.Adjusted(r.margin), nil
}

// adjustedAt returns the adjusted sun times for the civil day t falls on.
func (r *Resolver) adjustedAt(c model.Coordinate, t time.Time) (model.SunTimes, error) {
	return r.Adjusted(c, model.DateOf(t))
}

// Window holds the adjusted sun times of today and tomorrow.
type Window struct {
	Today    model.SunTimes
	Tomorrow model.SunTimes
}

// String formats the window as the four millisecond timestamps
// "<rise today> <set today> <rise tomorrow> <set tomorrow>".
func (w Window) String() string {
	return fmt.Sprintf("%d %d %d %d",
		w.Today.Rise.UnixMilli(), w.Today.Set.UnixMilli(),
		w.Tomorrow.Rise.UnixMilli(), w.Tomorrow.Set.UnixMilli(),
	)
}

// Window returns the adjusted sun times for the UTC day of now and for the
// UTC day 24h later.
func (r *Resolver) Window(c model.Coordinate, now time.Time) (Window, error) {
	now = now.UTC()

	today, err := r.adjustedAt(c, now)
	if err != nil {
		return Window{}, err
	}
	tomorrow, err := r.adjustedAt(c, now.Add(24*time.Hour))
	if err != nil {
		return Window{}, err
	}

	log.Debug().
		Str("coordinate", c.String()).
		Time("now", now).
		Str("today", model.DateOf(now).ToString()).
		Str("tomorrow", model.DateOf(now.Add(24*time.Hour)).ToString()).
		Msg("computed two-day window")

	return Window{Today: today, Tomorrow: tomorrow}, nil
}

// Phase classifies the shifted instant relative to today's adjusted sun times.
type Phase int

const (
	// PhaseBeforeSunrise is the fallback phase, in which today's times stand.
	// It also covers a shifted instant that equals the sunset exactly.
	PhaseBeforeSunrise Phase = iota
	// PhaseDaytime means sunrise <= shifted < sunset.
	PhaseDaytime
	// PhaseAfterSunset means sunrise < sunset < shifted.
	PhaseAfterSunset
)

func (p Phase) String() string {
	switch p {
	case PhaseBeforeSunrise:
		return "before-sunrise"
	case PhaseDaytime:
		return "daytime"
	case PhaseAfterSunset:
		return "after-sunset"
	default:
		return "unknown"
	}
}

// Selection is the result of resolving the next sun events.
type Selection struct {
	Phase   Phase
	Shifted time.Time
	Sunrise time.Time
	// Sunset is always today's adjusted sunset, it is never advanced.
	Sunset time.Time
}

// Select resolves the relevant sunrise and sunset for the instant now.
//
// The current time shifted by the lookahead is classified against today's
// window. During daytime the sunrise is taken from the day 24h ahead, after
// sunset from the day 12h ahead. The sunset is left as today's in all cases.
func (r *Resolver) Select(c model.Coordinate, now time.Time) (Selection, error) {
	now = now.UTC()

	today, err := r.adjustedAt(c, now)
	if err != nil {
		return Selection{}, err
	}

	sel := Selection{
		Phase:   PhaseBeforeSunrise,
		Shifted: now.Add(r.lookahead),
		Sunrise: today.Rise,
		Sunset:  today.Set,
	}

	var ahead time.Duration
	switch {
	case today.Contains(sel.Shifted):
		sel.Phase = PhaseDaytime
		ahead = 24 * time.Hour
	case today.Rise.Before(today.Set) && today.Set.Before(sel.Shifted):
		sel.Phase = PhaseAfterSunset
		ahead = 12 * time.Hour
	}

	if sel.Phase != PhaseBeforeSunrise {
		next, err := r.adjustedAt(c, now.Add(ahead))
		if err != nil {
			return Selection{}, err
		}
		sel.Sunrise = next.Rise
	}

	log.Debug().
		Str("coordinate", c.String()).
		Time("now", now).
		Time("shifted", sel.Shifted).
		Stringer("phase", sel.Phase).
		Time("sunrise", sel.Sunrise).
		Time("sunset", sel.Sunset).
		Msg("selected sun events")

	return sel, nil
}

// Next returns the selected event of the given kind in milliseconds since the
// epoch. Kinds other than KindSunrise and KindSunset yield 0.
func (r *Resolver) Next(c model.Coordinate, kind string, now time.Time) (int64, error) {
	sel, err := r.Select(c, now)
	if err != nil {
		return 0, err
	}

	switch kind {
	case KindSunrise:
		return sel.Sunrise.UnixMilli(), nil
	case KindSunset:
		return sel.Sunset.UnixMilli(), nil
	default:
		log.Debug().Str("kind", kind).Msg("unrecognized event kind, yielding 0")
		return 0, nil
	}
}
