package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/ja-he/suntimes/internal/astro"
	"github.com/ja-he/suntimes/internal/config"
	"github.com/ja-he/suntimes/internal/model"
	"github.com/ja-he/suntimes/internal/resolver"
)

// LocationFlags are the flags shared by the commands that compute sun times.
type LocationFlags struct {
	Latitude   *float64 `long:"lat" description:"latitude in degrees (default 42.6334)" value-name:"<degrees>"`
	Longitude  *float64 `long:"lon" description:"longitude in degrees (default -71.3162)" value-name:"<degrees>"`
	At         string   `long:"at" description:"the reference instant, instead of the current time" value-name:"<RFC3339 time>"`
	ConfigFile string   `long:"config" description:"config file to read (none is read otherwise)" value-name:"<file>"`
}

// setup builds the resolver and determines the coordinate and the reference
// instant. The coordinate comes from the flags, then the config file (if
// given), then the defaults.
func (f *LocationFlags) setup() (*resolver.Resolver, model.Coordinate, time.Time, error) {
	configData, err := f.readConfig()
	if err != nil {
		return nil, model.Coordinate{}, time.Time{}, err
	}

	coordinate := model.Coordinate{
		Latitude:  *configData.Location.Latitude,
		Longitude: *configData.Location.Longitude,
	}
	if f.Latitude != nil {
		coordinate.Latitude = *f.Latitude
	}
	if f.Longitude != nil {
		coordinate.Longitude = *f.Longitude
	}
	if err := coordinate.Validate(); err != nil {
		return nil, model.Coordinate{}, time.Time{}, err
	}

	provider, err := astro.ForAlgorithm(configData.Algorithm)
	if err != nil {
		return nil, model.Coordinate{}, time.Time{}, err
	}
	margin, err := configData.MarginDuration()
	if err != nil {
		return nil, model.Coordinate{}, time.Time{}, err
	}
	lookahead, err := configData.LookaheadDuration()
	if err != nil {
		return nil, model.Coordinate{}, time.Time{}, err
	}

	now := clock.Now()
	if f.At != "" {
		now, err = time.Parse(time.RFC3339, f.At)
		if err != nil {
			return nil, model.Coordinate{}, time.Time{}, fmt.Errorf("can't parse --at '%s' (%w)", f.At, err)
		}
	}

	log.Debug().
		Str("coordinate", coordinate.String()).
		Str("algorithm", configData.Algorithm).
		Dur("margin", margin).
		Dur("lookahead", lookahead).
		Time("now", now).
		Msg("set up resolver")

	return resolver.New(provider, margin, lookahead), coordinate, now, nil
}

// readConfig reads the config file given with --config, or returns the
// defaults if there is none.
func (f *LocationFlags) readConfig() (config.Config, error) {
	if f.ConfigFile == "" {
		return config.Default(), nil
	}

	yamlData, err := os.ReadFile(f.ConfigFile)
	if err != nil {
		return config.Config{}, fmt.Errorf("can't read config file '%s' (%w)", f.ConfigFile, err)
	}

	configData, err := config.ParseConfigAugmentDefaults(yamlData)
	if err != nil {
		return config.Config{}, fmt.Errorf("can't parse config file '%s' (%w)", f.ConfigFile, err)
	}
	return configData, nil
}
