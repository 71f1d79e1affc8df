package config

import (
	"github.com/ja-he/suntimes/internal/astro"
	"github.com/ja-he/suntimes/internal/model"
)

// Default returns the default configuration.
func Default() Config {
	lat, lon := model.DefaultLatitude, model.DefaultLongitude
	return Config{
		Location: Location{
			Latitude:  &lat,
			Longitude: &lon,
		},
		Margin:    "10m",
		Lookahead: "7h",
		Algorithm: astro.AlgorithmGoSunrise,
	}
}
