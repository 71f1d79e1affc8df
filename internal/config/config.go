package config

import (
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the configuration data as present in a config file at
// '${SUNTIMES_HOME}/config.yaml'.
type Config struct {
	Location  Location `yaml:"location"`
	Margin    string   `yaml:"margin,omitempty"`
	Lookahead string   `yaml:"lookahead,omitempty"`
	Algorithm string   `yaml:"algorithm,omitempty"`
}

// A Location as defined in a config file.
// Pointers allow telling an omitted value from an explicit zero (equator,
// prime meridian).
type Location struct {
	Latitude  *float64 `yaml:"latitude,omitempty"`
	Longitude *float64 `yaml:"longitude,omitempty"`
}

// ParseConfigAugmentDefaults parses the configuration specified in
// YAML-formatted data and uses it to augment the default configuration.
func ParseConfigAugmentDefaults(yamlData []byte) (Config, error) {
	defaultConfig := Default()

	parsedConfig := Config{}
	err := yaml.Unmarshal(yamlData, &parsedConfig)
	if err != nil {
		return defaultConfig, fmt.Errorf("error unmarshaling yaml (%w)", err)
	}

	result := defaultConfig.augmentWith(parsedConfig)
	if _, err := result.MarginDuration(); err != nil {
		return defaultConfig, err
	}
	if _, err := result.LookaheadDuration(); err != nil {
		return defaultConfig, err
	}

	return result, nil
}

func (base Config) augmentWith(augment Config) Config {
	result := base

	if augment.Location.Latitude != nil {
		result.Location.Latitude = augment.Location.Latitude
	}
	if augment.Location.Longitude != nil {
		result.Location.Longitude = augment.Location.Longitude
	}
	if augment.Margin != "" {
		result.Margin = augment.Margin
	}
	if augment.Lookahead != "" {
		result.Lookahead = augment.Lookahead
	}
	if augment.Algorithm != "" {
		result.Algorithm = augment.Algorithm
	}

	return result
}

// MarginDuration returns the margin as a duration.
//
// For format see time.ParseDuration. Negative values are rejected.
func (c Config) MarginDuration() (time.Duration, error) {
	return parseNonNegativeDuration("margin", c.Margin)
}

// LookaheadDuration returns the lookahead as a duration.
//
// For format see time.ParseDuration. Negative values are rejected.
func (c Config) LookaheadDuration() (time.Duration, error) {
	return parseNonNegativeDuration("lookahead", c.Lookahead)
}

func parseNonNegativeDuration(key, value string) (time.Duration, error) {
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s '%s' (%w)", key, value, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("invalid %s '%s' (must not be negative)", key, value)
	}
	return d, nil
}
