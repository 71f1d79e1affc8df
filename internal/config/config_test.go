package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ja-he/suntimes/internal/astro"
	"github.com/ja-he/suntimes/internal/config"
)

func TestParseConfigAugmentDefaults(t *testing.T) {
	t.Run("empty data yields defaults", func(t *testing.T) {
		c, err := config.ParseConfigAugmentDefaults([]byte{})
		require.NoError(t, err)

		require.NotNil(t, c.Location.Latitude)
		require.NotNil(t, c.Location.Longitude)
		assert.Equal(t, 42.6334, *c.Location.Latitude)
		assert.Equal(t, -71.3162, *c.Location.Longitude)
		assert.Equal(t, astro.AlgorithmGoSunrise, c.Algorithm)

		margin, err := c.MarginDuration()
		require.NoError(t, err)
		assert.Equal(t, 10*time.Minute, margin)

		lookahead, err := c.LookaheadDuration()
		require.NoError(t, err)
		assert.Equal(t, 7*time.Hour, lookahead)
	})

	t.Run("partial data overrides only what is given", func(t *testing.T) {
		c, err := config.ParseConfigAugmentDefaults([]byte(`
location:
  latitude: 0
margin: 15m
algorithm: suncalc
`))
		require.NoError(t, err)

		assert.Equal(t, 0.0, *c.Location.Latitude)
		assert.Equal(t, -71.3162, *c.Location.Longitude)
		assert.Equal(t, astro.AlgorithmSuncalc, c.Algorithm)

		margin, err := c.MarginDuration()
		require.NoError(t, err)
		assert.Equal(t, 15*time.Minute, margin)

		lookahead, err := c.LookaheadDuration()
		require.NoError(t, err)
		assert.Equal(t, 7*time.Hour, lookahead)
	})

	t.Run("full data", func(t *testing.T) {
		c, err := config.ParseConfigAugmentDefaults([]byte(`
location:
  latitude: 53.18
  longitude: 8.6
margin: 0s
lookahead: 1h30m
algorithm: go-sunrise
`))
		require.NoError(t, err)

		assert.Equal(t, 53.18, *c.Location.Latitude)
		assert.Equal(t, 8.6, *c.Location.Longitude)

		margin, err := c.MarginDuration()
		require.NoError(t, err)
		assert.Equal(t, time.Duration(0), margin)

		lookahead, err := c.LookaheadDuration()
		require.NoError(t, err)
		assert.Equal(t, 90*time.Minute, lookahead)
	})

	t.Run("defaults are not shared between calls", func(t *testing.T) {
		a, err := config.ParseConfigAugmentDefaults([]byte{})
		require.NoError(t, err)
		*a.Location.Latitude = 1

		b, err := config.ParseConfigAugmentDefaults([]byte{})
		require.NoError(t, err)
		assert.Equal(t, 42.6334, *b.Location.Latitude)
	})

	invalid := map[string]string{
		"malformed yaml":     "location: [",
		"wrong type":         "location:\n  latitude: north\n",
		"unparseable margin": "margin: ten minutes\n",
		"negative margin":    "margin: -10m\n",
		"negative lookahead": "lookahead: -7h\n",
	}
	for name, data := range invalid {
		t.Run(name, func(t *testing.T) {
			_, err := config.ParseConfigAugmentDefaults([]byte(data))
			assert.Error(t, err)
		})
	}
}
