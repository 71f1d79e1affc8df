package model_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/ja-he/suntimes/internal/model"
)

func TestDateOf(t *testing.T) {
	t.Run("uses UTC date", func(t *testing.T) {
		// 2024-06-21 22:30 in UTC-4 is already the 22nd in UTC
		edt := time.FixedZone("EDT", -4*60*60)
		assert.Equal(t, model.Date{Year: 2024, Month: 6, Day: 22}, model.DateOf(time.Date(2024, 6, 21, 22, 30, 0, 0, edt)))
	})
	t.Run("midnight belongs to the new day", func(t *testing.T) {
		assert.Equal(t, model.Date{Year: 2024, Month: 1, Day: 1}, model.DateOf(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)))
	})
	t.Run("24h later crosses month and year ends", func(t *testing.T) {
		assert.Equal(t, model.Date{Year: 2024, Month: 3, Day: 1}, model.DateOf(time.Date(2024, 2, 29, 12, 0, 0, 0, time.UTC).Add(24*time.Hour)))
		assert.Equal(t, model.Date{Year: 2025, Month: 1, Day: 1}, model.DateOf(time.Date(2024, 12, 31, 23, 59, 0, 0, time.UTC).Add(24*time.Hour).Add(-23*time.Hour)))
	})
}

func TestToStringAndToGotime(t *testing.T) {
	d := model.Date{Year: 2024, Month: 6, Day: 1}
	assert.Equal(t, "2024-06-01", d.ToString())
	assert.Equal(t, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), d.ToGotime())
	assert.Equal(t, d, model.DateOf(d.ToGotime()))
}
