package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sourdough-tracker/internal/errors"
)

var feedDay = time.Date(2026, 3, 14, 8, 30, 0, 0, time.UTC)

func intPtr(v int) *int { return &v }

func TestNewFeeding(t *testing.T) {
	cfg := NewConfig(500, 100, NewRatio(1, 1, 1), ".")
	obs := Observations{Smell: "yeasty", PeakHours: intPtr(6), Notes: "warm kitchen"}

	f := NewFeeding(650, cfg, obs, feedDay)

	assert.Equal(t, "2026-03-14", f.Date)
	assert.Equal(t, 650, f.JarWeightTotal)
	assert.Equal(t, 150, f.StarterWeight)
	assert.Equal(t, "yeasty", f.Smell)
	assert.Equal(t, 6, *f.PeakHours)
	assert.Equal(t, "warm kitchen", f.Notes)
	assert.Equal(t, cfg, f.Config())
}

func TestNewFeeding_NegativeStarterWeightIsKept(t *testing.T) {
	cfg := NewConfig(500, 100, NewRatio(1, 2, 2), ".")

	f := NewFeeding(420, cfg, Observations{}, feedDay)

	assert.Equal(t, -80, f.StarterWeight)
}

func TestFeeding_TargetTotalWeight(t *testing.T) {
	tests := []struct {
		name       string
		jarWeight  int
		keepTarget int
		expected   int
		wantErr    bool
	}{
		{"typical", 500, 100, 600, false},
		{"small jar", 1, 1, 2, false},
		{"large keep", 350, 250, 600, false},
		{"zero keep target", 500, 0, 0, true},
		{"negative keep target", 500, -10, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig(tt.jarWeight, tt.keepTarget, NewRatio(1, 2, 2), ".")
			f := NewFeeding(700, cfg, Observations{}, feedDay)

			got, err := f.TargetTotalWeight()
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.IsErrorType(err, errors.ErrorTypeInvalidConfig))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestFeeding_FlourAndWater(t *testing.T) {
	tests := []struct {
		name          string
		keepTarget    int
		ratio         Ratio
		expectedFlour int
		expectedWater int
	}{
		{"one to one", 100, NewRatio(1, 1, 1), 100, 100},
		{"default ratio", 50, NewRatio(1, 2, 2), 100, 100},
		{"stiff starter", 40, NewRatio(1, 5, 3), 200, 120},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig(500, tt.keepTarget, tt.ratio, ".")
			flour, water := NewFeeding(600, cfg, Observations{}, feedDay).FlourAndWater()

			assert.Equal(t, tt.expectedFlour, flour)
			assert.Equal(t, tt.expectedWater, water)
		})
	}
}

func TestFeeding_FlourAndWater_IgnoresStarterComponent(t *testing.T) {
	base := NewFeeding(600, NewConfig(500, 80, NewRatio(1, 3, 2), "."), Observations{}, feedDay)
	baseFlour, baseWater := base.FlourAndWater()

	for _, starter := range []int{1, 2, 7, 1000} {
		cfg := NewConfig(500, 80, NewRatio(starter, 3, 2), ".")
		flour, water := NewFeeding(600, cfg, Observations{}, feedDay).FlourAndWater()

		assert.Equal(t, baseFlour, flour, "starter=%d", starter)
		assert.Equal(t, baseWater, water, "starter=%d", starter)
	}
}

func TestFeeding_ToRow(t *testing.T) {
	cfg := NewConfig(500, 100, NewRatio(1, 1, 1), ".")

	t.Run("all observations", func(t *testing.T) {
		f := NewFeeding(650, cfg, Observations{Smell: "sour", PeakHours: intPtr(5), Notes: "rye"}, feedDay)

		row, err := f.ToRow()
		require.NoError(t, err)
		assert.Len(t, row, len(LogHeader))
		assert.Equal(t, []any{"2026-03-14", 650, 150, 600, 100, 100, "sour", 5, "rye"}, row)
	})

	t.Run("missing observations render empty", func(t *testing.T) {
		f := NewFeeding(650, cfg, Observations{}, feedDay)

		row, err := f.ToRow()
		require.NoError(t, err)
		assert.Equal(t, []any{"2026-03-14", 650, 150, 600, 100, 100, "", "", ""}, row)
	})

	t.Run("invalid keep target surfaces", func(t *testing.T) {
		bad := NewConfig(500, 0, NewRatio(1, 1, 1), ".")
		f := NewFeeding(650, bad, Observations{}, feedDay)

		row, err := f.ToRow()
		assert.Nil(t, row)
		assert.True(t, errors.IsErrorType(err, errors.ErrorTypeInvalidConfig))
	})
}

func TestLogHeader(t *testing.T) {
	assert.Equal(t, []string{
		"Date", "Jar Weight Total", "Starter Weight", "Target Weight",
		"Flour (calc)", "Water (calc)", "Smell", "Peak Hours", "Notes",
	}, LogHeader)
}
