package spectrum_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fatiguelab/spectrum"
	"github.com/fatiguelab/spectrum/loadmath"
)

func TestRandomEvent(t *testing.T) {
	testCases := []struct {
		name     string
		stress   float64 // 1-sigma stress level [MPa]
		fn       float64 // eigenfrequency [Hz]
		duration float64 // exposure duration [s]
		n        float64 // Paris' law exponent
		neq      float64 // expected equivalent cycles
		isError  bool    // true if an out-of-range error is expected
	}{
		{
			name:     "qualification_random_x",
			stress:   300 * 1.15,
			fn:       200,
			duration: 120,
			n:        2.0,
			neq:      5328, // ceil(200*120*0.222)
		},
		{
			name:     "interpolated_exponent",
			stress:   100,
			fn:       100,
			duration: 60,
			n:        2.5,
			neq:      math.Ceil(100 * 60 * (0.222 + (0.139-0.222)/2)),
		},
		{
			name:    "exponent_below_table",
			n:       1.5,
			isError: true,
		},
		{
			name:    "exponent_above_table",
			n:       6.5,
			isError: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			event, err := spectrum.RandomEvent(tc.stress, tc.fn, tc.duration, tc.n, tc.name)

			if tc.isError {
				assert.ErrorIs(t, err, loadmath.ErrOutOfRange)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tc.neq, event.Neq)
			assert.Equal(t, -tc.stress, event.SMin)
			assert.Equal(t, tc.stress, event.SMax)
			assert.Equal(t, tc.name, event.Desc)
		})
	}
}

func TestSineEvent(t *testing.T) {
	event, err := spectrum.SineEvent(10, 2, 1.0, "sine sweep")
	assert.NoError(t, err)

	// 60/ln2 * 80 cycles through the fixed 20-100 Hz band at 1 oct/min.
	assert.Equal(t, math.Ceil(60/math.Ln2*80), event.Neq)
	assert.Equal(t, -20.0, event.SMin)
	assert.Equal(t, 20.0, event.SMax)
	assert.Equal(t, "sine sweep", event.Desc)

	_, err = spectrum.SineEvent(10, 2, 0, "degenerate")
	assert.ErrorIs(t, err, loadmath.ErrZeroSweepRate)
}

func TestSineEventBins(t *testing.T) {
	// Unit-load stress response rising linearly from 5 MPa at 20 Hz to
	// 10 MPa at 100 Hz.
	response := loadmath.Table{20: 5, 100: 10}

	events, err := spectrum.SineEventBins(response, 2, 1.0, 4, "sweep")
	assert.NoError(t, err)
	assert.Len(t, events, 4)

	whole, err := spectrum.SineEvent(1, 1, 1.0, "")
	assert.NoError(t, err)

	var total float64
	for i, e := range events {
		assert.Equal(t, -e.SMax, e.SMin, "bin %d not symmetric", i)
		assert.Greater(t, e.SMax, 0.0, "bin %d", i)
		assert.Contains(t, e.Desc, "Hz]")
		total += e.Neq
	}

	// Per-bin rounding only adds cycles relative to the single-event sweep.
	assert.GreaterOrEqual(t, total, whole.Neq)
	assert.Less(t, total, whole.Neq+4)

	// Amplitudes follow the rising response curve.
	for i := 1; i < len(events); i++ {
		assert.Greater(t, events[i].SMax, events[i-1].SMax)
	}

	_, err = spectrum.SineEventBins(response, 2, 0, 4, "sweep")
	assert.ErrorIs(t, err, loadmath.ErrZeroSweepRate)

	_, err = spectrum.SineEventBins(response, 2, 1.0, 0, "sweep")
	assert.Error(t, err)

	// A response table that does not cover the sweep band fails once a bin
	// centre falls outside it.
	_, err = spectrum.SineEventBins(loadmath.Table{30: 5, 90: 10}, 2, 1.0, 4, "sweep")
	assert.ErrorIs(t, err, loadmath.ErrOutOfRange)
}

func TestThermalEvent(t *testing.T) {
	event := spectrum.ThermalEvent(10, 50, 0, 365, 20, "thermoelastic")

	assert.Equal(t, -200.0, event.SMin) // 10*(0-20)
	assert.Equal(t, 300.0, event.SMax)  // 10*(50-20)
	assert.Equal(t, 365.0, event.Neq)   // passed through unrounded
	assert.Equal(t, "thermoelastic", event.Desc)

	// Fractional cycle counts pass through untouched.
	fractional := spectrum.ThermalEvent(10, 50, 0, 0.5, spectrum.DefaultRefTemperature, "")
	assert.Equal(t, 0.5, fractional.Neq)

	// Inverted temperature ordering is not validated and swaps the values.
	inverted := spectrum.ThermalEvent(10, 0, 50, 1, 20, "")
	assert.Greater(t, inverted.SMin, inverted.SMax)
}
