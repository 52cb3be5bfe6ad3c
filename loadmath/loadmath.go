// Package loadmath provides the load-history maths shared by the stress
// spectrum event factories: one-dimensional linear interpolation over a
// coefficient table, and the logarithmic sine-sweep relations.
package loadmath

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/teknico/sigourney/fast"
)

// A Table maps real arguments to real values, for example a Paris' law
// exponent to an empirical cycle-counting coefficient, or a frequency to a
// unit-load stress response.
type Table map[float64]float64

var (
	ErrTableTooSmall = errors.New("loadmath: interpolation table needs at least two points")
	ErrOutOfRange    = errors.New("loadmath: argument outside table range")
	ErrZeroSweepRate = errors.New("loadmath: sweep rate must be non-zero")
)

// Linear evaluates the unique piecewise-linear function through the table
// points at x. Arguments equal to a table key return the stored value
// exactly. Arguments outside the key range return ErrOutOfRange; no
// extrapolation or clamping is performed.
func Linear(table Table, x float64) (float64, error) {
	if len(table) < 2 {
		return 0, ErrTableTooSmall
	}

	if y, ok := table[x]; ok {
		return y, nil
	}

	keys := make([]float64, 0, len(table))
	for k := range table {
		keys = append(keys, k)
	}
	sort.Float64s(keys)

	// NaN compares false against both bounds and would otherwise fall
	// through to the bracketing search.
	if math.IsNaN(x) || x < keys[0] || x > keys[len(keys)-1] {
		return 0, fmt.Errorf("%w: %g not in [%g, %g]", ErrOutOfRange, x, keys[0], keys[len(keys)-1])
	}

	// First key >= x. x is strictly inside the range and is not a key, so
	// i is in [1, len(keys)-1].
	i := sort.SearchFloat64s(keys, x)
	x0, x1 := keys[i-1], keys[i]
	y0, y1 := table[x0], table[x1]

	return y0 + (y1-y0)*(x-x0)/(x1-x0), nil
}

// CyclesInBand returns the number of cycles spent sweeping logarithmically
// from f1 to f2 Hz at the given sweep rate in oct/min:
//
//	n = 60/(rate*ln2) * (f2 - f1)
//
// This is the integral of the instantaneous frequency over the sweep
// duration.
func CyclesInBand(f1, f2, rate float64) (float64, error) {
	if rate == 0 {
		return 0, ErrZeroSweepRate
	}
	return 60 / (rate * math.Ln2) * (f2 - f1), nil
}

// SweepDuration returns the time in seconds taken to sweep from f1 to f2 Hz
// at the given sweep rate in oct/min.
func SweepDuration(f1, f2, rate float64) (float64, error) {
	if rate == 0 {
		return 0, ErrZeroSweepRate
	}
	return 60 * math.Log2(f2/f1) / rate, nil
}

// SweepFrequency returns the instantaneous frequency of a logarithmic sweep
// starting at f1 Hz after t seconds at the given sweep rate in oct/min:
//
//	f(t) = f1 * 2^(rate*t/60)
func SweepFrequency(f1, rate, t float64) float64 {
	return f1 * math.Exp2(rate*t/60)
}

// SweepWaveform samples the unit-amplitude time history of a logarithmic
// sweep starting at f1 Hz, for the given duration in seconds at the given
// sampling rate. The phase is the integral of the instantaneous frequency:
//
//	phi(t) = 2*pi * f1*60/(rate*ln2) * (2^(rate*t/60) - 1)
func SweepWaveform(f1, rate, duration float64, samplingRate int) ([]float64, error) {
	if rate == 0 {
		return nil, ErrZeroSweepRate
	}

	n := int(math.Round(duration * float64(samplingRate)))
	out := make([]float64, n)

	k := 2 * math.Pi * f1 * 60 / (rate * math.Ln2)
	for i := range out {
		t := float64(i) / float64(samplingRate)
		out[i] = fast.Sin(k * (math.Exp2(rate*t/60) - 1))
	}

	return out, nil
}
