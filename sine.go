package spectrum

import (
	"errors"
	"fmt"
	"math"

	"github.com/fatiguelab/spectrum/loadmath"
)

// Sine sweep qualification tests run over a fixed frequency band.
const (
	SweepBandLow  = 20.0  // Hz
	SweepBandHigh = 100.0 // Hz
)

// SineEvent models a logarithmic sine sweep over the fixed 20-100 Hz band,
// per NASGRO appendix H. The cycle count depends only on the sweep rate in
// oct/min; the symmetric stress amplitude is load * stress1g, where stress1g
// is the principal stress for a 1g load in MPa and load is the maximum
// acceleration in g. A zero sweep rate returns loadmath.ErrZeroSweepRate.
func SineEvent(stress1g, load, sweepRate float64, desc string) (Event, error) {
	cycles, err := loadmath.CyclesInBand(SweepBandLow, SweepBandHigh, sweepRate)
	if err != nil {
		return Event{}, fmt.Errorf("sine event: %w", err)
	}

	stress := load * stress1g
	return Event{
		Neq:  math.Ceil(cycles),
		SMin: -stress,
		SMax: stress,
		Desc: desc,
	}, nil
}

// SineEventBins expands a sine sweep into per-bin events instead of one
// event for the whole band. The 20-100 Hz band is split into bins
// logarithmically spaced sub-bands; each sub-band contributes an event with
// the cycles spent sweeping through it and a stress amplitude of
// load * response(f), where the unit-load stress response is interpolated at
// the geometric mean frequency of the sub-band. This resolves a
// frequency-dependent transmissibility that a single SineEvent flattens.
func SineEventBins(response loadmath.Table, load, sweepRate float64, bins int, desc string) ([]Event, error) {
	if bins < 1 {
		return nil, errors.New("sine event bins: need at least one bin")
	}

	// Bin edges spaced evenly in log frequency across the sweep band.
	ratio := math.Pow(SweepBandHigh/SweepBandLow, 1/float64(bins))

	events := make([]Event, 0, bins)
	lo := SweepBandLow
	for i := 0; i < bins; i++ {
		hi := lo * ratio
		if i == bins-1 {
			hi = SweepBandHigh
		}

		cycles, err := loadmath.CyclesInBand(lo, hi, sweepRate)
		if err != nil {
			return nil, fmt.Errorf("sine event bins: %w", err)
		}

		fc := math.Sqrt(lo * hi)
		stress1g, err := loadmath.Linear(response, fc)
		if err != nil {
			return nil, fmt.Errorf("sine event bins: response at %.1f Hz: %w", fc, err)
		}

		stress := load * stress1g
		events = append(events, Event{
			Neq:  math.Ceil(cycles),
			SMin: -stress,
			SMax: stress,
			Desc: fmt.Sprintf("%s [%.1f-%.1f Hz]", desc, lo, hi),
		})

		lo = hi
	}

	return events, nil
}
