package loadcase

import (
	"errors"

	"github.com/fatiguelab/spectrum"
	"github.com/fatiguelab/spectrum/loadmath"
)

// sineCase models a logarithmic sine sweep test phase of the loading
// history.
type sineCase struct {
	caseBase

	Stress1g  float64 // principal stress for a 1g load [MPa]
	Load      float64 // maximum acceleration [g]
	SweepRate float64 // sweep rate [oct/min]
}

// Parameters to define a sine sweep case in a case file.
type SineParams struct {
	Name      string  `yaml:"name" mapstructure:"name"`             // label of the case, becomes the event description
	Stress1g  float64 `yaml:"stress_1g" mapstructure:"stress_1g"`   // principal stress for a 1g load [MPa]
	Load      float64 `yaml:"load" mapstructure:"load"`             // maximum acceleration [g]
	SweepRate float64 `yaml:"sweep_rate" mapstructure:"sweep_rate"` // sweep rate [oct/min]
}

// UnmarshalYAML initialises the case from a yaml case file entry, checking
// for invalid values.
func (sc *sineCase) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var params SineParams
	if err := unmarshal(&params); err != nil {
		return err
	}

	built, err := NewSineCase(params)
	if err != nil {
		return err
	}

	*sc = *built
	return nil
}

// NewSineCase returns a sineCase pointer with the requested parameters,
// checking for invalid values.
func NewSineCase(params SineParams) (*sineCase, error) {
	if params.SweepRate == 0 {
		return nil, errors.New("sine case: sweep_rate must be non-zero")
	}

	return &sineCase{
		caseBase:  newCaseBase(params.Name, "sine"),
		Stress1g:  params.Stress1g,
		Load:      params.Load,
		SweepRate: params.SweepRate,
	}, nil
}

// Event builds the sine sweep stress spectrum event for the case.
func (sc *sineCase) Event() (spectrum.Event, error) {
	return spectrum.SineEvent(sc.Stress1g, sc.Load, sc.SweepRate, sc.name)
}

// Trace samples the unit-amplitude excitation time history of the sweep over
// the full 20-100 Hz band at the given sampling rate.
func (sc *sineCase) Trace(samplingRate int) ([]float64, error) {
	duration, err := loadmath.SweepDuration(spectrum.SweepBandLow, spectrum.SweepBandHigh, sc.SweepRate)
	if err != nil {
		return nil, err
	}
	return loadmath.SweepWaveform(spectrum.SweepBandLow, sc.SweepRate, duration, samplingRate)
}
