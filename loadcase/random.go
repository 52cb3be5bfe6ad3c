package loadcase

import (
	"errors"

	"github.com/fatiguelab/spectrum"
)

// randomCase models a stationary random vibration phase of the loading
// history.
type randomCase struct {
	caseBase

	Stress   float64 // 1-sigma stress level [MPa]
	Freq     float64 // relevant eigenfrequency [Hz]
	Duration float64 // exposure duration [s]
	Exponent float64 // Paris' law exponent, 2.0 is conservative
}

// Parameters to define a random vibration case in a case file.
type RandomParams struct {
	Name     string  `yaml:"name" mapstructure:"name"`         // label of the case, becomes the event description
	Stress   float64 `yaml:"stress" mapstructure:"stress"`     // 1-sigma stress level [MPa]
	Freq     float64 `yaml:"fn" mapstructure:"fn"`             // relevant eigenfrequency [Hz]
	Duration float64 `yaml:"duration" mapstructure:"duration"` // exposure duration [s]
	Exponent float64 `yaml:"n" mapstructure:"n"`               // Paris' law exponent, 0 defaults to 2.0
}

// UnmarshalYAML initialises the case from a yaml case file entry, checking
// for invalid values.
func (rc *randomCase) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var params RandomParams
	if err := unmarshal(&params); err != nil {
		return err
	}

	built, err := NewRandomCase(params)
	if err != nil {
		return err
	}

	*rc = *built
	return nil
}

// NewRandomCase returns a randomCase pointer with the requested parameters,
// checking for invalid values. A zero exponent defaults to the conservative
// Paris' law exponent of 2.0; out-of-range exponents surface when the event
// is built.
func NewRandomCase(params RandomParams) (*randomCase, error) {
	if params.Freq <= 0 {
		return nil, errors.New("random case: fn must be a positive frequency")
	}
	if params.Duration < 0 {
		return nil, errors.New("random case: duration must not be negative")
	}

	exponent := params.Exponent
	if exponent == 0 {
		exponent = spectrum.DefaultParisExponent
	}

	return &randomCase{
		caseBase: newCaseBase(params.Name, "random"),
		Stress:   params.Stress,
		Freq:     params.Freq,
		Duration: params.Duration,
		Exponent: exponent,
	}, nil
}

// Event builds the random vibration stress spectrum event for the case.
func (rc *randomCase) Event() (spectrum.Event, error) {
	return spectrum.RandomEvent(rc.Stress, rc.Freq, rc.Duration, rc.Exponent, rc.name)
}
