package loadcase

import (
	"github.com/fatiguelab/spectrum"
)

// thermalCase models a repeated thermal cycle phase of the loading history.
type thermalCase struct {
	caseBase

	Stress1K float64 // principal stress per Kelvin [MPa]
	TMax     float64 // maximum temperature within the cycle [degC]
	TMin     float64 // minimum temperature within the cycle [degC]
	Neq      float64 // number of cycles
	TRef     float64 // strain-free reference temperature [degC]
}

// Parameters to define a thermal cycling case in a case file.
type ThermalParams struct {
	Name     string   `yaml:"name" mapstructure:"name"`           // label of the case, becomes the event description
	Stress1K float64  `yaml:"stress_1k" mapstructure:"stress_1k"` // principal stress per Kelvin [MPa]
	TMax     float64  `yaml:"t_max" mapstructure:"t_max"`         // maximum temperature within the cycle [degC]
	TMin     float64  `yaml:"t_min" mapstructure:"t_min"`         // minimum temperature within the cycle [degC]
	Neq      float64  `yaml:"neq" mapstructure:"neq"`             // number of cycles, 0 defaults to 1
	TRef     *float64 `yaml:"t_ref" mapstructure:"t_ref"`         // reference temperature [degC], unset defaults to 20
}

// UnmarshalYAML initialises the case from a yaml case file entry, checking
// for invalid values.
func (tc *thermalCase) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var params ThermalParams
	if err := unmarshal(&params); err != nil {
		return err
	}

	built, err := NewThermalCase(params)
	if err != nil {
		return err
	}

	*tc = *built
	return nil
}

// NewThermalCase returns a thermalCase pointer with the requested
// parameters. A zero cycle count defaults to a single cycle and an unset
// reference temperature defaults to room temperature. Temperature ordering
// is deliberately not validated, matching ThermalEvent.
func NewThermalCase(params ThermalParams) (*thermalCase, error) {
	neq := params.Neq
	if neq == 0 {
		neq = 1
	}

	tRef := spectrum.DefaultRefTemperature
	if params.TRef != nil {
		tRef = *params.TRef
	}

	return &thermalCase{
		caseBase: newCaseBase(params.Name, "thermal"),
		Stress1K: params.Stress1K,
		TMax:     params.TMax,
		TMin:     params.TMin,
		Neq:      neq,
		TRef:     tRef,
	}, nil
}

// Event builds the thermal cycling stress spectrum event for the case.
func (tc *thermalCase) Event() (spectrum.Event, error) {
	return spectrum.ThermalEvent(tc.Stress1K, tc.TMax, tc.TMin, tc.Neq, tc.TRef, tc.name), nil
}
