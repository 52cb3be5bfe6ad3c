// Package loadcase defines stress spectrum load cases in YAML case files. A
// case file carries the spectrum configuration and an ordered list of typed
// case entries (random, sine, thermal) which build the corresponding
// spectrum events.
package loadcase

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/google/uuid"
	"github.com/mitchellh/mapstructure"

	"github.com/fatiguelab/spectrum"
)

// Case is the interface for all load case types.
type Case interface {
	TypeAsString() string           // Returns the case type tag as used in case files
	Name() string                   // Returns the operator-chosen label of the case
	ID() uuid.UUID                  // Returns the unique identity of the case
	Event() (spectrum.Event, error) // Builds the stress spectrum event for the case
}

// Tracer is implemented by cases that can sample their excitation time
// history, for inspection of the underlying loading model.
type Tracer interface {
	Trace(samplingRate int) ([]float64, error)
}

// Container is an ordered collection of load cases. The order is the
// spectrum sequence.
type Container []Case

// UnmarshalYAML unmarshals a list of case entries into the container,
// dispatching each entry on its type field.
func (c *Container) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var entries []map[string]interface{}
	if err := unmarshal(&entries); err != nil {
		return err
	}

	for _, entry := range entries {
		cs, err := createCaseFromYamlEntry(entry)
		if err != nil {
			return err
		}
		*c = append(*c, cs)
	}

	return nil
}

// Add appends a case to the container and returns its identity.
func (c *Container) Add(cs Case) uuid.UUID {
	*c = append(*c, cs)
	return cs.ID()
}

// GetDecodeHook returns a decodeHook function that can be used to unmarshal
// cases from a yaml file using mapstructure. This supports configuration
// solutions like spf13/viper that use mapstructure to unmarshal yaml files.
func GetDecodeHook() (mapstructure.DecodeHookFunc, error) {
	decodeHook := func(f reflect.Type, t reflect.Type, yamlEntry interface{}) (interface{}, error) {
		if t == reflect.TypeOf((*Case)(nil)).Elem() {
			return createCaseFromYamlEntry(yamlEntry)
		}
		return yamlEntry, nil
	}

	return decodeHook, nil
}

// Creates a load case from a yaml entry based on the case "type" (or "Type")
// field.
func createCaseFromYamlEntry(yamlEntry interface{}) (Case, error) {
	m, ok := yamlEntry.(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("yaml entry cannot be parsed to map[string]interface{}: %v", yamlEntry)
	}

	// must check both m["type"] and m["Type"] because some yaml parsers
	// convert to lower case and some don't
	typeStr, ok := m["type"].(string)
	if !ok {
		typeStr, ok = m["Type"].(string)
		if !ok {
			return nil, errors.New("case type field is missing or not a string")
		}
	}

	var cs Case
	switch typeStr {
	case "random":
		cs = &randomCase{}
	case "sine":
		cs = &sineCase{}
	case "thermal":
		cs = &thermalCase{}
	default:
		return nil, fmt.Errorf("unknown case type: %s", typeStr)
	}

	// Use mapstructure to decode the map into the Case
	decoderConfig := &mapstructure.DecoderConfig{
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			randomCaseDecodeHookFunc(),
			sineCaseDecodeHookFunc(),
			thermalCaseDecodeHookFunc(),
		),
		Result: &cs,
	}
	decoder, err := mapstructure.NewDecoder(decoderConfig)
	if err != nil {
		return nil, err
	}
	if err := decoder.Decode(m); err != nil {
		return nil, err
	}

	return cs, nil
}

// Use mapstructure to unmarshal data into caseParams.
func caseParamsDecodeHookFunc[T any](caseParams *T, data interface{}) error {
	m, ok := data.(map[string]interface{})
	if !ok {
		return fmt.Errorf("expected map[string]interface{}, got %T", data)
	}

	decoderConfig := &mapstructure.DecoderConfig{
		Result: caseParams,
	}
	decoder, err := mapstructure.NewDecoder(decoderConfig)
	if err != nil {
		return err
	}
	return decoder.Decode(m)
}

// Returns a DecodeHookFunc that can be used to unmarshal a randomCase from a
// yaml file.
func randomCaseDecodeHookFunc() mapstructure.DecodeHookFuncType {
	return func(f reflect.Type, t reflect.Type, data interface{}) (interface{}, error) {
		if t == reflect.TypeOf(randomCase{}) {
			var params RandomParams
			if err := caseParamsDecodeHookFunc(&params, data); err != nil {
				return nil, err
			}
			return NewRandomCase(params)
		}
		return data, nil
	}
}

// Returns a DecodeHookFunc that can be used to unmarshal a sineCase from a
// yaml file.
func sineCaseDecodeHookFunc() mapstructure.DecodeHookFuncType {
	return func(f reflect.Type, t reflect.Type, data interface{}) (interface{}, error) {
		if t == reflect.TypeOf(sineCase{}) {
			var params SineParams
			if err := caseParamsDecodeHookFunc(&params, data); err != nil {
				return nil, err
			}
			return NewSineCase(params)
		}
		return data, nil
	}
}

// Returns a DecodeHookFunc that can be used to unmarshal a thermalCase from
// a yaml file.
func thermalCaseDecodeHookFunc() mapstructure.DecodeHookFuncType {
	return func(f reflect.Type, t reflect.Type, data interface{}) (interface{}, error) {
		if t == reflect.TypeOf(thermalCase{}) {
			var params ThermalParams
			if err := caseParamsDecodeHookFunc(&params, data); err != nil {
				return nil, err
			}
			return NewThermalCase(params)
		}
		return data, nil
	}
}
