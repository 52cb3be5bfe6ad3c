package loadcase

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"

	"github.com/fatiguelab/spectrum"
)

// File is a complete spectrum case file: the spectrum configuration plus the
// ordered list of load cases.
type File struct {
	Spectrum spectrum.Params `yaml:"spectrum"`
	Cases    Container       `yaml:"cases"`
}

// Load reads and parses a YAML case file.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loadcase: %w", err)
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("loadcase: parse %s: %w", path, err)
	}

	return &f, nil
}

// BuildSpectrum constructs the spectrum from the file: events are built and
// appended in case file order, with each case name as the event description.
func (f *File) BuildSpectrum() (*spectrum.Spectrum, error) {
	s := spectrum.New(f.Spectrum)

	for _, cs := range f.Cases {
		event, err := cs.Event()
		if err != nil {
			return nil, fmt.Errorf("loadcase: %s case %q: %w", cs.TypeAsString(), cs.Name(), err)
		}
		s.Append(event)
	}

	return s, nil
}
