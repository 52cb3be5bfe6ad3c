package spectrum

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
)

// ErrEmptySpectrum is returned by Stats and Save when no events have been
// appended. An empty spectrum has no peak stresses and is never a valid
// output file.
var ErrEmptySpectrum = errors.New("spectrum: no events appended")

// Default safety factors applied when Params leaves them unset.
const (
	DefaultSFStress = 1.0
	DefaultSFCycles = 4.0
)

// Params configures a Spectrum.
type Params struct {
	// Filename is the full path of the output spectrum file. It is not
	// touched until Save is called.
	Filename string `yaml:"filename"`

	// Prestress is a constant stress offset in MPa added to every output
	// stress value after safety-factor scaling. It is never scaled itself.
	Prestress float64 `yaml:"prestress"`

	// SFStress is the safety factor applied to the alternating stress only.
	// Zero means the default of 1.0.
	SFStress float64 `yaml:"sf_stress"`

	// SFCycles is the safety factor applied to cycle counts. Zero means the
	// default of 4.0.
	SFCycles float64 `yaml:"sf_cycles"`
}

// Spectrum collects stress spectrum events in append order and applies the
// common prestress and safety factors at output time. It is effectively the
// single-stress-component (S0) spectrum of one structural location.
type Spectrum struct {
	filename  string
	prestress float64
	sfStress  float64
	sfCycles  float64

	events []Event

	echo io.Writer // verbose Save output, default os.Stdout
}

// New returns an empty Spectrum with the given configuration. Unset safety
// factors take their defaults.
func New(params Params) *Spectrum {
	s := &Spectrum{
		filename:  params.Filename,
		prestress: params.Prestress,
		sfStress:  params.SFStress,
		sfCycles:  params.SFCycles,
		echo:      os.Stdout,
	}
	if s.sfStress == 0 {
		s.sfStress = DefaultSFStress
	}
	if s.sfCycles == 0 {
		s.sfCycles = DefaultSFCycles
	}
	return s
}

// SetEcho redirects the verbose Save output. Passing nil restores os.Stdout.
func (s *Spectrum) SetEcho(w io.Writer) {
	if w == nil {
		w = os.Stdout
	}
	s.echo = w
}

// Append adds an event to the end of the spectrum. The append order is the
// spectrum sequence and is preserved in the output file. Events are never
// validated or removed.
func (s *Spectrum) Append(event Event) {
	s.events = append(s.events, event)
}

// Len returns the number of appended events.
func (s *Spectrum) Len() int {
	return len(s.events)
}

// Filename returns the configured output path.
func (s *Spectrum) Filename() string {
	return s.filename
}

// Stats holds the aggregate statistics of a spectrum with its scaling
// applied.
type Stats struct {
	PeakMax     float64 // peak maximum stress [MPa], scaled and offset
	PeakMin     float64 // peak minimum stress [MPa], scaled and offset
	TotalCycles int     // ceil of the scaled total equivalent cycles
	SFStress    float64 // stress safety factor in effect
	SFCycles    float64 // cycle safety factor in effect
}

// Stats computes the aggregate statistics over all appended events. The
// peaks carry the stress safety factor and prestress offset; the total cycle
// count carries the cycle safety factor and is rounded up once, after
// summation. Returns ErrEmptySpectrum if nothing has been appended.
func (s *Spectrum) Stats() (Stats, error) {
	if len(s.events) == 0 {
		return Stats{}, ErrEmptySpectrum
	}

	sMax := math.Inf(-1)
	sMin := math.Inf(1)
	total := 0.0
	for _, e := range s.events {
		sMax = math.Max(sMax, e.SMax)
		sMin = math.Min(sMin, e.SMin)
		total += e.Neq
	}

	return Stats{
		PeakMax:     s.sfStress*sMax + s.prestress,
		PeakMin:     s.sfStress*sMin + s.prestress,
		TotalCycles: int(math.Ceil(s.sfCycles * total)),
		SFStress:    s.sfStress,
		SFCycles:    s.sfCycles,
	}, nil
}

// Report writes the operator-facing statistics summary to w.
func (st Stats) Report(w io.Writer) {
	fmt.Fprintf(w, "> Peak max stress: %4.2f MPa\n", st.PeakMax)
	fmt.Fprintf(w, "> Peak min stress: %4.2f MPa\n", st.PeakMin)
	fmt.Fprintf(w, "> Total number of cycles: %d\n", st.TotalCycles)
	fmt.Fprintln(w, "> The following safety factors are included:")
	fmt.Fprintf(w, ">> cycles=%g\n", st.SFCycles)
	fmt.Fprintf(w, ">> stress=%g\n", st.SFStress)
}

// formatEvent returns the output file line for one event with the scaling
// rules applied: stresses are safety-factor scaled then prestress-offset,
// the cycle count is safety-factor scaled then rounded up.
func (s *Spectrum) formatEvent(e Event) string {
	sMin := s.sfStress*e.SMin + s.prestress
	sMax := s.sfStress*e.SMax + s.prestress
	neq := int(math.Ceil(s.sfCycles * e.Neq))
	return fmt.Sprintf("%4.2f  %4.2f  %d", sMax, sMin, neq)
}

// Encode writes the spectrum to w in max-min-cycle format: a literal header
// line followed by one line per event in append order. This format is
// compatible with NASFORM.
func (s *Spectrum) Encode(w io.Writer) error {
	if _, err := fmt.Fprintln(w, "max min cycle format"); err != nil {
		return fmt.Errorf("spectrum: write header: %w", err)
	}
	for _, e := range s.events {
		if _, err := fmt.Fprintln(w, s.formatEvent(e)); err != nil {
			return fmt.Errorf("spectrum: write event: %w", err)
		}
	}
	return nil
}

// Save writes the spectrum file, overwriting any previous contents. When
// verbose, each written line is echoed to the echo writer alongside the
// event description. Save is a pure read of the spectrum: repeated calls
// with no intervening Append produce byte-identical files. Returns
// ErrEmptySpectrum if nothing has been appended.
func (s *Spectrum) Save(verbose bool) error {
	if len(s.events) == 0 {
		return ErrEmptySpectrum
	}

	f, err := os.Create(s.filename)
	if err != nil {
		return fmt.Errorf("spectrum: %w", err)
	}

	if err := s.Encode(f); err != nil {
		f.Close()
		return err
	}

	if verbose {
		fmt.Fprintln(s.echo, "==============")
		for _, e := range s.events {
			fmt.Fprintf(s.echo, "%-26s | %s\n", s.formatEvent(e), e.Desc)
		}
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("spectrum: close %s: %w", s.filename, err)
	}
	return nil
}
