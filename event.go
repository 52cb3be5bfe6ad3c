// Package spectrum generates single-component fatigue stress spectra: ordered
// lists of load-cycle events derived from random vibration, sine sweep, and
// thermal cycling models. The output file format is compatible with NASGRO
// and NASFORM.
package spectrum

// Event is one entry of a stress spectrum: an equivalent number of cycles
// between two stress levels. Events are value records and are never mutated
// after creation.
type Event struct {
	Neq  float64 // equivalent number of cycles
	SMin float64 // minimum stress of the cycle [MPa]
	SMax float64 // maximum stress of the cycle [MPa]
	Desc string  // short description
}
