package spectrum

import (
	"fmt"
	"math"

	"github.com/fatiguelab/spectrum/loadmath"
)

// DefaultParisExponent is the conservative choice for the Paris' law
// exponent in RandomEvent.
const DefaultParisExponent = 2.0

// parisTable maps the Paris' law exponent n to the empirical coefficient for
// equivalent cycle counting under stationary random vibration, per NASGRO
// appendix G. RandomEvent interpolates between these points, so valid
// exponents are limited to [2.0, 6.0].
var parisTable = loadmath.Table{
	2.0: 0.222,
	3.0: 0.139,
	4.0: 0.099,
	5.0: 0.077,
	6.0: 0.066,
}

// RandomEvent models the equivalent fatigue cycles of a stationary random
// vibration of the given duration in seconds, at natural frequency fn in Hz
// and 1-sigma stress level in MPa:
//
//	neq = ceil(fn * duration * C(n))
//
// where C(n) is interpolated from the NASGRO appendix G coefficient table.
// The event is symmetric about zero stress. An exponent n outside [2.0, 6.0]
// returns loadmath.ErrOutOfRange.
func RandomEvent(stress, fn, duration, n float64, desc string) (Event, error) {
	coeff, err := loadmath.Linear(parisTable, n)
	if err != nil {
		return Event{}, fmt.Errorf("random event: Paris' exponent: %w", err)
	}

	return Event{
		Neq:  math.Ceil(fn * duration * coeff),
		SMin: -stress,
		SMax: stress,
		Desc: desc,
	}, nil
}
