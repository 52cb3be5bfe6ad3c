package spectrum

// DefaultRefTemperature is room temperature in degrees Celsius, the usual
// strain-free reference for thermoelastic stress.
const DefaultRefTemperature = 20.0

// ThermalEvent models neq thermal cycles between tMin and tMax relative to
// the reference temperature tRef, with stress proportional to the
// temperature delta: stress1K is the principal stress per Kelvin in MPa. The
// cycle count is passed through unrounded and may be fractional. Temperature
// ordering is not validated; a tMax below tRef yields SMax below SMin and
// downstream consumers must decide how to treat such an event.
func ThermalEvent(stress1K, tMax, tMin, neq, tRef float64, desc string) Event {
	return Event{
		Neq:  neq,
		SMin: stress1K * (tMin - tRef),
		SMax: stress1K * (tMax - tRef),
		Desc: desc,
	}
}
