package big_button

// Thresholds is a Schmitt trigger for the button line. The line is pulled
// up, so a released button reads near full scale and a pressed one near 0.
type Thresholds struct {
	Low  uint16 // released -> pressed when raw < Low
	High uint16 // pressed -> released when raw >= High
}

// ThresholdsFor places the switching points at 25% and 75% of fullScale.
func ThresholdsFor(fullScale uint16) Thresholds {
	span := uint32(fullScale) + 1
	return Thresholds{
		Low:  uint16(span / 4),
		High: uint16(span * 3 / 4),
	}
}

// Next returns the debounced state for a new raw sample given the previous
// state. Readings between the thresholds never change the state.
func (t Thresholds) Next(pressed bool, raw uint16) bool {
	if pressed && raw >= t.High {
		return false
	}
	if !pressed && raw < t.Low {
		return true
	}
	return pressed
}
