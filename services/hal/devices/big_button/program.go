package big_button

// DecodeProgram turns the two active-low selector lines into 0..3.
func DecodeProgram(sw1, sw2 bool) int {
	idx := 0
	if !sw1 {
		idx |= 1
	}
	if !sw2 {
		idx |= 2
	}
	return idx
}
