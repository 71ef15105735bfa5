package big_button

import "testing"

func TestThresholdsFor(t *testing.T) {
	for _, c := range []struct {
		full      uint16
		low, high uint16
	}{
		{1023, 256, 768},
		{0xFFFF, 16384, 49152},
	} {
		got := ThresholdsFor(c.full)
		if got.Low != c.low || got.High != c.high {
			t.Fatalf("ThresholdsFor(%d) = %+v, want low=%d high=%d", c.full, got, c.low, c.high)
		}
	}
}

func TestThresholdsHysteresis(t *testing.T) {
	th := ThresholdsFor(1023)
	for _, c := range []struct {
		name    string
		pressed bool
		raw     uint16
		want    bool
	}{
		{"released stays above low", false, 256, false},
		{"released flips below low", false, 255, true},
		{"released ignores middle", false, 600, false},
		{"pressed stays below high", true, 767, true},
		{"pressed flips at high", true, 768, false},
		{"pressed ignores middle", true, 400, true},
		{"pressed stays at zero", true, 0, true},
		{"released stays at rail", false, 1023, false},
	} {
		if got := th.Next(c.pressed, c.raw); got != c.want {
			t.Fatalf("%s: Next(%v, %d) = %v, want %v", c.name, c.pressed, c.raw, got, c.want)
		}
	}
}

func TestThresholdsChatterInMiddleBand(t *testing.T) {
	th := ThresholdsFor(1023)
	state := false
	flips := 0
	// Bounce between the thresholds, then settle low, bounce, settle high.
	seq := []uint16{600, 300, 700, 500, 100, 300, 700, 500, 767, 900, 700, 260}
	want := []bool{false, false, false, false, true, true, true, true, true, false, false, false}
	for i, raw := range seq {
		next := th.Next(state, raw)
		if next != state {
			flips++
		}
		state = next
		if state != want[i] {
			t.Fatalf("sample %d (raw %d): state %v, want %v", i, raw, state, want[i])
		}
	}
	if flips != 2 {
		t.Fatalf("flips = %d, want 2", flips)
	}
}

func TestDecodeProgram(t *testing.T) {
	for _, c := range []struct {
		sw1, sw2 bool
		want     int
	}{
		{true, true, 0},
		{false, true, 1},
		{true, false, 2},
		{false, false, 3},
	} {
		if got := DecodeProgram(c.sw1, c.sw2); got != c.want {
			t.Fatalf("DecodeProgram(%v, %v) = %d, want %d", c.sw1, c.sw2, got, c.want)
		}
	}
}
