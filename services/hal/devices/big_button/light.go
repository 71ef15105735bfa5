package big_button

import (
	"math"

	"bigredbutton-go/services/hal/core"
	"bigredbutton-go/x/mathx"
	"bigredbutton-go/x/timex"
)

// Override is what the feedback flash imposes on the light.
type Override uint8

const (
	OverrideFree Override = iota // normal target selection
	OverrideOn
	OverrideOff
)

func (o Override) String() string {
	switch o {
	case OverrideOn:
		return "on"
	case OverrideOff:
		return "off"
	default:
		return "free"
	}
}

// flash is the feedback blink. The override it imposes is a function of
// how long it has been running: OFF, ON, OFF, ON, one half-period each,
// then FREE.
type flash struct {
	running bool
	elapsed uint32 // ms since trigger
}

func (f *flash) start() {
	f.running = true
	f.elapsed = 0
}

func (f *flash) stop() { *f = flash{} }

func (f *flash) mode(halfMs uint32) Override {
	if !f.running {
		return OverrideFree
	}
	switch f.elapsed / halfMs {
	case 0, 2:
		return OverrideOff
	case 1, 3:
		return OverrideOn
	}
	return OverrideFree
}

// advance moves the blink on by dt and returns the override now in force.
func (f *flash) advance(dt, halfMs uint32) Override {
	if !f.running {
		return OverrideFree
	}
	f.elapsed += dt
	o := f.mode(halfMs)
	if o == OverrideFree {
		f.stop()
	}
	return o
}

// light animates the indicator brightness and drives the PWM line.
type light struct {
	out  core.PWMOut
	last uint32 // ms of the previous advance

	brightness float64 // [0,1]
	phase      float64 // seconds into the current pulse period
	keepLit    bool
	held       bool // mirrored from the classifier before each advance
	flash      flash
	duty       uint16
}

func (l *light) reset() {
	l.flash.stop()
	l.phase = 0
	l.held = false
}

func (l *light) setKeepLit(on bool) {
	if l.keepLit != on {
		l.phase = 0
	}
	l.keepLit = on
}

// pulse advances the pulse wave by secs and returns its level in
// [1-depth, 1]. The wave keeps running under a flash so it resumes in phase.
func (l *light) pulse(secs float64, s *settings) float64 {
	if !s.pulseOn {
		return 1
	}
	l.phase = math.Mod(l.phase+secs, 1/s.pulseHz)
	wave := math.Sin(l.phase*s.pulseHz*2*math.Pi)*0.5 + 0.5
	return wave*s.pulseDepth + (1 - s.pulseDepth)
}

// advance recomputes the brightness for now. Repeated calls with the same
// timestamp change nothing.
func (l *light) advance(now uint32, s *settings) {
	dt := timex.Since(now, l.last)
	if dt == 0 {
		return
	}
	l.last = now
	secs := float64(dt) / 1000

	// The wave only runs while the button is up; holding pauses it.
	keepLevel := 1.0
	if l.keepLit && !l.held {
		keepLevel = l.pulse(secs, s)
	}

	var target float64
	switch o := l.flash.advance(dt, s.flashHalfMs); {
	case o == OverrideOn:
		target = 1
	case o == OverrideOff:
		target = 0
	case l.held:
		target = 1
	case l.keepLit:
		target = keepLevel
	}

	// Thermal inertia: ease towards the target, never past it.
	l.brightness = mathx.Clamp(mathx.Lerp(l.brightness, target, secs*s.changeSpeed), 0, 1)
	l.write(s)
}

// write drives the active-low output: full brightness is duty 0.
func (l *light) write(s *settings) {
	if l.out == nil {
		return
	}
	top := l.out.Top()
	l.duty = mathx.RoundU16((1-l.brightness*s.maxBrightness)*float64(top), top)
	l.out.Set(l.duty)
}
