package big_button

import (
	"bigredbutton-go/services/hal/core"
	"bigredbutton-go/types"
	"bigredbutton-go/x/timex"
)

// Hardware is the set of claimed handles the device runs on.
type Hardware struct {
	Button  core.AnalogIn
	Light   core.PWMOut
	Switch1 core.DigitalIn
	Switch2 core.DigitalIn
}

// Device is the button + indicator controller. It is polled once per tick
// from a single goroutine; none of its methods block.
type Device struct {
	id   string
	hw   Hardware
	clk  timex.Clock
	kb   core.Keyboard
	reg  core.Registry // nil when built from bare handles
	pins types.Pins

	thr     Thresholds
	set     settings
	program int
	ev      machine
	light   light
}

// New builds a device on already configured handles. The light is driven
// dark and the program index is latched without touching the keyboard.
func New(id string, hw Hardware, clk timex.Clock, kb core.Keyboard, cfg types.ButtonConfig) *Device {
	d := &Device{
		id:  id,
		hw:  hw,
		clk: clk,
		kb:  kb,
		thr: ThresholdsFor(core.AnalogFullScale),
		set: defaultSettings(),
	}
	d.set.apply(cfg)
	d.light.out = hw.Light
	d.light.last = clk.NowMs()
	d.light.write(&d.set)
	d.program = d.readProgram()
	return d
}

func (d *Device) ID() string { return d.id }

// Light reports the current indicator state.
func (d *Device) Light() types.LightValue {
	var top uint16
	if d.hw.Light != nil {
		top = d.hw.Light.Top()
	}
	return types.LightValue{Brightness: d.light.brightness, Duty: d.light.duty, Top: top}
}

// Override reports what the feedback flash currently imposes.
func (d *Device) Override() Override { return d.light.flash.mode(d.set.flashHalfMs) }

// Held reports the debounced button state seen by the last poll.
func (d *Device) Held() bool { return d.ev.last }

// KeepLightLit keeps the light on (pulsing if enabled) while the button is
// up. Toggling it restarts the pulse wave.
func (d *Device) KeepLightLit(lit bool) { d.light.setKeepLit(lit) }

func (d *Device) readProgram() int {
	return DecodeProgram(d.hw.Switch1.Get(), d.hw.Switch2.Get())
}

// ProgramIndex re-reads the selector. A change resets every timer and flag
// and releases all keys so nothing stays held across profiles.
func (d *Device) ProgramIndex() int {
	idx := d.readProgram()
	if idx != d.program {
		d.program = idx
		d.reset()
		if d.kb != nil {
			d.kb.ReleaseAll()
		}
	}
	return d.program
}

func (d *Device) reset() {
	d.ev.reset()
	d.light.reset()
}

// sample reads the button once and runs the shared edge step.
func (d *Device) sample() (uint32, edges) {
	now := d.clk.NowMs()
	down := d.thr.Next(d.ev.last, d.hw.Button.Get())
	return now, d.ev.step(now, down)
}

func (d *Device) finish(now uint32, flash bool) {
	if flash {
		d.light.flash.start()
	}
	d.light.held = d.ev.last
	d.light.advance(now, &d.set)
}

// PollSingle reports raw press and release edges.
func (d *Device) PollSingle() types.SingleEvent {
	now, e := d.sample()
	ev := d.ev.single(e)
	d.finish(now, false)
	return ev
}

// PollDual reports Click and LongPress.
func (d *Device) PollDual() types.DualEvent {
	now, e := d.sample()
	ev, flash := d.ev.dual(now, e, &d.set, d.light.keepLit)
	d.finish(now, flash)
	return ev
}

// PollQuad reports SingleClick, DoubleClick, LongPress and
// LongPressDoubleClick.
func (d *Device) PollQuad() types.QuadEvent {
	now, e := d.sample()
	ev, flash := d.ev.quad(now, e, &d.set, d.light.keepLit)
	d.finish(now, flash)
	return ev
}
