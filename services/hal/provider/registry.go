package provider

import (
	"sync"

	"bigredbutton-go/errcode"
	"bigredbutton-go/services/hal/core"
)

// owners tracks which device holds which pin. Shared by every provider.
type owners struct {
	mu       sync.Mutex
	min, max int
	pins     map[int]pinOwner
}

type pinOwner struct {
	devID string
	fn    core.PinFunc
}

func newOwners(min, max int) *owners {
	return &owners{min: min, max: max, pins: make(map[int]pinOwner)}
}

// claim records devID as owner of n. Caller holds o.mu.
func (o *owners) claim(devID string, n int, fn core.PinFunc) error {
	if n < o.min || n > o.max {
		return errcode.UnknownPin
	}
	if owner, inUse := o.pins[n]; inUse && owner.devID != "" {
		return errcode.PinInUse
	}
	o.pins[n] = pinOwner{devID: devID, fn: fn}
	return nil
}

// release drops the claim if devID holds it. Caller holds o.mu.
func (o *owners) release(devID string, n int) (core.PinFunc, bool) {
	owner, ok := o.pins[n]
	if !ok || owner.devID != devID {
		return 0, false
	}
	delete(o.pins, n)
	return owner.fn, true
}

// pinHandle is the provider-neutral PinHandle.
type pinHandle struct {
	n    int
	fn   core.PinFunc
	gpio core.DigitalIn
	adc  core.AnalogIn
	pwm  core.PWMOut
}

func (h *pinHandle) Pin() int { return h.n }

func (h *pinHandle) AsGPIO() core.DigitalIn {
	if h.fn != core.FuncGPIOIn {
		panic("pin not claimed for GPIO")
	}
	return h.gpio
}

func (h *pinHandle) AsAnalog() core.AnalogIn {
	if h.fn != core.FuncAnalogIn {
		panic("pin not claimed for analog input")
	}
	return h.adc
}

func (h *pinHandle) AsPWM() core.PWMOut {
	if h.fn != core.FuncPWM {
		panic("pin not claimed for PWM")
	}
	return h.pwm
}
