package big_button

import (
	"bigredbutton-go/errcode"
	"bigredbutton-go/services/hal/core"
	"bigredbutton-go/types"
	"bigredbutton-go/x/timex"
)

// PWM carrier for the indicator; 8-bit resolution is plenty for a lamp.
const (
	LightFreqHz = 1000
	LightTop    = 255
)

// Open claims the four pins from reg, configures them and builds a Device.
// On failure every pin claimed so far is released again.
func Open(reg core.Registry, id string, pins types.Pins, clk timex.Clock, kb core.Keyboard, cfg types.ButtonConfig) (*Device, error) {
	if id == "" || reg == nil || clk == nil {
		return nil, errcode.InvalidParams
	}
	var claimed []int
	fail := func(err error) (*Device, error) {
		for _, n := range claimed {
			reg.ReleasePin(id, n)
		}
		return nil, err
	}
	claim := func(n int, fn core.PinFunc) (core.PinHandle, error) {
		ph, err := reg.ClaimPin(id, n, fn)
		if err != nil {
			return nil, errcode.Wrap(errcode.Of(err), "big_button.Open", fn.String(), err)
		}
		claimed = append(claimed, n)
		return ph, nil
	}

	var hw Hardware
	ph, err := claim(pins.Button, core.FuncAnalogIn)
	if err != nil {
		return fail(err)
	}
	hw.Button = ph.AsAnalog()

	if ph, err = claim(pins.Light, core.FuncPWM); err != nil {
		return fail(err)
	}
	hw.Light = ph.AsPWM()
	if err := hw.Light.Configure(LightFreqHz, LightTop); err != nil {
		return fail(errcode.Wrap(errcode.Unsupported, "big_button.Open", "pwm configure", err))
	}

	for i, n := range []int{pins.Switch1, pins.Switch2} {
		if ph, err = claim(n, core.FuncGPIOIn); err != nil {
			return fail(err)
		}
		sw := ph.AsGPIO()
		if err := sw.ConfigureInput(core.PullUp); err != nil {
			return fail(errcode.Wrap(errcode.Of(err), "big_button.Open", "switch pull-up", err))
		}
		if i == 0 {
			hw.Switch1 = sw
		} else {
			hw.Switch2 = sw
		}
	}

	d := New(id, hw, clk, kb, cfg)
	d.reg = reg
	d.pins = pins
	return d, nil
}

// Close drives the light dark and hands the pins back.
func (d *Device) Close() error {
	if d.hw.Light != nil {
		d.hw.Light.Set(d.hw.Light.Top())
	}
	if d.reg == nil {
		return nil
	}
	for _, n := range []int{d.pins.Button, d.pins.Light, d.pins.Switch1, d.pins.Switch2} {
		d.reg.ReleasePin(d.id, n)
	}
	return nil
}
