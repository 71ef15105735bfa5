package provider

import (
	"testing"

	"bigredbutton-go/errcode"
	"bigredbutton-go/services/hal/core"
)

func TestSimClaimRules(t *testing.T) {
	r := NewSimRegistry()

	if _, err := r.ClaimPin("a", 26, core.FuncAnalogIn); err != nil {
		t.Fatalf("claim 26: %v", err)
	}
	if _, err := r.ClaimPin("b", 26, core.FuncGPIOIn); err != errcode.PinInUse {
		t.Fatalf("double claim: err = %v, want pin_in_use", err)
	}
	if _, err := r.ClaimPin("a", SimGPIOMax+1, core.FuncGPIOIn); err != errcode.UnknownPin {
		t.Fatalf("out of range: err = %v, want unknown_pin", err)
	}
	if _, err := r.ClaimPin("a", 5, core.PinFunc(99)); err != errcode.Unsupported {
		t.Fatalf("bad function: err = %v, want unsupported", err)
	}

	// Only the owner may release.
	r.ReleasePin("b", 26)
	if _, err := r.ClaimPin("b", 26, core.FuncGPIOIn); err != errcode.PinInUse {
		t.Fatalf("release by non-owner freed the pin: %v", err)
	}
	r.ReleasePin("a", 26)
	if _, err := r.ClaimPin("b", 26, core.FuncGPIOIn); err != nil {
		t.Fatalf("claim after release: %v", err)
	}
}

func TestSimHandlesTrackDrivenLevels(t *testing.T) {
	r := NewSimRegistry()

	ph, err := r.ClaimPin("dev", 2, core.FuncGPIOIn)
	if err != nil {
		t.Fatalf("claim: %v", err)
	}
	sw := ph.AsGPIO()
	_ = sw.ConfigureInput(core.PullUp)
	if !sw.Get() {
		t.Fatal("pulled-up input reads low")
	}
	r.Digital(2).Drive(false)
	if sw.Get() {
		t.Fatal("driven-low input reads high")
	}

	ph, _ = r.ClaimPin("dev", 26, core.FuncAnalogIn)
	adc := ph.AsAnalog()
	if adc.Get() != core.AnalogFullScale {
		t.Fatalf("idle analog = %d, want full scale", adc.Get())
	}
	r.Analog(26).Drive(1200)
	if adc.Get() != 1200 {
		t.Fatalf("analog = %d, want 1200", adc.Get())
	}

	ph, _ = r.ClaimPin("dev", 9, core.FuncPWM)
	pwm := ph.AsPWM()
	_ = pwm.Configure(1000, 255)
	pwm.Set(300)
	if got := r.PWM(9).Level(); got != 255 {
		t.Fatalf("pwm level = %d, want clamped to 255", got)
	}
	pwm.Set(255)
	r.ReleasePin("dev", 9)
	if got := r.PWM(9).Level(); got != 255 {
		t.Fatalf("released pwm level = %d, want the owner's last level 255", got)
	}
	if _, err := r.ClaimPin("other", 9, core.FuncPWM); err != nil {
		t.Fatalf("reclaim after release: %v", err)
	}
}

func TestSimHandleViewMismatchPanics(t *testing.T) {
	r := NewSimRegistry()
	ph, _ := r.ClaimPin("dev", 4, core.FuncGPIOIn)
	defer func() {
		if recover() == nil {
			t.Fatal("AsPWM on a GPIO claim did not panic")
		}
	}()
	ph.AsPWM()
}
