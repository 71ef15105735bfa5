package big_button

import (
	"testing"

	"bigredbutton-go/services/hal/core"
	"bigredbutton-go/types"
	"bigredbutton-go/x/timex"
)

type fakeAnalog struct{ raw uint16 }

func (a *fakeAnalog) Number() int { return 26 }
func (a *fakeAnalog) Get() uint16 { return a.raw }

type fakeDigital struct {
	level  bool
	cfgErr error
}

func (p *fakeDigital) Number() int                    { return 2 }
func (p *fakeDigital) ConfigureInput(core.Pull) error { return p.cfgErr }
func (p *fakeDigital) Get() bool                      { return p.level }

type fakePWM struct {
	top   uint16
	level uint16
	sets  int
}

func (p *fakePWM) Number() int                          { return 9 }
func (p *fakePWM) Configure(_ uint64, top uint16) error { p.top = top; return nil }
func (p *fakePWM) Top() uint16                          { return p.top }
func (p *fakePWM) Set(l uint16)                         { p.level = l; p.sets++ }

type recKeyboard struct{ releases int }

func (k *recKeyboard) ReleaseAll() { k.releases++ }

// rig wires a Device to fakes and a manual clock.
type rig struct {
	t        *testing.T
	clk      *timex.Manual
	btn      *fakeAnalog
	pwm      *fakePWM
	sw1, sw2 *fakeDigital
	kb       *recKeyboard
	d        *Device
}

func newRig(t *testing.T, start uint32, cfg types.ButtonConfig) *rig {
	t.Helper()
	r := &rig{
		t:   t,
		clk: timex.NewManual(start),
		btn: &fakeAnalog{raw: core.AnalogFullScale},
		pwm: &fakePWM{top: 255},
		sw1: &fakeDigital{level: true},
		sw2: &fakeDigital{level: true},
		kb:  &recKeyboard{},
	}
	r.d = New("btn", Hardware{Button: r.btn, Light: r.pwm, Switch1: r.sw1, Switch2: r.sw2}, r.clk, r.kb, cfg)
	return r
}

func (r *rig) set(down bool) {
	if down {
		r.btn.raw = 0
	} else {
		r.btn.raw = core.AnalogFullScale
	}
}

type tally struct {
	press, release             int
	click, long                int
	single, double, longDouble int
	longAt                     []uint32 // clock readings when a long press fired
}

// dual holds the button state for total ms, polling every step ms.
func (r *rig) dual(down bool, total, step uint32, n *tally) {
	r.set(down)
	for el := uint32(0); el < total; el += step {
		r.clk.Advance(step)
		ev := r.d.PollDual()
		if ev.Click {
			n.click++
		}
		if ev.LongPress {
			n.long++
			n.longAt = append(n.longAt, r.clk.NowMs())
		}
	}
}

func (r *rig) quad(down bool, total, step uint32, n *tally) {
	r.set(down)
	for el := uint32(0); el < total; el += step {
		r.clk.Advance(step)
		ev := r.d.PollQuad()
		if ev.SingleClick {
			n.single++
		}
		if ev.DoubleClick {
			n.double++
		}
		if ev.LongPress {
			n.long++
			n.longAt = append(n.longAt, r.clk.NowMs())
		}
		if ev.LongPressDoubleClick {
			n.longDouble++
		}
	}
}

func (r *rig) single(down bool, total, step uint32, n *tally) {
	r.set(down)
	for el := uint32(0); el < total; el += step {
		r.clk.Advance(step)
		ev := r.d.PollSingle()
		if ev.Press && ev.Release {
			r.t.Fatalf("press and release in one poll at %d", r.clk.NowMs())
		}
		if ev.Press {
			n.press++
		}
		if ev.Release {
			n.release++
		}
	}
}
