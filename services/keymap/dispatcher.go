package keymap

import "bigredbutton-go/types"

// Button is the part of the button controller the dispatcher drives.
type Button interface {
	ProgramIndex() int
	KeepLightLit(bool)
	PollSingle() types.SingleEvent
	PollDual() types.DualEvent
	PollQuad() types.QuadEvent
}

// Sender emits keys to the host.
type Sender interface {
	Tap(k Key)  // press and release
	Hold(k Key) // press and keep down until ReleaseAll
	ReleaseAll()
}

// Logger is the narrow logging surface services use; the firmware backs it
// with println, host tools with logrus.
type Logger interface {
	Infof(format string, args ...any)
	Debugf(format string, args ...any)
}

type nopLogger struct{}

func (nopLogger) Infof(string, ...any)  {}
func (nopLogger) Debugf(string, ...any) {}

// Dispatcher turns button events into key actions under the profile picked
// by the program selector. Not safe for concurrent use.
type Dispatcher struct {
	btn      Button
	out      Sender
	log      Logger
	profiles [types.NumPrograms]Profile
	program  int
	holding  bool
}

func NewDispatcher(btn Button, out Sender, profiles [types.NumPrograms]Profile, log Logger) *Dispatcher {
	if log == nil {
		log = nopLogger{}
	}
	return &Dispatcher{btn: btn, out: out, log: log, profiles: profiles, program: -1}
}

// Program returns the profile index seen by the last Tick, or -1 before the
// first one.
func (d *Dispatcher) Program() int { return d.program }

// SetKeepLit overrides the keep-lit flag of one profile.
func (d *Dispatcher) SetKeepLit(program int, lit bool) {
	if program >= 0 && program < types.NumPrograms {
		d.profiles[program].KeepLit = lit
	}
}

// Tick polls the button once and returns the triggers that fired.
func (d *Dispatcher) Tick() []types.Trigger {
	idx := d.btn.ProgramIndex()
	if idx < 0 || idx >= types.NumPrograms {
		idx = 0
	}
	p := &d.profiles[idx]
	if idx != d.program {
		// The controller already released every key on a real change.
		d.holding = false
		d.log.Infof("[keymap] program %d: %s (%s)", idx, p.Name, p.Mode)
		d.program = idx
	}
	d.btn.KeepLightLit(p.KeepLit)

	var fired []types.Trigger
	switch p.Mode {
	case types.ModeSingle:
		fired = d.btn.PollSingle().Fired()
	case types.ModeDual:
		fired = d.btn.PollDual().Fired()
	default:
		fired = d.btn.PollQuad().Fired()
	}

	for _, tr := range fired {
		d.log.Debugf("[keymap] %s", tr)
		if tr == types.TriggerRelease {
			if d.holding {
				d.out.ReleaseAll()
				d.holding = false
			}
			continue
		}
		k, ok := p.Keys[tr]
		if !ok {
			continue
		}
		if p.Mode == types.ModeSingle {
			d.out.Hold(k)
			d.holding = true
		} else {
			d.out.Tap(k)
		}
		d.log.Debugf("[keymap] %s -> %s", tr, k)
	}
	return fired
}
