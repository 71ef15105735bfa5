package main

import (
	log "github.com/sirupsen/logrus"

	"bigredbutton-go/services/hal/core"
	"bigredbutton-go/services/hal/devices/big_button"
	"bigredbutton-go/services/hal/provider"
	"bigredbutton-go/services/keymap"
	"bigredbutton-go/types"
	"bigredbutton-go/x/timex"
)

// keyLog stands in for the USB keyboard and records what would be sent.
type keyLog struct {
	log     log.FieldLogger
	actions []string
}

func (k *keyLog) record(a string) {
	k.actions = append(k.actions, a)
	k.log.WithField("key", a).Info("keyboard")
}

func (k *keyLog) Tap(key keymap.Key)  { k.record("tap " + key.String()) }
func (k *keyLog) Hold(key keymap.Key) { k.record("hold " + key.String()) }
func (k *keyLog) ReleaseAll()         { k.record("release") }

// sim is a controller wired to the simulated board.
type sim struct {
	cfg  types.AppConfig
	clk  timex.Clock
	reg  *provider.SimRegistry
	dev  *big_button.Device
	disp *keymap.Dispatcher
	keys *keyLog
	log  *log.Logger
}

func newSim(cfg types.AppConfig, clk timex.Clock, l *log.Logger) (*sim, error) {
	profiles, err := keymap.CompileAll(cfg.Profiles)
	if err != nil {
		return nil, err
	}
	s := &sim{
		cfg:  cfg,
		clk:  clk,
		reg:  provider.NewSimRegistry(),
		keys: &keyLog{log: l},
		log:  l,
	}
	s.dev, err = big_button.Open(s.reg, "button", cfg.Pins, clk, s.keys, cfg.Button)
	if err != nil {
		return nil, err
	}
	s.disp = keymap.NewDispatcher(s.dev, s.keys, profiles, l)
	return s, nil
}

func (s *sim) close() { _ = s.dev.Close() }

func (s *sim) button() *provider.SimAnalog { return s.reg.Analog(s.cfg.Pins.Button) }

func (s *sim) setButton(down bool) {
	if down {
		s.button().Drive(0)
	} else {
		s.button().Drive(core.AnalogFullScale)
	}
}

// setProgram drives the two active-low selector lines.
func (s *sim) setProgram(n int) {
	s.reg.Digital(s.cfg.Pins.Switch1).Drive(n&1 == 0)
	s.reg.Digital(s.cfg.Pins.Switch2).Drive(n&2 == 0)
}

// tick runs one dispatcher poll and logs what fired.
func (s *sim) tick() []types.Trigger {
	fired := s.disp.Tick()
	for _, tr := range fired {
		s.log.WithFields(log.Fields{
			"t":       s.clk.NowMs(),
			"program": s.disp.Program(),
		}).Info(string(tr))
	}
	return fired
}

func (s *sim) light() types.LightValue { return s.dev.Light() }
