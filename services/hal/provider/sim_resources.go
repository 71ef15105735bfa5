package provider

import (
	"sync/atomic"

	"bigredbutton-go/errcode"
	"bigredbutton-go/services/hal/core"
	"bigredbutton-go/x/mathx"
)

// Ensure the simulator satisfies the contracts at compile time.
var _ core.Registry = (*SimRegistry)(nil)

// -----------------------------------------------------------------------------
// Simulated pins. Levels are atomics so a test bench or terminal reader can
// drive them while the polling goroutine samples.
// -----------------------------------------------------------------------------

type SimDigital struct {
	n      int
	level  atomic.Bool
	driven atomic.Bool
}

func (p *SimDigital) Number() int { return p.n }

func (p *SimDigital) ConfigureInput(pull core.Pull) error {
	if !p.driven.Load() {
		p.level.Store(pull == core.PullUp)
	}
	return nil
}

func (p *SimDigital) Get() bool { return p.level.Load() }

// Drive forces the line as an external switch would.
func (p *SimDigital) Drive(level bool) {
	p.driven.Store(true)
	p.level.Store(level)
}

type SimAnalog struct {
	n   int
	raw atomic.Uint32
}

func (a *SimAnalog) Number() int      { return a.n }
func (a *SimAnalog) Get() uint16      { return uint16(a.raw.Load()) }
func (a *SimAnalog) Drive(raw uint16) { a.raw.Store(uint32(raw)) }

type SimPWM struct {
	n      int
	freqHz atomic.Uint64
	top    atomic.Uint32
	level  atomic.Uint32
	writes atomic.Uint32
}

func (p *SimPWM) Number() int { return p.n }

func (p *SimPWM) Configure(freqHz uint64, top uint16) error {
	p.freqHz.Store(mathx.Max(freqHz, 1))
	p.top.Store(uint32(mathx.Max(top, 1)))
	return nil
}

func (p *SimPWM) Top() uint16 { return uint16(p.top.Load()) }

func (p *SimPWM) Set(level uint16) {
	p.level.Store(uint32(mathx.Min(level, p.Top())))
	p.writes.Add(1)
}

// Level returns the physical level last written.
func (p *SimPWM) Level() uint16 { return uint16(p.level.Load()) }

// Writes counts Set calls.
func (p *SimPWM) Writes() uint32 { return p.writes.Load() }

// -----------------------------------------------------------------------------
// Registry
// -----------------------------------------------------------------------------

// SimGPIOMax mirrors the RP2040's GPIO range so configs carry over.
const SimGPIOMax = 29

type SimRegistry struct {
	o       *owners
	digital map[int]*SimDigital
	analog  map[int]*SimAnalog
	pwm     map[int]*SimPWM
}

func NewSimRegistry() *SimRegistry {
	return &SimRegistry{
		o:       newOwners(0, SimGPIOMax),
		digital: make(map[int]*SimDigital),
		analog:  make(map[int]*SimAnalog),
		pwm:     make(map[int]*SimPWM),
	}
}

func (r *SimRegistry) ClaimPin(devID string, n int, fn core.PinFunc) (core.PinHandle, error) {
	r.o.mu.Lock()
	defer r.o.mu.Unlock()

	if fn != core.FuncGPIOIn && fn != core.FuncAnalogIn && fn != core.FuncPWM {
		return nil, errcode.Unsupported
	}
	if err := r.o.claim(devID, n, fn); err != nil {
		return nil, err
	}
	ph := &pinHandle{n: n, fn: fn}
	switch fn {
	case core.FuncGPIOIn:
		ph.gpio = r.digitalLocked(n)
	case core.FuncAnalogIn:
		ph.adc = r.analogLocked(n)
	case core.FuncPWM:
		ph.pwm = r.pwmLocked(n)
	}
	return ph, nil
}

// ReleasePin drops ownership. A PWM line keeps its last level; the device
// that owned it decides what the line rests at.
func (r *SimRegistry) ReleasePin(devID string, n int) {
	r.o.mu.Lock()
	defer r.o.mu.Unlock()
	r.o.release(devID, n)
}

func (r *SimRegistry) digitalLocked(n int) *SimDigital {
	if p, ok := r.digital[n]; ok {
		return p
	}
	p := &SimDigital{n: n}
	r.digital[n] = p
	return p
}

func (r *SimRegistry) analogLocked(n int) *SimAnalog {
	if a, ok := r.analog[n]; ok {
		return a
	}
	// A pulled-up line reads full scale until something pulls it down.
	a := &SimAnalog{n: n}
	a.raw.Store(core.AnalogFullScale)
	r.analog[n] = a
	return a
}

func (r *SimRegistry) pwmLocked(n int) *SimPWM {
	if p, ok := r.pwm[n]; ok {
		return p
	}
	p := &SimPWM{n: n}
	r.pwm[n] = p
	return p
}

// Digital returns the simulated line for pin n, creating it on first use.
func (r *SimRegistry) Digital(n int) *SimDigital {
	r.o.mu.Lock()
	defer r.o.mu.Unlock()
	return r.digitalLocked(n)
}

// Analog returns the simulated analog line for pin n.
func (r *SimRegistry) Analog(n int) *SimAnalog {
	r.o.mu.Lock()
	defer r.o.mu.Unlock()
	return r.analogLocked(n)
}

// PWM returns the simulated PWM channel for pin n.
func (r *SimRegistry) PWM(n int) *SimPWM {
	r.o.mu.Lock()
	defer r.o.mu.Unlock()
	return r.pwmLocked(n)
}
