//go:build rp2040

package provider

import (
	"io"
	"sync"
	"time"

	"bigredbutton-go/errcode"
	"bigredbutton-go/services/hal/core"
	"bigredbutton-go/x/mathx"
	"machine"

	uartx "github.com/jangala-dev/tinygo-uartx/uartx"
)

// Ensure the provider satisfies the contracts at compile time.
var _ core.Registry = (*RP2Registry)(nil)

const (
	rp2GPIOMin = 0
	rp2GPIOMax = 29
)

// -----------------------------------------------------------------------------
// GPIO input
// -----------------------------------------------------------------------------

type rp2GPIO struct {
	p machine.Pin
	n int
}

func (r *rp2GPIO) Number() int { return r.n }

func (r *rp2GPIO) ConfigureInput(pull core.Pull) error {
	var mode machine.PinMode
	switch pull {
	case core.PullUp:
		mode = machine.PinInputPullup
	case core.PullDown:
		mode = machine.PinInputPulldown
	default:
		mode = machine.PinInput
	}
	r.p.Configure(machine.PinConfig{Mode: mode})
	return nil
}

func (r *rp2GPIO) Get() bool { return r.p.Get() }

// -----------------------------------------------------------------------------
// ADC (GP26..GP29). machine scales readings to 16 bits.
// -----------------------------------------------------------------------------

type rp2ADC struct {
	adc machine.ADC
	n   int
}

func (a *rp2ADC) Number() int { return a.n }
func (a *rp2ADC) Get() uint16 { return a.adc.Get() }

var adcInit sync.Once

func isADCPin(n int) bool { return n >= 26 && n <= 29 }

// -----------------------------------------------------------------------------
// PWM internals (RP2040)
// -----------------------------------------------------------------------------

// Local interface to avoid depending on an unexported concrete type in machine.
type pwmCtrl interface {
	Configure(cfg machine.PWMConfig) error
	Top() uint32
	Set(channel uint8, value uint32)
}

// Select controller handle for a given slice number (0..7).
func pwmGroupBySlice(slice uint8) pwmCtrl {
	switch slice {
	case 0:
		return machine.PWM0
	case 1:
		return machine.PWM1
	case 2:
		return machine.PWM2
	case 3:
		return machine.PWM3
	case 4:
		return machine.PWM4
	case 5:
		return machine.PWM5
	case 6:
		return machine.PWM6
	default:
		return machine.PWM7
	}
}

// rp2PWM is a channel-level handle. Levels are logical 0..top and are
// scaled onto the slice's hardware counter.
type rp2PWM struct {
	mu sync.Mutex

	pin   int
	ctrl  pwmCtrl
	chIdx uint8 // 0 => A, 1 => B

	top   uint16
	hwTop uint32
	level uint16
}

func (p *rp2PWM) Number() int { return p.pin }

func (p *rp2PWM) Configure(freqHz uint64, top uint16) error {
	top = mathx.Max(top, 1)
	freqHz = mathx.Max(freqHz, 1)
	if err := p.ctrl.Configure(machine.PWMConfig{Period: uint64(time.Second) / freqHz}); err != nil {
		return err
	}
	machine.Pin(p.pin).Configure(machine.PinConfig{Mode: machine.PinPWM})

	p.mu.Lock()
	p.top = top
	p.hwTop = p.ctrl.Top()
	p.mu.Unlock()
	return nil
}

func (p *rp2PWM) Top() uint16 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.top
}

func (p *rp2PWM) Set(level uint16) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.setHW(level)
}

// caller holds lock
func (p *rp2PWM) setHW(level uint16) {
	if p.hwTop == 0 || p.top == 0 {
		return
	}
	level = mathx.Min(level, p.top)
	p.ctrl.Set(p.chIdx, uint32(level)*p.hwTop/uint32(p.top))
	p.level = level
}

// -----------------------------------------------------------------------------
// Registry
// -----------------------------------------------------------------------------

type RP2Registry struct {
	o       *owners
	gpioMap map[int]*rp2GPIO
	pwmMap  map[int]*rp2PWM
}

func NewRP2Registry() *RP2Registry {
	return &RP2Registry{
		o:       newOwners(rp2GPIOMin, rp2GPIOMax),
		gpioMap: make(map[int]*rp2GPIO),
		pwmMap:  make(map[int]*rp2PWM),
	}
}

func (r *RP2Registry) lookupGPIO(n int) *rp2GPIO {
	if g, ok := r.gpioMap[n]; ok {
		return g
	}
	h := &rp2GPIO{p: machine.Pin(n), n: n}
	r.gpioMap[n] = h
	return h
}

func (r *RP2Registry) ClaimPin(devID string, n int, fn core.PinFunc) (core.PinHandle, error) {
	r.o.mu.Lock()
	defer r.o.mu.Unlock()

	if err := r.o.claim(devID, n, fn); err != nil {
		return nil, err
	}
	unsupported := func() (core.PinHandle, error) {
		r.o.release(devID, n)
		return nil, errcode.Unsupported
	}

	ph := &pinHandle{n: n, fn: fn}
	switch fn {
	case core.FuncGPIOIn:
		ph.gpio = r.lookupGPIO(n)

	case core.FuncAnalogIn:
		if !isADCPin(n) {
			return unsupported()
		}
		adcInit.Do(machine.InitADC)
		a := machine.ADC{Pin: machine.Pin(n)}
		a.Configure(machine.ADCConfig{})
		ph.adc = &rp2ADC{adc: a, n: n}

	case core.FuncPWM:
		// Determine slice and controller for this pin.
		sliceNum, err := machine.PWMPeripheral(machine.Pin(n))
		if err != nil {
			return unsupported()
		}
		p := &rp2PWM{
			pin:   n,
			ctrl:  pwmGroupBySlice(sliceNum),
			chIdx: uint8(n & 1), // even pin => A, odd pin => B
		}
		ph.pwm = p
		r.pwmMap[n] = p

	default:
		return unsupported()
	}
	return ph, nil
}

// ReleasePin drops ownership. A PWM pin stays on its slice at the owner's
// last level; other pins go back to input.
func (r *RP2Registry) ReleasePin(devID string, n int) {
	r.o.mu.Lock()
	defer r.o.mu.Unlock()
	fn, ok := r.o.release(devID, n)
	if !ok {
		return
	}
	if fn == core.FuncPWM {
		delete(r.pwmMap, n)
		return
	}
	machine.Pin(n).Configure(machine.PinConfig{Mode: machine.PinInput})
}

// -----------------------------------------------------------------------------
// Console (UART) for diagnostics
// -----------------------------------------------------------------------------

// OpenConsole configures a UART for log output and returns it as a writer.
// Unknown ids yield a writer that discards.
func OpenConsole(id string, tx, rx int, baud uint32) io.Writer {
	var hw *uartx.UART
	switch id {
	case "uart0":
		hw = uartx.UART0
	case "uart1":
		hw = uartx.UART1
	default:
		return io.Discard
	}
	// Defaults inside uartx will apply if zero.
	_ = hw.Configure(uartx.UARTConfig{
		BaudRate: baud,
		TX:       machine.Pin(tx),
		RX:       machine.Pin(rx),
	})
	return hw
}
