package core

// ---- Pin functions ----

type PinFunc uint8

const (
	FuncGPIOIn PinFunc = iota
	FuncAnalogIn
	FuncPWM
)

func (f PinFunc) String() string {
	switch f {
	case FuncGPIOIn:
		return "gpio_in"
	case FuncAnalogIn:
		return "analog_in"
	case FuncPWM:
		return "pwm"
	default:
		return "unknown"
	}
}

type Pull uint8

const (
	PullNone Pull = iota
	PullUp
	PullDown
)

// ---- Handles ----

// DigitalIn is a GPIO configured as input.
type DigitalIn interface {
	Number() int
	ConfigureInput(pull Pull) error
	Get() bool
}

// AnalogIn samples an analog line. Readings are scaled to the full
// 16-bit range (0..0xFFFF) whatever the converter's native resolution.
type AnalogIn interface {
	Number() int
	Get() uint16
}

// AnalogFullScale is the reading of an analog line tied to the rail.
const AnalogFullScale = 0xFFFF

// PWMOut drives a PWM channel. Levels are physical: 0..Top().
type PWMOut interface {
	Number() int
	Configure(freqHz uint64, top uint16) error
	Top() uint16
	Set(level uint16)
}

// PinHandle is a claimed pin; only the view matching the claimed
// function may be used.
type PinHandle interface {
	Pin() int
	AsGPIO() DigitalIn
	AsAnalog() AnalogIn
	AsPWM() PWMOut
}

// ---- Registry ----

// Registry arbitrates pin ownership between devices.
type Registry interface {
	ClaimPin(devID string, n int, fn PinFunc) (PinHandle, error)
	ReleasePin(devID string, n int)
}

// ---- Keyboard collaborator ----

// Keyboard is the slice of the USB HID keyboard the button core needs.
type Keyboard interface {
	// ReleaseAll lifts every key currently reported as held.
	ReleaseAll()
}
