package big_button

import (
	"bigredbutton-go/types"
	"bigredbutton-go/x/mathx"
)

// settings holds the clamped tunables. Times are ms.
type settings struct {
	longPressMs   uint32
	doubleClickMs uint32
	changeSpeed   float64
	flashHalfMs   uint32
	maxBrightness float64
	pulseOn       bool
	pulseHz       float64
	pulseDepth    float64
}

func defaultSettings() settings {
	var s settings
	s.apply(types.DefaultButtonConfig())
	return s
}

func (s *settings) apply(c types.ButtonConfig) {
	s.setLongPress(c.LongPressMs)
	s.setDoubleClick(c.DoubleClickMs)
	s.setChangeSpeed(c.ChangeSpeed)
	s.setFlashHalf(c.FlashHalfPeriodMs)
	s.setMaxBrightness(c.MaxBrightness)
	s.setPulse(c.PulseHz, c.PulseDepth)
}

func (s *settings) setLongPress(ms int)      { s.longPressMs = uint32(mathx.Clamp(ms, 1, 10000)) }
func (s *settings) setDoubleClick(ms int)    { s.doubleClickMs = uint32(mathx.Clamp(ms, 1, 10000)) }
func (s *settings) setChangeSpeed(v float64) { s.changeSpeed = mathx.Clamp(v, 0.1, 10000) }
func (s *settings) setFlashHalf(ms int)      { s.flashHalfMs = uint32(mathx.Clamp(ms, 1, 10000)) }
func (s *settings) setMaxBrightness(v float64) {
	s.maxBrightness = mathx.Clamp(v, 0, 1)
}

// setPulse: hz <= 0 turns pulsing off; the stored values stay in range
// either way so a later enable has something sane to run with.
func (s *settings) setPulse(hz, depth float64) {
	s.pulseOn = hz > 0
	s.pulseHz = mathx.Clamp(hz, 0.01, 100)
	s.pulseDepth = mathx.Clamp(depth, 0.01, 1)
}

func (s *settings) config() types.ButtonConfig {
	hz := s.pulseHz
	if !s.pulseOn {
		hz = 0
	}
	return types.ButtonConfig{
		LongPressMs:       int(s.longPressMs),
		DoubleClickMs:     int(s.doubleClickMs),
		ChangeSpeed:       s.changeSpeed,
		FlashHalfPeriodMs: int(s.flashHalfMs),
		MaxBrightness:     s.maxBrightness,
		PulseHz:           hz,
		PulseDepth:        s.pulseDepth,
	}
}

// ---- Public setters (values are clamped, never rejected) ----

func (d *Device) SetLongPressTime(ms int)           { d.set.setLongPress(ms) }
func (d *Device) SetDoubleClickTime(ms int)         { d.set.setDoubleClick(ms) }
func (d *Device) SetLightChangeSpeed(speed float64) { d.set.setChangeSpeed(speed) }
func (d *Device) SetLightFeedbackFlashSpeed(ms int) { d.set.setFlashHalf(ms) }
func (d *Device) SetLightMaxBrightness(v float64)   { d.set.setMaxBrightness(v) }
func (d *Device) SetLightPulse(hz, depth float64)   { d.set.setPulse(hz, depth) }
func (d *Device) Apply(c types.ButtonConfig)        { d.set.apply(c) }
func (d *Device) Config() types.ButtonConfig        { return d.set.config() }
