package types

// ------------------------
// Button timing + light configuration
// ------------------------

// ButtonConfig carries the tunables of the button controller. Values are
// clamped when applied; out-of-range input is never rejected.
type ButtonConfig struct {
	LongPressMs       int     `toml:"long_press_ms" json:"long_press_ms"`               // [1,10000]
	DoubleClickMs     int     `toml:"double_click_ms" json:"double_click_ms"`           // [1,10000]
	ChangeSpeed       float64 `toml:"change_speed" json:"change_speed"`                 // [0.1,10000], bigger is faster
	FlashHalfPeriodMs int     `toml:"flash_half_period_ms" json:"flash_half_period_ms"` // [1,10000]
	MaxBrightness     float64 `toml:"max_brightness" json:"max_brightness"`             // [0,1]
	PulseHz           float64 `toml:"pulse_hz" json:"pulse_hz"`                         // [0.01,100], <=0 disables
	PulseDepth        float64 `toml:"pulse_depth" json:"pulse_depth"`                   // fraction [0.01,1]
}

// DefaultButtonConfig matches the controller's power-on values.
func DefaultButtonConfig() ButtonConfig {
	return ButtonConfig{
		LongPressMs:       700,
		DoubleClickMs:     400,
		ChangeSpeed:       25,
		FlashHalfPeriodMs: 150,
		MaxBrightness:     1,
		PulseHz:           0.5,
		PulseDepth:        0.1,
	}
}

// ------------------------
// Profiles (one per program index)
// ------------------------

type Profile struct {
	Name    string            `toml:"name" json:"name"`
	Mode    Mode              `toml:"mode" json:"mode"`
	KeepLit bool              `toml:"keep_lit" json:"keep_lit"`
	Keys    map[string]string `toml:"keys" json:"keys"` // trigger name -> key name
}

// NumPrograms is the number of positions of the 2-line selector.
const NumPrograms = 4

// ------------------------
// Application configuration
// ------------------------

type AppConfig struct {
	Button         ButtonConfig `toml:"button" json:"button"`
	Pins           Pins         `toml:"pins" json:"pins"`
	PollIntervalMs uint32       `toml:"poll_interval_ms" json:"poll_interval_ms"` // >0
	Profiles       []Profile    `toml:"profile" json:"profiles"`
}
