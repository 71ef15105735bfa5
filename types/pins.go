package types

// ------------------------
// Wiring
// ------------------------

// Pins names the four GPIO numbers the controller is built from.
type Pins struct {
	Button  int `toml:"button" json:"button"`   // analog input, pulled up (pressed == low)
	Light   int `toml:"light" json:"light"`     // PWM output, active-low
	Switch1 int `toml:"switch1" json:"switch1"` // profile select bit 0, active-low
	Switch2 int `toml:"switch2" json:"switch2"` // profile select bit 1, active-low
}

// ------------------------
// Light
// ------------------------

// LightValue is a snapshot of the indicator for logs and the simulator.
type LightValue struct {
	Brightness float64 `json:"brightness"` // logical [0,1]
	Duty       uint16  `json:"duty"`       // physical PWM level, 0..Top (active-low)
	Top        uint16  `json:"top"`
}
