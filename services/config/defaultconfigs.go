package config

import "bigredbutton-go/types"

// -----------------------------------------------------------------------------
// Compiled-in defaults
//
// The firmware has no filesystem and runs on these; host tools overlay a TOML
// file on top.
// -----------------------------------------------------------------------------

// Raspberry Pi Pico wiring: button on ADC0, light on a PWM-capable pin,
// selector on two pulled-up inputs.
var defaultPins = types.Pins{
	Button:  26,
	Light:   15,
	Switch1: 2,
	Switch2: 3,
}

const defaultPollIntervalMs = 10

func defaultProfiles() []types.Profile {
	return []types.Profile{
		{
			Name: "push-to-talk",
			Mode: types.ModeSingle,
			Keys: map[string]string{"press": "f13"},
		},
		{
			Name: "click",
			Mode: types.ModeDual,
			Keys: map[string]string{
				"click":      "f14",
				"long_press": "f15",
			},
		},
		{
			Name: "multi",
			Mode: types.ModeQuad,
			Keys: map[string]string{
				"single_click":            "f16",
				"double_click":            "f17",
				"long_press":              "f18",
				"long_press_double_click": "f19",
			},
		},
		{
			Name:    "multi-lit",
			Mode:    types.ModeQuad,
			KeepLit: true,
			Keys: map[string]string{
				"single_click":            "f20",
				"double_click":            "f21",
				"long_press":              "f22",
				"long_press_double_click": "f23",
			},
		},
	}
}
