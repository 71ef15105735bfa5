package config

import (
	"bytes"
	"os"
	"strconv"
	"strings"

	"bigredbutton-go/errcode"
	"bigredbutton-go/services/keymap"
	"bigredbutton-go/types"

	"github.com/BurntSushi/toml"
)

// maxGPIO is the highest pin number on the RP2040.
const maxGPIO = 29

// Default returns the compiled-in configuration.
func Default() types.AppConfig {
	return types.AppConfig{
		Button:         types.DefaultButtonConfig(),
		Pins:           defaultPins,
		PollIntervalMs: defaultPollIntervalMs,
		Profiles:       defaultProfiles(),
	}
}

// Parse decodes a TOML document over the defaults. Keys the document leaves
// out keep their default; a document with any [[profile]] replaces the
// default profile list as a whole.
func Parse(raw []byte) (types.AppConfig, error) {
	const op = "config.Parse"
	cfg := Default()
	cfg.Profiles = nil

	md, err := toml.Decode(string(raw), &cfg)
	if err != nil {
		return types.AppConfig{}, errcode.Wrap(errcode.InvalidParams, op, "", err)
	}
	if un := md.Undecoded(); len(un) > 0 {
		keys := make([]string, len(un))
		for i, k := range un {
			keys[i] = k.String()
		}
		return types.AppConfig{}, errcode.Wrap(errcode.InvalidParams, op, "unknown keys "+strings.Join(keys, ", "), nil)
	}
	if len(cfg.Profiles) == 0 {
		cfg.Profiles = defaultProfiles()
	}
	if err := Validate(cfg); err != nil {
		return types.AppConfig{}, err
	}
	return cfg, nil
}

// Load reads and parses a TOML file.
func Load(path string) (types.AppConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return types.AppConfig{}, errcode.Wrap(errcode.Error, "config.Load", path, err)
	}
	return Parse(raw)
}

// Validate checks what clamping cannot fix: wiring, poll interval and
// profile bindings. Timing and light values are clamped by the controller.
func Validate(cfg types.AppConfig) error {
	const op = "config.Validate"
	if cfg.PollIntervalMs == 0 {
		return errcode.Wrap(errcode.InvalidParams, op, "poll_interval_ms must be > 0", nil)
	}
	seen := map[int]string{}
	for _, p := range []struct {
		name string
		n    int
	}{
		{"button", cfg.Pins.Button},
		{"light", cfg.Pins.Light},
		{"switch1", cfg.Pins.Switch1},
		{"switch2", cfg.Pins.Switch2},
	} {
		if p.n < 0 || p.n > maxGPIO {
			return errcode.Wrap(errcode.InvalidParams, op, "pins."+p.name+" out of range: "+strconv.Itoa(p.n), nil)
		}
		if other, dup := seen[p.n]; dup {
			return errcode.Wrap(errcode.InvalidParams, op, "pins."+p.name+" shares a pin with pins."+other, nil)
		}
		seen[p.n] = p.name
	}
	if _, err := keymap.CompileAll(cfg.Profiles); err != nil {
		return errcode.Wrap(errcode.InvalidParams, op, "", err)
	}
	return nil
}

// Encode renders cfg as TOML, e.g. as a starting point for a config file.
func Encode(cfg types.AppConfig) ([]byte, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return nil, errcode.Wrap(errcode.Error, "config.Encode", "", err)
	}
	return buf.Bytes(), nil
}
