package types

// ------------------------
// Poll modes
// ------------------------

// Mode selects which event vocabulary a poll produces.
type Mode string

const (
	ModeSingle Mode = "single" // Press / Release
	ModeDual   Mode = "dual"   // Click / LongPress
	ModeQuad   Mode = "quad"   // SingleClick / DoubleClick / LongPress / LongPressDoubleClick
)

func (m Mode) Valid() bool {
	switch m {
	case ModeSingle, ModeDual, ModeQuad:
		return true
	}
	return false
}

// ------------------------
// Events (fresh per poll, never retained)
// ------------------------

type SingleEvent struct {
	Press   bool `json:"press"`
	Release bool `json:"release"`
}

func (e SingleEvent) Any() bool { return e.Press || e.Release }

type DualEvent struct {
	Click     bool `json:"click"`
	LongPress bool `json:"long_press"`
}

func (e DualEvent) Any() bool { return e.Click || e.LongPress }

type QuadEvent struct {
	SingleClick          bool `json:"single_click"`
	DoubleClick          bool `json:"double_click"`
	LongPress            bool `json:"long_press"`
	LongPressDoubleClick bool `json:"long_press_double_click"`
}

func (e QuadEvent) Any() bool {
	return e.SingleClick || e.DoubleClick || e.LongPress || e.LongPressDoubleClick
}

// ------------------------
// Triggers (event names used by key bindings and logs)
// ------------------------

type Trigger string

const (
	TriggerPress                Trigger = "press" // held for as long as the button is down
	TriggerRelease              Trigger = "release"
	TriggerClick                Trigger = "click"
	TriggerLongPress            Trigger = "long_press"
	TriggerSingleClick          Trigger = "single_click"
	TriggerDoubleClick          Trigger = "double_click"
	TriggerLongPressDoubleClick Trigger = "long_press_double_click"
)

// Triggers lists the triggers a mode can produce, in report order.
func (m Mode) Triggers() []Trigger {
	switch m {
	case ModeSingle:
		return []Trigger{TriggerPress}
	case ModeDual:
		return []Trigger{TriggerClick, TriggerLongPress}
	case ModeQuad:
		return []Trigger{TriggerSingleClick, TriggerDoubleClick, TriggerLongPress, TriggerLongPressDoubleClick}
	}
	return nil
}

// Fired returns the triggers set in a single event.
func (e SingleEvent) Fired() []Trigger {
	switch {
	case e.Press:
		return []Trigger{TriggerPress}
	case e.Release:
		return []Trigger{TriggerRelease}
	}
	return nil
}

// Fired returns the triggers set in a dual event.
func (e DualEvent) Fired() []Trigger {
	var out []Trigger
	if e.Click {
		out = append(out, TriggerClick)
	}
	if e.LongPress {
		out = append(out, TriggerLongPress)
	}
	return out
}

// Fired returns the triggers set in a quad event.
func (e QuadEvent) Fired() []Trigger {
	var out []Trigger
	if e.SingleClick {
		out = append(out, TriggerSingleClick)
	}
	if e.DoubleClick {
		out = append(out, TriggerDoubleClick)
	}
	if e.LongPress {
		out = append(out, TriggerLongPress)
	}
	if e.LongPressDoubleClick {
		out = append(out, TriggerLongPressDoubleClick)
	}
	return out
}
