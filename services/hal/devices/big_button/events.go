package big_button

import (
	"bigredbutton-go/types"
	"bigredbutton-go/x/timex"
)

// edges is the outcome of one debounced sample.
type edges struct {
	down     bool // button is held now
	pressed  bool // went down this poll
	released bool // came up this poll
}

// machine is the click classifier. It is only touched from the polling
// goroutine.
type machine struct {
	last bool // debounced state at the previous poll

	// current hold
	pressStart uint32
	longFired  bool

	// double-click sequence
	seqOpen    bool
	seqStart   uint32
	seqPending bool // a second press landed inside the window
}

func (m *machine) reset() { *m = machine{} }

// step records the new sample and starts a hold on a press edge.
func (m *machine) step(now uint32, down bool) edges {
	e := edges{
		down:     down,
		pressed:  down && !m.last,
		released: !down && m.last,
	}
	m.last = down
	if e.pressed {
		m.pressStart = now
		m.longFired = false
	}
	return e
}

// longPress fires at most once per hold, once the hold outlasts limit.
func (m *machine) longPress(now uint32, e edges, limit uint32) bool {
	if m.longFired || !e.down || !timex.Exceeds(now, m.pressStart, limit) {
		return false
	}
	m.longFired = true
	return true
}

func (m *machine) single(e edges) types.SingleEvent {
	return types.SingleEvent{Press: e.pressed, Release: e.released}
}

// dual classifies a hold as Click or LongPress. flash reports whether the
// light should acknowledge the event.
func (m *machine) dual(now uint32, e edges, s *settings, keepLit bool) (ev types.DualEvent, flash bool) {
	// A hold that already produced a long press has no click.
	ev.Click = e.released && !m.longFired
	flash = ev.Click && keepLit

	ev.LongPress = m.longPress(now, e, s.longPressMs)
	if ev.LongPress {
		flash = true
	}
	return ev, flash
}

// quad layers the double-click window over the dual primitives.
func (m *machine) quad(now uint32, e edges, s *settings, keepLit bool) (ev types.QuadEvent, flash bool) {
	if m.longPress(now, e, s.longPressMs) {
		// Long press ends any open sequence; after a double press it is
		// reported as the compound event instead.
		if m.seqPending {
			ev.LongPressDoubleClick = true
		} else {
			ev.LongPress = true
		}
		m.seqOpen = false
		flash = true
	}

	switch {
	case !m.seqOpen:
		if e.pressed {
			m.seqOpen = true
			m.seqStart = now
			m.seqPending = false
		}
	case timex.Within(now, m.seqStart, s.doubleClickMs):
		if e.pressed {
			m.seqPending = true
		}
	case !e.down && !m.seqPending:
		ev.SingleClick = true
		m.seqOpen = false
		flash = flash || keepLit
	}

	if m.seqOpen && m.seqPending && e.released {
		ev.DoubleClick = true
		m.seqOpen = false
		flash = flash || keepLit
	}
	return ev, flash
}
