package timex

import "time"

// Clock is a monotonic millisecond counter. It is allowed to wrap.
type Clock interface {
	NowMs() uint32
}

// Since returns the milliseconds elapsed from then to now, tolerating a
// single wrap of the counter between the two readings.
func Since(now, then uint32) uint32 { return now - then }

// Exceeds reports whether more than d ms have passed from then to now.
func Exceeds(now, then, d uint32) bool { return Since(now, then) > d }

// Within reports whether at most d ms have passed from then to now.
func Within(now, then, d uint32) bool { return Since(now, then) <= d }

// Mono is a Clock backed by the runtime's monotonic time.
type Mono struct{ start time.Time }

func NewMono() *Mono { return &Mono{start: time.Now()} }

func (m *Mono) NowMs() uint32 { return uint32(time.Since(m.start).Milliseconds()) }

// Manual is a Clock advanced by hand. Used by simulators and tests.
type Manual struct{ ms uint32 }

func NewManual(start uint32) *Manual { return &Manual{ms: start} }

func (m *Manual) NowMs() uint32    { return m.ms }
func (m *Manual) Advance(d uint32) { m.ms += d }
func (m *Manual) Set(ms uint32)    { m.ms = ms }
