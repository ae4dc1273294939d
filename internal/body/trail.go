package body

import "github.com/go-gl/mathgl/mgl64"

// Trail is a bounded FIFO of past positions. Appending at capacity evicts
// the oldest entry, so the buffer always holds the most recent positions in
// recording order.
type Trail struct {
	buf  []mgl64.Vec3
	head int // next write index
	size int
}

// NewTrail returns an empty trail holding at most capacity positions.
// Capacities below one are clamped to one.
func NewTrail(capacity int) *Trail {
	if capacity < 1 {
		capacity = 1
	}
	return &Trail{buf: make([]mgl64.Vec3, capacity)}
}

// Append records p, evicting the oldest position if the trail is full.
func (t *Trail) Append(p mgl64.Vec3) {
	t.buf[t.head] = p
	t.head = (t.head + 1) % len(t.buf)
	if t.size < len(t.buf) {
		t.size++
	}
}

// Len returns the number of recorded positions.
func (t *Trail) Len() int { return t.size }

// Cap returns the fixed capacity.
func (t *Trail) Cap() int { return len(t.buf) }

// Positions returns a copy of the recorded history, oldest first.
func (t *Trail) Positions() []mgl64.Vec3 {
	out := make([]mgl64.Vec3, t.size)
	start := (t.head - t.size + len(t.buf)) % len(t.buf)
	for i := 0; i < t.size; i++ {
		out[i] = t.buf[(start+i)%len(t.buf)]
	}
	return out
}

// Latest returns the most recently appended position, if any.
func (t *Trail) Latest() (mgl64.Vec3, bool) {
	if t.size == 0 {
		return mgl64.Vec3{}, false
	}
	return t.buf[(t.head-1+len(t.buf))%len(t.buf)], true
}

// Reset truncates the trail to the single position p.
func (t *Trail) Reset(p mgl64.Vec3) {
	t.head = 0
	t.size = 0
	t.Append(p)
}
