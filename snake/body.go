package snake

import "github.com/lixenwraith/snek/core"

// Body is a ring-buffer deque of positions, head at index 0
// Per-tick updates are O(1): push a head, optionally pop the tail
type Body struct {
	buf  []core.Point
	head int // buf index of segment 0
	n    int
}

// NewBody creates a body from positions listed head first
func NewBody(segments ...core.Point) Body {
	capacity := 16
	for capacity < len(segments) {
		capacity *= 2
	}
	b := Body{buf: make([]core.Point, capacity)}
	copy(b.buf, segments)
	b.n = len(segments)
	return b
}

// Len returns the number of segments
func (b *Body) Len() int { return b.n }

// At returns segment i, 0 being the head
func (b *Body) At(i int) core.Point {
	return b.buf[(b.head+i)%len(b.buf)]
}

// Tail returns the last segment
func (b *Body) Tail() core.Point {
	return b.At(b.n - 1)
}

// PushFront adds a new head
func (b *Body) PushFront(p core.Point) {
	if b.n == len(b.buf) {
		b.grow()
	}
	b.head = (b.head - 1 + len(b.buf)) % len(b.buf)
	b.buf[b.head] = p
	b.n++
}

// PopBack removes the tail segment; no-op on an empty body
func (b *Body) PopBack() {
	if b.n > 0 {
		b.n--
	}
}

// Contains reports whether any segment equals p
func (b *Body) Contains(p core.Point) bool {
	return b.containsFirst(b.n, p)
}

// ContainsExcludingTail reports whether any segment but the last equals p
func (b *Body) ContainsExcludingTail(p core.Point) bool {
	return b.containsFirst(b.n-1, p)
}

func (b *Body) containsFirst(count int, p core.Point) bool {
	for i := 0; i < count; i++ {
		if b.At(i) == p {
			return true
		}
	}
	return false
}

// Points returns a head-first copy of all segments
func (b *Body) Points() []core.Point {
	out := make([]core.Point, b.n)
	for i := range out {
		out[i] = b.At(i)
	}
	return out
}

// Clone returns an independent copy
func (b *Body) Clone() Body {
	c := Body{buf: make([]core.Point, len(b.buf)), n: b.n}
	for i := 0; i < b.n; i++ {
		c.buf[i] = b.At(i)
	}
	return c
}

func (b *Body) grow() {
	size := len(b.buf) * 2
	if size == 0 {
		size = 16
	}
	next := make([]core.Point, size)
	for i := 0; i < b.n; i++ {
		next[i] = b.At(i)
	}
	b.buf = next
	b.head = 0
}
