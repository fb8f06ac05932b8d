package parameter

import "time"

// Game Loop Timing
const (
	// TickInterval is the snake movement interval while playing
	TickInterval = 250 * time.Millisecond

	// ExitingTickInterval is the faster interval for the exit walk animation
	ExitingTickInterval = 50 * time.Millisecond

	// LateFraction is the fraction of TickInterval after which an input counts as late
	// Late inputs run the look-ahead policy instead of plain buffering
	LateFraction = 0.6

	// KeyEventBuffer is the capacity of the channel between the input poller and the loop
	KeyEventBuffer = 64
)

// Cue delivery
const (
	// CueQueueSize is the ring capacity between the simulation and audio; must be a power of two
	CueQueueSize = 64
	CueQueueMask = CueQueueSize - 1
)
