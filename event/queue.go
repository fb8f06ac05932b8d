package event

import (
	"context"
	"sync/atomic"

	"github.com/lixenwraith/snek/parameter"
)

// Queue is a lock-free MPSC ring buffer of cues
// It decouples the simulation from the audio player: Emit never blocks
// Thread-Safety:
//   - Emit: Lock-free CAS, multiple producers OK
//   - Consume/Pump: Single consumer
//   - Published flags prevent reading partial writes
//
// Overflow: Oldest cues overwritten when full
type Queue struct {
	cues      [parameter.CueQueueSize]Cue
	published [parameter.CueQueueSize]atomic.Bool // True = slot fully written
	head      atomic.Uint64                       // Read index
	tail      atomic.Uint64                       // Write index

	// wake is signalled after each Emit; capacity 1 coalesces bursts
	wake chan struct{}
}

// NewQueue creates an empty queue
func NewQueue() *Queue {
	return &Queue{wake: make(chan struct{}, 1)}
}

// Emit adds c; implements Sink
func (q *Queue) Emit(c Cue) {
	for {
		currentTail := q.tail.Load()
		nextTail := currentTail + 1

		if q.tail.CompareAndSwap(currentTail, nextTail) {
			idx := currentTail & parameter.CueQueueMask

			q.cues[idx] = c
			q.published[idx].Store(true) // MUST be after write

			// Advance head if overwriting unread cues
			currentHead := q.head.Load()
			if nextTail-currentHead > parameter.CueQueueSize {
				q.head.CompareAndSwap(currentHead, nextTail-parameter.CueQueueSize)
			}
			break
		}
	}

	select {
	case q.wake <- struct{}{}:
	default:
	}
}

// Consume returns all pending cues in FIFO order and advances head
func (q *Queue) Consume() []Cue {
	for {
		currentHead := q.head.Load()
		currentTail := q.tail.Load()

		if currentTail == currentHead {
			return nil
		}

		maxAvailable := currentTail - currentHead
		if maxAvailable > parameter.CueQueueSize {
			maxAvailable = parameter.CueQueueSize
			currentHead = currentTail - parameter.CueQueueSize
		}

		result := make([]Cue, 0, maxAvailable)
		for i := uint64(0); i < maxAvailable; i++ {
			idx := (currentHead + i) & parameter.CueQueueMask

			if !q.published[idx].Load() {
				break // Writer incomplete
			}

			result = append(result, q.cues[idx])
			q.published[idx].Store(false)
		}

		newHead := currentHead + uint64(len(result))
		if q.head.CompareAndSwap(currentHead, newHead) {
			if len(result) == 0 {
				return nil
			}
			return result
		}
	}
}

// Len returns approximate pending cue count
func (q *Queue) Len() int {
	head := q.head.Load()
	tail := q.tail.Load()
	if tail <= head {
		return 0
	}
	return min(int(tail-head), parameter.CueQueueSize)
}

// Pump forwards cues to sink as they arrive until ctx ends
// Run it on its own goroutine; it is the queue's single consumer
func (q *Queue) Pump(ctx context.Context, sink Sink) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-q.wake:
			for _, c := range q.Consume() {
				sink.Emit(c)
			}
		}
	}
}
