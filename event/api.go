package event

// Sink receives cues synchronously; implementations must not block
type Sink interface {
	Emit(Cue)
}

// SinkFunc adapts a function to Sink
type SinkFunc func(Cue)

// Emit calls f(c)
func (f SinkFunc) Emit(c Cue) { f(c) }

// Discard drops every cue
var Discard Sink = SinkFunc(func(Cue) {})

// Recorder collects cues in emission order
// Not safe for concurrent use; the simulation is single-threaded
type Recorder struct {
	Cues []Cue
}

// Emit appends c
func (r *Recorder) Emit(c Cue) {
	r.Cues = append(r.Cues, c)
}

// Count returns how many times c was emitted
func (r *Recorder) Count(c Cue) int {
	n := 0
	for _, x := range r.Cues {
		if x == c {
			n++
		}
	}
	return n
}

// Reset clears recorded cues
func (r *Recorder) Reset() {
	r.Cues = r.Cues[:0]
}

// Fanout emits to every sink in order
type Fanout []Sink

// Emit forwards c to all sinks
func (f Fanout) Emit(c Cue) {
	for _, s := range f {
		s.Emit(c)
	}
}
