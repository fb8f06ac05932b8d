package engine

import "time"

// Ticker is a restartable periodic timer owned by the loop goroutine
// A stopped Ticker exposes a nil channel, which blocks forever in select
type Ticker struct {
	t        *time.Ticker
	interval time.Duration
}

// NewTicker returns a stopped ticker
func NewTicker() *Ticker {
	return &Ticker{}
}

// Start replaces any running interval with d
func (tk *Ticker) Start(d time.Duration) {
	tk.Stop()
	tk.t = time.NewTicker(d)
	tk.interval = d
}

// Stop halts the ticker; no tick from the previous interval is delivered afterwards
func (tk *Ticker) Stop() {
	if tk.t == nil {
		return
	}
	tk.t.Stop()
	tk.t = nil
	tk.interval = 0
}

// C returns the current tick channel, nil while stopped
// Re-read after every Start or Stop
func (tk *Ticker) C() <-chan time.Time {
	if tk.t == nil {
		return nil
	}
	return tk.t.C
}

// Interval returns the running interval, zero while stopped
func (tk *Ticker) Interval() time.Duration {
	return tk.interval
}
