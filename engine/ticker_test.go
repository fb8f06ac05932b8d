package engine

import (
	"testing"
	"time"
)

func TestTickerStoppedChannelIsNil(t *testing.T) {
	tk := NewTicker()
	if tk.C() != nil {
		t.Error("Expected nil channel before Start")
	}
	tk.Stop() // no-op
	if tk.Interval() != 0 {
		t.Errorf("Expected zero interval, got %v", tk.Interval())
	}
}

func TestTickerDelivers(t *testing.T) {
	tk := NewTicker()
	tk.Start(5 * time.Millisecond)
	defer tk.Stop()

	select {
	case <-tk.C():
	case <-time.After(time.Second):
		t.Fatal("Expected a tick within 1s")
	}
	if tk.Interval() != 5*time.Millisecond {
		t.Errorf("Expected 5ms interval, got %v", tk.Interval())
	}
}

func TestTickerRestartReplacesChannel(t *testing.T) {
	tk := NewTicker()
	tk.Start(time.Hour)
	first := tk.C()

	tk.Start(5 * time.Millisecond)
	if tk.C() == first {
		t.Error("Expected a fresh channel after restart")
	}
	if tk.Interval() != 5*time.Millisecond {
		t.Errorf("Expected 5ms interval, got %v", tk.Interval())
	}

	tk.Stop()
	if tk.C() != nil {
		t.Error("Expected nil channel after Stop")
	}
}
