package event

import "testing"

func TestCueNamesComplete(t *testing.T) {
	seen := make(map[string]Cue)
	for c := Cue(0); int(c) < CueCount; c++ {
		name := c.String()
		if name == "" || name == "unknown" {
			t.Errorf("Cue %d has no name", c)
		}
		if prev, ok := seen[name]; ok {
			t.Errorf("Cue %d shares name %q with cue %d", c, name, prev)
		}
		seen[name] = c
	}
	if Cue(CueCount).String() != "unknown" {
		t.Error("Expected out-of-range cue to be unknown")
	}
}

func TestRecorderAndFanout(t *testing.T) {
	var a, b Recorder
	f := Fanout{&a, &b, Discard}

	f.Emit(CueEat)
	f.Emit(CueMove)
	f.Emit(CueEat)

	if a.Count(CueEat) != 2 || b.Count(CueEat) != 2 {
		t.Errorf("Expected 2 eat cues on each recorder, got %d and %d", a.Count(CueEat), b.Count(CueEat))
	}
	if len(a.Cues) != 3 || a.Cues[1] != CueMove {
		t.Errorf("Expected order [eat move eat], got %v", a.Cues)
	}

	a.Reset()
	if len(a.Cues) != 0 {
		t.Errorf("Expected empty recorder after reset, got %v", a.Cues)
	}
}
