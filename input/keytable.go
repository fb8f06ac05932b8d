package input

import "github.com/gdamore/tcell/v2"

// KeyTable maps terminal keys to game keys
type KeyTable struct {
	// Special keys (arrows, Enter, Escape, Ctrl+*)
	SpecialKeys map[tcell.Key]Key

	// Printable bindings, matched case-insensitively for letters
	Runes map[rune]Key
}

// DefaultKeyTable returns arrows, WASD and hjkl steering plus the flow keys
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]Key{
			tcell.KeyUp:     KeyUp,
			tcell.KeyDown:   KeyDown,
			tcell.KeyLeft:   KeyLeft,
			tcell.KeyRight:  KeyRight,
			tcell.KeyEscape: KeyPause,
			tcell.KeyEnter:  KeyConfirm,
			tcell.KeyCtrlC:  KeyQuit,
		},
		Runes: map[rune]Key{
			'w': KeyUp,
			'a': KeyLeft,
			's': KeyDown,
			'd': KeyRight,
			'k': KeyUp,
			'h': KeyLeft,
			'j': KeyDown,
			'l': KeyRight,
			' ': KeyStart,
			',': KeyPrevLevel,
			'.': KeyNextLevel,
			'q': KeyQuit,
		},
	}
}

// Lookup resolves a tcell key event; KeyNone when unbound
func (t *KeyTable) Lookup(ev *tcell.EventKey) Key {
	if ev.Key() == tcell.KeyRune {
		r := ev.Rune()
		if r >= 'A' && r <= 'Z' {
			r += 'a' - 'A'
		}
		return t.Runes[r]
	}
	return t.SpecialKeys[ev.Key()]
}

var defaultTable = DefaultKeyTable()

// FromEvent resolves ev against the default bindings
func FromEvent(ev *tcell.EventKey) Key {
	return defaultTable.Lookup(ev)
}
