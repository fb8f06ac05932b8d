package input

import "github.com/lixenwraith/snek/core"

// Key is a semantic game key, independent of the physical binding
type Key uint8

const (
	KeyNone Key = iota

	// Steering
	KeyUp
	KeyDown
	KeyLeft
	KeyRight

	// Flow control
	KeyPause     // Escape
	KeyStart     // Space: start, pause, resume, restart
	KeyConfirm   // Enter
	KeyPrevLevel // ,
	KeyNextLevel // .

	// System
	KeyQuit // q, Ctrl+C

	keyCount
)

var keyNames = [keyCount]string{
	KeyNone:      "none",
	KeyUp:        "up",
	KeyDown:      "down",
	KeyLeft:      "left",
	KeyRight:     "right",
	KeyPause:     "pause",
	KeyStart:     "start",
	KeyConfirm:   "confirm",
	KeyPrevLevel: "prev-level",
	KeyNextLevel: "next-level",
	KeyQuit:      "quit",
}

func (k Key) String() string {
	if k < keyCount {
		return keyNames[k]
	}
	return "unknown"
}

// Direction maps steering keys to a grid direction
func (k Key) Direction() (core.Direction, bool) {
	switch k {
	case KeyUp:
		return core.DirUp, true
	case KeyDown:
		return core.DirDown, true
	case KeyLeft:
		return core.DirLeft, true
	case KeyRight:
		return core.DirRight, true
	default:
		return 0, false
	}
}
