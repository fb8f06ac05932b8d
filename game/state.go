package game

import (
	"github.com/lixenwraith/snek/engine/fsm"
)

// States of the top-level machine
// Play and Exiting share the Ticking parent, whose exit hook cancels the timer
const (
	StateMenu fsm.StateID = iota + fsm.StateRoot + 1
	StateTicking
	StatePlay
	StateExiting
	StatePaused
	StateDied
	StateGameOver
)

// Machine events
const (
	evStart fsm.Event = iota + 1
	evPause
	evResume
	evDied
	evGameOver
	evExit
	evLevelDone
)

// buildMachine wires the state graph and its timer hooks
func buildMachine() *fsm.Machine[*Game] {
	m := fsm.NewMachine[*Game]()

	m.AddState(fsm.StateRoot, "Root", fsm.StateNone)
	m.AddState(StateMenu, "Menu", fsm.StateRoot)
	m.AddState(StateTicking, "Ticking", fsm.StateRoot)
	m.AddState(StatePlay, "Play", StateTicking)
	m.AddState(StateExiting, "Exiting", StateTicking)
	m.AddState(StatePaused, "Paused", fsm.StateRoot)
	m.AddState(StateDied, "Died", fsm.StateRoot)
	m.AddState(StateGameOver, "GameOver", fsm.StateRoot)

	m.OnExit(StateTicking, (*Game).stopTimer)
	m.OnEnter(StatePlay, (*Game).enterPlay)
	m.OnEnter(StateExiting, (*Game).enterExiting)
	m.OnEnter(StatePaused, (*Game).enterPaused)
	m.OnExit(StatePaused, (*Game).exitPaused)

	m.AddTransition(StateMenu, fsm.Transition[*Game]{TargetID: StatePlay, Event: evStart})

	m.AddTransition(StatePlay, fsm.Transition[*Game]{TargetID: StatePaused, Event: evPause})
	m.AddTransition(StatePlay, fsm.Transition[*Game]{TargetID: StateDied, Event: evDied})
	m.AddTransition(StatePlay, fsm.Transition[*Game]{TargetID: StateGameOver, Event: evGameOver})
	m.AddTransition(StatePlay, fsm.Transition[*Game]{TargetID: StateExiting, Event: evExit})

	m.AddTransition(StatePaused, fsm.Transition[*Game]{TargetID: StatePlay, Event: evResume})

	m.AddTransition(StateExiting, fsm.Transition[*Game]{
		TargetID: StatePlay,
		Event:    evLevelDone,
		Action:   (*Game).finishLevel,
	})

	m.AddTransition(StateDied, fsm.Transition[*Game]{
		TargetID: StatePlay,
		Event:    evStart,
		Action:   (*Game).restartLevel,
	})
	m.AddTransition(StateGameOver, fsm.Transition[*Game]{
		TargetID: StatePlay,
		Event:    evStart,
		Action:   (*Game).restartGame,
	})

	return m
}
