package fsm

import "fmt"

// NewMachine creates a new FSM instance
func NewMachine[T any]() *Machine[T] {
	return &Machine[T]{
		nodes: make(map[StateID]*Node[T]),
	}
}

// Init enters the initial state, running OnEnter from Root down to it
func (m *Machine[T]) Init(ctx T, initialID StateID) error {
	node, ok := m.nodes[initialID]
	if !ok {
		return fmt.Errorf("initial state ID %d not found", initialID)
	}
	if len(node.Path) == 0 {
		return fmt.Errorf("paths not compiled")
	}

	m.initialID = initialID
	m.activeID = initialID
	m.activePath = append(m.activePath[:0], node.Path...)

	for _, id := range m.activePath {
		for _, action := range m.nodes[id].OnEnter {
			action(ctx)
		}
	}
	return nil
}

// HandleEvent routes an event from the active leaf up to the root
// Returns true if the event triggered a transition
func (m *Machine[T]) HandleEvent(ctx T, ev Event) bool {
	if m.activeID == StateNone {
		return false
	}

	// Bubble up: Leaf -> Parent -> Root
	currID := m.activeID
	for currID != StateNone {
		node := m.nodes[currID]
		for _, trans := range node.Transitions {
			if trans.Event != ev {
				continue
			}
			if trans.Guard == nil || trans.Guard(ctx) {
				m.transition(ctx, trans.TargetID, trans.Action)
				return true
			}
		}
		currID = node.ParentID
	}

	return false
}

// Transition forces a state change outside the transition table
func (m *Machine[T]) Transition(ctx T, targetID StateID) {
	m.transition(ctx, targetID, nil)
}

// transition performs the state change: exits up to the LCA, action, enters down to target
// A self-transition is a no-op apart from the action
func (m *Machine[T]) transition(ctx T, targetID StateID, action ActionFunc[T]) {
	targetNode, ok := m.nodes[targetID]
	if !ok {
		panic(fmt.Sprintf("FSM: Attempted transition to unknown state ID %d", targetID))
	}

	if m.activeID == targetID {
		if action != nil {
			action(ctx)
		}
		return
	}

	// Find LCA
	lcaIndex := -1
	currentPath := m.activePath
	targetPath := targetNode.Path

	minLen := min(len(currentPath), len(targetPath))
	for i := 0; i < minLen; i++ {
		if currentPath[i] != targetPath[i] {
			break
		}
		lcaIndex = i
	}

	// Exit phase: walk UP from current leaf to LCA (exclusive)
	for i := len(currentPath) - 1; i > lcaIndex; i-- {
		for _, fn := range m.nodes[currentPath[i]].OnExit {
			fn(ctx)
		}
	}

	if action != nil {
		action(ctx)
	}

	// Enter phase: walk DOWN from LCA (exclusive) to target leaf
	for i := lcaIndex + 1; i < len(targetPath); i++ {
		for _, fn := range m.nodes[targetPath[i]].OnEnter {
			fn(ctx)
		}
	}

	m.activeID = targetID
	m.activePath = append(m.activePath[:0], targetPath...)
}

// Reset exits every active state and re-enters the initial state
func (m *Machine[T]) Reset(ctx T) error {
	for i := len(m.activePath) - 1; i >= 0; i-- {
		for _, fn := range m.nodes[m.activePath[i]].OnExit {
			fn(ctx)
		}
	}
	m.activeID = StateNone
	m.activePath = m.activePath[:0]
	return m.Init(ctx, m.initialID)
}

// Current returns the active leaf state
func (m *Machine[T]) Current() StateID {
	return m.activeID
}

// In reports whether id is the active leaf or one of its ancestors
func (m *Machine[T]) In(id StateID) bool {
	for _, p := range m.activePath {
		if p == id {
			return true
		}
	}
	return false
}

// StateName returns the name of the active leaf
func (m *Machine[T]) StateName() string {
	if node, ok := m.nodes[m.activeID]; ok {
		return node.Name
	}
	return ""
}
