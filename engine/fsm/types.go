package fsm

// StateID is a unique identifier for a node
type StateID int

const (
	StateNone StateID = 0
	StateRoot StateID = 1
)

// Event identifies an external trigger; 0 is reserved
type Event int

// Machine is a generic hierarchical finite state machine
// T is the context type passed to actions and guards (e.g., *game.Game)
type Machine[T any] struct {
	// Graph data, immutable after CompilePaths
	nodes map[StateID]*Node[T]

	initialID StateID

	// Runtime state
	activeID   StateID   // The current leaf node
	activePath []StateID // Stack of active states (Root -> Child -> Leaf)
}

// Node represents a state in the hierarchy
type Node[T any] struct {
	ID       StateID
	Name     string
	ParentID StateID

	// Pre-calculated path from Root to this node for LCA lookup
	Path []StateID

	// Lifecycle actions
	OnEnter []ActionFunc[T]
	OnExit  []ActionFunc[T]

	// Transitions in evaluation order
	Transitions []Transition[T]
}

// Transition defines a link between states
type Transition[T any] struct {
	TargetID StateID
	Event    Event
	Guard    GuardFunc[T]  // nil = always true
	Action   ActionFunc[T] // runs after exits and before enters; nil = none
}

// GuardFunc returns true if the transition should occur
type GuardFunc[T any] func(ctx T) bool

// ActionFunc executes a side effect
type ActionFunc[T any] func(ctx T)
