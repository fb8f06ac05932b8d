package fsm

import (
	"strings"
	"testing"
)

const (
	stIdle StateID = iota + 2
	stActive
	stRunA
	stRunB
)

const (
	evGo Event = iota + 1
	evSwap
	evStop
	evBlocked
)

type trace struct {
	log     []string
	allowed bool
}

func (tr *trace) rec(s string) ActionFunc[*trace] {
	return func(ctx *trace) { ctx.log = append(ctx.log, s) }
}

func buildMachine(t *testing.T) (*Machine[*trace], *trace) {
	t.Helper()
	m := NewMachine[*trace]()
	tr := &trace{}

	m.AddState(StateRoot, "Root", StateNone)
	m.AddState(stIdle, "Idle", StateRoot)
	m.AddState(stActive, "Active", StateRoot)
	m.AddState(stRunA, "RunA", stActive)
	m.AddState(stRunB, "RunB", stActive)

	for id, name := range map[StateID]string{stIdle: "idle", stActive: "active", stRunA: "a", stRunB: "b"} {
		m.OnEnter(id, tr.rec("+"+name))
		m.OnExit(id, tr.rec("-"+name))
	}

	m.AddTransition(stIdle, Transition[*trace]{TargetID: stRunA, Event: evGo, Action: tr.rec("go")})
	m.AddTransition(stRunA, Transition[*trace]{TargetID: stRunB, Event: evSwap})
	m.AddTransition(stRunB, Transition[*trace]{TargetID: stRunA, Event: evSwap})
	// Declared on the parent, reachable from both children
	m.AddTransition(stActive, Transition[*trace]{TargetID: stIdle, Event: evStop})
	m.AddTransition(stIdle, Transition[*trace]{
		TargetID: stRunB,
		Event:    evBlocked,
		Guard:    func(ctx *trace) bool { return ctx.allowed },
	})

	if err := m.CompilePaths(); err != nil {
		t.Fatalf("CompilePaths: %v", err)
	}
	if err := m.Init(tr, stIdle); err != nil {
		t.Fatalf("Init: %v", err)
	}
	return m, tr
}

func TestMachineInitEntersPath(t *testing.T) {
	m, tr := buildMachine(t)
	if m.Current() != stIdle || m.StateName() != "Idle" {
		t.Errorf("Expected Idle, got %s", m.StateName())
	}
	if got := strings.Join(tr.log, " "); got != "+idle" {
		t.Errorf("Expected '+idle', got '%s'", got)
	}
}

func TestMachineTransitionOrder(t *testing.T) {
	m, tr := buildMachine(t)
	tr.log = nil

	if !m.HandleEvent(tr, evGo) {
		t.Fatal("Expected evGo to be handled")
	}
	if got := strings.Join(tr.log, " "); got != "-idle go +active +a" {
		t.Errorf("Unexpected hook order: %s", got)
	}

	// Sibling swap keeps the shared parent entered
	tr.log = nil
	m.HandleEvent(tr, evSwap)
	if got := strings.Join(tr.log, " "); got != "-a +b" {
		t.Errorf("Expected '-a +b', got '%s'", got)
	}
	if !m.In(stActive) || m.Current() != stRunB {
		t.Error("Expected RunB inside Active")
	}
}

func TestMachineBubblesToParent(t *testing.T) {
	m, tr := buildMachine(t)
	m.HandleEvent(tr, evGo)
	tr.log = nil

	if !m.HandleEvent(tr, evStop) {
		t.Fatal("Expected parent transition to fire from child")
	}
	if got := strings.Join(tr.log, " "); got != "-a -active +idle" {
		t.Errorf("Unexpected hook order: %s", got)
	}
}

func TestMachineUnhandledEvent(t *testing.T) {
	m, tr := buildMachine(t)
	if m.HandleEvent(tr, evSwap) {
		t.Error("Expected evSwap ignored in Idle")
	}
	if m.Current() != stIdle {
		t.Errorf("Expected Idle, got %s", m.StateName())
	}
}

func TestMachineGuard(t *testing.T) {
	m, tr := buildMachine(t)
	if m.HandleEvent(tr, evBlocked) {
		t.Error("Expected guard to block")
	}
	tr.allowed = true
	if !m.HandleEvent(tr, evBlocked) || m.Current() != stRunB {
		t.Error("Expected guard to allow transition to RunB")
	}
}

func TestMachineSelfTransitionRunsOnlyAction(t *testing.T) {
	m, tr := buildMachine(t)
	tr.log = nil
	m.transition(tr, stIdle, tr.rec("again"))
	if got := strings.Join(tr.log, " "); got != "again" {
		t.Errorf("Expected only the action, got '%s'", got)
	}
}

func TestMachineReset(t *testing.T) {
	m, tr := buildMachine(t)
	m.HandleEvent(tr, evGo)
	tr.log = nil

	if err := m.Reset(tr); err != nil {
		t.Fatalf("Reset: %v", err)
	}
	if got := strings.Join(tr.log, " "); got != "-a -active +idle" {
		t.Errorf("Unexpected reset hooks: %s", got)
	}
}

func TestMachineUnknownTargetPanics(t *testing.T) {
	m, tr := buildMachine(t)
	defer func() {
		if recover() == nil {
			t.Error("Expected panic on unknown state")
		}
	}()
	m.Transition(tr, StateID(99))
}

func TestCompilePathsMissingParent(t *testing.T) {
	m := NewMachine[*trace]()
	m.AddState(StateRoot, "Root", StateNone)
	m.AddState(5, "Orphan", 42)
	if err := m.CompilePaths(); err == nil {
		t.Error("Expected error for missing parent")
	}
}
