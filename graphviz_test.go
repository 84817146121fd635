package fsm_test

import (
	"strings"
	"testing"

	. "github.com/enetx/fsm/v2"
)

func TestToDOT(t *testing.T) {
	m := newMachine()

	_, err := ChangeStateAuto[idle](m)
	assertNoError(t, err)
	_, err = ChangeStateAuto[attacking](m)
	assertNoError(t, err)
	_, err = ChangeStateAuto[chasing](m)
	assertNoError(t, err)

	dot := m.ToDOT()

	assertTrue(t, strings.HasPrefix(string(dot), "digraph FSM {"))
	assertTrue(t, dot.Contains(`"fsm_test.chasing" [label="fsm_test.chasing", fillcolor="#90ee90", shape=doublecircle];`))
	assertTrue(t, dot.Contains(`"fsm_test.attacking" [label="fsm_test.attacking", fillcolor="#d3d3d3"];`))
	assertTrue(t, dot.Contains(`"fsm_test.idle" [label="fsm_test.idle"];`))
	assertTrue(t, dot.Contains(`"fsm_test.attacking" -> "fsm_test.chasing"`))

	// Nodes are sorted by name.
	assertTrue(t, strings.Index(string(dot), "fsm_test.attacking") < strings.Index(string(dot), "fsm_test.idle"))
}

func TestToDOT_NoLastTransition(t *testing.T) {
	m := newMachine()
	m.RegisterState(&idle{})

	dot := m.ToDOT()
	assertTrue(t, dot.Contains(`"fsm_test.idle" [label="fsm_test.idle"];`))
	assertFalse(t, dot.Contains(" -> "))
}
