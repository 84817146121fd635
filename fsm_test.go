package fsm_test

import (
	"slices"
	"testing"
	"time"

	. "github.com/enetx/fsm/v2"
)

func assertEqual[T comparable](t *testing.T, got, want T) {
	t.Helper()
	if got != want {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func assertState(t *testing.T, got, want State[world]) {
	t.Helper()
	if got != want {
		t.Fatalf("expected state %T(%p), got %T(%p)", want, want, got, got)
	}
}

func assertNoError(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func assertError(t *testing.T, err error) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected error, got nil")
	}
}

func assertTrue(t *testing.T, cond bool) {
	t.Helper()
	if !cond {
		t.Fatalf("expected true, got false")
	}
}

func assertFalse(t *testing.T, cond bool) {
	t.Helper()
	if cond {
		t.Fatalf("expected false, got true")
	}
}

func assertLog(t *testing.T, got []string, want ...string) {
	t.Helper()
	if !slices.Equal(got, want) {
		t.Fatalf("expected log %v, got %v", want, got)
	}
}

// world is the shared context of the test states. Log collects lifecycle calls
// in the order the machine made them.
type world struct {
	Score int
	Log   []string
}

func (w *world) record(name, hook string) { w.Log = append(w.Log, name+"."+hook) }

// probe records every lifecycle call and lets a test inject behavior.
type probe struct {
	Base[world]
	name string

	inits, begins, reasons, updates, ends int
	lastDelta                             time.Duration

	onReason  func(m *Machine[world]) error
	onBegin   func(m *Machine[world]) error
	beginErr  error
	endErr    error
	updateErr error
}

func (p *probe) setup(name string, m *Machine[world], ctx *world) {
	p.name = name
	p.inits++
	p.Base.Initialize(m, ctx)
	ctx.record(name, "Initialize")
}

func (p *probe) Begin() error {
	p.begins++
	p.Context().record(p.name, "Begin")

	if p.onBegin != nil {
		if err := p.onBegin(p.Machine()); err != nil {
			return err
		}
	}

	return p.beginErr
}

func (p *probe) Reason() error {
	p.reasons++
	p.Context().record(p.name, "Reason")

	if p.onReason != nil {
		return p.onReason(p.Machine())
	}

	return nil
}

func (p *probe) Update(dt time.Duration) error {
	p.updates++
	p.lastDelta = dt
	p.Context().record(p.name, "Update")

	return p.updateErr
}

func (p *probe) End() error {
	p.ends++
	p.Context().record(p.name, "End")

	return p.endErr
}

type idle struct{ probe }

func (s *idle) Initialize(m *Machine[world], ctx *world) { s.setup("idle", m, ctx) }

type chasing struct {
	probe
	speed int
}

func (s *chasing) Initialize(m *Machine[world], ctx *world) { s.setup("chasing", m, ctx) }

type attacking struct{ probe }

func (s *attacking) Initialize(m *Machine[world], ctx *world) { s.setup("attacking", m, ctx) }

func newMachine() *Machine[world] { return New(world{}) }

// resetLog drops the lifecycle calls recorded so far.
func resetLog(m *Machine[world]) { m.Context().Log = nil }
