package fsm

import (
	"time"

	"github.com/enetx/g"
)

// Sync wraps the machine for use from several goroutines.
// The returned SyncMachine must be the only way the host reaches m afterwards.
func (m *Machine[C]) Sync() *SyncMachine[C] { return &SyncMachine[C]{m: m} }

// RegisterState is the thread-safe version of Machine.RegisterState.
func (sm *SyncMachine[C]) RegisterState(s State[C]) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.m.RegisterState(s)
}

// ChangeState is the thread-safe version of Machine.ChangeState.
// The whole End/Initialize/Begin sequence runs under the lock.
func (sm *SyncMachine[C]) ChangeState(s State[C]) (State[C], error) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	return sm.m.ChangeState(s)
}

// Update is the thread-safe version of Machine.Update.
// Ticks from different goroutines are serialized.
func (sm *SyncMachine[C]) Update(dt time.Duration) error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	return sm.m.Update(dt)
}

// Do runs fn with exclusive access to the inner machine. Use it for the generic
// entry points:
//
//	err := sm.Do(func(m *fsm.Machine[World]) error {
//		_, err := fsm.ChangeStateAuto[Idle](m)
//		return err
//	})
func (sm *SyncMachine[C]) Do(fn func(m *Machine[C]) error) error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	return fn(sm.m)
}

// Current is the thread-safe version of Machine.Current.
func (sm *SyncMachine[C]) Current() State[C] {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	return sm.m.Current()
}

// Previous is the thread-safe version of Machine.Previous.
func (sm *SyncMachine[C]) Previous() State[C] {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	return sm.m.Previous()
}

// Context returns the shared context.
// WARNING: the pointer escapes the lock. Mutate it only from state callbacks or inside Do.
func (sm *SyncMachine[C]) Context() *C {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	return sm.m.Context()
}

// States is the thread-safe version of Machine.States.
func (sm *SyncMachine[C]) States() g.Slice[State[C]] {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	return sm.m.States()
}

// ToDOT is the thread-safe version of Machine.ToDOT.
func (sm *SyncMachine[C]) ToDOT() g.String {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	return sm.m.ToDOT()
}
