package fsm

import (
	"fmt"
	"log/slog"
	"reflect"
	"strings"

	"github.com/enetx/g"
)

// RegisterState stores s as the singleton for its concrete type, replacing any
// earlier instance of that type. It does not change the current or previous state.
// Nil states, typed or not, are ignored.
func (m *Machine[C]) RegisterState(s State[C]) {
	if isNil(s) {
		return
	}

	m.register(s)
	m.logger.Debug("fsm: state registered", slog.String("state", string(stateName(s))))
}

// States returns the registered state instances in no particular order.
func (m *Machine[C]) States() g.Slice[State[C]] {
	states := make(g.Slice[State[C]], 0, len(m.registry))
	for _, s := range m.registry {
		states.Push(s)
	}

	return states
}

func (m *Machine[C]) register(s State[C]) {
	m.registry[reflect.TypeOf(s)] = s
}

// RegisterFactory sets the constructor ChangeStateAuto uses the first time S is requested.
// Without a factory, ChangeStateAuto builds S from its zero value.
func RegisterFactory[S State[C], C any](m *Machine[C], factory func() (S, error)) {
	m.factories[reflect.TypeFor[S]()] = func() (State[C], error) {
		s, err := factory()
		if err != nil {
			return nil, err
		}

		if isNil(s) {
			return nil, ErrNilState
		}

		return s, nil
	}
}

// Lookup returns the registered instance of S, if any.
func Lookup[S State[C], C any](m *Machine[C]) g.Option[S] {
	if s, ok := m.registry[reflect.TypeFor[S]()].(S); ok {
		return g.Some(s)
	}

	return g.None[S]()
}

// ChangeStateTo switches to the registered instance of S.
// It fails with *ErrUnregisteredState, leaving the machine untouched, if S was never registered.
func ChangeStateTo[S State[C], C any](m *Machine[C]) (S, error) {
	found := Lookup[S](m)
	if found.IsNone() {
		var zero S

		name := typeName(reflect.TypeFor[S]())
		m.logger.Warn("fsm: state not registered", slog.String("state", string(name)))

		return zero, &ErrUnregisteredState{State: name}
	}

	s := found.Some()
	_, err := m.ChangeState(s)

	return s, err
}

// ChangeStateAuto switches to the singleton instance of T, creating and registering
// it first if needed. The instance comes from the factory registered for *T, or is
// new(T) when there is none:
//
//	idle, err := fsm.ChangeStateAuto[Idle](m)
func ChangeStateAuto[T any, C any, S interface {
	*T
	State[C]
}](m *Machine[C]) (S, error) {
	s, err := lookupOrCreate[T, C, S](m)
	if err != nil {
		return s, err
	}

	_, err = m.ChangeState(s)

	return s, err
}

func lookupOrCreate[T any, C any, S interface {
	*T
	State[C]
}](m *Machine[C]) (S, error) {
	if found := Lookup[S](m); found.IsSome() {
		return found.Some(), nil
	}

	key := reflect.TypeFor[S]()

	factory, ok := m.factories[key]
	if !ok {
		s := S(new(T))
		m.RegisterState(s)

		return s, nil
	}

	built, err := factory()
	if err != nil {
		m.logger.Warn("fsm: state construction failed",
			slog.String("state", string(typeName(key))),
			slog.Any("error", err),
		)

		return nil, &ErrConstruction{State: typeName(key), Err: err}
	}

	s := built.(S)
	m.RegisterState(s)

	return s, nil
}

// stateName returns a readable name for s, preferring its String method.
func stateName[C any](s State[C]) g.String {
	if s == nil {
		return "<none>"
	}

	if str, ok := s.(fmt.Stringer); ok {
		return g.String(str.String())
	}

	return typeName(reflect.TypeOf(s))
}

func typeName(t reflect.Type) g.String {
	return g.String(strings.TrimPrefix(t.String(), "*"))
}

func isNil(v any) bool {
	if v == nil {
		return true
	}

	switch rv := reflect.ValueOf(v); rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return rv.IsNil()
	default:
		return false
	}
}
