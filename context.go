package fsm

import "github.com/enetx/g"

// Blackboard is a ready-made context for hosts that have no context struct of their own.
// Data is for long-lived values (e.g. target ID, settings).
// Meta is for ephemeral values (e.g. timers, counters).
// Both maps are safe for concurrent use.
type Blackboard struct {
	Data *g.MapSafe[g.String, any]
	Meta *g.MapSafe[g.String, any]
}

// NewBlackboard returns an empty Blackboard.
func NewBlackboard() Blackboard {
	return Blackboard{
		Data: g.NewMapSafe[g.String, any](),
		Meta: g.NewMapSafe[g.String, any](),
	}
}
