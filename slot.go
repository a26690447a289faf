package oamap

import "fmt"

type slotState uint8

const (
	// slotEmpty must stay the zero value: a freshly allocated slice is all empty.
	slotEmpty slotState = iota
	// slotTombstone is skipped by lookups and reused by inserts.
	slotTombstone
	slotOccupied
)

// slot is a single cell of the table. key and value are only meaningful
// while the slot is occupied; a tombstone drops both.
type slot[V any] struct {
	state slotState
	key   string
	value V
}

// available reports whether an insert may claim the slot.
func (s *slot[V]) available() bool {
	return s.state != slotOccupied
}

func (s *slot[V]) matches(key string) bool {
	return s.state == slotOccupied && s.key == key
}

func (s *slot[V]) String() string {
	switch s.state {
	case slotOccupied:
		return fmt.Sprintf("K: %s V: %v TS: false", s.key, s.value)
	case slotTombstone:
		return "TS: true"
	default:
		return "None"
	}
}
