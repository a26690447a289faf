package oamap

import "iter"

// Map is a string-keyed hash map backed by an open-addressed table.
//
// Collisions are resolved by quadratic probing over a prime number of
// slots, and deletions leave tombstones behind so probe chains stay
// intact. The table doubles (to the next prime) as puts push the load
// factor past 0.5; tombstones are only dropped by a resize or Clear.
//
// Map is not safe for concurrent use.
type Map[V any] struct {
	table[V]
}

// Entry is a live key/value pair.
type Entry[V any] struct {
	Key   string
	Value V
}

// Returns a new map with the capacity rounded up to the next odd prime.
func New[V any](capacity int, opts ...Option[V]) *Map[V] {
	var m Map[V]
	m.init(capacity, opts...)

	return &m
}

// Returns the value stored for the key.
func (m *Map[V]) Get(key string) (V, bool) {
	return m.get(key)
}

func (m *Map[V]) Contains(key string) bool {
	return m.contains(key)
}

// Puts a key/value pair in the map, growing the table first if needed.
// Returns whether a new entry was created rather than an existing one updated.
func (m *Map[V]) Put(key string, value V) bool {
	return m.put(key, value)
}

// Tombstones the key. Returns false if it was not present.
func (m *Map[V]) Delete(key string) bool {
	return m.delete(key)
}

// Rehashes the live entries into a table of at least newCapacity slots.
// Requests below the current size are ignored; check Capacity afterwards
// if that matters.
func (m *Map[V]) Resize(newCapacity int) {
	m.resize(newCapacity)
}

// Drops every entry and tombstone, keeping the capacity.
func (m *Map[V]) Clear() {
	m.clear()
}

func (m *Map[V]) Size() int {
	return m.size
}

func (m *Map[V]) Capacity() int {
	return m.capacity
}

func (m *Map[V]) LoadFactor() float64 {
	return m.loadFactor()
}

// Returns the number of empty or tombstoned slots.
func (m *Map[V]) AvailableSlots() int {
	return m.availableSlots()
}

// Returns the live entries in slot order.
func (m *Map[V]) Entries() []Entry[V] {
	entries := make([]Entry[V], 0, m.size)
	for k, v := range m.all() {
		entries = append(entries, Entry[V]{Key: k, Value: v})
	}

	return entries
}

// All iterates over the live entries in slot order. The map must not be
// modified during iteration.
func (m *Map[V]) All() iter.Seq2[string, V] {
	return m.all()
}

func (m *Map[V]) Stats() Stats {
	return m.stats()
}
