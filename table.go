package oamap

import (
	"iter"
	"strconv"
	"strings"
)

// GrowthPolicy decides when a put doubles the table.
type GrowthPolicy uint8

const (
	// GrowBeforeOverflow grows when an insert would push the load factor
	// past 0.5, so the load factor never exceeds 0.5 once a put returns.
	// Updating an existing key never grows the table.
	GrowBeforeOverflow GrowthPolicy = iota
	// GrowWhenOverloaded grows only when the load factor measured before
	// the insert already exceeds 0.5. A put may leave the table slightly
	// above 0.5 until the next put.
	GrowWhenOverloaded
)

// UpdatePolicy decides how far a put looks for an existing key.
type UpdatePolicy uint8

const (
	// UpdateFirstAvailable claims the first empty or tombstoned slot on the
	// probe path. A live copy of the key sitting behind a tombstone is not
	// seen, so deleting a colliding key and re-putting a later one can leave
	// two live entries for the same key. Get returns the one nearer the
	// start of the probe path.
	UpdateFirstAvailable UpdatePolicy = iota
	// UpdateFullChain scans up to the first empty slot for a live copy of
	// the key before claiming the first available slot. Keys stay unique.
	UpdateFullChain
)

type table[V any] struct {
	slots []slot[V]

	capacity int
	size     int

	hashFunc HashFunc
	growth   GrowthPolicy
	update   UpdatePolicy
	metrics  *tableMetrics

	emptyV V
}

type Option[V any] func(t *table[V])

// Override default hash function.
func WithHashFunc[V any](f HashFunc) Option[V] {
	return func(t *table[V]) {
		t.hashFunc = f
	}
}

func WithGrowthPolicy[V any](p GrowthPolicy) Option[V] {
	return func(t *table[V]) {
		t.growth = p
	}
}

func WithUpdatePolicy[V any](p UpdatePolicy) Option[V] {
	return func(t *table[V]) {
		t.update = p
	}
}

// Export probe and resize metrics to the default Prometheus registry,
// labelled with the given name.
func WithMetrics[V any](name string) Option[V] {
	return func(t *table[V]) {
		t.metrics = newTableMetrics(name)
	}
}

func (t *table[V]) init(capacity int, opts ...Option[V]) {
	for _, opt := range opts {
		opt(t)
	}

	if t.hashFunc == nil {
		t.hashFunc = MakeDefaultHashFunc()
	}

	t.capacity = NextPrime(capacity)
	t.slots = make([]slot[V], t.capacity)
	t.size = 0
}

func (t *table[V]) startIndex(key string) uint64 {
	return t.hashFunc(key) % uint64(t.capacity)
}

// probeIndex returns the j-th slot of the quadratic probe sequence.
// The sequence has period capacity, so callers never probe more than
// capacity slots.
func (t *table[V]) probeIndex(start uint64, j int) int {
	jj := uint64(j) * uint64(j)
	return int((start + jj) % uint64(t.capacity))
}

// find returns the index of the live slot holding key, or -1.
// It stops at the first empty slot.
func (t *table[V]) find(key string) (int, int) {
	start := t.startIndex(key)

	for j := 0; j < t.capacity; j++ {
		idx := t.probeIndex(start, j)
		s := &t.slots[idx]

		if s.state == slotEmpty {
			return -1, j + 1
		}

		if s.matches(key) {
			return idx, j + 1
		}
	}

	return -1, t.capacity
}

func (t *table[V]) get(key string) (V, bool) {
	idx, probes := t.find(key)
	t.metrics.observeGet(probes, idx >= 0)

	if idx < 0 {
		return t.emptyV, false
	}

	return t.slots[idx].value, true
}

func (t *table[V]) contains(key string) bool {
	idx, _ := t.find(key)
	return idx >= 0
}

// overloaded reports whether the load factor already exceeds 0.5.
func (t *table[V]) overloaded() bool {
	return t.size*2 > t.capacity
}

// roomForInsert reports whether one more entry keeps the load factor <= 0.5.
func (t *table[V]) roomForInsert() bool {
	return (t.size+1)*2 <= t.capacity
}

func (t *table[V]) grow() {
	t.metrics.observeResize(true)
	t.rehash(t.capacity * 2)
}

// put inserts or updates key and reports whether a new entry was created.
func (t *table[V]) put(key string, value V) bool {
	if t.growth == GrowWhenOverloaded && t.overloaded() {
		t.grow()
	}

	for {
		canInsert := t.growth == GrowWhenOverloaded || t.roomForInsert()

		inserted, probes, ok := t.tryPut(key, value, canInsert)
		if ok {
			t.metrics.observePut(probes, inserted)
			return inserted
		}

		// Either the insert would push the load factor past 0.5, or every
		// reachable slot is live. A bigger table has room for both.
		t.grow()
	}
}

// tryPut walks the probe path of key. Updates always happen in place;
// an insert only happens when canInsert is set, otherwise tryPut leaves
// the table untouched and reports !ok.
func (t *table[V]) tryPut(key string, value V, canInsert bool) (bool, int, bool) {
	var (
		start  = t.startIndex(key)
		target = -1
		probes = 0
	)

	for j := 0; j < t.capacity; j++ {
		idx := t.probeIndex(start, j)
		s := &t.slots[idx]
		probes = j + 1

		if s.available() {
			if t.update == UpdateFirstAvailable {
				if !canInsert {
					return false, probes, false
				}

				t.occupy(idx, key, value)
				return true, probes, true
			}

			if target < 0 {
				target = idx
			}

			if s.state == slotEmpty {
				break
			}

			continue
		}

		if s.key == key {
			s.value = value
			return false, probes, true
		}
	}

	if target < 0 || !canInsert {
		return false, probes, false
	}

	t.occupy(target, key, value)

	return true, probes, true
}

func (t *table[V]) occupy(idx int, key string, value V) {
	t.slots[idx] = slot[V]{state: slotOccupied, key: key, value: value}
	t.size++
}

func (t *table[V]) delete(key string) bool {
	idx, probes := t.find(key)
	t.metrics.observeDelete(probes, idx >= 0)

	if idx < 0 {
		return false
	}

	// Keep the slot passable so keys probed past it stay reachable.
	t.slots[idx] = slot[V]{state: slotTombstone}
	t.size--

	return true
}

func (t *table[V]) resize(newCapacity int) {
	if newCapacity < t.size {
		return
	}

	t.metrics.observeResize(false)
	t.rehash(newCapacity)
}

// rehash swaps in an empty slot array and re-puts every live entry in
// old index order. Tombstones are dropped.
func (t *table[V]) rehash(newCapacity int) {
	old := t.slots

	t.capacity = NextPrime(newCapacity)
	t.slots = make([]slot[V], t.capacity)
	t.size = 0

	for i := range old {
		if old[i].state == slotOccupied {
			t.put(old[i].key, old[i].value)
		}
	}
}

func (t *table[V]) clear() {
	t.slots = make([]slot[V], t.capacity)
	t.size = 0
}

func (t *table[V]) loadFactor() float64 {
	return float64(t.size) / float64(t.capacity)
}

func (t *table[V]) availableSlots() int {
	n := 0
	for i := range t.slots {
		if t.slots[i].available() {
			n++
		}
	}

	return n
}

func (t *table[V]) tombstones() int {
	n := 0
	for i := range t.slots {
		if t.slots[i].state == slotTombstone {
			n++
		}
	}

	return n
}

func (t *table[V]) all() iter.Seq2[string, V] {
	return func(yield func(string, V) bool) {
		for i := range t.slots {
			s := &t.slots[i]
			if s.state != slotOccupied {
				continue
			}

			if !yield(s.key, s.value) {
				return
			}
		}
	}
}

func (t *table[V]) stats() Stats {
	tombstones := t.tombstones()

	return Stats{
		Size:           t.size,
		Capacity:       t.capacity,
		Tombstones:     tombstones,
		AvailableSlots: t.capacity - t.size,
		LoadFactor:     t.loadFactor(),
	}
}

func (t *table[V]) String() string {
	var sb strings.Builder
	for i := range t.slots {
		sb.WriteString(strconv.Itoa(i))
		sb.WriteString(": ")
		sb.WriteString(t.slots[i].String())
		sb.WriteByte('\n')
	}

	return sb.String()
}
