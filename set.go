package oamap

// Set is a string set built on the same open-addressed table as Map.
// It only stores keys, so every slot carries a zero-size value.
// It shares Map's growth and tombstone behaviour and is not safe for
// concurrent use.
type Set struct {
	t table[struct{}]
}

func NewSet(capacity int, opts ...Option[struct{}]) *Set {
	var s Set
	s.t.init(capacity, opts...)

	return &s
}

// Adds a key to the set. Returns whether the key is new.
func (s *Set) Add(key string) bool {
	return s.t.put(key, struct{}{})
}

func (s *Set) Has(key string) bool {
	return s.t.contains(key)
}

func (s *Set) Delete(key string) bool {
	return s.t.delete(key)
}

func (s *Set) Len() int {
	return s.t.size
}

func (s *Set) Capacity() int {
	return s.t.capacity
}

func (s *Set) Resize(newCapacity int) {
	s.t.resize(newCapacity)
}

func (s *Set) Clear() {
	s.t.clear()
}

// Returns the keys in slot order.
func (s *Set) Keys() []string {
	keys := make([]string, 0, s.t.size)
	for k := range s.t.all() {
		keys = append(keys, k)
	}

	return keys
}

func (s *Set) Stats() Stats {
	return s.t.stats()
}
