package chainmap

import "iter"

// Set is a set of keys backed by a Map with empty values. It grows and
// iterates exactly like Map.
type Set[K comparable] struct {
	m Map[K, struct{}]
}

func NewSet[K comparable](capacity int, opts ...Option[K, struct{}]) *Set[K] {
	var s Set[K]
	s.m.init(capacity, opts...)

	return &s
}

// Add puts a key in the set. Returns whether the key is new.
func (s *Set[K]) Add(key K) bool {
	return s.m.insert(key, struct{}{})
}

func (s *Set[K]) Has(key K) bool {
	return s.m.Contains(key)
}

// Delete removes a key from the set. Returns whether the key was present.
func (s *Set[K]) Delete(key K) bool {
	return s.m.erase(key)
}

func (s *Set[K]) Len() int {
	return s.m.size
}

func (s *Set[K]) Reset() {
	s.m.clear()
}

func (s *Set[K]) All() iter.Seq[K] {
	return s.m.keys()
}

func (s *Set[K]) Clone() *Set[K] {
	var c Set[K]
	c.m.copyFrom(&s.m.table)

	return &c
}

func (s *Set[K]) Stats() Stats {
	return s.m.Stats()
}
