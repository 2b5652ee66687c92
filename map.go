package chainmap

import (
	"iter"

	"github.com/pkg/errors"
)

// Map is a hash map built from an array of buckets, each bucket a chain of
// the entries that hash to it. The number of buckets doubles whenever the
// average chain length reaches the configured maximum (4 by default), and
// never shrinks.
//
// Unlike the built-in map, Map can be walked in both directions with an
// Iterator. A Map is not safe for concurrent use.
type Map[K comparable, V any] struct {
	table[K, V]
}

// Pair is a key-value pair used to build maps from literals.
type Pair[K comparable, V any] struct {
	Key   K
	Value V
}

// Returns a new map with the given number of buckets. A capacity below 1
// means DefaultCapacity.
func New[K comparable, V any](capacity int, opts ...Option[K, V]) *Map[K, V] {
	var m Map[K, V]
	m.init(capacity, opts...)

	return &m
}

// FromPairs builds a map holding the given pairs. A later pair overwrites an
// earlier one with the same key.
func FromPairs[K comparable, V any](pairs []Pair[K, V], opts ...Option[K, V]) *Map[K, V] {
	m := New(DefaultCapacity, opts...)
	for _, p := range pairs {
		m.Set(p.Key, p.Value)
	}

	return m
}

// Merge returns a new map with every entry of a, plus the entries of b whose
// keys are missing from a.
func Merge[K comparable, V any](a, b *Map[K, V], opts ...Option[K, V]) *Map[K, V] {
	m := New(CapacityFor(a.Len()+b.Len(), DefaultMaxChainLength), opts...)

	for k, v := range a.All() {
		m.Insert(k, v)
	}

	for k, v := range b.All() {
		m.Insert(k, v)
	}

	return m
}

// Lookup returns a pointer to the value stored under key. The pointer stays
// valid until the next structural change of the map.
func (m *Map[K, V]) Lookup(key K) (*V, bool) {
	return m.lookup(key)
}

// Get returns the value stored under key.
func (m *Map[K, V]) Get(key K) (V, bool) {
	return m.get(key)
}

// At is the read-only accessor: it fails with ErrKeyNotFound on a missing key
// instead of inserting one.
func (m *Map[K, V]) At(key K) (V, error) {
	v, ok := m.get(key)
	if !ok {
		return v, errors.Wrapf(ErrKeyNotFound, "key %v", key)
	}

	return v, nil
}

// Ref returns a pointer to the value stored under key, inserting the zero
// value of V first if the key is missing. The pointer stays valid until the
// next structural change of the map.
func (m *Map[K, V]) Ref(key K) *V {
	return m.ref(key)
}

// Set stores value under key, overwriting any previous value.
func (m *Map[K, V]) Set(key K, value V) {
	*m.ref(key) = value
}

// Insert adds the entry if key is missing. Returns false, leaving the map
// untouched, if key is already present.
func (m *Map[K, V]) Insert(key K, value V) bool {
	return m.insert(key, value)
}

func (m *Map[K, V]) Contains(key K) bool {
	_, pos := m.locate(key)
	return pos >= 0
}

// Find returns an iterator at the entry of key, or End if key is missing.
func (m *Map[K, V]) Find(key K) Iterator[K, V] {
	return m.find(key)
}

// Erase removes key from the map. Returns whether the key was present.
func (m *Map[K, V]) Erase(key K) bool {
	return m.erase(key)
}

func (m *Map[K, V]) Len() int {
	return m.size
}

func (m *Map[K, V]) Empty() bool {
	return m.size == 0
}

// Capacity returns the current number of buckets.
func (m *Map[K, V]) Capacity() int {
	return m.capacity()
}

// Reset removes all entries and keeps the current capacity.
func (m *Map[K, V]) Reset() {
	m.clear()
}

func (m *Map[K, V]) Begin() Iterator[K, V] {
	return m.begin()
}

func (m *Map[K, V]) End() Iterator[K, V] {
	return m.end()
}

func (m *Map[K, V]) CBegin() ConstIterator[K, V] {
	it := m.begin()
	return it.Const()
}

func (m *Map[K, V]) CEnd() ConstIterator[K, V] {
	it := m.end()
	return it.Const()
}

// All yields every entry in iterator order. The map must not be structurally
// changed while ranging over it.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return m.all()
}

func (m *Map[K, V]) Keys() iter.Seq[K] {
	return m.keys()
}

func (m *Map[K, V]) Values() iter.Seq[V] {
	return m.values()
}

// Clone returns a deep copy of the map that shares no storage with it.
func (m *Map[K, V]) Clone() *Map[K, V] {
	var c Map[K, V]
	c.copyFrom(&m.table)

	return &c
}

// CopyFrom replaces the contents of m with a deep copy of other.
func (m *Map[K, V]) CopyFrom(other *Map[K, V]) {
	if m == other {
		return
	}

	m.copyFrom(&other.table)
}

// Move returns a map owning the contents of m. m is left empty with
// DefaultCapacity buckets and stays usable.
func (m *Map[K, V]) Move() *Map[K, V] {
	var c Map[K, V]
	c.moveFrom(&m.table)

	return &c
}

// MoveFrom replaces the contents of m with those of other, leaving other
// empty with DefaultCapacity buckets.
func (m *Map[K, V]) MoveFrom(other *Map[K, V]) {
	m.moveFrom(&other.table)
}
