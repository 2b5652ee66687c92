package chainmap

import (
	"hash/maphash"

	"go.uber.org/zap"
)

type table[K comparable, V any] struct {
	buckets []bucket[K, V]
	size    int

	// Average chain length at which the table doubles.
	maxChain int

	// Bumped by every structural change, iterators compare against it.
	generation uint64

	growths        int
	splitAnomalies int

	hashFunc   HashFunc[K]
	cloneValue func(V) V
	logger     *zap.Logger

	emptyV V
}

func (t *table[K, V]) init(capacity int, opts ...Option[K, V]) {
	if capacity < 1 {
		capacity = DefaultCapacity
	}

	t.buckets = make([]bucket[K, V], capacity)
	t.size = 0
	t.maxChain = DefaultMaxChainLength
	t.logger = zap.NewNop()

	for _, opt := range opts {
		opt(t)
	}

	if t.hashFunc == nil {
		t.hashFunc = MakeDefaultHashFunc[K](maphash.MakeSeed())
	}
}

func (t *table[K, V]) capacity() int {
	return len(t.buckets)
}

func (t *table[K, V]) index(key K) int {
	return bucketIndex(t.hashFunc(key), len(t.buckets))
}

// locate returns the bucket a key maps to and the key's position in it, or
// -1 as the position if the key is absent.
func (t *table[K, V]) locate(key K) (int, int) {
	bi := t.index(key)

	return bi, t.buckets[bi].find(key)
}

func (t *table[K, V]) lookup(key K) (*V, bool) {
	bi, pos := t.locate(key)
	if pos < 0 {
		return nil, false
	}

	return &t.buckets[bi].entries[pos].value, true
}

func (t *table[K, V]) get(key K) (V, bool) {
	bi, pos := t.locate(key)
	if pos < 0 {
		return t.emptyV, false
	}

	return t.buckets[bi].entries[pos].value, true
}

// ref returns a pointer to the value stored under key, inserting the zero
// value first if the key is absent.
func (t *table[K, V]) ref(key K) *V {
	bi, pos := t.locate(key)
	if pos >= 0 {
		return &t.buckets[bi].entries[pos].value
	}

	t.buckets[bi].push(key, t.emptyV)
	t.size++
	t.generation++

	if t.maybeGrow() {
		// The new entry may have been moved by the split.
		bi, pos = t.locate(key)
	} else {
		pos = t.buckets[bi].len() - 1
	}

	return &t.buckets[bi].entries[pos].value
}

// insert adds the entry unless the key is already present.
func (t *table[K, V]) insert(key K, value V) bool {
	bi, pos := t.locate(key)
	if pos >= 0 {
		return false
	}

	t.buckets[bi].push(key, value)
	t.size++
	t.generation++
	t.maybeGrow()

	return true
}

func (t *table[K, V]) erase(key K) bool {
	bi, pos := t.locate(key)
	if pos < 0 {
		return false
	}

	t.buckets[bi].removeAt(pos)
	t.size--
	t.generation++

	return true
}

// clear drops every entry and keeps the current capacity.
func (t *table[K, V]) clear() {
	for i := range t.buckets {
		t.buckets[i] = bucket[K, V]{}
	}

	t.size = 0
	t.generation++
}

// copyFrom makes t a deep copy of src. The copy uses the hash function and
// settings of src, since bucket placement depends on them.
func (t *table[K, V]) copyFrom(src *table[K, V]) {
	buckets := make([]bucket[K, V], len(src.buckets))
	for i := range src.buckets {
		buckets[i] = src.buckets[i].clone(src.cloneValue)
	}

	t.buckets = buckets
	t.size = src.size
	t.maxChain = src.maxChain
	t.hashFunc = src.hashFunc
	t.cloneValue = src.cloneValue
	t.logger = src.logger
	t.growths = src.growths
	t.splitAnomalies = src.splitAnomalies
	t.generation++
}

// moveFrom takes over the storage of src and leaves src as an empty table of
// DefaultCapacity buckets.
func (t *table[K, V]) moveFrom(src *table[K, V]) {
	if t == src {
		return
	}

	t.buckets = src.buckets
	t.size = src.size
	t.maxChain = src.maxChain
	t.hashFunc = src.hashFunc
	t.cloneValue = src.cloneValue
	t.logger = src.logger
	t.growths = src.growths
	t.splitAnomalies = src.splitAnomalies
	t.generation++

	src.buckets = make([]bucket[K, V], DefaultCapacity)
	src.size = 0
	src.growths = 0
	src.splitAnomalies = 0
	src.generation++
}
