package chainmap

import "iter"

// Iterator is a bidirectional cursor over the entries of a map. It walks the
// buckets in index order and the entries of each bucket in storage order.
//
// Any structural change of the map (a new key, an erased key, growth, Reset,
// or copying/moving into the map) invalidates every iterator obtained before
// it. Using an invalidated iterator panics with ErrIteratorInvalidated.
// Changing a value through an iterator or through Ref on an existing key is
// not a structural change.
type Iterator[K comparable, V any] struct {
	t *table[K, V]

	// bucket == len(t.buckets) marks the end position, pos is 0 there.
	bucket int
	pos    int

	// First and last non-empty bucket, computed on first use.
	first, last int
	bounded     bool

	generation uint64
}

func (t *table[K, V]) iterAt(bucket, pos int) Iterator[K, V] {
	return Iterator[K, V]{
		t:          t,
		bucket:     bucket,
		pos:        pos,
		generation: t.generation,
	}
}

func (t *table[K, V]) begin() Iterator[K, V] {
	for i := range t.buckets {
		if t.buckets[i].len() > 0 {
			return t.iterAt(i, 0)
		}
	}

	return t.end()
}

func (t *table[K, V]) end() Iterator[K, V] {
	return t.iterAt(len(t.buckets), 0)
}

func (t *table[K, V]) find(key K) Iterator[K, V] {
	bi, pos := t.locate(key)
	if pos < 0 {
		return t.end()
	}

	return t.iterAt(bi, pos)
}

func (it *Iterator[K, V]) check() {
	if it.t == nil || it.generation != it.t.generation {
		panic(ErrIteratorInvalidated)
	}
}

func (it *Iterator[K, V]) bounds() {
	if it.bounded {
		return
	}

	it.first, it.last = -1, -1
	for i := range it.t.buckets {
		if it.t.buckets[i].len() > 0 {
			if it.first < 0 {
				it.first = i
			}
			it.last = i
		}
	}

	it.bounded = true
}

func (it *Iterator[K, V]) toEnd() {
	it.bucket = len(it.t.buckets)
	it.pos = 0
}

// AtEnd reports whether the iterator is at the end position.
func (it *Iterator[K, V]) AtEnd() bool {
	it.check()

	return it.bucket >= len(it.t.buckets)
}

// Next moves to the following entry, or to the end position after the last
// one. Panics if the iterator already is at the end.
func (it *Iterator[K, V]) Next() {
	if it.AtEnd() {
		panic(ErrIteratorOutOfRange)
	}

	if it.pos+1 < it.t.buckets[it.bucket].len() {
		it.pos++
		return
	}

	it.bounds()
	for bi := it.bucket + 1; bi <= it.last; bi++ {
		if it.t.buckets[bi].len() > 0 {
			it.bucket, it.pos = bi, 0
			return
		}
	}

	it.toEnd()
}

// Prev moves to the preceding entry. Prev at the end position moves to the
// last entry. Panics if there is no preceding entry.
func (it *Iterator[K, V]) Prev() {
	atEnd := it.AtEnd()
	if !atEnd && it.pos > 0 {
		it.pos--
		return
	}

	it.bounds()
	if atEnd {
		if it.last < 0 {
			panic(ErrIteratorOutOfRange)
		}

		it.bucket, it.pos = it.last, it.t.buckets[it.last].len()-1
		return
	}

	for bi := it.bucket - 1; bi >= 0 && bi >= it.first; bi-- {
		if n := it.t.buckets[bi].len(); n > 0 {
			it.bucket, it.pos = bi, n-1
			return
		}
	}

	panic(ErrIteratorOutOfRange)
}

// Equal reports whether both iterators denote the same position of the same
// map.
func (it *Iterator[K, V]) Equal(other Iterator[K, V]) bool {
	it.check()
	other.check()

	return it.t == other.t && it.bucket == other.bucket && it.pos == other.pos
}

func (it *Iterator[K, V]) entry() *entry[K, V] {
	if it.AtEnd() {
		panic(ErrIteratorOutOfRange)
	}

	return &it.t.buckets[it.bucket].entries[it.pos]
}

func (it *Iterator[K, V]) Key() K {
	return it.entry().key
}

func (it *Iterator[K, V]) Value() V {
	return it.entry().value
}

// ValuePtr returns a pointer to the stored value. It stays valid until the
// next structural change of the map.
func (it *Iterator[K, V]) ValuePtr() *V {
	return &it.entry().value
}

func (it *Iterator[K, V]) SetValue(v V) {
	it.entry().value = v
}

// Const returns a read-only iterator at the same position.
func (it *Iterator[K, V]) Const() ConstIterator[K, V] {
	return ConstIterator[K, V]{it: *it}
}

// ConstIterator is the read-only counterpart of Iterator. It follows the same
// invalidation rules.
type ConstIterator[K comparable, V any] struct {
	it Iterator[K, V]
}

func (c *ConstIterator[K, V]) AtEnd() bool {
	return c.it.AtEnd()
}

func (c *ConstIterator[K, V]) Next() {
	c.it.Next()
}

func (c *ConstIterator[K, V]) Prev() {
	c.it.Prev()
}

func (c *ConstIterator[K, V]) Equal(other ConstIterator[K, V]) bool {
	return c.it.Equal(other.it)
}

func (c *ConstIterator[K, V]) Key() K {
	return c.it.Key()
}

func (c *ConstIterator[K, V]) Value() V {
	return c.it.Value()
}

func (t *table[K, V]) all() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for it := t.begin(); !it.AtEnd(); it.Next() {
			if !yield(it.Key(), it.Value()) {
				return
			}
		}
	}
}

func (t *table[K, V]) keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for it := t.begin(); !it.AtEnd(); it.Next() {
			if !yield(it.Key()) {
				return
			}
		}
	}
}

func (t *table[K, V]) values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for it := t.begin(); !it.AtEnd(); it.Next() {
			if !yield(it.Value()) {
				return
			}
		}
	}
}
