package chainmap

type entry[K comparable, V any] struct {
	key   K
	value V
}

// bucket is a collision chain: every entry in it maps to the same index.
// The order of entries within a bucket carries no meaning, removal swaps the
// last entry into the freed slot.
type bucket[K comparable, V any] struct {
	entries []entry[K, V]
}

func (b *bucket[K, V]) len() int {
	return len(b.entries)
}

// find returns the position of key within the bucket, or -1.
func (b *bucket[K, V]) find(key K) int {
	for i := range b.entries {
		if b.entries[i].key == key {
			return i
		}
	}

	return -1
}

// push appends an entry and returns its position.
func (b *bucket[K, V]) push(key K, value V) int {
	b.entries = append(b.entries, entry[K, V]{key: key, value: value})

	return len(b.entries) - 1
}

func (b *bucket[K, V]) removeAt(pos int) {
	last := len(b.entries) - 1
	if pos != last {
		b.entries[pos] = b.entries[last]
	}

	// Drop references held by the vacated slot.
	b.entries[last] = entry[K, V]{}
	b.entries = b.entries[:last]
}

func (b *bucket[K, V]) clone(cloneValue func(V) V) bucket[K, V] {
	if len(b.entries) == 0 {
		return bucket[K, V]{}
	}

	entries := make([]entry[K, V], len(b.entries))
	copy(entries, b.entries)

	if cloneValue != nil {
		for i := range entries {
			entries[i].value = cloneValue(entries[i].value)
		}
	}

	return bucket[K, V]{entries: entries}
}
