package chainmap

import "go.uber.org/zap"

// maybeGrow doubles the table once the average chain length reaches
// maxChain. Returns whether the table has grown.
func (t *table[K, V]) maybeGrow() bool {
	if t.size < t.maxChain*len(t.buckets) {
		return false
	}

	t.grow()

	return true
}

// grow doubles the number of buckets and splits every old bucket.
//
// With a modulo mapping an entry of bucket i either stays at i or lands at
// i+oldCap. The index is still recomputed for every entry and the entry is
// placed wherever the hash function puts it, entries landing anywhere else
// are counted as split anomalies.
func (t *table[K, V]) grow() {
	oldCap := len(t.buckets)
	newCap := oldCap * 2

	buckets := make([]bucket[K, V], newCap)
	copy(buckets, t.buckets)
	t.buckets = buckets

	moved := 0
	for i := 0; i < oldCap; i++ {
		b := &t.buckets[i]

		for pos := 0; pos < b.len(); {
			e := b.entries[pos]

			idx := bucketIndex(t.hashFunc(e.key), newCap)
			if idx == i {
				pos++
				continue
			}

			if idx != i+oldCap {
				t.splitAnomalies++
			}

			t.buckets[idx].push(e.key, e.value)
			// removeAt swaps the last entry into pos, so pos is not advanced.
			b.removeAt(pos)
			moved++
		}
	}

	t.growths++
	t.generation++

	t.logger.Debug("chainmap grown",
		zap.Int("old_capacity", oldCap),
		zap.Int("new_capacity", newCap),
		zap.Int("size", t.size),
		zap.Int("moved", moved),
	)
}
