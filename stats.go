package chainmap

import "github.com/pkg/errors"

type Stats struct {
	Size           int
	Capacity       int
	LoadFactor     float32
	MaxChainLength int
	LongestChain   int
	EmptyBuckets   int
	Growths        int

	// Entries that a split placed outside of their old bucket and its
	// mirror. Always 0 for a modulo bucket mapping.
	SplitAnomalies int
}

func (m *Map[K, V]) Stats() Stats {
	s := Stats{
		Size:           m.size,
		Capacity:       len(m.buckets),
		MaxChainLength: m.maxChain,
		Growths:        m.growths,
		SplitAnomalies: m.splitAnomalies,
	}

	if s.Capacity > 0 {
		s.LoadFactor = float32(s.Size) / float32(s.Capacity)
	}

	for i := range m.buckets {
		n := m.buckets[i].len()
		if n == 0 {
			s.EmptyBuckets++
		}
		s.LongestChain = max(s.LongestChain, n)
	}

	return s
}

// Validate walks the whole table and checks its invariants: the size counter
// matches the stored entries, every key lives in the bucket its hash maps to,
// and no key is stored twice.
func (m *Map[K, V]) Validate() error {
	if len(m.buckets) == 0 {
		return errors.New("chainmap: table has no buckets")
	}

	seen := make(map[K]int, m.size)
	total := 0

	for i := range m.buckets {
		for _, e := range m.buckets[i].entries {
			if idx := m.index(e.key); idx != i {
				return errors.Errorf("chainmap: key %v stored in bucket %d, hashes to bucket %d", e.key, i, idx)
			}

			if prev, ok := seen[e.key]; ok {
				return errors.Errorf("chainmap: key %v stored in buckets %d and %d", e.key, prev, i)
			}

			seen[e.key] = i
			total++
		}
	}

	if total != m.size {
		return errors.Errorf("chainmap: size is %d, buckets hold %d entries", m.size, total)
	}

	return nil
}
