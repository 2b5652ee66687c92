package main

import (
	"math/rand/v2"
	"strconv"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/homier/chainmap"
)

const (
	hashMaphash  = "maphash"
	hashXXHash   = "xxhash"
	hashConstant = "constant"
)

type op int

const (
	opInsert op = iota
	opSet
	opErase
	opLookup
)

// Report summarizes a finished workload run.
type Report struct {
	Ops          int            `json:"ops"`
	Inserts      int            `json:"inserts"`
	Sets         int            `json:"sets"`
	Erases       int            `json:"erases"`
	Lookups      int            `json:"lookups"`
	LookupMisses int            `json:"lookup_misses"`
	Validations  int            `json:"validations"`
	Stats        chainmap.Stats `json:"stats"`
	EntryBytes   uint64         `json:"entry_bytes"`
	Elapsed      string         `json:"elapsed"`
}

func hashFor(name string) chainmap.HashFunc[string] {
	switch name {
	case hashXXHash:
		return chainmap.XXHashString
	case hashConstant:
		return func(string) uint64 { return 0 }
	default:
		// Seeded maphash, the map's default.
		return nil
	}
}

func pickOp(r *rand.Rand, mix Mix) op {
	n := r.IntN(mix.total())
	switch {
	case n < mix.Insert:
		return opInsert
	case n < mix.Insert+mix.Set:
		return opSet
	case n < mix.Insert+mix.Set+mix.Erase:
		return opErase
	default:
		return opLookup
	}
}

// runWorkload applies a random operation sequence to a chainmap and to a
// built-in map, failing on the first disagreement between the two.
func runWorkload(cfg Config, logger *zap.Logger) (Report, error) {
	if err := cfg.validate(); err != nil {
		return Report{}, err
	}

	opts := []chainmap.Option[string, int]{
		chainmap.WithMaxChainLength[string, int](cfg.MaxChain),
		chainmap.WithLogger[string, int](logger),
	}
	if h := hashFor(cfg.Hash); h != nil {
		opts = append(opts, chainmap.WithHashFunc[string, int](h))
	}

	var (
		m      = chainmap.New(cfg.Capacity, opts...)
		want   = make(map[string]int, cfg.KeySpace)
		r      = rand.New(rand.NewPCG(cfg.Seed, cfg.Seed^0x9e3779b97f4a7c15))
		keys   = make([]string, cfg.KeySpace)
		report = Report{Ops: cfg.Ops}
		start  = time.Now()
	)

	for i := range keys {
		keys[i] = "key-" + strconv.Itoa(i)
	}

	for i := range cfg.Ops {
		k := keys[r.IntN(len(keys))]
		_, exists := want[k]

		switch pickOp(r, cfg.Mix) {
		case opInsert:
			report.Inserts++
			if got := m.Insert(k, i); got == exists {
				return report, errors.Errorf("op %d: Insert(%q) = %v with key present = %v", i, k, got, exists)
			}
			if !exists {
				want[k] = i
			}
		case opSet:
			report.Sets++
			m.Set(k, i)
			want[k] = i
		case opErase:
			report.Erases++
			if got := m.Erase(k); got != exists {
				return report, errors.Errorf("op %d: Erase(%q) = %v with key present = %v", i, k, got, exists)
			}
			delete(want, k)
		case opLookup:
			report.Lookups++
			v, err := m.At(k)
			if !exists {
				report.LookupMisses++
				if !errors.Is(err, chainmap.ErrKeyNotFound) {
					return report, errors.Errorf("op %d: At(%q) on a missing key returned %v", i, k, err)
				}
				break
			}
			if err != nil || v != want[k] {
				return report, errors.Errorf("op %d: At(%q) = %d, %v, want %d", i, k, v, err, want[k])
			}
		}

		if m.Len() != len(want) {
			return report, errors.Errorf("op %d: Len() = %d, want %d", i, m.Len(), len(want))
		}

		if cfg.ValidateEvery > 0 && (i+1)%cfg.ValidateEvery == 0 {
			if err := compare(m, want); err != nil {
				return report, errors.Wrapf(err, "op %d", i)
			}
			report.Validations++
			logger.Debug("validated", zap.Int("op", i), zap.Int("size", m.Len()))
		}
	}

	if err := compare(m, want); err != nil {
		return report, errors.Wrap(err, "final check")
	}
	report.Validations++

	report.Stats = m.Stats()
	report.EntryBytes = uint64(chainmap.EntrySize[string, int](m.Len()))
	report.Elapsed = time.Since(start).String()

	logger.Info("workload finished",
		zap.Int("ops", report.Ops),
		zap.Int("size", report.Stats.Size),
		zap.Int("capacity", report.Stats.Capacity),
		zap.Int("growths", report.Stats.Growths),
	)

	return report, nil
}

// compare checks the table invariants and that a full traversal yields
// exactly the expected entries.
func compare(m *chainmap.Map[string, int], want map[string]int) error {
	if err := m.Validate(); err != nil {
		return err
	}

	n := 0
	for it := m.Begin(); !it.AtEnd(); it.Next() {
		w, ok := want[it.Key()]
		if !ok {
			return errors.Errorf("traversal yielded unexpected key %q", it.Key())
		}
		if it.Value() != w {
			return errors.Errorf("traversal yielded %q = %d, want %d", it.Key(), it.Value(), w)
		}
		n++
	}

	if n != len(want) {
		return errors.Errorf("traversal yielded %d entries, want %d", n, len(want))
	}

	return nil
}
