package chainmap

import (
	"hash/maphash"

	"github.com/cespare/xxhash/v2"
	"golang.org/x/exp/constraints"
)

type HashFunc[K comparable] func(K) uint64

func MakeDefaultHashFunc[K comparable](seed maphash.Seed) HashFunc[K] {
	return func(k K) uint64 {
		return maphash.Comparable(seed, k)
	}
}

// IdentityHash hashes an integer key to itself. Sequential keys spread
// evenly over the buckets, which makes bucket placement predictable.
func IdentityHash[K constraints.Integer](k K) uint64 {
	return uint64(k)
}

func XXHashString(k string) uint64 {
	return xxhash.Sum64String(k)
}

// XXHashDigest hashes 32-byte keys such as sha256 digests.
func XXHashDigest(k [32]byte) uint64 {
	return xxhash.Sum64(k[:])
}

// Returns the bucket a hash belongs to for the given capacity.
func bucketIndex(hash uint64, capacity int) int {
	return int(hash % uint64(capacity))
}
