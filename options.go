package chainmap

import "go.uber.org/zap"

const (
	// DefaultCapacity is the number of buckets of a map created without an
	// explicit capacity, and of a map whose contents were moved out.
	DefaultCapacity = 5

	// DefaultMaxChainLength is the average number of entries per bucket at
	// which the table doubles.
	DefaultMaxChainLength = 4
)

type Option[K comparable, V any] func(t *table[K, V])

// Override default hash function.
func WithHashFunc[K comparable, V any](f HashFunc[K]) Option[K, V] {
	return func(t *table[K, V]) {
		t.hashFunc = f
	}
}

// WithMaxChainLength sets the average chain length that triggers growth.
// Values below 1 are ignored.
func WithMaxChainLength[K comparable, V any](n int) Option[K, V] {
	return func(t *table[K, V]) {
		if n >= 1 {
			t.maxChain = n
		}
	}
}

// WithLogger makes the table report growth events at debug level.
func WithLogger[K comparable, V any](logger *zap.Logger) Option[K, V] {
	return func(t *table[K, V]) {
		if logger != nil {
			t.logger = logger
		}
	}
}

// WithValueCloner is applied to every value when the map is copied. Without
// it values are copied by assignment.
func WithValueCloner[K comparable, V any](f func(V) V) Option[K, V] {
	return func(t *table[K, V]) {
		t.cloneValue = f
	}
}
