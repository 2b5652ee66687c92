package chainmap

import "unsafe"

// Returns the smallest capacity (number of buckets) that holds n entries
// with the given maximum average chain length without growing.
func CapacityFor(n, maxChain int) int {
	if maxChain < 1 {
		maxChain = DefaultMaxChainLength
	}

	// Growth triggers at size >= maxChain*capacity, hence the +1.
	return max(1, n/maxChain+1)
}

// Estimates how many bytes the entries of n key-value pairs occupy, not
// counting memory referenced by keys or values.
func EntrySize[K comparable, V any](n int) uintptr {
	return unsafe.Sizeof(entry[K, V]{}) * uintptr(n)
}
