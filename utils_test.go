package chainmap

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"
)

func TestCapacityFor(t *testing.T) {
	tests := []struct {
		name     string
		n        int
		maxChain int
		want     int
	}{
		{"zero", 0, 4, 1},
		{"below one chain", 3, 4, 1},
		{"exactly one chain", 4, 4, 2},
		{"eighty", 80, 4, 21},
		{"invalid chain length", 80, 0, 21},
		{"chain length one", 10, 1, 11},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CapacityFor(tt.n, tt.maxChain)
			require.Equal(t, tt.want, got)
		})
	}

	t.Run("usage with New", func(t *testing.T) {
		const n = 100

		m := New(CapacityFor(n, DefaultMaxChainLength), WithHashFunc[int, int](IdentityHash[int]))
		for i := range n {
			m.Set(i, i)
		}

		require.Zero(t, m.Stats().Growths)
	})
}

func TestEntrySize(t *testing.T) {
	t.Run("int,int", func(t *testing.T) {
		size := unsafe.Sizeof(entry[int, int]{})

		require.Equal(t, uintptr(0), EntrySize[int, int](0))
		require.Equal(t, size*10, EntrySize[int, int](10))
	})

	t.Run("string,struct{}", func(t *testing.T) {
		// A trailing zero-size field still gets padded.
		size := unsafe.Sizeof(entry[string, struct{}]{})

		require.Greater(t, size, unsafe.Sizeof(""))
		require.Equal(t, size*3, EntrySize[string, struct{}](3))
	})
}
