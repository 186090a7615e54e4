package blobtable

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewKeySet(t *testing.T) {
	ks, err := NewKeySet(NullTerminated())
	require.NoError(t, err)

	require.Equal(t, 4, ks.Stats().Capacity)
	require.Zero(t, ks.Len())

	_, err = NewKeySet(FixedWidth(0))
	require.ErrorIs(t, err, ErrInvalidConfiguration)
}

func TestKeySet_Add(t *testing.T) {
	ks, err := NewKeySet(FixedWidth(4))
	require.NoError(t, err)

	ok, err := ks.Add(u32(1))
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = ks.Add(u32(1))
	require.NoError(t, err)
	require.False(t, ok)

	_, err = ks.Add([]byte{1})
	require.ErrorIs(t, err, ErrKeyLength)

	require.Equal(t, 1, ks.Len())
}

func TestKeySet_Tombstones(t *testing.T) {
	// Use a custom hash function that forces collisions
	// by returning the same index for everything.
	collisionHash := func(k []byte) uint64 {
		return 0 // All keys start at index 0
	}

	ks, err := NewKeySet(NullTerminated(), WithHashFunc(collisionHash))
	require.NoError(t, err)

	for _, k := range []string{"A", "B", "C", "D", "E"} {
		_, err := ks.Add([]byte(k))
		require.NoError(t, err)
	}

	// Delete the "bridge" element
	require.True(t, ks.Delete([]byte("B")))

	// Verify we can still find "C" even though there's a hole at "B"
	require.True(t, ks.Has([]byte("C")), "Probe chain broken: could not find 'C' after deleting 'B'")
	require.False(t, ks.Has([]byte("B")))
}

func TestKeySet_Destroy(t *testing.T) {
	a := newCountingAllocator()
	ks, err := NewKeySet(NullTerminated(), WithAllocator(a))
	require.NoError(t, err)

	for _, name := range monthNames {
		_, err := ks.Add([]byte(name))
		require.NoError(t, err)
	}

	ks.Destroy()
	assert.Zero(t, a.outstanding())

	_, err = ks.Add([]byte("May"))
	assert.ErrorIs(t, err, ErrDestroyed)
	assert.False(t, ks.Has([]byte("May")))
}
