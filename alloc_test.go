package blobtable

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

// countingAllocator tracks every live buffer and fails on a double free.
type countingAllocator struct {
	live   map[*byte]int
	allocs int
	frees  int
}

func newCountingAllocator() *countingAllocator {
	return &countingAllocator{live: make(map[*byte]int)}
}

func (a *countingAllocator) Alloc(n int) []byte {
	b := make([]byte, n)
	a.live[&b[0]] = n
	a.allocs++

	return b
}

func (a *countingAllocator) Free(b []byte) {
	p := &b[0]
	if _, ok := a.live[p]; !ok {
		panic(fmt.Sprintf("free of unknown buffer %p", p))
	}

	delete(a.live, p)
	a.frees++
}

func (a *countingAllocator) outstanding() int {
	return len(a.live)
}

func TestHeapAllocator(t *testing.T) {
	b := HeapAllocator.Alloc(8)
	require.Len(t, b, 8)

	require.NotPanics(t, func() { HeapAllocator.Free(b) })
}

func TestClone(t *testing.T) {
	a := newCountingAllocator()
	src := []byte("abc")

	dst := clone(a, src, 1)
	require.Equal(t, []byte("abc\x00"), dst)
	require.Equal(t, 1, a.outstanding())

	src[0] = 'z'
	require.Equal(t, byte('a'), dst[0])
}
