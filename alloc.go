package blobtable

// Allocator hands out the buffers a table stores its key and value copies in.
// Every buffer obtained from Alloc is passed to Free exactly once: when its
// value is overwritten, when its entry is deleted, or when the table is reset
// or destroyed. Buffers moved by a resize are not freed.
type Allocator interface {
	Alloc(n int) []byte
	Free(b []byte)
}

// HeapAllocator allocates with make and leaves reclamation to the GC.
var HeapAllocator Allocator = heapAllocator{}

type heapAllocator struct{}

func (heapAllocator) Alloc(n int) []byte {
	return make([]byte, n)
}

func (heapAllocator) Free([]byte) {}
