package blobtable

type bucketState uint8

const (
	bucketEmpty bucketState = iota
	bucketOccupied
	// Tombstone. Still ends no probe chain, so entries placed past it
	// stay reachable until the next rehash drops it.
	bucketDeleted
)

type bucket struct {
	state bucketState

	// Both buffers are owned by the table while the bucket is occupied.
	// String keys keep their terminator.
	key   []byte
	value []byte
}

// replaceValue frees the current value before storing a copy of v.
func (b *bucket) replaceValue(a Allocator, v []byte) {
	a.Free(b.value)
	b.value = clone(a, v, 0)
}

func (b *bucket) release(a Allocator) {
	a.Free(b.key)
	a.Free(b.value)
	b.key, b.value = nil, nil
}
