package blobtable

import (
	"bytes"
	"fmt"
	"log/slog"
)

const (
	initialCapacity = 4

	// Grow past this load factor, shrink below half of it.
	maxLoad = 0.7
	minLoad = maxLoad / 2
)

type table struct {
	buckets []bucket

	kind       KeyKind
	valueWidth int
	size       int
	tombstones int

	hashFunc  HashFunc
	allocator Allocator
	logger    *slog.Logger
}

type Option func(t *table)

// Override default hash function.
func WithHashFunc(f HashFunc) Option {
	return func(t *table) {
		t.hashFunc = f
	}
}

// WithAllocator sets where key and value copies are allocated and released.
func WithAllocator(a Allocator) Option {
	return func(t *table) {
		t.allocator = a
	}
}

// WithLogger sets the logger resize events are reported to at debug level.
func WithLogger(l *slog.Logger) Option {
	return func(t *table) {
		t.logger = l
	}
}

func (t *table) init(kind KeyKind, valueWidth int, opts ...Option) error {
	if err := kind.validate(); err != nil {
		return err
	}
	if valueWidth <= 0 {
		return fmt.Errorf("%w: value width %d", ErrInvalidConfiguration, valueWidth)
	}

	t.kind = kind
	t.valueWidth = valueWidth

	for _, opt := range opts {
		opt(t)
	}

	if t.hashFunc == nil {
		t.hashFunc = PolynomialHash
	}
	if t.allocator == nil {
		t.allocator = HeapAllocator
	}
	if t.logger == nil {
		t.logger = slog.New(slog.DiscardHandler)
	}

	t.buckets = make([]bucket, initialCapacity)

	return nil
}

func (t *table) destroyed() bool {
	return t.buckets == nil
}

func (t *table) index(content []byte) int {
	return int(t.hashFunc(content) & uint64(len(t.buckets)-1))
}

// find returns the index of the occupied bucket holding content, or -1.
func (t *table) find(content []byte) int {
	mask := len(t.buckets) - 1

	for p, i := 0, t.index(content); p <= mask; p, i = p+1, (i+1)&mask {
		b := &t.buckets[i]

		switch b.state {
		case bucketEmpty:
			return -1
		case bucketOccupied:
			if bytes.Equal(t.kind.stored(b.key), content) {
				return i
			}
		}
	}

	return -1
}

func (t *table) get(content []byte) ([]byte, bool) {
	if i := t.find(content); i >= 0 {
		return t.buckets[i].value, true
	}

	return nil, false
}

// set inserts or updates content. It returns whether the key was new and
// whether the probe wrapped around without finding a usable bucket.
func (t *table) set(content, value []byte) (bool, bool) {
	var (
		mask   = len(t.buckets) - 1
		target = -1
	)

	for p, i := 0, t.index(content); p <= mask; p, i = p+1, (i+1)&mask {
		b := &t.buckets[i]

		if b.state == bucketOccupied {
			if bytes.Equal(t.kind.stored(b.key), content) {
				b.replaceValue(t.allocator, value)
				return false, false
			}
			continue
		}

		// The first free bucket is where a new key goes, but only an
		// empty one proves the key is not further down the chain.
		if target < 0 {
			target = i
		}
		if b.state == bucketEmpty {
			break
		}
	}

	if target < 0 {
		return false, true
	}

	b := &t.buckets[target]
	if b.state == bucketDeleted {
		t.tombstones--
	}

	b.state = bucketOccupied
	b.key = t.kind.ownKey(t.allocator, content)
	b.value = clone(t.allocator, value, 0)
	t.size++

	return true, false
}

// put is set followed by the resize check.
func (t *table) put(content, value []byte) (bool, error) {
	inserted, full := t.set(content, value)
	if full {
		// Any tombstone would have been taken, so every bucket is occupied.
		return false, fmt.Errorf("%w: capacity %d, size %d", ErrCapacityExhausted, len(t.buckets), t.size)
	}

	t.rescale()

	return inserted, nil
}

func (t *table) delete(content []byte) bool {
	i := t.find(content)
	if i < 0 {
		return false
	}

	b := &t.buckets[i]
	b.release(t.allocator)
	b.state = bucketDeleted
	t.size--
	t.tombstones++

	t.rescale()

	return true
}

func (t *table) rescale() {
	capacity := len(t.buckets)
	load := float64(t.size) / float64(capacity)

	switch {
	case load > maxLoad:
		t.rehash(capacity * 2)
	case load < minLoad && capacity > initialCapacity:
		t.rehash(capacity / 2)
	case float64(t.size+t.tombstones)/float64(capacity) > maxLoad:
		// Tombstones lengthen every miss; reclaim them in place.
		t.rehash(capacity)
	}
}

// rehash moves every occupied bucket into a fresh array of the given capacity.
// Buffers change hands without copying and tombstones are dropped.
func (t *table) rehash(capacity int) {
	if !isPowerOf2(capacity) || capacity < initialCapacity || capacity <= t.size {
		panic(fmt.Sprintf("blobtable: invalid capacity %d for %d entries", capacity, t.size))
	}

	old := t.buckets
	t.buckets = make([]bucket, capacity)
	mask := capacity - 1

	for i := range old {
		b := &old[i]
		if b.state != bucketOccupied {
			continue
		}

		// Keys are already distinct, the first empty bucket will do.
		j := t.index(t.kind.stored(b.key))
		for t.buckets[j].state != bucketEmpty {
			j = (j + 1) & mask
		}

		t.buckets[j] = *b
	}

	t.tombstones = 0

	t.logger.Debug("Rehashed table", "from", len(old), "to", capacity, "size", t.size)
}

// release frees every owned buffer and drops the bucket array.
func (t *table) release() {
	for i := range t.buckets {
		if t.buckets[i].state == bucketOccupied {
			t.buckets[i].release(t.allocator)
		}
	}

	t.buckets = nil
	t.size = 0
	t.tombstones = 0
}

func (t *table) stats() Stats {
	s := Stats{
		Size:       t.size,
		Capacity:   len(t.buckets),
		Tombstones: t.tombstones,
	}

	if s.Capacity > 0 {
		s.LoadFactor = float32(s.Size) / float32(s.Capacity)
		s.TombstonesCapacityRatio = float32(s.Tombstones) / float32(s.Capacity)
	}
	if s.Size > 0 {
		s.TombstonesSizeRatio = float32(s.Tombstones) / float32(s.Size)
	}

	return s
}
