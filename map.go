// Package blobtable implements an open-addressing hash table over raw byte
// keys and values. Keys are either fixed-width binary blobs or
// null-terminated strings; values are fixed-width blobs. Collisions are
// resolved by linear probing with tombstones, and the table doubles or halves
// its bucket array to keep the load factor between 0.35 and 0.7.
//
// The table copies every key and value it is given and owns those copies
// until they are overwritten, deleted or the table is destroyed. It is not
// safe for concurrent use.
package blobtable

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidConfiguration = errors.New("invalid table configuration")
	ErrKeyLength            = errors.New("invalid key length")
	ErrValueLength          = errors.New("invalid value length")
	ErrCapacityExhausted    = errors.New("table capacity exhausted")
	ErrDestroyed            = errors.New("table destroyed")
)

// Map maps byte-blob keys onto fixed-width byte-blob values.
type Map struct {
	table
}

// Returns a new, empty map with 4 buckets.
func New(kind KeyKind, valueWidth int, opts ...Option) (*Map, error) {
	var m Map
	if err := m.init(kind, valueWidth, opts...); err != nil {
		return nil, err
	}

	return &m, nil
}

// NewWithWidth is New with the key kind given as a width, where
// StringKeyWidth selects string keys.
func NewWithWidth(keyWidth, valueWidth int, opts ...Option) (*Map, error) {
	kind, err := KindFromWidth(keyWidth)
	if err != nil {
		return nil, err
	}

	return New(kind, valueWidth, opts...)
}

// Get returns the value stored for key. The returned slice belongs to the
// map: it must not be modified and is only valid until the next mutation.
func (m *Map) Get(key []byte) ([]byte, bool) {
	content, ok := m.lookupKey(key)
	if !ok {
		return nil, false
	}

	return m.get(content)
}

// Checks whether a key is in the map.
func (m *Map) Has(key []byte) bool {
	_, ok := m.Get(key)
	return ok
}

// Set inserts key with a copy of value, or replaces the value of an existing
// key.
func (m *Map) Set(key, value []byte) error {
	if m.destroyed() {
		return ErrDestroyed
	}

	content, ok := m.kind.content(key)
	if !ok {
		return fmt.Errorf("%w: got %d bytes, want %d", ErrKeyLength, len(key), m.kind.Width())
	}
	if len(value) != m.valueWidth {
		return fmt.Errorf("%w: got %d bytes, want %d", ErrValueLength, len(value), m.valueWidth)
	}

	_, err := m.put(content, value)

	return err
}

// Deletes a key from the map. Returns whether it was present.
func (m *Map) Delete(key []byte) bool {
	content, ok := m.lookupKey(key)
	if !ok {
		return false
	}

	return m.delete(content)
}

// Compact rehashes the map at its current capacity, dropping tombstones.
func (m *Map) Compact() {
	if m.destroyed() {
		return
	}

	m.rehash(len(m.buckets))
}

// Reset releases every entry and shrinks the map back to its initial
// capacity. A destroyed map becomes usable again.
func (m *Map) Reset() {
	m.release()
	m.buckets = make([]bucket, initialCapacity)
}

// Destroy releases every entry and the bucket array. Lookups on a destroyed
// map find nothing and Set returns ErrDestroyed. Destroying twice is a no-op.
func (m *Map) Destroy() {
	m.release()
}

func (m *Map) Len() int {
	return m.size
}

// Cap returns the number of buckets.
func (m *Map) Cap() int {
	return len(m.buckets)
}

func (m *Map) KeyKind() KeyKind {
	return m.kind
}

func (m *Map) ValueWidth() int {
	return m.valueWidth
}

func (m *Map) Stats() Stats {
	return m.stats()
}

func (m *Map) lookupKey(key []byte) ([]byte, bool) {
	if m.destroyed() {
		return nil, false
	}

	return m.kind.content(key)
}
