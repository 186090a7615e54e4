package blobtable

import "github.com/cespare/xxhash/v2"

// HashFunc hashes key content. For string keys the terminator is not part of
// the content. It must be deterministic: a resize recomputes it for every
// entry.
type HashFunc func(key []byte) uint64

// PolynomialHash is a base-31 polynomial hash. The first byte carries the
// highest power of 31 and the last byte carries 31^0.
func PolynomialHash(key []byte) uint64 {
	var h uint64
	for _, c := range key {
		h = h*31 + uint64(c)
	}

	return h
}

// XXHash hashes with xxHash64, for keys whose low bytes vary little.
func XXHash(key []byte) uint64 {
	return xxhash.Sum64(key)
}
