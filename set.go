package blobtable

var present = []byte{1}

// KeySet is a set of byte-blob keys. It is a Map whose values are a single
// marker byte.
type KeySet struct {
	m Map
}

func NewKeySet(kind KeyKind, opts ...Option) (*KeySet, error) {
	var ks KeySet
	if err := ks.m.init(kind, len(present), opts...); err != nil {
		return nil, err
	}

	return &ks, nil
}

// Adds a key to the set. Returns whether the key is new.
func (ks *KeySet) Add(key []byte) (bool, error) {
	if ks.m.destroyed() {
		return false, ErrDestroyed
	}

	content, ok := ks.m.kind.content(key)
	if !ok {
		return false, ErrKeyLength
	}

	return ks.m.put(content, present)
}

// Checks whether a key is in the set.
func (ks *KeySet) Has(key []byte) bool {
	return ks.m.Has(key)
}

func (ks *KeySet) Delete(key []byte) bool {
	return ks.m.Delete(key)
}

func (ks *KeySet) Len() int {
	return ks.m.Len()
}

func (ks *KeySet) Stats() Stats {
	return ks.m.Stats()
}

func (ks *KeySet) Destroy() {
	ks.m.Destroy()
}
