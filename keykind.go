package blobtable

import "fmt"

// StringKeyWidth is the key width that selects null-terminated string keys.
const StringKeyWidth = -1

type keyKindTag uint8

const (
	kindInvalid keyKindTag = iota
	kindFixedWidth
	kindNullTerminated
)

// KeyKind describes the shape of the keys a table accepts. It is either
// FixedWidth(n) or NullTerminated(); the zero value is invalid.
type KeyKind struct {
	tag   keyKindTag
	width int
}

// FixedWidth returns the kind of binary keys exactly n bytes long.
func FixedWidth(n int) KeyKind {
	return KeyKind{tag: kindFixedWidth, width: n}
}

// NullTerminated returns the kind of string keys. A key is the byte run up to
// the first zero byte, or the whole slice if it has none.
func NullTerminated() KeyKind {
	return KeyKind{tag: kindNullTerminated}
}

// KindFromWidth maps a key width onto a KeyKind. StringKeyWidth selects
// NullTerminated, a positive width selects FixedWidth.
func KindFromWidth(width int) (KeyKind, error) {
	if width == StringKeyWidth {
		return NullTerminated(), nil
	}

	k := FixedWidth(width)
	if err := k.validate(); err != nil {
		return KeyKind{}, err
	}

	return k, nil
}

// Width returns the key width in bytes, or StringKeyWidth for string keys.
func (k KeyKind) Width() int {
	switch k.tag {
	case kindFixedWidth:
		return k.width
	case kindNullTerminated:
		return StringKeyWidth
	}

	return 0
}

func (k KeyKind) String() string {
	switch k.tag {
	case kindFixedWidth:
		return fmt.Sprintf("FixedWidth(%d)", k.width)
	case kindNullTerminated:
		return "NullTerminated"
	}

	return "Invalid"
}

func (k KeyKind) validate() error {
	switch k.tag {
	case kindFixedWidth:
		if k.width <= 0 {
			return fmt.Errorf("%w: key width %d", ErrInvalidConfiguration, k.width)
		}
		return nil
	case kindNullTerminated:
		return nil
	}

	return fmt.Errorf("%w: key kind is not set", ErrInvalidConfiguration)
}

// content returns the bytes of key that take part in hashing and comparison.
// A fixed-width key of the wrong length is reported as unusable.
func (k KeyKind) content(key []byte) ([]byte, bool) {
	switch k.tag {
	case kindFixedWidth:
		if len(key) != k.width {
			return nil, false
		}
		return key, true
	case kindNullTerminated:
		for i, c := range key {
			if c == 0 {
				return key[:i], true
			}
		}
		return key, true
	}

	panic("blobtable: invalid key kind")
}

// stored strips the storage framing from an owned key buffer.
func (k KeyKind) stored(key []byte) []byte {
	switch k.tag {
	case kindFixedWidth:
		return key
	case kindNullTerminated:
		return key[:len(key)-1]
	}

	panic("blobtable: invalid key kind")
}

// ownKey copies content into a buffer owned by the table. String keys get
// their terminator back.
func (k KeyKind) ownKey(a Allocator, content []byte) []byte {
	switch k.tag {
	case kindFixedWidth:
		return clone(a, content, 0)
	case kindNullTerminated:
		return clone(a, content, 1)
	}

	panic("blobtable: invalid key kind")
}
