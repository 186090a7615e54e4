package blobtable

// clone copies src into a fresh buffer from a with extra trailing zero bytes.
func clone(a Allocator, src []byte, extra int) []byte {
	dst := a.Alloc(len(src) + extra)
	n := copy(dst, src)
	clear(dst[n:])

	return dst
}

func isPowerOf2(v int) bool {
	return v > 0 && v&(v-1) == 0
}
