package field

import "math/bits"

// Mask returns a value with the low width bits set.
func Mask(width uint) uint64 {
	if width >= 64 {
		return ^uint64(0)
	}

	return 1<<width - 1
}

// Read extracts the field of the given width starting at bit off.
//
// A field occupies bits [off, off+width) counted least significant bit
// first across the words in index order. It lands in one word or straddles
// two adjacent ones; it never spans three.
func Read(words []uint64, off, width uint) uint64 {
	i0 := off / 64
	i1 := (off + width - 1) / 64
	o0 := off % 64

	if i0 == i1 {
		return words[i0] >> o0 & Mask(width)
	}

	return (words[i0]>>o0 | words[i1]<<(64-o0)) & Mask(width)
}

// Write stores value into the field of the given width starting at bit
// off. Bits outside the field are preserved; value bits at or above width
// are discarded.
func Write(words []uint64, off, width uint, value uint64) {
	i0 := off / 64
	i1 := (off + width - 1) / 64
	o0 := off % 64

	m := Mask(width)
	value &= m

	words[i0] = words[i0]&^(m<<o0) | value<<o0
	if i1 != i0 {
		words[i1] = words[i1]&^(m>>(64-o0)) | value>>(64-o0)
	}
}

// MinWidth returns the narrowest width whose fields can tell n values
// apart: ceil(log2(n)), by integer bit length. Zero for n of one or less.
func MinWidth(n uint64) uint {
	if n <= 1 {
		return 0
	}

	return uint(bits.Len64(n - 1))
}

// WordsFor returns the number of words needed to hold cells fields of the
// given width: ceil(cells*width/64).
func WordsFor(cells int, width uint) int {
	return (cells*int(width) + 63) / 64
}
