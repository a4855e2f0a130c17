package chunk

import (
	"github.com/LavaPower/quarry/field"
)

// encoding translates between stored field values and global ids. An
// array is in exactly one of two modes: indirect (fields index a palette
// of ids) or direct (fields hold the ids themselves).
type encoding interface {
	// decode returns the global id for a stored field value.
	decode(f uint64) uint32

	// encode returns the field value for a global id and whether the id
	// is representable in this encoding.
	encode(id uint32) (uint64, bool)

	// palette returns the id table in first use order, nil in direct
	// mode.
	palette() []uint32
}

type indirect struct {
	ids []uint32
}

func (e *indirect) decode(f uint64) uint32 {
	return e.ids[f]
}

func (e *indirect) encode(id uint32) (uint64, bool) {
	for f, known := range e.ids {
		if known == id {
			return uint64(f), true
		}
	}

	return 0, false
}

func (e *indirect) palette() []uint32 {
	return e.ids
}

type direct struct{}

func (direct) decode(f uint64) uint32          { return uint32(f) }
func (direct) encode(id uint32) (uint64, bool) { return uint64(id), true }
func (direct) palette() []uint32               { return nil }

// BlockArray is a dense array of Length blocks packed at the narrowest
// usable field width. The zero value is not usable; construct with
// NewBlockArray or LoadBlockArray.
type BlockArray[B any] struct {
	reg   Registry[B]
	max   uint
	bits  uint
	words []uint64
	enc   encoding
}

// NewBlockArray returns an empty array: every cell holds global id 0.
func NewBlockArray[B any](reg Registry[B]) (*BlockArray[B], error) {
	max, err := registryBits(reg)
	if err != nil {
		return nil, err
	}

	return &BlockArray[B]{
		reg:   reg,
		max:   max,
		bits:  minBits,
		words: make([]uint64, field.WordsFor(Length, minBits)),
		enc:   &indirect{ids: []uint32{0}},
	}, nil
}

// LoadBlockArray reconstructs an array from its serialized parts: the
// packed words in index order, their field width, and the palette (nil
// for direct mode). The parts are validated for shape and copied; whether
// the ids themselves decode is left to the registry at read time.
func LoadBlockArray[B any](reg Registry[B], words []uint64, bits uint, palette []uint32) (*BlockArray[B], error) {
	max, err := registryBits(reg)
	if err != nil {
		return nil, err
	}

	switch {
	case palette == nil:
		if bits != max {
			return nil, ErrBadArray.New("direct fields must be %d bits wide, not %d", max, bits)
		}
	case len(palette) == 0:
		return nil, ErrBadArray.New("palette is empty")
	default:
		if bits < minBits || bits > maxPaletteBits {
			return nil, ErrBadArray.New("palette fields must be %d to %d bits wide, not %d", minBits, maxPaletteBits, bits)
		}
		if len(palette) > 1<<bits {
			return nil, ErrBadArray.New("palette has %d entries, more than %d bit fields can index", len(palette), bits)
		}
	}

	if len(words) != field.WordsFor(Length, bits) {
		return nil, ErrBadArray.New("%d bit fields need %d words, have %d", bits, field.WordsFor(Length, bits), len(words))
	}

	seen := map[uint32]struct{}{}
	for _, id := range palette {
		if uint64(id) > field.Mask(max) {
			return nil, ErrBadArray.New("palette id %d wider than %d bits", id, max)
		}

		if _, ok := seen[id]; ok {
			return nil, ErrBadArray.New("palette id %d appears more than once", id)
		}

		seen[id] = struct{}{}
	}

	a := &BlockArray[B]{
		reg:   reg,
		max:   max,
		bits:  bits,
		words: append([]uint64(nil), words...),
	}

	if palette == nil {
		a.enc = direct{}

		return a, nil
	}

	a.enc = &indirect{ids: append([]uint32(nil), palette...)}

	for i := 0; i < Length; i++ {
		if f := field.Read(a.words, uint(i)*bits, bits); f >= uint64(len(palette)) {
			return nil, ErrBadArray.New("cell %d indexes palette entry %d of %d", i, f, len(palette))
		}
	}

	return a, nil
}

// Get returns the block at index i.
func (a *BlockArray[B]) Get(i int) (B, error) {
	if i < 0 || i >= Length {
		var zero B

		return zero, ErrIndexRange.New("index %d not in [0, %d)", i, Length)
	}

	return a.reg.DecodeBlock(a.id(i))
}

// Set stores the block at index i. The palette grows, and the fields
// widen, as needed. A write that fails leaves the array unchanged.
func (a *BlockArray[B]) Set(i int, block B) error {
	if i < 0 || i >= Length {
		return ErrIndexRange.New("index %d not in [0, %d)", i, Length)
	}

	id, err := a.reg.EncodeBlock(block)
	if err != nil {
		return err
	}

	if uint64(id) > field.Mask(a.max) {
		return ErrValueRange.New("global id %d wider than %d bits", id, a.max)
	}

	a.setID(i, id)

	return nil
}

// SetRange stores blocks at consecutive indexes starting at start. Writes
// are applied in ascending index order; if one fails the earlier ones
// remain.
func (a *BlockArray[B]) SetRange(start int, blocks []B) error {
	if start < 0 || start+len(blocks) > Length {
		return ErrIndexRange.New("range [%d, %d) not in [0, %d)", start, start+len(blocks), Length)
	}

	for n, block := range blocks {
		if err := a.Set(start+n, block); err != nil {
			return err
		}
	}

	return nil
}

// Repack recomputes the narrowest encoding for the ids actually present
// and, when the field width changes, rewrites the array into it. A stale
// palette shrinks and a direct array with few distinct ids collapses back
// to a palette. When the width comes out unchanged nothing is touched,
// not even the palette.
func (a *BlockArray[B]) Repack() {
	a.repack(0)
}

// id returns the global id stored at index i.
func (a *BlockArray[B]) id(i int) uint32 {
	return a.enc.decode(field.Read(a.words, uint(i)*a.bits, a.bits))
}

// setID stores a validated global id at index i.
func (a *BlockArray[B]) setID(i int, id uint32) {
	f, ok := a.enc.encode(id)
	if !ok {
		// New palette entry: make room for one more id first.
		a.repack(1)

		f, ok = a.enc.encode(id)
		if !ok {
			ind := a.enc.(*indirect)
			f = uint64(len(ind.ids))
			ind.ids = append(ind.ids, id)
		}
	}

	field.Write(a.words, uint(i)*a.bits, a.bits, f)
}

// repack moves the array to the encoding sized for reserve new palette
// entries on top of the current ones, or, with reserve 0, for the
// distinct ids actually present (in first seen order, palette rebuilt).
func (a *BlockArray[B]) repack(reserve int) {
	var ids []uint32
	var n int

	if reserve > 0 {
		ind, ok := a.enc.(*indirect)
		if !ok {
			// Direct fields hold any id already.
			return
		}

		ids = ind.ids
		n = len(ids) + reserve
	} else {
		ids = a.distinct()
		n = len(ids)
	}

	bits := field.MinWidth(uint64(n))

	var enc encoding
	switch {
	case bits <= maxPaletteBits:
		if bits < minBits {
			bits = minBits
		}

		enc = &indirect{ids: ids}
	default:
		bits = a.max
		enc = direct{}
	}

	if bits == a.bits {
		return
	}

	old := make([]uint32, Length)
	for i := range old {
		old[i] = a.id(i)
	}

	a.bits = bits
	a.words = make([]uint64, field.WordsFor(Length, bits))
	a.enc = enc

	// The rewrite cannot recurse: the new encoding already covers every
	// captured id.
	for i, id := range old {
		a.setID(i, id)
	}
}

// distinct returns the global ids present in the array, first seen first.
func (a *BlockArray[B]) distinct() []uint32 {
	seen := map[uint32]struct{}{}
	ids := []uint32{}

	for i := 0; i < Length; i++ {
		id := a.id(i)
		if _, ok := seen[id]; ok {
			continue
		}

		seen[id] = struct{}{}
		ids = append(ids, id)
	}

	return ids
}

// IsEmpty returns true when every cell holds global id 0. A palette that
// still carries ids no cell uses can make an empty array report false;
// call Repack first to shed stale entries. The other direction is exact:
// an array with any nonzero cell is never reported empty.
func (a *BlockArray[B]) IsEmpty() bool {
	if ids := a.enc.palette(); ids != nil {
		return len(ids) == 1 && ids[0] == 0
	}

	for _, w := range a.words {
		if w != 0 {
			return false
		}
	}

	return true
}

// Len returns the number of cells.
func (a *BlockArray[B]) Len() int {
	return Length
}

// Bits returns the current field width.
func (a *BlockArray[B]) Bits() uint {
	return a.bits
}

// Palette returns a copy of the id table in first use order, nil in
// direct mode.
func (a *BlockArray[B]) Palette() []uint32 {
	ids := a.enc.palette()
	if ids == nil {
		return nil
	}

	return append([]uint32(nil), ids...)
}

// Words returns the packed storage in index order. It is the live backing
// slice, handed out uncopied for serialization; treat it as read only.
func (a *BlockArray[B]) Words() []uint64 {
	return a.words
}
