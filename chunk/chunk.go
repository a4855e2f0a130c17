package chunk

import "github.com/zeebo/errs"

// Length is the number of cells in a section array (a 16x16x16 cube).
const Length = 4096

// LightBytes is the storage size of a LightArray: two cells per byte.
const LightBytes = Length / 2

const (
	minBits        = 4  // narrowest packing; also the floor for MaxBits
	maxPaletteBits = 8  // widest packing that still indexes a palette
	maxIDBits      = 32 // global ids are uint32
)

var (
	// ErrIndexRange is returned when a cell index is outside [0, Length).
	ErrIndexRange = errs.Class("index out of range")

	// ErrValueRange is returned when a value cannot be represented: a
	// light level above 15 or a global id wider than the registry's
	// maximum width.
	ErrValueRange = errs.Class("value out of range")

	// ErrBadRegistry is returned by the constructors when the registry
	// is unusable.
	ErrBadRegistry = errs.Class("invalid registry")

	// ErrBadArray is returned by the Load functions when the serialized
	// parts are inconsistent.
	ErrBadArray = errs.Class("malformed array")
)
