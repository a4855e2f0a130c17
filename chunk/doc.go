// Package chunk provides the dense per section arrays for block and light
// data: a palette packed block array and a nibble packed light array, both
// over 4096 cells (a 16x16x16 section).
//
// # Block Array
//
// Every cell logically holds a global block id, but ids are stored as
// fixed width bit fields packed least significant bit first into 64 bit
// words (see the field package for the exact layout). The field width
// adapts to the number of distinct ids the array has seen:
//
//	| palette entries | width   | mode     || field holds   |
//	|-----------------|---------|----------||---------------|
//	| up to 16        | 4       | indirect || palette index |
//	| 17 to 256       | 5-8     | indirect || palette index |
//	| more            | MaxBits | direct   || the global id |
//
// In indirect mode the palette lists global ids in first use order and
// fields index into it. In direct mode there is no palette: fields are
// the ids themselves at the registry's maximum width, so any valid id
// fits without further bookkeeping.
//
// Width changes are amortized. A write of an id the palette does not know
// first repacks the array with one entry of headroom, which widens the
// fields only when the grown palette no longer fits the current width.
// Repack without headroom is the shrinking direction: it rebuilds the
// palette from the ids actually present and rewrites the array at their
// minimum width, collapsing a direct array back to a palette when few
// distinct ids remain. Either way a repack that lands on the current
// width is a no-op.
//
// A new array is empty: four bit fields, a one entry palette holding id
// 0, all cells zero.
//
// # Light Array
//
// Light levels are four bits, stored two to a byte:
//
//	| cell   | byte | bits         |
//	|--------|------|--------------|
//	| even n | n/2  | 0-3 (low)    |
//	| odd n  | n/2  | 4-7 (high)   |
//
// # Serialization
//
// Neither array does I/O. The accessors expose exactly the parts a wire
// codec frames: for blocks the width, the palette (present only in
// indirect mode, ids in palette order) and the words in index order; for
// light the 2048 bytes in index order. The Load functions accept the same
// parts back and validate their shape before constructing the array.
//
// Neither array is safe for concurrent use; callers serialize access.
package chunk
