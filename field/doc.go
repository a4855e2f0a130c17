// Package field provides the fundamental packed field layout.
//
// Values are stored as fixed width bit fields packed back to back into
// 64 bit words, least significant bit first. Nothing is wasted on
// alignment: when a field does not fit in the space left at the top of a
// word it continues in the bottom of the next one.
//
// # Layout
//
// With a width of 5 the first fields of an array land as follows (bit 0
// is the least significant bit of word 0):
//
//	| word | bits  || field               |
//	|------|-------||---------------------|
//	| 0    | 0-4   || 0                   |
//	| 0    | 5-9   || 1                   |
//	| ...  | ...   || ...                 |
//	| 0    | 55-59 || 11                  |
//	| 0    | 60-63 || 12 (low four bits)  |
//	| 1    | 0     || 12 (high bit)       |
//	| 1    | 1-5   || 13                  |
//
// Field n therefore starts at bit offset n*width and is read or written
// through at most two words. The split is chosen by comparing the word
// index of the field's first and last bit; the single word case keeps all
// shifts strictly below 64.
//
// The functions here are pure and do no bounds checking. The burden of
// knowledge is on the caller: offsets must address fields that exist in
// the word slice and widths must be between 1 and 64.
package field
