// Package registry provides block registries: the id to block
// translations a chunk.BlockArray delegates to.
//
// Three translations cover the common cases:
//
//	| registry | block type | global id                       |
//	|----------|------------|---------------------------------|
//	| Opaque   | uint32     | the block itself                |
//	| BitShift | Block      | ID<<4 + Meta                    |
//	| Lookup   | string     | position in registration order  |
//
// Opaque is for callers that already hold global ids. BitShift is the
// arithmetic scheme of pre flattening block formats, where a block is a
// base id plus four bits of metadata. Lookup assigns ids to names as they
// are registered; ids are dense, so a Lookup backed array never sees a
// gap, and decoding an unregistered id fails with ErrUnknownID.
//
// All three report the field width for direct mode through MaxBits; it
// must be at least 4 and wide enough for every id the registry can hand
// out.
package registry
