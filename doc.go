// Package quarry provides palette packed chunk storage primitives.
//
// The chunk package holds the arrays themselves: a block array that packs
// global block ids at an adaptive field width behind a palette, and a
// four bit light array. The registry package supplies the id to block
// translations the block array delegates to, and the field package is the
// shared bit field layout underneath.
//
// The module is storage only. Framing, compression and transport of the
// serialized parts belong to the protocol layer above it.
package quarry
