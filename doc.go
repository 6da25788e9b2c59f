// Package ninep provides bounds-checked routines for parsing and
// producing the binary representation of 9P2000 wire types: unsigned
// little-endian integers, qids, length-prefixed byte strings, and
// stat structures.
//
// The ninep package is to be used for making higher-level 9P
// libraries. The routines within make very few assumptions or
// decisions, so that they may be used for a wide variety of
// higher-level packages.
//
// To minimize allocations, the ninep package does not decode values
// into structures. Instead, input is validated and then wrapped,
// in-place, by types such as Qid and Stat that provide access to
// individual fields. A value returned by a Read function aliases the
// buffer it was parsed from, and is only valid for as long as that
// buffer is.
//
// All parsing and production functions share a common form; a Read
// function takes a buffer and returns the parsed value along with
// the unconsumed remainder of the buffer, and a Put function writes
// a value to the front of a buffer and returns the remainder. On
// failure, the input buffer is returned unchanged, so that a failed
// call consumes nothing. This allows calls to be chained to parse
// or produce composite records without intermediate copies.
package ninep
