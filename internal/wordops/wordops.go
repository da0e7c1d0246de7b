// Package wordops provides the rotate and endian-aware word packing
// primitives shared by every hash engine in this module. Each engine keeps
// its own compression loop, but all of them bottom out in these few
// functions rather than reimplementing byte shuffling by hand.
package wordops

import (
	"encoding/binary"
	"math/bits"
)

// RotL32 rotates a 32-bit word left by n bits.
func RotL32(x uint32, n int) uint32 { return bits.RotateLeft32(x, n) }

// RotR32 rotates a 32-bit word right by n bits.
func RotR32(x uint32, n int) uint32 { return bits.RotateLeft32(x, -n) }

// RotL64 rotates a 64-bit word left by n bits.
func RotL64(x uint64, n int) uint64 { return bits.RotateLeft64(x, n) }

// RotR64 rotates a 64-bit word right by n bits.
func RotR64(x uint64, n int) uint64 { return bits.RotateLeft64(x, -n) }

// BE32 reads a big-endian 32-bit word, as used by SHA-1, SHA-2, and SHA-3's
// digest output.
func BE32(b []byte) uint32 { return binary.BigEndian.Uint32(b) }

// PutBE32 writes a big-endian 32-bit word.
func PutBE32(b []byte, v uint32) { binary.BigEndian.PutUint32(b, v) }

// BE64 reads a big-endian 64-bit word.
func BE64(b []byte) uint64 { return binary.BigEndian.Uint64(b) }

// PutBE64 writes a big-endian 64-bit word.
func PutBE64(b []byte, v uint64) { binary.BigEndian.PutUint64(b, v) }

// LE32 reads a little-endian 32-bit word, as used by MD5 and BLAKE2s.
func LE32(b []byte) uint32 { return binary.LittleEndian.Uint32(b) }

// PutLE32 writes a little-endian 32-bit word.
func PutLE32(b []byte, v uint32) { binary.LittleEndian.PutUint32(b, v) }

// LE64 reads a little-endian 64-bit word, as used by SHA-3's internal lane
// state and BLAKE2b.
func LE64(b []byte) uint64 { return binary.LittleEndian.Uint64(b) }

// PutLE64 writes a little-endian 64-bit word.
func PutLE64(b []byte, v uint64) { binary.LittleEndian.PutUint64(b, v) }
