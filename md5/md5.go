// Package md5 implements the MD5 hash algorithm as defined in RFC 1321.
//
// MD5 is cryptographically broken and should not be used for secure
// applications. It is provided here for completeness and interoperability
// with legacy formats.
package md5

import (
	"hash"

	"github.com/agentlans/libhsh/internal/wordops"
)

// Size is the size, in bytes, of an MD5 checksum.
const Size = 16

// BlockSize is the block size, in bytes, of the MD5 hash function.
const BlockSize = 64

const (
	init0 uint32 = 0x67452301
	init1 uint32 = 0xefcdab89
	init2 uint32 = 0x98badcfe
	init3 uint32 = 0x10325476
)

// digest represents the partial evaluation of an MD5 checksum.
type digest struct {
	h   [4]uint32
	x   [BlockSize]byte
	nx  int
	len uint64
}

// New returns a new hash.Hash computing the MD5 checksum.
func New() hash.Hash {
	d := new(digest)
	d.Reset()
	return d
}

func (d *digest) Reset() {
	d.h[0], d.h[1], d.h[2], d.h[3] = init0, init1, init2, init3
	d.nx = 0
	d.len = 0
}

func (d *digest) Size() int { return Size }

func (d *digest) BlockSize() int { return BlockSize }

func (d *digest) Write(p []byte) (nn int, err error) {
	nn = len(p)
	d.len += uint64(nn)
	if d.nx > 0 {
		n := copy(d.x[d.nx:], p)
		d.nx += n
		if d.nx == BlockSize {
			block(d, d.x[:])
			d.nx = 0
		}
		p = p[n:]
	}
	if len(p) >= BlockSize {
		n := len(p) &^ (BlockSize - 1)
		block(d, p[:n])
		p = p[n:]
	}
	if len(p) > 0 {
		d.nx = copy(d.x[:], p)
	}
	return
}

func (d *digest) Sum(in []byte) []byte {
	// Make a copy so that the caller can keep writing and summing.
	d0 := *d
	hash := d0.checkSum()
	return append(in, hash[:]...)
}

func (d *digest) checkSum() [Size]byte {
	// Append 0x80, then zero-pad until 56 bytes (mod 64) are filled.
	len := d.len
	var tmp [64]byte
	tmp[0] = 0x80
	if len%64 < 56 {
		d.Write(tmp[0 : 56-len%64])
	} else {
		d.Write(tmp[0 : 64+56-len%64])
	}

	// Length in bits, little-endian.
	len <<= 3
	wordops.PutLE64(tmp[:8], len)
	d.Write(tmp[0:8])

	if d.nx != 0 {
		panic("d.nx != 0")
	}

	var digest [Size]byte
	wordops.PutLE32(digest[0:], d.h[0])
	wordops.PutLE32(digest[4:], d.h[1])
	wordops.PutLE32(digest[8:], d.h[2])
	wordops.PutLE32(digest[12:], d.h[3])
	return digest
}

// Sum returns the MD5 checksum of data.
func Sum(data []byte) [Size]byte {
	d := digest{}
	d.Reset()
	d.Write(data)
	return d.checkSum()
}
