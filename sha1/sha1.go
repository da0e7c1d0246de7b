// Package sha1 implements the SHA-1 hash algorithm as defined in FIPS 180-4.
//
// SHA-1 is cryptographically broken and should not be used for secure
// applications. It is provided here for completeness and interoperability
// with legacy formats.
package sha1

import (
	"hash"

	"github.com/agentlans/libhsh/internal/wordops"
)

// Size is the size, in bytes, of a SHA-1 checksum.
const Size = 20

// BlockSize is the block size, in bytes, of the SHA-1 hash function.
const BlockSize = 64

const (
	init0 uint32 = 0x67452301
	init1 uint32 = 0xefcdab89
	init2 uint32 = 0x98badcfe
	init3 uint32 = 0x10325476
	init4 uint32 = 0xc3d2e1f0
)

// digest represents the partial evaluation of a SHA-1 checksum.
type digest struct {
	h   [5]uint32
	x   [BlockSize]byte
	nx  int
	len uint64
}

// New returns a new hash.Hash computing the SHA-1 checksum.
func New() hash.Hash {
	d := new(digest)
	d.Reset()
	return d
}

func (d *digest) Reset() {
	d.h[0], d.h[1], d.h[2], d.h[3], d.h[4] = init0, init1, init2, init3, init4
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
	d0 := *d
	hash := d0.checkSum()
	return append(in, hash[:]...)
}

func (d *digest) checkSum() [Size]byte {
	len := d.len
	var tmp [64]byte
	tmp[0] = 0x80
	if len%64 < 56 {
		d.Write(tmp[0 : 56-len%64])
	} else {
		d.Write(tmp[0 : 64+56-len%64])
	}

	// Length in bits, big-endian.
	len <<= 3
	wordops.PutBE64(tmp[:8], len)
	d.Write(tmp[0:8])

	if d.nx != 0 {
		panic("d.nx != 0")
	}

	var digest [Size]byte
	wordops.PutBE32(digest[0:], d.h[0])
	wordops.PutBE32(digest[4:], d.h[1])
	wordops.PutBE32(digest[8:], d.h[2])
	wordops.PutBE32(digest[12:], d.h[3])
	wordops.PutBE32(digest[16:], d.h[4])
	return digest
}

// Sum returns the SHA-1 checksum of data.
func Sum(data []byte) [Size]byte {
	d := digest{}
	d.Reset()
	d.Write(data)
	return d.checkSum()
}
