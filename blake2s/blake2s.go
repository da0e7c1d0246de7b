// Package blake2s implements the BLAKE2s hash algorithm described in RFC
// 7693, with support for keying and personalization. BLAKE2s operates on
// 32-bit words and produces digests of any size from 1 to 32 bytes.
package blake2s

import (
	"errors"
	"hash"

	"github.com/agentlans/libhsh/internal/wordops"
)

const (
	// Size is the maximum digest size, in bytes, BLAKE2s can produce.
	Size = 32
	// BlockSize is the block size, in bytes, BLAKE2s operates on.
	BlockSize = 64
	// maxKeySize is the largest key BLAKE2s accepts, in bytes.
	maxKeySize = 32
	// maxPersonalSize is the largest personalization string BLAKE2s
	// accepts, in bytes, using the direct h[6]/h[7] XOR placement this
	// package is adapted to use (see blake2b for the same choice).
	maxPersonalSize = 8
	rounds          = 10
)

var (
	// ErrKeySize is returned when New is given a key longer than the
	// maximum BLAKE2s key size.
	ErrKeySize = errors.New("blake2s: invalid key size")
	// ErrDigestSize is returned when New is asked for a digest size
	// outside the 1..32 byte range.
	ErrDigestSize = errors.New("blake2s: invalid digest size")
	// ErrPersonalSize is returned when New is given a personalization
	// string longer than 8 bytes.
	ErrPersonalSize = errors.New("blake2s: invalid personalization size")
)

var iv = [8]uint32{
	0x6a09e667, 0xbb67ae85,
	0x3c6ef372, 0xa54ff53a,
	0x510e527f, 0x9b05688c,
	0x1f83d9ab, 0x5be0cd19,
}

// sigma is the same ten-row message-word permutation schedule used by
// BLAKE2b; BLAKE2s's 10 rounds use each row exactly once.
var sigma = [10][16]byte{
	{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15},
	{14, 10, 4, 8, 9, 15, 13, 6, 1, 12, 0, 2, 11, 7, 5, 3},
	{11, 8, 12, 0, 5, 2, 15, 13, 10, 14, 3, 6, 7, 1, 9, 4},
	{7, 9, 3, 1, 13, 12, 11, 14, 2, 6, 5, 10, 4, 0, 15, 8},
	{9, 0, 5, 7, 2, 4, 10, 15, 14, 1, 11, 12, 6, 8, 3, 13},
	{2, 12, 6, 10, 0, 11, 8, 3, 4, 13, 7, 5, 15, 14, 1, 9},
	{12, 5, 1, 15, 14, 13, 4, 10, 0, 7, 6, 3, 9, 2, 8, 11},
	{13, 11, 7, 14, 12, 1, 3, 9, 5, 0, 15, 4, 8, 6, 2, 10},
	{6, 15, 14, 9, 11, 3, 0, 8, 12, 2, 13, 7, 1, 4, 10, 5},
	{10, 2, 8, 4, 7, 6, 1, 5, 15, 11, 9, 14, 3, 12, 13, 0},
}

// digest holds the running state of a BLAKE2s computation.
type digest struct {
	h          [8]uint32
	t0, t1     uint32
	buf        [BlockSize]byte
	buflen     int
	outputSize int

	initH    [8]uint32
	keyBlock []byte
}

// New returns a hash.Hash computing BLAKE2s with the given digest size (in
// bytes, 1..32). key may be nil or up to 32 bytes for keyed-hash (MAC) mode.
// personal may be nil or up to 8 bytes.
func New(size int, key, personal []byte) (hash.Hash, error) {
	if size <= 0 || size > Size {
		return nil, ErrDigestSize
	}
	if len(key) > maxKeySize {
		return nil, ErrKeySize
	}
	if len(personal) > maxPersonalSize {
		return nil, ErrPersonalSize
	}

	d := &digest{outputSize: size}

	d.initH = iv
	d.initH[0] ^= 0x01010000 ^ uint32(len(key))<<8 ^ uint32(size)
	if len(personal) > 0 {
		var buf [maxPersonalSize]byte
		copy(buf[:], personal)
		d.initH[6] ^= wordops.LE32(buf[0:4])
		d.initH[7] ^= wordops.LE32(buf[4:8])
	}

	if len(key) > 0 {
		d.keyBlock = make([]byte, BlockSize)
		copy(d.keyBlock, key)
	}

	d.Reset()
	return d, nil
}

func (d *digest) Reset() {
	d.h = d.initH
	d.t0, d.t1 = 0, 0
	d.buflen = 0
	if d.keyBlock != nil {
		d.write(d.keyBlock)
	}
}

func (d *digest) Size() int      { return d.outputSize }
func (d *digest) BlockSize() int { return BlockSize }

func (d *digest) addLen(n uint32) {
	t0 := d.t0 + n
	if t0 < d.t0 {
		d.t1++
	}
	d.t0 = t0
}

func (d *digest) compress(block []byte, last bool) {
	var m [16]uint32
	for i := range m {
		m[i] = wordops.LE32(block[i*4:])
	}

	v := [16]uint32{
		d.h[0], d.h[1], d.h[2], d.h[3],
		d.h[4], d.h[5], d.h[6], d.h[7],
		iv[0], iv[1], iv[2], iv[3],
		iv[4] ^ d.t0, iv[5] ^ d.t1, iv[6], iv[7],
	}
	if last {
		v[14] = ^v[14]
	}

	for r := 0; r < rounds; r++ {
		s := &sigma[r]
		g(&v, 0, 4, 8, 12, m[s[0]], m[s[1]])
		g(&v, 1, 5, 9, 13, m[s[2]], m[s[3]])
		g(&v, 2, 6, 10, 14, m[s[4]], m[s[5]])
		g(&v, 3, 7, 11, 15, m[s[6]], m[s[7]])
		g(&v, 0, 5, 10, 15, m[s[8]], m[s[9]])
		g(&v, 1, 6, 11, 12, m[s[10]], m[s[11]])
		g(&v, 2, 7, 8, 13, m[s[12]], m[s[13]])
		g(&v, 3, 4, 9, 14, m[s[14]], m[s[15]])
	}

	for i := 0; i < 8; i++ {
		d.h[i] ^= v[i] ^ v[i+8]
	}
}

// g is the BLAKE2s quarter-round mixing function (RFC 7693 section 3.1).
func g(v *[16]uint32, a, b, c, d int, x, y uint32) {
	v[a] = v[a] + v[b] + x
	v[d] = wordops.RotR32(v[d]^v[a], 16)
	v[c] = v[c] + v[d]
	v[b] = wordops.RotR32(v[b]^v[c], 12)
	v[a] = v[a] + v[b] + y
	v[d] = wordops.RotR32(v[d]^v[a], 8)
	v[c] = v[c] + v[d]
	v[b] = wordops.RotR32(v[b]^v[c], 7)
}

func (d *digest) write(p []byte) {
	for len(p) > 0 {
		space := BlockSize - d.buflen
		if len(p) <= space {
			d.buflen += copy(d.buf[d.buflen:], p)
			return
		}

		copy(d.buf[d.buflen:], p[:space])
		d.addLen(BlockSize)
		d.compress(d.buf[:], false)
		d.buflen = 0
		p = p[space:]
	}
}

func (d *digest) Write(p []byte) (int, error) {
	d.write(p)
	return len(p), nil
}

// Sum finalizes a clone of the live state, leaving the receiver untouched
// so the caller may continue writing after Sum, per hash.Hash's contract.
func (d *digest) Sum(in []byte) []byte {
	dup := *d

	var final [BlockSize]byte
	copy(final[:], dup.buf[:dup.buflen])
	dup.addLen(uint32(dup.buflen))
	dup.compress(final[:], true)

	out := make([]byte, dup.outputSize)
	for i := 0; i < dup.outputSize; i++ {
		out[i] = byte(dup.h[i/4] >> (8 * uint(i%4)))
	}
	return append(in, out...)
}
