package sha2

import (
	"math/bits"

	"github.com/agentlans/libhsh/internal/wordops"
)

var init512 = [8]uint64{
	0x6a09e667f3bcc908, 0xbb67ae8584caa73b,
	0x3c6ef372fe94f82b, 0xa54ff53a5f1d36f1,
	0x510e527fade682d1, 0x9b05688c2b3e6c1f,
	0x1f83d9abfb41bd6b, 0x5be0cd19137e2179,
}

var init384 = [8]uint64{
	0xcbbb9d5dc1059ed8, 0x629a292a367cd507,
	0x9159015a3070dd17, 0x152fecd8f70e5939,
	0x67332667ffc00b31, 0x8eb44a8768581511,
	0xdb0c2e0d64f98fa7, 0x47b5481dbefa4fa4,
}

var k512 = [80]uint64{
	0x428a2f98d728ae22, 0x7137449123ef65cd, 0xb5c0fbcfec4d3b2f, 0xe9b5dba58189dbbc,
	0x3956c25bf348b538, 0x59f111f1b605d019, 0x923f82a4af194f9b, 0xab1c5ed5da6d8118,
	0xd807aa98a3030242, 0x12835b0145706fbe, 0x243185be4ee4b28c, 0x550c7dc3d5ffb4e2,
	0x72be5d74f27b896f, 0x80deb1fe3b1696b1, 0x9bdc06a725c71235, 0xc19bf174cf692694,
	0xe49b69c19ef14ad2, 0xefbe4786384f25e3, 0x0fc19dc68b8cd5b5, 0x240ca1cc77ac9c65,
	0x2de92c6f592b0275, 0x4a7484aa6ea6e483, 0x5cb0a9dcbd41fbd4, 0x76f988da831153b5,
	0x983e5152ee66dfab, 0xa831c66d2db43210, 0xb00327c898fb213f, 0xbf597fc7beef0ee4,
	0xc6e00bf33da88fc2, 0xd5a79147930aa725, 0x06ca6351e003826f, 0x142929670a0e6e70,
	0x27b70a8546d22ffc, 0x2e1b21385c26c926, 0x4d2c6dfc5ac42aed, 0x53380d139d95b3df,
	0x650a73548baf63de, 0x766a0abb3c77b2a8, 0x81c2c92e47edaee6, 0x92722c851482353b,
	0xa2bfe8a14cf10364, 0xa81a664bbc423001, 0xc24b8b70d0f89791, 0xc76c51a30654be30,
	0xd192e819d6ef5218, 0xd69906245565a910, 0xf40e35855771202a, 0x106aa07032bbd1b8,
	0x19a4c116b8d2d0c8, 0x1e376c085141ab53, 0x2748774cdf8eeb99, 0x34b0bcb5e19b48a8,
	0x391c0cb3c5c95a63, 0x4ed8aa4ae3418acb, 0x5b9cca4f7763e373, 0x682e6ff3d6b2b8a3,
	0x748f82ee5defb2fc, 0x78a5636f43172f60, 0x84c87814a1f0ab72, 0x8cc702081a6439ec,
	0x90befffa23631e28, 0xa4506cebde82bde9, 0xbef9a3f7b2c67915, 0xc67178f2e372532b,
	0xca273eceea26619c, 0xd186b8c721c0c207, 0xeada7dd6cde0eb1e, 0xf57d4f7fee6ed178,
	0x06f067aa72176fba, 0x0a637dc5a2c898a6, 0x113f9804bef90dae, 0x1b710b35131c471b,
	0x28db77f523047d84, 0x32caab7b40c72493, 0x3c9ebe0a15c9bebc, 0x431d67c49c100d4c,
	0x4cc5d4becb3e42b6, 0x597f299cfc657e2a, 0x5fcb6fab3ad6faec, 0x6c44198c4a475817,
}

// digest64 is the partial evaluation of a SHA-384/SHA-512 checksum.
//
// The message length is tracked as a genuine 128-bit byte count (lenHi,
// lenLo), unlike the 64-bit counter the teacher's distilled source used,
// which is only correct below 2^61 bytes of input.
type digest64 struct {
	h     [8]uint64
	x     [BlockSize512]byte
	nx    int
	lenLo uint64
	lenHi uint64
	is384 bool
}

func (d *digest64) Reset() {
	if d.is384 {
		d.h = init384
	} else {
		d.h = init512
	}
	d.nx = 0
	d.lenLo, d.lenHi = 0, 0
}

func (d *digest64) Size() int {
	if d.is384 {
		return Size384
	}
	return Size512
}

func (d *digest64) BlockSize() int { return BlockSize512 }

func (d *digest64) addLen(n uint64) {
	lo, carry := bits.Add64(d.lenLo, n, 0)
	d.lenLo = lo
	d.lenHi += carry
}

func (d *digest64) Write(p []byte) (nn int, err error) {
	nn = len(p)
	d.addLen(uint64(nn))
	if d.nx > 0 {
		n := copy(d.x[d.nx:], p)
		d.nx += n
		if d.nx == BlockSize512 {
			block64(d, d.x[:])
			d.nx = 0
		}
		p = p[n:]
	}
	if len(p) >= BlockSize512 {
		n := len(p) &^ (BlockSize512 - 1)
		block64(d, p[:n])
		p = p[n:]
	}
	if len(p) > 0 {
		d.nx = copy(d.x[:], p)
	}
	return
}

func (d *digest64) Sum(in []byte) []byte {
	d0 := *d
	return append(in, d0.checkSum()...)
}

func (d *digest64) checkSum() []byte {
	lenLo, lenHi := d.lenLo, d.lenHi
	var tmp [128]byte
	tmp[0] = 0x80
	if lenLo%128 < 112 {
		d.Write(tmp[0 : 112-lenLo%128])
	} else {
		d.Write(tmp[0 : 128+112-lenLo%128])
	}

	// Append the 128-bit bit-length, big-endian. Shift the 128-bit byte
	// count left by 3 to get a bit count, carrying across the hi/lo split.
	bitsHi := lenHi<<3 | lenLo>>61
	bitsLo := lenLo << 3
	wordops.PutBE64(tmp[:8], bitsHi)
	wordops.PutBE64(tmp[8:16], bitsLo)
	d.Write(tmp[0:16])

	if d.nx != 0 {
		panic("d.nx != 0")
	}

	digest := make([]byte, Size512)
	for i, s := range d.h {
		wordops.PutBE64(digest[i*8:], s)
	}

	if d.is384 {
		return digest[:Size384]
	}
	return digest
}

func sigma0_512(x uint64) uint64 {
	return wordops.RotR64(x, 1) ^ wordops.RotR64(x, 8) ^ (x >> 7)
}

func sigma1_512(x uint64) uint64 {
	return wordops.RotR64(x, 19) ^ wordops.RotR64(x, 61) ^ (x >> 6)
}

func bigSigma0_512(x uint64) uint64 {
	return wordops.RotR64(x, 28) ^ wordops.RotR64(x, 34) ^ wordops.RotR64(x, 39)
}

func bigSigma1_512(x uint64) uint64 {
	return wordops.RotR64(x, 14) ^ wordops.RotR64(x, 18) ^ wordops.RotR64(x, 41)
}

// block64 runs the 64-bit-word SHA-2 compression function over a whole
// number of 128-byte chunks taken from p.
func block64(dig *digest64, p []byte) {
	var w [80]uint64

	h0, h1, h2, h3 := dig.h[0], dig.h[1], dig.h[2], dig.h[3]
	h4, h5, h6, h7 := dig.h[4], dig.h[5], dig.h[6], dig.h[7]

	for len(p) >= BlockSize512 {
		for i := 0; i < 16; i++ {
			w[i] = wordops.BE64(p[i*8:])
		}
		for i := 16; i < 80; i++ {
			w[i] = w[i-16] + sigma0_512(w[i-15]) + w[i-7] + sigma1_512(w[i-2])
		}

		a, b, c, d, e, f, g, h := h0, h1, h2, h3, h4, h5, h6, h7

		for i := 0; i < 80; i++ {
			ch := (e & f) ^ (^e & g)
			t1 := h + bigSigma1_512(e) + ch + k512[i] + w[i]
			maj := (a & b) ^ (a & c) ^ (b & c)
			t2 := bigSigma0_512(a) + maj

			h, g, f, e = g, f, e, d+t1
			d, c, b, a = c, b, a, t1+t2
		}

		h0 += a
		h1 += b
		h2 += c
		h3 += d
		h4 += e
		h5 += f
		h6 += g
		h7 += h

		p = p[BlockSize512:]
	}

	dig.h[0], dig.h[1], dig.h[2], dig.h[3] = h0, h1, h2, h3
	dig.h[4], dig.h[5], dig.h[6], dig.h[7] = h4, h5, h6, h7
}
