package sha2

import "github.com/agentlans/libhsh/internal/wordops"

var init256 = [8]uint32{
	0x6a09e667, 0xbb67ae85, 0x3c6ef372, 0xa54ff53a,
	0x510e527f, 0x9b05688c, 0x1f83d9ab, 0x5be0cd19,
}

var init224 = [8]uint32{
	0xc1059ed8, 0x367cd507, 0x3070dd17, 0xf70e5939,
	0xffc00b31, 0x68581511, 0x64f98fa7, 0xbefa4fa4,
}

var k256 = [64]uint32{
	0x428a2f98, 0x71374491, 0xb5c0fbcf, 0xe9b5dba5,
	0x3956c25b, 0x59f111f1, 0x923f82a4, 0xab1c5ed5,
	0xd807aa98, 0x12835b01, 0x243185be, 0x550c7dc3,
	0x72be5d74, 0x80deb1fe, 0x9bdc06a7, 0xc19bf174,
	0xe49b69c1, 0xefbe4786, 0x0fc19dc6, 0x240ca1cc,
	0x2de92c6f, 0x4a7484aa, 0x5cb0a9dc, 0x76f988da,
	0x983e5152, 0xa831c66d, 0xb00327c8, 0xbf597fc7,
	0xc6e00bf3, 0xd5a79147, 0x06ca6351, 0x14292967,
	0x27b70a85, 0x2e1b2138, 0x4d2c6dfc, 0x53380d13,
	0x650a7354, 0x766a0abb, 0x81c2c92e, 0x92722c85,
	0xa2bfe8a1, 0xa81a664b, 0xc24b8b70, 0xc76c51a3,
	0xd192e819, 0xd6990624, 0xf40e3585, 0x106aa070,
	0x19a4c116, 0x1e376c08, 0x2748774c, 0x34b0bcb5,
	0x391c0cb3, 0x4ed8aa4a, 0x5b9cca4f, 0x682e6ff3,
	0x748f82ee, 0x78a5636f, 0x84c87814, 0x8cc70208,
	0x90befffa, 0xa4506ceb, 0xbef9a3f7, 0xc67178f2,
}

// digest32 is the partial evaluation of a SHA-224/SHA-256 checksum.
type digest32 struct {
	h     [8]uint32
	x     [BlockSize256]byte
	nx    int
	len   uint64
	is224 bool
}

func (d *digest32) Reset() {
	if d.is224 {
		d.h = init224
	} else {
		d.h = init256
	}
	d.nx = 0
	d.len = 0
}

func (d *digest32) Size() int {
	if d.is224 {
		return Size224
	}
	return Size256
}

func (d *digest32) BlockSize() int { return BlockSize256 }

func (d *digest32) Write(p []byte) (nn int, err error) {
	nn = len(p)
	d.len += uint64(nn)
	if d.nx > 0 {
		n := copy(d.x[d.nx:], p)
		d.nx += n
		if d.nx == BlockSize256 {
			block32(d, d.x[:])
			d.nx = 0
		}
		p = p[n:]
	}
	if len(p) >= BlockSize256 {
		n := len(p) &^ (BlockSize256 - 1)
		block32(d, p[:n])
		p = p[n:]
	}
	if len(p) > 0 {
		d.nx = copy(d.x[:], p)
	}
	return
}

func (d *digest32) Sum(in []byte) []byte {
	d0 := *d
	return append(in, d0.checkSum()...)
}

func (d *digest32) checkSum() []byte {
	len := d.len
	var tmp [64]byte
	tmp[0] = 0x80
	if len%64 < 56 {
		d.Write(tmp[0 : 56-len%64])
	} else {
		d.Write(tmp[0 : 64+56-len%64])
	}

	len <<= 3
	wordops.PutBE64(tmp[:8], len)
	d.Write(tmp[0:8])

	if d.nx != 0 {
		panic("d.nx != 0")
	}

	digest := make([]byte, Size256)
	for i, s := range d.h {
		wordops.PutBE32(digest[i*4:], s)
	}

	if d.is224 {
		return digest[:Size224]
	}
	return digest
}

func sigma0_256(x uint32) uint32 {
	return wordops.RotR32(x, 7) ^ wordops.RotR32(x, 18) ^ (x >> 3)
}

func sigma1_256(x uint32) uint32 {
	return wordops.RotR32(x, 17) ^ wordops.RotR32(x, 19) ^ (x >> 10)
}

func bigSigma0_256(x uint32) uint32 {
	return wordops.RotR32(x, 2) ^ wordops.RotR32(x, 13) ^ wordops.RotR32(x, 22)
}

func bigSigma1_256(x uint32) uint32 {
	return wordops.RotR32(x, 6) ^ wordops.RotR32(x, 11) ^ wordops.RotR32(x, 25)
}

// block32 runs the 32-bit-word SHA-2 compression function over a whole
// number of 64-byte chunks taken from p.
func block32(dig *digest32, p []byte) {
	var w [64]uint32

	h0, h1, h2, h3 := dig.h[0], dig.h[1], dig.h[2], dig.h[3]
	h4, h5, h6, h7 := dig.h[4], dig.h[5], dig.h[6], dig.h[7]

	for len(p) >= BlockSize256 {
		for i := 0; i < 16; i++ {
			w[i] = wordops.BE32(p[i*4:])
		}
		for i := 16; i < 64; i++ {
			w[i] = w[i-16] + sigma0_256(w[i-15]) + w[i-7] + sigma1_256(w[i-2])
		}

		a, b, c, d, e, f, g, h := h0, h1, h2, h3, h4, h5, h6, h7

		for i := 0; i < 64; i++ {
			ch := (e & f) ^ (^e & g)
			t1 := h + bigSigma1_256(e) + ch + k256[i] + w[i]
			maj := (a & b) ^ (a & c) ^ (b & c)
			t2 := bigSigma0_256(a) + maj

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

		p = p[BlockSize256:]
	}

	dig.h[0], dig.h[1], dig.h[2], dig.h[3] = h0, h1, h2, h3
	dig.h[4], dig.h[5], dig.h[6], dig.h[7] = h4, h5, h6, h7
}
