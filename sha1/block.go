package sha1

import "github.com/agentlans/libhsh/internal/wordops"

const (
	k0 uint32 = 0x5a827999
	k1 uint32 = 0x6ed9eba1
	k2 uint32 = 0x8f1bbcdc
	k3 uint32 = 0xca62c1d6
)

// block runs the SHA-1 compression function over a whole number of 64-byte
// chunks taken from p.
func block(dig *digest, p []byte) {
	var w [80]uint32

	h0, h1, h2, h3, h4 := dig.h[0], dig.h[1], dig.h[2], dig.h[3], dig.h[4]
	for len(p) >= BlockSize {
		for i := 0; i < 16; i++ {
			w[i] = wordops.BE32(p[i*4:])
		}
		for i := 16; i < 80; i++ {
			tmp := w[i-3] ^ w[i-8] ^ w[i-14] ^ w[i-16]
			w[i] = wordops.RotL32(tmp, 1)
		}

		a, b, c, d, e := h0, h1, h2, h3, h4

		for i := 0; i < 20; i++ {
			f := (b & c) | (^b & d)
			a, b, c, d, e = wordops.RotL32(a, 5)+f+e+k0+w[i], a, wordops.RotL32(b, 30), c, d
		}
		for i := 20; i < 40; i++ {
			f := b ^ c ^ d
			a, b, c, d, e = wordops.RotL32(a, 5)+f+e+k1+w[i], a, wordops.RotL32(b, 30), c, d
		}
		for i := 40; i < 60; i++ {
			f := (b & c) | (b & d) | (c & d)
			a, b, c, d, e = wordops.RotL32(a, 5)+f+e+k2+w[i], a, wordops.RotL32(b, 30), c, d
		}
		for i := 60; i < 80; i++ {
			f := b ^ c ^ d
			a, b, c, d, e = wordops.RotL32(a, 5)+f+e+k3+w[i], a, wordops.RotL32(b, 30), c, d
		}

		h0 += a
		h1 += b
		h2 += c
		h3 += d
		h4 += e

		p = p[BlockSize:]
	}

	dig.h[0], dig.h[1], dig.h[2], dig.h[3], dig.h[4] = h0, h1, h2, h3, h4
}
