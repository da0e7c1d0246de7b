// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sha3

import "math/bits"

// rc holds the 24 round constants for the ι step of Keccak-f[1600], as
// defined by FIPS 202 section 3.2.5.
var rc = [24]uint64{
	0x0000000000000001, 0x0000000000008082, 0x800000000000808a, 0x8000000080008000,
	0x000000000000808b, 0x0000000080000001, 0x8000000080008081, 0x8000000000008009,
	0x000000000000008a, 0x0000000000000088, 0x0000000080008009, 0x000000008000000a,
	0x000000008000808b, 0x800000000000008b, 0x8000000000008089, 0x8000000000008003,
	0x8000000000008002, 0x8000000000000080, 0x000000000000800a, 0x800000008000000a,
	0x8000000080008081, 0x8000000000008080, 0x0000000080000001, 0x8000000080008008,
}

// rotc holds the rotation offset, in bits, applied to lane A[x+5y] by the ρ
// step, indexed the same way as the state array.
var rotc = [25]int{
	0, 1, 62, 28, 27,
	36, 44, 6, 55, 20,
	3, 10, 43, 25, 39,
	41, 45, 15, 21, 8,
	18, 2, 61, 56, 14,
}

// piIndex[i] gives the lane position that the rotated value of lane i moves
// to under the π step: B[y, (2x+3y) mod 5] = rotate(A[x,y]), so for old
// linear index i = x+5y, piIndex[i] = y + 5*((2x+3y) mod 5).
var piIndex = [25]int{
	0, 10, 20, 5, 15,
	16, 1, 11, 21, 6,
	7, 17, 2, 12, 22,
	23, 8, 18, 3, 13,
	14, 24, 9, 19, 4,
}

// keccakF applies the 24-round Keccak-f[1600] permutation to the state a,
// in place. a is indexed a[x+5y], matching FIPS 202's lane numbering.
func keccakF(a *[25]uint64) {
	var b [25]uint64
	var c [5]uint64
	var d [5]uint64

	for round := 0; round < 24; round++ {
		// θ: compute column parities and XOR them back across each column.
		for x := 0; x < 5; x++ {
			c[x] = a[x] ^ a[x+5] ^ a[x+10] ^ a[x+15] ^ a[x+20]
		}
		for x := 0; x < 5; x++ {
			d[x] = c[(x+4)%5] ^ bits.RotateLeft64(c[(x+1)%5], 1)
		}
		for x := 0; x < 5; x++ {
			for y := 0; y < 5; y++ {
				a[x+5*y] ^= d[x]
			}
		}

		// ρ and π: rotate each lane and permute lane positions.
		for i := 0; i < 25; i++ {
			b[piIndex[i]] = bits.RotateLeft64(a[i], rotc[i])
		}

		// χ: mix each row through the nonlinear AND/NOT combination.
		for y := 0; y < 5; y++ {
			row := y * 5
			for x := 0; x < 5; x++ {
				a[row+x] = b[row+x] ^ (^b[row+(x+1)%5] & b[row+(x+2)%5])
			}
		}

		// ι: XOR the round constant into lane (0,0).
		a[0] ^= rc[round]
	}
}
