// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package sha3 implements the SHA3 hash algorithm (formerly called Keccak)
// chosen by NIST in 2012, as defined in FIPS 202.
//
// This file provides the fixed-output SHA3-224/256/384/512 digests as
// standard hash.Hash implementations. Writing input data, including
// padding, and reading output data are computed in this file. The internals
// of the Keccak-f permutation are computed in keccakf.go.
//
// This package implements only the four fixed-output SHA-3 digests, not the
// SHAKE extensible-output functions; those are an external-collaborator
// concern out of scope for this library (see SPEC_FULL.md).
//
// For the detailed specification, refer to the Keccak web site
// (http://keccak.noekeon.org/).
package sha3

import (
	"hash"

	"github.com/agentlans/libhsh/internal/wordops"
)

// rateMax is the largest rate, in bytes, used by any variant in this
// package (SHA3-224, the smallest-capacity and thus largest-rate variant).
const rateMax = 144

// digest represents the partial evaluation of a checksum.
//
// Unlike the teacher implementation this is adapted from, the residual
// buffer is a fixed [rateMax]byte array field rather than a heap slice
// reallocated on every absorption; see SPEC_FULL.md's design notes.
type digest struct {
	a          [25]uint64      // main state of the hash: 25 lanes of 64 bits
	buf        [rateMax]byte   // residual buffer, at most one rate's worth
	rate       int             // the number of bytes of state touched per block
	position   int             // valid bytes in buf
	outputSize int             // digest size in bytes
	dsbyte     byte            // the domain separator byte (0x06 for SHA-3)
}

// Reset clears the internal state back to all-zero, as required to start a
// fresh absorption.
func (d *digest) Reset() {
	d.a = [25]uint64{}
	d.buf = [rateMax]byte{}
	d.position = 0
}

// BlockSize returns the rate of the sponge underlying this hash function,
// the number of bytes absorbed or squeezed per permutation.
func (d *digest) BlockSize() int { return d.rate }

// Size returns the output size of the hash function in bytes.
func (d *digest) Size() int { return d.outputSize }

// absorbBlock xors one rate-sized block, given as 64-bit little-endian
// lanes, into the sponge state and applies the permutation.
func (d *digest) absorbBlock(block []byte) {
	lanes := d.rate / 8
	for i := 0; i < lanes; i++ {
		d.a[i] ^= wordops.LE64(block[i*8:])
	}
	keccakF(&d.a)
}

// Write absorbs bytes into the sponge, applying the permutation whenever a
// full rate's worth of input has been buffered.
func (d *digest) Write(p []byte) (n int, err error) {
	n = len(p)
	if d.position > 0 {
		taken := copy(d.buf[d.position:d.rate], p)
		d.position += taken
		p = p[taken:]
		if d.position == d.rate {
			d.absorbBlock(d.buf[:d.rate])
			d.position = 0
		}
	}
	for len(p) >= d.rate {
		d.absorbBlock(p[:d.rate])
		p = p[d.rate:]
	}
	if len(p) > 0 {
		d.position = copy(d.buf[:], p)
	}
	return n, nil
}

// pad applies the SHA-3 multi-rate "pad10*1" rule with the domain
// separation byte folded into the first pad byte.
func (d *digest) pad() {
	for i := d.position; i < d.rate; i++ {
		d.buf[i] = 0
	}
	d.buf[d.position] ^= d.dsbyte
	d.buf[d.rate-1] ^= 0x80
}

// Sum applies padding to a clone of the live state and squeezes out the
// digest, leaving the original, still-absorbing state untouched so the
// caller can keep writing after calling Sum (matching hash.Hash's
// documented contract).
func (d *digest) Sum(in []byte) []byte {
	dup := *d
	dup.pad()
	dup.absorbBlock(dup.buf[:dup.rate])

	out := make([]byte, dup.outputSize)
	copied := 0
	for copied < dup.outputSize {
		for i := 0; i < dup.rate/8 && copied < dup.outputSize; i++ {
			var lane [8]byte
			wordops.PutLE64(lane[:], dup.a[i])
			n := copy(out[copied:], lane[:])
			copied += n
		}
		if copied < dup.outputSize {
			keccakF(&dup.a)
		}
	}
	return append(in, out...)
}

// newDigest builds a digest for the given output size in bits; capacity is
// fixed at 2*outputSize per the Keccak recommendation NIST adopted for
// SHA-3's fixed-output variants.
func newDigest(outputBits int) *digest {
	outputSize := outputBits / 8
	return &digest{
		outputSize: outputSize,
		rate:       200 - 2*outputSize,
		dsbyte:     0x06,
	}
}

// New224 returns a new hash.Hash computing the SHA3-224 checksum.
func New224() hash.Hash { return newDigest(224) }

// New256 returns a new hash.Hash computing the SHA3-256 checksum.
func New256() hash.Hash { return newDigest(256) }

// New384 returns a new hash.Hash computing the SHA3-384 checksum.
func New384() hash.Hash { return newDigest(384) }

// New512 returns a new hash.Hash computing the SHA3-512 checksum.
func New512() hash.Hash { return newDigest(512) }

// Sum224 returns the SHA3-224 checksum of data.
func Sum224(data []byte) [28]byte {
	d := newDigest(224)
	d.Write(data)
	var out [28]byte
	copy(out[:], d.Sum(nil))
	return out
}

// Sum256 returns the SHA3-256 checksum of data.
func Sum256(data []byte) [32]byte {
	d := newDigest(256)
	d.Write(data)
	var out [32]byte
	copy(out[:], d.Sum(nil))
	return out
}

// Sum384 returns the SHA3-384 checksum of data.
func Sum384(data []byte) [48]byte {
	d := newDigest(384)
	d.Write(data)
	var out [48]byte
	copy(out[:], d.Sum(nil))
	return out
}

// Sum512 returns the SHA3-512 checksum of data.
func Sum512(data []byte) [64]byte {
	d := newDigest(512)
	d.Write(data)
	var out [64]byte
	copy(out[:], d.Sum(nil))
	return out
}
