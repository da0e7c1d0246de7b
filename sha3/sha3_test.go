// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sha3

// These are a subset of the FIPS 202 known-answer vectors for SHA3-224,
// SHA3-256, SHA3-384, and SHA3-512.

import (
	"encoding/hex"
	"hash"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/agentlans/libhsh/internal/hashtest"
)

func TestKnownAnswer224(t *testing.T) {
	for _, v := range []struct{ in, out string }{
		{"", "6b4e03423667dbb73b6e15454f0eb1abd4597f9a1b078e3f5b5a6bc7"},
		{"abc", "e642824c3f8cf24ad09234ee7d3c766fc9a3a5168d0c94ad73b46fdf"},
	} {
		d := New224()
		d.Write([]byte(v.in))
		require.Equal(t, v.out, hex.EncodeToString(d.Sum(nil)), "input %q", v.in)
	}
}

func TestKnownAnswer256(t *testing.T) {
	for _, v := range []struct{ in, out string }{
		{"", "a7ffc6f8bf1ed76651c14756a061d662f580ff4de43b49fa82d80a4b80f8434a"},
		{"abc", "3a985da74fe225b2045c172d6bd390bd855f086e3e9d525b46bfe24511431532"},
	} {
		d := New256()
		d.Write([]byte(v.in))
		require.Equal(t, v.out, hex.EncodeToString(d.Sum(nil)), "input %q", v.in)
	}
}

func TestKnownAnswer384(t *testing.T) {
	for _, v := range []struct{ in, out string }{
		{"", "0c63a75b845e4f7d01107d852e4c2485c51a50aaaa94fc61995e71bbee983a2ac3713831264adb47fb6bd1e058d5f004"},
		{"abc", "ec01498288516fc926459f58e2c6ad8df9b473cb0fc08c2596da7cf0e49be4b298d88cea927ac7f539f1edf228376d25"},
	} {
		d := New384()
		d.Write([]byte(v.in))
		require.Equal(t, v.out, hex.EncodeToString(d.Sum(nil)), "input %q", v.in)
	}
}

func TestKnownAnswer512(t *testing.T) {
	for _, v := range []struct{ in, out string }{
		{"", "a69f73cca23a9ac5c8b567dc185a756e97c982164fe25859e0d1dcc1475c80a615b2123af1f5f94c11e3e9402c3ac558f500199d95b6d3e301758586281dcd26"},
		{"abc", "b751850b1a57168a5693cd924b6b096e08f621827444f70d884f5d0240d2712e10e116e9192af3c91a7ec57647e3934057340b4cf408d5a56592f8274eec53f0"},
	} {
		d := New512()
		d.Write([]byte(v.in))
		require.Equal(t, v.out, hex.EncodeToString(d.Sum(nil)), "input %q", v.in)
	}
}

// TestRateBoundary exercises the pad10*1 rule's forced extra block when the
// message ends exactly on, just before, or just after a rate boundary.
func TestRateBoundary(t *testing.T) {
	variants := []struct {
		name string
		new  func() hash.Hash
		rate int
	}{
		{"SHA3-224", New224, 144},
		{"SHA3-256", New256, 136},
		{"SHA3-384", New384, 104},
		{"SHA3-512", New512, 72},
	}

	for _, v := range variants {
		for _, n := range []int{v.rate - 1, v.rate, v.rate + 1} {
			msg := make([]byte, n)
			for i := range msg {
				msg[i] = byte(i)
			}

			oneShot := v.new()
			oneShot.Write(msg)
			want := oneShot.Sum(nil)

			chunked := v.new()
			chunked.Write(msg[:n/2])
			chunked.Write(msg[n/2:])
			require.Equal(t, want, chunked.Sum(nil), "%s length %d", v.name, n)
		}
	}
}

func TestUniversalProperties(t *testing.T) {
	hashtest.UniversalProperties(t, New224)
	hashtest.UniversalProperties(t, New256)
	hashtest.UniversalProperties(t, New384)
	hashtest.UniversalProperties(t, New512)
}
