// Package hashtest holds the property-based test harness shared by every
// hash engine package's tests. The universal properties it checks —
// concatenation law, chunk invariance, digest size matching Size(), and Sum's
// non-mutating contract — apply identically to MD5, SHA-1, SHA-2, SHA-3,
// and BLAKE2, so they live here once instead of being copy-pasted into each
// package's _test.go.
package hashtest

import (
	"bytes"
	"hash"
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

// UniversalProperties runs the concatenation law, chunk invariance, and
// Sum-is-non-mutating checks against newHash using rapid-generated inputs.
func UniversalProperties(t *testing.T, newHash func() hash.Hash) {
	t.Run("concatenation law", func(t *testing.T) {
		rapid.Check(t, func(t *rapid.T) {
			u := rapid.SliceOfN(rapid.Byte(), 0, 4096).Draw(t, "u")
			v := rapid.SliceOfN(rapid.Byte(), 0, 4096).Draw(t, "v")

			whole := newHash()
			whole.Write(append(append([]byte{}, u...), v...))

			split := newHash()
			split.Write(u)
			split.Write(v)

			require.Equal(t, whole.Sum(nil), split.Sum(nil))
		})
	})

	t.Run("chunk invariance", func(t *testing.T) {
		rapid.Check(t, func(t *rapid.T) {
			msg := rapid.SliceOfN(rapid.Byte(), 0, 4096).Draw(t, "msg")
			nchunks := rapid.IntRange(1, 17).Draw(t, "nchunks")

			oneShot := newHash()
			oneShot.Write(msg)

			chunked := newHash()
			rest := msg
			for i := 0; i < nchunks && len(rest) > 0; i++ {
				n := len(rest) / (nchunks - i)
				chunked.Write(rest[:n])
				rest = rest[n:]
			}
			chunked.Write(rest)

			require.Equal(t, oneShot.Sum(nil), chunked.Sum(nil))
		})
	})

	t.Run("digest size matches Size()", func(t *testing.T) {
		h := newHash()
		require.Len(t, h.Sum(nil), h.Size())
	})

	t.Run("Sum does not mutate state", func(t *testing.T) {
		rapid.Check(t, func(t *rapid.T) {
			msg := rapid.SliceOfN(rapid.Byte(), 0, 1024).Draw(t, "msg")
			more := rapid.SliceOfN(rapid.Byte(), 0, 1024).Draw(t, "more")

			h := newHash()
			h.Write(msg)
			first := h.Sum(nil)
			second := h.Sum(nil)
			require.True(t, bytes.Equal(first, second), "Sum called twice in a row must agree")

			h.Write(more)
			third := h.Sum(nil)

			reference := newHash()
			reference.Write(msg)
			reference.Write(more)
			require.Equal(t, reference.Sum(nil), third)
		})
	})
}
