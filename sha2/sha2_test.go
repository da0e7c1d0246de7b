package sha2

import (
	"encoding/hex"
	"hash"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/agentlans/libhsh/internal/hashtest"
)

var vectors256 = []struct {
	in  string
	out string
}{
	{"", "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"},
	{"abc", "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"},
}

var vectors224 = []struct {
	in  string
	out string
}{
	{"", "d14a028c2a3a2bc9476102bb288234c415a2b01f828ea62ac5b3e42f"},
	{"abc", "23097d223405d8228642a477bda255b32aadbce4bda0b3f7e36c9da7"},
}

var vectors384 = []struct {
	in  string
	out string
}{
	{"abc", "cb00753f45a35e8bb5a03d699ac65007272c32ab0eded1631a8b605a43ff5bed8086072ba1e7cc2358baeca134c825a7"},
}

var vectors512 = []struct {
	in  string
	out string
}{
	{"abc", "ddaf35a193617abacc417349ae20413112e6fa4e89a97ea20a9eeee64b55d39a2192992a274fc1a836ba3c23a3feebbd454d4423643ce80e2a9ac94fa54ca49f"},
}

func TestKnownAnswer256(t *testing.T) {
	for _, v := range vectors256 {
		sum := Sum256([]byte(v.in))
		require.Equal(t, v.out, hex.EncodeToString(sum[:]), "input %q", v.in)
	}
}

func TestKnownAnswer224(t *testing.T) {
	for _, v := range vectors224 {
		sum := Sum224([]byte(v.in))
		require.Equal(t, v.out, hex.EncodeToString(sum[:]), "input %q", v.in)
	}
}

func TestKnownAnswer384(t *testing.T) {
	for _, v := range vectors384 {
		sum := Sum384([]byte(v.in))
		require.Equal(t, v.out, hex.EncodeToString(sum[:]), "input %q", v.in)
	}
}

func TestKnownAnswer512(t *testing.T) {
	for _, v := range vectors512 {
		sum := Sum512([]byte(v.in))
		require.Equal(t, v.out, hex.EncodeToString(sum[:]), "input %q", v.in)
	}
}

func TestBoundaryLengths(t *testing.T) {
	for _, n := range []int{55, 56, 63, 64, 119, 120, 127, 128} {
		msg := make([]byte, n)
		for i := range msg {
			msg[i] = byte(i)
		}

		for _, variant := range []struct {
			name string
			new  func() hash.Hash
		}{
			{"sha256", New256},
			{"sha512", New512},
		} {
			oneShot := variant.new()
			oneShot.Write(msg)
			want := oneShot.Sum(nil)

			h := variant.new()
			for i := 0; i < len(msg); i++ {
				h.Write(msg[i : i+1])
			}
			require.Equal(t, want, h.Sum(nil), "%s length %d", variant.name, n)
		}
	}
}

func TestMillionA(t *testing.T) {
	chunk := make([]byte, 1000)
	for i := range chunk {
		chunk[i] = 'a'
	}

	h256 := New256()
	h512 := New512()
	for i := 0; i < 1000; i++ {
		h256.Write(chunk)
		h512.Write(chunk)
	}

	require.Equal(t, "cdc76e5c9914fb9281a1c7e284d73e67f1809a48a497200e046d39ccc7112cd0",
		hex.EncodeToString(h256.Sum(nil)))
	require.Equal(t, "e718483d0ce769644e2e42c7bc15b4638e1f98b13b2044285632a803afa973ebde0ff244877ea60a4cb0432ce577c31beb009c5c2c49aa2e4eadb217ad8cc09b",
		hex.EncodeToString(h512.Sum(nil)))
}

func TestUniversalProperties(t *testing.T) {
	hashtest.UniversalProperties(t, New224)
	hashtest.UniversalProperties(t, New256)
	hashtest.UniversalProperties(t, New384)
	hashtest.UniversalProperties(t, New512)
}
