package blake2s

import (
	"encoding/hex"
	"hash"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/agentlans/libhsh/internal/hashtest"
)

func TestKnownAnswer(t *testing.T) {
	for _, v := range []struct {
		size     int
		key, msg string
		out      string
	}{
		{32, "", "", "69217a3079908094e11121d042354a7c1f55b6482ca1a51e1b250dfd1ed0eef9"},
		{32, "", "abc", "508c5e8c327c14e2e1a72ba34eeb452f37458b209ed63a294d999b4c86675982"},
		{32, "000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f", "",
			"48a8997da407876b3d79c0d92325ad3b89cbb754d86ab71aee047ad345fd2c49"},
	} {
		key, err := hex.DecodeString(v.key)
		require.NoError(t, err)

		h, err := New(v.size, key, nil)
		require.NoError(t, err)
		h.Write([]byte(v.msg))
		require.Equal(t, v.out, hex.EncodeToString(h.Sum(nil)), "msg %q key %q", v.msg, v.key)
	}
}

func TestPersonalization(t *testing.T) {
	h, err := New(16, nil, []byte("myapp123"))
	require.NoError(t, err)
	h.Write([]byte("abc"))
	require.Equal(t, "3b20408a45f38c57275e39e54d0c29b6", hex.EncodeToString(h.Sum(nil)))
}

func TestInvalidParameters(t *testing.T) {
	_, err := New(0, nil, nil)
	require.ErrorIs(t, err, ErrDigestSize)

	_, err = New(33, nil, nil)
	require.ErrorIs(t, err, ErrDigestSize)

	_, err = New(16, make([]byte, 33), nil)
	require.ErrorIs(t, err, ErrKeySize)

	_, err = New(16, nil, make([]byte, 9))
	require.ErrorIs(t, err, ErrPersonalSize)
}

func TestResetRestoresKeyedState(t *testing.T) {
	key := []byte("sixteen byte key")[:16]
	h, err := New(16, key, nil)
	require.NoError(t, err)

	h.Write([]byte("some data"))
	first := h.Sum(nil)

	h.Reset()
	h.Write([]byte("some data"))
	require.Equal(t, first, h.Sum(nil))
}

func TestUniversalProperties(t *testing.T) {
	hashtest.UniversalProperties(t, func() hash.Hash {
		h, _ := New(32, nil, nil)
		return h
	})
}
