package sealer_test

import (
	"summit/pkg/sealer"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNew_EmptySecret(t *testing.T) {
	_, err := sealer.New("")
	require.Error(t, err)
}

func TestSealOpen(t *testing.T) {
	s, err := sealer.New("local-secret")
	require.NoError(t, err)

	a, err := s.Seal([]byte("hunter2"))
	require.NoError(t, err)
	b, err := s.Seal([]byte("hunter2"))
	require.NoError(t, err)
	require.NotEqual(t, a, b, "nonce must differ between seals")
	require.NotContains(t, a, "hunter2")

	out, err := s.Open(a)
	require.NoError(t, err)
	require.Equal(t, "hunter2", string(out))

	empty, err := s.Seal(nil)
	require.NoError(t, err)
	out, err = s.Open(empty)
	require.NoError(t, err)
	require.Empty(t, out)
}

func TestOpen_Rejects(t *testing.T) {
	s, err := sealer.New("local-secret")
	require.NoError(t, err)
	other, err := sealer.New("other-secret")
	require.NoError(t, err)

	sealed, err := s.Seal([]byte("hunter2"))
	require.NoError(t, err)

	_, err = other.Open(sealed)
	require.ErrorIs(t, err, sealer.ErrCorrupt)

	_, err = s.Open("not base64!")
	require.ErrorIs(t, err, sealer.ErrCorrupt)

	_, err = s.Open("c2hvcnQ=")
	require.ErrorIs(t, err, sealer.ErrCorrupt)

	tampered := []byte(sealed)
	tampered[len(tampered)-3] ^= 'A' ^ 'B'
	_, err = s.Open(string(tampered))
	require.ErrorIs(t, err, sealer.ErrCorrupt)
}
