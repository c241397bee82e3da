package bcryptpbkdf_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cartpauj/ppk-to-openssh/internal/bcryptpbkdf"
)

func TestKeyLengthAndDeterminism(t *testing.T) {
	k1, err := bcryptpbkdf.Key([]byte("passphrase"), []byte("0123456789abcdef"), 16, 48)
	require.NoError(t, err)
	require.Len(t, k1, 48)

	k2, err := bcryptpbkdf.Key([]byte("passphrase"), []byte("0123456789abcdef"), 16, 48)
	require.NoError(t, err)
	require.Equal(t, k1, k2)
}

func TestKeyDiffersByPassword(t *testing.T) {
	salt := []byte("0123456789abcdef")
	k1, err := bcryptpbkdf.Key([]byte("passphrase-one"), salt, 16, 48)
	require.NoError(t, err)
	k2, err := bcryptpbkdf.Key([]byte("passphrase-two"), salt, 16, 48)
	require.NoError(t, err)
	require.NotEqual(t, k1, k2)
}

func TestKeyDiffersBySalt(t *testing.T) {
	pw := []byte("same passphrase")
	k1, err := bcryptpbkdf.Key(pw, []byte("salt-aaaaaaaaaaa"), 16, 48)
	require.NoError(t, err)
	k2, err := bcryptpbkdf.Key(pw, []byte("salt-bbbbbbbbbbb"), 16, 48)
	require.NoError(t, err)
	require.NotEqual(t, k1, k2)
}

func TestKeyDiffersByRounds(t *testing.T) {
	pw := []byte("same passphrase")
	salt := []byte("0123456789abcdef")
	k1, err := bcryptpbkdf.Key(pw, salt, 8, 48)
	require.NoError(t, err)
	k2, err := bcryptpbkdf.Key(pw, salt, 16, 48)
	require.NoError(t, err)
	require.NotEqual(t, k1, k2)
}

func TestKeyVariableLength(t *testing.T) {
	k, err := bcryptpbkdf.Key([]byte("pw"), []byte("salt1234"), 4, 100)
	require.NoError(t, err)
	require.Len(t, k, 100)
}

func TestKeyRejectsEmptyInputs(t *testing.T) {
	_, err := bcryptpbkdf.Key(nil, []byte("s"), 4, 32)
	require.Error(t, err)
	_, err = bcryptpbkdf.Key([]byte("p"), nil, 4, 32)
	require.Error(t, err)
	_, err = bcryptpbkdf.Key([]byte("p"), []byte("s"), 0, 32)
	require.Error(t, err)
}
