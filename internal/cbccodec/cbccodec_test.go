package cbccodec_test

import (
	"crypto/aes"
	"crypto/cipher"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cartpauj/ppk-to-openssh/internal/cbccodec"
)

func TestDecryptRoundTrip(t *testing.T) {
	var key [32]byte
	var iv [16]byte
	for i := range key {
		key[i] = byte(i)
	}
	plaintext := []byte("0123456789abcdef0123456789abcdef") // 32 bytes, two AES blocks
	plaintext = plaintext[:32]

	block, err := aes.NewCipher(key[:])
	require.NoError(t, err)
	ciphertext := make([]byte, len(plaintext))
	cipher.NewCBCEncrypter(block, iv[:]).CryptBlocks(ciphertext, plaintext)

	got, err := cbccodec.DecryptAES256CBCNoPadding(key, iv, ciphertext)
	require.NoError(t, err)
	require.Equal(t, plaintext, got)
}

func TestDecryptRejectsNonBlockMultiple(t *testing.T) {
	var key [32]byte
	var iv [16]byte
	_, err := cbccodec.DecryptAES256CBCNoPadding(key, iv, []byte("not16"))
	require.Error(t, err)
}
