package cbccodec

import (
	"crypto/aes"
	"crypto/cipher"

	"github.com/cartpauj/ppk-to-openssh/internal/ppkerr"
)

// DecryptAES256CBCNoPadding decrypts ciphertext into a new slice using
// AES-256-CBC and returns it, leaving ciphertext unchanged; no padding is removed, matching PuTTY's framing where the
// plaintext length is implied by the SSH strings it holds, not by PKCS#7.
func DecryptAES256CBCNoPadding(key [32]byte, iv [16]byte, ciphertext []byte) ([]byte, error) {
	const op = "cbccodec.DecryptAES256CBCNoPadding"

	if len(ciphertext)%aes.BlockSize != 0 {
		return nil, ppkerr.New(ppkerr.CodeInvalidPpkFormat, op, "private blob is not a multiple of the AES block size")
	}
	block, err := aes.NewCipher(key[:])
	if err != nil {
		return nil, ppkerr.New(ppkerr.CodeInvalidPpkFormat, op, "invalid AES key")
	}
	plaintext := make([]byte, len(ciphertext))
	mode := cipher.NewCBCDecrypter(block, iv[:])
	mode.CryptBlocks(plaintext, ciphertext)
	return plaintext, nil
}
