package bcryptpbkdf

import (
	"crypto/sha512"
	"encoding/binary"
	"errors"

	"golang.org/x/crypto/blowfish"
)

const hashSize = 32

var magicCipherText = []byte("OxychromaticBlowfishSwatDynamite")

// Key derives keyLen bytes from password and salt using bcrypt_pbkdf with
// the given round count. rounds is a cost parameter, not an iteration count
// in the PBKDF2 sense: each round re-hashes the previous bcrypt block and
// XORs it into the running output for that 32-byte stripe.
func Key(password, salt []byte, rounds, keyLen int) ([]byte, error) {
	if rounds < 1 {
		return nil, errors.New("bcryptpbkdf: rounds must be at least 1")
	}
	if len(password) == 0 {
		return nil, errors.New("bcryptpbkdf: empty password")
	}
	if len(salt) == 0 {
		return nil, errors.New("bcryptpbkdf: empty salt")
	}
	if keyLen <= 0 {
		return nil, errors.New("bcryptpbkdf: keyLen must be positive")
	}

	numBlocks := (keyLen + hashSize - 1) / hashSize
	stride := numBlocks
	amtPerBlock := (keyLen + stride - 1) / stride

	sha2pass := sha512.Sum512(password)

	countSalt := make([]byte, len(salt)+4)
	copy(countSalt, salt)

	out := make([]byte, keyLen)
	remaining := keyLen
	for count := 1; remaining > 0; count++ {
		binary.BigEndian.PutUint32(countSalt[len(salt):], uint32(count))
		sha2salt := sha512.Sum512(countSalt)

		result := bcryptHash(sha2pass[:], sha2salt[:])
		tmp := result
		for i := 1; i < rounds; i++ {
			nextSalt := sha512.Sum512(tmp[:])
			tmp = bcryptHash(sha2pass[:], nextSalt[:])
			for j := range result {
				result[j] ^= tmp[j]
			}
		}

		amt := amtPerBlock
		if amt > remaining {
			amt = remaining
		}
		for i := 0; i < amt; i++ {
			dest := i*stride + (count - 1)
			if dest >= keyLen {
				break
			}
			out[dest] = result[i]
		}
		remaining -= amt
	}
	return out, nil
}

// bcryptHash is OpenBSD bcrypt_pbkdf.c's bcrypt_hash: the salted Blowfish
// key schedule applied to a fixed magic string, 64 rounds of additional key
// folding, and 64 rounds of ECB self-encryption, with a final endian flip
// on the way out.
func bcryptHash(sha2pass, sha2salt []byte) [hashSize]byte {
	cipher, err := blowfish.NewSaltedCipher(sha2pass, sha2salt)
	if err != nil {
		panic("bcryptpbkdf: salted blowfish setup failed: " + err.Error())
	}
	for i := 0; i < 64; i++ {
		blowfish.ExpandKey(sha2salt, cipher)
		blowfish.ExpandKey(sha2pass, cipher)
	}

	var words [8]uint32
	for i := 0; i < 8; i++ {
		words[i] = binary.BigEndian.Uint32(magicCipherText[i*4 : i*4+4])
	}

	var block [8]byte
	for round := 0; round < 64; round++ {
		for i := 0; i < 4; i++ {
			binary.BigEndian.PutUint32(block[0:4], words[2*i])
			binary.BigEndian.PutUint32(block[4:8], words[2*i+1])
			cipher.Encrypt(block[:], block[:])
			words[2*i] = binary.BigEndian.Uint32(block[0:4])
			words[2*i+1] = binary.BigEndian.Uint32(block[4:8])
		}
	}

	var out [hashSize]byte
	for i := 0; i < 8; i++ {
		out[4*i+0] = byte(words[i])
		out[4*i+1] = byte(words[i] >> 8)
		out[4*i+2] = byte(words[i] >> 16)
		out[4*i+3] = byte(words[i] >> 24)
	}
	return out
}
