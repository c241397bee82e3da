package mac

import (
	"crypto/hmac"
	"crypto/sha1" // required by the PPK v2 MAC construction
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"strings"

	"github.com/cartpauj/ppk-to-openssh/internal/ppkerr"
	"github.com/cartpauj/ppk-to-openssh/internal/wire"
)

const v2KeySeed = "putty-private-key-file-mac-key"

// Fields is the canonical five-field MAC framing shared by v2 and v3.
type Fields struct {
	Algorithm        string
	Encryption       string
	Comment          string
	PublicBlob       []byte
	PrivateBlobPlain []byte
}

func frame(f Fields) []byte {
	var buf []byte
	buf = wire.AppendString(buf, []byte(f.Algorithm))
	buf = wire.AppendString(buf, []byte(f.Encryption))
	buf = wire.AppendString(buf, []byte(f.Comment))
	buf = wire.AppendString(buf, f.PublicBlob)
	buf = wire.AppendString(buf, f.PrivateBlobPlain)
	return buf
}

// ComputeV2 returns the hex-encoded HMAC-SHA-1 MAC for a v2 key. passphrase
// is the empty string when encryption is "none".
func ComputeV2(f Fields, passphrase string) string {
	keyHash := sha1.Sum([]byte(v2KeySeed + passphrase))
	h := hmac.New(sha1.New, keyHash[:])
	h.Write(frame(f))
	return hex.EncodeToString(h.Sum(nil))
}

// ComputeV3 returns the hex-encoded HMAC-SHA-256 MAC for a v3 key. macKey
// must be the Argon2-derived mac_key when encrypted, or 32 zero bytes when
// encryption is "none" — callers must not substitute a key derived from an
// empty passphrase in the unencrypted case.
func ComputeV3(f Fields, macKey [32]byte) string {
	h := hmac.New(sha256.New, macKey[:])
	h.Write(frame(f))
	return hex.EncodeToString(h.Sum(nil))
}

// Verify compares computed against the file's mac_hex case-insensitively in
// constant time, returning CodeInvalidMac on mismatch.
func Verify(computedHex, macHex string, wasEncrypted bool) error {
	const op = "mac.Verify"

	computed, err := hex.DecodeString(strings.ToLower(computedHex))
	if err != nil {
		return ppkerr.New(ppkerr.CodeInvalidMac, op, "internal MAC computation produced invalid hex")
	}
	expected, err := hex.DecodeString(strings.ToLower(macHex))
	if err != nil || len(expected) != len(computed) {
		return mismatchError(op, wasEncrypted)
	}
	if subtle.ConstantTimeCompare(computed, expected) != 1 {
		return mismatchError(op, wasEncrypted)
	}
	return nil
}

func mismatchError(op string, wasEncrypted bool) error {
	hint := "MAC mismatch: the file may be tampered"
	if wasEncrypted {
		hint = "MAC mismatch: wrong passphrase or tampered file"
	}
	return ppkerr.New(ppkerr.CodeInvalidMac, op, hint)
}
