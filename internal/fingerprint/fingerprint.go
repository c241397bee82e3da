package fingerprint

import (
	"crypto/sha256"
	"encoding/base64"
	"strings"
)

// SHA256 returns "SHA256:" ‖ base64(SHA256(publicBlob)) with trailing "="
// padding removed, matching OpenSSH's ssh-keygen -l output format.
func SHA256(publicBlob []byte) string {
	sum := sha256.Sum256(publicBlob)
	encoded := base64.StdEncoding.EncodeToString(sum[:])
	return "SHA256:" + strings.TrimRight(encoded, "=")
}
