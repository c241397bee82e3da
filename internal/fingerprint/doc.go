// Package fingerprint computes the SHA-256 public key fingerprint string
// OpenSSH tooling displays: "SHA256:" followed by unpadded base64 of the
// SHA-256 digest of the raw SSH wire public key blob.
package fingerprint
