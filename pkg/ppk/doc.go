// Package ppk converts PuTTY private key files (PPK v2/v3) into
// OpenSSH-compatible key material.
//
// # Architecture
//
// Parse runs a fixed pipeline over the PPK text: tokenize the container,
// derive symmetric material if the file is encrypted, decrypt the private
// blob, verify the keyed MAC over the authenticated fields, decode the SSH
// wire-format key components, and re-encode them as an OpenSSH v1 or PEM
// private key. OpenSSH v1 output can optionally be re-encrypted under a new
// passphrase; PEM output is never encrypted.
//
//	result, err := ppk.Parse(ppkText, passphrase, ppk.Options{})
//
// Each pipeline stage lives in its own internal package (internal/wire,
// internal/ppktext, internal/kdf, internal/mac, internal/cbccodec,
// internal/keyalgo, internal/opensshkey, internal/pemkey,
// internal/fingerprint) so the stages can be tested in isolation; Parse
// only wires them together and maps internal errors onto the public Code
// taxonomy.
//
// # Security Considerations
//
//   - Parse never logs the passphrase, derived key material, or decrypted
//     private blob. Callers that supply a Logger should do the same.
//   - Wrong-passphrase and tampered-file inputs both surface as
//     CodeInvalidMac; the core does not attempt to distinguish them beyond
//     the hint string, since doing so cryptographically is not possible.
//   - Sensitive buffers are zeroed on every exit path where Go's memory
//     model allows it; see zeroizeBytes.
//
// # Non-goals
//
// Parse does not establish SSH sessions, sign or verify data with decoded
// keys, generate new PPK files, or support PPK v1.
package ppk
