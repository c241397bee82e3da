// Package mac computes and verifies the PPK MAC: HMAC-SHA-1 for v2,
// HMAC-SHA-256 for v3, both over the same canonical five-field framing of
// algorithm, encryption, comment, public blob, and decrypted private blob.
package mac
