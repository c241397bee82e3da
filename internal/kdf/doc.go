// Package kdf derives symmetric key material for the two PPK key-derivation
// schemes: the PPK v2 SHA-1 chain and the PPK v3 Argon2i/Argon2id
// derivations. A v3 key declaring Argon2d is rejected as unsupported.
package kdf
