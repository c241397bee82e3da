// Package bcryptpbkdf implements bcrypt_pbkdf, the password-based key
// derivation function OpenSSH uses to encrypt openssh-key-v1 private keys.
// It is distinct from password-hashing bcrypt: the core "EksBlowfish" key
// schedule is reused (via golang.org/x/crypto/blowfish, which exports the
// salted expansion and plain key expansion bcrypt needs), but the outer
// construction differs — it hashes an arbitrary-length key/salt pair with
// SHA-512 first and produces a key stream of any requested length by
// interleaving repeated bcrypt hash blocks, following OpenBSD's
// bcrypt_pbkdf.c.
package bcryptpbkdf
