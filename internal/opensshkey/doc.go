// Package opensshkey builds the openssh-key-v1 private key container:
// magic preamble, cipher/kdf names, the public key blob verbatim, and an
// inner private section framed as checkint‖checkint‖algorithm‖pub
// components‖priv components‖comment‖pad, optionally encrypted with
// AES-256-CTR under a bcrypt-pbkdf-derived key.
package opensshkey
