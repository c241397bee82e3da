// Package keyalgo decodes the per-algorithm SSH wire parameters carried in
// a PPK's public and (decrypted) private blobs into a DecodedKey, and
// derives the RSA CRT exponents PEM/OpenSSH output needs but PPK does not
// store.
package keyalgo
