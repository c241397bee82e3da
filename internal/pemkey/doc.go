// Package pemkey renders decoded RSA, DSA, and ECDSA keys as PEM blocks:
// PKCS#1 for RSA, a plain SEQUENCE for DSA, and SEC1 for ECDSA. Ed25519 has
// no PEM representation in this design and always goes through the
// opensshkey package instead.
package pemkey
