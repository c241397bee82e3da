// Package cbccodec decrypts PPK private blobs. The only supported cipher is
// AES-256-CBC, used without padding: PPK private blobs are already a whole
// number of 16-byte blocks, so there is no PKCS#7 trailer to strip.
package cbccodec
