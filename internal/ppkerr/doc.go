// Package ppkerr defines the machine-readable error taxonomy shared by every
// stage of the PPK codec pipeline. It lives under internal so that each
// internal/* stage (ppktext, kdf, mac, cbccodec, keyalgo, opensshkey, pemkey,
// fingerprint) and the public pkg/ppk package can construct and recognise
// the same *Error values without an import cycle back through pkg/ppk.
package ppkerr
