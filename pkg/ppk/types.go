package ppk

import "github.com/cartpauj/ppk-to-openssh/internal/keyalgo"

// Algorithm is one of the six SSH key algorithms PPK supports.
type Algorithm = keyalgo.Algorithm

const (
	AlgorithmRSA      = keyalgo.RSA
	AlgorithmDSA      = keyalgo.DSA
	AlgorithmECDSA256 = keyalgo.ECDSA256
	AlgorithmECDSA384 = keyalgo.ECDSA384
	AlgorithmECDSA521 = keyalgo.ECDSA521
	AlgorithmEd25519  = keyalgo.Ed25519
)

// ConvertedKey is the result of a successful Parse call.
type ConvertedKey struct {
	PrivateKey  string
	PublicKey   string
	Fingerprint string
	Algorithm   Algorithm
	Comment     string

	// Curve is set for ECDSA algorithms ("P-256", "P-384", "P-521") and
	// empty otherwise.
	Curve string
}
