package keyalgo

import (
	"math/big"

	"github.com/cartpauj/ppk-to-openssh/internal/ppkerr"
	"github.com/cartpauj/ppk-to-openssh/internal/wire"
)

// Algorithm is one of the six SSH key algorithms PPK supports.
type Algorithm string

const (
	RSA      Algorithm = "ssh-rsa"
	DSA      Algorithm = "ssh-dss"
	ECDSA256 Algorithm = "ecdsa-sha2-nistp256"
	ECDSA384 Algorithm = "ecdsa-sha2-nistp384"
	ECDSA521 Algorithm = "ecdsa-sha2-nistp521"
	Ed25519  Algorithm = "ssh-ed25519"
)

// RSAKey carries unsigned big-endian integer byte strings exactly as they
// will be fed to the DER integer encoder; DP and DQ are computed here
// because PPK does not store them but PKCS#1 output requires them.
type RSAKey struct {
	E, N, D, P, Q, IQMP []byte
	DP, DQ              []byte
}

// DSAKey carries unsigned big-endian integer byte strings.
type DSAKey struct {
	P, Q, G, Y, X []byte
}

// ECDSAKey carries the curve name as it appears on the wire, the
// uncompressed public point, and the private scalar.
type ECDSAKey struct {
	CurveName string // "nistp256", "nistp384", or "nistp521"
	Q         []byte
	D         []byte
}

// Ed25519Key carries the 32-byte public key and 32-byte private seed.
type Ed25519Key struct {
	A    [32]byte
	Seed [32]byte
}

// DecodedKey is the tagged union produced by Decode. Exactly one of the
// algorithm-specific fields is non-nil, matching Algorithm.
type DecodedKey struct {
	Algorithm Algorithm

	RSA     *RSAKey
	DSA     *DSAKey
	ECDSA   *ECDSAKey
	Ed25519 *Ed25519Key
}

// Curve returns the human-readable curve name ("P-256", "P-384", "P-521")
// for an ECDSA key, or "" for any other algorithm.
func (d *DecodedKey) Curve() string {
	switch d.Algorithm {
	case ECDSA256:
		return "P-256"
	case ECDSA384:
		return "P-384"
	case ECDSA521:
		return "P-521"
	default:
		return ""
	}
}

// Decode extracts algorithm-specific key parameters from the SSH wire
// public and private blobs. publicBlob begins with the algorithm name
// string as its first wire field; privateBlob holds only the
// algorithm-specific secret components, no algorithm name.
func Decode(algorithm string, publicBlob, privateBlob []byte, maxFieldSize int) (*DecodedKey, error) {
	const op = "keyalgo.Decode"

	pub := wire.NewReaderWithCap(publicBlob, maxFieldSize)
	if _, err := pub.ReadString(); err != nil {
		return nil, err
	}

	priv := wire.NewReaderWithCap(privateBlob, maxFieldSize)

	switch Algorithm(algorithm) {
	case RSA:
		return decodeRSA(pub, priv)
	case DSA:
		return decodeDSA(pub, priv)
	case ECDSA256, ECDSA384, ECDSA521:
		return decodeECDSA(Algorithm(algorithm), pub, priv)
	case Ed25519:
		return decodeEd25519(pub, priv)
	default:
		return nil, ppkerr.New(ppkerr.CodeUnsupportedAlgorithm, op, "key algorithm outside the supported set")
	}
}

func decodeRSA(pub, priv *wire.Reader) (*DecodedKey, error) {
	e, err := pub.ReadBytes()
	if err != nil {
		return nil, err
	}
	n, err := pub.ReadBytes()
	if err != nil {
		return nil, err
	}
	d, err := priv.ReadBytes()
	if err != nil {
		return nil, err
	}
	p, err := priv.ReadBytes()
	if err != nil {
		return nil, err
	}
	q, err := priv.ReadBytes()
	if err != nil {
		return nil, err
	}
	iqmp, err := priv.ReadBytes()
	if err != nil {
		return nil, err
	}

	dP, dQ := rsaCRTExponents(d, p, q)

	return &DecodedKey{
		Algorithm: RSA,
		RSA: &RSAKey{
			E: e, N: n, D: d, P: p, Q: q, IQMP: iqmp,
			DP: dP, DQ: dQ,
		},
	}, nil
}

func rsaCRTExponents(d, p, q []byte) (dP, dQ []byte) {
	dInt := new(big.Int).SetBytes(d)
	pInt := new(big.Int).SetBytes(p)
	qInt := new(big.Int).SetBytes(q)

	pMinus1 := new(big.Int).Sub(pInt, big.NewInt(1))
	qMinus1 := new(big.Int).Sub(qInt, big.NewInt(1))

	return new(big.Int).Mod(dInt, pMinus1).Bytes(), new(big.Int).Mod(dInt, qMinus1).Bytes()
}

func decodeDSA(pub, priv *wire.Reader) (*DecodedKey, error) {
	p, err := pub.ReadBytes()
	if err != nil {
		return nil, err
	}
	q, err := pub.ReadBytes()
	if err != nil {
		return nil, err
	}
	g, err := pub.ReadBytes()
	if err != nil {
		return nil, err
	}
	y, err := pub.ReadBytes()
	if err != nil {
		return nil, err
	}
	x, err := priv.ReadBytes()
	if err != nil {
		return nil, err
	}
	return &DecodedKey{
		Algorithm: DSA,
		DSA:       &DSAKey{P: p, Q: q, G: g, Y: y, X: x},
	}, nil
}

func decodeECDSA(algorithm Algorithm, pub, priv *wire.Reader) (*DecodedKey, error) {
	curveName, err := pub.ReadString()
	if err != nil {
		return nil, err
	}
	q, err := pub.ReadBytes()
	if err != nil {
		return nil, err
	}
	d, err := priv.ReadBytes()
	if err != nil {
		return nil, err
	}
	return &DecodedKey{
		Algorithm: algorithm,
		ECDSA:     &ECDSAKey{CurveName: curveName, Q: q, D: d},
	}, nil
}

func decodeEd25519(pub, priv *wire.Reader) (*DecodedKey, error) {
	const op = "keyalgo.decodeEd25519"

	a, err := pub.ReadBytes()
	if err != nil {
		return nil, err
	}
	seed, err := priv.ReadBytes()
	if err != nil {
		return nil, err
	}
	if len(a) != 32 || len(seed) != 32 {
		return nil, ppkerr.New(ppkerr.CodeInvalidPpkFormat, op, "ed25519 key material must be 32 bytes")
	}
	key := &DecodedKey{Algorithm: Ed25519, Ed25519: &Ed25519Key{}}
	copy(key.Ed25519.A[:], a)
	copy(key.Ed25519.Seed[:], seed)
	return key, nil
}
