package pemkey_test

import (
	"crypto/elliptic"
	"crypto/x509"
	"encoding/pem"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cartpauj/ppk-to-openssh/internal/keyalgo"
	"github.com/cartpauj/ppk-to-openssh/internal/pemkey"
)

func TestEncodeRSARoundTripsThroughX509(t *testing.T) {
	p := big.NewInt(61)
	q := big.NewInt(53)
	n := new(big.Int).Mul(p, q)
	phi := new(big.Int).Mul(new(big.Int).Sub(p, big.NewInt(1)), new(big.Int).Sub(q, big.NewInt(1)))
	e := big.NewInt(17)
	d := new(big.Int).ModInverse(e, phi)
	dP := new(big.Int).Mod(d, new(big.Int).Sub(p, big.NewInt(1)))
	dQ := new(big.Int).Mod(d, new(big.Int).Sub(q, big.NewInt(1)))
	iqmp := new(big.Int).ModInverse(q, p)

	key := &keyalgo.RSAKey{
		E: e.Bytes(), N: n.Bytes(), D: d.Bytes(), P: p.Bytes(), Q: q.Bytes(),
		DP: dP.Bytes(), DQ: dQ.Bytes(), IQMP: iqmp.Bytes(),
	}

	pemText := pemkey.EncodeRSA(key)
	block, rest := pem.Decode([]byte(pemText))
	require.NotNil(t, block)
	require.Empty(t, rest)
	require.Equal(t, "RSA PRIVATE KEY", block.Type)

	parsed, err := x509.ParsePKCS1PrivateKey(block.Bytes)
	require.NoError(t, err)
	require.Equal(t, n, parsed.N)
	require.Equal(t, int(e.Int64()), parsed.E)
	require.Equal(t, 0, d.Cmp(parsed.D))
}

func TestEncodeECDSARoundTripsThroughX509(t *testing.T) {
	curve := elliptic.P256()
	d := big.NewInt(12345)
	x, y := curve.ScalarBaseMult(d.Bytes())
	q := elliptic.Marshal(curve, x, y)

	key := &keyalgo.ECDSAKey{CurveName: "nistp256", Q: q, D: d.Bytes()}
	pemText, err := pemkey.EncodeECDSA(key, "P-256")
	require.NoError(t, err)

	block, _ := pem.Decode([]byte(pemText))
	require.NotNil(t, block)
	require.Equal(t, "EC PRIVATE KEY", block.Type)

	parsed, err := x509.ParseECPrivateKey(block.Bytes)
	require.NoError(t, err)
	require.Equal(t, 0, d.Cmp(parsed.D))
	require.Equal(t, 0, x.Cmp(parsed.X))
	require.Equal(t, 0, y.Cmp(parsed.Y))
}

func TestEncodeECDSAUnknownCurve(t *testing.T) {
	_, err := pemkey.EncodeECDSA(&keyalgo.ECDSAKey{}, "P-999")
	require.Error(t, err)
}

func TestEncodeDSAProducesParseableSequence(t *testing.T) {
	key := &keyalgo.DSAKey{
		P: big.NewInt(23).Bytes(),
		Q: big.NewInt(11).Bytes(),
		G: big.NewInt(4).Bytes(),
		Y: big.NewInt(9).Bytes(),
		X: big.NewInt(3).Bytes(),
	}
	pemText := pemkey.EncodeDSA(key)
	block, _ := pem.Decode([]byte(pemText))
	require.NotNil(t, block)
	require.Equal(t, "DSA PRIVATE KEY", block.Type)
	require.NotEmpty(t, block.Bytes)
}

func TestWrapIsAt64Columns(t *testing.T) {
	large := make([]byte, 200)
	for i := range large {
		large[i] = 0x7F
	}
	key := &keyalgo.DSAKey{
		P: large, Q: big.NewInt(1).Bytes(), G: big.NewInt(1).Bytes(),
		Y: big.NewInt(1).Bytes(), X: big.NewInt(1).Bytes(),
	}
	pemText := pemkey.EncodeDSA(key)
	lines := splitLines(pemText)
	for _, l := range lines[1 : len(lines)-2] {
		require.LessOrEqual(t, len(l), 64)
	}
}

func splitLines(s string) []string {
	var lines []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			lines = append(lines, s[start:i])
			start = i + 1
		}
	}
	return lines
}
