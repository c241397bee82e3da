package pemkey

import (
	"encoding/base64"
	"strings"

	"github.com/cartpauj/ppk-to-openssh/internal/der"
	"github.com/cartpauj/ppk-to-openssh/internal/keyalgo"
	"github.com/cartpauj/ppk-to-openssh/internal/ppkerr"
)

const wrapColumns = 64

var curveOIDs = map[string][]int{
	"P-256": {1, 2, 840, 10045, 3, 1, 7},
	"P-384": {1, 3, 132, 0, 34},
	"P-521": {1, 3, 132, 0, 35},
}

// EncodeRSA renders key as a PKCS#1 "RSA PRIVATE KEY" PEM block.
func EncodeRSA(key *keyalgo.RSAKey) string {
	body := der.Sequence(
		der.IntegerFromInt(0),
		der.Integer(key.N),
		der.Integer(key.E),
		der.Integer(key.D),
		der.Integer(key.P),
		der.Integer(key.Q),
		der.Integer(key.DP),
		der.Integer(key.DQ),
		der.Integer(key.IQMP),
	)
	return wrap("RSA PRIVATE KEY", body)
}

// EncodeDSA renders key as a "DSA PRIVATE KEY" PEM block: SEQUENCE
// {version=0, p, q, g, y, x}.
func EncodeDSA(key *keyalgo.DSAKey) string {
	body := der.Sequence(
		der.IntegerFromInt(0),
		der.Integer(key.P),
		der.Integer(key.Q),
		der.Integer(key.G),
		der.Integer(key.Y),
		der.Integer(key.X),
	)
	return wrap("DSA PRIVATE KEY", body)
}

// EncodeECDSA renders key as a SEC1 "EC PRIVATE KEY" PEM block. curve must
// be one of "P-256", "P-384", "P-521".
func EncodeECDSA(key *keyalgo.ECDSAKey, curve string) (string, error) {
	const op = "pemkey.EncodeECDSA"

	oid, ok := curveOIDs[curve]
	if !ok {
		return "", ppkerr.New(ppkerr.CodeUnsupportedAlgorithm, op, "unrecognised ECDSA curve")
	}

	body := der.Sequence(
		der.IntegerFromInt(1),
		der.OctetString(key.D),
		der.ContextExplicit(0, der.ObjectIdentifier(oid)),
		der.ContextExplicit(1, der.BitString(key.Q)),
	)
	return wrap("EC PRIVATE KEY", body), nil
}

func wrap(label string, body []byte) string {
	encoded := base64.StdEncoding.EncodeToString(body)
	var b strings.Builder
	b.WriteString("-----BEGIN " + label + "-----\n")
	for len(encoded) > wrapColumns {
		b.WriteString(encoded[:wrapColumns])
		b.WriteString("\n")
		encoded = encoded[wrapColumns:]
	}
	if len(encoded) > 0 {
		b.WriteString(encoded)
		b.WriteString("\n")
	}
	b.WriteString("-----END " + label + "-----\n")
	return b.String()
}
