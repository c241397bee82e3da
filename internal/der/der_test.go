package der_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cartpauj/ppk-to-openssh/internal/der"
)

func TestIntegerShort(t *testing.T) {
	require.Equal(t, []byte{0x02, 0x01, 0x05}, der.Integer([]byte{0x05}))
}

func TestIntegerHighBitGetsSignByte(t *testing.T) {
	require.Equal(t, []byte{0x02, 0x02, 0x00, 0x80}, der.Integer([]byte{0x80}))
}

func TestIntegerExistingLeadingZeroIsNormalised(t *testing.T) {
	// SSH mpint wire form already carries the sign byte; writer must not double it.
	require.Equal(t, []byte{0x02, 0x02, 0x00, 0x80}, der.Integer([]byte{0x00, 0x80}))
}

func TestIntegerZero(t *testing.T) {
	require.Equal(t, []byte{0x02, 0x01, 0x00}, der.Integer([]byte{0x00}))
	require.Equal(t, []byte{0x02, 0x01, 0x00}, der.Integer(nil))
}

func TestIntegerFromInt(t *testing.T) {
	require.Equal(t, []byte{0x02, 0x01, 0x00}, der.IntegerFromInt(0))
	require.Equal(t, []byte{0x02, 0x01, 0x01}, der.IntegerFromInt(1))
}

func TestOctetString(t *testing.T) {
	require.Equal(t, []byte{0x04, 0x03, 1, 2, 3}, der.OctetString([]byte{1, 2, 3}))
}

func TestBitString(t *testing.T) {
	got := der.BitString([]byte{0xAB, 0xCD})
	require.Equal(t, []byte{0x03, 0x03, 0x00, 0xAB, 0xCD}, got)
}

func TestSequence(t *testing.T) {
	a := der.IntegerFromInt(0)
	b := der.OctetString([]byte{1})
	got := der.Sequence(a, b)
	require.Equal(t, byte(0x30), got[0])
	require.Equal(t, byte(len(a)+len(b)), got[1])
}

func TestObjectIdentifierP256(t *testing.T) {
	// 1.2.840.10045.3.1.7
	got := der.ObjectIdentifier([]int{1, 2, 840, 10045, 3, 1, 7})
	require.Equal(t, []byte{0x06, 0x08, 0x2A, 0x86, 0x48, 0xCE, 0x3D, 0x03, 0x01, 0x07}, got)
}

func TestObjectIdentifierP384(t *testing.T) {
	// 1.3.132.0.34
	got := der.ObjectIdentifier([]int{1, 3, 132, 0, 34})
	require.Equal(t, []byte{0x06, 0x05, 0x2B, 0x81, 0x04, 0x00, 0x22}, got)
}

func TestContextExplicit(t *testing.T) {
	inner := der.OctetString([]byte{0x01})
	got := der.ContextExplicit(0, inner)
	require.Equal(t, byte(0xA0), got[0])
	require.Equal(t, byte(len(inner)), got[1])
}

func TestLongFormLength(t *testing.T) {
	content := make([]byte, 200)
	got := der.OctetString(content)
	require.Equal(t, byte(0x04), got[0])
	require.Equal(t, byte(0x81), got[1])
	require.Equal(t, byte(200), got[2])
	require.Len(t, got, 3+200)
}
