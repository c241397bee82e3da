package wire_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cartpauj/ppk-to-openssh/internal/wire"
)

func TestReaderReadUint32(t *testing.T) {
	r := wire.NewReader([]byte{0x00, 0x00, 0x01, 0x02, 0xAA})
	v, err := r.ReadUint32()
	require.NoError(t, err)
	require.Equal(t, uint32(0x0102), v)
	require.Equal(t, 1, r.Len())
}

func TestReaderReadUint32Underrun(t *testing.T) {
	r := wire.NewReader([]byte{0x00, 0x01})
	_, err := r.ReadUint32()
	require.ErrorIs(t, err, wire.ErrBufferUnderrun)
}

func TestReaderReadBytes(t *testing.T) {
	buf := []byte{0x00, 0x00, 0x00, 0x03, 'f', 'o', 'o', 0xFF}
	r := wire.NewReader(buf)
	b, err := r.ReadBytes()
	require.NoError(t, err)
	require.Equal(t, []byte("foo"), b)
	require.Equal(t, 1, r.Len())
}

func TestReaderReadBytesUnderrun(t *testing.T) {
	buf := []byte{0x00, 0x00, 0x00, 0x05, 'f', 'o'}
	r := wire.NewReader(buf)
	_, err := r.ReadBytes()
	require.ErrorIs(t, err, wire.ErrBufferUnderrun)
}

func TestReaderReadBytesFieldTooLarge(t *testing.T) {
	buf := []byte{0x00, 0x10, 0x00, 0x00}
	r := wire.NewReaderWithCap(buf, 1024)
	_, err := r.ReadBytes()
	require.ErrorIs(t, err, wire.ErrFieldTooLarge)
}

func TestReaderReadString(t *testing.T) {
	buf := []byte{0x00, 0x00, 0x00, 0x07, 's', 's', 'h', '-', 'r', 's', 'a'}
	r := wire.NewReader(buf)
	s, err := r.ReadString()
	require.NoError(t, err)
	require.Equal(t, "ssh-rsa", s)
}

func TestReaderReadRaw(t *testing.T) {
	r := wire.NewReader([]byte{1, 2, 3, 4})
	b, err := r.ReadRaw(3)
	require.NoError(t, err)
	require.Equal(t, []byte{1, 2, 3}, b)
	require.Equal(t, []byte{4}, r.Remaining())
}

func TestReaderSequentialFields(t *testing.T) {
	// "ssh-rsa", e=65537 (3 bytes 01 00 01), n=1 byte 0x80
	var buf []byte
	buf = append(buf, 0x00, 0x00, 0x00, 0x07)
	buf = append(buf, "ssh-rsa"...)
	buf = append(buf, 0x00, 0x00, 0x00, 0x03, 0x01, 0x00, 0x01)
	buf = append(buf, 0x00, 0x00, 0x00, 0x01, 0x80)

	r := wire.NewReader(buf)
	algo, err := r.ReadString()
	require.NoError(t, err)
	require.Equal(t, "ssh-rsa", algo)

	e, err := r.ReadBytes()
	require.NoError(t, err)
	require.Equal(t, []byte{0x01, 0x00, 0x01}, e)

	n, err := r.ReadBytes()
	require.NoError(t, err)
	require.Equal(t, []byte{0x80}, n)

	require.Equal(t, 0, r.Len())
}
