package wire_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cartpauj/ppk-to-openssh/internal/wire"
)

func TestAppendStringRoundTripsThroughReader(t *testing.T) {
	var buf []byte
	buf = wire.AppendString(buf, []byte("ssh-ed25519"))
	buf = wire.AppendString(buf, []byte{1, 2, 3})

	r := wire.NewReader(buf)
	s, err := r.ReadString()
	require.NoError(t, err)
	require.Equal(t, "ssh-ed25519", s)
	b, err := r.ReadBytes()
	require.NoError(t, err)
	require.Equal(t, []byte{1, 2, 3}, b)
}

func TestAppendUint32(t *testing.T) {
	buf := wire.AppendUint32(nil, 0x01020304)
	require.Equal(t, []byte{0x01, 0x02, 0x03, 0x04}, buf)
}
