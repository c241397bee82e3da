package wire

import "encoding/binary"

// AppendUint32 appends a big-endian u32 to buf.
func AppendUint32(buf []byte, v uint32) []byte {
	var lenBuf [4]byte
	binary.BigEndian.PutUint32(lenBuf[:], v)
	return append(buf, lenBuf[:]...)
}

// AppendString appends an SSH wire string (u32 big-endian length followed
// by the raw bytes) to buf.
func AppendString(buf []byte, s []byte) []byte {
	buf = AppendUint32(buf, uint32(len(s)))
	return append(buf, s...)
}
