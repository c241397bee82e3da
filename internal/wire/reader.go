package wire

import (
	"encoding/binary"

	"github.com/cartpauj/ppk-to-openssh/internal/ppkerr"
)

// ErrBufferUnderrun is returned when a read would pass the end of the slice.
var ErrBufferUnderrun error = ppkerr.New(ppkerr.CodeBufferUnderrun, "wire.Reader", "")

// ErrFieldTooLarge is returned when a length prefix exceeds the configured cap.
var ErrFieldTooLarge error = ppkerr.New(ppkerr.CodeFieldTooLarge, "wire.Reader", "")

// defaultMaxFieldSize is used when a Reader is constructed without an
// explicit cap via NewReader, or with a non-positive cap via
// NewReaderWithCap; callers that need a different cap should use
// NewReaderWithCap.
const defaultMaxFieldSize = 1 << 20

// Reader decodes the SSH wire format over an immutable byte slice. It holds
// only a cursor; the underlying slice is never mutated or copied.
type Reader struct {
	buf    []byte
	pos    int
	maxLen int
}

// NewReader returns a Reader over buf with the default 1 MiB field cap.
func NewReader(buf []byte) *Reader {
	return NewReaderWithCap(buf, defaultMaxFieldSize)
}

// NewReaderWithCap returns a Reader over buf, rejecting any length-prefixed
// field whose declared length exceeds maxFieldSize. A maxFieldSize of zero or
// less applies the default 1 MiB cap.
func NewReaderWithCap(buf []byte, maxFieldSize int) *Reader {
	if maxFieldSize <= 0 {
		maxFieldSize = defaultMaxFieldSize
	}
	return &Reader{buf: buf, maxLen: maxFieldSize}
}

// Len reports the number of unread bytes remaining.
func (r *Reader) Len() int {
	return len(r.buf) - r.pos
}

// ReadUint32 reads a big-endian u32.
func (r *Reader) ReadUint32() (uint32, error) {
	if r.Len() < 4 {
		return 0, ErrBufferUnderrun
	}
	v := binary.BigEndian.Uint32(r.buf[r.pos : r.pos+4])
	r.pos += 4
	return v, nil
}

// ReadRaw reads exactly n raw bytes with no length prefix.
func (r *Reader) ReadRaw(n int) ([]byte, error) {
	if n < 0 {
		return nil, ErrBufferUnderrun
	}
	if r.Len() < n {
		return nil, ErrBufferUnderrun
	}
	out := r.buf[r.pos : r.pos+n]
	r.pos += n
	return out, nil
}

// ReadBytes reads a u32 length prefix followed by that many raw bytes.
// The length is checked against the configured cap before any allocation
// decision is made by the caller.
func (r *Reader) ReadBytes() ([]byte, error) {
	n, err := r.ReadUint32()
	if err != nil {
		return nil, err
	}
	if int(n) > r.maxLen {
		return nil, ErrFieldTooLarge
	}
	return r.ReadRaw(int(n))
}

// ReadString reads a u32 length prefix followed by that many bytes and
// returns them as a string (SSH wire "string" type, used for both text and
// binary fields per RFC 4251 §5).
func (r *Reader) ReadString() (string, error) {
	b, err := r.ReadBytes()
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Remaining returns the unread tail of the buffer without advancing the
// cursor.
func (r *Reader) Remaining() []byte {
	return r.buf[r.pos:]
}
