// Package wire implements the big-endian primitive emitters that the
// structure block, the typed property values, and the header are written
// through. The strings block is the exception: internal/strtab appends its
// NUL-terminated names to its own byte slice directly.
package wire

import "encoding/binary"

// Buffer is a growable, append-only byte sequence with 4-byte alignment
// helpers.
type Buffer struct {
	b []byte
}

// NewBuffer returns an empty buffer.
func NewBuffer() *Buffer {
	return &Buffer{}
}

// Len returns the number of bytes written so far.
func (buf *Buffer) Len() int {
	return len(buf.b)
}

// Bytes returns the accumulated bytes. The caller must not mutate the
// returned slice if the buffer is still in use.
func (buf *Buffer) Bytes() []byte {
	return buf.b
}

// PutUint32 appends v as 4 big-endian bytes.
func (buf *Buffer) PutUint32(v uint32) {
	var tmp [4]byte
	binary.BigEndian.PutUint32(tmp[:], v)
	buf.b = append(buf.b, tmp[:]...)
}

// PutUint64 appends v as 8 big-endian bytes.
func (buf *Buffer) PutUint64(v uint64) {
	var tmp [8]byte
	binary.BigEndian.PutUint64(tmp[:], v)
	buf.b = append(buf.b, tmp[:]...)
}

// PutBytes appends b verbatim.
func (buf *Buffer) PutBytes(b []byte) {
	buf.b = append(buf.b, b...)
}

// Align4 zero-pads the buffer until its length is a multiple of 4.
func (buf *Buffer) Align4() {
	for buf.Len()%4 != 0 {
		buf.b = append(buf.b, 0)
	}
}

// PutUint32At overwrites the 4 big-endian bytes at offset with v.
// Used by the finalizer to back-patch header fields after the rest of the
// blob has been sized.
func PutUint32At(b []byte, offset int, v uint32) {
	binary.BigEndian.PutUint32(b[offset:offset+4], v)
}

// PutUint64At overwrites the 8 big-endian bytes at offset with v.
func PutUint64At(b []byte, offset int, v uint64) {
	binary.BigEndian.PutUint64(b[offset:offset+8], v)
}
