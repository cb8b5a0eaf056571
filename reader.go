package parcelval

import "encoding/binary"

// Reader is a positioned view over one received parcel buffer. All
// multi-byte fields are little-endian and the stream is 4-byte-word
// aligned; every padded read lands the position back on a word boundary.
//
// A read past the end of the buffer fails with ErrTruncated and leaves the
// position unchanged. Reader is not safe for concurrent use; decode each
// buffer from a single goroutine.
type Reader struct {
	buf []byte
	pos int
}

// NewReader wraps buf. The buffer is not copied and must not be mutated
// for the duration of the decode.
func NewReader(buf []byte) *Reader { return &Reader{buf: buf} }

// Position returns the current byte offset from the start of the buffer.
func (r *Reader) Position() int { return r.pos }

// Size returns the total buffer length in bytes.
func (r *Reader) Size() int { return len(r.buf) }

// Remaining returns the number of unread bytes.
func (r *Reader) Remaining() int { return len(r.buf) - r.pos }

// ReadUint32 reads one little-endian 32-bit word.
func (r *Reader) ReadUint32() (uint32, error) {
	if r.Remaining() < 4 {
		return 0, ErrTruncated
	}
	w := binary.LittleEndian.Uint32(r.buf[r.pos:])
	r.pos += 4
	return w, nil
}

// ReadInt32 reads one little-endian 32-bit word as a signed integer.
func (r *Reader) ReadInt32() (int32, error) {
	w, err := r.ReadUint32()
	return int32(w), err
}

// ReadInt64 reads two consecutive words as a little-endian signed 64-bit
// integer.
func (r *Reader) ReadInt64() (int64, error) {
	if r.Remaining() < 8 {
		return 0, ErrTruncated
	}
	v := binary.LittleEndian.Uint64(r.buf[r.pos:])
	r.pos += 8
	return int64(v), nil
}

// readPadded returns the next n raw bytes and advances past them plus the
// padding needed to land the position back on a word boundary. The bounds
// check covers the padding, so a string whose body fits but whose padding
// does not is still a truncation.
func (r *Reader) readPadded(n int) ([]byte, error) {
	padded := (n + 3) &^ 3
	if n < 0 || padded < n || padded > r.Remaining() {
		return nil, ErrTruncated
	}
	b := r.buf[r.pos : r.pos+n]
	r.pos += padded
	return b, nil
}
