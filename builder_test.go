package parcelval

import (
	"bytes"
	"encoding/binary"
)

// parcelBuilder assembles little-endian, word-aligned buffers for tests.
type parcelBuilder struct{ buf bytes.Buffer }

func (p *parcelBuilder) i32(v int32) *parcelBuilder {
	var w [4]byte
	binary.LittleEndian.PutUint32(w[:], uint32(v))
	p.buf.Write(w[:])
	return p
}

func (p *parcelBuilder) i64(v int64) *parcelBuilder {
	var w [8]byte
	binary.LittleEndian.PutUint64(w[:], uint64(v))
	p.buf.Write(w[:])
	return p
}

// raw writes b and pads the buffer back to a word boundary.
func (p *parcelBuilder) raw(b []byte) *parcelBuilder {
	p.buf.Write(b)
	for p.buf.Len()%4 != 0 {
		p.buf.WriteByte(0)
	}
	return p
}

// str writes s in the transport's native convention (i32 length + padded
// body), as used for keys and type names.
func (p *parcelBuilder) str(s string) *parcelBuilder {
	p.i32(int32(len(s)))
	return p.raw([]byte(s))
}

// str8 writes s as a string8: u32 length excluding the terminator, body,
// NUL, padding to the word boundary.
func (p *parcelBuilder) str8(s string) *parcelBuilder {
	p.i32(int32(len(s)))
	return p.raw(append([]byte(s), 0))
}

func (p *parcelBuilder) bytes() []byte { return p.buf.Bytes() }

func (p *parcelBuilder) reader() *Reader { return NewReader(p.bytes()) }
