// Package bitreader implements the seekable byte Cursor (§3 Data Model)
// that every pipeline stage advances through. The same underlying buffer
// is shared by every stage; decryption stages mutate it in place, later
// stages reborrow it as read-only.
package bitreader

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
)

// Cursor is a seekable byte cursor over an owned, mutable buffer.
type Cursor struct {
	buf []byte
	pos int
}

// New wraps buf in a Cursor positioned at offset 0. The Cursor does not
// copy buf; callers that need an independent mutable buffer must copy it
// themselves first.
func New(buf []byte) *Cursor {
	return &Cursor{buf: buf}
}

// Len returns the total buffer length.
func (c *Cursor) Len() int { return len(c.buf) }

// Pos returns the current read position.
func (c *Cursor) Pos() int { return c.pos }

// Bytes returns the whole underlying buffer (mutable).
func (c *Cursor) Bytes() []byte { return c.buf }

// Remaining returns the number of unread bytes.
func (c *Cursor) Remaining() int { return len(c.buf) - c.pos }

// Seek moves the cursor to an absolute offset.
func (c *Cursor) Seek(offset int) error {
	if offset < 0 || offset > len(c.buf) {
		return fmt.Errorf("seek %d out of range [0,%d]", offset, len(c.buf))
	}
	c.pos = offset
	return nil
}

// Skip advances the cursor by n bytes.
func (c *Cursor) Skip(n int) error {
	return c.Seek(c.pos + n)
}

// Peek returns the next n bytes without advancing the cursor.
func (c *Cursor) Peek(n int) ([]byte, error) {
	if c.pos+n > len(c.buf) {
		return nil, io.ErrUnexpectedEOF
	}
	return c.buf[c.pos : c.pos+n], nil
}

// ReadBytes reads and returns the next n bytes, advancing the cursor. The
// returned slice aliases the underlying buffer.
func (c *Cursor) ReadBytes(n int) ([]byte, error) {
	b, err := c.Peek(n)
	if err != nil {
		return nil, err
	}
	c.pos += n
	return b, nil
}

// ReadU8 reads a single byte.
func (c *Cursor) ReadU8() (byte, error) {
	b, err := c.ReadBytes(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

// ReadU16 reads a little-endian u16.
func (c *Cursor) ReadU16() (uint16, error) {
	b, err := c.ReadBytes(2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b), nil
}

// ReadU32 reads a little-endian u32.
func (c *Cursor) ReadU32() (uint32, error) {
	b, err := c.ReadBytes(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

// ReadI32 reads a little-endian i32.
func (c *Cursor) ReadI32() (int32, error) {
	v, err := c.ReadU32()
	return int32(v), err
}

// ReadF64 reads a little-endian IEEE-754 double, the format GM8 uses for
// path points, sound volume/pan and room physics fields.
func (c *Cursor) ReadF64() (float64, error) {
	b, err := c.ReadBytes(8)
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(binary.LittleEndian.Uint64(b)), nil
}

// ReadBool32 reads a GM8 "boolean" encoded as a u32 (nonzero is true).
func (c *Cursor) ReadBool32() (bool, error) {
	v, err := c.ReadU32()
	return v != 0, err
}

// ReadPascalString reads a u32 length prefix followed by that many raw
// bytes (§GLOSSARY Pascal string). No terminator, no decoding: callers that
// need text decide on Shift-JIS vs. Windows-1252 themselves.
func (c *Cursor) ReadPascalString() ([]byte, error) {
	n, err := c.ReadU32()
	if err != nil {
		return nil, err
	}
	return c.ReadBytes(int(n))
}

// ReadPascalStringAsString is a convenience wrapper that treats the bytes
// as Latin-1/ASCII, sufficient for the identifiers and expressions this
// reader never re-encodes.
func (c *Cursor) ReadPascalStringAsString() (string, error) {
	b, err := c.ReadPascalString()
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// ReadLenPrefixedBlock reads a u32 length prefix followed by that many raw
// bytes, the generic framing used for DirectX DLL bytes and other
// non-compressed blobs.
func (c *Cursor) ReadLenPrefixedBlock() ([]byte, error) {
	return c.ReadPascalString()
}
