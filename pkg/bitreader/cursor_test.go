package bitreader

import (
	"testing"
)

func TestCursorReadU32(t *testing.T) {
	tests := []struct {
		name string
		buf  []byte
		want uint32
	}{
		{"zero", []byte{0x00, 0x00, 0x00, 0x00}, 0},
		{"one", []byte{0x01, 0x00, 0x00, 0x00}, 1},
		{"little endian order", []byte{0xEF, 0xBE, 0xAD, 0xDE}, 0xDEADBEEF},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := New(tc.buf)
			got, err := c.ReadU32()
			if err != nil {
				t.Fatalf("ReadU32: %v", err)
			}
			if got != tc.want {
				t.Errorf("got 0x%x, want 0x%x", got, tc.want)
			}
			if c.Pos() != 4 {
				t.Errorf("pos = %d, want 4", c.Pos())
			}
		})
	}
}

func TestCursorPascalString(t *testing.T) {
	buf := []byte{5, 0, 0, 0, 'h', 'e', 'l', 'l', 'o'}
	c := New(buf)

	s, err := c.ReadPascalStringAsString()
	if err != nil {
		t.Fatalf("ReadPascalStringAsString: %v", err)
	}
	if s != "hello" {
		t.Errorf("got %q, want %q", s, "hello")
	}
	if c.Remaining() != 0 {
		t.Errorf("remaining = %d, want 0", c.Remaining())
	}
}

func TestCursorReadBytesShortEOF(t *testing.T) {
	c := New([]byte{1, 2, 3})
	if _, err := c.ReadBytes(10); err == nil {
		t.Fatal("expected error on short read, got nil")
	}
}

func TestCursorSeekOutOfRange(t *testing.T) {
	c := New([]byte{1, 2, 3})
	if err := c.Seek(10); err == nil {
		t.Fatal("expected error seeking out of range, got nil")
	}
	if err := c.Seek(-1); err == nil {
		t.Fatal("expected error seeking negative, got nil")
	}
}
