package gm8reader

import (
	"encoding/binary"
	"errors"
	"testing"

	"github.com/xelivous-go/gm8reader/pkg/gm8errors"
)

// buildMinimalPE assembles just enough of an MZ/PE/i386 image for
// pe.Inspect to accept it: MZ stub, e_lfanew pointing at a bare COFF header
// (no optional header), and a section table built from names.
func buildMinimalPE(sectionNames []string) []byte {
	const peOff = 0x80

	buf := make([]byte, peOff)
	buf[0], buf[1] = 'M', 'Z'
	binary.LittleEndian.PutUint32(buf[0x3C:0x40], peOff)

	buf = append(buf, 'P', 'E', 0, 0)
	buf = append(buf, 0x4C, 0x01) // machine = i386

	coffRest := make([]byte, 18) // NumberOfSections(2) + 12 + SizeOfOptionalHeader(2) + Characteristics(2)
	binary.LittleEndian.PutUint16(coffRest[0:2], uint16(len(sectionNames)))
	buf = append(buf, coffRest...)

	for _, name := range sectionNames {
		sec := make([]byte, 40)
		copy(sec[0:8], name)
		buf = append(buf, sec...)
	}

	// pad out a body so there's something for the header scans to search.
	buf = append(buf, make([]byte, 256)...)
	return buf
}

func TestParseRejectsNonPE(t *testing.T) {
	r := New(nil)
	_, err := r.Parse([]byte("not an exe"), Options{})
	if !errors.Is(err, gm8errors.ErrInvalidExeHeader) {
		t.Fatalf("err = %v, want ErrInvalidExeHeader", err)
	}
}

func TestParseUnrecognizedUnpacked(t *testing.T) {
	data := buildMinimalPE(nil)
	r := New(nil)
	_, err := r.Parse(data, Options{})
	if !errors.Is(err, gm8errors.ErrUnknownFormat) {
		t.Fatalf("err = %v, want ErrUnknownFormat", err)
	}
}

func TestParsePartialUPX(t *testing.T) {
	data := buildMinimalPE([]string{"UPX0"})
	r := New(nil)
	_, err := r.Parse(data, Options{})
	if !errors.Is(err, gm8errors.ErrPartialUPXPacking) {
		t.Fatalf("err = %v, want ErrPartialUPXPacking", err)
	}
}
