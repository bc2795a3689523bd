package pe

import (
	"encoding/binary"
	"errors"
	"testing"

	"github.com/xelivous-go/gm8reader/pkg/gm8errors"
)

// buildMinimalPE assembles a minimal i386 PE image with the given section
// names, for exercising the inspector without a real executable on disk.
func buildMinimalPE(t *testing.T, sectionNames ...string) []byte {
	t.Helper()

	const peHeaderLoc = 0x80
	const optHdrSize = 0 // keep the fixture simple: no optional header
	sectionTableOffset := peHeaderLoc + 4 + 20 + optHdrSize

	buf := make([]byte, sectionTableOffset+40*len(sectionNames))
	buf[0] = 'M'
	buf[1] = 'Z'
	binary.LittleEndian.PutUint32(buf[0x3C:0x40], uint32(peHeaderLoc))

	copy(buf[peHeaderLoc:], []byte{'P', 'E', 0, 0, 0x4C, 0x01})

	coff := peHeaderLoc + 4
	binary.LittleEndian.PutUint16(buf[coff+2:coff+4], uint16(len(sectionNames)))
	binary.LittleEndian.PutUint16(buf[coff+16:coff+18], uint16(optHdrSize))

	for i, name := range sectionNames {
		off := sectionTableOffset + i*40
		copy(buf[off:off+8], []byte(name))
		binary.LittleEndian.PutUint32(buf[off+8:off+12], 0x1000)  // VirtualSize
		binary.LittleEndian.PutUint32(buf[off+12:off+16], 0x1000) // VirtualAddress
		binary.LittleEndian.PutUint32(buf[off+16:off+20], 0x200)  // SizeOfRawData
		binary.LittleEndian.PutUint32(buf[off+20:off+24], uint32(len(buf))) // PointerToRawData
	}

	return buf
}

func TestInspectNoProtection(t *testing.T) {
	data := buildMinimalPE(t, ".text\x00\x00\x00", ".data\x00\x00\x00")

	info, err := Inspect(data, nil)
	if err != nil {
		t.Fatalf("Inspect: %v", err)
	}
	if len(info.Sections) != 2 {
		t.Fatalf("got %d sections, want 2", len(info.Sections))
	}
	if info.UPX != nil {
		t.Fatalf("unexpected UPX state: %+v", info.UPX)
	}
}

func TestInspectUPXBothPresent(t *testing.T) {
	data := buildMinimalPE(t, "UPX0\x00\x00\x00\x00", "UPX1\x00\x00\x00\x00")

	info, err := Inspect(data, nil)
	if err != nil {
		t.Fatalf("Inspect: %v", err)
	}
	if info.UPX == nil {
		t.Fatal("expected UPX state, got nil")
	}
	if info.UPX.MaxSize != 0x2000 {
		t.Errorf("max size = 0x%x, want 0x2000", info.UPX.MaxSize)
	}
}

func TestInspectPartialUPX(t *testing.T) {
	data := buildMinimalPE(t, "UPX0\x00\x00\x00\x00", ".data\x00\x00\x00")

	_, err := Inspect(data, nil)
	if err == nil {
		t.Fatal("expected error for partial UPX packing, got nil")
	}
	if !errors.Is(err, gm8errors.ErrPartialUPXPacking) {
		t.Errorf("got %v, want ErrPartialUPXPacking", err)
	}
}

func TestInspectBadMagic(t *testing.T) {
	data := make([]byte, 128)
	_, err := Inspect(data, nil)
	if !errors.Is(err, gm8errors.ErrInvalidExeHeader) {
		t.Errorf("got %v, want ErrInvalidExeHeader", err)
	}
}
