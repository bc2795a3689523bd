// Package pe implements the PE Inspector (SPEC_FULL.md §4.1): it validates
// the MS-DOS/PE header, enumerates sections, and records the UPX0/UPX1 and
// .rsrc locations a later stage needs. The offset arithmetic here is
// grounded directly on the teacher's pe_utils.go — same field offsets, same
// encoding/binary.LittleEndian style, no unsafe and no reflection-based
// unmarshal.
package pe

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/hashicorp/go-hclog"

	"github.com/xelivous-go/gm8reader/pkg/gm8errors"
)

// Section is one 40-byte PE section table record.
type Section struct {
	Name             [8]byte
	VirtualSize      uint32
	VirtualAddress   uint32
	SizeOfRawData    uint32
	PointerToRawData uint32
}

func (s Section) NameString() string {
	i := bytes.IndexByte(s.Name[:], 0)
	if i < 0 {
		i = len(s.Name)
	}
	return string(s.Name[:i])
}

// UPXState is the pair (combined virtual size of UPX0+UPX1, disk offset of
// UPX1). Both present is the only valid non-nil value; exactly one present
// is a fatal PartialUPXPacking error (checked here, at detection time).
type UPXState struct {
	MaxSize    uint32
	DiskOffset uint32
}

// Info is the PE Inspector's output: the full section list (kept for
// downstream .rsrc lookup), optional UPX state, optional .rsrc disk
// offset.
type Info struct {
	Sections    []Section
	UPX         *UPXState
	RsrcOffset  *uint32
}

var (
	upx0Name  = [8]byte{'U', 'P', 'X', '0', 0, 0, 0, 0}
	upx1Name  = [8]byte{'U', 'P', 'X', '1', 0, 0, 0, 0}
	rsrcName  = [8]byte{'.', 'r', 's', 'r', 'c', 0, 0, 0}
	peSigI386 = []byte{'P', 'E', 0, 0, 0x4C, 0x01}
)

// Inspect validates the MZ/PE/i386 header and walks the section table.
func Inspect(data []byte, logger hclog.Logger) (*Info, error) {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	logger = logger.Named("gm8.pe")

	if len(data) < 64 {
		return nil, fmt.Errorf("%w: file too short (%d bytes)", gm8errors.ErrInvalidExeHeader, len(data))
	}
	if data[0] != 'M' || data[1] != 'Z' {
		return nil, fmt.Errorf("%w: missing MZ signature", gm8errors.ErrInvalidExeHeader)
	}

	if len(data) < 0x40 {
		return nil, fmt.Errorf("%w: no room for e_lfanew", gm8errors.ErrInvalidExeHeader)
	}
	peHeaderLoc := int(binary.LittleEndian.Uint32(data[0x3C:0x40]))
	if peHeaderLoc < 0 || peHeaderLoc+6 > len(data) {
		return nil, fmt.Errorf("%w: e_lfanew 0x%x past EOF", gm8errors.ErrInvalidExeHeader, peHeaderLoc)
	}

	if !bytes.Equal(data[peHeaderLoc:peHeaderLoc+6], peSigI386) {
		return nil, fmt.Errorf("%w: not an i386 PE image at 0x%x", gm8errors.ErrInvalidExeHeader, peHeaderLoc)
	}

	// COFF file header begins right after the 4-byte "PE\0\0" signature.
	coff := peHeaderLoc + 4
	if coff+20 > len(data) {
		return nil, fmt.Errorf("%w: COFF header truncated", gm8errors.ErrInvalidExeHeader)
	}

	numSections := int(binary.LittleEndian.Uint16(data[coff+2 : coff+4]))
	// Skip: Machine(2) NumberOfSections(2) [already read] TimeDateStamp(4)
	// PointerToSymbolTable(4) NumberOfSymbols(4) = 12 bytes after the count,
	// then SizeOfOptionalHeader(2) and Characteristics(2).
	optHdrSizeOffset := coff + 4 + 12
	if optHdrSizeOffset+2 > len(data) {
		return nil, fmt.Errorf("%w: COFF header truncated before optional header size", gm8errors.ErrInvalidExeHeader)
	}
	optHdrSize := int(binary.LittleEndian.Uint16(data[optHdrSizeOffset : optHdrSizeOffset+2]))

	sectionTableOffset := optHdrSizeOffset + 2 + 2 + optHdrSize
	logger.Debug("parsed COFF header", "num_sections", numSections, "opt_hdr_size", optHdrSize, "section_table_offset", sectionTableOffset)

	sections := make([]Section, 0, numSections)
	var upx0, upx1 *Section
	var rsrcOffset *uint32

	for i := 0; i < numSections; i++ {
		off := sectionTableOffset + i*40
		if off+40 > len(data) {
			return nil, fmt.Errorf("%w: section table entry %d truncated", gm8errors.ErrInvalidExeHeader, i)
		}

		var sec Section
		copy(sec.Name[:], data[off:off+8])
		sec.VirtualSize = binary.LittleEndian.Uint32(data[off+8 : off+12])
		sec.VirtualAddress = binary.LittleEndian.Uint32(data[off+12 : off+16])
		sec.SizeOfRawData = binary.LittleEndian.Uint32(data[off+16 : off+20])
		sec.PointerToRawData = binary.LittleEndian.Uint32(data[off+20 : off+24])

		sections = append(sections, sec)

		switch sec.Name {
		case upx0Name:
			s := sec
			upx0 = &s
		case upx1Name:
			s := sec
			upx1 = &s
		case rsrcName:
			v := sec.PointerToRawData
			rsrcOffset = &v
		}

		logger.Trace("section", "index", i, "name", sec.NameString(), "raw_size", sec.SizeOfRawData, "raw_offset", sec.PointerToRawData)
	}

	var upx *UPXState
	switch {
	case upx0 != nil && upx1 != nil:
		upx = &UPXState{
			MaxSize:    upx0.VirtualSize + upx1.VirtualSize,
			DiskOffset: upx1.PointerToRawData,
		}
		logger.Debug("found UPX0+UPX1", "max_size", upx.MaxSize, "disk_offset", upx.DiskOffset)
	case upx0 != nil || upx1 != nil:
		return nil, gm8errors.ErrPartialUPXPacking
	}

	return &Info{Sections: sections, UPX: upx, RsrcOffset: rsrcOffset}, nil
}
