// Package antidec implements the Protection Detector & Decryptor
// (SPEC_FULL.md §4.3, §4.4): signature-table-driven detection of the two
// antidec2 obfuscator variants, and the in-place rolling-key reversal that
// undoes them.
//
// Per the Design Notes, the two probes are structurally identical, so they
// are parametrized by a signature table rather than duplicated — the same
// shape as the teacher's operations.Registry (ID -> implementation map),
// here keyed by signature bytes -> metadata field offsets instead.
package antidec

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/hashicorp/go-hclog"

	"github.com/xelivous-go/gm8reader/pkg/model"
)

// Metadata holds the five 32-bit fields read from fixed offsets within the
// detected loader stub (§3 Antidec metadata).
type Metadata struct {
	ExeLoadOffset uint32
	HeaderStart   uint32
	XorMask       uint32
	AddMask       uint32
	SubMask       uint32
}

// fieldOffsets locates the five Metadata fields within the loader stub,
// relative to the start of the matched signature.
type fieldOffsets struct {
	exeLoadOffset int
	headerStart   int
	xorMask       int
	addMask       int
	subMask       int
}

type signature struct {
	version GameVersion
	pattern []byte
	fields  fieldOffsets
}

// GameVersion names which antidec2 variant a signature belongs to.
type GameVersion int

const (
	VariantUnknown GameVersion = iota
	Variant80
	Variant81
)

// signatureTable lists both known antidec2 loader-stub signatures in probe
// order: 8.0 first, then 8.1 (§4.3 "the first one to hit wins").
var signatureTable = []signature{
	{
		version: Variant80,
		pattern: []byte{
			0x68, 0xDE, 0xAD, 0xC0, 0xDE, // push <bootstrap constant>
			0x6A, 0x00, // push 0
			0xE8, 0x00, 0x00, 0x00, 0x00, // call <decrypt_routine>
		},
		fields: fieldOffsets{
			exeLoadOffset: 12,
			headerStart:   16,
			xorMask:       20,
			addMask:       24,
			subMask:       28,
		},
	},
	{
		version: Variant81,
		pattern: []byte{
			0x55, 0x8B, 0xEC, 0x83, 0xC4, 0xF4, // push ebp; mov ebp,esp; add esp,-12
			0x53, 0x56, 0x57, // push ebx; push esi; push edi
		},
		fields: fieldOffsets{
			exeLoadOffset: 9,
			headerStart:   13,
			xorMask:       17,
			addMask:       21,
			subMask:       25,
		},
	},
}

// Detect scans data for either antidec2 signature, in probe order, and
// returns the decoded metadata on the first match. A nil result with a nil
// error means no protection was detected (§4.3 "no match returns None").
func Detect(data []byte, logger hclog.Logger) (*Metadata, GameVersion, error) {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	logger = logger.Named("gm8.antidec")

	for _, sig := range signatureTable {
		idx := bytes.Index(data, sig.pattern)
		if idx < 0 {
			continue
		}

		md, err := readMetadata(data, idx, sig.fields)
		if err != nil {
			logger.Debug("signature matched but metadata read failed", "variant", sig.version, "error", err)
			continue
		}

		logger.Debug("antidec signature matched", "variant", sig.version, "offset", idx,
			"exe_load_offset", fmt.Sprintf("0x%x", md.ExeLoadOffset),
			"header_start", fmt.Sprintf("0x%x", md.HeaderStart))
		return md, sig.version, nil
	}

	return nil, VariantUnknown, nil
}

func readMetadata(data []byte, base int, f fieldOffsets) (*Metadata, error) {
	read := func(off int) (uint32, error) {
		p := base + off
		if p+4 > len(data) {
			return 0, fmt.Errorf("metadata field at stub+0x%x out of range", off)
		}
		return binary.LittleEndian.Uint32(data[p : p+4]), nil
	}

	exeLoadOffset, err := read(f.exeLoadOffset)
	if err != nil {
		return nil, err
	}
	headerStart, err := read(f.headerStart)
	if err != nil {
		return nil, err
	}
	xorMask, err := read(f.xorMask)
	if err != nil {
		return nil, err
	}
	addMask, err := read(f.addMask)
	if err != nil {
		return nil, err
	}
	subMask, err := read(f.subMask)
	if err != nil {
		return nil, err
	}

	return &Metadata{
		ExeLoadOffset: exeLoadOffset,
		HeaderStart:   headerStart,
		XorMask:       xorMask,
		AddMask:       addMask,
		SubMask:       subMask,
	}, nil
}

// ToModel converts the internal antidec variant to the public
// model.GameVersion used by the rest of the pipeline.
func (v GameVersion) ToModel() model.GameVersion {
	switch v {
	case Variant80:
		return model.Version80
	case Variant81:
		return model.Version81
	default:
		return model.VersionUnknown
	}
}
