// Package payload implements the Version Header Finder & Inner Decrypt and
// the Payload Reader (SPEC_FULL.md §4.5, §4.6): once antidec has been
// reversed (or skipped, for an unprotected exe), this package locates the
// GM8.0 or GM8.1 payload header, applies whichever version-specific inner
// decryption is still pending, and reads the fixed sequence of payload
// fields and asset sections through to the closing room order list.
package payload

import (
	"encoding/binary"
	"fmt"

	"github.com/hashicorp/go-hclog"

	"github.com/xelivous-go/gm8reader/pkg/bitreader"
	"github.com/xelivous-go/gm8reader/pkg/gm8errors"
	"github.com/xelivous-go/gm8reader/pkg/model"
)

const (
	// gm80HeaderMagic is the fixed 32-bit value GameMaker 8.0 writes ahead
	// of its version word, both for protected and unprotected exes.
	gm80HeaderMagic = 1234321

	// gm80HeaderSkip is the total header size skipped, counted from the
	// magic, once the magic is found (§4.5 "seek past 16 bytes of header").
	// The version word after the magic is not checked.
	gm80HeaderSkip = 16

	// gm80SearchWindow bounds the short forward scan for the 8.0 magic when
	// it is not exactly at the current position (antidec garbage can shift
	// it by a few bytes).
	gm80SearchWindow = 1024

	// gm81Magic is the bit-for-bit 32-bit value that marks a GM8.1 payload
	// header (§4.5 "8.1 header").
	gm81Magic = 0xF7140067

	// gm81HeaderSkip is skipped after the seed decrypt completes.
	gm81HeaderSkip = 20
)

// FindHeader scans cur for either version's payload header, applies the
// 8.1 inner decryption if that variant is found, and leaves the cursor
// positioned at the start of the settings block. Returns ErrUnknownFormat
// if neither header is found.
func FindHeader(cur *bitreader.Cursor, logger hclog.Logger) (model.GameVersion, error) {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	logger = logger.Named("gm8.payload")

	if found, err := find80Header(cur); err != nil {
		return model.VersionUnknown, err
	} else if found {
		logger.Debug("found GM8.0 payload header", "pos", cur.Pos())
		return model.Version80, nil
	}

	if found, err := find81Header(cur, logger); err != nil {
		return model.VersionUnknown, err
	} else if found {
		logger.Debug("found GM8.1 payload header", "pos", cur.Pos())
		return model.Version81, nil
	}

	return model.VersionUnknown, gm8errors.ErrUnknownFormat
}

func find80Header(cur *bitreader.Cursor) (bool, error) {
	start := cur.Pos()
	window := gm80SearchWindow
	if cur.Remaining() < window {
		window = cur.Remaining()
	}

	probe, err := cur.Peek(window)
	if err != nil || len(probe) < 8 {
		return false, nil
	}

	for i := 0; i+8 <= len(probe); i++ {
		if binary.LittleEndian.Uint32(probe[i:i+4]) != gm80HeaderMagic {
			continue
		}
		matchPos := start + i
		if err := cur.Seek(matchPos + gm80HeaderSkip); err != nil {
			return false, fmt.Errorf("%w: 8.0 header found but header skip out of range", gm8errors.ErrMalformedData)
		}
		return true, nil
	}
	return false, nil
}

func find81Header(cur *bitreader.Cursor, logger hclog.Logger) (bool, error) {
	start := cur.Pos()
	buf := cur.Bytes()

	idx := -1
	for i := start; i+4 <= len(buf); i++ {
		if binary.LittleEndian.Uint32(buf[i:i+4]) == gm81Magic {
			idx = i
			break
		}
	}
	if idx < 0 {
		logger.Debug("did not find GM8.1 magic value before EOF")
		return false, nil
	}

	if err := cur.Seek(idx); err != nil {
		return false, err
	}
	if err := Decrypt81(cur, ModeNormal, logger); err != nil {
		return false, err
	}
	if err := cur.Skip(gm81HeaderSkip); err != nil {
		return false, fmt.Errorf("%w: 8.1 header skip out of range", gm8errors.ErrMalformedData)
	}
	return true, nil
}
