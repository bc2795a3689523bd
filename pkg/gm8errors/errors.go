// Package gm8errors defines the sentinel error taxonomy shared across the
// gm8reader pipeline (PE inspection, UPX, antidec, payload, assets).
package gm8errors

import (
	"errors"
	"fmt"
)

var (
	// InvalidExeHeader covers MZ/PE/i386 validation failures (§4.1).
	ErrInvalidExeHeader = errors.New("invalid exe header")

	// PartialUPXPacking is returned when exactly one of UPX0/UPX1 exists.
	ErrPartialUPXPacking = errors.New("partial UPX packing: exactly one of UPX0/UPX1 present")

	// UnknownFormat is returned when no protection signature matched and no
	// clean GM8.0/8.1 header was found, or when antidec reversal produced a
	// stream whose follow-on magic does not match.
	ErrUnknownFormat = errors.New("unknown format: no recognizable GM8 header")

	// MalformedData covers inflate failures and bad record framing (§4.7).
	ErrMalformedData = errors.New("malformed data")
)

// VersionError is returned when a section version tag mismatches its
// documented constant under strict mode.
type VersionError struct {
	Section  string
	Expected uint32
	Got      uint32
}

func (e *VersionError) Error() string {
	return fmt.Sprintf("version mismatch in %s: expected %d, got %d", e.Section, e.Expected, e.Got)
}
