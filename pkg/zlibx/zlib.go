// Package zlibx decompresses the zlib-framed sub-streams GM8 uses
// throughout the payload and asset sections (§4.6, §4.7). Format invariant:
// "zlib streams use standard 78 9C headers" (SPEC_FULL.md §6).
//
// GM8's own zlib streams use the default-compression header 78 9C; any
// other header is rejected. Rather than reach for stdlib compress/zlib, the raw
// DEFLATE body is inflated with the teacher's own compression dependency,
// github.com/dsnet/compress/flate, and the 2-byte header plus 4-byte
// Adler-32 trailer are handled directly here — the same "wrap one codec,
// expose Decompress" shape as the teacher's compress/gzip.go.
package zlibx

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"hash/adler32"
	"io"

	"github.com/dsnet/compress/flate"

	"github.com/xelivous-go/gm8reader/pkg/gm8errors"
)

const (
	zlibHeaderByte0 = 0x78
	zlibHeaderByte1 = 0x9C
)

// Decompress inflates a zlib stream (2-byte header + raw DEFLATE body +
// 4-byte Adler-32 trailer) and verifies the trailer against the inflated
// bytes.
func Decompress(data []byte) ([]byte, error) {
	if len(data) < 6 || data[0] != zlibHeaderByte0 || data[1] != zlibHeaderByte1 {
		return nil, fmt.Errorf("%w: missing zlib 78 9C header", gm8errors.ErrMalformedData)
	}

	body := data[2 : len(data)-4]
	trailer := data[len(data)-4:]

	fr, err := flate.NewReader(bytes.NewReader(body), &flate.ReaderConfig{})
	if err != nil {
		return nil, fmt.Errorf("%w: opening deflate stream: %v", gm8errors.ErrMalformedData, err)
	}
	defer fr.Close()

	out, err := io.ReadAll(fr)
	if err != nil {
		return nil, fmt.Errorf("%w: inflating: %v", gm8errors.ErrMalformedData, err)
	}

	if got := adler32.Checksum(out); got != binary.BigEndian.Uint32(trailer) {
		return nil, fmt.Errorf("%w: adler32 mismatch", gm8errors.ErrMalformedData)
	}

	return out, nil
}

// IsZeroSentinel reports whether data is exactly the 12-byte deflate
// encoding of four zero bytes (§4.7 step 1): the short-circuit case that
// must never invoke the decompressor.
func IsZeroSentinel(data []byte) bool {
	if len(data) != len(zeroSentinel) {
		return false
	}
	for i := range data {
		if data[i] != zeroSentinel[i] {
			return false
		}
	}
	return true
}

var zeroSentinel = [12]byte{0x78, 0x9C, 0x63, 0x60, 0x60, 0x60, 0x00, 0x00, 0x00, 0x04, 0x00, 0x01}
