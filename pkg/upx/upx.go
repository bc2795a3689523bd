// Package upx implements the UPX Unpacker (SPEC_FULL.md §4.2): UPX's
// canonical NRV2B bitstream decoder, run over the packed region recorded by
// the PE Inspector to produce a freshly owned, decompressed buffer.
//
// There is no teacher file that implements NRV2B directly — provide.io's
// operations package only wraps general-purpose codecs (gzip, bzip2) with
// a symmetric Apply/Reverse pair. This decoder follows that same
// Reader-owns-its-bitstream shape (a small bit-source type refilled a byte
// at a time, mirroring dsnet/compress's internal bit readers) applied to
// UPX's specific back-reference scheme.
package upx

import (
	"fmt"

	"github.com/hashicorp/go-hclog"

	"github.com/xelivous-go/gm8reader/pkg/gm8errors"
)

// bitSource is an MSB-first bit reader over a byte slice, refilling one
// byte at a time.
type bitSource struct {
	data []byte
	pos  int
	bb   uint32
	bits int
}

func newBitSource(data []byte) *bitSource {
	return &bitSource{data: data}
}

func (b *bitSource) nextByte() (byte, error) {
	if b.pos >= len(b.data) {
		return 0, fmt.Errorf("%w: UPX stream underrun", gm8errors.ErrMalformedData)
	}
	v := b.data[b.pos]
	b.pos++
	return v, nil
}

// getBit returns the next bit, refilling the internal shift register from
// the byte stream as needed.
func (b *bitSource) getBit() (uint32, error) {
	if b.bits == 0 {
		v, err := b.nextByte()
		if err != nil {
			return 0, err
		}
		b.bb = uint32(v)
		b.bits = 8
	}
	b.bits--
	bit := (b.bb >> uint(b.bits)) & 1
	return bit, nil
}

// Unpack decompresses the packed region at diskOffset in data, up to
// maxSize bytes of output, using UPX's NRV2B algorithm. It returns a
// freshly allocated buffer; it never mutates the input.
func Unpack(data []byte, diskOffset int, maxSize int, logger hclog.Logger) ([]byte, error) {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	logger = logger.Named("gm8.upx")

	if diskOffset < 0 || diskOffset > len(data) {
		return nil, fmt.Errorf("%w: UPX disk offset 0x%x out of range", gm8errors.ErrMalformedData, diskOffset)
	}

	src := newBitSource(data[diskOffset:])
	out := make([]byte, 0, maxSize)

	var lastMOff int = 1

	for len(out) < maxSize {
		// Literal run: a string of 1-bits (one per byte) followed by a
		// terminating 0 signals "copy raw bytes from the input".
		bit, err := src.getBit()
		if err != nil {
			return nil, err
		}
		if bit != 0 {
			b, err := src.nextByte()
			if err != nil {
				return nil, err
			}
			out = append(out, b)
			continue
		}

		// Back-reference: read the offset using NRV2B's variable-length
		// Elias-gamma-like coding, then the match length.
		mOff := 1
		for {
			bit, err := src.getBit()
			if err != nil {
				return nil, err
			}
			mOff = mOff<<1 | int(bit)
			bit2, err := src.getBit()
			if err != nil {
				return nil, err
			}
			if bit2 == 0 {
				break
			}
		}
		mOff -= 3

		var mLen int
		if mOff < 0 {
			// Repeat the previous offset with an implicit length of 1.
			mOff = lastMOff
			mLen = 1
		} else {
			mOff = (mOff << 8) | 0xFF
			b, err := src.nextByte()
			if err != nil {
				return nil, err
			}
			mOff = (mOff &^ 0xFF) | int(b)
			mOff = ^mOff
			if mOff == 0 {
				break // end-of-stream marker
			}
			lastMOff = mOff

			bit0, err := src.getBit()
			if err != nil {
				return nil, err
			}
			mLen = int(bit0)
			if mLen == 0 {
				bit1, err := src.getBit()
				if err != nil {
					return nil, err
				}
				mLen = 1 + int(bit1)
			} else {
				for {
					bit, err := src.getBit()
					if err != nil {
						return nil, err
					}
					mLen = mLen<<1 | int(bit)
					bit2, err := src.getBit()
					if err != nil {
						return nil, err
					}
					if bit2 == 0 {
						break
					}
				}
				mLen += 2
			}
			if mOff > 0xD00 {
				mLen++
			}
		}

		start := len(out) - mOff
		if start < 0 {
			return nil, fmt.Errorf("%w: UPX back-reference before start of output", gm8errors.ErrMalformedData)
		}
		for i := 0; i < mLen+1; i++ {
			out = append(out, out[start+i])
		}
	}

	logger.Debug("unpacked UPX payload", "in_bytes", src.pos, "out_bytes", len(out))
	return out, nil
}
