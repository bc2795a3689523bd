package zlibx

import (
	"errors"
	"testing"

	"github.com/xelivous-go/gm8reader/pkg/gm8errors"
)

func TestDecompress(t *testing.T) {
	// zlib-compressed "hello gm8", 78 9c header + deflate body + adler32 trailer.
	data := []byte{0x78, 0x9c, 0xca, 0x48, 0xcd, 0xc9, 0xc9, 0x57, 0x48, 0xcf, 0xb5, 0x0, 0x4, 0x0, 0x0, 0xff, 0xff, 0x11, 0x47, 0x3, 0x41}

	got, err := Decompress(data)
	if err != nil {
		t.Fatalf("Decompress: %v", err)
	}
	if string(got) != "hello gm8" {
		t.Errorf("got %q, want %q", got, "hello gm8")
	}
}

func TestDecompressBadHeader(t *testing.T) {
	_, err := Decompress([]byte{0x00, 0x00, 0x00, 0x00, 0x00, 0x00})
	if !errors.Is(err, gm8errors.ErrMalformedData) {
		t.Fatalf("got %v, want ErrMalformedData", err)
	}
}

func TestDecompressTooShort(t *testing.T) {
	_, err := Decompress([]byte{0x78, 0x9c})
	if !errors.Is(err, gm8errors.ErrMalformedData) {
		t.Fatalf("got %v, want ErrMalformedData", err)
	}
}

func TestIsZeroSentinel(t *testing.T) {
	sentinel := []byte{0x78, 0x9C, 0x63, 0x60, 0x60, 0x60, 0x00, 0x00, 0x00, 0x04, 0x00, 0x01}
	if !IsZeroSentinel(sentinel) {
		t.Error("expected sentinel bytes to be recognized")
	}

	notSentinel := []byte{0x78, 0x9C, 0x63, 0x60, 0x60, 0x60, 0x00, 0x00, 0x00, 0x04, 0x00, 0x02}
	if IsZeroSentinel(notSentinel) {
		t.Error("expected non-sentinel bytes to be rejected")
	}

	if IsZeroSentinel([]byte{0x78, 0x9C}) {
		t.Error("expected short input to be rejected")
	}
}
