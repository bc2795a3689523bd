package antidec

import (
	"encoding/binary"
	"testing"

	"github.com/xelivous-go/gm8reader/pkg/bitreader"
)

// TestDetect80Signature exercises scenario S3 from SPEC_FULL.md: an 8.0
// exe with the antidec2 signature and documented metadata constants.
func TestDetect80Signature(t *testing.T) {
	sig := signatureTable[0]
	buf := make([]byte, 0x500)
	copy(buf[0x100:], sig.pattern)

	put := func(off int, v uint32) {
		binary.LittleEndian.PutUint32(buf[0x100+off:], v)
	}
	put(sig.fields.exeLoadOffset, 0x400)
	put(sig.fields.headerStart, 0x410)
	put(sig.fields.xorMask, 0xDEADBEEF)
	put(sig.fields.addMask, 1)
	put(sig.fields.subMask, 0)

	md, version, err := Detect(buf, nil)
	if err != nil {
		t.Fatalf("Detect: %v", err)
	}
	if md == nil {
		t.Fatal("expected metadata match, got nil")
	}
	if version != Variant80 {
		t.Errorf("version = %v, want Variant80", version)
	}
	if md.ExeLoadOffset != 0x400 || md.HeaderStart != 0x410 {
		t.Errorf("unexpected offsets: %+v", md)
	}
	if md.XorMask != 0xDEADBEEF || md.AddMask != 1 || md.SubMask != 0 {
		t.Errorf("unexpected masks: %+v", md)
	}
}

func TestDetectNoMatch(t *testing.T) {
	buf := make([]byte, 256)
	md, version, err := Detect(buf, nil)
	if err != nil {
		t.Fatalf("Detect: %v", err)
	}
	if md != nil {
		t.Errorf("expected no match, got %+v", md)
	}
	if version != VariantUnknown {
		t.Errorf("version = %v, want VariantUnknown", version)
	}
}

// TestDecryptRoundTrip proves Decrypt's §4.4 reversal (word ^= key;
// key += add; word -= sub) exactly undoes the forward transformation
// word += sub; word ^= key; key += add.
func TestDecryptRoundTrip(t *testing.T) {
	plain := []byte{0x10, 0x20, 0x30, 0x40, 0x50, 0x60, 0x70, 0x80}

	md := &Metadata{
		ExeLoadOffset: 0,
		HeaderStart:   4,
		XorMask:       0xCAFEBABE,
		AddMask:       0x01010101,
		SubMask:       0x00FF00FF,
	}

	// Forward-encode the way the (hypothetical) antidec2 packer would have,
	// so Decrypt should exactly recover `plain`.
	encrypted := make([]byte, len(plain))
	copy(encrypted, plain)
	key := md.XorMask
	for i := 0; i+4 <= len(encrypted); i += 4 {
		word := binary.LittleEndian.Uint32(encrypted[i : i+4])
		word += md.SubMask
		word ^= key
		key += md.AddMask
		binary.LittleEndian.PutUint32(encrypted[i:i+4], word)
	}

	cur := bitreader.New(encrypted)
	if err := Decrypt(cur, md, nil); err != nil {
		t.Fatalf("Decrypt: %v", err)
	}

	got := cur.Bytes()
	for i := range plain {
		if got[i] != plain[i] {
			t.Fatalf("byte %d: got 0x%x, want 0x%x", i, got[i], plain[i])
		}
	}
	if cur.Pos() != int(md.HeaderStart) {
		t.Errorf("cursor pos = %d, want %d", cur.Pos(), md.HeaderStart)
	}
}
