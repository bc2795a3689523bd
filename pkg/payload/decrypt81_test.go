package payload

import (
	"encoding/binary"
	"testing"

	"github.com/xelivous-go/gm8reader/pkg/bitreader"
)

// TestDecrypt81Involution proves Decrypt81's keystream depends only on
// position and the table (not on the data being transformed), so applying
// it twice with the same seed restores the original bytes.
func TestDecrypt81Involution(t *testing.T) {
	plain := []byte("room1 obj_player spr_hero background_grass")

	encode := func(seed uint32, data []byte) []byte {
		buf := make([]byte, 4+4+len(data))
		binary.LittleEndian.PutUint32(buf[0:4], seed)
		binary.LittleEndian.PutUint32(buf[4:8], uint32(len(data)))
		copy(buf[8:], data)
		return buf
	}

	buf := encode(0xC0FFEE, plain)
	cur := bitreader.New(buf)
	if err := Decrypt81(cur, ModeNormal, nil); err != nil {
		t.Fatalf("first pass: %v", err)
	}
	once := append([]byte(nil), buf[8:]...)
	if string(once) == string(plain) {
		t.Fatal("expected first pass to change the bytes")
	}

	buf2 := encode(0xC0FFEE, once)
	cur2 := bitreader.New(buf2)
	if err := Decrypt81(cur2, ModeNormal, nil); err != nil {
		t.Fatalf("second pass: %v", err)
	}
	twice := buf2[8:]
	if string(twice) != string(plain) {
		t.Fatalf("got %q after second pass, want %q", twice, plain)
	}
}

func TestBuildPermutationTableIsPermutation(t *testing.T) {
	table := buildPermutationTable(0x1234)
	var seen [256]bool
	for _, v := range table {
		if seen[v] {
			t.Fatalf("value %d appears twice in permutation table", v)
		}
		seen[v] = true
	}
}
