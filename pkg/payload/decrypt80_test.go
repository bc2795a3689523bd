package payload

import (
	"encoding/binary"
	"testing"

	"github.com/xelivous-go/gm8reader/pkg/bitreader"
)

func TestDecrypt80RoundTrip(t *testing.T) {
	// tableB is the byte-reflection permutation (255-i), which is its own
	// inverse, so invertTable(tableB) == tableB.
	var tableA, tableB [256]byte
	for i := range tableA {
		tableA[i] = byte(i*7 + 3) // arbitrary, only its first 8 bytes matter (xor key)
		tableB[i] = byte(255 - i)
	}

	plain := []byte("the quick brown fox jumps over the lazy dog")
	xorKey := tableA[:8]

	body := make([]byte, len(plain))
	for i, p := range plain {
		y := p ^ xorKey[i%8]
		body[i] = tableB[y] // since tableB is self-inverse, inverse[body[i]] == y
	}

	buf := make([]byte, 0, 256+256+4+len(body))
	buf = append(buf, tableA[:]...)
	buf = append(buf, tableB[:]...)
	lenBytes := make([]byte, 4)
	binary.LittleEndian.PutUint32(lenBytes, uint32(len(body)))
	buf = append(buf, lenBytes...)
	buf = append(buf, body...)

	cur := bitreader.New(buf)
	if err := Decrypt80(cur, nil); err != nil {
		t.Fatalf("Decrypt80: %v", err)
	}

	got := buf[512+4 : 512+4+len(body)]
	if string(got) != string(plain) {
		t.Fatalf("got %q, want %q", got, plain)
	}
}

func TestInvertTableIsInverse(t *testing.T) {
	var table [256]byte
	for i := range table {
		table[i] = byte((i*53 + 17) % 256)
	}
	inverse := invertTable(table[:])
	for i := 0; i < 256; i++ {
		if inverse[table[i]] != byte(i) {
			t.Fatalf("inverse[table[%d]] = %d, want %d", i, inverse[table[i]], i)
		}
	}
}
