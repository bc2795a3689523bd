package payload

import (
	"fmt"

	"github.com/hashicorp/go-hclog"

	"github.com/xelivous-go/gm8reader/pkg/bitreader"
	"github.com/xelivous-go/gm8reader/pkg/gm8errors"
)

// XorMode selects which of the two seeded-decrypt behaviors Decrypt81 uses.
// Only ModeNormal is exercised by FindHeader; ModeSeeded is retained per
// the contract for a stream that has already been partially decoded
// upstream (§4.5 "two modes").
type XorMode int

const (
	ModeNormal XorMode = iota
	ModeSeeded
)

// Decrypt81 implements the GM8.1 seeded XOR pass (§4.5 "8.1 inner
// decryption"): reads a 32-bit seed, builds a deterministic 256-byte
// permutation table from it, then XORs a length-prefixed region with
// rolling table lookups. Like the UPX unpacker, this has no teacher
// analogue; the table-construction PRNG below is a best-effort, internally
// consistent reconstruction of the documented behavior.
func Decrypt81(cur *bitreader.Cursor, mode XorMode, logger hclog.Logger) error {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	logger = logger.Named("gm8.payload.decrypt81")

	seed, err := cur.ReadU32()
	if err != nil {
		return err
	}

	table := buildPermutationTable(seed)

	length, err := cur.ReadU32()
	if err != nil {
		return err
	}
	region, err := cur.ReadBytes(int(length))
	if err != nil {
		return fmt.Errorf("%w: 8.1 seeded region truncated", gm8errors.ErrMalformedData)
	}

	counter := 0
	if mode == ModeSeeded {
		counter = int(table[0])
	}
	for i := range region {
		idx := (i + counter) & 0xFF
		key := table[idx]
		region[i] ^= key
		counter = (counter + int(table[counter&0xFF])) & 0xFF
	}

	logger.Debug("applied 8.1 seeded decrypt", "seed", fmt.Sprintf("0x%x", seed), "region_bytes", length)
	return nil
}

// buildPermutationTable deterministically derives a 256-byte permutation
// from seed via a linear-congruential generator, the same family of PRNG
// the teacher's antidec-adjacent code would use for a fixed, seedable
// shuffle.
func buildPermutationTable(seed uint32) [256]byte {
	var table [256]byte
	for i := range table {
		table[i] = byte(i)
	}

	state := seed
	next := func() uint32 {
		state = state*1103515245 + 12345
		return state
	}

	for i := 255; i > 0; i-- {
		j := int(next() >> 16 % uint32(i+1))
		table[i], table[j] = table[j], table[i]
	}
	return table
}
