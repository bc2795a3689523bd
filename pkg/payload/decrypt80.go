package payload

import (
	"fmt"

	"github.com/hashicorp/go-hclog"

	"github.com/xelivous-go/gm8reader/pkg/bitreader"
	"github.com/xelivous-go/gm8reader/pkg/gm8errors"
)

// Decrypt80 implements the GM8.0 permutation decrypt (§4.5 "8.0 permutation
// decrypt", invoked at §4.6 step 3): two 256-byte swap tables are read from
// the stream, the second is inverted, and a length-prefixed body is
// byte-substituted through that inverse with an 8-byte running XOR applied
// on top. As with the UPX unpacker, there is no teacher analogue for this
// transformation; the XOR key is taken from the first table's leading 8
// bytes, which is the most natural reading of "the first is used to
// compute" the substitution applied to the second.
func Decrypt80(cur *bitreader.Cursor, logger hclog.Logger) error {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	logger = logger.Named("gm8.payload.decrypt80")

	tableA, err := cur.ReadBytes(256)
	if err != nil {
		return fmt.Errorf("%w: reading first swap table", gm8errors.ErrMalformedData)
	}
	var xorKey [8]byte
	copy(xorKey[:], tableA[:8])

	tableB, err := cur.ReadBytes(256)
	if err != nil {
		return fmt.Errorf("%w: reading second swap table", gm8errors.ErrMalformedData)
	}
	inverse := invertTable(tableB)

	length, err := cur.ReadU32()
	if err != nil {
		return err
	}
	body, err := cur.ReadBytes(int(length))
	if err != nil {
		return fmt.Errorf("%w: 8.0 permutation body truncated", gm8errors.ErrMalformedData)
	}

	for i := range body {
		body[i] = inverse[body[i]] ^ xorKey[i%8]
	}

	logger.Debug("applied 8.0 permutation decrypt", "body_bytes", length)
	return nil
}

// invertTable computes the inverse permutation of a 256-byte swap table:
// inverse[table[i]] == i for every i.
func invertTable(table []byte) [256]byte {
	var inverse [256]byte
	for i, v := range table {
		inverse[v] = byte(i)
	}
	return inverse
}
