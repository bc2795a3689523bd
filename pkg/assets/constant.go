package assets

import (
	"github.com/xelivous-go/gm8reader/pkg/bitreader"
	"github.com/xelivous-go/gm8reader/pkg/model"
)

// DeserializeConstant reads one name/expression pair directly off the
// shared cursor. Constants are not zlib-framed (§4.6 step 7 table), unlike
// the trigger section before them and the asset sections after them.
func DeserializeConstant(cur *bitreader.Cursor) (model.Constant, error) {
	var c model.Constant
	var err error

	if c.Name, err = cur.ReadPascalStringAsString(); err != nil {
		return c, err
	}
	if c.Value, err = cur.ReadPascalStringAsString(); err != nil {
		return c, err
	}
	return c, nil
}
