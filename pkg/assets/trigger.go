package assets

import (
	"github.com/xelivous-go/gm8reader/pkg/bitreader"
	"github.com/xelivous-go/gm8reader/pkg/model"
)

// DeserializeTrigger reads one trigger record out of its zlib-decompressed
// section payload (§4.6 steps 7..18).
func DeserializeTrigger(cur *bitreader.Cursor) (model.Trigger, error) {
	var t model.Trigger
	var err error

	if t.Name, err = cur.ReadPascalStringAsString(); err != nil {
		return t, err
	}
	if t.Condition, err = cur.ReadPascalStringAsString(); err != nil {
		return t, err
	}
	if t.Moment, err = cur.ReadI32(); err != nil {
		return t, err
	}
	if t.ConstantName, err = cur.ReadPascalStringAsString(); err != nil {
		return t, err
	}
	return t, nil
}
