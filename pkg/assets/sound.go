package assets

import (
	"github.com/xelivous-go/gm8reader/pkg/bitreader"
	"github.com/xelivous-go/gm8reader/pkg/model"
)

// DeserializeSound reads one sound record's body (the exists flag has
// already been consumed by ReadSparseSection).
func DeserializeSound(cur *bitreader.Cursor) (model.Sound, error) {
	var s model.Sound
	var err error

	if s.Name, err = cur.ReadPascalStringAsString(); err != nil {
		return s, err
	}
	if s.Kind, err = cur.ReadI32(); err != nil {
		return s, err
	}
	if s.FileType, err = cur.ReadPascalStringAsString(); err != nil {
		return s, err
	}
	if s.FileName, err = cur.ReadPascalStringAsString(); err != nil {
		return s, err
	}

	dataPresent, err := cur.ReadBool32()
	if err != nil {
		return s, err
	}
	if dataPresent {
		if s.Data, err = cur.ReadPascalString(); err != nil {
			return s, err
		}
	}

	if s.EffectsMask, err = cur.ReadI32(); err != nil {
		return s, err
	}
	if s.Volume, err = cur.ReadF64(); err != nil {
		return s, err
	}
	if s.Pan, err = cur.ReadF64(); err != nil {
		return s, err
	}
	if s.Preload, err = cur.ReadBool32(); err != nil {
		return s, err
	}
	return s, nil
}
