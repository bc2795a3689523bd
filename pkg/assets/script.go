package assets

import (
	"github.com/xelivous-go/gm8reader/pkg/bitreader"
	"github.com/xelivous-go/gm8reader/pkg/model"
)

// DeserializeScript reads one script record: a name and its raw GML source,
// pre-deobfuscation (§3.1, Script).
func DeserializeScript(cur *bitreader.Cursor) (model.Script, error) {
	var s model.Script
	var err error

	if s.Name, err = cur.ReadPascalStringAsString(); err != nil {
		return s, err
	}
	if s.Source, err = cur.ReadPascalStringAsString(); err != nil {
		return s, err
	}
	return s, nil
}
