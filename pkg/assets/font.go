package assets

import (
	"github.com/xelivous-go/gm8reader/pkg/bitreader"
	"github.com/xelivous-go/gm8reader/pkg/model"
)

// DeserializeFont reads one bitmap font record: face metadata plus its
// glyph table.
func DeserializeFont(cur *bitreader.Cursor) (model.Font, error) {
	var f model.Font
	var err error

	if f.Name, err = cur.ReadPascalStringAsString(); err != nil {
		return f, err
	}
	if f.SystemName, err = cur.ReadPascalStringAsString(); err != nil {
		return f, err
	}
	if f.Size, err = cur.ReadI32(); err != nil {
		return f, err
	}
	if f.Bold, err = cur.ReadBool32(); err != nil {
		return f, err
	}
	if f.Italic, err = cur.ReadBool32(); err != nil {
		return f, err
	}
	if f.Charset, err = cur.ReadI32(); err != nil {
		return f, err
	}
	if f.Antialias, err = cur.ReadI32(); err != nil {
		return f, err
	}

	glyphCount, err := cur.ReadU32()
	if err != nil {
		return f, err
	}
	f.Glyphs = make([]model.Glyph, glyphCount)
	for i := range f.Glyphs {
		g := &f.Glyphs[i]
		if g.Char, err = cur.ReadI32(); err != nil {
			return f, err
		}
		if g.X, err = cur.ReadI32(); err != nil {
			return f, err
		}
		if g.Y, err = cur.ReadI32(); err != nil {
			return f, err
		}
		if g.W, err = cur.ReadI32(); err != nil {
			return f, err
		}
		if g.H, err = cur.ReadI32(); err != nil {
			return f, err
		}
		if g.Advance, err = cur.ReadI32(); err != nil {
			return f, err
		}
	}
	return f, nil
}
