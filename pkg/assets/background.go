package assets

import (
	"github.com/xelivous-go/gm8reader/pkg/bitreader"
	"github.com/xelivous-go/gm8reader/pkg/model"
)

// DeserializeBackground reads one background record: tileset metadata plus
// a single raw frame image.
func DeserializeBackground(cur *bitreader.Cursor) (model.Background, error) {
	var b model.Background
	var err error

	if b.Name, err = cur.ReadPascalStringAsString(); err != nil {
		return b, err
	}
	if b.IsTileset, err = cur.ReadBool32(); err != nil {
		return b, err
	}
	if b.TileWidth, err = cur.ReadI32(); err != nil {
		return b, err
	}
	if b.TileHeight, err = cur.ReadI32(); err != nil {
		return b, err
	}
	if b.TileHOffset, err = cur.ReadI32(); err != nil {
		return b, err
	}
	if b.TileVOffset, err = cur.ReadI32(); err != nil {
		return b, err
	}
	if b.TileHSep, err = cur.ReadI32(); err != nil {
		return b, err
	}
	if b.TileVSep, err = cur.ReadI32(); err != nil {
		return b, err
	}
	if b.Frame, err = deserializeImage(cur); err != nil {
		return b, err
	}
	return b, nil
}
