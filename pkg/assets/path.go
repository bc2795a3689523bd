package assets

import (
	"github.com/xelivous-go/gm8reader/pkg/bitreader"
	"github.com/xelivous-go/gm8reader/pkg/model"
)

// DeserializePath reads one motion path record.
func DeserializePath(cur *bitreader.Cursor) (model.Path, error) {
	var p model.Path
	var err error

	if p.Name, err = cur.ReadPascalStringAsString(); err != nil {
		return p, err
	}
	if p.Kind, err = cur.ReadI32(); err != nil {
		return p, err
	}
	if p.Closed, err = cur.ReadBool32(); err != nil {
		return p, err
	}
	if p.Precision, err = cur.ReadI32(); err != nil {
		return p, err
	}

	pointCount, err := cur.ReadU32()
	if err != nil {
		return p, err
	}
	p.Points = make([]model.PathPoint, pointCount)
	for i := range p.Points {
		pt := &p.Points[i]
		if pt.X, err = cur.ReadF64(); err != nil {
			return p, err
		}
		if pt.Y, err = cur.ReadF64(); err != nil {
			return p, err
		}
		if pt.Speed, err = cur.ReadF64(); err != nil {
			return p, err
		}
	}
	return p, nil
}
