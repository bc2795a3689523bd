package assets

import (
	"github.com/xelivous-go/gm8reader/pkg/bitreader"
	"github.com/xelivous-go/gm8reader/pkg/model"
)

// DeserializeSprite reads one sprite record: shared bbox/mask config plus N
// raw frame images, each carried opaquely (pixel decoding is out of scope).
func DeserializeSprite(cur *bitreader.Cursor) (model.Sprite, error) {
	var s model.Sprite
	var err error

	if s.Name, err = cur.ReadPascalStringAsString(); err != nil {
		return s, err
	}
	if s.OriginX, err = cur.ReadI32(); err != nil {
		return s, err
	}
	if s.OriginY, err = cur.ReadI32(); err != nil {
		return s, err
	}

	frameCount, err := cur.ReadU32()
	if err != nil {
		return s, err
	}

	if s.BBoxLeft, err = cur.ReadI32(); err != nil {
		return s, err
	}
	if s.BBoxRight, err = cur.ReadI32(); err != nil {
		return s, err
	}
	if s.BBoxTop, err = cur.ReadI32(); err != nil {
		return s, err
	}
	if s.BBoxBottom, err = cur.ReadI32(); err != nil {
		return s, err
	}
	if s.MaskShape, err = cur.ReadI32(); err != nil {
		return s, err
	}
	if s.SeparateMasks, err = cur.ReadBool32(); err != nil {
		return s, err
	}
	if s.AlphaTolerance, err = cur.ReadI32(); err != nil {
		return s, err
	}

	s.Frames = make([]model.Image, frameCount)
	for i := range s.Frames {
		img, err := deserializeImage(cur)
		if err != nil {
			return s, err
		}
		s.Frames[i] = img
	}
	return s, nil
}

func deserializeImage(cur *bitreader.Cursor) (model.Image, error) {
	var img model.Image
	var err error

	if img.Width, err = cur.ReadI32(); err != nil {
		return img, err
	}
	if img.Height, err = cur.ReadI32(); err != nil {
		return img, err
	}
	if img.Data, err = cur.ReadPascalString(); err != nil {
		return img, err
	}
	return img, nil
}
