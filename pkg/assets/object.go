package assets

import (
	"github.com/xelivous-go/gm8reader/pkg/bitreader"
	"github.com/xelivous-go/gm8reader/pkg/model"
)

// DeserializeObject reads one object record: sprite/mask references, flags,
// and an ordered list of events, each with an opaque action-list blob.
func DeserializeObject(cur *bitreader.Cursor) (model.Object, error) {
	var o model.Object
	var err error

	if o.Name, err = cur.ReadPascalStringAsString(); err != nil {
		return o, err
	}
	if o.SpriteIndex, err = cur.ReadI32(); err != nil {
		return o, err
	}
	if o.Solid, err = cur.ReadBool32(); err != nil {
		return o, err
	}
	if o.Visible, err = cur.ReadBool32(); err != nil {
		return o, err
	}
	if o.Depth, err = cur.ReadI32(); err != nil {
		return o, err
	}
	if o.Persistent, err = cur.ReadBool32(); err != nil {
		return o, err
	}
	if o.ParentIndex, err = cur.ReadI32(); err != nil {
		return o, err
	}
	if o.MaskIndex, err = cur.ReadI32(); err != nil {
		return o, err
	}

	eventCount, err := cur.ReadU32()
	if err != nil {
		return o, err
	}
	o.Events = make([]model.Event, eventCount)
	for i := range o.Events {
		e := &o.Events[i]
		if e.Type, err = cur.ReadI32(); err != nil {
			return o, err
		}
		if e.SubType, err = cur.ReadI32(); err != nil {
			return o, err
		}
		if e.Actions, err = cur.ReadPascalString(); err != nil {
			return o, err
		}
	}
	return o, nil
}
