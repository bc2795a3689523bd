package assets

import (
	"github.com/xelivous-go/gm8reader/pkg/bitreader"
	"github.com/xelivous-go/gm8reader/pkg/model"
)

// DeserializeRoom reads one room record: dimensions, backgrounds, views,
// instances and tiles, plus the GM8.1-only physics fields (§3.1, Room).
func DeserializeRoom(cur *bitreader.Cursor, version model.GameVersion) (model.Room, error) {
	var r model.Room
	var err error

	if r.Name, err = cur.ReadPascalStringAsString(); err != nil {
		return r, err
	}
	if r.Caption, err = cur.ReadPascalStringAsString(); err != nil {
		return r, err
	}
	if r.Width, err = cur.ReadI32(); err != nil {
		return r, err
	}
	if r.Height, err = cur.ReadI32(); err != nil {
		return r, err
	}
	if r.Speed, err = cur.ReadI32(); err != nil {
		return r, err
	}
	if r.Persistent, err = cur.ReadBool32(); err != nil {
		return r, err
	}
	if r.BackgroundColor, err = cur.ReadU32(); err != nil {
		return r, err
	}
	if r.DrawBackgroundColor, err = cur.ReadBool32(); err != nil {
		return r, err
	}
	if r.CreationCode, err = cur.ReadPascalStringAsString(); err != nil {
		return r, err
	}
	if r.EnableViews, err = cur.ReadBool32(); err != nil {
		return r, err
	}
	if r.ShowColor, err = cur.ReadBool32(); err != nil {
		return r, err
	}
	if r.ClearDisplayBuffer, err = cur.ReadBool32(); err != nil {
		return r, err
	}

	bgCount, err := cur.ReadU32()
	if err != nil {
		return r, err
	}
	r.Backgrounds = make([]model.RoomBackground, bgCount)
	for i := range r.Backgrounds {
		if r.Backgrounds[i], err = deserializeRoomBackground(cur); err != nil {
			return r, err
		}
	}

	viewCount, err := cur.ReadU32()
	if err != nil {
		return r, err
	}
	r.Views = make([]model.RoomView, viewCount)
	for i := range r.Views {
		if r.Views[i], err = deserializeRoomView(cur); err != nil {
			return r, err
		}
	}

	instCount, err := cur.ReadU32()
	if err != nil {
		return r, err
	}
	r.Instances = make([]model.Instance, instCount)
	for i := range r.Instances {
		if r.Instances[i], err = deserializeInstance(cur); err != nil {
			return r, err
		}
	}

	tileCount, err := cur.ReadU32()
	if err != nil {
		return r, err
	}
	r.Tiles = make([]model.Tile, tileCount)
	for i := range r.Tiles {
		if r.Tiles[i], err = deserializeTile(cur); err != nil {
			return r, err
		}
	}

	// Physics fields exist only for 8.1 rooms; 8.0 leaves the world disabled
	// with all quantities zeroed (§3.1, Room: "GM8.1-only physics fields").
	if version == model.Version81 {
		if r.PhysicsWorld, err = cur.ReadBool32(); err != nil {
			return r, err
		}
		if r.PhysicsGravityX, err = cur.ReadF64(); err != nil {
			return r, err
		}
		if r.PhysicsGravityY, err = cur.ReadF64(); err != nil {
			return r, err
		}
		if r.PhysicsPixelsPerMeter, err = cur.ReadF64(); err != nil {
			return r, err
		}
	}

	return r, nil
}

func deserializeRoomBackground(cur *bitreader.Cursor) (model.RoomBackground, error) {
	var b model.RoomBackground
	var err error
	if b.Visible, err = cur.ReadBool32(); err != nil {
		return b, err
	}
	if b.Foreground, err = cur.ReadBool32(); err != nil {
		return b, err
	}
	if b.Index, err = cur.ReadI32(); err != nil {
		return b, err
	}
	if b.X, err = cur.ReadI32(); err != nil {
		return b, err
	}
	if b.Y, err = cur.ReadI32(); err != nil {
		return b, err
	}
	if b.TileH, err = cur.ReadBool32(); err != nil {
		return b, err
	}
	if b.TileV, err = cur.ReadBool32(); err != nil {
		return b, err
	}
	if b.HSpeed, err = cur.ReadI32(); err != nil {
		return b, err
	}
	if b.VSpeed, err = cur.ReadI32(); err != nil {
		return b, err
	}
	if b.Stretch, err = cur.ReadBool32(); err != nil {
		return b, err
	}
	return b, nil
}

func deserializeRoomView(cur *bitreader.Cursor) (model.RoomView, error) {
	var v model.RoomView
	var err error
	if v.Visible, err = cur.ReadBool32(); err != nil {
		return v, err
	}
	if v.ViewX, err = cur.ReadI32(); err != nil {
		return v, err
	}
	if v.ViewY, err = cur.ReadI32(); err != nil {
		return v, err
	}
	if v.ViewW, err = cur.ReadI32(); err != nil {
		return v, err
	}
	if v.ViewH, err = cur.ReadI32(); err != nil {
		return v, err
	}
	if v.PortX, err = cur.ReadI32(); err != nil {
		return v, err
	}
	if v.PortY, err = cur.ReadI32(); err != nil {
		return v, err
	}
	if v.PortW, err = cur.ReadI32(); err != nil {
		return v, err
	}
	if v.PortH, err = cur.ReadI32(); err != nil {
		return v, err
	}
	if v.Following, err = cur.ReadI32(); err != nil {
		return v, err
	}
	if v.BorderH, err = cur.ReadI32(); err != nil {
		return v, err
	}
	if v.BorderV, err = cur.ReadI32(); err != nil {
		return v, err
	}
	if v.SpeedH, err = cur.ReadI32(); err != nil {
		return v, err
	}
	if v.SpeedV, err = cur.ReadI32(); err != nil {
		return v, err
	}
	return v, nil
}

func deserializeInstance(cur *bitreader.Cursor) (model.Instance, error) {
	var i model.Instance
	var err error
	if i.X, err = cur.ReadI32(); err != nil {
		return i, err
	}
	if i.Y, err = cur.ReadI32(); err != nil {
		return i, err
	}
	if i.ObjectIndex, err = cur.ReadI32(); err != nil {
		return i, err
	}
	if i.InstanceID, err = cur.ReadI32(); err != nil {
		return i, err
	}
	if i.CreationCode, err = cur.ReadPascalStringAsString(); err != nil {
		return i, err
	}
	if i.Locked, err = cur.ReadBool32(); err != nil {
		return i, err
	}
	return i, nil
}

func deserializeTile(cur *bitreader.Cursor) (model.Tile, error) {
	var t model.Tile
	var err error
	if t.X, err = cur.ReadI32(); err != nil {
		return t, err
	}
	if t.Y, err = cur.ReadI32(); err != nil {
		return t, err
	}
	if t.BackgroundIndex, err = cur.ReadI32(); err != nil {
		return t, err
	}
	if t.TileX, err = cur.ReadI32(); err != nil {
		return t, err
	}
	if t.TileY, err = cur.ReadI32(); err != nil {
		return t, err
	}
	if t.Width, err = cur.ReadI32(); err != nil {
		return t, err
	}
	if t.Height, err = cur.ReadI32(); err != nil {
		return t, err
	}
	if t.Depth, err = cur.ReadI32(); err != nil {
		return t, err
	}
	if t.TileID, err = cur.ReadI32(); err != nil {
		return t, err
	}
	if t.Locked, err = cur.ReadBool32(); err != nil {
		return t, err
	}
	return t, nil
}
