package assets

import (
	"bytes"
	"testing"

	"github.com/xelivous-go/gm8reader/pkg/bitreader"
	"github.com/xelivous-go/gm8reader/pkg/model"
)

func minimalRoomBody(t *testing.T, withPhysics bool) []byte {
	t.Helper()
	var buf bytes.Buffer
	buf.Write(pascalString("rm_init"))
	buf.Write(pascalString(""))
	buf.Write(u32le(800)) // width
	buf.Write(u32le(600)) // height
	buf.Write(u32le(30))  // speed
	buf.Write(u32le(0))   // persistent
	buf.Write(u32le(0))   // background colour
	buf.Write(u32le(1))   // draw background colour
	buf.Write(pascalString(""))
	buf.Write(u32le(0)) // enable views
	buf.Write(u32le(1)) // show colour
	buf.Write(u32le(0)) // clear display buffer
	buf.Write(u32le(0)) // background count
	buf.Write(u32le(0)) // view count
	buf.Write(u32le(0)) // instance count
	buf.Write(u32le(0)) // tile count
	if withPhysics {
		buf.Write(u32le(1))                 // physics world
		buf.Write([]byte{0, 0, 0, 0, 0, 0, 0, 0})  // gravity x
		buf.Write([]byte{0, 0, 0, 0, 0, 0, 240, 63}) // gravity y = 1.0
		buf.Write([]byte{0, 0, 0, 0, 0, 0, 89, 64})   // pixels per metre = 100.0
	}
	return buf.Bytes()
}

func TestDeserializeRoom80SkipsPhysics(t *testing.T) {
	body := minimalRoomBody(t, false)
	cur := bitreader.New(body)
	r, err := DeserializeRoom(cur, model.Version80)
	if err != nil {
		t.Fatalf("DeserializeRoom: %v", err)
	}
	if r.Width != 800 || r.Height != 600 {
		t.Errorf("dimensions = %dx%d, want 800x600", r.Width, r.Height)
	}
	if cur.Remaining() != 0 {
		t.Errorf("Remaining() = %d, want 0 (no physics fields on 8.0)", cur.Remaining())
	}
}

func TestDeserializeRoom81ReadsPhysics(t *testing.T) {
	body := minimalRoomBody(t, true)
	cur := bitreader.New(body)
	r, err := DeserializeRoom(cur, model.Version81)
	if err != nil {
		t.Fatalf("DeserializeRoom: %v", err)
	}
	if !r.PhysicsWorld {
		t.Error("expected PhysicsWorld true")
	}
	if r.PhysicsGravityY != 1.0 {
		t.Errorf("PhysicsGravityY = %v, want 1.0", r.PhysicsGravityY)
	}
	if r.PhysicsPixelsPerMeter != 100.0 {
		t.Errorf("PhysicsPixelsPerMeter = %v, want 100.0", r.PhysicsPixelsPerMeter)
	}
	if cur.Remaining() != 0 {
		t.Errorf("Remaining() = %d, want 0", cur.Remaining())
	}
}
