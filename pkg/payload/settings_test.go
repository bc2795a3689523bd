package payload

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/xelivous-go/gm8reader/pkg/bitreader"
	"github.com/xelivous-go/gm8reader/pkg/model"
)

type settingsBuilder struct {
	buf bytes.Buffer
}

func (b *settingsBuilder) u32(v uint32) *settingsBuilder {
	var tmp [4]byte
	binary.LittleEndian.PutUint32(tmp[:], v)
	b.buf.Write(tmp[:])
	return b
}

func (b *settingsBuilder) bool32(v bool) *settingsBuilder {
	if v {
		return b.u32(1)
	}
	return b.u32(0)
}

func (b *settingsBuilder) i32(v int32) *settingsBuilder {
	return b.u32(uint32(v))
}

func TestReadSettings80(t *testing.T) {
	b := &settingsBuilder{}
	b.bool32(true)    // fullscreen
	b.bool32(false)   // interpolate
	b.bool32(false)   // dont draw border
	b.bool32(true)    // display cursor
	b.i32(-1)         // scaling
	b.bool32(false)   // allow resize
	b.bool32(false)   // window on top
	b.u32(0x00112233) // clear colour
	b.bool32(false)   // set resolution
	b.i32(0)          // colour depth
	b.i32(0)          // resolution
	b.i32(0)          // frequency
	b.bool32(false)   // dont show buttons
	b.u32(1)          // vsync word (nonzero => use_synchronization; force_cpu_render is fixed true for 8.0)
	b.bool32(false)   // disable screensaver
	b.bool32(false)   // f4
	b.bool32(false)   // f1
	b.bool32(false)   // esc
	b.bool32(false)   // f5/f6
	b.bool32(false)   // f9
	b.bool32(false)   // treat close as esc
	b.i32(0)          // priority
	b.bool32(false)   // freeze on lose focus
	b.i32(0)          // loading bar mode (0, no images follow)
	b.bool32(false)   // custom load image present flag
	b.bool32(false)   // load image transparent
	b.i32(0)          // load image alpha
	b.bool32(false)   // scale progress bar
	b.bool32(true)    // error display
	b.bool32(false)   // error log
	b.bool32(false)   // error abort
	b.u32(1)          // uninit word (nonzero => TreatUninitializedAsZero; ErrorOnUninitializedArgs is fixed false for 8.0)
	// no trailing bytes: SwapCreationEvents must default to false

	cur := bitreader.New(b.buf.Bytes())
	s, err := ReadSettings(cur, model.Version80, nil)
	if err != nil {
		t.Fatalf("ReadSettings: %v", err)
	}

	if !s.UseSynchronization {
		t.Error("expected UseSynchronization true")
	}
	if !s.ForceCPURender {
		t.Error("expected ForceCPURender fixed true on 8.0")
	}
	if !s.TreatUninitializedAsZero {
		t.Error("expected TreatUninitializedAsZero true from a nonzero word on 8.0")
	}
	if s.ErrorOnUninitializedArgs {
		t.Error("expected ErrorOnUninitializedArgs fixed false on 8.0")
	}
	if s.CustomLoadImagePresent {
		t.Error("expected no custom load image")
	}
	if s.ScalingMode != -1 {
		t.Errorf("ScalingMode = %d, want -1", s.ScalingMode)
	}
	if s.ColorOutsideRoom != 0x00112233 {
		t.Errorf("ColorOutsideRoom = 0x%x, want 0x112233", s.ColorOutsideRoom)
	}
	if !s.ErrorDisplay {
		t.Error("expected ErrorDisplay true")
	}
	if s.SwapCreationEvents {
		t.Error("expected SwapCreationEvents to default false on short read")
	}
}

func TestReadSettings81BitPacking(t *testing.T) {
	b := &settingsBuilder{}
	b.bool32(false) // fullscreen
	b.bool32(false) // interpolate
	b.bool32(false) // dont draw border
	b.bool32(false) // display cursor
	b.i32(0)        // scaling
	b.bool32(false) // allow resize
	b.bool32(false) // window on top
	b.u32(0)        // clear colour
	b.bool32(false) // set resolution
	b.i32(0)        // colour depth
	b.i32(0)        // resolution
	b.i32(0)        // frequency
	b.bool32(false) // dont show buttons
	b.u32(0x81)     // vsync word: bit0 set (sync) + bit7 set (force cpu render)
	b.bool32(false) // disable screensaver
	b.bool32(false) // f4
	b.bool32(false) // f1
	b.bool32(false) // esc
	b.bool32(false) // f5/f6
	b.bool32(false) // f9
	b.bool32(false) // treat close as esc
	b.i32(0)        // priority
	b.bool32(false) // freeze on lose focus
	b.i32(0)        // loading bar mode
	b.bool32(false) // custom load image present flag
	b.bool32(false) // load image transparent
	b.i32(0)        // load image alpha
	b.bool32(false) // scale progress bar
	b.bool32(false) // error display
	b.bool32(false) // error log
	b.bool32(false) // error abort
	b.u32(0x3)      // uninit word: bit0 + bit1 set
	b.u32(0)        // webgl placeholder, consumed then discarded
	b.bool32(true)  // swap creation events

	cur := bitreader.New(b.buf.Bytes())
	s, err := ReadSettings(cur, model.Version81, nil)
	if err != nil {
		t.Fatalf("ReadSettings: %v", err)
	}

	if !s.UseSynchronization || !s.ForceCPURender {
		t.Errorf("vsync bit-pack wrong: sync=%v cpu=%v", s.UseSynchronization, s.ForceCPURender)
	}
	if !s.TreatUninitializedAsZero {
		t.Error("expected TreatUninitializedAsZero true from bit 0")
	}
	if !s.ErrorOnUninitializedArgs {
		t.Error("expected ErrorOnUninitializedArgs true from bit 1")
	}
	if !s.SwapCreationEvents {
		t.Error("expected SwapCreationEvents true")
	}
}
