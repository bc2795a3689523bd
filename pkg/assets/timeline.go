package assets

import (
	"github.com/xelivous-go/gm8reader/pkg/bitreader"
	"github.com/xelivous-go/gm8reader/pkg/model"
)

// DeserializeTimeline reads one timeline record: a named list of moments,
// each holding an opaque action-list blob (§3.1, Timeline).
func DeserializeTimeline(cur *bitreader.Cursor) (model.Timeline, error) {
	var t model.Timeline
	var err error

	if t.Name, err = cur.ReadPascalStringAsString(); err != nil {
		return t, err
	}

	momentCount, err := cur.ReadU32()
	if err != nil {
		return t, err
	}
	t.Moments = make([]model.Moment, momentCount)
	for i := range t.Moments {
		m := &t.Moments[i]
		if m.Position, err = cur.ReadI32(); err != nil {
			return t, err
		}
		if m.Actions, err = cur.ReadPascalString(); err != nil {
			return t, err
		}
	}
	return t, nil
}
