package assets

import (
	"github.com/xelivous-go/gm8reader/pkg/bitreader"
	"github.com/xelivous-go/gm8reader/pkg/model"
)

// DeserializeHelpDialog reads the help dialog's inflated body (§4.6 step 21).
func DeserializeHelpDialog(cur *bitreader.Cursor) (model.HelpDialog, error) {
	var h model.HelpDialog
	var err error

	if h.BackgroundColor, err = cur.ReadU32(); err != nil {
		return h, err
	}
	if h.ShowNewGameOnly, err = cur.ReadBool32(); err != nil {
		return h, err
	}
	if h.Caption, err = cur.ReadPascalStringAsString(); err != nil {
		return h, err
	}
	if h.Left, err = cur.ReadI32(); err != nil {
		return h, err
	}
	if h.Top, err = cur.ReadI32(); err != nil {
		return h, err
	}
	if h.Width, err = cur.ReadU32(); err != nil {
		return h, err
	}
	if h.Height, err = cur.ReadU32(); err != nil {
		return h, err
	}
	if h.Border, err = cur.ReadBool32(); err != nil {
		return h, err
	}
	if h.Resizable, err = cur.ReadBool32(); err != nil {
		return h, err
	}
	if h.WindowOnTop, err = cur.ReadBool32(); err != nil {
		return h, err
	}
	if h.FreezeGame, err = cur.ReadBool32(); err != nil {
		return h, err
	}
	if h.Text, err = cur.ReadPascalStringAsString(); err != nil {
		return h, err
	}
	return h, nil
}
