// Package writer states the external contract for serializing an Assets
// bundle back out to a .gmk/.gm81 project file. Writing is out of scope for
// this reader (§6 External Interfaces); the interface exists so the
// boundary is explicit and the reader package can be tested against a fake.
package writer

import (
	"io"

	"github.com/xelivous-go/gm8reader/pkg/model"
)

// Writer serializes a parsed Assets bundle. Not implemented here.
type Writer interface {
	Write(w io.Writer, bundle *model.Assets) error
}
