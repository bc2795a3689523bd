package antidec

import (
	"encoding/binary"
	"fmt"

	"github.com/hashicorp/go-hclog"

	"github.com/xelivous-go/gm8reader/pkg/bitreader"
)

// Decrypt reverses the antidec2 transformation in place over
// [ExeLoadOffset, EOF) of cur's buffer (§4.4), then seeks cur to
// HeaderStart. It returns only an error (for an out-of-range offset); it
// does not report whether the follow-on magic is recognizable. That is
// decided by payload.FindHeader, which the caller invokes next; antidec
// itself only reverses bytes and repositions the cursor.
func Decrypt(cur *bitreader.Cursor, md *Metadata, logger hclog.Logger) error {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	logger = logger.Named("gm8.antidec")

	buf := cur.Bytes()
	start := int(md.ExeLoadOffset)
	if start < 0 || start > len(buf) {
		return fmt.Errorf("exe_load_offset 0x%x out of range (buffer is %d bytes)", start, len(buf))
	}

	region := buf[start:]
	n := len(region) - len(region)%4 // only whole 4-byte words are transformed

	key := md.XorMask
	for i := 0; i+4 <= n; i += 4 {
		word := binary.LittleEndian.Uint32(region[i : i+4])
		word ^= key
		key += md.AddMask
		word -= md.SubMask
		binary.LittleEndian.PutUint32(region[i:i+4], word)
	}

	logger.Debug("antidec reversal complete", "region_bytes", n, "header_start", fmt.Sprintf("0x%x", md.HeaderStart))

	return cur.Seek(int(md.HeaderStart))
}
