package gm8reader

import (
	"github.com/hashicorp/go-hclog"

	"github.com/xelivous-go/gm8reader/pkg/antidec"
	"github.com/xelivous-go/gm8reader/pkg/bitreader"
	"github.com/xelivous-go/gm8reader/pkg/gm8errors"
	"github.com/xelivous-go/gm8reader/pkg/model"
	"github.com/xelivous-go/gm8reader/pkg/payload"
	"github.com/xelivous-go/gm8reader/pkg/pe"
	"github.com/xelivous-go/gm8reader/pkg/upx"
)

// Reader drives the full pipeline: PE Inspector, UPX Unpacker, Protection
// Detector & Decryptor, Version Header Finder, Payload Reader (§2 System
// Overview). No stage runs concurrently with another (§5 Scheduling model).
type Reader struct {
	Logger hclog.Logger
}

// New returns a Reader. A nil logger is replaced with a null logger.
func New(logger hclog.Logger) *Reader {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Reader{Logger: logger.Named("gm8reader")}
}

// Parse runs the pipeline over data, an owned copy of a GM8 executable, and
// returns the typed asset graph. data is never mutated; Parse works on its
// own copy throughout so callers can reuse the input buffer.
func (r *Reader) Parse(data []byte, opts Options) (*model.Assets, error) {
	info, err := pe.Inspect(data, r.Logger)
	if err != nil {
		return nil, err
	}

	// antidec's decryptor runs against a fresh, owned copy of the original
	// executable bytes — never against the UPX-unpacked buffer, even when
	// UPX is in use: the obfuscated region's offsets are absolute positions
	// in the original file (resolved per original_source/gamedata.rs).
	work := make([]byte, len(data))
	copy(work, data)

	var detectionBuf []byte
	if info.UPX != nil {
		unpacked, err := upx.Unpack(data, int(info.UPX.DiskOffset), int(info.UPX.MaxSize), r.Logger)
		if err != nil {
			return nil, err
		}
		r.Logger.Debug("unpacked UPX payload", "bytes", len(unpacked))
		detectionBuf = unpacked
	} else {
		detectionBuf = work
	}

	md, variant, err := antidec.Detect(detectionBuf, r.Logger)
	if err != nil {
		return nil, err
	}

	var version model.GameVersion
	cur := bitreader.New(work)

	switch {
	case variant != antidec.VariantUnknown:
		r.Logger.Debug("antidec protection detected", "variant", variant)
		if err := antidec.Decrypt(cur, md, r.Logger); err != nil {
			return nil, err
		}
		version, err = payload.FindHeader(cur, r.Logger)
		if err != nil {
			return nil, err
		}

	case info.UPX != nil:
		// A UPX-packed exe with no antidec signature is not a format this
		// reader recognizes (original_source/gamedata.rs only falls back to
		// the plain 8.0/8.1 header search when UPX is absent).
		return nil, gm8errors.ErrUnknownFormat

	default:
		version, err = payload.FindHeader(cur, r.Logger)
		if err != nil {
			return nil, err
		}
	}

	return payload.Read(cur, version, opts.toPayloadOptions(), r.Logger)
}
