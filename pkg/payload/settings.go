package payload

import (
	"bytes"

	"github.com/hashicorp/go-hclog"
	"golang.org/x/image/bmp"

	"github.com/xelivous-go/gm8reader/pkg/bitreader"
	"github.com/xelivous-go/gm8reader/pkg/model"
)

// ReadSettings decodes the inflated settings block (§4.6 step 1). version
// selects the bit-packing used for the two dual-purpose u32 fields that
// changed shape between 8.0 and 8.1 (§4.6 "Settings bit-packing").
//
// Author/Version/Company/Copyright/Description and the four numeric
// version fields are not part of this block — GameMaker writes them to the
// exe's VERSION_INFO resource instead, which this reader does not parse
// (no rsrc VERSIONINFO walker is in scope); those Settings fields are left
// at their zero value here.
func ReadSettings(cfg *bitreader.Cursor, version model.GameVersion, logger hclog.Logger) (model.Settings, error) {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	logger = logger.Named("gm8.payload.settings")

	var s model.Settings
	var err error

	if s.StartFullscreen, err = cfg.ReadBool32(); err != nil {
		return s, err
	}
	if s.InterpolateColors, err = cfg.ReadBool32(); err != nil {
		return s, err
	}
	if s.DontDrawBorder, err = cfg.ReadBool32(); err != nil {
		return s, err
	}
	if s.DisplayCursor, err = cfg.ReadBool32(); err != nil {
		return s, err
	}
	if s.ScalingMode, err = cfg.ReadI32(); err != nil {
		return s, err
	}
	if s.AllowWindowResize, err = cfg.ReadBool32(); err != nil {
		return s, err
	}
	if s.AlwaysOnTop, err = cfg.ReadBool32(); err != nil {
		return s, err
	}
	if s.ColorOutsideRoom, err = cfg.ReadU32(); err != nil {
		return s, err
	}
	if s.SetResolution, err = cfg.ReadBool32(); err != nil {
		return s, err
	}
	if s.ColorDepth, err = cfg.ReadI32(); err != nil {
		return s, err
	}
	if s.Resolution, err = cfg.ReadI32(); err != nil {
		return s, err
	}
	if s.Frequency, err = cfg.ReadI32(); err != nil {
		return s, err
	}
	if s.DontShowButtons, err = cfg.ReadBool32(); err != nil {
		return s, err
	}

	vsyncWord, err := cfg.ReadU32()
	if err != nil {
		return s, err
	}
	s.UseSynchronization, s.ForceCPURender = decodeDualFlag(version, vsyncWord, 1<<7, true)

	if s.DisableScreensavers, err = cfg.ReadBool32(); err != nil {
		return s, err
	}
	if s.LetF4SwitchFullscreen, err = cfg.ReadBool32(); err != nil {
		return s, err
	}
	if s.LetF1ShowGameInfo, err = cfg.ReadBool32(); err != nil {
		return s, err
	}
	if s.LetEscEndGame, err = cfg.ReadBool32(); err != nil {
		return s, err
	}
	if s.LetF5SaveF6Load, err = cfg.ReadBool32(); err != nil {
		return s, err
	}
	if s.LetF9Screenshot, err = cfg.ReadBool32(); err != nil {
		return s, err
	}
	if s.TreatCloseAsEscape, err = cfg.ReadBool32(); err != nil {
		return s, err
	}
	if s.GamePriority, err = cfg.ReadI32(); err != nil {
		return s, err
	}
	if s.FreezeOnLoseFocus, err = cfg.ReadBool32(); err != nil {
		return s, err
	}

	if s.LoadingBarMode, err = cfg.ReadI32(); err != nil {
		return s, err
	}
	if s.LoadingBarMode != 0 {
		if s.BackgroundLoadingImage, err = readOptionalImageBlob(cfg, logger, "background_loading_image"); err != nil {
			return s, err
		}
		if s.ForegroundLoadingImage, err = readOptionalImageBlob(cfg, logger, "foreground_loading_image"); err != nil {
			return s, err
		}
	}

	if s.CustomLoadImage, err = readOptionalImageBlob(cfg, logger, "custom_load_image"); err != nil {
		return s, err
	}
	s.CustomLoadImagePresent = s.CustomLoadImage != nil

	if s.LoadImageTransparent, err = cfg.ReadBool32(); err != nil {
		return s, err
	}
	if s.LoadImageAlpha, err = cfg.ReadI32(); err != nil {
		return s, err
	}
	if s.ScaleProgressBar, err = cfg.ReadBool32(); err != nil {
		return s, err
	}
	if s.ErrorDisplay, err = cfg.ReadBool32(); err != nil {
		return s, err
	}
	if s.ErrorLog, err = cfg.ReadBool32(); err != nil {
		return s, err
	}
	if s.ErrorAbort, err = cfg.ReadBool32(); err != nil {
		return s, err
	}

	uninitWord, err := cfg.ReadU32()
	if err != nil {
		return s, err
	}
	s.TreatUninitializedAsZero, s.ErrorOnUninitializedArgs = decodeDualFlag(version, uninitWord, 1<<1, false)

	// SwapCreationEvents is optional: a short read at EOF is false, not an
	// error (§9 Open Question, preserved as a deliberate deviation from a
	// strict read).
	if cfg.Remaining() >= 8 {
		if _, err := cfg.ReadU32(); err != nil {
			return s, err
		}
		if s.SwapCreationEvents, err = cfg.ReadBool32(); err != nil {
			return s, err
		}
	} else {
		s.SwapCreationEvents = false
	}

	logger.Debug("read settings block", "version", version)
	return s, nil
}

// decodeDualFlag splits one u32 into two booleans per the version-specific
// packing (§4.6 "Settings bit-packing"): 8.0 takes the first flag from the
// whole word (nonzero is true) and fixes the second to fixedSecond; 8.1
// reads bit 0 and the given secondBit.
func decodeDualFlag(version model.GameVersion, word uint32, secondBit uint32, fixedSecond bool) (first, second bool) {
	if version == model.Version80 {
		return word != 0, fixedSecond
	}
	return word&1 != 0, word&secondBit != 0
}

func readOptionalBlob(cfg *bitreader.Cursor) ([]byte, error) {
	present, err := cfg.ReadBool32()
	if err != nil {
		return nil, err
	}
	if !present {
		return nil, nil
	}
	return cfg.ReadPascalString()
}

// readOptionalImageBlob reads an optional blob the same way readOptionalBlob
// does, then sniffs it as a BMP (the format GameMaker 8 stores these splash
// images in) so a truncated or corrupt blob is caught here rather than
// surfacing as an opaque decode failure somewhere downstream. A bad header
// is logged, never returned as an error: the raw bytes are still whatever
// GameMaker actually wrote, and callers that don't care about the image can
// keep going.
func readOptionalImageBlob(cfg *bitreader.Cursor, logger hclog.Logger, field string) ([]byte, error) {
	blob, err := readOptionalBlob(cfg)
	if err != nil || blob == nil {
		return blob, err
	}
	if _, bmpErr := bmp.DecodeConfig(bytes.NewReader(blob)); bmpErr != nil {
		logger.Warn("settings image blob does not look like a BMP", "field", field, "error", bmpErr)
	}
	return blob, nil
}
