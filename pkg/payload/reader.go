package payload

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/hashicorp/go-hclog"

	"github.com/xelivous-go/gm8reader/pkg/assets"
	"github.com/xelivous-go/gm8reader/pkg/bitreader"
	"github.com/xelivous-go/gm8reader/pkg/gm8errors"
	"github.com/xelivous-go/gm8reader/pkg/model"
	"github.com/xelivous-go/gm8reader/pkg/zlibx"
)

// Section version tags (§4.6 "Section version tags").
const (
	verExtensions   = 700
	verTriggers     = 800
	verConstants    = 800
	verSounds       = 800
	verSprites      = 800
	verBackgrounds  = 800
	verPaths        = 800
	verScripts      = 800
	verFonts        = 800
	verTimelines    = 800
	verObjects      = 800
	verRooms        = 800
	verIncluded     = 800
	verHelpDialog   = 800
	verLibraryInit  = 500
	verRoomOrder    = 700
)

// Options controls the Payload Reader's strictness and concurrency
// (§5 Concurrency & Resource Model).
type Options struct {
	Strict      bool
	Multithread bool
}

// Read drives the Payload Reader (§4.6) to completion, producing the final
// Assets bundle. cur must already be positioned at the start of the
// settings block (i.e. FindHeader has run).
func Read(cur *bitreader.Cursor, version model.GameVersion, opts Options, logger hclog.Logger) (*model.Assets, error) {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	logger = logger.Named("gm8.payload")

	assetsOut := &model.Assets{Version: version}

	settingsRaw, err := ReadCompressedBlock(cur)
	if err != nil {
		return nil, fmt.Errorf("%w: settings block: %v", gm8errors.ErrMalformedData, err)
	}
	if assetsOut.Settings, err = ReadSettings(bitreader.New(settingsRaw), version, logger); err != nil {
		return nil, fmt.Errorf("%w: decoding settings: %v", gm8errors.ErrMalformedData, err)
	}

	if assetsOut.DirectXDLL.Name, err = cur.ReadPascalStringAsString(); err != nil {
		return nil, err
	}
	if assetsOut.DirectXDLL.Data, err = cur.ReadPascalString(); err != nil {
		return nil, err
	}
	logger.Debug("skipping embedded DirectX DLL", "name", assetsOut.DirectXDLL.Name, "bytes", len(assetsOut.DirectXDLL.Data))

	if err := Decrypt80(cur, logger); err != nil {
		return nil, err
	}

	garbageDwords, err := cur.ReadU32()
	if err != nil {
		return nil, err
	}
	if err := cur.Skip(int(garbageDwords) * 4); err != nil {
		return nil, fmt.Errorf("%w: garbage dword skip out of range", gm8errors.ErrMalformedData)
	}
	logger.Debug("skipped garbage dwords", "count", garbageDwords)

	proFlag, err := cur.ReadBool32()
	if err != nil {
		return nil, err
	}
	gameID, err := cur.ReadI32()
	if err != nil {
		return nil, err
	}
	assetsOut.GameID = gameID
	logger.Debug("read pro flag and game id", "pro", proFlag, "game_id", gameID)

	var guidBytes [16]byte
	for i := 0; i < 4; i++ {
		word, err := cur.ReadU32()
		if err != nil {
			return nil, err
		}
		guidBytes[i*4+0] = byte(word)
		guidBytes[i*4+1] = byte(word >> 8)
		guidBytes[i*4+2] = byte(word >> 16)
		guidBytes[i*4+3] = byte(word >> 24)
	}
	if assetsOut.Guid, err = uuid.FromBytes(guidBytes[:]); err != nil {
		return nil, fmt.Errorf("%w: decoding guid: %v", gm8errors.ErrMalformedData, err)
	}

	if err := assertVersion(cur, logger, opts.Strict, "extensions header", verExtensions); err != nil {
		return nil, err
	}
	extCount, err := cur.ReadU32()
	if err != nil {
		return nil, err
	}
	assetsOut.Extensions = model.NewSparse[model.Extension](int(extCount))
	for i := 0; i < int(extCount); i++ {
		ext, err := assets.DeserializeExtension(cur)
		if err != nil {
			return nil, fmt.Errorf("%w: extension %d: %v", gm8errors.ErrMalformedData, i, err)
		}
		assetsOut.Extensions.Set(i, ext)
	}

	if err := assertVersion(cur, logger, opts.Strict, "triggers header", verTriggers); err != nil {
		return nil, err
	}
	if assetsOut.Triggers, err = assets.ReadSparseSection(cur, logger, opts.Multithread, assets.DeserializeTrigger); err != nil {
		return nil, err
	}

	if err := assertVersion(cur, logger, opts.Strict, "constants header", verConstants); err != nil {
		return nil, err
	}
	constCount, err := cur.ReadU32()
	if err != nil {
		return nil, err
	}
	assetsOut.Constants = model.NewSparse[model.Constant](int(constCount))
	for i := 0; i < int(constCount); i++ {
		c, err := assets.DeserializeConstant(cur)
		if err != nil {
			return nil, fmt.Errorf("%w: constant %d: %v", gm8errors.ErrMalformedData, i, err)
		}
		assetsOut.Constants.Set(i, c)
	}

	if err := assertVersion(cur, logger, opts.Strict, "sounds header", verSounds); err != nil {
		return nil, err
	}
	if assetsOut.Sounds, err = assets.ReadSparseSection(cur, logger, opts.Multithread, assets.DeserializeSound); err != nil {
		return nil, err
	}

	if err := assertVersion(cur, logger, opts.Strict, "sprites header", verSprites); err != nil {
		return nil, err
	}
	if assetsOut.Sprites, err = assets.ReadSparseSection(cur, logger, opts.Multithread, assets.DeserializeSprite); err != nil {
		return nil, err
	}

	if err := assertVersion(cur, logger, opts.Strict, "backgrounds header", verBackgrounds); err != nil {
		return nil, err
	}
	if assetsOut.Backgrounds, err = assets.ReadSparseSection(cur, logger, opts.Multithread, assets.DeserializeBackground); err != nil {
		return nil, err
	}

	if err := assertVersion(cur, logger, opts.Strict, "paths header", verPaths); err != nil {
		return nil, err
	}
	if assetsOut.Paths, err = assets.ReadSparseSection(cur, logger, opts.Multithread, assets.DeserializePath); err != nil {
		return nil, err
	}

	if err := assertVersion(cur, logger, opts.Strict, "scripts header", verScripts); err != nil {
		return nil, err
	}
	if assetsOut.Scripts, err = assets.ReadSparseSection(cur, logger, opts.Multithread, assets.DeserializeScript); err != nil {
		return nil, err
	}

	if err := assertVersion(cur, logger, opts.Strict, "fonts header", verFonts); err != nil {
		return nil, err
	}
	if assetsOut.Fonts, err = assets.ReadSparseSection(cur, logger, opts.Multithread, assets.DeserializeFont); err != nil {
		return nil, err
	}

	if err := assertVersion(cur, logger, opts.Strict, "timelines header", verTimelines); err != nil {
		return nil, err
	}
	if assetsOut.Timelines, err = assets.ReadSparseSection(cur, logger, opts.Multithread, assets.DeserializeTimeline); err != nil {
		return nil, err
	}

	if err := assertVersion(cur, logger, opts.Strict, "objects header", verObjects); err != nil {
		return nil, err
	}
	if assetsOut.Objects, err = assets.ReadSparseSection(cur, logger, opts.Multithread, assets.DeserializeObject); err != nil {
		return nil, err
	}

	if err := assertVersion(cur, logger, opts.Strict, "rooms header", verRooms); err != nil {
		return nil, err
	}
	deserializeRoom := func(c *bitreader.Cursor) (model.Room, error) { return assets.DeserializeRoom(c, version) }
	if assetsOut.Rooms, err = assets.ReadSparseSection(cur, logger, opts.Multithread, deserializeRoom); err != nil {
		return nil, err
	}

	if assetsOut.LastInstanceID, err = cur.ReadI32(); err != nil {
		return nil, err
	}
	if assetsOut.LastTileID, err = cur.ReadI32(); err != nil {
		return nil, err
	}

	if err := assertVersion(cur, logger, opts.Strict, "included files header", verIncluded); err != nil {
		return nil, err
	}
	includedFiles, err := assets.ReadIncludedFiles(cur, logger)
	if err != nil {
		return nil, err
	}
	assetsOut.IncludedFiles = model.NewSparse[model.IncludedFile](len(includedFiles))
	for i, f := range includedFiles {
		assetsOut.IncludedFiles.Set(i, f)
	}

	if err := assertVersion(cur, logger, opts.Strict, "help dialog", verHelpDialog); err != nil {
		return nil, err
	}
	helpRaw, err := ReadCompressedBlock(cur)
	if err != nil {
		return nil, fmt.Errorf("%w: help dialog: %v", gm8errors.ErrMalformedData, err)
	}
	if assetsOut.HelpDialog, err = assets.DeserializeHelpDialog(bitreader.New(helpRaw)); err != nil {
		return nil, fmt.Errorf("%w: decoding help dialog: %v", gm8errors.ErrMalformedData, err)
	}

	if err := assertVersion(cur, logger, opts.Strict, "action library initialization code header", verLibraryInit); err != nil {
		return nil, err
	}
	strCount, err := cur.ReadU32()
	if err != nil {
		return nil, err
	}
	assetsOut.LibraryInitStrings = make([]string, strCount)
	for i := range assetsOut.LibraryInitStrings {
		if assetsOut.LibraryInitStrings[i], err = cur.ReadPascalStringAsString(); err != nil {
			return nil, err
		}
	}

	if err := assertVersion(cur, logger, opts.Strict, "room order lookup", verRoomOrder); err != nil {
		return nil, err
	}
	roomOrderCount, err := cur.ReadU32()
	if err != nil {
		return nil, err
	}
	assetsOut.RoomOrder = make([]int32, roomOrderCount)
	for i := range assetsOut.RoomOrder {
		if assetsOut.RoomOrder[i], err = cur.ReadI32(); err != nil {
			return nil, err
		}
	}

	logger.Info("payload read complete", "rooms", len(assetsOut.Rooms), "objects", len(assetsOut.Objects))
	return assetsOut, nil
}

func assertVersion(cur *bitreader.Cursor, logger hclog.Logger, strict bool, section string, expected uint32) error {
	got, err := cur.ReadU32()
	if err != nil {
		return err
	}
	return assets.AssertVersion(logger, strict, section, expected, got)
}

// ReadCompressedBlock reads a u32 length prefix followed by that many
// zlib-compressed bytes and returns the inflated result — the generic
// framing used by the settings block and the help dialog (§4.6: "each step
// consumes a length-prefixed, zlib-deflated sub-block unless noted
// otherwise").
func ReadCompressedBlock(cur *bitreader.Cursor) ([]byte, error) {
	raw, err := cur.ReadPascalString()
	if err != nil {
		return nil, err
	}
	return zlibx.Decompress(raw)
}
