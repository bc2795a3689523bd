package assets

import (
	"fmt"

	"github.com/hashicorp/go-hclog"

	"github.com/xelivous-go/gm8reader/pkg/bitreader"
	"github.com/xelivous-go/gm8reader/pkg/gm8errors"
	"github.com/xelivous-go/gm8reader/pkg/model"
	"github.com/xelivous-go/gm8reader/pkg/zlibx"
)

// ReadIncludedFiles reads the included-files section (§4.6 step 20): a
// plain list of (length, raw bytes) records, each inflated and deserialized
// directly with no exists-flag gate — unlike the sparse sections, a deleted
// included file is simply absent from the list, not a hole.
func ReadIncludedFiles(cur *bitreader.Cursor, logger hclog.Logger) ([]model.IncludedFile, error) {
	refs, err := ReadAssetRefs(cur)
	if err != nil {
		return nil, err
	}

	files := make([]model.IncludedFile, len(refs))
	for i, r := range refs {
		inflated, err := zlibx.Decompress(r)
		if err != nil {
			return nil, fmt.Errorf("%w: included file %d: %v", gm8errors.ErrMalformedData, i, err)
		}
		files[i], err = DeserializeIncludedFile(bitreader.New(inflated))
		if err != nil {
			return nil, fmt.Errorf("%w: included file %d: %v", gm8errors.ErrMalformedData, i, err)
		}
	}

	if logger != nil {
		logger.Debug("read included files", "count", len(files))
	}
	return files, nil
}

// DeserializeIncludedFile reads one included file's inflated body.
func DeserializeIncludedFile(cur *bitreader.Cursor) (model.IncludedFile, error) {
	var f model.IncludedFile
	var err error

	if f.FileName, err = cur.ReadPascalStringAsString(); err != nil {
		return f, err
	}
	if f.OriginalPath, err = cur.ReadPascalStringAsString(); err != nil {
		return f, err
	}
	if f.IsOriginal, err = cur.ReadBool32(); err != nil {
		return f, err
	}

	dataSize, err := cur.ReadU32()
	if err != nil {
		return f, err
	}
	f.DataSize = int64(dataSize)

	dataPresent, err := cur.ReadBool32()
	if err != nil {
		return f, err
	}
	if dataPresent {
		if f.Data, err = cur.ReadPascalString(); err != nil {
			return f, err
		}
	}

	if f.ExportMode, err = cur.ReadI32(); err != nil {
		return f, err
	}
	if f.ExportFolder, err = cur.ReadPascalStringAsString(); err != nil {
		return f, err
	}
	if f.Overwrite, err = cur.ReadBool32(); err != nil {
		return f, err
	}
	if f.FreeAfterExport, err = cur.ReadBool32(); err != nil {
		return f, err
	}
	if f.RemoveAtEnd, err = cur.ReadBool32(); err != nil {
		return f, err
	}
	return f, nil
}
