// Package assets implements the Asset Deserializer (SPEC_FULL.md §4.7): the
// version-tagged, sparse-list section framework shared by every asset kind,
// plus the per-kind deserializers. Grounded on the teacher's operations
// framework (pkg/psp/operations, since deleted) for the "registry of typed
// steps sharing one cursor" shape, generalized here to a fixed sequence
// instead of a dynamic registry.
package assets

import (
	"fmt"

	"github.com/hashicorp/go-hclog"

	"github.com/xelivous-go/gm8reader/pkg/bitreader"
	"github.com/xelivous-go/gm8reader/pkg/gm8errors"
	"github.com/xelivous-go/gm8reader/pkg/model"
	"github.com/xelivous-go/gm8reader/pkg/zlibx"
)

// AssertVersion checks a section's version tag against its documented
// constant. Under strict mode a mismatch is a VersionError; otherwise it is
// logged and ignored (§4.6 Section version tags).
func AssertVersion(logger hclog.Logger, strict bool, section string, expected, got uint32) error {
	if got == expected {
		return nil
	}
	if strict {
		return &gm8errors.VersionError{Section: section, Expected: expected, Got: got}
	}
	if logger != nil {
		logger.Warn("section version mismatch", "section", section, "expected", expected, "got", got)
	}
	return nil
}

// ReadAssetRefs reads a u32 count followed by that many (u32 length, raw
// bytes) records, returning each record's raw bytes without decompressing
// them. Used where the caller needs the raw framing before deciding how to
// decode it (§4.7 framework; included files, which skip the exists-flag
// gate).
func ReadAssetRefs(cur *bitreader.Cursor) ([][]byte, error) {
	count, err := cur.ReadU32()
	if err != nil {
		return nil, err
	}
	refs := make([][]byte, count)
	for i := range refs {
		b, err := cur.ReadPascalString()
		if err != nil {
			return nil, fmt.Errorf("%w: reading asset ref %d: %v", gm8errors.ErrMalformedData, i, err)
		}
		refs[i] = b
	}
	return refs, nil
}

// ReadSparseSection reads a u32 count followed by that many zlib-framed
// records (§4.7 per-record decoding) and returns a Sparse list in on-disk
// order, regardless of whether records are decompressed concurrently.
func ReadSparseSection[T any](cur *bitreader.Cursor, logger hclog.Logger, multithread bool, deserialize func(*bitreader.Cursor) (T, error)) (model.Sparse[T], error) {
	refs, err := ReadAssetRefs(cur)
	if err != nil {
		return nil, err
	}

	jobs := make([]decodeJob, len(refs))
	for i, r := range refs {
		jobs[i] = decodeJob{index: i, data: r}
	}

	decode := func(data []byte) (bool, T, error) {
		var zero T
		if zlibx.IsZeroSentinel(data) {
			return false, zero, nil
		}
		inflated, err := zlibx.Decompress(data)
		if err != nil {
			return false, zero, fmt.Errorf("%w: %v", gm8errors.ErrMalformedData, err)
		}
		rec := bitreader.New(inflated)
		exists, err := rec.ReadU32()
		if err != nil {
			return false, zero, fmt.Errorf("%w: reading exists flag: %v", gm8errors.ErrMalformedData, err)
		}
		if exists == 0 {
			return false, zero, nil
		}
		v, err := deserialize(rec)
		if err != nil {
			return false, zero, err
		}
		return true, v, nil
	}

	results, err := runPool(jobs, multithread, decode)
	if err != nil {
		return nil, err
	}

	out := model.NewSparse[T](len(refs))
	for _, r := range results {
		if r.err != nil {
			return nil, r.err
		}
		if r.present {
			out.Set(r.index, r.value)
		}
	}

	if logger != nil {
		logger.Debug("read sparse section", "count", len(refs))
	}
	return out, nil
}
