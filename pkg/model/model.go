// Package model defines the in-memory asset graph produced by the
// gm8reader pipeline: the typed Assets bundle, the sparse asset list, and
// the small value types shared by every asset schema (§3 of SPEC_FULL.md).
package model

import (
	"github.com/google/uuid"
)

// GameVersion identifies which of the two supported GameMaker releases
// produced the executable under inspection.
type GameVersion int

const (
	VersionUnknown GameVersion = iota
	Version80
	Version81
)

func (v GameVersion) String() string {
	switch v {
	case Version80:
		return "8.0"
	case Version81:
		return "8.1"
	default:
		return "unknown"
	}
}

// Sparse is an ordered list where some indices are marked absent. Length is
// always the count encoded in the section header; a deleted slot is the
// zero value of T wrapped in Present=false, never elided (§3 Sparse asset
// list invariant).
type Sparse[T any] []Entry[T]

// Entry is one slot of a Sparse list.
type Entry[T any] struct {
	Present bool
	Value   T
}

// NewSparse allocates a Sparse list of the given length with every slot
// absent, ready to be filled in stream order (including out of order by
// concurrent workers, per §4.7 Parallelism).
func NewSparse[T any](n int) Sparse[T] {
	return make(Sparse[T], n)
}

// Set fills slot i with a present value. Index i must be < len(s).
func (s Sparse[T]) Set(i int, v T) {
	s[i] = Entry[T]{Present: true, Value: v}
}

// Guid wraps the 16-byte little-endian GUID read in payload step 5.
type Guid = uuid.UUID

// Assets is the final, owned output of the pipeline (§3 Assets bundle).
type Assets struct {
	Version GameVersion
	GameID  int32
	Guid    Guid

	Settings   Settings
	DirectXDLL DirectXDLL
	IconData   []byte // optional, populated only by an external Extractor (§6)

	Extensions    Sparse[Extension]
	Triggers      Sparse[Trigger]
	Constants     Sparse[Constant]
	Sounds        Sparse[Sound]
	Sprites       Sparse[Sprite]
	Backgrounds   Sparse[Background]
	Paths         Sparse[Path]
	Scripts       Sparse[Script]
	Fonts         Sparse[Font]
	Timelines     Sparse[Timeline]
	Objects       Sparse[Object]
	Rooms         Sparse[Room]
	IncludedFiles Sparse[IncludedFile]

	LastInstanceID int32
	LastTileID     int32

	HelpDialog         HelpDialog
	LibraryInitStrings []string
	RoomOrder          []int32
}

// DirectXDLL is the embedded DirectX DLL blob (payload step 2), retained
// verbatim.
type DirectXDLL struct {
	Name string
	Data []byte
}

// HelpDialog is the zlib-compressed help dialog block (payload step 21).
type HelpDialog struct {
	BackgroundColor uint32
	ShowNewGameOnly bool
	Caption         string
	Left            int32
	Top             int32
	Width           uint32
	Height          uint32
	Border          bool
	Resizable       bool
	WindowOnTop     bool
	FreezeGame      bool
	Text            string
}
