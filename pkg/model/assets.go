package model

// Extension mirrors a GM8 extension package: a named folder of files, each
// file declaring functions and constants it exports to GML.
type Extension struct {
	Name       string
	FolderName string
	Files      []ExtensionFile
}

type ExtensionFile struct {
	FileName    string
	Kind        int32 // DLL / GML / ...
	Initializer string
	Finalizer   string
	Functions   []ExtensionFunction
	Constants   []ExtensionConstant
}

type ExtensionFunction struct {
	Name         string
	ExternalName string
	Convention   int32
	ArgTypes     []int32
	ReturnType   int32
}

type ExtensionConstant struct {
	Name  string
	Value string
}

// Trigger is a named, event-scoped condition expression.
type Trigger struct {
	Name       string
	Condition  string
	Moment     int32 // step-begin / step / step-end
	ConstantName string
}

// Constant is a single name/value-expression pair.
type Constant struct {
	Name  string
	Value string
}

// Sound is one audio asset: metadata plus an optional raw audio blob.
type Sound struct {
	Name          string
	Kind          int32 // normal/background/3D/ring
	FileType      string
	FileName      string
	Data          []byte
	EffectsMask   int32
	Volume        float64
	Pan           float64
	Preload       bool
}

// Sprite is a named image asset with N frames sharing one bounding box and
// collision-mask configuration.
type Sprite struct {
	Name           string
	OriginX        int32
	OriginY        int32
	BBoxLeft       int32
	BBoxRight      int32
	BBoxTop        int32
	BBoxBottom     int32
	MaskShape      int32 // precise / rectangle / disk / diamond
	SeparateMasks  bool
	AlphaTolerance int32
	Frames         []Image
}

// Background is a single-frame image asset, optionally declared as a
// tileset.
type Background struct {
	Name          string
	IsTileset     bool
	TileWidth     int32
	TileHeight    int32
	TileHOffset   int32
	TileVOffset   int32
	TileHSep      int32
	TileVSep      int32
	Frame         Image
}

// Image is a single raw frame shared by Sprite and Background.
type Image struct {
	Width  int32
	Height int32
	Data   []byte // raw BGRA, length-prefixed inside the record
}

// Path is a motion path: an ordered list of points with speed.
type Path struct {
	Name      string
	Kind      int32 // straight / smooth
	Closed    bool
	Precision int32
	Points    []PathPoint
}

type PathPoint struct {
	X, Y, Speed float64
}

// Script is raw (pre-deobfuscation) GML source.
type Script struct {
	Name   string
	Source string
}

// Font describes a bitmap font sheet and its glyph metrics.
type Font struct {
	Name       string
	SystemName string
	Size       int32
	Bold       bool
	Italic     bool
	Charset    int32
	Antialias  int32
	Glyphs     []Glyph
}

type Glyph struct {
	Char    int32
	X, Y    int32
	W, H    int32
	Advance int32
}

// Timeline is a sequence of moments, each holding an opaque action list.
type Timeline struct {
	Name    string
	Moments []Moment
}

type Moment struct {
	Position int32
	Actions  []byte // GM8 action chunks, carried opaque
}

// Object is a GM8 game object: sprite/mask references, flags, and an
// ordered list of events, each with an opaque action list.
type Object struct {
	Name          string
	SpriteIndex   int32
	Solid         bool
	Visible       bool
	Depth         int32
	Persistent    bool
	ParentIndex   int32
	MaskIndex     int32
	Events        []Event
}

type Event struct {
	Type    int32
	SubType int32
	Actions []byte
}

// Room is a playable level: dimensions, backgrounds, views, instances and
// tiles, plus GM8.1-only physics fields.
type Room struct {
	Name                  string
	Caption               string
	Width, Height         int32
	Speed                 int32
	Persistent            bool
	BackgroundColor       uint32
	DrawBackgroundColor   bool
	CreationCode          string
	EnableViews           bool
	ShowColor             bool
	ClearDisplayBuffer    bool
	Backgrounds           []RoomBackground
	Views                 []RoomView
	Instances             []Instance
	Tiles                 []Tile
	PhysicsWorld          bool
	PhysicsGravityX       float64
	PhysicsGravityY       float64
	PhysicsPixelsPerMeter float64
}

type RoomBackground struct {
	Visible    bool
	Foreground bool
	Index      int32
	X, Y       int32
	TileH      bool
	TileV      bool
	HSpeed     int32
	VSpeed     int32
	Stretch    bool
}

type RoomView struct {
	Visible        bool
	ViewX, ViewY   int32
	ViewW, ViewH   int32
	PortX, PortY   int32
	PortW, PortH   int32
	Following      int32
	BorderH        int32
	BorderV        int32
	SpeedH         int32
	SpeedV         int32
}

type Instance struct {
	X, Y         int32
	ObjectIndex  int32
	InstanceID   int32
	CreationCode string
	Locked       bool
}

type Tile struct {
	X, Y            int32
	BackgroundIndex int32
	TileX, TileY    int32
	Width, Height   int32
	Depth           int32
	TileID          int32
	Locked          bool
}

// IncludedFile is a file bundled verbatim into the game, with GM8's
// export-on-run configuration.
type IncludedFile struct {
	FileName        string
	OriginalPath    string
	IsOriginal      bool
	DataSize        int64
	Data            []byte
	ExportMode      int32 // none/temp/working/custom
	ExportFolder    string
	Overwrite       bool
	FreeAfterExport bool
	RemoveAtEnd     bool
}
