package model

// Settings mirrors the GameMaker 8 settings block read in payload step 1
// (§3 Settings struct). Roughly 35 flags/enums plus up to three optional
// image blobs.
type Settings struct {
	StartFullscreen   bool
	InterpolateColors bool
	DontDrawBorder    bool
	DisplayCursor     bool
	ScalingMode       int32 // -1 = keep aspect, 0 = fixed, >0 = percent
	AllowWindowResize bool
	AlwaysOnTop       bool
	ColorOutsideRoom  uint32
	SetResolution     bool
	ColorDepth        int32
	Resolution        int32
	Frequency         int32
	DontShowButtons   bool
	UseSynchronization bool
	DisableScreensavers bool
	LetF4SwitchFullscreen bool
	LetF1ShowGameInfo  bool
	LetEscEndGame      bool
	LetF5SaveF6Load    bool
	LetF9Screenshot    bool
	TreatCloseAsEscape bool
	GamePriority       int32 // 0=normal,1=high,2=highest
	FreezeOnLoseFocus  bool

	LoadingBarMode int32 // 0=none,1=default,2=custom
	BackgroundLoadingImage []byte
	ForegroundLoadingImage []byte

	CustomLoadImagePresent bool
	CustomLoadImage        []byte
	LoadImageTransparent   bool
	LoadImageAlpha         int32
	ScaleProgressBar       bool

	ErrorDisplay    bool // show error message
	ErrorLog        bool // write error log
	ErrorAbort      bool // abort on error

	// ForceCPURender and TreatUninitializedAsZero/ErrorOnUninitializedArgs
	// are each packed into bits of a single u32 on 8.1, fixed on 8.0 (see
	// payload.decodeDualFlag).
	ForceCPURender            bool
	TreatUninitializedAsZero  bool
	ErrorOnUninitializedArgs  bool

	Author          string
	Version         string
	LastChanged     string
	Information     string

	MajorVersion    int32
	MinorVersion    int32
	ReleaseVersion  int32
	BuildVersion    int32

	CompanyName  string
	ProductName  string
	Copyright    string
	Description  string

	// SwapCreationEvents is optional: a short read at EOF is treated as
	// false rather than an error (§9 Open Question, preserved here).
	SwapCreationEvents bool
}
