package config

import "image/color"

// CompassConfig contains the off-screen peer indicator tuning values
type CompassConfig struct {
	TileSize float64 // world pixels per tile; peer and viewer boxes are derived from it

	// Screen-pixel margin kept between an indicator and the screen edge
	BubbleOnlyOffset float64
	WithArrowOffset  float64

	ArrowDistance float64 // UI pixels from bubble centre to arrow pivot
	ArrowScale    float64
	ArrowLength   float64
	ArrowWidth    float64
	BubbleRadius  float64
	BubbleOutline float64

	OccludedAlpha float64 // bubble alpha cap while drawn over HUD

	ReconcileInterval int // ticks between tracker reconciles (60 = once a second)
}

// CameraConfig contains camera behavior configuration
type CameraConfig struct {
	FollowSmoothing float64 // How fast camera follows the viewer (0.0-1.0)
	DefaultZoom     float64
	MinZoom         float64
	MaxZoom         float64
	ZoomStep        float64
}

// ViewerConfig contains the local viewer's movement values
type ViewerConfig struct {
	Speed           float64 // pixels per tick
	CollisionWidth  float64
	CollisionHeight float64
	Color           color.RGBA
	WarpCooldown    int // ticks after a warp before another can trigger
	WarpHidden      int // ticks of that cooldown the viewer stays hidden
	StartLocation   string
}

// PeerConfig contains demo peer values
type PeerConfig struct {
	WalkSpeed float64 // pixels per second along a route
	Names     []string
	Palette   []color.RGBA
}

// Region is a UI-space rectangle
type Region struct {
	X, Y, W, H float64
}

// UIConfig contains UI-related configuration values
type UIConfig struct {
	DefaultScale float64
	MinScale     float64
	MaxScale     float64
	ScaleStep    float64

	// HUD panels, unscaled UI pixels. Indicators over them are faded.
	// StatusPanel is anchored top-left, HintPanel bottom-right; X and Y
	// are the margins from their corner.
	StatusPanel Region
	HintPanel   Region

	PanelColor     color.RGBA
	TextColor      color.RGBA
	ArrowColor     color.RGBA
	OutlineColor   color.RGBA
	WallColor      color.RGBA
	WarpColor      color.RGBA
	BackgroundTint map[string]color.RGBA // per location
}

// MenuConfig contains title menu configuration values
type MenuConfig struct {
	BackgroundColor   color.RGBA
	TitleColor        color.RGBA
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
	TitleY            float64
	MenuStartY        float64
	MenuItemHeight    float64
	MenuItemGap       float64
	MenuOptions       []string
}

// NetworkConfig contains client connection values
type NetworkConfig struct {
	GameVersion    string
	DefaultAddress string // prefilled in the connect screen
	PlayerName     string
}

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
}

// Global configuration instances
var C *Config
var Compass CompassConfig
var Camera CameraConfig
var Viewer ViewerConfig
var Peer PeerConfig
var UI UIConfig
var Menu MenuConfig
var Network NetworkConfig
var Debug DebugConfig

// DebugConfig contains debug/testing launch options
type DebugConfig struct {
	SkipMenu bool // Skip menu and go directly to the offline session
	Overlay  bool // Draw collision boxes and indicator geometry
}

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	BrightOrange = color.RGBA{R: 255, G: 180, B: 50, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	LightGreen   = color.RGBA{R: 100, G: 255, B: 100, A: 255}
	Blue         = color.RGBA{R: 0, G: 100, B: 255, A: 255}
	Purple       = color.RGBA{R: 128, G: 0, B: 255, A: 255}
	LightRed     = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	DarkBlue     = color.RGBA{R: 60, G: 100, B: 160, A: 255}
)

func init() {
	C = &Config{
		Width:  1280,
		Height: 720,
	}

	Compass = CompassConfig{
		TileSize: 64,

		BubbleOnlyOffset: 40,
		WithArrowOffset:  50,

		ArrowDistance: 36,
		ArrowScale:    0.75,
		ArrowLength:   24,
		ArrowWidth:    18,
		BubbleRadius:  26,
		BubbleOutline: 3,

		OccludedAlpha: 0.5,

		ReconcileInterval: 60,
	}

	Camera = CameraConfig{
		FollowSmoothing: 0.1,
		DefaultZoom:     1.0,
		MinZoom:         0.5,
		MaxZoom:         2.0,
		ZoomStep:        0.25,
	}

	Viewer = ViewerConfig{
		Speed:           5.0,
		CollisionWidth:  40,
		CollisionHeight: 24,
		Color:           LightBlue,
		WarpCooldown:    40,
		WarpHidden:      12,
		StartLocation:   "farm",
	}

	Peer = PeerConfig{
		WalkSpeed: 120,
		Names:     []string{"Abigail", "Sebastian", "Leah", "Harvey", "Emily", "Krobus"},
		Palette: []color.RGBA{
			{R: 232, G: 106, B: 86, A: 255},
			{R: 96, G: 186, B: 112, A: 255},
			{R: 236, G: 196, B: 72, A: 255},
			{R: 170, G: 110, B: 220, A: 255},
			{R: 80, G: 180, B: 210, A: 255},
			{R: 230, G: 130, B: 190, A: 255},
		},
	}

	UI = UIConfig{
		DefaultScale: 1.0,
		MinScale:     0.75,
		MaxScale:     1.5,
		ScaleStep:    0.25,

		StatusPanel: Region{X: 8, Y: 8, W: 260, H: 84},
		HintPanel:   Region{X: 8, Y: 8, W: 360, H: 44},

		PanelColor:   color.RGBA{R: 20, G: 24, B: 36, A: 200},
		TextColor:    White,
		ArrowColor:   BrightOrange,
		OutlineColor: color.RGBA{R: 40, G: 30, B: 20, A: 255},
		WallColor:    color.RGBA{R: 92, G: 70, B: 50, A: 255},
		WarpColor:    color.RGBA{R: 120, G: 200, B: 255, A: 120},
		BackgroundTint: map[string]color.RGBA{
			"farm": {R: 74, G: 124, B: 62, A: 255},
			"town": {R: 122, G: 118, B: 108, A: 255},
		},
	}

	Menu = MenuConfig{
		BackgroundColor:   color.RGBA{R: 15, G: 25, B: 50, A: 255},
		TitleColor:        Orange,
		TextColorNormal:   White,
		TextColorSelected: BrightOrange,
		TitleY:            160,
		MenuStartY:        260,
		MenuItemHeight:    30,
		MenuItemGap:       12,
		MenuOptions:       []string{"Offline Demo", "Multiplayer", "Settings", "Exit"},
	}

	Network = NetworkConfig{
		GameVersion:    "0.1.0",
		DefaultAddress: "localhost",
		PlayerName:     "Farmer",
	}

	// Debug Config (defaults, can be overridden by launch options)
	Debug = DebugConfig{
		SkipMenu: false,
	}
}
