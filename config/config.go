package config

import (
	"image/color"
	"time"

	"github.com/automoto/ferrisdive/shared/gameplay"
)

// Config holds general game configuration
type Config struct {
	Title  string
	Width  int // logical screen size
	Height int
	Scale  int // window pixels per logical pixel
	TPS    int
}

// PhysicsConfig contains the Chipmunk space settings
type PhysicsConfig struct {
	Gravity      float64 `yaml:"gravity"`
	Iterations   uint    `yaml:"iterations"`
	MaxFallSpeed float64 `yaml:"max_fall_speed"`
}

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	// Movement
	MoveSpeed     float64 `yaml:"move_speed"`
	JumpSpeed     float64 `yaml:"jump_speed"`
	FastFallSpeed float64 `yaml:"fast_fall_speed"`
	Friction      float64 `yaml:"friction"` // horizontal decay per tick with no input

	// Body
	Elasticity      float64 `yaml:"elasticity"`
	BodyFriction    float64 `yaml:"body_friction"`
	CollisionWidth  float64 `yaml:"collision_width"`
	CollisionHeight float64 `yaml:"collision_height"`

	FrameWidth  int `yaml:"-"`
	FrameHeight int `yaml:"-"`
}

// EnemyTypeConfig describes one fish
type EnemyTypeConfig struct {
	Name            string
	SpriteSheetKey  string
	FrameWidth      int
	FrameHeight     int
	CollisionWidth  float64
	CollisionHeight float64
}

// EnemyConfig contains enemy configuration keyed by the TMX object tag
type EnemyConfig struct {
	Types map[string]EnemyTypeConfig
}

type PickupConfig struct {
	Radius     float64
	FrameSize  int
	SpinFrames int
}

// HUDConfig contains HUD layout, colors and the control hint
type HUDConfig struct {
	Margin          float64
	LineHeight      float64
	LowHealth       int // hp label turns red below this
	HealthColor     color.RGBA
	LowHealthColor  color.RGBA
	GoodPerkColor   color.RGBA
	BadPerkColor    color.RGBA
	HintText        string
	HintHold        time.Duration
	HintFade        time.Duration
	FontSize        float64
	DebugFontSize   float64
	DebugTextColor  color.RGBA
	DebugShapeColor color.RGBA
}

// OverlayConfig contains the died/won terminal overlay
type OverlayConfig struct {
	DiedText       string
	WonText        string
	HintText       string
	FontSize       float64
	FadeDuration   time.Duration
	DiedBackground color.RGBA
	WonBackground  color.RGBA
	DiedColor      color.RGBA
	WonColor       color.RGBA
	HintColor      color.RGBA
}

// CameraConfig contains camera behavior configuration
type CameraConfig struct {
	FollowSmoothing float64 // How fast camera follows player (0.0-1.0)
}

type BubbleConfig struct {
	FrameSize int
	Frames    int
}

// LevelConfig contains the water tint and the background color
type LevelConfig struct {
	ClearColor color.RGBA
	WaterAlpha float32
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	Enabled       bool
	DrawColliders bool
	ChangeMap     bool // advance to the next level on goal instead of winning
}

// Global configuration instances
var C *Config
var Gameplay gameplay.Rules
var Physics PhysicsConfig
var Player PlayerConfig
var Enemy EnemyConfig
var Pickup PickupConfig
var HUD HUDConfig
var Overlay OverlayConfig
var Camera CameraConfig
var Bubble BubbleConfig
var Level LevelConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	LightRed     = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	LightGreen   = color.RGBA{R: 100, G: 255, B: 100, A: 255}
	BrightYellow = color.RGBA{R: 255, G: 255, B: 100, A: 255}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	Magenta      = color.RGBA{R: 255, G: 0, B: 255, A: 255}
	Black        = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	Beige        = color.RGBA{R: 245, G: 245, B: 220, A: 255}
	LimeGreen    = color.RGBA{R: 50, G: 205, B: 50, A: 255}
	DeepWater    = color.RGBA{R: 0x29, G: 0x36, B: 0x6f, A: 255}
)

func init() {
	C = &Config{
		Title:  "ferrisdive",
		Width:  426,
		Height: 240,
		Scale:  3,
		TPS:    60,
	}

	Gameplay = gameplay.DefaultRules()

	Physics = PhysicsConfig{
		Gravity:      -1500,
		Iterations:   10,
		MaxFallSpeed: 600,
	}

	Player = PlayerConfig{
		MoveSpeed:     200,
		JumpSpeed:     800,
		FastFallSpeed: -500,
		Friction:      20,

		Elasticity:      0.2,
		BodyFriction:    0.7,
		CollisionWidth:  32,
		CollisionHeight: 16,

		FrameWidth:  32,
		FrameHeight: 32,
	}

	Enemy = EnemyConfig{
		Types: map[string]EnemyTypeConfig{
			"anglerfish": {
				Name:            "Anglerfish",
				SpriteSheetKey:  "anglerfish",
				FrameWidth:      32,
				FrameHeight:     16,
				CollisionWidth:  32,
				CollisionHeight: 16,
			},
			"sawfish": {
				Name:            "Sawfish",
				SpriteSheetKey:  "sawfish",
				FrameWidth:      32,
				FrameHeight:     16,
				CollisionWidth:  32,
				CollisionHeight: 16,
			},
		},
	}

	Pickup = PickupConfig{
		Radius:     5,
		FrameSize:  16,
		SpinFrames: 4,
	}

	HUD = HUDConfig{
		Margin:          6,
		LineHeight:      12,
		LowHealth:       10,
		HealthColor:     White,
		LowHealthColor:  LightRed,
		GoodPerkColor:   LightGreen,
		BadPerkColor:    LightRed,
		HintText:        "A/D move  W jump  S dive  R restart",
		HintHold:        3 * time.Second,
		HintFade:        time.Second,
		FontSize:        8,
		DebugFontSize:   6,
		DebugTextColor:  BrightYellow,
		DebugShapeColor: Magenta,
	}

	Overlay = OverlayConfig{
		DiedText:       "You died",
		WonText:        "You won",
		HintText:       "press R to dive again",
		FontSize:       24,
		FadeDuration:   800 * time.Millisecond,
		DiedBackground: Black,
		WonBackground:  Beige,
		DiedColor:      Red,
		WonColor:       LimeGreen,
		HintColor:      White,
	}

	Camera = CameraConfig{
		FollowSmoothing: 0.1,
	}

	Bubble = BubbleConfig{
		FrameSize: 8,
		Frames:    2,
	}

	Level = LevelConfig{
		ClearColor: DeepWater,
		WaterAlpha: 0.5,
	}
}
