package main

import (
	"image/color"
	"time"
)

// Window constants
const (
	screenWidth       = 1280
	screenHeight      = 720
	windowTitle       = "Asteroids"
	windowedSizeRatio = 0.9
)

// Frame constants
const (
	maxFrameDelta     = 0.1 // seconds; longer frames are clamped
	fpsSampleInterval = 0.5 // seconds between FPS readout updates
)

// Starfield constants
const (
	starCount      = 90
	starMinSpeed   = 0.05
	starSpeedRange = 0.25
	starMaxRadius  = 1.6
)

// UI constants
const (
	hudMarginX      = 24
	hudMarginY      = 16
	hudLineSpacing  = 30
	titleY          = 0.35 // fraction of the screen height
	promptY         = 0.55
	titleFontSize   = 64
	bodyFontSize    = 24
	fallbackScaleUp = 3.0 // bitmap font scale for titles when no TTF is available
)

// Ship geometry constants, in screen pixels relative to the sprite center
const (
	shipBackOffsetY = 14.0
	flameBaseLength = 18.0
	flameVarLength  = 8.0
)

// Sprite constants
const (
	placeholderShipSize = 32
	placeholderRockSize = 32
)

// Profiling constants
const (
	profileFPSThreshold  = 45.0
	profileWarmup        = 3 * time.Second
	profileCooldown      = 10 * time.Second
	profileCaptureWindow = 5 * time.Second
)

// Color constants
var (
	colorBackground = color.NRGBA{R: 3, G: 5, B: 16, A: 255}
	colorStar       = color.NRGBA{R: 100, G: 100, B: 100, A: 255}
	colorBullet     = color.NRGBA{R: 255, G: 230, B: 120, A: 255}
	colorText       = color.NRGBA{R: 230, G: 235, B: 255, A: 255}
	colorPrompt     = color.NRGBA{R: 150, G: 170, B: 210, A: 255}
	colorHitbox     = color.NRGBA{R: 0, G: 255, B: 0, A: 255}
	colorHitboxHot  = color.NRGBA{R: 255, G: 80, B: 80, A: 255}
	colorShip       = color.RGBA{R: 100, G: 150, B: 255, A: 255}
	colorRock       = color.RGBA{R: 120, G: 100, B: 80, A: 255}
)
