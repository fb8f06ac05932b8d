package render

import "github.com/gdamore/tcell/v2"

// Board palette
var (
	RgbBackground = tcell.NewRGBColor(15, 11, 25)
	RgbBorder     = tcell.NewRGBColor(136, 113, 193)
	RgbWall       = tcell.NewRGBColor(136, 113, 193)
	RgbFood       = tcell.NewRGBColor(244, 62, 93)
	RgbSnakeHead  = tcell.NewRGBColor(3, 211, 252)
	RgbSnakeBody  = tcell.NewRGBColor(0, 150, 190)

	// Visible spawn warnings; seeds are brighter than spread tiles
	RgbHazard     = tcell.NewRGBColor(120, 40, 50)
	RgbHazardSeed = tcell.NewRGBColor(200, 60, 70)

	RgbExitLocked  = tcell.NewRGBColor(90, 90, 100)
	RgbExitOpen    = tcell.NewRGBColor(50, 220, 90)
	RgbExitClosing = tcell.NewRGBColor(255, 190, 40)
)

// HUD palette
var (
	RgbStatusText  = tcell.NewRGBColor(220, 220, 230)
	RgbStatusDim   = tcell.NewRGBColor(130, 130, 150)
	RgbScore       = tcell.NewRGBColor(255, 255, 0)
	RgbLives       = tcell.NewRGBColor(244, 62, 93)
	RgbOverlayBg   = tcell.NewRGBColor(40, 30, 60)
	RgbOverlayText = tcell.NewRGBColor(255, 255, 255)
	RgbDebugText   = tcell.NewRGBColor(120, 160, 120)
)
