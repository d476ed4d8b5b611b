package render

import "github.com/gdamore/tcell/v2"

// RGB color definitions for the evolution view
var (
	RgbBackground = tcell.NewRGBColor(26, 27, 38)    // Tokyo Night background
	RgbLabel      = tcell.NewRGBColor(180, 180, 180) // Brighter gray
	RgbText       = tcell.NewRGBColor(255, 255, 255) // White
	RgbHeaderBg   = tcell.NewRGBColor(135, 206, 250) // Light sky blue
	RgbHeaderFg   = tcell.NewRGBColor(0, 0, 0)

	RgbGeneMatch    = tcell.NewRGBColor(50, 255, 50)  // Bright Green
	RgbGeneMismatch = tcell.NewRGBColor(255, 80, 80)  // Normal Red
	RgbBarFill      = tcell.NewRGBColor(255, 165, 0)  // Orange
	RgbBarEmpty     = tcell.NewRGBColor(60, 60, 60)   // Dark gray
	RgbConverged    = tcell.NewRGBColor(144, 238, 144) // Light grass green
)
