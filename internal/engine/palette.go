package engine

import (
	"image/color"
	"sync"
)

const (
	redBlueStep = 36.4285714286
	greenStep   = 85
)

var defaultPalette = sync.OnceValue(buildPalette)

// buildPalette lays out an 8x4x8 RGB cube at index r*32 + g*8 + b, so
// index 0 is black.
func buildPalette() color.Palette {
	p := make(color.Palette, 256)
	for r := 0; r < 8; r++ {
		for g := 0; g < 4; g++ {
			for b := 0; b < 8; b++ {
				p[r*32+g*8+b] = color.RGBA{
					R: uint8(float64(r) * redBlueStep),
					G: uint8(g * greenStep),
					B: uint8(float64(b) * redBlueStep),
					A: 255,
				}
			}
		}
	}
	return p
}

// Palette returns the shared 256-entry palette. Callers must not modify it.
func Palette() color.Palette {
	return defaultPalette()
}

// PaletteIndex truncates an escape count to its palette slot. Counts wrap
// modulo 256, which produces visible banding.
func PaletteIndex(count uint32) uint8 {
	return uint8(count)
}
