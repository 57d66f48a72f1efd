package config

import (
	"sort"

	"github.com/san-kum/mandel/internal/engine"
)

// Preset is a named region of the plane. Span is the world width shown,
// so the same preset frames alike on any grid.
type Preset struct {
	Name        string
	Description string
	CenterX     float64
	CenterY     float64
	Span        float64
	Iterations  uint32
}

// Viewport resolves the preset for a grid width in pixels.
func (p *Preset) Viewport(width int) engine.Viewport {
	if width < 1 {
		width = 1
	}
	return engine.Viewport{
		CenterX:    p.CenterX,
		CenterY:    p.CenterY,
		Scale:      p.Span / float64(width),
		Iterations: p.Iterations,
	}
}

var Presets = map[string]*Preset{
	"home": {
		Name: "home", Description: "whole set",
		CenterX: 0, CenterY: 0, Span: 4.0 * 1920 / 1080, Iterations: engine.DefaultIterations,
	},
	"seahorse": {
		Name: "seahorse", Description: "seahorse valley filaments",
		CenterX: -0.75, CenterY: 0.1, Span: 0.1, Iterations: 512,
	},
	"elephant": {
		Name: "elephant", Description: "elephant valley trunks",
		CenterX: -1.8, CenterY: -0.06, Span: 0.1, Iterations: 512,
	},
	"spiral": {
		Name: "spiral", Description: "spiral minibrot",
		CenterX: -0.74275, CenterY: 0.13175, Span: 0.0015, Iterations: 1024,
	},
	"triple-spiral": {
		Name: "triple-spiral", Description: "threefold spiral",
		CenterX: -0.7465, CenterY: 0.0965, Span: 0.003, Iterations: 1024,
	},
	"dragon": {
		Name: "dragon", Description: "valley of the dragon",
		CenterX: -0.7375, CenterY: 0.1825, Span: 0.005, Iterations: 1024,
	},
	"mini-spiral": {
		Name: "mini-spiral", Description: "minibrot inside a spiral arm",
		CenterX: -1.73825, CenterY: -0.02275, Span: 0.0015, Iterations: 2048,
	},
}

func GetPreset(name string) *Preset {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	return p
}

// ListPresets returns preset names in sorted order.
func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
