package engine

import (
	"errors"
	"math"
	"testing"
)

func TestDefaultViewport(t *testing.T) {
	v := DefaultViewport()
	if v.CenterX != 0 || v.CenterY != 0 {
		t.Errorf("expected origin center, got (%g, %g)", v.CenterX, v.CenterY)
	}
	if v.Scale != 4.0/1080 {
		t.Errorf("expected scale 4/1080, got %g", v.Scale)
	}
	if v.Iterations != 256 {
		t.Errorf("expected 256 iterations, got %d", v.Iterations)
	}
}

func TestPixelToWorldFlipsY(t *testing.T) {
	v := Viewport{CenterX: 1, CenterY: 2, Scale: 0.5, Iterations: 10}

	x0, y0 := v.PixelToWorld(0, 0, 8, 4)
	if x0 != -1 || y0 != 3 {
		t.Errorf("expected top-left (-1, 3), got (%g, %g)", x0, y0)
	}

	_, yDown := v.PixelToWorld(0, 1, 8, 4)
	if yDown >= y0 {
		t.Errorf("expected world y to decrease down the rows, got %g then %g", y0, yDown)
	}
}

func TestRecenter(t *testing.T) {
	v := Viewport{Scale: 0.25, Iterations: 64}

	moved := v.Recenter(6, 1, 8, 4, false)
	if moved.CenterX != 0.5 || moved.CenterY != 0.25 {
		t.Errorf("expected center (0.5, 0.25), got (%g, %g)", moved.CenterX, moved.CenterY)
	}
	if moved.Scale != v.Scale || moved.Iterations != v.Iterations {
		t.Errorf("expected scale and budget kept, got %v", moved)
	}

	zoomed := v.Recenter(6, 1, 8, 4, true)
	if zoomed.Scale != 0.125 {
		t.Errorf("expected scale halved to 0.125, got %g", zoomed.Scale)
	}
}

func TestZoomAndIterations(t *testing.T) {
	v := DefaultViewport()

	if got := v.ZoomIn().Scale; got != v.Scale/2 {
		t.Errorf("zoom in: expected %g, got %g", v.Scale/2, got)
	}
	if got := v.ZoomOut().Scale; got != v.Scale*2 {
		t.Errorf("zoom out: expected %g, got %g", v.Scale*2, got)
	}
	if got := v.DoubleIterations().Iterations; got != 512 {
		t.Errorf("double: expected 512, got %d", got)
	}
	if got := v.HalveIterations().Iterations; got != 128 {
		t.Errorf("halve: expected 128, got %d", got)
	}

	one := Viewport{Scale: 1, Iterations: 1}
	if got := one.HalveIterations().Iterations; got != 1 {
		t.Errorf("halve floor: expected 1, got %d", got)
	}
	huge := Viewport{Scale: 1, Iterations: math.MaxUint32 - 1}
	if got := huge.DoubleIterations().Iterations; got != math.MaxUint32 {
		t.Errorf("double ceiling: expected %d, got %d", uint32(math.MaxUint32), got)
	}
}

func TestLerp(t *testing.T) {
	from := Viewport{CenterX: 0, CenterY: 0, Scale: 1, Iterations: 10}
	to := Viewport{CenterX: 2, CenterY: -4, Scale: 0.5, Iterations: 15}

	mid := from.Lerp(to, 0.5)
	if mid.CenterX != 1 || mid.CenterY != -2 || mid.Scale != 0.75 {
		t.Errorf("unexpected midpoint %v", mid)
	}

	tests := []struct {
		t    float64
		from uint32
		to   uint32
		want uint32
	}{
		{0.3, 10, 15, 11},
		{0.5, 10, 15, 12},
		{0.5, 256, 100, 178},
		{0.1, 256, 250, 255},
		{1, 10, 15, 15},
		{0, 10, 15, 10},
	}
	for _, tt := range tests {
		a := Viewport{Scale: 1, Iterations: tt.from}
		b := Viewport{Scale: 1, Iterations: tt.to}
		if got := a.Lerp(b, tt.t).Iterations; got != tt.want {
			t.Errorf("lerp %d->%d at %g: expected %d, got %d", tt.from, tt.to, tt.t, tt.want, got)
		}
	}
}

func TestViewportValidate(t *testing.T) {
	tests := []struct {
		name string
		v    Viewport
		ok   bool
	}{
		{"default", DefaultViewport(), true},
		{"zero scale", Viewport{Scale: 0, Iterations: 1}, false},
		{"negative scale", Viewport{Scale: -1, Iterations: 1}, false},
		{"nan scale", Viewport{Scale: math.NaN(), Iterations: 1}, false},
		{"inf center", Viewport{CenterX: math.Inf(1), Scale: 1}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.v.Validate()
			if tt.ok && err != nil {
				t.Errorf("expected valid, got %v", err)
			}
			if !tt.ok && !errors.Is(err, ErrInvalidViewport) {
				t.Errorf("expected ErrInvalidViewport, got %v", err)
			}
		})
	}
}
