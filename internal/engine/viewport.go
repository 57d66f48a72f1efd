package engine

import (
	"fmt"
	"math"
)

const (
	DefaultScale      = 4.0 / 1080
	DefaultIterations = 256
)

// Viewport maps a pixel grid onto the complex plane. Scale is world units
// per pixel; smaller values zoom in. Iterations bounds the escape search
// and, as a caller contract, must fit the uint32 counts of a buffer.
type Viewport struct {
	CenterX    float64 `yaml:"center_x"`
	CenterY    float64 `yaml:"center_y"`
	Scale      float64 `yaml:"scale"`
	Iterations uint32  `yaml:"iterations"`
}

func DefaultViewport() Viewport {
	return Viewport{Scale: DefaultScale, Iterations: DefaultIterations}
}

func (v Viewport) Validate() error {
	if !(v.Scale > 0) || math.IsInf(v.Scale, 0) {
		return fmt.Errorf("%w: scale %g", ErrInvalidViewport, v.Scale)
	}
	if math.IsNaN(v.CenterX) || math.IsNaN(v.CenterY) || math.IsInf(v.CenterX, 0) || math.IsInf(v.CenterY, 0) {
		return fmt.Errorf("%w: center (%g, %g)", ErrInvalidViewport, v.CenterX, v.CenterY)
	}
	return nil
}

// left and top are the world coordinates of pixel (0, 0) on a w x h grid.
func (v Viewport) left(w int) float64 { return v.CenterX - float64(w)*v.Scale/2 }
func (v Viewport) top(h int) float64  { return v.CenterY + float64(h)*v.Scale/2 }

// PixelToWorld returns the world coordinate of pixel (x, y) on a w x h
// grid. Rows grow downward while world Y grows upward.
func (v Viewport) PixelToWorld(x, y float64, w, h int) (float64, float64) {
	return v.left(w) + x*v.Scale, v.top(h) - y*v.Scale
}

// Recenter moves the center to pixel (x, y). With zoom set the scale is
// halved as well.
func (v Viewport) Recenter(x, y, w, h int, zoom bool) Viewport {
	out := v
	out.CenterX, out.CenterY = v.PixelToWorld(float64(x), float64(y), w, h)
	if zoom {
		out.Scale /= 2
	}
	return out
}

func (v Viewport) ZoomIn() Viewport {
	v.Scale /= 2
	return v
}

func (v Viewport) ZoomOut() Viewport {
	v.Scale *= 2
	return v
}

func (v Viewport) DoubleIterations() Viewport {
	if v.Iterations > math.MaxUint32/2 {
		v.Iterations = math.MaxUint32
		return v
	}
	v.Iterations *= 2
	return v
}

// HalveIterations never drops the budget below one.
func (v Viewport) HalveIterations() Viewport {
	v.Iterations /= 2
	if v.Iterations == 0 {
		v.Iterations = 1
	}
	return v
}

// Lerp interpolates every field toward to by t in [0, 1]. The iteration
// budget is interpolated as a real value and floored.
func (v Viewport) Lerp(to Viewport, t float64) Viewport {
	from, dst := float64(v.Iterations), float64(to.Iterations)
	return Viewport{
		CenterX:    v.CenterX + (to.CenterX-v.CenterX)*t,
		CenterY:    v.CenterY + (to.CenterY-v.CenterY)*t,
		Scale:      v.Scale + (to.Scale-v.Scale)*t,
		Iterations: uint32(math.Floor(from + (dst-from)*t)),
	}
}

func (v Viewport) String() string {
	return fmt.Sprintf("(%g, %g) scale=%g iter=%d", v.CenterX, v.CenterY, v.Scale, v.Iterations)
}
