package scene

import (
	"image"
	"time"

	"github.com/san-kum/mandel/internal/engine"
)

// Renderer produces one render per viewport. *engine.Engine satisfies it.
type Renderer interface {
	Render(v engine.Viewport) engine.Result
}

// Scene is one finished render. It is never modified after creation.
type Scene struct {
	viewport engine.Viewport
	buffer   engine.IterationBuffer
	image    *image.Paletted
	elapsed  time.Duration
}

func render(r Renderer, v engine.Viewport) *Scene {
	res := r.Render(v)
	return &Scene{
		viewport: v,
		buffer:   res.Buffer,
		image:    res.Image,
		elapsed:  res.Elapsed,
	}
}

func (s *Scene) Viewport() engine.Viewport { return s.viewport }

// Buffer returns the raw counts. The slice is shared; do not modify it.
func (s *Scene) Buffer() engine.IterationBuffer { return s.buffer }

// Image returns the palette-indexed image. Do not modify it.
func (s *Scene) Image() *image.Paletted { return s.image }

func (s *Scene) Elapsed() time.Duration { return s.elapsed }

// Value returns the escape count under pixel (x, y).
func (s *Scene) Value(x, y int) (uint32, bool) {
	return s.buffer.At(x, y)
}

// Empty reports whether the render behind the scene had no pixels.
func (s *Scene) Empty() bool {
	return len(s.buffer.Counts) == 0
}
