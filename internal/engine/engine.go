package engine

import (
	"fmt"
	"image"
	"image/color"
	"log/slog"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"
)

const (
	DefaultTilesX    = 4
	DefaultTilesY    = 5
	DefaultLaneWidth = 4
)

// Config tunes how a render is split up. None of it changes the output.
type Config struct {
	TilesX    int `yaml:"tiles_x"`
	TilesY    int `yaml:"tiles_y"`
	LaneWidth int `yaml:"lane_width"`
	// Workers bounds concurrently running tiles; 0 means GOMAXPROCS.
	Workers int `yaml:"workers"`
}

func DefaultConfig() Config {
	return Config{
		TilesX:    DefaultTilesX,
		TilesY:    DefaultTilesY,
		LaneWidth: DefaultLaneWidth,
	}
}

func (c Config) Validate() error {
	if c.TilesX < 1 || c.TilesY < 1 {
		return fmt.Errorf("%w: got %dx%d", ErrInvalidTiling, c.TilesX, c.TilesY)
	}
	if c.LaneWidth < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidLaneWidth, c.LaneWidth)
	}
	return nil
}

func (c Config) workers() int {
	if c.Workers > 0 {
		return c.Workers
	}
	return runtime.GOMAXPROCS(0)
}

// IterationBuffer holds one escape count per pixel, row-major. A count
// equal to the viewport's budget means the orbit never escaped.
type IterationBuffer struct {
	Width  int
	Height int
	Counts []uint32
}

// At returns the count at pixel (x, y), or false outside the grid.
func (b IterationBuffer) At(x, y int) (uint32, bool) {
	if x < 0 || y < 0 || x >= b.Width || y >= b.Height || len(b.Counts) == 0 {
		return 0, false
	}
	return b.Counts[y*b.Width+x], true
}

// Result is the output of one render.
type Result struct {
	Buffer  IterationBuffer
	Image   *image.Paletted
	Elapsed time.Duration
}

// Empty reports whether the render produced no pixels.
func (r Result) Empty() bool {
	return len(r.Buffer.Counts) == 0
}

// Engine renders viewports onto a fixed pixel grid.
type Engine struct {
	width, height int
	cfg           Config
	palette       color.Palette
	tiles         []image.Rectangle
}

// New builds an engine for a width x height grid. Zero dimensions are
// accepted and yield an engine whose renders are empty.
func New(width, height int, cfg Config) (*Engine, error) {
	if width < 0 || height < 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if width == 0 || height == 0 {
		Logger().Warn("engine has an empty grid", "width", width, "height", height)
	}
	return &Engine{
		width:   width,
		height:  height,
		cfg:     cfg,
		palette: Palette(),
		tiles:   Tiles(width, height, cfg.TilesX, cfg.TilesY),
	}, nil
}

func (e *Engine) Width() int     { return e.width }
func (e *Engine) Height() int    { return e.height }
func (e *Engine) Config() Config { return e.cfg }

// Render computes escape counts for every pixel and encodes them as a
// palette-indexed image. It blocks until all tiles are done.
func (e *Engine) Render(v Viewport) Result {
	start := time.Now()

	if e.width == 0 || e.height == 0 {
		return Result{
			Buffer:  IterationBuffer{Width: e.width, Height: e.height},
			Image:   image.NewPaletted(image.Rect(0, 0, e.width, e.height), e.palette),
			Elapsed: time.Since(start),
		}
	}

	counts := make([]uint32, e.width*e.height)
	left, top := v.left(e.width), v.top(e.height)

	var g errgroup.Group
	g.SetLimit(e.cfg.workers())
	for _, tile := range e.tiles {
		tile := tile
		g.Go(func() error {
			e.renderTile(counts, tile, left, top, v.Scale, v.Iterations)
			return nil
		})
	}
	_ = g.Wait()

	img := e.encode(counts)
	elapsed := time.Since(start)

	Logger().Debug("render complete",
		slog.String("viewport", v.String()),
		slog.Int("tiles", len(e.tiles)),
		slog.Int("lane_width", e.cfg.LaneWidth),
		slog.Duration("elapsed", elapsed),
	)

	return Result{
		Buffer:  IterationBuffer{Width: e.width, Height: e.height, Counts: counts},
		Image:   img,
		Elapsed: elapsed,
	}
}

// renderTile writes only inside tile, so tiles can run concurrently over
// the same counts slice.
func (e *Engine) renderTile(counts []uint32, tile image.Rectangle, left, top, scale float64, budget uint32) {
	lw := e.cfg.LaneWidth
	l := newLanes(lw)

	for y := tile.Min.Y; y < tile.Max.Y; y++ {
		wy := top - float64(y)*scale
		row := counts[y*e.width : (y+1)*e.width]
		for x := tile.Min.X; x < tile.Max.X; x += lw {
			n := min(lw, tile.Max.X-x)
			l.load(left, scale, x, n, wy)
			l.iterate(budget)
			copy(row[x:x+n], l.count[:n])
		}
	}
}

func (e *Engine) encode(counts []uint32) *image.Paletted {
	img := image.NewPaletted(image.Rect(0, 0, e.width, e.height), e.palette)
	for i, c := range counts {
		img.Pix[i] = PaletteIndex(c)
	}
	return img
}
