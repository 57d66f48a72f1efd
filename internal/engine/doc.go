// Package engine computes escape-time images of the Mandelbrot set.
//
// An [Engine] is bound to a fixed pixel grid. Each call to [Engine.Render]
// maps the grid onto the complex plane through a [Viewport], splits it into
// a grid of rectangular tiles, and iterates every tile concurrently on a
// bounded worker pool:
//
//   - [Viewport]: center, world units per pixel, iteration budget
//   - [IterationBuffer]: row-major escape counts, one per pixel
//   - [Result]: counts, the palette-indexed image and the elapsed time
//   - [Config]: tile grid and lane width tuning
//
// # Kernel
//
// Pixels are iterated in lanes: short runs of adjacent pixels of the same
// row that advance in lockstep. A lane stops counting the iteration its
// orbit leaves the radius-2 disc, but the batch only exits once every lane
// has escaped or the budget is spent. Results never depend on the tile grid
// or the lane width.
//
// # Example
//
//	eng, _ := engine.New(1920, 1080, engine.DefaultConfig())
//	res := eng.Render(engine.DefaultViewport())
//	v, _ := res.Buffer.At(960, 540)
//
// # Thread Safety
//
// Render is safe to call from one goroutine at a time. Concurrency is
// internal to a single call.
package engine
