package metrics

import (
	"time"

	"github.com/san-kum/mandel/internal/scene"
)

// Throughput is pixels rendered per second over all observed scenes.
type Throughput struct {
	name    string
	pixels  int
	elapsed time.Duration
}

func NewThroughput() *Throughput {
	return &Throughput{name: "pixels_per_sec"}
}

func (t *Throughput) Name() string {
	return t.name
}

func (t *Throughput) Observe(s *scene.Scene) {
	b := s.Buffer()
	t.pixels += b.Width * b.Height
	t.elapsed += s.Elapsed()
}

func (t *Throughput) Value() float64 {
	if t.elapsed <= 0 {
		return 0
	}
	return float64(t.pixels) / t.elapsed.Seconds()
}

func (t *Throughput) Reset() {
	t.pixels = 0
	t.elapsed = 0
}
