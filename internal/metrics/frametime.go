package metrics

import (
	"math"

	"github.com/san-kum/mandel/internal/scene"
)

// FrameTime tracks render wall time in milliseconds.
type FrameTime struct {
	name    string
	sum     float64
	min     float64
	max     float64
	samples int
}

func NewFrameTime() *FrameTime {
	f := &FrameTime{name: "frame_time_ms"}
	f.Reset()
	return f
}

func (f *FrameTime) Name() string {
	return f.name
}

func (f *FrameTime) Observe(s *scene.Scene) {
	ms := float64(s.Elapsed().Nanoseconds()) / 1e6
	f.sum += ms
	f.min = math.Min(f.min, ms)
	f.max = math.Max(f.max, ms)
	f.samples++
}

// Value is the mean frame time.
func (f *FrameTime) Value() float64 {
	if f.samples == 0 {
		return 0
	}
	return f.sum / float64(f.samples)
}

func (f *FrameTime) Min() float64 {
	if f.samples == 0 {
		return 0
	}
	return f.min
}

func (f *FrameTime) Max() float64 {
	if f.samples == 0 {
		return 0
	}
	return f.max
}

func (f *FrameTime) Samples() int {
	return f.samples
}

func (f *FrameTime) Reset() {
	f.sum = 0
	f.min = math.Inf(1)
	f.max = math.Inf(-1)
	f.samples = 0
}
