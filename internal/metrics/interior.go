package metrics

import "github.com/san-kum/mandel/internal/scene"

// Interior is the fraction of pixels that spent the whole iteration
// budget without escaping. It approximates how much of the frame is set
// interior and so how expensive the frame is.
type Interior struct {
	name     string
	interior int
	pixels   int
}

func NewInterior() *Interior {
	return &Interior{name: "interior_fraction"}
}

func (n *Interior) Name() string {
	return n.name
}

func (n *Interior) Observe(s *scene.Scene) {
	budget := s.Viewport().Iterations
	for _, c := range s.Buffer().Counts {
		if c >= budget {
			n.interior++
		}
	}
	n.pixels += len(s.Buffer().Counts)
}

func (n *Interior) Value() float64 {
	if n.pixels == 0 {
		return 0
	}
	return float64(n.interior) / float64(n.pixels)
}

func (n *Interior) Reset() {
	n.interior = 0
	n.pixels = 0
}
