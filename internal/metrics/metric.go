// Package metrics accumulates statistics over rendered scenes.
package metrics

import "github.com/san-kum/mandel/internal/scene"

type Metric interface {
	Name() string
	Observe(s *scene.Scene)
	Value() float64
	Reset()
}

// ObserveAll feeds one scene to every metric.
func ObserveAll(s *scene.Scene, ms ...Metric) {
	for _, m := range ms {
		m.Observe(s)
	}
}
