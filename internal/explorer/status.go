package explorer

import (
	"fmt"

	"github.com/san-kum/mandel/internal/scene"
)

// Status formats the readout for a scene. Scale is shown as a zoom factor,
// 1/scale. When hover is non-nil the raw count under that engine pixel is
// appended.
func Status(s *scene.Scene, hover *[2]int) string {
	if s == nil {
		return "no scene"
	}
	v := s.Viewport()
	line := fmt.Sprintf("Time: %v Pos: %g, %g Scale: %g Iterations: %d",
		s.Elapsed(), v.CenterX, v.CenterY, 1/v.Scale, v.Iterations)
	if hover != nil {
		if val, ok := s.Value(hover[0], hover[1]); ok {
			line += fmt.Sprintf(" Value: %d", val)
		}
	}
	return line
}
