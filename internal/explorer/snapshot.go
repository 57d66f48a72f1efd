package explorer

import (
	"github.com/san-kum/mandel/internal/config"
	"github.com/san-kum/mandel/internal/engine"
	"github.com/san-kum/mandel/internal/scene"
)

// Snapshot renders v once for a cols x rows terminal area and returns the
// drawing followed by its status line.
func Snapshot(cfg *config.Config, v engine.Viewport, cols, rows int) (string, error) {
	ss := cfg.Explorer.Supersample
	eng, err := engine.New(cols*ss, rows*2*ss, cfg.Engine)
	if err != nil {
		return "", err
	}
	s := scene.New(eng).Push(v)
	return Draw(s.Image(), cols, rows) + "\n" + Status(s, nil), nil
}
