package scene

import (
	"log/slog"

	"github.com/san-kum/mandel/internal/engine"
)

// DefaultSteps is the number of frames in an animated transition.
const DefaultSteps = 10

// Direction selects which way Navigate moves the cursor.
type Direction int

const (
	Back Direction = iota
	Forward
)

func (d Direction) String() string {
	if d == Back {
		return "back"
	}
	return "forward"
}

// FrameFunc receives each transient frame of an animation in order. step
// runs from 1 to total; the frame at total is the one kept in history.
type FrameFunc func(step, total int, s *Scene)

// Sequencer keeps the chronological history of scenes. History only
// grows; the cursor always points at a valid entry once one exists.
type Sequencer struct {
	renderer Renderer
	history  []*Scene
	cursor   int
}

func New(r Renderer) *Sequencer {
	return &Sequencer{renderer: r}
}

// Initial renders the default viewport and starts a fresh history with it.
func (q *Sequencer) Initial() *Scene {
	q.history = nil
	q.cursor = 0
	return q.Push(engine.DefaultViewport())
}

// Push renders v, appends it and moves the cursor to it, whatever the
// cursor position was before.
func (q *Sequencer) Push(v engine.Viewport) *Scene {
	s := render(q.renderer, v)
	q.append(s)
	return s
}

func (q *Sequencer) append(s *Scene) {
	q.history = append(q.history, s)
	q.cursor = len(q.history) - 1
	engine.Logger().Debug("scene pushed",
		slog.Int("index", q.cursor),
		slog.String("viewport", s.viewport.String()),
		slog.Duration("elapsed", s.elapsed),
	)
}

// Navigate moves the cursor one entry. It stops at either end and never
// renders.
func (q *Sequencer) Navigate(d Direction) {
	switch {
	case d == Back && q.cursor > 0:
		q.cursor--
	case d == Forward && q.cursor < len(q.history)-1:
		q.cursor++
	default:
		return
	}
	engine.Logger().Debug("history moved", slog.String("direction", d.String()), slog.Int("cursor", q.cursor))
}

// Animate renders steps frames between the current viewport and target,
// strictly one after another, handing each to onFrame. Only the final
// frame, whose viewport is exactly target, is appended to history. With
// no current scene or steps below one it behaves like Push.
func (q *Sequencer) Animate(target engine.Viewport, steps int, onFrame FrameFunc) *Scene {
	cur := q.Current()
	if cur == nil || steps < 1 {
		s := q.Push(target)
		if onFrame != nil {
			onFrame(1, 1, s)
		}
		return s
	}

	from := cur.viewport
	var last *Scene
	for i := 1; i <= steps; i++ {
		v := target
		if i < steps {
			v = from.Lerp(target, float64(i)/float64(steps))
		}
		last = render(q.renderer, v)
		if onFrame != nil {
			onFrame(i, steps, last)
		}
	}

	engine.Logger().Debug("animation finished", slog.Int("steps", steps))
	q.append(last)
	return last
}

// Current returns the scene under the cursor, or nil before the first push.
func (q *Sequencer) Current() *Scene {
	if len(q.history) == 0 {
		return nil
	}
	return q.history[q.cursor]
}

func (q *Sequencer) Cursor() int { return q.cursor }
func (q *Sequencer) Len() int    { return len(q.history) }

// At returns history entry i, or nil when out of range.
func (q *Sequencer) At(i int) *Scene {
	if i < 0 || i >= len(q.history) {
		return nil
	}
	return q.history[i]
}

func (q *Sequencer) CanBack() bool    { return q.cursor > 0 }
func (q *Sequencer) CanForward() bool { return q.cursor < len(q.history)-1 }
