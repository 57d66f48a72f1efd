package explorer

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/mandel/internal/config"
	"github.com/san-kum/mandel/internal/engine"
	"github.com/san-kum/mandel/internal/scene"
)

// chromeLines is the number of terminal rows kept for status and help.
const chromeLines = 3

type frameMsg struct{ scene *scene.Scene }

type animDoneMsg struct{}

// Model is the Bubble Tea model of the explorer.
type Model struct {
	cfg        *config.Config
	eng        *engine.Engine
	seq        *scene.Sequencer
	start      engine.Viewport
	cols, rows int

	hover      *[2]int
	frame      *scene.Scene
	frames     chan *scene.Scene
	animating  bool
	frameTimes []float64
	preset     int

	theme    Theme
	styles   styles
	showHelp bool
	err      error
}

// NewModel creates an explorer. Nothing is rendered until the first
// window size message arrives.
func NewModel(cfg *config.Config) Model {
	theme := GetTheme(cfg.Explorer.Theme)
	return Model{
		cfg:    cfg,
		theme:  theme,
		styles: newStyles(theme),
	}
}

func (m Model) Init() tea.Cmd { return nil }

// Update handles resize, keyboard, mouse and animation frames.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		if m.animating {
			return m, nil
		}
		m.resize(msg.Width, msg.Height-chromeLines)
		return m, nil

	case frameMsg:
		m.frame = msg.scene
		m.frameTimes = append(m.frameTimes, float64(msg.scene.Elapsed().Microseconds())/1000)
		return m, waitFrame(m.frames)

	case animDoneMsg:
		m.animating = false
		m.frame = nil
		m.frames = nil
		return m, nil

	case tea.KeyMsg:
		if k := msg.String(); k == "ctrl+c" || k == "esc" {
			return m, tea.Quit
		}
		if m.animating || m.seq == nil {
			return m, nil
		}
		return m.handleKey(msg.String())

	case tea.MouseMsg:
		if m.animating || m.seq == nil {
			return m, nil
		}
		return m.handleMouse(msg)
	}
	return m, nil
}

func (m Model) handleKey(key string) (tea.Model, tea.Cmd) {
	cur := m.seq.Current().Viewport()
	switch key {
	case "q":
		m.push(cur.ZoomIn())
	case "a":
		m.push(cur.ZoomOut())
	case "w":
		m.push(cur.DoubleIterations())
	case "s":
		m.push(cur.HalveIterations())
	case "left", "h":
		m.seq.Navigate(scene.Back)
	case "right", "l":
		m.seq.Navigate(scene.Forward)
	case "r":
		m.push(m.start)
	case "n":
		names := config.ListPresets()
		m.preset = (m.preset + 1) % len(names)
		target := config.GetPreset(names[m.preset]).Viewport(m.eng.Width())
		return m.animate(target)
	case "t":
		m.theme = NextTheme(m.theme)
		m.styles = newStyles(m.theme)
	case "?":
		m.showHelp = !m.showHelp
	}
	return m, nil
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.X < 0 || msg.Y < 0 || msg.X >= m.cols || msg.Y >= m.rows {
		m.hover = nil
		return m, nil
	}
	px, py := m.cellToPixel(msg.X, msg.Y)

	switch msg.Action {
	case tea.MouseActionMotion:
		m.hover = &[2]int{px, py}
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft && msg.Button != tea.MouseButtonRight {
			return m, nil
		}
		cur := m.seq.Current().Viewport()
		target := cur.Recenter(px, py, m.eng.Width(), m.eng.Height(), msg.Button == tea.MouseButtonRight)
		return m.animate(target)
	}
	return m, nil
}

// cellToPixel maps a terminal cell to the engine pixel at its center.
func (m Model) cellToPixel(x, y int) (int, int) {
	ss := m.cfg.Explorer.Supersample
	return x*ss + ss/2, y*2*ss + ss
}

// resize binds a new engine to the terminal size. History restarts from
// the viewport that was on screen.
func (m *Model) resize(cols, rows int) {
	cols, rows = max(cols, 0), max(rows, 0)
	if m.eng != nil && cols == m.cols && rows == m.rows {
		return
	}

	ss := m.cfg.Explorer.Supersample
	eng, err := engine.New(cols*ss, rows*2*ss, m.cfg.Engine)
	if err != nil {
		m.err = err
		return
	}

	var v engine.Viewport
	if m.seq != nil && m.seq.Current() != nil {
		v = m.seq.Current().Viewport()
	} else {
		v, err = m.cfg.StartViewport(eng.Width())
		if err != nil {
			m.err = err
			return
		}
		m.start = v
	}

	m.cols, m.rows = cols, rows
	m.eng = eng
	m.seq = scene.New(eng)
	m.hover = nil
	if v == engine.DefaultViewport() {
		m.seq.Initial()
	} else {
		m.seq.Push(v)
	}
	m.err = nil
}

func (m *Model) push(v engine.Viewport) {
	s := m.seq.Push(v)
	m.frameTimes = append(m.frameTimes, float64(s.Elapsed().Microseconds())/1000)
}

// animate starts a transition in the background. Frames arrive one at a
// time as frameMsg; input is ignored until animDoneMsg.
func (m Model) animate(target engine.Viewport) (tea.Model, tea.Cmd) {
	frames := make(chan *scene.Scene, 1)
	seq, steps := m.seq, m.cfg.AnimationSteps

	run := func() tea.Msg {
		seq.Animate(target, steps, func(_, _ int, s *scene.Scene) {
			frames <- s
		})
		close(frames)
		return nil
	}

	// The sequencer belongs to run until frames is closed.
	m.frame = seq.Current()
	m.animating = true
	m.frames = frames
	return m, tea.Batch(run, waitFrame(frames))
}

func waitFrame(frames <-chan *scene.Scene) tea.Cmd {
	return func() tea.Msg {
		s, ok := <-frames
		if !ok {
			return animDoneMsg{}
		}
		return frameMsg{scene: s}
	}
}

// Displayed returns the scene on screen: the latest transient frame while
// animating, otherwise the history entry under the cursor.
func (m Model) Displayed() *scene.Scene {
	if m.frame != nil {
		return m.frame
	}
	if m.seq == nil {
		return nil
	}
	return m.seq.Current()
}

func (m Model) View() string {
	if m.err != nil {
		return m.styles.err.Render("error: "+m.err.Error()) + "\n"
	}
	s := m.Displayed()
	if s == nil {
		return m.styles.hint.Render("waiting for terminal size...")
	}

	var b strings.Builder
	b.WriteString(Draw(s.Image(), m.cols, m.rows))
	b.WriteByte('\n')

	hover := m.hover
	if m.animating {
		hover = nil
	}
	b.WriteString(m.styles.value.Render(Status(s, hover)))
	b.WriteByte('\n')

	if m.animating {
		b.WriteString(m.styles.busy.Render("animating "))
	} else {
		b.WriteString(m.styles.label.Render(fmt.Sprintf("scene %d/%d ", m.seq.Cursor()+1, m.seq.Len())))
	}
	b.WriteString(m.styles.sparkline(m.frameTimes, 24))
	b.WriteByte('\n')

	if m.showHelp {
		b.WriteString(m.styles.hint.Render("q/a zoom  w/s iterations  ←/→ history  n preset  r reset  t theme  click recenter  right-click zoom  esc quit"))
	} else {
		b.WriteString(m.styles.hint.Render("? help  theme: " + m.theme.Name))
	}
	return b.String()
}

// Run starts the explorer on the terminal and blocks until it exits.
func Run(cfg *config.Config) error {
	p := tea.NewProgram(NewModel(cfg), tea.WithAltScreen(), tea.WithMouseAllMotion())
	_, err := p.Run()
	return err
}
