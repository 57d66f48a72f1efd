package scene_test

import (
	"image"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/mandel/internal/engine"
	"github.com/san-kum/mandel/internal/scene"
)

// recorder returns a 1x1 result per render and remembers what it was asked.
type recorder struct {
	calls []engine.Viewport
}

func (r *recorder) Render(v engine.Viewport) engine.Result {
	r.calls = append(r.calls, v)
	return engine.Result{
		Buffer:  engine.IterationBuffer{Width: 1, Height: 1, Counts: []uint32{v.Iterations}},
		Image:   image.NewPaletted(image.Rect(0, 0, 1, 1), engine.Palette()),
		Elapsed: time.Millisecond,
	}
}

var _ = Describe("Sequencer", func() {
	var (
		rec *recorder
		seq *scene.Sequencer
	)

	BeforeEach(func() {
		rec = &recorder{}
		seq = scene.New(rec)
	})

	Describe("Initial", func() {
		It("renders the default viewport as entry 0", func() {
			s := seq.Initial()

			Expect(s.Viewport()).To(Equal(engine.DefaultViewport()))
			Expect(seq.Len()).To(Equal(1))
			Expect(seq.Cursor()).To(Equal(0))
			Expect(seq.Current()).To(BeIdenticalTo(s))
			Expect(rec.calls).To(HaveLen(1))
		})

		It("exposes the frame for display", func() {
			s := seq.Initial()

			Expect(s.Elapsed()).To(Equal(time.Millisecond))
			Expect(s.Image().Bounds()).To(Equal(image.Rect(0, 0, 1, 1)))
			v, ok := s.Value(0, 0)
			Expect(ok).To(BeTrue())
			Expect(v).To(Equal(uint32(engine.DefaultIterations)))
			_, ok = s.Value(1, 0)
			Expect(ok).To(BeFalse())
		})

		It("starts a fresh history", func() {
			seq.Initial()
			seq.Push(engine.DefaultViewport().ZoomIn())
			seq.Initial()

			Expect(seq.Len()).To(Equal(1))
			Expect(seq.Cursor()).To(Equal(0))
		})
	})

	Describe("Current before any render", func() {
		It("is nil and navigation is a no-op", func() {
			Expect(seq.Current()).To(BeNil())
			seq.Navigate(scene.Back)
			seq.Navigate(scene.Forward)
			Expect(seq.Cursor()).To(Equal(0))
			Expect(seq.At(0)).To(BeNil())
		})
	})

	Describe("Push", func() {
		It("appends and moves the cursor to the new entry", func() {
			seq.Initial()
			zoomed := engine.DefaultViewport().ZoomIn()

			s := seq.Push(zoomed)

			Expect(seq.Len()).To(Equal(2))
			Expect(seq.Cursor()).To(Equal(1))
			Expect(s.Viewport()).To(Equal(zoomed))
			Expect(seq.At(0).Viewport()).To(Equal(engine.DefaultViewport()))
		})

		It("jumps to the end from the middle of history", func() {
			seq.Initial()
			seq.Push(engine.DefaultViewport().ZoomIn())
			seq.Push(engine.DefaultViewport().ZoomOut())
			seq.Navigate(scene.Back)
			seq.Navigate(scene.Back)
			Expect(seq.Cursor()).To(Equal(0))

			seq.Push(engine.DefaultViewport().DoubleIterations())

			Expect(seq.Len()).To(Equal(4))
			Expect(seq.Cursor()).To(Equal(3))
		})
	})

	Describe("Navigate", func() {
		BeforeEach(func() {
			seq.Initial()
			seq.Push(engine.DefaultViewport().ZoomIn())
			seq.Push(engine.DefaultViewport().ZoomIn().ZoomIn())
		})

		It("moves one step each way without rendering", func() {
			renders := len(rec.calls)

			seq.Navigate(scene.Back)
			Expect(seq.Cursor()).To(Equal(1))
			Expect(seq.CanBack()).To(BeTrue())
			Expect(seq.CanForward()).To(BeTrue())

			seq.Navigate(scene.Forward)
			Expect(seq.Cursor()).To(Equal(2))
			Expect(rec.calls).To(HaveLen(renders))
		})

		It("saturates at the start", func() {
			seq.Navigate(scene.Back)
			seq.Navigate(scene.Back)
			seq.Navigate(scene.Back)

			Expect(seq.Cursor()).To(Equal(0))
			Expect(seq.CanBack()).To(BeFalse())
		})

		It("saturates at the end", func() {
			seq.Navigate(scene.Forward)

			Expect(seq.Cursor()).To(Equal(2))
			Expect(seq.CanForward()).To(BeFalse())
		})

		It("never alters entries", func() {
			before := []*scene.Scene{seq.At(0), seq.At(1), seq.At(2)}
			seq.Navigate(scene.Back)
			seq.Navigate(scene.Forward)

			Expect(seq.At(0)).To(BeIdenticalTo(before[0]))
			Expect(seq.At(1)).To(BeIdenticalTo(before[1]))
			Expect(seq.At(2)).To(BeIdenticalTo(before[2]))
		})
	})

	Describe("Animate", func() {
		var target engine.Viewport

		BeforeEach(func() {
			seq.Initial()
			rec.calls = nil
			target = engine.Viewport{CenterX: -0.7436, CenterY: 0.1318, Scale: 1e-5, Iterations: 1000}
		})

		It("renders one frame per step in order", func() {
			var steps []int
			seq.Animate(target, scene.DefaultSteps, func(step, total int, s *scene.Scene) {
				Expect(total).To(Equal(scene.DefaultSteps))
				Expect(s.Viewport()).To(Equal(rec.calls[len(rec.calls)-1]))
				steps = append(steps, step)
			})

			Expect(rec.calls).To(HaveLen(scene.DefaultSteps))
			Expect(steps).To(Equal([]int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}))
		})

		It("keeps only the final frame, equal to the target", func() {
			s := seq.Animate(target, scene.DefaultSteps, nil)

			Expect(seq.Len()).To(Equal(2))
			Expect(seq.Cursor()).To(Equal(1))
			Expect(s.Viewport()).To(Equal(target))
			Expect(seq.Current().Viewport()).To(Equal(target))
		})

		It("reaches the target exactly for awkward step counts", func() {
			from := engine.Viewport{CenterX: 0.1, CenterY: 0.7, Scale: 0.3, Iterations: 7}
			seq.Push(from)
			to := engine.Viewport{CenterX: -0.3, CenterY: 0.2, Scale: 0.1, Iterations: 3}

			s := seq.Animate(to, 7, nil)
			Expect(s.Viewport()).To(Equal(to))
		})

		It("interpolates every field linearly with floored iterations", func() {
			seq.Animate(target, 4, nil)

			from := engine.DefaultViewport()
			Expect(rec.calls).To(HaveLen(4))
			for i, v := range rec.calls[:3] {
				f := float64(i+1) / 4
				Expect(v.CenterX).To(BeNumerically("~", from.CenterX+(target.CenterX-from.CenterX)*f, 1e-12))
				Expect(v.CenterY).To(BeNumerically("~", from.CenterY+(target.CenterY-from.CenterY)*f, 1e-12))
				Expect(v.Scale).To(BeNumerically("~", from.Scale+(target.Scale-from.Scale)*f, 1e-12))
			}
			Expect(rec.calls[0].Iterations).To(Equal(uint32(442)))
			Expect(rec.calls[1].Iterations).To(Equal(uint32(628)))
			Expect(rec.calls[2].Iterations).To(Equal(uint32(814)))
		})

		It("falls back to a push for fewer than one step", func() {
			var frames int
			s := seq.Animate(target, 0, func(step, total int, _ *scene.Scene) {
				frames++
				Expect(step).To(Equal(1))
				Expect(total).To(Equal(1))
			})

			Expect(frames).To(Equal(1))
			Expect(rec.calls).To(HaveLen(1))
			Expect(s.Viewport()).To(Equal(target))
			Expect(seq.Len()).To(Equal(2))
		})
	})

	Describe("with a real engine", func() {
		It("animates a zoom and keeps counts inside the budget", func() {
			eng, err := engine.New(32, 24, engine.DefaultConfig())
			Expect(err).NotTo(HaveOccurred())

			seq := scene.New(eng)
			start := seq.Initial()
			target := start.Viewport().Recenter(8, 12, 32, 24, true)

			s := seq.Animate(target, 3, nil)

			Expect(s.Viewport()).To(Equal(target))
			Expect(s.Empty()).To(BeFalse())
			for _, c := range s.Buffer().Counts {
				Expect(c).To(BeNumerically("<=", target.Iterations))
			}
		})

		It("records empty scenes for an empty grid", func() {
			eng, err := engine.New(0, 24, engine.DefaultConfig())
			Expect(err).NotTo(HaveOccurred())

			s := scene.New(eng).Initial()
			Expect(s.Empty()).To(BeTrue())
			_, ok := s.Value(0, 0)
			Expect(ok).To(BeFalse())
		})
	})
})
