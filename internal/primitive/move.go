package primitive

import (
	"math/rand/v2"
	"time"

	"moving-square/internal/input"
)

// RecolorInterval is the minimum time in seconds between two color changes.
const RecolorInterval = 1.0

// Timer measures seconds since it was last reset.
type Timer interface {
	Elapsed() float64
	Reset()
}

// Stopwatch is a wall-clock Timer. It starts at zero when created.
type Stopwatch struct {
	start time.Time
	now   func() time.Time
}

// NewStopwatch returns a Stopwatch started now.
func NewStopwatch() *Stopwatch {
	s := &Stopwatch{now: time.Now}
	s.start = s.now()
	return s
}

func (s *Stopwatch) Elapsed() float64 {
	return s.now().Sub(s.start).Seconds()
}

func (s *Stopwatch) Reset() {
	s.start = s.now()
}

// Mover applies one frame of input to a primitive.
// Width and Height are only used in screen space, where they bound the visible area.
type Mover struct {
	Space  Space
	Step   float32
	Side   float32
	Width  float32
	Height float32
	Timer  Timer
	Rand   *rand.Rand
}

// NewMover returns a Mover using the metrics m for space.
func NewMover(space Space, m Metrics, width, height float32, timer Timer, rng *rand.Rand) *Mover {
	return &Mover{
		Space:  space,
		Step:   m.Step,
		Side:   m.Side,
		Width:  width,
		Height: height,
		Timer:  timer,
		Rand:   rng,
	}
}

// Update moves or recolors p according to a. It reports whether the color changed.
// Wrapping checks a single corner per direction; once that corner leaves the visible area the
// whole square is placed just outside the opposite edge.
func (m *Mover) Update(p *Primitive, a input.Action) bool {
	if a == input.Recolor {
		return m.recolor(p)
	}
	switch a.Vertical() {
	case input.Up:
		m.up(p)
	case input.Down:
		m.down(p)
	}
	switch a.Horizontal() {
	case input.Left:
		m.left(p)
	case input.Right:
		m.right(p)
	}
	return false
}

func (m *Mover) up(p *Primitive) {
	s := m.Side
	if m.Space == Screen {
		p.translate(0, -m.Step)
		if p.Corners[2].Y < 0 {
			p.setY(m.Height, m.Height, m.Height+s, m.Height+s)
		}
		return
	}
	p.translate(0, m.Step)
	if p.Corners[0].Y > 1 {
		p.setY(-1-s, -1, -1-s, -1)
	}
}

func (m *Mover) down(p *Primitive) {
	s := m.Side
	if m.Space == Screen {
		p.translate(0, m.Step)
		if p.Corners[0].Y > m.Height {
			p.setY(-s, -s, 0, 0)
		}
		return
	}
	p.translate(0, -m.Step)
	if p.Corners[1].Y < -1 {
		p.setY(1, 1+s, 1, 1+s)
	}
}

func (m *Mover) left(p *Primitive) {
	s := m.Side
	if m.Space == Screen {
		p.translate(-m.Step, 0)
		if p.Corners[1].X < 0 {
			p.setX(m.Width, m.Width+s, m.Width, m.Width+s)
		}
		return
	}
	p.translate(-m.Step, 0)
	if p.Corners[2].X < -1 {
		p.setX(1, 1, 1+s, 1+s)
	}
}

func (m *Mover) right(p *Primitive) {
	s := m.Side
	if m.Space == Screen {
		p.translate(m.Step, 0)
		if p.Corners[0].X > m.Width {
			p.setX(-s, 0, -s, 0)
		}
		return
	}
	p.translate(m.Step, 0)
	if p.Corners[0].X > 1 {
		p.setX(-1-s, -1-s, -1, -1)
	}
}

func (m *Mover) recolor(p *Primitive) bool {
	if m.Timer.Elapsed() < RecolorInterval {
		return false
	}
	m.Timer.Reset()
	p.Color = Color{
		R: uint8(m.Rand.IntN(256)),
		G: uint8(m.Rand.IntN(256)),
		B: uint8(m.Rand.IntN(256)),
	}
	return true
}
