package graphics

import (
	"math/rand/v2"
	"testing"

	"moving-square/internal/input"
	"moving-square/internal/logger"
	"moving-square/internal/primitive"
)

// fakeSurface replays one scripted key event per Poll and asks to close after closeAfter frames.
type fakeSurface struct {
	latch      *input.Latch
	script     []input.Key
	closeAfter int
	frames     []Frame
	polls      int
	closed     bool
}

func (f *fakeSurface) Draw(fr Frame) { f.frames = append(f.frames, fr) }

func (f *fakeSurface) Poll() {
	if f.polls < len(f.script) {
		f.latch.Feed(f.script[f.polls], input.Press)
	}
	f.polls++
}

func (f *fakeSurface) ShouldClose() bool { return len(f.frames) >= f.closeAfter }
func (f *fakeSurface) Close()            { f.closed = true }

type stoppedTimer struct{ t float64 }

func (s *stoppedTimer) Elapsed() float64 { return s.t }
func (s *stoppedTimer) Reset()           { s.t = 0 }

func newTestLoop(s *fakeSurface, space primitive.Space, timer primitive.Timer) *Loop {
	def := primitive.DefaultDef()
	m := def.Metrics(space)
	mover := primitive.NewMover(space, m, Width, Height, timer, rand.New(rand.NewPCG(5, 5)))
	return NewLoop(s, s.latch, mover, primitive.New(space, m.Side, primitive.Blue), false, logger.New("", nil))
}

func TestLoopRunsUntilClose(t *testing.T) {
	s := &fakeSurface{latch: &input.Latch{}, closeAfter: 3}
	l := newTestLoop(s, primitive.Device, &stoppedTimer{})
	if err := l.Run(); err != nil {
		t.Fatalf("Run() = %v", err)
	}
	if len(s.frames) != 3 {
		t.Errorf("drew %d frames, want 3", len(s.frames))
	}
	if !s.closed {
		t.Error("surface not closed")
	}
	if l.State() != Closing {
		t.Errorf("state = %v, want closing", l.State())
	}
	if got := l.Tick(); got != Closing || len(s.frames) != 3 {
		t.Error("Tick after Closing drew another frame")
	}
}

func TestLoopAppliesInputNextFrame(t *testing.T) {
	s := &fakeSurface{
		latch:      &input.Latch{},
		script:     []input.Key{input.KeyRight, input.KeyOther, input.KeyRight},
		closeAfter: 4,
	}
	l := newTestLoop(s, primitive.Screen, &stoppedTimer{})
	l.Run()

	// Frame 0 sees no input; the key polled after frame N moves the square in frame N+1.
	wantX := []float32{0, 3, 3, 6}
	for i, fr := range s.frames {
		x := DeviceToPixel(fr.Vertices[0].Pos, Width, Height)[0]
		if d := x - wantX[i]; d > 1e-3 || d < -1e-3 {
			t.Errorf("frame %d: x = %v, want %v", i, x, wantX[i])
		}
		if fr.Background != BackgroundFlat {
			t.Errorf("frame %d: background = %v", i, fr.Background)
		}
	}
	if got := l.Primitive().Corners[0].X; got != 6 {
		t.Errorf("final x0 = %v, want 6", got)
	}
}

func TestLoopRecolorDebounced(t *testing.T) {
	s := &fakeSurface{
		latch:      &input.Latch{},
		script:     []input.Key{input.KeyX, input.KeyX},
		closeAfter: 3,
	}
	timer := &stoppedTimer{t: 1}
	l := newTestLoop(s, primitive.Device, timer)
	l.Run()

	first, second := s.frames[1].Vertices[0].Color, s.frames[2].Vertices[0].Color
	if first == primitive.Blue.Floats() {
		t.Error("first X did not recolor")
	}
	if second != first {
		t.Errorf("second X inside debounce window recolored: %v -> %v", first, second)
	}
}

func TestDeviceToPixel(t *testing.T) {
	tests := []struct {
		in, want [2]float32
	}{
		{[2]float32{-1, 1}, [2]float32{0, 0}},
		{[2]float32{1, -1}, [2]float32{640, 480}},
		{[2]float32{0, 0}, [2]float32{320, 240}},
	}
	for _, tt := range tests {
		if got := DeviceToPixel(tt.in, Width, Height); got != tt.want {
			t.Errorf("DeviceToPixel(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestCounterClockwise(t *testing.T) {
	a, b, c := [2]float32{0, 0}, [2]float32{50, 0}, [2]float32{0, 50}
	x, y, z := CounterClockwise(a, b, c)
	if x != a || y != c || z != b {
		t.Errorf("clockwise input not reordered: %v %v %v", x, y, z)
	}
	x, y, z = CounterClockwise(a, c, b)
	if x != a || y != c || z != b {
		t.Errorf("counter-clockwise input changed: %v %v %v", x, y, z)
	}
}

func TestPixelArea(t *testing.T) {
	tests := []struct {
		name  string
		space primitive.Space
		prim  primitive.Primitive
		want  [4]float32
	}{
		{"screen origin", primitive.Screen, primitive.New(primitive.Screen, 50, primitive.Blue), [4]float32{0, 0, 50, 50}},
		{"device centered", primitive.Device, primitive.New(primitive.Device, 1, primitive.Blue), [4]float32{160, 120, 320, 240}},
		{"device top-left", primitive.Device, primitive.Primitive{
			Corners: [4]primitive.Vec2{{-1, 0}, {-1, 1}, {0, 0}, {0, 1}},
		}, [4]float32{0, 0, 320, 240}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PixelArea(&tt.prim, tt.space, Width, Height); !nearArea(got, tt.want) {
				t.Errorf("PixelArea() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLoopFrameArea(t *testing.T) {
	s := &fakeSurface{latch: &input.Latch{}, script: []input.Key{input.KeyDown}, closeAfter: 2}
	l := newTestLoop(s, primitive.Screen, &stoppedTimer{})
	if err := l.Run(); err != nil {
		t.Fatal(err)
	}
	if got, want := s.frames[1].Area, [4]float32{0, 3, 50, 50}; !nearArea(got, want) {
		t.Errorf("area after one down = %v, want %v", got, want)
	}
}

func nearArea(a, b [4]float32) bool {
	for i := range a {
		if d := a[i] - b[i]; d > 1e-3 || d < -1e-3 {
			return false
		}
	}
	return true
}
