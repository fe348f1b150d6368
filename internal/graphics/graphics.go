package graphics

import (
	"image"

	"moving-square/internal/debug"
	"moving-square/internal/input"
	"moving-square/internal/logger"
	"moving-square/internal/primitive"
)

// Fixed window geometry. The window is not resizable.
const (
	Width  = 640
	Height = 480
	Title  = "Moving Square"
)

// Clear colors: black behind the flat square, greenish behind the textured one.
var (
	BackgroundFlat     = [4]float32{0, 0, 0, 1}
	BackgroundTextured = [4]float32{0.2, 0.3, 0.3, 1}
)

// Config is what a backend needs to open its window.
type Config struct {
	Width, Height int
	Title         string
	Texture       *image.RGBA // nil draws flat color
	Overlay       *debug.Overlay
	Log           *logger.Logger
}

// DefaultConfig returns the fixed 640×480 "Moving Square" window with no texture.
func DefaultConfig(log *logger.Logger) Config {
	return Config{Width: Width, Height: Height, Title: Title, Overlay: debug.New(false, false), Log: log}
}

// Frame is one frame worth of drawing: the quad in device coordinates, the pixel area it
// covers (x, y, width, height) and the clear color.
type Frame struct {
	Vertices   [6]primitive.Vertex
	Area       [4]float32
	Background [4]float32
}

// Surface is a window with a drawing context. Poll dispatches pending input into the latch the
// surface was opened with and returns immediately.
type Surface interface {
	Draw(f Frame)
	Poll()
	ShouldClose() bool
	Close()
}

// State of the render loop. Closing is terminal.
type State uint8

const (
	Running State = iota
	Closing
)

func (s State) String() string {
	if s == Closing {
		return "closing"
	}
	return "running"
}

// Loop owns the primitive and the input latch and drives a Surface once per frame.
type Loop struct {
	surface    Surface
	latch      *input.Latch
	mover      *primitive.Mover
	prim       primitive.Primitive
	space      primitive.Space
	background [4]float32
	log        *logger.Logger
	state      State
	frames     uint64
}

// NewLoop returns a Loop in the Running state. The latch must be the one the surface feeds.
func NewLoop(s Surface, latch *input.Latch, mover *primitive.Mover, prim primitive.Primitive, textured bool, log *logger.Logger) *Loop {
	bg := BackgroundFlat
	if textured {
		bg = BackgroundTextured
	}
	return &Loop{
		surface:    s,
		latch:      latch,
		mover:      mover,
		prim:       prim,
		space:      mover.Space,
		background: bg,
		log:        log,
	}
}

// Primitive returns the current primitive state.
func (l *Loop) Primitive() primitive.Primitive {
	return l.prim
}

// State returns the current loop state.
func (l *Loop) State() State {
	return l.state
}

// Tick runs one frame: drain input, update the primitive, convert and draw it, then poll the
// window and check for a close request.
func (l *Loop) Tick() State {
	if l.state == Closing {
		return Closing
	}
	a := l.latch.Consume()
	if l.mover.Update(&l.prim, a) {
		c := l.prim.Color
		l.log.Logf("recolor to rgb(%d,%d,%d)", c.R, c.G, c.B)
	}
	l.surface.Draw(Frame{
		Vertices:   primitive.Vertices(&l.prim, l.space, Width, Height),
		Area:       PixelArea(&l.prim, l.space, Width, Height),
		Background: l.background,
	})
	l.frames++
	l.surface.Poll()
	if l.surface.ShouldClose() {
		l.state = Closing
	}
	return l.state
}

// Run ticks until the surface asks to close, then releases it. A close request is a normal
// exit, so the returned error is nil.
func (l *Loop) Run() error {
	l.log.Logf("render loop running (%s space)", l.space)
	for l.Tick() == Running {
	}
	l.surface.Close()
	l.log.Logf("render loop closed after %d frames", l.frames)
	return nil
}
