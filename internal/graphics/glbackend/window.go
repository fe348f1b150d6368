package glbackend

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"moving-square/internal/debug"
	"moving-square/internal/graphics"
	"moving-square/internal/input"
	"moving-square/internal/logger"
	"moving-square/internal/primitive"
)

// Window is a GLFW window with an OpenGL 3.3 core context drawing the square.
// All methods must be called from the thread that called Open.
type Window struct {
	win     *glfw.Window
	latch   *input.Latch
	title   string
	overlay *debug.Overlay
	log     *logger.Logger

	program uint32
	vao     uint32
	vbo     uint32
	tex     uint32
}

// Open initializes GLFW, creates the window and context, builds the shader program and GPU
// buffers, and routes key events into latch.
func Open(cfg graphics.Config, latch *input.Latch) (*Window, error) {
	if cfg.Overlay == nil {
		cfg.Overlay = debug.New(false, false)
	}
	if cfg.Log == nil {
		cfg.Log = logger.New("", nil)
	}
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("initialize GLFW: %w", err)
	}

	glfw.WindowHint(glfw.Samples, 4)
	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.False)

	win, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("open GLFW window: %w", err)
	}
	win.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("initialize OpenGL: %w", err)
	}
	cfg.Log.Logf("OpenGL %s", gl.GoStr(gl.GetString(gl.VERSION)))

	textured := cfg.Texture != nil
	program, err := newProgram(textured)
	if err != nil {
		glfw.Terminate()
		return nil, err
	}
	gl.UseProgram(program)

	w := &Window{
		win:     win,
		latch:   latch,
		title:   cfg.Title,
		overlay: cfg.Overlay,
		log:     cfg.Log,
		program: program,
	}
	w.vao, w.vbo = newQuadBuffers()
	if textured {
		w.tex = newTexture(cfg.Texture)
		gl.Uniform1i(gl.GetUniformLocation(program, gl.Str("squareTexture\x00")), 0)
	}

	win.SetKeyCallback(w.onKey)
	return w, nil
}

func (w *Window) onKey(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
	w.latch.Feed(translateKey(key), translateAction(action))
}

func translateKey(k glfw.Key) input.Key {
	switch k {
	case glfw.KeyUp:
		return input.KeyUp
	case glfw.KeyDown:
		return input.KeyDown
	case glfw.KeyLeft:
		return input.KeyLeft
	case glfw.KeyRight:
		return input.KeyRight
	case glfw.KeyX:
		return input.KeyX
	}
	return input.KeyOther
}

func translateAction(a glfw.Action) input.KeyState {
	switch a {
	case glfw.Press:
		return input.Press
	case glfw.Repeat:
		return input.Repeat
	}
	return input.Release
}

// Draw clears the framebuffer, uploads the frame's vertices, draws both triangles and presents.
func (w *Window) Draw(f graphics.Frame) {
	bg := f.Background
	gl.ClearColor(bg[0], bg[1], bg[2], bg[3])
	gl.Clear(gl.COLOR_BUFFER_BIT)

	gl.UseProgram(w.program)
	gl.BindVertexArray(w.vao)
	uploadVertices(w.vbo, &f.Vertices)
	if w.tex != 0 {
		gl.ActiveTexture(gl.TEXTURE0)
		gl.BindTexture(gl.TEXTURE_2D, w.tex)
	}
	gl.DrawArrays(gl.TRIANGLES, 0, int32(len(f.Vertices)))
	gl.BindVertexArray(0)

	w.win.SwapBuffers()

	if w.overlay.Tick(time.Now()) {
		w.win.SetTitle(strings.Join(append([]string{w.title}, w.overlay.Lines()...), " | "))
	}
}

// Poll dispatches pending window events, including key callbacks, without blocking.
func (w *Window) Poll() {
	glfw.PollEvents()
}

// ShouldClose reports whether the user asked to close the window.
func (w *Window) ShouldClose() bool {
	return w.win.ShouldClose()
}

// Close releases GPU resources, destroys the window and terminates GLFW.
func (w *Window) Close() {
	gl.DeleteProgram(w.program)
	gl.DeleteBuffers(1, &w.vbo)
	gl.DeleteVertexArrays(1, &w.vao)
	if w.tex != 0 {
		gl.DeleteTextures(1, &w.tex)
	}
	w.win.Destroy()
	glfw.Terminate()
}

// Clock returns the GLFW timer, which counts seconds since GLFW init or the last reset.
func (w *Window) Clock() primitive.Timer {
	return clock{}
}

type clock struct{}

func (clock) Elapsed() float64 { return glfw.GetTime() }
func (clock) Reset()           { glfw.SetTime(0) }
