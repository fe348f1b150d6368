package rlbackend

import (
	"errors"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"moving-square/internal/debug"
	"moving-square/internal/graphics"
	"moving-square/internal/input"
	"moving-square/internal/logger"
	"moving-square/internal/primitive"
)

const (
	overlayFontSize   = 20
	overlayPadding    = 12
	overlayLineHeight = overlayFontSize + 4
)

// Window draws the square with raylib. ESC does not quit; close via the window button.
type Window struct {
	latch   *input.Latch
	width   float32
	height  float32
	tex     rl.Texture2D
	hasTex  bool
	overlay *debug.Overlay
	log     *logger.Logger
}

// Open creates the raylib window at 60 FPS and uploads the texture, if any.
func Open(cfg graphics.Config, latch *input.Latch) (*Window, error) {
	if cfg.Overlay == nil {
		cfg.Overlay = debug.New(false, false)
	}
	if cfg.Log == nil {
		cfg.Log = logger.New("", nil)
	}
	rl.SetConfigFlags(rl.FlagMsaa4xHint)
	rl.InitWindow(int32(cfg.Width), int32(cfg.Height), cfg.Title)
	if !rl.IsWindowReady() {
		return nil, errors.New("open raylib window")
	}
	rl.SetExitKey(rl.KeyNull)
	rl.SetTargetFPS(60)

	w := &Window{
		latch:   latch,
		width:   float32(cfg.Width),
		height:  float32(cfg.Height),
		overlay: cfg.Overlay,
		log:     cfg.Log,
	}
	if cfg.Texture != nil {
		img := rl.NewImageFromImage(cfg.Texture)
		w.tex = rl.LoadTextureFromImage(img)
		rl.UnloadImage(img)
		if !rl.IsTextureValid(w.tex) {
			rl.CloseWindow()
			return nil, errors.New("upload raylib texture")
		}
		w.hasTex = true
		w.log.Logf("texture %dx%d uploaded", w.tex.Width, w.tex.Height)
	}
	return w, nil
}

// Draw clears the screen and draws the frame's two triangles, or the texture stretched over
// the area they cover.
func (w *Window) Draw(f graphics.Frame) {
	rl.BeginDrawing()
	bg := f.Background
	rl.ClearBackground(rl.NewColor(unit(bg[0]), unit(bg[1]), unit(bg[2]), unit(bg[3])))

	if w.hasTex {
		a := f.Area
		src := rl.NewRectangle(0, 0, float32(w.tex.Width), float32(w.tex.Height))
		rl.DrawTexturePro(w.tex, src, rl.NewRectangle(a[0], a[1], a[2], a[3]), rl.NewVector2(0, 0), 0, rl.White)
	} else {
		var pts [6][2]float32
		for i, v := range f.Vertices {
			pts[i] = graphics.DeviceToPixel(v.Pos, w.width, w.height)
		}
		c := f.Vertices[0].Color
		col := rl.NewColor(unit(c[0]), unit(c[1]), unit(c[2]), 255)
		for i := 0; i < len(pts); i += 3 {
			a, b, cc := graphics.CounterClockwise(pts[i], pts[i+1], pts[i+2])
			rl.DrawTriangle(vec(a), vec(b), vec(cc), col)
		}
	}
	w.overlay.Tick(time.Now())
	w.drawOverlay()
	rl.EndDrawing()
}

// drawOverlay draws the enabled debug lines at the top-right in green.
func (w *Window) drawOverlay() {
	screenW := int32(rl.GetScreenWidth())
	y := int32(overlayPadding)
	for _, text := range w.overlay.Lines() {
		x := screenW - rl.MeasureText(text, overlayFontSize) - overlayPadding
		rl.DrawText(text, x, y, overlayFontSize, rl.Green)
		y += overlayLineHeight
	}
}

// Poll feeds this frame's key events into the latch. raylib has already collected them in
// EndDrawing.
func (w *Window) Poll() {
	feedKeys(w.latch, keyQueries{
		released: rl.IsKeyReleased,
		pressed:  rl.GetKeyPressed,
		repeated: rl.IsKeyPressedRepeat,
	})
}

// ShouldClose reports whether the user closed the window.
func (w *Window) ShouldClose() bool {
	return rl.WindowShouldClose()
}

// Close unloads the texture and closes the window.
func (w *Window) Close() {
	if w.hasTex {
		rl.UnloadTexture(w.tex)
	}
	rl.CloseWindow()
}

// Clock returns a wall-clock timer started when it is requested, right after the window opens.
func (w *Window) Clock() primitive.Timer {
	return primitive.NewStopwatch()
}

// translateKey maps a raylib key code to the decoder's key set.
func translateKey(k int32) input.Key {
	switch k {
	case rl.KeyUp:
		return input.KeyUp
	case rl.KeyDown:
		return input.KeyDown
	case rl.KeyLeft:
		return input.KeyLeft
	case rl.KeyRight:
		return input.KeyRight
	case rl.KeyX:
		return input.KeyX
	}
	return input.KeyOther
}

func unit(f float32) uint8 {
	return uint8(min(max(f, 0), 1)*255 + 0.5)
}

func vec(p [2]float32) rl.Vector2 {
	return rl.NewVector2(p[0], p[1])
}
