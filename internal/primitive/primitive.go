package primitive

import (
	"fmt"

	"github.com/chewxy/math32"
)

// Vec2 is a 2D point in the primitive's own coordinate space.
type Vec2 struct {
	X, Y float32
}

// Color is an 8-bit RGB color.
type Color struct {
	R, G, B uint8
}

// Blue is the color every primitive starts with.
var Blue = Color{R: 0, G: 0, B: 255}

// Floats returns the color scaled to [0,1] for the GPU.
func (c Color) Floats() [3]float32 {
	return [3]float32{float32(c.R) / 255, float32(c.G) / 255, float32(c.B) / 255}
}

// Space is the coordinate convention the corners are expressed in.
type Space uint8

const (
	// Device is center-origin normalized coordinates, x right and y up, visible range [-1,1].
	Device Space = iota
	// Screen is top-left-origin pixel coordinates, x right and y down.
	Screen
)

func (s Space) String() string {
	if s == Screen {
		return "screen"
	}
	return "device"
}

// ParseSpace accepts "device" or "screen". Empty means Device.
func ParseSpace(name string) (Space, error) {
	switch name {
	case "", "device":
		return Device, nil
	case "screen":
		return Screen, nil
	}
	return Device, fmt.Errorf("unknown coordinate space %q", name)
}

// ToDevice maps a point in s to normalized device coordinates for a w×h viewport.
func (s Space) ToDevice(v Vec2, w, h float32) Vec2 {
	if s == Screen {
		return Vec2{X: v.X/w*2 - 1, Y: 1 - v.Y/h*2}
	}
	return v
}

// Primitive is a colored axis-aligned square described by its four corners.
//
// Corner order depends on the space. Device: 0 bottom-left, 1 top-left, 2 bottom-right,
// 3 top-right. Screen: 0 top-left, 1 top-right, 2 bottom-left, 3 bottom-right.
type Primitive struct {
	Corners [4]Vec2
	Color   Color
}

// New returns the startup primitive for a space: centered in device space, at the origin
// in screen space, colored c.
func New(space Space, side float32, c Color) Primitive {
	if space == Screen {
		return Primitive{
			Corners: [4]Vec2{{0, 0}, {side, 0}, {0, side}, {side, side}},
			Color:   c,
		}
	}
	h := side / 2
	return Primitive{
		Corners: [4]Vec2{{-h, -h}, {-h, h}, {h, -h}, {h, h}},
		Color:   c,
	}
}

// Bounds returns the smallest and largest coordinate on each axis.
func (p *Primitive) Bounds() (lo, hi Vec2) {
	lo, hi = p.Corners[0], p.Corners[0]
	for _, c := range p.Corners[1:] {
		lo.X, lo.Y = math32.Min(lo.X, c.X), math32.Min(lo.Y, c.Y)
		hi.X, hi.Y = math32.Max(hi.X, c.X), math32.Max(hi.Y, c.Y)
	}
	return lo, hi
}

func (p *Primitive) translate(dx, dy float32) {
	for i := range p.Corners {
		p.Corners[i].X += dx
		p.Corners[i].Y += dy
	}
}

func (p *Primitive) setX(x0, x1, x2, x3 float32) {
	p.Corners[0].X, p.Corners[1].X, p.Corners[2].X, p.Corners[3].X = x0, x1, x2, x3
}

func (p *Primitive) setY(y0, y1, y2, y3 float32) {
	p.Corners[0].Y, p.Corners[1].Y, p.Corners[2].Y, p.Corners[3].Y = y0, y1, y2, y3
}
