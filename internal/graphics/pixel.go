package graphics

import "moving-square/internal/primitive"

// DeviceToPixel maps a normalized device position to window pixels, origin top-left.
func DeviceToPixel(pos [2]float32, w, h float32) [2]float32 {
	return [2]float32{(pos[0] + 1) / 2 * w, (1 - pos[1]) / 2 * h}
}

// CounterClockwise orders a pixel-space triangle counter-clockwise as seen on screen
// (y down), which is the winding raylib draws.
func CounterClockwise(a, b, c [2]float32) (x, y, z [2]float32) {
	cross := (b[0]-a[0])*(c[1]-a[1]) - (b[1]-a[1])*(c[0]-a[0])
	if cross > 0 {
		return a, c, b
	}
	return a, b, c
}

// PixelArea returns the top-left corner and size in window pixels of the area p covers.
func PixelArea(p *primitive.Primitive, space primitive.Space, w, h float32) [4]float32 {
	lo, hi := p.Bounds()
	a := toPixel(space.ToDevice(lo, w, h), w, h)
	b := toPixel(space.ToDevice(hi, w, h), w, h)
	x, y := min(a[0], b[0]), min(a[1], b[1])
	return [4]float32{x, y, max(a[0], b[0]) - x, max(a[1], b[1]) - y}
}

func toPixel(v primitive.Vec2, w, h float32) [2]float32 {
	return DeviceToPixel([2]float32{v.X, v.Y}, w, h)
}
