package primitive

import "unsafe"

// quadOrder lists the corners of the two triangles covering the quad.
// Corners 1 and 2 form the shared diagonal and appear in both triangles.
var quadOrder = [6]int{0, 1, 2, 2, 3, 1}

// Triangles returns the six corner positions drawn for p, in p's own space.
func Triangles(p *Primitive) [6]Vec2 {
	var out [6]Vec2
	for i, c := range quadOrder {
		out[i] = p.Corners[c]
	}
	return out
}

// Vertex is one record of the vertex buffer uploaded each frame.
type Vertex struct {
	Pos   [2]float32
	Color [3]float32
	UV    [2]float32
}

// Layout of Vertex as seen by the vertex attribute setup.
const (
	VertexStride = int32(unsafe.Sizeof(Vertex{}))
	PosOffset    = unsafe.Offsetof(Vertex{}.Pos)
	ColorOffset  = unsafe.Offsetof(Vertex{}.Color)
	UVOffset     = unsafe.Offsetof(Vertex{}.UV)
)

// cornerUV is the texture coordinate of each corner, v growing upward.
var cornerUV = map[Space][4][2]float32{
	Device: {{0, 0}, {0, 1}, {1, 0}, {1, 1}},
	Screen: {{0, 1}, {1, 1}, {0, 0}, {1, 0}},
}

// Vertices converts p into the six device-space vertex records for a w×h viewport.
func Vertices(p *Primitive, space Space, w, h float32) [6]Vertex {
	var out [6]Vertex
	color := p.Color.Floats()
	uv := cornerUV[space]
	for i, corner := range Triangles(p) {
		pos := space.ToDevice(corner, w, h)
		c := quadOrder[i]
		out[i] = Vertex{
			Pos:   [2]float32{pos.X, pos.Y},
			Color: color,
			UV:    uv[c],
		}
	}
	return out
}
