package primitive

import "testing"

func TestTriangles(t *testing.T) {
	p := Primitive{Corners: [4]Vec2{{0, 0}, {50, 0}, {0, 50}, {50, 50}}}
	want := [6]Vec2{{0, 0}, {50, 0}, {0, 50}, {0, 50}, {50, 50}, {50, 0}}
	if got := Triangles(&p); got != want {
		t.Errorf("Triangles() = %v, want %v", got, want)
	}
}

func TestTrianglesDevice(t *testing.T) {
	p := New(Device, 1, Blue)
	want := [6]Vec2{{-0.5, -0.5}, {-0.5, 0.5}, {0.5, -0.5}, {0.5, -0.5}, {0.5, 0.5}, {-0.5, 0.5}}
	if got := Triangles(&p); got != want {
		t.Errorf("Triangles() = %v, want %v", got, want)
	}
}

func TestToDevice(t *testing.T) {
	tests := []struct {
		space Space
		in    Vec2
		want  Vec2
	}{
		{Device, Vec2{0.25, -0.75}, Vec2{0.25, -0.75}},
		{Screen, Vec2{0, 0}, Vec2{-1, 1}},
		{Screen, Vec2{640, 480}, Vec2{1, -1}},
		{Screen, Vec2{320, 240}, Vec2{0, 0}},
		{Screen, Vec2{160, 360}, Vec2{-0.5, -0.5}},
	}
	for _, tt := range tests {
		if got := tt.space.ToDevice(tt.in, 640, 480); got != tt.want {
			t.Errorf("%v.ToDevice(%v) = %v, want %v", tt.space, tt.in, got, tt.want)
		}
	}
}

func TestVertices(t *testing.T) {
	p := New(Screen, 50, Color{R: 255, G: 0, B: 51})
	v := Vertices(&p, Screen, 640, 480)

	if v[0].Pos != [2]float32{-1, 1} {
		t.Errorf("first vertex at %v, want top-left of viewport", v[0].Pos)
	}
	if v[2] != v[3] {
		t.Errorf("shared diagonal differs: %v vs %v", v[2], v[3])
	}
	if v[1] != v[5] {
		t.Errorf("shared diagonal differs: %v vs %v", v[1], v[5])
	}
	for i, vv := range v {
		if vv.Color != [3]float32{1, 0, 0.2} {
			t.Errorf("vertex %d color = %v", i, vv.Color)
		}
	}
	if v[0].UV != [2]float32{0, 1} || v[4].UV != [2]float32{1, 0} {
		t.Errorf("uvs = %v, %v", v[0].UV, v[4].UV)
	}
}

func TestVertexLayout(t *testing.T) {
	if VertexStride != 7*4 {
		t.Errorf("VertexStride = %d, want 28", VertexStride)
	}
	if PosOffset != 0 || ColorOffset != 8 || UVOffset != 20 {
		t.Errorf("offsets = %d, %d, %d", PosOffset, ColorOffset, UVOffset)
	}
}

func TestVerticesFollowTriangles(t *testing.T) {
	p := Primitive{Corners: [4]Vec2{{0, 0}, {0.5, 0}, {0, 0.5}, {0.5, 0.5}}, Color: Blue}
	tri := Triangles(&p)
	want := [6]Vec2{{0, 0}, {0.5, 0}, {0, 0.5}, {0, 0.5}, {0.5, 0.5}, {0.5, 0}}
	if tri != want {
		t.Fatalf("Triangles() = %v, want %v", tri, want)
	}
	for i, v := range Vertices(&p, Device, 640, 480) {
		if v.Pos != [2]float32{tri[i].X, tri[i].Y} {
			t.Errorf("vertex %d at %v, want %v", i, v.Pos, tri[i])
		}
	}
}
