package glbackend

import (
	"image"

	"github.com/go-gl/gl/v3.3-core/gl"

	"moving-square/internal/primitive"
)

// newQuadBuffers creates the VAO and VBO for the six square vertices and describes the
// Vertex layout to the program.
func newQuadBuffers() (vao, vbo uint32) {
	gl.GenVertexArrays(1, &vao)
	gl.BindVertexArray(vao)

	gl.GenBuffers(1, &vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)

	stride := primitive.VertexStride
	gl.VertexAttribPointerWithOffset(attribPosition, 2, gl.FLOAT, false, stride, primitive.PosOffset)
	gl.EnableVertexAttribArray(attribPosition)
	gl.VertexAttribPointerWithOffset(attribColor, 3, gl.FLOAT, false, stride, primitive.ColorOffset)
	gl.EnableVertexAttribArray(attribColor)
	gl.VertexAttribPointerWithOffset(attribTexCoord, 2, gl.FLOAT, false, stride, primitive.UVOffset)
	gl.EnableVertexAttribArray(attribTexCoord)

	gl.BindVertexArray(0)
	return vao, vbo
}

// uploadVertices replaces the VBO contents with verts.
func uploadVertices(vbo uint32, verts *[6]primitive.Vertex) {
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(verts)*int(primitive.VertexStride), gl.Ptr(&verts[0]), gl.STREAM_DRAW)
}

// newTexture uploads img as a mipmapped 2D texture.
func newTexture(img *image.RGBA) uint32 {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	pix := img.Pix
	if img.Stride != 4*w {
		tight := image.NewRGBA(image.Rect(0, 0, w, h))
		for y := 0; y < h; y++ {
			copy(tight.Pix[y*tight.Stride:], img.Pix[img.PixOffset(b.Min.X, b.Min.Y+y):][:4*w])
		}
		pix = tight.Pix
	}

	var tex uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, int32(w), int32(h), 0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pix))
	gl.GenerateMipmap(gl.TEXTURE_2D)
	gl.BindTexture(gl.TEXTURE_2D, 0)
	return tex
}
