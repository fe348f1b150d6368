package glbackend

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-gl/gl/v3.3-core/gl"
)

var (
	// ErrShaderCompile is returned when a shader fails to compile; the message carries the info log.
	ErrShaderCompile = errors.New("shader compile failed")
	// ErrProgramLink is returned when the program fails to link; the message carries the info log.
	ErrProgramLink = errors.New("program link failed")
)

const vertexSource = `#version 330 core
layout(location = 0) in vec2 position;
layout(location = 1) in vec3 color;
layout(location = 2) in vec2 texCoord;

out vec3 vColor;
out vec2 vTexCoord;

void main() {
	gl_Position = vec4(position, 0.0, 1.0);
	vColor = color;
	// Image rows start at the top; texture v grows upward.
	vTexCoord = vec2(texCoord.x, 1.0 - texCoord.y);
}
`

const flatFragmentSource = `#version 330 core
in vec3 vColor;
in vec2 vTexCoord;

out vec4 color;

void main() {
	color = vec4(vColor, 1.0);
}
`

const texturedFragmentSource = `#version 330 core
in vec3 vColor;
in vec2 vTexCoord;

out vec4 color;

uniform sampler2D squareTexture;

void main() {
	color = texture(squareTexture, vTexCoord);
}
`

// Attribute locations, matching the layout qualifiers in vertexSource.
const (
	attribPosition = 0
	attribColor    = 1
	attribTexCoord = 2
)

// newProgram compiles and links the square's shader program.
func newProgram(textured bool) (uint32, error) {
	fragmentSource := flatFragmentSource
	if textured {
		fragmentSource = texturedFragmentSource
	}
	vertexShader, err := compileShader(vertexSource, gl.VERTEX_SHADER)
	if err != nil {
		return 0, fmt.Errorf("vertex: %w", err)
	}
	fragmentShader, err := compileShader(fragmentSource, gl.FRAGMENT_SHADER)
	if err != nil {
		gl.DeleteShader(vertexShader)
		return 0, fmt.Errorf("fragment: %w", err)
	}

	program := gl.CreateProgram()
	gl.AttachShader(program, vertexShader)
	gl.AttachShader(program, fragmentShader)
	gl.BindFragDataLocation(program, 0, gl.Str("color\x00"))
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(log))

		gl.DeleteProgram(program)
		gl.DeleteShader(vertexShader)
		gl.DeleteShader(fragmentShader)
		return 0, fmt.Errorf("%w: %s", ErrProgramLink, strings.TrimRight(log, "\x00"))
	}

	gl.DetachShader(program, vertexShader)
	gl.DetachShader(program, fragmentShader)
	gl.DeleteShader(vertexShader)
	gl.DeleteShader(fragmentShader)
	return program, nil
}

func compileShader(source string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)

	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(log))

		gl.DeleteShader(shader)
		return 0, fmt.Errorf("%w: %s", ErrShaderCompile, strings.TrimRight(log, "\x00"))
	}
	return shader, nil
}
