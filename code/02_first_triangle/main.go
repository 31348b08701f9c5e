package main

import (
	"fmt"
	"log"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

func init() {
	// This is needed to arrange that main() runs on main thread.
	// See documentation for functions that are only allowed to be called
	// from the main thread.
	runtime.LockOSThread()
}

const title = "OpenGL Tutorial"

// The shader pair lives inline at this step. The next step moves it into an
// annotated file split by the shaders package.
const (
	vertexShaderSource = `
#version 330 core

layout(location = 0) in vec4 position;

void main()
{
    gl_Position = position;
}
`

	fragmentShaderSource = `
#version 330 core

layout(location = 0) out vec4 color;

void main()
{
    color = vec4(0.8, 0.3, 0.2, 1.0);
}
`
)

func main() {
	app := &TriangleApp{
		width:  640,
		height: 480,
	}
	if err := app.Run(); err != nil {
		log.Fatalf("ERROR: %s", err)
	}
}

// triangleVertices holds one triangle, two floats per vertex in normalized
// device coordinates.
var triangleVertices = []float32{
	-0.5, -0.5,
	0.0, 0.5,
	0.5, -0.5,
}

// TriangleApp is the second step of the tutorial: a vertex buffer and a
// hardcoded shader pair drawing a single triangle.
type TriangleApp struct {
	width  int
	height int

	window *glfw.Window

	vao     uint32
	vbo     uint32
	program uint32
}

// Run runs the OpenGL program.
func (a *TriangleApp) Run() error {
	if err := a.initWindow(); err != nil {
		return fmt.Errorf("initWindow: %w", err)
	}
	defer a.cleanWindow()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("loading OpenGL functions: %w", err)
	}

	log.Printf("OpenGL version: %s", gl.GoStr(gl.GetString(gl.VERSION)))

	if err := a.createResources(); err != nil {
		return fmt.Errorf("createResources: %w", err)
	}
	defer a.cleanupGL()

	a.mainLoop()
	return nil
}

func (a *TriangleApp) initWindow() error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw.Init: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.False)

	window, err := glfw.CreateWindow(a.width, a.height, title, nil, nil)
	if err != nil {
		return fmt.Errorf("creating window: %w", err)
	}

	window.MakeContextCurrent()
	a.window = window
	return nil
}

func (a *TriangleApp) cleanWindow() {
	if a.window != nil {
		a.window.Destroy()
	}
	glfw.Terminate()
}

func (a *TriangleApp) createResources() error {
	gl.GenVertexArrays(1, &a.vao)
	gl.BindVertexArray(a.vao)

	gl.GenBuffers(1, &a.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, a.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, 4*len(triangleVertices),
		gl.Ptr(triangleVertices), gl.STATIC_DRAW)

	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, 2*4, gl.PtrOffset(0))

	vs, err := compileShader(gl.VERTEX_SHADER, "vertex", vertexShaderSource)
	if err != nil {
		return err
	}
	defer gl.DeleteShader(vs)

	fs, err := compileShader(gl.FRAGMENT_SHADER, "fragment", fragmentShaderSource)
	if err != nil {
		return err
	}
	defer gl.DeleteShader(fs)

	program := gl.CreateProgram()
	gl.AttachShader(program, vs)
	gl.AttachShader(program, fs)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLen)
		infoLog := make([]byte, logLen+1)
		gl.GetProgramInfoLog(program, logLen, nil, &infoLog[0])
		gl.DeleteProgram(program)
		return fmt.Errorf("linking shader program: %s", infoLog[:logLen])
	}

	gl.UseProgram(program)
	a.program = program
	return nil
}

func (a *TriangleApp) cleanupGL() {
	if a.program != 0 {
		gl.DeleteProgram(a.program)
	}
	if a.vbo != 0 {
		gl.DeleteBuffers(1, &a.vbo)
	}
	if a.vao != 0 {
		gl.DeleteVertexArrays(1, &a.vao)
	}
}

func (a *TriangleApp) mainLoop() {
	for !a.window.ShouldClose() {
		gl.Clear(gl.COLOR_BUFFER_BIT)

		gl.DrawArrays(gl.TRIANGLES, 0, 3)

		a.window.SwapBuffers()
		glfw.PollEvents()
	}
}

func compileShader(shaderType uint32, name, source string) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLen)
		infoLog := make([]byte, logLen+1)
		gl.GetShaderInfoLog(shader, logLen, nil, &infoLog[0])
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("compiling %s shader: %s", name, infoLog[:logLen])
	}

	return shader, nil
}
