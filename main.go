package main

import (
	"flag"
	"fmt"
	"log"
	"runtime"

	"opengl-tutorial/glerr"
	"opengl-tutorial/shaders"
	"opengl-tutorial/unsafer"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

func init() {
	// This is needed to arrange that main() runs on main thread.
	// See documentation for functions that are only allowed to be called
	// from the main thread.
	runtime.LockOSThread()

	flag.BoolVar(&args.debug, "debug", false,
		"Check the OpenGL error queue after every setup step and frame")
	flag.StringVar(&args.shader, "shader", "",
		"Path to an annotated shader file which overrides the built-in one")
}

var args struct {
	debug  bool
	shader string
}

func main() {
	flag.Parse()

	app := &QuadApp{
		width:      640,
		height:     480,
		debug:      args.debug,
		shaderPath: args.shader,
		color:      [3]float32{0.0, 0.0, 1.0},
		increment:  colorSteps,
	}
	if err := app.Run(); err != nil {
		log.Fatalf("ERROR: %s", err)
	}
}

// quadVertices is the static quad, two floats per vertex in normalized
// device coordinates.
var quadVertices = []float32{
	0.0, 0.0,
	0.5, 0.0,
	0.5, 0.5,
	0.0, 0.5,
}

// quadIndices picks the quad's two triangles out of its four vertices.
var quadIndices = []uint32{
	0, 1, 2,
	0, 3, 2,
}

// colorSteps is the per-frame step of each RGB channel of u_Color. A channel
// walks back and forth between 0 and 1 at its own pace.
var colorSteps = [3]float32{0.05, 0.01, 0.03}

// QuadApp draws a quad with an animated uniform color until its window is
// closed.
type QuadApp struct {
	width  int
	height int

	// debug makes every setup step and every frame check the OpenGL error
	// queue and fail loudly instead of rendering garbage.
	debug bool

	// shaderPath, when set, replaces the embedded annotated shader file.
	shaderPath string

	window *glfw.Window

	vao     uint32
	vbo     uint32
	ibo     uint32
	program uint32

	// colorLoc is the location of the u_Color uniform in program.
	colorLoc int32

	color     [3]float32
	increment [3]float32
}

// Run runs the OpenGL program.
func (a *QuadApp) Run() error {
	if err := a.initWindow(); err != nil {
		return fmt.Errorf("initWindow: %w", err)
	}
	defer a.cleanWindow()

	if err := a.initOpenGL(); err != nil {
		return fmt.Errorf("initOpenGL: %w", err)
	}
	defer a.cleanupGL()

	if err := a.createBuffers(); err != nil {
		return fmt.Errorf("createBuffers: %w", err)
	}

	if err := a.createProgram(); err != nil {
		return fmt.Errorf("createProgram: %w", err)
	}

	if err := a.mainLoop(); err != nil {
		return fmt.Errorf("mainLoop: %w", err)
	}

	return nil
}

func (a *QuadApp) initWindow() error {
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

	// Run as fast as the loop allows rather than waiting on vertical sync.
	glfw.SwapInterval(0)

	a.window = window
	return nil
}

func (a *QuadApp) cleanWindow() {
	if a.window != nil {
		a.window.Destroy()
	}
	glfw.Terminate()
}

func (a *QuadApp) initOpenGL() error {
	if err := gl.Init(); err != nil {
		return fmt.Errorf("loading OpenGL functions: %w", err)
	}

	log.Printf("OpenGL version: %s", gl.GoStr(gl.GetString(gl.VERSION)))

	if a.debug {
		glerr.Drain()
	}
	return nil
}

func (a *QuadApp) cleanupGL() {
	if a.program != 0 {
		gl.DeleteProgram(a.program)
	}
	if a.ibo != 0 {
		gl.DeleteBuffers(1, &a.ibo)
	}
	if a.vbo != 0 {
		gl.DeleteBuffers(1, &a.vbo)
	}
	if a.vao != 0 {
		gl.DeleteVertexArrays(1, &a.vao)
	}
}

func (a *QuadApp) createBuffers() error {
	gl.GenVertexArrays(1, &a.vao)
	gl.BindVertexArray(a.vao)

	gl.GenBuffers(1, &a.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, a.vbo)
	vertexBytes := unsafer.AsBytes(quadVertices)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertexBytes), gl.Ptr(vertexBytes), gl.STATIC_DRAW)

	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, 2*4, gl.PtrOffset(0))

	gl.GenBuffers(1, &a.ibo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, a.ibo)
	indexBytes := unsafer.AsBytes(quadIndices)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indexBytes), gl.Ptr(indexBytes), gl.STATIC_DRAW)

	return a.checkGL("createBuffers")
}

func (a *QuadApp) createProgram() error {
	src, err := a.loadShaderSource()
	if err != nil {
		return err
	}

	vs, err := compileShader(gl.VERTEX_SHADER, "vertex", src.Vertex)
	if err != nil {
		return err
	}
	defer gl.DeleteShader(vs)

	fs, err := compileShader(gl.FRAGMENT_SHADER, "fragment", src.Fragment)
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
		infoLog := programInfoLog(program)
		gl.DeleteProgram(program)
		return fmt.Errorf("linking shader program: %s", infoLog)
	}

	gl.ValidateProgram(program)
	gl.UseProgram(program)
	a.program = program

	loc := gl.GetUniformLocation(program, gl.Str("u_Color\x00"))
	if loc == -1 {
		return fmt.Errorf("the shader program has no u_Color uniform")
	}
	a.colorLoc = loc
	gl.Uniform4f(loc, 0.5, 0.3, 0.8, 1.0)

	return a.checkGL("createProgram")
}

// loadShaderSource picks the annotated shader file: the one named with
// -shader, or the embedded default.
func (a *QuadApp) loadShaderSource() (shaders.Source, error) {
	if a.shaderPath != "" {
		return shaders.ParseFile(a.shaderPath)
	}

	f, err := shaders.FS.Open("basic.shader")
	if err != nil {
		return shaders.Source{}, fmt.Errorf("opening embedded shader: %w", err)
	}
	defer f.Close()

	return shaders.Parse(f)
}

func (a *QuadApp) mainLoop() error {
	log.Printf("main loop!\n")

	previousTime := glfw.GetTime()
	frameCount := 0

	for !a.window.ShouldClose() {
		if now := glfw.GetTime(); now-previousTime >= 1.0 {
			log.Printf("FPS: %d", frameCount)
			frameCount = 0
			previousTime = now
		}

		if err := a.drawFrame(); err != nil {
			return fmt.Errorf("error drawing a frame: %w", err)
		}
		frameCount++

		a.window.SwapBuffers()
		glfw.PollEvents()
	}

	return nil
}

func (a *QuadApp) drawFrame() error {
	if a.debug {
		glerr.Drain()
	}

	gl.Clear(gl.COLOR_BUFFER_BIT)

	a.advanceColor()
	gl.Uniform4f(a.colorLoc, a.color[0], a.color[1], a.color[2], 1.0)
	gl.DrawElements(gl.TRIANGLES, int32(len(quadIndices)), gl.UNSIGNED_INT, gl.PtrOffset(0))

	return a.checkGL("drawFrame")
}

// advanceColor steps every channel of the animated color, reversing a
// channel's direction once it leaves [0, 1].
func (a *QuadApp) advanceColor() {
	for i := range a.color {
		if a.color[i] > 1.0 {
			a.increment[i] = -colorSteps[i]
		} else if a.color[i] < 0.0 {
			a.increment[i] = colorSteps[i]
		}
		a.color[i] += a.increment[i]
	}
}

// checkGL reports pending OpenGL errors when running with -debug.
func (a *QuadApp) checkGL(step string) error {
	if !a.debug {
		return nil
	}
	return glerr.Check(step)
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

func programInfoLog(program uint32) string {
	var logLen int32
	gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLen)
	infoLog := make([]byte, logLen+1)
	gl.GetProgramInfoLog(program, logLen, nil, &infoLog[0])
	return string(infoLog[:logLen])
}

const title = "Hello World"
