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

func main() {
	app := &WindowApp{
		width:  640,
		height: 480,
	}
	if err := app.Run(); err != nil {
		log.Fatalf("ERROR: %s", err)
	}
}

// WindowApp is the first step of the tutorial: a window with an OpenGL
// context which gets cleared every frame until the user closes it.
type WindowApp struct {
	width  int
	height int

	window *glfw.Window
}

// Run runs the OpenGL program.
func (a *WindowApp) Run() error {
	if err := a.initWindow(); err != nil {
		return fmt.Errorf("initWindow: %w", err)
	}
	defer a.cleanWindow()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("loading OpenGL functions: %w", err)
	}

	log.Printf("OpenGL version: %s", gl.GoStr(gl.GetString(gl.VERSION)))

	a.mainLoop()
	return nil
}

func (a *WindowApp) initWindow() error {
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

func (a *WindowApp) cleanWindow() {
	if a.window != nil {
		a.window.Destroy()
	}
	glfw.Terminate()
}

func (a *WindowApp) mainLoop() {
	gl.ClearColor(0.1, 0.1, 0.1, 1.0)

	for !a.window.ShouldClose() {
		gl.Clear(gl.COLOR_BUFFER_BIT)

		a.window.SwapBuffers()
		glfw.PollEvents()
	}
}
