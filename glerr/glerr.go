// Package glerr reports pending OpenGL errors by their symbolic names.
//
// OpenGL queues errors instead of returning them, so a check only blames the
// right call when the queue was empty beforehand. Drain before a suspect
// block, Check after it.
package glerr

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Drain empties the OpenGL error queue so that a later Check only sees errors
// raised in between.
func Drain() {
	for gl.GetError() != gl.NO_ERROR {
	}
}

// Check returns an error naming every code pending in the OpenGL error queue,
// or nil when the queue is empty. The context names the step being checked.
func Check(context string) error {
	var names []string
	for code := gl.GetError(); code != gl.NO_ERROR; code = gl.GetError() {
		names = append(names, ErrorName(code))
	}
	if len(names) == 0 {
		return nil
	}
	return fmt.Errorf("%s: OpenGL errors: %s", context, strings.Join(names, ", "))
}

// ErrorName translates a glGetError code into its symbolic constant name.
// Unknown codes come back in hex.
func ErrorName(code uint32) string {
	switch code {
	case gl.INVALID_ENUM:
		return "GL_INVALID_ENUM"
	case gl.INVALID_VALUE:
		return "GL_INVALID_VALUE"
	case gl.INVALID_OPERATION:
		return "GL_INVALID_OPERATION"
	case gl.INVALID_FRAMEBUFFER_OPERATION:
		return "GL_INVALID_FRAMEBUFFER_OPERATION"
	case gl.OUT_OF_MEMORY:
		return "GL_OUT_OF_MEMORY"
	default:
		return fmt.Sprintf("0x%04x", code)
	}
}
