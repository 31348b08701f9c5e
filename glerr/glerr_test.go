package glerr

import (
	"testing"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/stretchr/testify/assert"
)

func TestErrorName(t *testing.T) {
	tests := []struct {
		code uint32
		name string
	}{
		{gl.INVALID_ENUM, "GL_INVALID_ENUM"},
		{gl.INVALID_VALUE, "GL_INVALID_VALUE"},
		{gl.INVALID_OPERATION, "GL_INVALID_OPERATION"},
		{gl.INVALID_FRAMEBUFFER_OPERATION, "GL_INVALID_FRAMEBUFFER_OPERATION"},
		{gl.OUT_OF_MEMORY, "GL_OUT_OF_MEMORY"},
		{0xbeef, "0xbeef"},
	}
	for _, test := range tests {
		assert.Equal(t, test.name, ErrorName(test.code))
	}
}
