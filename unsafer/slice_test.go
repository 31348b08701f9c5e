package unsafer

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAsBytes(t *testing.T) {
	input := []uint32{0x01020304, 0xcafebabe}

	b := AsBytes(input)
	require.Len(t, b, 8)
	assert.Equal(t, uint32(0x01020304), binary.NativeEndian.Uint32(b[:4]))
	assert.Equal(t, uint32(0xcafebabe), binary.NativeEndian.Uint32(b[4:]))
}

func TestAsBytesAliasesInput(t *testing.T) {
	input := []uint32{0}

	b := AsBytes(input)
	b[0] = 0xff
	assert.NotEqual(t, uint32(0), input[0])
}

func TestAsBytesEmpty(t *testing.T) {
	assert.Nil(t, AsBytes([]float32(nil)))
	assert.Nil(t, AsBytes([]float32{}))
}
