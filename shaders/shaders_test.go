package shaders

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSplitsStages(t *testing.T) {
	src, err := Parse(strings.NewReader("#shader vertex\nA\n#shader fragment\nB\n"))
	require.NoError(t, err)
	assert.Equal(t, "A\n", src.Vertex)
	assert.Equal(t, "B\n", src.Fragment)
}

func TestParseEmptyInput(t *testing.T) {
	src, err := Parse(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, Source{}, src)
}

func TestParseSingleStage(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		vertex   string
		fragment string
	}{
		{
			name:   "only vertex",
			input:  "#shader vertex\nA\nB\n",
			vertex: "A\nB\n",
		},
		{
			name:     "only fragment",
			input:    "#shader fragment\nA\nB\n",
			fragment: "A\nB\n",
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			src, err := Parse(strings.NewReader(test.input))
			require.NoError(t, err)
			assert.Equal(t, test.vertex, src.Vertex)
			assert.Equal(t, test.fragment, src.Fragment)
		})
	}
}

func TestParseRepeatedMarkersAppend(t *testing.T) {
	input := "#shader vertex\nA\n#shader fragment\nB\n#shader vertex\nC\n"
	src, err := Parse(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, "A\nC\n", src.Vertex)
	assert.Equal(t, "B\n", src.Fragment)
}

func TestParseMarkerLinesAreNotSource(t *testing.T) {
	input := "#shader vertex\nA\n#shader vertex\nB\n"
	src, err := Parse(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, "A\nB\n", src.Vertex)
	assert.NotContains(t, src.Vertex, marker)
}

func TestParseBlankLinesBeforeFirstMarker(t *testing.T) {
	src, err := Parse(strings.NewReader("\n   \n#shader vertex\nA\n"))
	require.NoError(t, err)
	assert.Equal(t, "A\n", src.Vertex)
}

func TestParseSourceBeforeFirstMarker(t *testing.T) {
	_, err := Parse(strings.NewReader("A\n#shader vertex\nB\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "before any #shader marker")
}

func TestParseUnknownStage(t *testing.T) {
	_, err := Parse(strings.NewReader("#shader geometry\nA\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown stage")
}

func TestParseLineCounts(t *testing.T) {
	input := "#shader vertex\nA\nB\nC\n#shader fragment\nD\nE\n"
	src, err := Parse(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, 3, strings.Count(src.Vertex, "\n"))
	assert.Equal(t, 2, strings.Count(src.Fragment, "\n"))
}

func TestParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "basic.shader")
	writeFile(t, path, "#shader vertex\nA\n#shader fragment\nB\n")

	src, err := ParseFile(path)
	require.NoError(t, err)
	assert.Equal(t, "A\n", src.Vertex)
	assert.Equal(t, "B\n", src.Fragment)
}

func TestParseFileMissing(t *testing.T) {
	_, err := ParseFile(filepath.Join(t.TempDir(), "no-such.shader"))
	require.Error(t, err)
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestParseEmbeddedDefault(t *testing.T) {
	f, err := FS.Open("basic.shader")
	require.NoError(t, err)
	defer f.Close()

	src, err := Parse(f)
	require.NoError(t, err)
	assert.Contains(t, src.Vertex, "gl_Position")
	assert.Contains(t, src.Fragment, "u_Color")
	assert.NotContains(t, src.Vertex, "u_Color")
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}
