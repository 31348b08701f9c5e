// Package shaders loads annotated GLSL files which carry the vertex and the
// fragment stage together in a single source file.
package shaders

import (
	"bufio"
	"embed"
	"fmt"
	"io"
	"os"
	"strings"
)

// FS embeds the default annotated shader drawn by the tutorial binary.
//
//go:embed basic.shader
var FS embed.FS

// marker starts a line which switches the stage the following lines belong
// to, e.g. "#shader vertex".
const marker = "#shader"

// Source holds the two stages split out of one annotated shader file. It is
// built once by Parse and handed straight to compilation.
type Source struct {
	Vertex   string
	Fragment string
}

// Parse splits an annotated GLSL stream into its vertex and fragment stages.
//
// A line containing "#shader" selects the stage it names; every following
// line up to the next marker is appended to that stage, newline included.
// Repeated markers for the same stage keep appending to it. Non-blank source
// before the first marker and markers naming an unknown stage are errors.
func Parse(r io.Reader) (Source, error) {
	var vertex, fragment strings.Builder
	var current *strings.Builder

	scanner := bufio.NewScanner(r)
	for lineNo := 1; scanner.Scan(); lineNo++ {
		line := scanner.Text()

		if strings.Contains(line, marker) {
			switch {
			case strings.Contains(line, "vertex"):
				current = &vertex
			case strings.Contains(line, "fragment"):
				current = &fragment
			default:
				return Source{}, fmt.Errorf(
					"line %d: %s marker with unknown stage: %q", lineNo, marker, line)
			}
			continue
		}

		if current == nil {
			if strings.TrimSpace(line) == "" {
				continue
			}
			return Source{}, fmt.Errorf(
				"line %d: shader source before any %s marker", lineNo, marker)
		}

		current.WriteString(line)
		current.WriteByte('\n')
	}
	if err := scanner.Err(); err != nil {
		return Source{}, fmt.Errorf("reading shader source: %w", err)
	}

	return Source{Vertex: vertex.String(), Fragment: fragment.String()}, nil
}

// ParseFile reads and splits the annotated shader file at path.
func ParseFile(path string) (Source, error) {
	f, err := os.Open(path)
	if err != nil {
		return Source{}, fmt.Errorf("opening shader file: %w", err)
	}
	defer f.Close()

	src, err := Parse(f)
	if err != nil {
		return Source{}, fmt.Errorf("%s: %w", path, err)
	}
	return src, nil
}
