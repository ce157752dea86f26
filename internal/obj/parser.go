package obj

import (
	"fmt"
	"os"
	"strings"

	"mesh2gltf/internal/diag"
	"mesh2gltf/internal/mesh"
	"mesh2gltf/internal/scan"
)

// ParseFile reads a Wavefront OBJ file from disk and parses it.
func ParseFile(path string, sink *diag.Sink) (*mesh.Mesh, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("obj: read %s: %w", path, err)
	}
	return Decode(data, sink), nil
}

// Decode parses a text OBJ buffer. The parser is tolerant: malformed vertex
// or face lines are reported to the sink and skipped, and lines that are
// neither vertices nor faces (comments, groups, materials) are ignored
// outright. Face indices are 1-based in the file and validated against the
// vertices seen so far, then stored 0-based.
func Decode(data []byte, sink *diag.Sink) *mesh.Mesh {
	m := &mesh.Mesh{}
	sc := scan.New(data)
	for {
		line, ok := sc.Next()
		if !ok {
			break
		}
		if line == "" {
			continue
		}
		switch {
		case strings.HasPrefix(line, "v "):
			var x, y, z float32
			if n, _ := fmt.Sscanf(line, "v %f %f %f", &x, &y, &z); n == 3 {
				m.AppendVertex(x, y, z)
			} else {
				sink.Reportf(sc.Line(), "not a recognized vertex format")
			}
		case strings.HasPrefix(line, "f "):
			parseFace(line, sc.Line(), m, sink)
		}
	}
	return m
}

// parseFace tries the quad pattern before the triangle pattern, so a line
// with four index fields is always a quad even though the triangle pattern
// would also match its first three fields.
func parseFace(line string, lineNo int, m *mesh.Mesh, sink *diag.Sink) {
	vcount := m.VertexCount()
	var i, j, k, l int32
	if n, _ := fmt.Sscanf(line, "f %d %d %d %d", &i, &j, &k, &l); n == 4 {
		if indexOK(i, vcount) && indexOK(j, vcount) && indexOK(k, vcount) && indexOK(l, vcount) {
			m.AppendFace(i-1, j-1, k-1, l-1)
		} else {
			sink.Reportf(lineNo, "invalid index")
		}
		return
	}
	if n, _ := fmt.Sscanf(line, "f %d %d %d", &i, &j, &k); n == 3 {
		if indexOK(i, vcount) && indexOK(j, vcount) && indexOK(k, vcount) {
			m.AppendFace(i-1, j-1, k-1)
		} else {
			sink.Reportf(lineNo, "invalid index")
		}
		return
	}
	sink.Reportf(lineNo, "not a valid index format")
}

// indexOK reports whether a 1-based face index references a vertex already
// declared. Faces may not reference vertices that appear later in the file.
func indexOK(idx int32, vertexCount int) bool {
	return idx > 0 && int(idx) <= vertexCount
}
