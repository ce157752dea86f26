package ply

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"
	"os"

	"mesh2gltf/internal/diag"
	"mesh2gltf/internal/mesh"
)

// headerEnd terminates the text header; binary data starts right after it.
const headerEnd = "end_header\n"

// ParseFile reads a binary PLY file from disk and decodes it.
func ParseFile(path string, sink *diag.Sink) (*mesh.Mesh, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("ply: read %s: %w", path, err)
	}
	return Decode(data, sink)
}

// Decode parses the full contents of a binary PLY file. Per-line header
// diagnostics go to the sink, but any of them makes the file fatal: the body
// is never decoded with counts from a header that failed a check.
func Decode(data []byte, sink *diag.Sink) (*mesh.Mesh, error) {
	end := bytes.Index(data, []byte(headerEnd))
	if end < 0 {
		return nil, fmt.Errorf("ply: %s: couldn't find %q", sink.File(), headerEnd)
	}
	headerLen := end + len(headerEnd)

	before := sink.Count()
	h, done := parseHeader(data[:headerLen], sink)
	if !done || sink.Count() > before {
		return nil, fmt.Errorf("ply: %s: malformed header", sink.File())
	}
	return decodeBody(h, data[headerLen:], sink)
}

// decodeBody reads vertexCount fixed-size vertex records followed by
// faceCount variable-length face records, validating every declared count
// and index against the bytes actually available.
func decodeBody(h Header, body []byte, sink *diag.Sink) (*mesh.Mesh, error) {
	if h.VertexCount > math.MaxInt/vertexSize {
		return nil, fmt.Errorf("ply: %s: vertex count too large", sink.File())
	}
	vertexBytes := h.VertexCount * vertexSize
	if len(body) < vertexBytes {
		return nil, fmt.Errorf("ply: %s: expected %d bytes of vertex data but got %d",
			sink.File(), vertexBytes, len(body))
	}

	m := &mesh.Mesh{Vertices: make([][3]float32, h.VertexCount)}
	for i := range m.Vertices {
		off := i * vertexSize
		m.Vertices[i] = [3]float32{
			math.Float32frombits(binary.LittleEndian.Uint32(body[off:])),
			math.Float32frombits(binary.LittleEndian.Uint32(body[off+4:])),
			math.Float32frombits(binary.LittleEndian.Uint32(body[off+8:])),
		}
	}

	rest := body[vertexBytes:]
	face := make([]int32, 0, 255)
	for i := 0; i < h.FaceCount; i++ {
		if len(rest) < 1 {
			return nil, fmt.Errorf("ply: %s: expected %d faces but got %d",
				sink.File(), h.FaceCount, i)
		}
		n := int(rest[0])
		rest = rest[1:]

		face = face[:0]
		for j := 0; j < n; j++ {
			if len(rest) < 4 {
				return nil, fmt.Errorf("ply: %s: expected index but reached end of file", sink.File())
			}
			idx := binary.LittleEndian.Uint32(rest)
			rest = rest[4:]
			if idx > math.MaxInt32 || int(idx) >= h.VertexCount {
				return nil, fmt.Errorf("ply: %s: invalid index (%d)", sink.File(), idx)
			}
			face = append(face, int32(idx))
		}
		m.AppendFace(face...)
	}

	// Trailing bytes after the declared faces are suspicious but harmless.
	if len(rest) > 0 {
		sink.Notef("extra %d bytes at end of file", len(rest))
	}
	return m, nil
}
