package ply

import (
	"fmt"

	"mesh2gltf/internal/diag"
	"mesh2gltf/internal/scan"
)

// Header holds the counts declared by a PLY header. The counts are trusted
// only after the body decoder has checked them against the bytes actually
// present in the file.
type Header struct {
	VertexCount int
	FaceCount   int
}

// vertexSize is the fixed byte width of one vertex record: three
// little-endian float32 fields (x, y, z).
const vertexSize = 12

// headerState enumerates the fixed grammar of a supported PLY header. Only
// binary little-endian 1.0 files with an xyz-float vertex element followed by
// a uchar/uint vertex_index face list are accepted.
type headerState int

const (
	expectMagic headerState = iota
	expectFormat
	expectVertexElement
	expectVertexX
	expectVertexY
	expectVertexZ
	expectFaceElement
	expectFaceVertexIndex
	expectEndHeader
	expectData // terminal
)

// step consumes one header line. The state advances only when the line
// matches what the current state expects; a mismatch is reported to the sink
// and leaves the state unchanged so later lines still get checked.
func (st headerState) step(line string, lineNo int, h *Header, sink *diag.Sink) headerState {
	switch st {
	case expectMagic:
		if line == "ply" {
			return expectFormat
		}
		sink.Reportf(lineNo, "not a PLY file")
	case expectFormat:
		if line == "format binary_little_endian 1.0" {
			return expectVertexElement
		}
		sink.Reportf(lineNo, "unsupported format")
	case expectVertexElement:
		if n, _ := fmt.Sscanf(line, "element vertex %d", &h.VertexCount); n == 1 && h.VertexCount >= 0 {
			return expectVertexX
		}
		sink.Reportf(lineNo, "unsupported vertex element")
	case expectVertexX:
		if line == "property float x" {
			return expectVertexY
		}
		sink.Reportf(lineNo, "unsupported vertex property")
	case expectVertexY:
		if line == "property float y" {
			return expectVertexZ
		}
		sink.Reportf(lineNo, "unsupported vertex property")
	case expectVertexZ:
		if line == "property float z" {
			return expectFaceElement
		}
		sink.Reportf(lineNo, "unsupported vertex property")
	case expectFaceElement:
		if n, _ := fmt.Sscanf(line, "element face %d", &h.FaceCount); n == 1 && h.FaceCount >= 0 {
			return expectFaceVertexIndex
		}
		sink.Reportf(lineNo, "unsupported face element")
	case expectFaceVertexIndex:
		if line == "property list uchar uint vertex_index" {
			return expectEndHeader
		}
		sink.Reportf(lineNo, "unsupported vertex_index property")
	case expectEndHeader:
		if line == "end_header" {
			return expectData
		}
		sink.Reportf(lineNo, "unsupported field")
	case expectData:
		// The terminator must be the last header line; anything after it
		// means binary data leaked into the header region.
		sink.Reportf(lineNo, "missing newline after end_header")
	}
	return st
}

// parseHeader runs the state machine over every header line and reports all
// mismatches in one pass. done is true only if the terminal state was
// reached; the caller must also treat any reported diagnostic as fatal
// before decoding the body.
func parseHeader(header []byte, sink *diag.Sink) (h Header, done bool) {
	st := expectMagic
	sc := scan.New(header)
	for {
		line, ok := sc.Next()
		if !ok {
			break
		}
		st = st.step(line, sc.Line(), &h, sink)
	}
	return h, st == expectData
}
