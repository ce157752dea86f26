package mesh

import (
	"fmt"
	"math"
)

// Mesh holds the geometry ingested from one input file: vertex positions,
// a flat 0-based index buffer, and the number of indices belonging to each
// face. Vertex order defines the indices the faces reference. A Mesh is
// populated by exactly one parser and never mutated afterwards.
type Mesh struct {
	Vertices  [][3]float32 // x, y, z per vertex
	Indices   []int32      // flat, concatenated across faces in face order
	FaceSizes []int32      // indices consumed by each face; sums to len(Indices)
}

func (m *Mesh) AppendVertex(x, y, z float32) {
	m.Vertices = append(m.Vertices, [3]float32{x, y, z})
}

// AppendFace records one face of len(indices) vertices. Indices are 0-based
// and must already be validated by the caller.
func (m *Mesh) AppendFace(indices ...int32) {
	m.FaceSizes = append(m.FaceSizes, int32(len(indices)))
	m.Indices = append(m.Indices, indices...)
}

func (m *Mesh) VertexCount() int {
	return len(m.Vertices)
}

func (m *Mesh) FaceCount() int {
	return len(m.FaceSizes)
}

// Check verifies the structural invariants: face sizes sum to the index
// count and every index references an existing vertex.
func (m *Mesh) Check() error {
	var sum int64
	for _, n := range m.FaceSizes {
		if n < 0 {
			return fmt.Errorf("mesh: negative face size %d", n)
		}
		sum += int64(n)
	}
	if sum != int64(len(m.Indices)) {
		return fmt.Errorf("mesh: face sizes sum to %d but %d indices present", sum, len(m.Indices))
	}
	for _, idx := range m.Indices {
		if idx < 0 || int(idx) >= len(m.Vertices) {
			return fmt.Errorf("mesh: index %d out of range for %d vertices", idx, len(m.Vertices))
		}
	}
	return nil
}

// Bounds returns the axis-aligned bounding box of all vertices. An empty
// mesh yields +inf/-inf corners, matching how callers fold boxes together.
func (m *Mesh) Bounds() (min, max [3]float64) {
	min = [3]float64{math.Inf(1), math.Inf(1), math.Inf(1)}
	max = [3]float64{math.Inf(-1), math.Inf(-1), math.Inf(-1)}
	for _, v := range m.Vertices {
		for k := 0; k < 3; k++ {
			f := float64(v[k])
			if f < min[k] {
				min[k] = f
			}
			if f > max[k] {
				max[k] = f
			}
		}
	}
	return min, max
}
