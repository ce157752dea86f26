package mesh

import (
	"math"
	"testing"
)

func TestAppendFaceKeepsInvariant(t *testing.T) {
	m := &Mesh{}
	m.AppendVertex(0, 0, 0)
	m.AppendVertex(1, 0, 0)
	m.AppendVertex(1, 1, 0)
	m.AppendVertex(0, 1, 0)
	m.AppendFace(0, 1, 2)
	m.AppendFace(0, 1, 2, 3)

	if err := m.Check(); err != nil {
		t.Fatalf("Check() = %v", err)
	}
	if m.FaceCount() != 2 || len(m.Indices) != 7 {
		t.Errorf("faces=%d indices=%d, want 2 and 7", m.FaceCount(), len(m.Indices))
	}
}

func TestCheckDetectsViolations(t *testing.T) {
	testCases := []struct {
		name string
		m    Mesh
	}{
		{
			name: "size sum mismatch",
			m:    Mesh{Vertices: [][3]float32{{0, 0, 0}}, Indices: []int32{0, 0}, FaceSizes: []int32{3}},
		},
		{
			name: "index out of range",
			m:    Mesh{Vertices: [][3]float32{{0, 0, 0}}, Indices: []int32{1, 0, 0}, FaceSizes: []int32{3}},
		},
		{
			name: "negative index",
			m:    Mesh{Vertices: [][3]float32{{0, 0, 0}}, Indices: []int32{-1, 0, 0}, FaceSizes: []int32{3}},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.m.Check(); err == nil {
				t.Error("Check() = nil, want error")
			}
		})
	}
}

func TestBounds(t *testing.T) {
	m := &Mesh{}
	m.AppendVertex(-1, 2, 0.5)
	m.AppendVertex(3, -4, 0)

	min, max := m.Bounds()
	wantMin := [3]float64{-1, -4, 0}
	wantMax := [3]float64{3, 2, 0.5}
	for k := 0; k < 3; k++ {
		if math.Abs(min[k]-wantMin[k]) > 1e-6 || math.Abs(max[k]-wantMax[k]) > 1e-6 {
			t.Fatalf("Bounds() = %v, %v; want %v, %v", min, max, wantMin, wantMax)
		}
	}
}

func TestBoundsEmpty(t *testing.T) {
	m := &Mesh{}
	min, max := m.Bounds()
	if !math.IsInf(min[0], 1) || !math.IsInf(max[0], -1) {
		t.Errorf("empty Bounds() = %v, %v; want +inf/-inf corners", min, max)
	}
}
