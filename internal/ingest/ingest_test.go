package ingest

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, dir, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func trianglePLY() []byte {
	var buf bytes.Buffer
	buf.WriteString("ply\nformat binary_little_endian 1.0\n" +
		"element vertex 3\nproperty float x\nproperty float y\nproperty float z\n" +
		"element face 1\nproperty list uchar uint vertex_index\nend_header\n")
	for _, f := range []float32{0, 0, 0, 1, 0, 0, 1, 1, 0} {
		binary.Write(&buf, binary.LittleEndian, f)
	}
	buf.WriteByte(3)
	for _, idx := range []uint32{0, 1, 2} {
		binary.Write(&buf, binary.LittleEndian, idx)
	}
	return buf.Bytes()
}

func TestLoadDispatchesAndPreservesOrder(t *testing.T) {
	dir := t.TempDir()
	obj := writeFile(t, dir, "quad.obj",
		[]byte("v 0 0 0\nv 1 0 0\nv 1 1 0\nv 0 1 0\nf 1 2 3 4\n"))
	ply := writeFile(t, dir, "tri.ply", trianglePLY())

	var stderr bytes.Buffer
	meshes, err := Load([]string{obj, ply, obj}, &stderr)
	if err != nil {
		t.Fatalf("Load() = %v", err)
	}
	if len(meshes) != 3 {
		t.Fatalf("meshes = %d, want 3", len(meshes))
	}
	wantVerts := []int{4, 3, 4}
	for i, m := range meshes {
		if m.VertexCount() != wantVerts[i] {
			t.Errorf("mesh %d vertices = %d, want %d", i, m.VertexCount(), wantVerts[i])
		}
	}
	if stderr.Len() != 0 {
		t.Errorf("unexpected diagnostics: %q", stderr.String())
	}
}

func TestLoadUnknownExtensionIsFatal(t *testing.T) {
	dir := t.TempDir()
	stl := writeFile(t, dir, "model.stl", []byte("solid model\nendsolid model\n"))

	meshes, err := Load([]string{stl}, nil)
	if err == nil || !strings.Contains(err.Error(), "unknown file type") {
		t.Errorf("Load() = %v, want unknown file type error", err)
	}
	if meshes != nil {
		t.Errorf("meshes = %v, want nil", meshes)
	}
}

func TestLoadAbortDiscardsEarlierMeshes(t *testing.T) {
	dir := t.TempDir()
	good := writeFile(t, dir, "ok.obj", []byte("v 0 0 0\n"))
	bad := writeFile(t, dir, "bad.ply", []byte("not a ply at all\n"))

	meshes, err := Load([]string{good, bad}, nil)
	if err == nil {
		t.Fatal("Load() = nil error, want fatal")
	}
	if meshes != nil {
		t.Errorf("meshes = %v, want nil (no partial results)", meshes)
	}
}

func TestLoadUnreadableFile(t *testing.T) {
	meshes, err := Load([]string{filepath.Join(t.TempDir(), "missing.obj")}, nil)
	if err == nil {
		t.Fatal("Load() = nil error for missing file")
	}
	if meshes != nil {
		t.Errorf("meshes = %v, want nil", meshes)
	}
}

func TestLoadCaseSensitiveExtension(t *testing.T) {
	dir := t.TempDir()
	upper := writeFile(t, dir, "MODEL.OBJ", []byte("v 0 0 0\n"))

	_, err := Load([]string{upper}, nil)
	if err == nil || !strings.Contains(err.Error(), fmt.Sprintf("unknown file type: %s", upper)) {
		t.Errorf("Load() = %v, want unknown file type for uppercase extension", err)
	}
}
