package ingest

import (
	"fmt"
	"io"
	"path/filepath"

	"mesh2gltf/internal/diag"
	"mesh2gltf/internal/mesh"
	"mesh2gltf/internal/obj"
	"mesh2gltf/internal/ply"
)

// Load parses every input file in argument order and returns the meshes in
// the same order. Files are processed strictly one at a time. Any fatal
// parse error (or an unrecognized extension) aborts the whole run,
// discarding meshes already parsed; per-line diagnostics go to errOut and do
// not abort.
func Load(paths []string, errOut io.Writer) ([]*mesh.Mesh, error) {
	meshes := make([]*mesh.Mesh, 0, len(paths))
	for _, path := range paths {
		m, err := loadOne(path, errOut)
		if err != nil {
			return nil, err
		}
		meshes = append(meshes, m)
	}
	return meshes, nil
}

func loadOne(path string, errOut io.Writer) (*mesh.Mesh, error) {
	sink := diag.NewSink(path, errOut)
	switch filepath.Ext(path) {
	case ".ply":
		return ply.ParseFile(path, sink)
	case ".obj":
		return obj.ParseFile(path, sink)
	default:
		return nil, fmt.Errorf("unknown file type: %s", path)
	}
}
