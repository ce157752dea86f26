package export

import (
	"fmt"
	"strings"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"

	"mesh2gltf/internal/mesh"
)

// Params describes the archive-level metadata handed to the writer.
type Params struct {
	ApplicationName  string
	SceneDescription string
	ObjectName       string
	SampleRate       float64 // samples per second for the written sequence
}

// Archive serializes the ordered mesh list into a single self-describing
// glTF archive at path (.glb binary container, anything else as JSON glTF).
// Each mesh becomes one geometry sample node, in list order, under a root
// node named by params.ObjectName.
//
// glTF primitives are triangle lists, so faces are fan-triangulated here at
// the boundary; the in-memory Mesh keeps its per-face sizes.
func Archive(path string, params Params, meshes []*mesh.Mesh) error {
	doc := buildDocument(params, meshes)
	if strings.HasSuffix(path, ".glb") {
		if err := gltf.SaveBinary(doc, path); err != nil {
			return fmt.Errorf("export: write %s: %w", path, err)
		}
		return nil
	}
	// JSON glTF has no binary chunk; embed buffers as data URIs so the
	// archive stays a single self-describing file.
	for _, b := range doc.Buffers {
		b.EmbeddedResource()
	}
	if err := gltf.Save(doc, path); err != nil {
		return fmt.Errorf("export: write %s: %w", path, err)
	}
	return nil
}

func buildDocument(params Params, meshes []*mesh.Mesh) *gltf.Document {
	doc := gltf.NewDocument()
	doc.Asset.Generator = params.ApplicationName
	doc.Extras = map[string]any{
		"description": params.SceneDescription,
		"sampleRate":  params.SampleRate,
	}

	root := &gltf.Node{Name: params.ObjectName}
	doc.Nodes = append(doc.Nodes, root)
	rootIdx := uint32(len(doc.Nodes) - 1)
	doc.Scenes[0].Nodes = append(doc.Scenes[0].Nodes, rootIdx)

	for i, m := range meshes {
		node := &gltf.Node{Name: fmt.Sprintf("sample.%03d", i)}
		if gm := writeMesh(doc, fmt.Sprintf("%s.%03d", params.ObjectName, i), m); gm != nil {
			doc.Meshes = append(doc.Meshes, gm)
			node.Mesh = gltf.Index(uint32(len(doc.Meshes) - 1))
		}
		doc.Nodes = append(doc.Nodes, node)
		root.Children = append(root.Children, uint32(len(doc.Nodes)-1))
	}
	return doc
}

// writeMesh returns nil for a sample with no triangles; the sample node is
// still emitted so list order survives in the archive.
func writeMesh(doc *gltf.Document, name string, m *mesh.Mesh) *gltf.Mesh {
	indices := triangulate(m)
	if len(m.Vertices) == 0 || len(indices) == 0 {
		return nil
	}
	pos := modeler.WritePosition(doc, m.Vertices)
	idx := modeler.WriteIndices(doc, indices)
	return &gltf.Mesh{
		Name: name,
		Primitives: []*gltf.Primitive{{
			Indices:    gltf.Index(idx),
			Attributes: map[string]uint32{gltf.POSITION: pos},
			Extras:     map[string]any{"meshtype": "polymesh", "subdivisionSurface": false},
		}},
	}
}

// triangulate fans every face around its first vertex. Triangles pass
// through unchanged, a quad becomes 0-1-2 / 0-2-3, and degenerate faces of
// fewer than three vertices emit nothing.
func triangulate(m *mesh.Mesh) []uint32 {
	var out []uint32
	off := 0
	for _, size := range m.FaceSizes {
		n := int(size)
		for t := 2; t < n; t++ {
			out = append(out,
				uint32(m.Indices[off]),
				uint32(m.Indices[off+t-1]),
				uint32(m.Indices[off+t]))
		}
		off += n
	}
	return out
}
