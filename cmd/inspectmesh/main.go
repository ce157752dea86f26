package main

import (
	"fmt"
	"os"

	"mesh2gltf/internal/ingest"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, "usage: %s file.ply|file.obj ...\n", os.Args[0])
		os.Exit(2)
	}

	meshes, err := ingest.Load(os.Args[1:], os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	for i, m := range meshes {
		fmt.Printf("Mesh[%d] %s: vertices=%d, faces=%d, indices=%d\n",
			i, os.Args[1+i], m.VertexCount(), m.FaceCount(), len(m.Indices))
		if m.VertexCount() == 0 {
			continue
		}
		min, max := m.Bounds()
		fmt.Printf("  bbox min=(%.3f, %.3f, %.3f) max=(%.3f, %.3f, %.3f)\n",
			min[0], min[1], min[2], max[0], max[1], max[2])
		if err := m.Check(); err != nil {
			fmt.Printf("  INVARIANT VIOLATION: %v\n", err)
		}
	}
}
