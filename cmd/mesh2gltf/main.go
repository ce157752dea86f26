package main

import (
	"flag"
	"fmt"
	"os"

	"mesh2gltf/internal/config"
	"mesh2gltf/internal/export"
	"mesh2gltf/internal/ingest"
	"mesh2gltf/internal/preview"
)

func main() {
	// CLI flags
	configFile := flag.String("config", "", "Path to config.json file")
	output := flag.String("out", "", "Output archive path, .glb or .gltf (default: out.glb)")
	appName := flag.String("app", "", "Application name written to the archive")
	desc := flag.String("desc", "", "Scene description written to the archive")
	objName := flag.String("name", "", "Object name for the sample hierarchy (default: exobj)")
	fps := flag.Float64("fps", 0, "Sample rate in samples/sec (default: 24)")
	previewPath := flag.String("preview", "", "Also render a WebP preview to this path")

	flag.Parse()

	if flag.NArg() == 0 {
		fmt.Fprintf(os.Stderr, "usage: %s [flags] file.ply|file.obj ...\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(2)
	}

	// Load config
	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	// CLI flags override config file
	cfg.Resolve(config.Flags{
		Output:           *output,
		ApplicationName:  *appName,
		SceneDescription: *desc,
		ObjectName:       *objName,
		SampleRate:       *fps,
		Preview:          *previewPath,
	})

	// Ingest all inputs before any output is written. A fatal error in any
	// file aborts the run, including meshes already parsed.
	meshes, err := ingest.Load(flag.Args(), os.Stderr)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	for i, m := range meshes {
		fmt.Printf("  [%d] %s: %d vertices, %d faces\n", i, flag.Arg(i), m.VertexCount(), m.FaceCount())
	}

	params := export.Params{
		ApplicationName:  cfg.ApplicationName,
		SceneDescription: cfg.SceneDescription,
		ObjectName:       cfg.ObjectName,
		SampleRate:       cfg.SampleRate,
	}
	if err := export.Archive(cfg.Output, params, meshes); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Printf("Archive: %s (%d samples)\n", cfg.Output, len(meshes))

	if cfg.Preview != "" {
		opts := preview.Options{Size: cfg.PreviewSize, Supersample: cfg.Supersample}
		if err := preview.SaveWebP(cfg.Preview, meshes, opts); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		fmt.Printf("Preview: %s\n", cfg.Preview)
	}
}
