package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// Config holds output and archive-metadata settings.
type Config struct {
	// Archive
	Output           string  `json:"output"`
	ApplicationName  string  `json:"application_name"`
	SceneDescription string  `json:"scene_description"`
	ObjectName       string  `json:"object_name"`
	SampleRate       float64 `json:"sample_rate"`

	// Preview
	Preview     string `json:"preview"` // empty disables the preview render
	PreviewSize int    `json:"preview_size"`
	Supersample int    `json:"supersample"`
}

// Load reads a JSON config file and returns Config.
// Fields not set in the file keep their zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// Resolve fills in any empty fields with defaults.
// CLI flags take priority when non-zero/non-empty.
func (c *Config) Resolve(flags Flags) {
	// CLI flags override config file
	if flags.Output != "" {
		c.Output = flags.Output
	}
	if flags.ApplicationName != "" {
		c.ApplicationName = flags.ApplicationName
	}
	if flags.SceneDescription != "" {
		c.SceneDescription = flags.SceneDescription
	}
	if flags.ObjectName != "" {
		c.ObjectName = flags.ObjectName
	}
	if flags.SampleRate > 0 {
		c.SampleRate = flags.SampleRate
	}
	if flags.Preview != "" {
		c.Preview = flags.Preview
	}

	// Defaults
	if c.Output == "" {
		c.Output = "out.glb"
	}
	if c.ApplicationName == "" {
		c.ApplicationName = "mesh2gltf"
	}
	if c.SceneDescription == "" {
		c.SceneDescription = "An example mesh animation for Blender."
	}
	if c.ObjectName == "" {
		c.ObjectName = "exobj"
	}
	if c.SampleRate <= 0 {
		c.SampleRate = 24.0
	}
	if c.PreviewSize <= 0 {
		c.PreviewSize = 256
	}
	if c.Supersample <= 0 {
		c.Supersample = 2
	}
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	Output           string
	ApplicationName  string
	SceneDescription string
	ObjectName       string
	SampleRate       float64
	Preview          string
}
