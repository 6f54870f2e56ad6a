// Package config resolves everything one extraction run needs, with
// priority: built-in defaults < profile file < command-line flags.
package config

import (
	"fmt"

	"github.com/hogsy/bin2obj/pkg/rawmesh"
)

// Config holds all settings for a run. The yaml tags define the profile
// format; fields tagged "-" are per-invocation plumbing that never
// belongs in a profile.
type Config struct {
	// Input is the file to pull geometry out of. It comes from the
	// first positional argument.
	Input string `yaml:"-"`

	Output   OutputConfig  `yaml:"output"`
	Vertices VertexConfig  `yaml:"vertices"`
	Faces    FaceConfig    `yaml:"faces"`
	Logging  LoggingConfig `yaml:"logging"`

	Profile     string `yaml:"-"`
	SaveProfile string `yaml:"-"`
	Verbose     bool   `yaml:"-"`
}

// OutputConfig names the output file and its format.
type OutputConfig struct {
	Path   string `yaml:"path"`
	Format string `yaml:"format"` // obj, gltf or glb
}

// VertexConfig describes the vertex region of the input.
type VertexConfig struct {
	Start    int64   `yaml:"start"`
	End      int64   `yaml:"end"` // 0 = read to end of stream
	Stride   int64   `yaml:"stride"`
	Scale    float64 `yaml:"scale"`
	Encoding int     `yaml:"encoding"` // 0 = float32, 1 = int16
}

// FaceConfig describes the face region of the input. Faces are only
// read when End > Start.
type FaceConfig struct {
	Start    int64 `yaml:"start"`
	End      int64 `yaml:"end"`
	Stride   int64 `yaml:"stride"`
	Encoding int   `yaml:"encoding"` // 0 = uint16, 1 = uint32
	Quads    bool  `yaml:"quads"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// Output formats.
const (
	FormatOBJ  = "obj"
	FormatGLTF = "gltf"
	FormatGLB  = "glb"
)

// Default returns the configuration used when nothing else is given:
// float32 vertices from offset 0 to end of file, uint32 faces with no
// region configured, OBJ output to dump.obj.
func Default() *Config {
	return &Config{
		Output: OutputConfig{
			Path:   "dump.obj",
			Format: FormatOBJ,
		},
		Vertices: VertexConfig{
			Scale:    1.0,
			Encoding: 0,
		},
		Faces: FaceConfig{
			Encoding: 1,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// VertexLayout converts the vertex section for the extractor, validating
// the encoding selector.
func (c *Config) VertexLayout() (rawmesh.VertexLayout, error) {
	enc, err := rawmesh.ParseVertexEncoding(c.Vertices.Encoding)
	if err != nil {
		return rawmesh.VertexLayout{}, err
	}
	return rawmesh.VertexLayout{
		StartOffset: c.Vertices.Start,
		EndOffset:   c.Vertices.End,
		Stride:      c.Vertices.Stride,
		Scale:       float32(c.Vertices.Scale),
		Encoding:    enc,
	}, nil
}

// FaceLayout converts the face section for the extractor, validating the
// encoding selector.
func (c *Config) FaceLayout() (rawmesh.FaceLayout, error) {
	enc, err := rawmesh.ParseFaceEncoding(c.Faces.Encoding)
	if err != nil {
		return rawmesh.FaceLayout{}, err
	}
	return rawmesh.FaceLayout{
		StartOffset: c.Faces.Start,
		EndOffset:   c.Faces.End,
		Stride:      c.Faces.Stride,
		Encoding:    enc,
		Quads:       c.Faces.Quads,
	}, nil
}

// ValidateFormat checks the output format selector.
func (c *Config) ValidateFormat() error {
	switch c.Output.Format {
	case FormatOBJ, FormatGLTF, FormatGLB:
		return nil
	default:
		return fmt.Errorf("unknown output format %q (want obj, gltf or glb)", c.Output.Format)
	}
}
