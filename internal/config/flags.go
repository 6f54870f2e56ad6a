package config

import (
	"flag"
	"io"
)

// newFlagSet binds the extraction flags directly onto cfg. Current field
// values become the flag defaults, so parsing over a profile-loaded
// config only replaces what the user actually passed.
func newFlagSet(cfg *Config) *flag.FlagSet {
	fs := flag.NewFlagSet("bin2obj", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.Int64Var(&cfg.Vertices.Start, "soff", cfg.Vertices.Start, "Offset the vertex data starts at")
	fs.Int64Var(&cfg.Vertices.End, "eoff", cfg.Vertices.End, "Offset the vertex data ends at (0 = end of file)")
	fs.Int64Var(&cfg.Vertices.Stride, "stri", cfg.Vertices.Stride, "Bytes to skip after each vertex record")
	fs.Float64Var(&cfg.Vertices.Scale, "vtxs", cfg.Vertices.Scale, "Scale applied to each vertex")
	fs.IntVar(&cfg.Vertices.Encoding, "vtyp", cfg.Vertices.Encoding, "Vertex encoding, 0 = float32, 1 = int16")

	fs.Int64Var(&cfg.Faces.Start, "fsof", cfg.Faces.Start, "Offset the face data starts at")
	fs.Int64Var(&cfg.Faces.End, "feof", cfg.Faces.End, "Offset the face data ends at")
	fs.Int64Var(&cfg.Faces.Stride, "fstr", cfg.Faces.Stride, "Bytes to skip after each face record")
	fs.IntVar(&cfg.Faces.Encoding, "ftyp", cfg.Faces.Encoding, "Face index encoding, 0 = uint16, 1 = uint32")
	fs.BoolVar(&cfg.Faces.Quads, "fquad", cfg.Faces.Quads, "Read quads rather than triangles")

	fs.StringVar(&cfg.Output.Path, "outp", cfg.Output.Path, "Path for the output file")
	fs.StringVar(&cfg.Output.Format, "format", cfg.Output.Format, "Output format, obj, gltf or glb")

	fs.BoolVar(&cfg.Verbose, "verb", cfg.Verbose, "Enable per-record debug output")
	fs.StringVar(&cfg.Logging.File, "logfile", cfg.Logging.File, "Mirror the log into this file")
	fs.StringVar(&cfg.Logging.Level, "loglevel", cfg.Logging.Level, "Log level, debug, info, warn or error")

	fs.StringVar(&cfg.Profile, "profile", cfg.Profile, "Load an extraction profile (YAML)")
	fs.StringVar(&cfg.SaveProfile, "saveprofile", cfg.SaveProfile, "Write the resolved profile to this path")

	return fs
}
