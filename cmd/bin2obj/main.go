// bin2obj rips raw vertex and face data out of arbitrary binary files
// and writes the result back out as a mesh. The operator supplies the
// byte layout; the tool does the walking, decoding and repair.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"go.uber.org/zap"

	"github.com/hogsy/bin2obj/internal/config"
	"github.com/hogsy/bin2obj/internal/logger"
	"github.com/hogsy/bin2obj/pkg/rawmesh"
)

func main() {
	if len(os.Args) <= 1 {
		printUsage()
		return
	}

	cfg, err := config.Load(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		printUsage()
		return
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "bin2obj: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.File); err != nil {
		fmt.Fprintf(os.Stderr, "bin2obj: setting up logging: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("bin2obj",
		zap.String("input", cfg.Input),
		zap.String("output", cfg.Output.Path),
		zap.String("format", cfg.Output.Format))
	if cfg.Verbose {
		logger.Debug("resolved configuration\n" + spew.Sdump(cfg))
	}

	if err := run(cfg); err != nil {
		logger.Error("extraction failed", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`bin2obj - rips raw mesh data out of binary files

Usage:
  bin2obj <input> [options]

Options:
  -soff <offset>   Offset the vertex data starts at (default 0)
  -eoff <offset>   Offset the vertex data ends at (default end of file)
  -stri <bytes>    Bytes to skip after each vertex record
  -vtxs <scale>    Scale applied to each vertex (default 1.0)
  -vtyp <type>     Vertex encoding, 0 = float32, 1 = int16
  -fsof <offset>   Offset the face data starts at
  -feof <offset>   Offset the face data ends at
  -fstr <bytes>    Bytes to skip after each face record
  -ftyp <type>     Face index encoding, 0 = uint16, 1 = uint32
  -fquad           Read quads rather than triangles
  -outp <path>     Path for the output file (default dump.obj)
  -format <fmt>    Output format, obj, gltf or glb (default obj)
  -profile <path>      Load an extraction profile (YAML)
  -saveprofile <path>  Write the resolved profile after a successful run
  -logfile <path>  Mirror the log into this file
  -loglevel <lvl>  Log level, debug, info, warn or error
  -verb            Enable per-record debug output

Faces are only read when -feof is greater than -fsof.

Examples:
  bin2obj model.bin -soff 64 -eoff 4160 -outp model.obj
  bin2obj model.bin -soff 64 -fsof 8256 -feof 9024 -ftyp 0 -fquad
  bin2obj model.bin -profile layouts/model.yaml -format glb`)
}

func run(cfg *config.Config) error {
	// Resolve the whole layout up front; a bad selector should fail
	// before any file is touched.
	vlayout, err := cfg.VertexLayout()
	if err != nil {
		return err
	}
	flayout, err := cfg.FaceLayout()
	if err != nil {
		return err
	}
	if err := cfg.ValidateFormat(); err != nil {
		return err
	}

	mesh, err := extract(cfg.Input, vlayout, flayout)
	if err != nil {
		return err
	}
	mesh.Name = strings.TrimSuffix(filepath.Base(cfg.Output.Path), filepath.Ext(cfg.Output.Path))

	if err := writeMesh(mesh, cfg.Output.Path, cfg.Output.Format); err != nil {
		return err
	}
	logger.Info("wrote output",
		zap.String("path", cfg.Output.Path),
		zap.Int("vertices", len(mesh.Vertices)),
		zap.Int("faces", len(mesh.Faces)))

	if cfg.SaveProfile != "" {
		if err := cfg.SaveTo(cfg.SaveProfile); err != nil {
			return fmt.Errorf("saving profile: %w", err)
		}
		logger.Info("saved profile", zap.String("path", cfg.SaveProfile))
	}

	return nil
}

// extract runs both passes over the input file.
func extract(path string, vlayout rawmesh.VertexLayout, flayout rawmesh.FaceLayout) (*rawmesh.Mesh, error) {
	in, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer in.Close()

	ex := rawmesh.NewExtractor(in, logger.Log)
	verts, err := ex.Vertices(vlayout)
	if err != nil {
		return nil, err
	}

	mesh := &rawmesh.Mesh{Vertices: verts, Quads: flayout.Quads}
	if flayout.Enabled() {
		mesh.Faces, err = ex.Faces(flayout, len(verts))
		if err != nil {
			return nil, err
		}
	}
	return mesh, nil
}

func writeMesh(mesh *rawmesh.Mesh, path, format string) error {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}

	switch format {
	case config.FormatOBJ:
		err = mesh.WriteOBJ(out)
	case config.FormatGLTF:
		err = mesh.WriteGLTF(out)
	case config.FormatGLB:
		err = mesh.WriteGLB(out)
	default:
		err = fmt.Errorf("unknown output format %q", format)
	}
	if err != nil {
		out.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}

	return out.Close()
}
