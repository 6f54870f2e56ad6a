// Package rawmesh recovers mesh geometry embedded at known byte offsets
// inside otherwise opaque binary files.
//
// Nothing is assumed about the surrounding container. The caller supplies
// the byte layout (region offsets, stride, record encodings) and rawmesh
// walks the stream, decodes whatever whole records fit and hands back
// vertex and face lists ready for export. Damaged records are repaired or
// flagged rather than aborting the run, so a partial rip of a truncated
// file still produces usable output.
package rawmesh

import (
	"io"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

// Vertex is a single decoded position record. Axis meaning is whatever
// the source file used; no handedness conversion is applied beyond the
// int16 component order documented on VertexI16.
type Vertex = mgl32.Vec3

// Face is one decoded index record. Indices are zero-based into the
// vertex list; for triangle layouts only the first three are meaningful.
//
// Degenerate marks a face that repeated an index as decoded, before any
// bounds clamping. Degenerate faces stay in the list so positions line up
// with the source, but the writers skip them.
type Face struct {
	Indices    [4]uint32
	Degenerate bool
}

// Mesh is the assembled result of the two extraction passes.
type Mesh struct {
	Name     string
	Vertices []Vertex
	Faces    []Face
	Quads    bool
}

// ElementsPerFace returns 4 for quad meshes, 3 otherwise.
func (m *Mesh) ElementsPerFace() int {
	if m.Quads {
		return 4
	}
	return 3
}

// Extractor decodes vertex and face regions out of a seekable byte
// stream. It keeps no state between calls beyond the stream position, so
// one Extractor runs both passes over the same source.
type Extractor struct {
	src io.ReadSeeker
	log *zap.Logger
}

// NewExtractor wraps src. A nil logger disables diagnostics.
func NewExtractor(src io.ReadSeeker, log *zap.Logger) *Extractor {
	if log == nil {
		log = zap.NewNop()
	}
	return &Extractor{src: src, log: log}
}
