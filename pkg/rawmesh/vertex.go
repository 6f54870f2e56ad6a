package rawmesh

import (
	"encoding/binary"
	"fmt"
	"math"

	"go.uber.org/zap"
)

// VertexLayout describes where vertex records live in the source and how
// to decode them.
type VertexLayout struct {
	// StartOffset is the absolute offset of the first record.
	StartOffset int64
	// EndOffset bounds the region when positive. Zero means read until
	// the stream runs out.
	EndOffset int64
	// Stride is extra bytes to skip after each record.
	Stride int64
	// Scale multiplies every decoded component.
	Scale float32
	// Encoding selects the record format.
	Encoding VertexEncoding
}

var vertexComponents = [3]string{"x", "y", "z"}

// Vertices reads position records from the layout's region until the end
// offset is passed, the stream runs out, or a stride skip fails. Each
// record is scaled and has NaN components repaired before it is appended,
// so the returned slice is always safe to export. Failure to reach the
// start of the region is the only error.
func (e *Extractor) Vertices(layout VertexLayout) ([]Vertex, error) {
	size := layout.Encoding.RecordSize()
	if size == 0 {
		return nil, fmt.Errorf("%w: vertex type %d", ErrUnknownEncoding, int(layout.Encoding))
	}

	cur := newCursor(e.src)
	if err := cur.seekTo(layout.StartOffset); err != nil {
		return nil, fmt.Errorf("seeking to vertex region at %d: %w", layout.StartOffset, err)
	}

	e.log.Info("reading vertices",
		zap.Int64("start", layout.StartOffset),
		zap.Int64("end", layout.EndOffset),
		zap.Stringer("encoding", layout.Encoding))

	var verts []Vertex
	rec := make([]byte, size)
	for {
		if !cur.readFull(rec) {
			e.log.Debug("vertex data ran out", zap.Int64("offset", cur.pos()))
			break
		}

		v := decodeVertex(layout.Encoding, rec).Mul(layout.Scale)
		v = e.repairNaN(v, len(verts))
		verts = append(verts, v)

		e.log.Debug("vertex",
			zap.Int("index", len(verts)-1),
			zap.Float32("x", v.X()),
			zap.Float32("y", v.Y()),
			zap.Float32("z", v.Z()))

		// The record that straddles the end offset still counts; the
		// check runs after the append.
		if layout.EndOffset > 0 && cur.pos() >= layout.EndOffset {
			e.log.Debug("hit vertex end offset", zap.Int64("offset", cur.pos()))
			break
		}
		if !cur.skip(layout.Stride) {
			e.log.Debug("vertex stride seek failed", zap.Int64("offset", cur.pos()))
			break
		}
	}

	e.log.Info("vertices read", zap.Int("count", len(verts)))
	return verts, nil
}

// decodeVertex decodes one record. For VertexI16 the source triple
// (a, b, c) maps to x=a, y=c, z=b.
func decodeVertex(enc VertexEncoding, rec []byte) Vertex {
	if enc == VertexI16 {
		a := int16(binary.LittleEndian.Uint16(rec[0:2]))
		b := int16(binary.LittleEndian.Uint16(rec[2:4]))
		c := int16(binary.LittleEndian.Uint16(rec[4:6]))
		return Vertex{float32(a), float32(c), float32(b)}
	}
	return Vertex{
		math.Float32frombits(binary.LittleEndian.Uint32(rec[0:4])),
		math.Float32frombits(binary.LittleEndian.Uint32(rec[4:8])),
		math.Float32frombits(binary.LittleEndian.Uint32(rec[8:12])),
	}
}

// repairNaN zeroes NaN components, reporting which ones were touched.
// Runs after scaling, so a NaN scale factor is caught too.
func (e *Extractor) repairNaN(v Vertex, index int) Vertex {
	var repaired []string
	for i := range v {
		if math.IsNaN(float64(v[i])) {
			v[i] = 0
			repaired = append(repaired, vertexComponents[i])
		}
	}
	if len(repaired) > 0 {
		e.log.Warn("vertex has NaN components, defaulting to 0.0",
			zap.Int("vertex", index),
			zap.Strings("components", repaired))
	}
	return v
}
