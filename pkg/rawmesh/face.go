package rawmesh

import (
	"encoding/binary"
	"fmt"

	"go.uber.org/zap"
)

// FaceLayout describes where face index records live in the source and
// how to decode them.
type FaceLayout struct {
	// StartOffset is the absolute offset of the first record.
	StartOffset int64
	// EndOffset bounds the region. The region is only read at all when
	// EndOffset > StartOffset.
	EndOffset int64
	// Stride is extra bytes to skip after each record.
	Stride int64
	// Encoding selects the index width.
	Encoding FaceEncoding
	// Quads reads four indices per record instead of three.
	Quads bool
}

// Enabled reports whether the layout names a non-empty face region.
func (l FaceLayout) Enabled() bool {
	return l.EndOffset > l.StartOffset
}

// ElementsPerFace returns the number of indices in one record.
func (l FaceLayout) ElementsPerFace() int {
	if l.Quads {
		return 4
	}
	return 3
}

// ExpectedFaces returns how many whole records fit in the region, the
// upper bound the extraction loop runs to. Zero when the layout is
// disabled or its encoding unknown.
func (l FaceLayout) ExpectedFaces() int64 {
	es := l.Encoding.ElementSize()
	if es == 0 || !l.Enabled() {
		return 0
	}
	return (l.EndOffset - l.StartOffset) / (es * int64(l.ElementsPerFace()))
}

var faceElements = [4]string{"x", "y", "z", "w"}

// Faces reads index records from the layout's region. vertexCount bounds
// the valid index range: any index at or past it is clamped to 0, after
// the degeneracy check so that clamping never manufactures a degenerate
// face. The loop runs for as many whole records as fit in the region,
// stopping early if the cursor passes the end offset, the data runs out,
// or a stride skip fails. Failure to reach the start of the region is
// the only error.
func (e *Extractor) Faces(layout FaceLayout, vertexCount int) ([]Face, error) {
	if layout.Encoding.ElementSize() == 0 {
		return nil, fmt.Errorf("%w: face type %d", ErrUnknownEncoding, int(layout.Encoding))
	}
	if !layout.Enabled() {
		return nil, nil
	}

	cur := newCursor(e.src)
	if err := cur.seekTo(layout.StartOffset); err != nil {
		return nil, fmt.Errorf("seeking to face region at %d: %w", layout.StartOffset, err)
	}

	total := layout.ExpectedFaces()
	perFace := layout.ElementsPerFace()
	e.log.Info("reading faces",
		zap.Int64("expected", total),
		zap.Stringer("encoding", layout.Encoding),
		zap.Bool("quads", layout.Quads))

	faces := make([]Face, 0, total)
	elem := make([]byte, layout.Encoding.ElementSize())
	for i := int64(0); i < total; i++ {
		if cur.pos() > layout.EndOffset {
			e.log.Debug("passed face end offset", zap.Int64("offset", cur.pos()))
			break
		}

		// Every element of a truncated record is reported on its own;
		// unread elements stay 0 and the record still counts.
		var f Face
		short := false
		for j := 0; j < perFace; j++ {
			if !cur.readFull(elem) {
				e.log.Warn("face data ran out mid-record, element defaults to 0",
					zap.Int64("face", i),
					zap.String("element", faceElements[j]))
				short = true
				continue
			}
			f.Indices[j] = decodeIndex(layout.Encoding, elem)
		}

		f.Degenerate = repeatsIndex(f.Indices[:perFace])
		if f.Degenerate {
			e.log.Debug("face repeats an index, writers will drop it",
				zap.Int64("face", i),
				zap.Uint32s("indices", f.Indices[:perFace]))
		}

		for j := 0; j < perFace; j++ {
			if f.Indices[j] >= uint32(vertexCount) {
				e.log.Warn("face index out of range, clamping to 0",
					zap.Int64("face", i),
					zap.String("element", faceElements[j]),
					zap.Uint32("index", f.Indices[j]),
					zap.Int("vertices", vertexCount))
				f.Indices[j] = 0
			}
		}

		faces = append(faces, f)
		e.log.Debug("face",
			zap.Int64("index", i),
			zap.Uint32s("indices", f.Indices[:perFace]))

		if short {
			break
		}
		if !cur.skip(layout.Stride) {
			e.log.Debug("face stride seek failed", zap.Int64("offset", cur.pos()))
			break
		}
	}

	e.log.Info("faces read", zap.Int("count", len(faces)))
	return faces, nil
}

func decodeIndex(enc FaceEncoding, b []byte) uint32 {
	if enc == FaceU16 {
		return uint32(binary.LittleEndian.Uint16(b))
	}
	return binary.LittleEndian.Uint32(b)
}

// repeatsIndex reports whether any two indices in the record match.
func repeatsIndex(idx []uint32) bool {
	for i := 0; i < len(idx); i++ {
		for j := i + 1; j < len(idx); j++ {
			if idx[i] == idx[j] {
				return true
			}
		}
	}
	return false
}
