package rawmesh

import (
	"errors"
	"fmt"
)

// ErrUnknownEncoding is returned when a numeric encoding selector falls
// outside the known set.
var ErrUnknownEncoding = errors.New("unknown encoding selector")

// VertexEncoding selects how one vertex record is stored in the source.
type VertexEncoding int

// Vertex encodings.
const (
	// VertexF32 is three little-endian IEEE-754 floats, 12 bytes.
	VertexF32 VertexEncoding = iota
	// VertexI16 is three little-endian signed 16-bit integers, 6 bytes,
	// widened to float32. The source triple (a, b, c) maps to x=a, y=c,
	// z=b.
	VertexI16
)

// ParseVertexEncoding maps a numeric selector (0 = float32, 1 = int16)
// to its encoding. Anything outside the known set is rejected.
func ParseVertexEncoding(selector int) (VertexEncoding, error) {
	switch selector {
	case 0:
		return VertexF32, nil
	case 1:
		return VertexI16, nil
	default:
		return 0, fmt.Errorf("%w: vertex type %d", ErrUnknownEncoding, selector)
	}
}

// RecordSize returns the stored size of one vertex record in bytes, or 0
// for an encoding that was never valid.
func (e VertexEncoding) RecordSize() int64 {
	switch e {
	case VertexF32:
		return 12
	case VertexI16:
		return 6
	default:
		return 0
	}
}

// String returns a short human-readable name.
func (e VertexEncoding) String() string {
	switch e {
	case VertexF32:
		return "float32"
	case VertexI16:
		return "int16"
	default:
		return fmt.Sprintf("Unknown(%d)", int(e))
	}
}

// FaceEncoding selects the integer width of face indices in the source.
// Indices are unsigned regardless of width.
type FaceEncoding int

// Face index encodings.
const (
	FaceU16 FaceEncoding = iota
	FaceU32
)

// ParseFaceEncoding maps a numeric selector (0 = uint16, 1 = uint32) to
// its encoding. Anything outside the known set is rejected.
func ParseFaceEncoding(selector int) (FaceEncoding, error) {
	switch selector {
	case 0:
		return FaceU16, nil
	case 1:
		return FaceU32, nil
	default:
		return 0, fmt.Errorf("%w: face type %d", ErrUnknownEncoding, selector)
	}
}

// ElementSize returns the stored size of one face index in bytes, or 0
// for an encoding that was never valid.
func (e FaceEncoding) ElementSize() int64 {
	switch e {
	case FaceU16:
		return 2
	case FaceU32:
		return 4
	default:
		return 0
	}
}

// String returns a short human-readable name.
func (e FaceEncoding) String() string {
	switch e {
	case FaceU16:
		return "uint16"
	case FaceU32:
		return "uint32"
	default:
		return fmt.Sprintf("Unknown(%d)", int(e))
	}
}
