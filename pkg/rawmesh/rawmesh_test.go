package rawmesh

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// testExtractor returns an extractor over data plus the captured log
// stream, so tests can assert on warnings as well as output.
func testExtractor(data []byte) (*Extractor, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	return NewExtractor(bytes.NewReader(data), zap.New(core)), logs
}

// Fixture builders. binary.Write to a bytes.Buffer cannot fail for
// fixed-size values, so the error is dropped.

func f32le(vals ...float32) []byte {
	var buf bytes.Buffer
	_ = binary.Write(&buf, binary.LittleEndian, vals)
	return buf.Bytes()
}

func i16le(vals ...int16) []byte {
	var buf bytes.Buffer
	_ = binary.Write(&buf, binary.LittleEndian, vals)
	return buf.Bytes()
}

func u16le(vals ...uint16) []byte {
	var buf bytes.Buffer
	_ = binary.Write(&buf, binary.LittleEndian, vals)
	return buf.Bytes()
}

func u32le(vals ...uint32) []byte {
	var buf bytes.Buffer
	_ = binary.Write(&buf, binary.LittleEndian, vals)
	return buf.Bytes()
}

// concat joins fixture chunks, padding zeros between them when pad > 0.
func concat(pad int, chunks ...[]byte) []byte {
	var buf bytes.Buffer
	for i, c := range chunks {
		buf.Write(c)
		if pad > 0 && i < len(chunks)-1 {
			buf.Write(make([]byte, pad))
		}
	}
	return buf.Bytes()
}

// brokenSeeker fails forward relative seeks, exercising the stride
// failure path.
type brokenSeeker struct {
	r *bytes.Reader
}

func (b *brokenSeeker) Read(p []byte) (int, error) {
	return b.r.Read(p)
}

func (b *brokenSeeker) Seek(off int64, whence int) (int64, error) {
	if whence == io.SeekCurrent && off > 0 {
		return 0, errors.New("relative seek unsupported")
	}
	return b.r.Seek(off, whence)
}
