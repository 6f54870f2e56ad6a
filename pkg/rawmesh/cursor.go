package rawmesh

import "io"

// cursor tracks an absolute byte position over a ReadSeeker so the
// extraction loops can test region bounds without extra seek calls.
type cursor struct {
	src io.ReadSeeker
	off int64
}

func newCursor(src io.ReadSeeker) *cursor {
	return &cursor{src: src}
}

// seekTo moves to an absolute offset.
func (c *cursor) seekTo(off int64) error {
	n, err := c.src.Seek(off, io.SeekStart)
	if err != nil {
		return err
	}
	c.off = n
	return nil
}

// pos returns the current absolute offset.
func (c *cursor) pos() int64 {
	return c.off
}

// readFull fills buf completely, reporting false when the stream cannot
// supply one more whole record.
func (c *cursor) readFull(buf []byte) bool {
	n, err := io.ReadFull(c.src, buf)
	c.off += int64(n)
	return err == nil
}

// skip advances the cursor by stride bytes between records. Only a
// positive stride that fails to seek ends the walk; a failed negative
// skip leaves the position where it was and the walk carries on.
func (c *cursor) skip(stride int64) bool {
	if stride == 0 {
		return true
	}
	n, err := c.src.Seek(stride, io.SeekCurrent)
	if err != nil {
		return stride < 0
	}
	c.off = n
	return true
}
