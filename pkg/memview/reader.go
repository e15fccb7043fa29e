package memview

import (
	"errors"
	"io"
)

// Reader adapts a View to the stdlib io interfaces. It keeps its own
// cursor: reading through a Reader never discards bytes from the view,
// and several readers may walk the same view independently as long as
// nobody calls DiscardFront concurrently.
type Reader struct {
	v   *View
	off uint64
}

// NewReader returns a reader positioned at the front of v.
func NewReader(v *View) *Reader {
	return &Reader{v: v}
}

// Read implements io.Reader.
func (r *Reader) Read(p []byte) (int, error) {
	size := r.v.Size()
	if r.off >= size {
		if len(p) == 0 {
			return 0, nil
		}
		return 0, io.EOF
	}
	n := uint64(len(p))
	if rem := size - r.off; n > rem {
		n = rem
	}
	if err := r.v.ReadAt(r.off, p[:n]); err != nil {
		return 0, err
	}
	r.off += n
	return int(n), nil
}

// ReadAt implements io.ReaderAt. The offset is absolute within the
// view's current window and independent of the reader's cursor. A read
// truncated by the end of the view returns the bytes read and io.EOF.
func (r *Reader) ReadAt(p []byte, off int64) (int, error) {
	if off < 0 {
		return 0, errors.New("memview: negative read offset")
	}
	size := r.v.Size()
	if uint64(off) >= size {
		if len(p) == 0 && uint64(off) == size {
			return 0, nil
		}
		return 0, io.EOF
	}
	n := uint64(len(p))
	short := false
	if rem := size - uint64(off); n > rem {
		n = rem
		short = true
	}
	if err := r.v.ReadAt(uint64(off), p[:n]); err != nil {
		return 0, err
	}
	if short {
		return int(n), io.EOF
	}
	return int(n), nil
}

// Seek implements io.Seeker. Seeking past the end of the view is
// legal; the next Read reports io.EOF.
func (r *Reader) Seek(offset int64, whence int) (int64, error) {
	var abs int64
	switch whence {
	case io.SeekStart:
		abs = offset
	case io.SeekCurrent:
		abs = int64(r.off) + offset
	case io.SeekEnd:
		abs = int64(r.v.Size()) + offset
	default:
		return 0, errors.New("memview: invalid seek whence")
	}
	if abs < 0 {
		return 0, errors.New("memview: negative seek position")
	}
	r.off = uint64(abs)
	return abs, nil
}

// WriteTo implements io.WriterTo. Remaining bytes are written segment
// by segment straight from the backing memory, with no intermediate
// copy, and the cursor advances past everything written.
func (r *Reader) WriteTo(w io.Writer) (int64, error) {
	skip := r.off
	var written int64
	for _, s := range r.v.segs {
		sl := uint64(s.Len())
		if skip >= sl {
			skip -= sl
			continue
		}
		n, err := w.Write(s.data[skip:])
		skip = 0
		written += int64(n)
		r.off += uint64(n)
		if err != nil {
			return written, err
		}
	}
	return written, nil
}
