// Package memview presents a contiguous logical address space over an
// ordered sequence of discontiguous byte buffers.
//
// A View references its segments rather than consolidating them: no
// segment byte is ever copied except into the destination of a read.
// Discarding from the front re-slices the first surviving segment, so
// both DiscardFront and construction are O(segment count), never
// O(total bytes).
//
// A View is owned by a single goroutine. DiscardFront mutates boundary
// state that ReadAt depends on; callers that share a view must wrap it
// in their own locking.
package memview

// View maps an ordered sequence of segments onto one contiguous,
// monotonically shrinking logical address space. The zero value is a
// valid empty view.
type View struct {
	// segs holds the remaining window. segs[0] may be a suffix of the
	// segment it was built from; no element is ever zero-length.
	segs []Segment
	size uint64
}

// New builds a view over the given segments in order. Zero-length
// segments are dropped up front so that later boundary walks never see
// them. The only failure is a combined size overflowing uint64, which
// returns ErrTooLarge.
func New(segments ...Segment) (*View, error) {
	v := &View{}
	if len(segments) == 0 {
		return v, nil
	}
	v.segs = make([]Segment, 0, len(segments))
	for _, s := range segments {
		n := uint64(s.Len())
		if n == 0 {
			continue
		}
		if v.size+n < v.size {
			return nil, ErrTooLarge
		}
		v.size += n
		v.segs = append(v.segs, s)
	}
	return v, nil
}

// Size returns the number of bytes currently visible through the view.
func (v *View) Size() uint64 {
	return v.size
}

// NumSegments returns the number of segments still contributing bytes.
func (v *View) NumSegments() int {
	return len(v.segs)
}

// DiscardFront removes n logical bytes from the front of the view.
// Discarding more than Size() empties the view; it never underflows
// and never fails. DiscardFront(0) is a no-op.
func (v *View) DiscardFront(n uint64) {
	if n >= v.size {
		v.segs = nil
		v.size = 0
		return
	}
	v.size -= n
	for n > 0 {
		sl := uint64(v.segs[0].Len())
		if n < sl {
			v.segs[0].data = v.segs[0].data[n:]
			return
		}
		n -= sl
		v.segs = v.segs[1:]
	}
}

// ReadAt copies len(dst) bytes starting at logical offset off into dst.
// The copy is all-or-nothing: if [off, off+len(dst)) is not fully
// contained in [0, Size()), a *RangeError is returned and dst is left
// untouched. A zero-length read succeeds at any offset up to and
// including Size().
//
// On success dst holds exactly the bytes obtained by concatenating the
// remaining segments in order and slicing [off, off+len(dst)) from the
// result.
func (v *View) ReadAt(off uint64, dst []byte) error {
	n := uint64(len(dst))
	if off > v.size || n > v.size-off {
		return &RangeError{Offset: off, Length: n, Size: v.size}
	}
	if n == 0 {
		return nil
	}

	// Locate the segment containing off. Strictly less than the
	// segment length means "within this segment"; landing exactly on
	// a boundary falls through to the next segment.
	i := 0
	for off >= uint64(v.segs[i].Len()) {
		off -= uint64(v.segs[i].Len())
		i++
	}

	// Copy across segment boundaries. Every segment after the first
	// is consumed from its own start.
	for copied := 0; copied < len(dst); i++ {
		copied += copy(dst[copied:], v.segs[i].data[off:])
		off = 0
	}
	return nil
}

// Bytes flattens the remaining window into a freshly allocated slice.
func (v *View) Bytes() []byte {
	out := make([]byte, 0, v.size)
	for _, s := range v.segs {
		out = append(out, s.data...)
	}
	return out
}

// String returns the remaining window as a string.
func (v *View) String() string {
	return string(v.Bytes())
}

// Clone returns an independent view over the same backing memory.
// Discards on either view do not affect the other; no segment bytes
// are copied.
func (v *View) Clone() *View {
	return &View{
		segs: append([]Segment(nil), v.segs...),
		size: v.size,
	}
}

// Release drops all segment references, allowing the backing memory to
// be reclaimed once no other holder remains. The view stays usable as
// an empty view; further discards and zero-length reads still succeed.
func (v *View) Release() {
	v.segs = nil
	v.size = 0
}
