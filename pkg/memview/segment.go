package memview

// Segment is one borrowed byte range contributing to a view, in order.
// The view never mutates segment contents, and callers must not mutate
// the backing slice while a view references it.
type Segment struct {
	data []byte
}

// NewSegment wraps b as a segment. The slice is borrowed, not copied.
func NewSegment(b []byte) Segment {
	return Segment{data: b}
}

// StringSegment converts s into a segment. The string contents are
// copied once, since Go strings cannot back a byte slice directly.
func StringSegment(s string) Segment {
	return Segment{data: []byte(s)}
}

// Len returns the number of bytes in the segment.
func (s Segment) Len() int {
	return len(s.data)
}

// Bytes returns a copy of the segment contents.
func (s Segment) Bytes() []byte {
	return cloneBytes(s.data)
}

func cloneBytes(b []byte) []byte {
	c := make([]byte, len(b))
	copy(c, b)
	return c
}
