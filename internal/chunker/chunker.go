// Package chunker splits an input stream into bounded segments
// suitable for building a memory view, the way scatter-gather I/O
// hands a consumer a sequence of fixed-capacity buffers.
package chunker

import (
	"fmt"
	"io"
	"os"

	"github.com/AdrianWangs/memview/pkg/logger"
	"github.com/AdrianWangs/memview/pkg/memview"
)

// DefaultSegmentBytes is used when no segment size is configured.
const DefaultSegmentBytes = 64 * 1024

// ReadSegments reads r until EOF into segments of at most segBytes
// bytes each. Every segment owns its backing slice, so the returned
// segments outlive r.
func ReadSegments(r io.Reader, segBytes int) ([]memview.Segment, error) {
	if segBytes <= 0 {
		segBytes = DefaultSegmentBytes
	}

	var segs []memview.Segment
	var total uint64
	for {
		buf := make([]byte, segBytes)
		n, err := io.ReadFull(r, buf)
		if n > 0 {
			segs = append(segs, memview.NewSegment(buf[:n]))
			total += uint64(n)
			logger.Debugf("chunked segment %d: %d bytes", len(segs)-1, n)
		}
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			logger.WithFields(logger.Fields{
				"segments": len(segs),
				"bytes":    total,
			}).Debug("input fully chunked")
			return segs, nil
		}
		if err != nil {
			return nil, fmt.Errorf("chunking input: %w", err)
		}
	}
}

// ReadFileSegments chunks the contents of the named file.
func ReadFileSegments(path string, segBytes int) ([]memview.Segment, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	return ReadSegments(f, segBytes)
}
