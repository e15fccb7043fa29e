package chunker

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/AdrianWangs/memview/pkg/memview"
)

func TestReadSegmentsSplitsAtBound(t *testing.T) {
	segs, err := ReadSegments(strings.NewReader("helloworld!"), 4)
	require.NoError(t, err)
	require.Len(t, segs, 3)
	require.Equal(t, 4, segs[0].Len())
	require.Equal(t, 4, segs[1].Len())
	require.Equal(t, 3, segs[2].Len())

	v, err := memview.New(segs...)
	require.NoError(t, err)
	require.Equal(t, "helloworld!", v.String())
}

func TestReadSegmentsEmptyInput(t *testing.T) {
	segs, err := ReadSegments(bytes.NewReader(nil), 8)
	require.NoError(t, err)
	require.Empty(t, segs)

	v, err := memview.New(segs...)
	require.NoError(t, err)
	require.Equal(t, uint64(0), v.Size())
}

func TestReadSegmentsDefaultBound(t *testing.T) {
	segs, err := ReadSegments(strings.NewReader("abc"), 0)
	require.NoError(t, err)
	require.Len(t, segs, 1)
	require.Equal(t, 3, segs[0].Len())
}

func TestReadFileSegments(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input")
	require.NoError(t, os.WriteFile(path, []byte("segmented file contents"), 0644))

	segs, err := ReadFileSegments(path, 8)
	require.NoError(t, err)

	v, err := memview.New(segs...)
	require.NoError(t, err)
	require.Equal(t, "segmented file contents", v.String())

	_, err = ReadFileSegments(filepath.Join(t.TempDir(), "missing"), 8)
	require.Error(t, err)
}
