package memview

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReaderReadAll(t *testing.T) {
	v := helloView(t)
	got, err := io.ReadAll(NewReader(v))
	require.NoError(t, err)
	require.Equal(t, "helloworld!", string(got))

	// Reading through the reader does not consume the view.
	require.Equal(t, uint64(11), v.Size())
}

func TestReaderSmallChunks(t *testing.T) {
	v := helloView(t)
	r := NewReader(v)

	var out []byte
	buf := make([]byte, 3)
	for {
		n, err := r.Read(buf)
		out = append(out, buf[:n]...)
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
	}
	require.Equal(t, "helloworld!", string(out))

	// Subsequent reads keep reporting EOF.
	_, err := r.Read(buf)
	require.Equal(t, io.EOF, err)
}

func TestReaderSeek(t *testing.T) {
	v := helloView(t)
	r := NewReader(v)

	pos, err := r.Seek(5, io.SeekStart)
	require.NoError(t, err)
	require.Equal(t, int64(5), pos)

	got, err := io.ReadAll(r)
	require.NoError(t, err)
	require.Equal(t, "world!", string(got))

	pos, err = r.Seek(-1, io.SeekEnd)
	require.NoError(t, err)
	require.Equal(t, int64(10), pos)

	buf := make([]byte, 1)
	_, err = r.Read(buf)
	require.NoError(t, err)
	require.Equal(t, byte('!'), buf[0])

	pos, err = r.Seek(-3, io.SeekCurrent)
	require.NoError(t, err)
	require.Equal(t, int64(8), pos)

	_, err = r.Seek(-1, io.SeekStart)
	require.Error(t, err)

	// Seeking past the end is legal; the next read reports EOF.
	_, err = r.Seek(100, io.SeekStart)
	require.NoError(t, err)
	_, err = r.Read(buf)
	require.Equal(t, io.EOF, err)
}

func TestReaderReadAt(t *testing.T) {
	v := helloView(t)
	r := NewReader(v)

	buf := make([]byte, 4)
	n, err := r.ReadAt(buf, 3)
	require.NoError(t, err)
	require.Equal(t, 4, n)
	require.Equal(t, "lowo", string(buf))

	// ReadAt leaves the sequential cursor alone.
	got, err := io.ReadAll(r)
	require.NoError(t, err)
	require.Equal(t, "helloworld!", string(got))

	// Truncated at the end of the view.
	n, err = r.ReadAt(buf, 9)
	require.Equal(t, io.EOF, err)
	require.Equal(t, 2, n)
	require.Equal(t, "d!", string(buf[:n]))

	_, err = r.ReadAt(buf, 11)
	require.Equal(t, io.EOF, err)

	_, err = r.ReadAt(buf, -1)
	require.Error(t, err)
}

func TestReaderWriteTo(t *testing.T) {
	v := helloView(t)
	r := NewReader(v)

	_, err := r.Seek(5, io.SeekStart)
	require.NoError(t, err)

	var sink bytes.Buffer
	n, err := r.WriteTo(&sink)
	require.NoError(t, err)
	require.Equal(t, int64(6), n)
	require.Equal(t, "world!", sink.String())

	// Everything was consumed.
	n, err = r.WriteTo(&sink)
	require.NoError(t, err)
	require.Equal(t, int64(0), n)
	_, err = r.Read(make([]byte, 1))
	require.Equal(t, io.EOF, err)
}

func TestReaderSeesDiscards(t *testing.T) {
	v := helloView(t)
	r := NewReader(v)

	v.DiscardFront(5)
	got, err := io.ReadAll(r)
	require.NoError(t, err)
	require.Equal(t, "world!", string(got))
}
