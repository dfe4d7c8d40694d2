package multilog

import (
	"bufio"
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileSinkWritesAndFlushes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "out.log")

	s, err := NewFileSink(path)
	require.NoError(t, err, "NewFileSink should create parent directories")

	_, err = s.Write([]byte("first line\n"))
	require.NoError(t, err)
	require.NoError(t, s.Flush())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "first line\n", string(data))

	require.NoError(t, s.Close())
}

func TestFileSinkAppendsAcrossOpens(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.log")

	s, err := NewFileSink(path)
	require.NoError(t, err)
	_, err = s.Write([]byte("one\n"))
	require.NoError(t, err)
	require.NoError(t, s.Close())

	s, err = NewFileSink(path)
	require.NoError(t, err)
	_, err = s.Write([]byte("two\n"))
	require.NoError(t, err)
	require.NoError(t, s.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "one\ntwo\n", string(data))
}

func TestFileSinkRequiresFilename(t *testing.T) {
	_, err := NewFileSink("")
	assert.Error(t, err)
}

func TestConsoleSinkDefaultsToStdout(t *testing.T) {
	s := NewConsoleSink(nil)
	assert.Equal(t, os.Stdout, s.writer)
}

func TestConsoleSinkWrites(t *testing.T) {
	var buf bytes.Buffer
	s := NewConsoleSink(&buf)

	_, err := s.Write([]byte("to console"))
	require.NoError(t, err)
	require.NoError(t, s.Flush())
	assert.Equal(t, "to console", buf.String())
}

func TestWriterSinkDelegatesFlush(t *testing.T) {
	var buf bytes.Buffer
	bw := bufio.NewWriter(&buf)
	s := NewWriterSink(bw)

	_, err := s.Write([]byte("buffered"))
	require.NoError(t, err)
	assert.Empty(t, buf.String(), "bytes should still sit in the bufio layer")

	require.NoError(t, s.Flush())
	assert.Equal(t, "buffered", buf.String())
}

func TestWriterSinkFlushWithoutSupportIsNoop(t *testing.T) {
	var buf bytes.Buffer
	s := NewWriterSink(&buf)

	_, err := s.Write([]byte("plain"))
	require.NoError(t, err)
	assert.NoError(t, s.Flush())
	assert.Equal(t, "plain", buf.String())
}
