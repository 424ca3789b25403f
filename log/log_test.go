package log

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPath(t *testing.T) {
	path, err := Path()
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(path, logFileName))
	assert.Contains(t, path, "DiskBench")
}

func TestCrlfWriter(t *testing.T) {
	t.Run("terminates lines with CRLF", func(t *testing.T) {
		var buf bytes.Buffer
		n, err := crlfWriter{&buf}.Write([]byte("hello\n"))
		require.NoError(t, err)
		assert.Equal(t, 6, n)
		assert.Equal(t, "hello\r\n", buf.String())
	})

	t.Run("leaves existing CRLF alone", func(t *testing.T) {
		var buf bytes.Buffer
		_, err := crlfWriter{&buf}.Write([]byte("hello\r\n"))
		require.NoError(t, err)
		assert.Equal(t, "hello\r\n", buf.String())
	})

	t.Run("passes unterminated writes through", func(t *testing.T) {
		var buf bytes.Buffer
		_, err := crlfWriter{&buf}.Write([]byte("partial"))
		require.NoError(t, err)
		assert.Equal(t, "partial", buf.String())
	})
}

func TestSetOutput(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer Close()

	Info().Str("drive", "C:\\").Msg("state query")

	out := buf.String()
	assert.Contains(t, out, "state query")
	assert.Contains(t, out, "C:\\")
}

func TestUninitializedLoggerIsSilent(t *testing.T) {
	Close()

	// Must not panic and must not write anywhere.
	Info().Msg("dropped")
	Error().Msg("dropped")
}
