// Package log is the diagnostic logger for the shell extension.
//
// Lines are appended to a per-user file (ShellExtension.log under the
// DiskBench cache directory), timestamped, UTF-8, CRLF-terminated so the file
// reads cleanly in Notepad. Logging is strictly best-effort: if the file
// cannot be opened or written the logger stays a no-op and the command
// contract is unaffected.
package log

import (
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
)

const logFileName = "ShellExtension.log"

var (
	logger  = zerolog.Nop()
	logFile *os.File
)

// Initialize opens the diagnostic log file and installs the file logger.
// Call Close when done. Any failure is swallowed and leaves the no-op logger
// in place.
func Initialize() {
	path, err := Path()
	if err != nil {
		return
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return
	}

	w := zerolog.ConsoleWriter{
		Out:        crlfWriter{f},
		NoColor:    true,
		TimeFormat: "2006-01-02 15:04:05.000",
	}
	logger = zerolog.New(w).With().Timestamp().Str("app", "DiskBench.ShellExtension").Logger()
	logFile = f
}

// Close releases the log file. Safe to call without Initialize.
func Close() {
	if logFile == nil {
		return
	}
	_ = logFile.Close()
	logFile = nil
	logger = zerolog.Nop()
}

// Path returns the diagnostic log file location, whether or not it exists yet.
func Path() (string, error) {
	// UserCacheDir is %LOCALAPPDATA% on Windows, matching where the installer
	// family keeps its per-user files.
	base, err := os.UserCacheDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, "DiskBench", logFileName), nil
}

// SetOutput redirects log output, bypassing the file. Used by the CLI harness
// (verbose mode) and by tests.
func SetOutput(w io.Writer) {
	logger = zerolog.New(zerolog.ConsoleWriter{
		Out:        w,
		NoColor:    true,
		TimeFormat: "2006-01-02 15:04:05.000",
	}).With().Timestamp().Logger()
}

func Debug() *zerolog.Event { return logger.Debug() }

func Info() *zerolog.Event { return logger.Info() }

func Warn() *zerolog.Event { return logger.Warn() }

func Error() *zerolog.Event { return logger.Error() }

// crlfWriter rewrites the trailing LF of each write to CRLF. ConsoleWriter
// emits exactly one write per line, so only the final byte needs translating.
type crlfWriter struct {
	w io.Writer
}

func (c crlfWriter) Write(p []byte) (int, error) {
	n := len(p)
	if n > 0 && p[n-1] == '\n' && (n < 2 || p[n-2] != '\r') {
		buf := make([]byte, 0, n+1)
		buf = append(buf, p[:n-1]...)
		buf = append(buf, '\r', '\n')
		if _, err := c.w.Write(buf); err != nil {
			return 0, err
		}
		return n, nil
	}
	_, err := c.w.Write(p)
	if err != nil {
		return 0, err
	}
	return n, nil
}
