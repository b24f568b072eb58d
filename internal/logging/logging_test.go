package logging_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/admin-harmiana/Website/internal/logging"
)

func TestParseLevel(t *testing.T) {
	t.Parallel()

	cases := map[string]slog.Level{
		"":      slog.LevelInfo,
		"debug": slog.LevelDebug,
		"WARN":  slog.LevelWarn,
		"error": slog.LevelError,
	}
	for in, want := range cases {
		got, err := logging.ParseLevel(in)
		require.NoError(t, err, in)
		require.Equal(t, want, got, in)
	}

	_, err := logging.ParseLevel("loud")
	require.Error(t, err)
}

func TestJSONFormatFiltersLevel(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger, closeFn, err := logging.New(logging.Options{Level: "warn", Format: "json", Output: &buf})
	require.NoError(t, err)
	t.Cleanup(func() { _ = closeFn() })

	logger.Info("hidden")
	logger.Warn("shown", slog.String("path", "/en"))

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	require.Equal(t, "shown", rec["msg"])
	require.Equal(t, "/en", rec["path"])
}

func TestTextFormat(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger, _, err := logging.New(logging.Options{Output: &buf})
	require.NoError(t, err)

	logger.Info("listening", slog.String("addr", ":8080"))
	require.Contains(t, buf.String(), "listening")
	require.Contains(t, buf.String(), "addr=")
}

func TestFileOutput(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "site.log")
	logger, closeFn, err := logging.New(logging.Options{Format: "json", File: path})
	require.NoError(t, err)

	logger.Info("to file")
	require.NoError(t, closeFn())

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(b), `"msg":"to file"`)
}

func TestUnknownFormat(t *testing.T) {
	t.Parallel()

	_, _, err := logging.New(logging.Options{Format: "xml"})
	require.Error(t, err)
}
