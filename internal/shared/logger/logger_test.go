package logger

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brandvault/brandvault/internal/shared/config"
)

func TestInit_JSONFileOutput(t *testing.T) {
	prev, prevDefault := Logger, slog.Default()
	t.Cleanup(func() {
		Logger = prev
		slog.SetDefault(prevDefault)
	})

	path := filepath.Join(t.TempDir(), "app.log")
	require.NoError(t, Init(&config.LoggerConfig{Level: "warn", Format: "json", OutputPath: path}))

	log := NewLogger().Named("blobs")
	log.Infow("dropped below level", "key", "a")
	log.Warnw("kept", "key", "b")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "kept", entry["msg"])
	assert.Equal(t, "b", entry["key"])
	assert.Equal(t, "blobs", entry["logger"])
	assert.Contains(t, entry, "source")
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, "DEBUG", parseLevel("debug").String())
	assert.Equal(t, "WARN", parseLevel("WARNING").String())
	assert.Equal(t, "ERROR", parseLevel("error").String())
	assert.Equal(t, "INFO", parseLevel("verbose").String())
}
