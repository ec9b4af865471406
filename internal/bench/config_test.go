package bench

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mireval "github.com/hendriks73/mir-eval"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, 0.5, cfg.Window)
	assert.Equal(t, 1.0, cfg.Beta)
	assert.False(t, cfg.Trim)
	assert.Equal(t, 0.1, cfg.FrameSize)
	assert.Equal(t, "arithmetic", cfg.Normalization)
	assert.Empty(t, cfg.Metrics)
}

func TestLoadConfig_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "segeval.yaml")
	data := `window: 3
trim: true
normalization: max
metrics: [detection, nce]
concurrency: 4
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 3.0, cfg.Window)
	assert.True(t, cfg.Trim)
	assert.Equal(t, "max", cfg.Normalization)
	assert.Equal(t, []string{"detection", "nce"}, cfg.Metrics)
	assert.Equal(t, 4, cfg.Concurrency)
	// Unset keys keep their defaults.
	assert.Equal(t, 1.0, cfg.Beta)
	assert.Equal(t, 0.1, cfg.FrameSize)
}

func TestLoadConfig_Env(t *testing.T) {
	t.Setenv("SEGEVAL_WINDOW", "0.25")
	t.Setenv("SEGEVAL_BETA", "0.5")
	t.Setenv("SEGEVAL_FRAME_SIZE", "0.2")
	t.Setenv("SEGEVAL_TRIM", "true")
	t.Setenv("SEGEVAL_METRICS", "ari,pairwise")

	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, 0.25, cfg.Window)
	assert.Equal(t, 0.5, cfg.Beta)
	assert.Equal(t, 0.2, cfg.FrameSize)
	assert.True(t, cfg.Trim)
	assert.Equal(t, []string{"ari", "pairwise"}, cfg.Metrics)
}

func TestLoadConfig_Errors(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("window: [1"), 0644))
	_, err = LoadConfig(path)
	assert.Error(t, err)

	t.Setenv("SEGEVAL_WINDOW", "wide")
	_, err = LoadConfig("")
	assert.ErrorContains(t, err, "SEGEVAL_WINDOW")
}

func TestConfigOptions(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Metrics = []string{"detection"}

	opts, err := cfg.Options(nil)
	require.NoError(t, err)

	ev, err := mireval.New(opts...)
	require.NoError(t, err)
	require.NotNil(t, ev)

	cfg.Normalization = "harmonic"
	_, err = cfg.Options(nil)
	assert.Error(t, err)
}
