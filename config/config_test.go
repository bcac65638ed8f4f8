package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"soilindex/ml"
)

func TestLoadDefaults(t *testing.T) {
	_, err := Load("/nonexistent/path/soilindex.yaml")
	require.Error(t, err)

	old := SearchPaths
	SearchPaths = []string{filepath.Join(t.TempDir(), "absent.yaml")}
	defer func() { SearchPaths = old }()

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, ml.ModelTypeRandomForest, cfg.Models.Type)
	assert.Equal(t, ml.LoadOnce, cfg.Models.LoadMode)
	assert.Equal(t, "./results/models/Cc_random_forest.json", cfg.Models.CCPath)
	assert.Equal(t, 4, cfg.Models.CacheSize)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.yaml")
	content := `
models:
  type: decision_tree
  cc_path: /srv/models/cc.json
  si_path: /srv/models/si.json
  load_mode: per_request
log:
  level: debug
  file: ""
  console: true
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ml.ModelTypeDecisionTree, cfg.Models.Type)
	assert.Equal(t, ml.LoadPerRequest, cfg.Models.LoadMode)
	assert.Equal(t, "/srv/models/si.json", cfg.Models.SIPath)
	assert.Equal(t, 4, cfg.Models.CacheSize, "zero cache size falls back to default")
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Empty(t, cfg.Log.File)
	assert.True(t, cfg.Log.Console)

	pc := cfg.Provider()
	assert.Equal(t, "/srv/models/cc.json", pc.CCPath)
	assert.Equal(t, ml.LoadPerRequest, pc.Mode)
}

func TestLoadRejectsUnknownMode(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("models:\n  load_mode: sometimes\n"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load_mode")
}

func TestLoadRejectsUnknownType(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("models:\n  type: svm\n"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("models: [unclosed"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
}
