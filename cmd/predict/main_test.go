package main

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"soilindex/logging"
	"soilindex/ml"
	"soilindex/soil"
)

func writeModel(t *testing.T, path string, value float64) {
	t.Helper()
	artifact := &ml.Artifact{
		ModelType:    ml.ModelTypeRandomForest,
		FeatureNames: ml.FeatureNames(),
		Trees:        [][]ml.TreeNode{{{IsLeaf: true, Value: value}}},
	}
	require.NoError(t, artifact.Save(path))
}

func newRunner(t *testing.T, withArtifacts bool) *soil.Runner {
	t.Helper()
	dir := t.TempDir()
	cfg := ml.ProviderConfig{
		ModelType: ml.ModelTypeRandomForest,
		CCPath:    filepath.Join(dir, "cc.json"),
		SIPath:    filepath.Join(dir, "si.json"),
		Mode:      ml.LoadLazy,
	}
	if withArtifacts {
		writeModel(t, cfg.CCPath, 0.312)
		writeModel(t, cfg.SIPath, 0.145)
	}
	provider, err := ml.NewProvider(cfg, nil)
	require.NoError(t, err)
	t.Cleanup(func() { provider.Close() })
	return soil.NewRunner(provider)
}

func TestRunPrintsPrediction(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), soil.RawInput{"0.8", "35", "45", "20"}, newRunner(t, true), logging.Nop(), &stdout, &stderr)

	require.Equal(t, 0, code, stderr.String())
	assert.Equal(t,
		"Plasticity Index (PI): 25.00\nPredicted Compression Index (Cc): 0.3120\nPredicted Swelling Index (SI): 0.1450\n",
		stdout.String())
}

func TestRunReportsInputError(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), soil.RawInput{"0.8", "35", "20", "30"}, newRunner(t, false), logging.Nop(), &stdout, &stderr)

	assert.Equal(t, 1, code)
	assert.Empty(t, stdout.String())
	assert.Equal(t, "Input Error: Plasticity Index (PI) cannot be negative.\n", stderr.String())
}

func TestRunReportsMissingModels(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), soil.RawInput{"0.8", "35", "45", "20"}, newRunner(t, false), logging.Nop(), &stdout, &stderr)

	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), "Error: Error loading models")
}
