package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeStages(t *testing.T, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "stages.yaml")
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeStages(t, `stages:
  - min-block: 5000
    min-flank: 500
  - min-block: 500
    min-flank: 50
  - min-block: 100
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	require.Len(t, cfg.Stages, 3)
	assert.Equal(t, Stage{MinBlock: 5000, MinFlank: 500}, cfg.Stages[0])
	assert.Equal(t, Stage{MinBlock: 100, MinFlank: 0}, cfg.Stages[2])
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"empty", "stages: []\n"},
		{"negative threshold", "stages:\n  - min-block: -5\n"},
		{"duplicate min-block", "stages:\n  - min-block: 100\n  - min-block: 100\n"},
		{"malformed yaml", "stages: [oops\n"},
	}
	for _, tc := range tests {
		_, err := Load(writeStages(t, tc.data))
		assert.Error(t, err, tc.name)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestSingle(t *testing.T) {
	cfg := Single(100, 10)
	require.Len(t, cfg.Stages, 1)
	assert.Equal(t, Stage{MinBlock: 100, MinFlank: 10}, cfg.Stages[0])
}
