package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 0.8, cfg.Synonym.FuzzyThreshold)
	assert.Equal(t, "", cfg.Synonym.VocabularyPath)
	assert.Equal(t, 10, cfg.Analyzer.DefaultLimit)
	assert.False(t, cfg.Log.JSON)
}

func TestLoadCachesConfig(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	first, err := Load()
	require.NoError(t, err)
	second, err := Load()
	require.NoError(t, err)
	assert.Same(t, first, second)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "drugage.toml")
	content := `
[synonym]
fuzzy_threshold = 0.9
vocabulary_path = "/data/vocab.yaml"

[analyzer]
default_limit = 25

[log]
json = true
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, 0.9, cfg.Synonym.FuzzyThreshold)
	assert.Equal(t, "/data/vocab.yaml", cfg.Synonym.VocabularyPath)
	assert.Equal(t, 25, cfg.Analyzer.DefaultLimit)
	assert.True(t, cfg.Log.JSON)
}

func TestLoadFromFilePartialKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "drugage.toml")
	content := `
[analyzer]
default_limit = 3
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, 3, cfg.Analyzer.DefaultLimit)
	assert.Equal(t, 0.8, cfg.Synonym.FuzzyThreshold)
}

func TestLoadFromFileMissing(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "absent.toml"))
	assert.Error(t, err)
}
