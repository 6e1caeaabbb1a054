package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := Default()
	require.Equal(t, JudgeSherlock, cfg.Judge)
	require.Equal(t, ScopeLogarithmic, cfg.Scope)
	require.Positive(t, cfg.Workers)
	require.Positive(t, cfg.MaxNodes)
}

func TestLoadOverridesOnlySetFields(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "engine.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
judge = "randaap"
workers = 8
`), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, JudgeRandAap, cfg.Judge)
	require.Equal(t, 8, cfg.Workers)
	require.Equal(t, ScopeLogarithmic, cfg.Scope, "unset fields should keep their default")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)
}
