package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/nodegrid/manhattan/layout"
	"github.com/stretchr/testify/require"
)

func TestLoadFillsDefaultsForOmittedFields(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "manhattan.yaml")
	require.NoError(t, os.WriteFile(path, []byte("debug: true\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.True(t, cfg.Debug)
	require.Equal(t, 5, cfg.TimeoutSecs)
	require.True(t, cfg.Strict)
	require.True(t, cfg.FatalErrors)
	require.Equal(t, "adhoc", cfg.Layout.Type)
}

func TestLoadRejectsForceLayoutType(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "manhattan.yaml")
	require.NoError(t, os.WriteFile(path, []byte("layout:\n  type: force\n"), 0o644))

	_, err := Load(path)
	require.ErrorIs(t, err, layout.ErrForceLayoutUnimplemented)
}

func TestLoadRejectsMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	require.Error(t, err)
}

func TestGraphOptionsHonoursUndirected(t *testing.T) {
	cfg := Default()
	cfg.Undirected = true
	opts := cfg.GraphOptions()
	require.Len(t, opts, 3)
}

func TestLayoutOptionsPrefersLayoutTimeoutOverride(t *testing.T) {
	cfg := Default()
	cfg.TimeoutSecs = 5
	cfg.Layout.TimeoutSecs = 30
	opts := cfg.LayoutOptions(nil)
	require.NotEmpty(t, opts)
}
