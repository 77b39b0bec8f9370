package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileYieldsDefaults(t *testing.T) {
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_ReadsFile(t *testing.T) {
	dir := t.TempDir()
	content := `packages = ["./ir/...", "./backend/..."]
output = "generated"
providers = "generated/providers"
json_logs = true
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "plugingen.toml"), []byte(content), 0o644))

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"./ir/...", "./backend/..."}, cfg.Packages)
	assert.Equal(t, "generated", cfg.Output)
	assert.Equal(t, "generated/providers", cfg.Providers)
	assert.True(t, cfg.JSONLogs)
}

func TestWrite_RoundTrips(t *testing.T) {
	dir := t.TempDir()
	want := Config{
		Packages:  []string{"./..."},
		Output:    "out",
		Providers: "out/providers",
		JSONLogs:  true,
	}

	require.NoError(t, Write(want, filepath.Join(dir, "plugingen.toml")))

	got, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestLoad_MalformedFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "plugingen.toml"), []byte("packages = ["), 0o644))

	_, err := Load(dir)
	require.Error(t, err)
}
