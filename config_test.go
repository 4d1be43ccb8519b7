package main

import (
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	name := filepath.Join(t.TempDir(), "screencheck.yaml")
	require.NoError(t, os.WriteFile(name, []byte(content), 0644))
	return name
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := loadConfig(filepath.Join(t.TempDir(), "missing.yaml"), false)
	require.NoError(t, err)

	assert.Equal(t, defaultConfig(), cfg)
	assert.Equal(t, uint(8), cfg.Threads)
	assert.Equal(t, "screencheck.log", cfg.Log)
	assert.True(t, cfg.Progress)
	assert.Empty(t, cfg.Prefixes)
}

func TestLoadConfig_MissingRequired(t *testing.T) {
	_, err := loadConfig(filepath.Join(t.TempDir(), "missing.yaml"), true)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadConfig_File(t *testing.T) {
	name := writeConfig(t, `
prefixes:
  - fastlane/screenshots/ja/
  - fastlane/screenshots/en-US/
threads: 2
progress: false
`)

	cfg, err := loadConfig(name, true)
	require.NoError(t, err)

	assert.Equal(t, []string{"fastlane/screenshots/ja/", "fastlane/screenshots/en-US/"}, cfg.Prefixes)
	assert.Equal(t, uint(2), cfg.Threads)
	assert.False(t, cfg.Progress)
	assert.Equal(t, "screencheck.log", cfg.Log, "unset keys keep their default")
}

func TestLoadConfig_Empty(t *testing.T) {
	cfg, err := loadConfig(writeConfig(t, ""), true)
	require.NoError(t, err)
	assert.Equal(t, defaultConfig(), cfg)
}

func TestLoadConfig_UnknownKey(t *testing.T) {
	_, err := loadConfig(writeConfig(t, "thread: 4\n"), true)
	assert.Error(t, err)
}

func TestLoadConfig_ZeroThreads(t *testing.T) {
	cfg, err := loadConfig(writeConfig(t, "threads: 0\n"), true)
	require.NoError(t, err)
	assert.Error(t, cfg.validate())
}

func setFlags(t *testing.T, values map[string]string) {
	t.Helper()
	for name, value := range values {
		name := name
		old := flag.Lookup(name).Value.String()
		require.NoError(t, flag.Set(name, value))
		t.Cleanup(func() { _ = flag.Set(name, old) })
	}
}

func TestApplyFlags(t *testing.T) {
	setFlags(t, map[string]string{"prefix": "shots/", "threads": "3", "progress": "false"})

	cfg := defaultConfig()
	cfg.Prefixes = []string{"fastlane/"}
	cfg.Log = "from-file.log"
	cfg.applyFlags()

	assert.Equal(t, []string{"shots/"}, cfg.Prefixes)
	assert.Equal(t, uint(3), cfg.Threads)
	assert.False(t, cfg.Progress)
	assert.Equal(t, "from-file.log", cfg.Log, "flags left unset do not override the file")
}

func TestApplyFlags_ThreadsOverrideFile(t *testing.T) {
	cfg, err := loadConfig(writeConfig(t, "threads: 0\n"), true)
	require.NoError(t, err)

	setFlags(t, map[string]string{"threads": "4"})
	cfg.applyFlags()

	assert.Equal(t, uint(4), cfg.Threads)
	assert.NoError(t, cfg.validate())
}
