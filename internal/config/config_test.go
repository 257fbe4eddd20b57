package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "g++", cfg.Toolchain.CXX)
	assert.Equal(t, "c++20", cfg.Toolchain.Std)
	assert.Equal(t, ".", cfg.Output.Dir)
	assert.False(t, cfg.Output.KeepCPP)
}

func TestLoadWithNoPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadOverridesFromFile(t *testing.T) {
	path := t.TempDir() + "/stackc.toml"
	contents := `
[toolchain]
cxx = "clang++"
std = "c++20"
extra_flags = ["-O2"]

[output]
dir = "build"
keep_cpp = true
`
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "clang++", cfg.Toolchain.CXX)
	assert.Equal(t, []string{"-O2"}, cfg.Toolchain.ExtraFlags)
	assert.Equal(t, "build", cfg.Output.Dir)
	assert.True(t, cfg.Output.KeepCPP)
}

func TestLoadMissingFileIsError(t *testing.T) {
	_, err := Load(t.TempDir() + "/does-not-exist.toml")
	assert.Error(t, err)
}
