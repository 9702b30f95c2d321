package paths

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/homefiles/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name string
		ref  string
		root string
		want string
	}{
		{"relative", "bash", "/src", "/src/bash"},
		{"nested_relative", "stow/extra", "/home/u/dotfiles", "/home/u/dotfiles/stow/extra"},
		{"absolute_ignores_root", "/etc/skel/dotfiles", "/src", "/etc/skel/dotfiles"},
		{"absolute_unchanged", "/etc//skel/", "/src", "/etc//skel/"},
		{"dot", ".", "/src", "/src"},
		{"parent", "../shared", "/src/home", "/src/shared"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Resolve(tt.ref, tt.root))
		})
	}
}

func TestExpandHome(t *testing.T) {
	t.Setenv("HOME", "/home/tester")

	got, err := ExpandHome("~/dotfiles")
	require.NoError(t, err)
	assert.Equal(t, "/home/tester/dotfiles", got)

	got, err = ExpandHome("~")
	require.NoError(t, err)
	assert.Equal(t, "/home/tester", got)

	got, err = ExpandHome("~other/x")
	require.NoError(t, err)
	assert.Equal(t, "~other/x", got)
}

func TestFindConfigFile(t *testing.T) {
	t.Run("explicit_env", func(t *testing.T) {
		t.Setenv(EnvConfig, "/tmp/somewhere.toml")
		got, err := FindConfigFile()
		require.NoError(t, err)
		assert.Equal(t, "/tmp/somewhere.toml", got)
	})

	t.Run("xdg_yaml_fallback", func(t *testing.T) {
		t.Cleanup(xdg.Reload)
		cfgHome := t.TempDir()
		t.Setenv(EnvConfig, "")
		t.Setenv("XDG_CONFIG_HOME", cfgHome)
		t.Setenv("XDG_CONFIG_DIRS", filepath.Join(cfgHome, "none"))
		xdg.Reload()

		require.NoError(t, os.MkdirAll(filepath.Join(cfgHome, AppDirName), 0755))
		yamlPath := filepath.Join(cfgHome, AppDirName, ConfigFileYAML)
		require.NoError(t, os.WriteFile(yamlPath, []byte("layout: plain\n"), 0644))

		got, err := FindConfigFile()
		require.NoError(t, err)
		assert.Equal(t, yamlPath, got)
		assert.Equal(t, filepath.Join(cfgHome, AppDirName, ConfigFileTOML), DefaultConfigPath())
	})

	t.Run("missing", func(t *testing.T) {
		t.Cleanup(xdg.Reload)
		cfgHome := t.TempDir()
		t.Setenv(EnvConfig, "")
		t.Setenv("XDG_CONFIG_HOME", cfgHome)
		t.Setenv("XDG_CONFIG_DIRS", filepath.Join(cfgHome, "none"))
		xdg.Reload()

		_, err := FindConfigFile()
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigLoad))
	})
}
