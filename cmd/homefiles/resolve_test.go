package homefiles

import (
	"encoding/json"
	"strings"
	"testing"

	herrors "github.com/arthur-debert/homefiles/pkg/errors"
	"github.com/arthur-debert/homefiles/pkg/output"
	"github.com/arthur-debert/homefiles/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func destinations(r output.Report) []string {
	var out []string
	for _, e := range r.Entries {
		out = append(out, e.Destination)
	}
	return out
}

func resolveJSON(t *testing.T, args ...string) (output.Report, result) {
	t.Helper()
	res := execute(t, append([]string{"resolve", "--format", "json"}, args...)...)
	require.NoError(t, res.err, res.stderr)

	var report output.Report
	require.NoError(t, json.Unmarshal([]byte(res.stdout), &report))
	return report, res
}

func TestResolvePlain(t *testing.T) {
	env, cfg := newDotfiles(t, `directories = ["home"]`, testutil.FileTree{
		"home": testutil.FileTree{
			".bashrc":    "export X=1",
			".vimrc.swp": "swap",
			".config": testutil.FileTree{
				"nvim": testutil.FileTree{"init.lua": "-- nvim"},
			},
		},
	})

	report, _ := resolveJSON(t, "--config", cfg)
	assert.Equal(t, env.SourceRoot, report.SourceRoot)
	assert.Equal(t, "plain", report.Layout)
	assert.Equal(t, []string{".bashrc", ".config/nvim/init.lua"}, destinations(report))
	assert.Equal(t, env.Path("home", ".bashrc"), report.Entries[0].Source)
	assert.Equal(t, "homefiles--config-nvim-init-lua", report.Entries[1].Name)
	assert.Empty(t, report.Entries[0].Checksum)
}

func TestResolveStowWithOverrides(t *testing.T) {
	_, cfg := newDotfiles(t, `directories = ["stow"]`, testutil.FileTree{
		"stow": testutil.FileTree{
			"bash": testutil.FileTree{".bashrc": "bash"},
			"git":  testutil.FileTree{".gitconfig": "git"},
			"vim":  testutil.FileTree{".vimrc": "vim"},
		},
	})

	report, _ := resolveJSON(t, "--config", cfg, "--layout", "stow")
	assert.Equal(t, "stow", report.Layout)
	assert.Equal(t, []string{".bashrc", ".gitconfig", ".vimrc"}, destinations(report))

	report, _ = resolveJSON(t, "--config", cfg, "--layout", "stow", "--packages", "vim,bash")
	assert.Equal(t, []string{".vimrc", ".bashrc"}, destinations(report))
}

func TestResolveExcludeOverride(t *testing.T) {
	_, cfg := newDotfiles(t, `directories = ["home"]`, testutil.FileTree{
		"home": testutil.FileTree{
			".bashrc":  "a",
			".bashrc~": "backup",
			"notes.md": "b",
		},
	})

	report, _ := resolveJSON(t, "--config", cfg, "--exclude", `\.md`)
	assert.Equal(t, []string{".bashrc", ".bashrc~"}, destinations(report))

	report, _ = resolveJSON(t, "--config", cfg)
	assert.Equal(t, []string{".bashrc", "notes.md"}, destinations(report))
}

func TestResolveEnvironmentLayout(t *testing.T) {
	_, cfg := newDotfiles(t, `directories = ["stow"]`, testutil.FileTree{
		"stow": testutil.FileTree{"zsh": testutil.FileTree{".zshrc": "zsh"}},
	})
	t.Setenv("HOMEFILES_LAYOUT", "stow")

	report, _ := resolveJSON(t, "--config", cfg)
	assert.Equal(t, []string{".zshrc"}, destinations(report))
}

func TestResolveChecksum(t *testing.T) {
	_, cfg := newDotfiles(t, `directories = ["home"]`, testutil.FileTree{
		"home": testutil.FileTree{".bashrc": "export X=1"},
	})

	report, _ := resolveJSON(t, "--config", cfg, "--checksum")
	require.Len(t, report.Entries, 1)
	assert.True(t, strings.HasPrefix(report.Entries[0].Checksum, "sha256:"))
}

func TestResolveDuplicatesWarn(t *testing.T) {
	_, cfg := newDotfiles(t, `directories = ["home", "work"]`, testutil.FileTree{
		"home": testutil.FileTree{".bashrc": "home"},
		"work": testutil.FileTree{".bashrc": "work"},
	})

	report, res := resolveJSON(t, "--config", cfg)
	assert.Equal(t, []string{".bashrc", ".bashrc"}, destinations(report))
	assert.Equal(t, []string{".bashrc"}, report.Duplicates)
	assert.Contains(t, res.stderr, "warning: .bashrc is produced by 2 sources")
}

func TestResolveTextOutput(t *testing.T) {
	_, cfg := newDotfiles(t, `directories = ["home"]`, testutil.FileTree{
		"home": testutil.FileTree{".bashrc": "a"},
	})

	res := execute(t, "list", "--config", cfg)
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, ".bashrc")
	assert.Contains(t, res.stdout, "home/.bashrc")
	assert.Contains(t, res.stdout, "1 mapping")
	assert.NotContains(t, res.stdout, "\x1b[")
}

func TestResolveErrors(t *testing.T) {
	t.Run("missing directory", func(t *testing.T) {
		_, cfg := newDotfiles(t, `directories = ["nope"]`, testutil.FileTree{})
		res := execute(t, "resolve", "--config", cfg)
		require.Error(t, res.err)
		assert.True(t, herrors.IsErrorCode(res.err, herrors.ErrDirNotFound))
		assert.True(t, herrors.IsResolutionError(res.err))
	})

	t.Run("stow file without package", func(t *testing.T) {
		_, cfg := newDotfiles(t, "layout = \"stow\"\ndirectories = [\"stow\"]", testutil.FileTree{
			"stow": testutil.FileTree{"stray": "x"},
		})
		res := execute(t, "resolve", "--config", cfg)
		assert.True(t, herrors.IsErrorCode(res.err, herrors.ErrPackageMissing))
	})

	t.Run("invalid layout flag", func(t *testing.T) {
		_, cfg := newDotfiles(t, `directories = []`, testutil.FileTree{})
		res := execute(t, "resolve", "--config", cfg, "--layout", "flat")
		assert.True(t, herrors.IsErrorCode(res.err, herrors.ErrLayoutInvalid))
		assert.True(t, herrors.IsConfigurationError(res.err))
	})

	t.Run("invalid pattern", func(t *testing.T) {
		_, cfg := newDotfiles(t, `directories = []`, testutil.FileTree{})
		res := execute(t, "resolve", "--config", cfg, "--exclude", "(")
		assert.True(t, herrors.IsErrorCode(res.err, herrors.ErrPatternInvalid))
	})

	t.Run("invalid format", func(t *testing.T) {
		_, cfg := newDotfiles(t, `directories = []`, testutil.FileTree{})
		res := execute(t, "resolve", "--config", cfg, "--format", "xml")
		require.Error(t, res.err)
		assert.Contains(t, res.err.Error(), "invalid --format")
	})

	t.Run("no config found", func(t *testing.T) {
		isolate(t)
		res := execute(t, "resolve")
		assert.True(t, herrors.IsErrorCode(res.err, herrors.ErrConfigLoad))
	})
}

func TestResolveEmpty(t *testing.T) {
	_, cfg := newDotfiles(t, `directories = []`, testutil.FileTree{})
	report, _ := resolveJSON(t, "--config", cfg)
	assert.NotNil(t, report.Entries)
	assert.Empty(t, report.Entries)
}
