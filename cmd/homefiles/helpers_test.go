package homefiles

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/homefiles/pkg/testutil"
	"github.com/stretchr/testify/require"
)

// isolate points XDG dirs at temp directories and disables colour so
// command output is deterministic
func isolate(t *testing.T) {
	t.Helper()
	t.Cleanup(xdg.Reload)
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("XDG_STATE_HOME", t.TempDir())
	t.Setenv("HOMEFILES_CONFIG", "")
	t.Setenv("NO_COLOR", "1")
	xdg.Reload()
}

type result struct {
	stdout string
	stderr string
	err    error
}

func execute(t *testing.T, args ...string) result {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return result{stdout: stdout.String(), stderr: stderr.String(), err: err}
}

// newDotfiles creates an isolated source root with a config file at its top
func newDotfiles(t *testing.T, configTOML string, tree testutil.FileTree) (*testutil.TestEnvironment, string) {
	t.Helper()
	isolate(t)

	env := testutil.NewTestEnvironment(t, testutil.EnvIsolated).WithFileTree(tree)
	path := filepath.Join(env.SourceRoot, "homefiles.toml")
	require.NoError(t, os.WriteFile(path, []byte(configTOML), 0644))
	return env, path
}
