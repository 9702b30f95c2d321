package paths

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/homefiles/pkg/errors"
)

// Environment variable names
const (
	// EnvConfig overrides configuration file discovery
	EnvConfig = "HOMEFILES_CONFIG"

	// EnvHome is the standard home directory variable
	EnvHome = "HOME"
)

const (
	// AppDirName is the directory name used under XDG base directories
	AppDirName = "homefiles"

	// ConfigFileTOML is the preferred configuration file name
	ConfigFileTOML = "config.toml"

	// ConfigFileYAML is the alternative configuration file name
	ConfigFileYAML = "config.yaml"
)

// Resolve turns a configured directory reference into an absolute path.
// References starting with "/" are returned unchanged; anything else is
// joined onto sourceRoot.
func Resolve(ref, sourceRoot string) string {
	if strings.HasPrefix(ref, "/") {
		return ref
	}
	return filepath.Join(sourceRoot, ref)
}

// GetHomeDirectory returns the user's home directory.
// It first tries os.UserHomeDir(), then falls back to the HOME environment variable.
func GetHomeDirectory() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err == nil && homeDir != "" {
		return homeDir, nil
	}

	if homeDir = os.Getenv(EnvHome); homeDir != "" {
		return homeDir, nil
	}

	return "", errors.New(errors.ErrConfigLoad, "unable to determine home directory: neither os.UserHomeDir() nor HOME environment variable are available")
}

// ExpandHome expands a leading ~ to the user's home directory
func ExpandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := GetHomeDirectory()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}

// DefaultConfigPath is where genconfig writes when no path is given
func DefaultConfigPath() string {
	return filepath.Join(xdg.ConfigHome, AppDirName, ConfigFileTOML)
}

// FindConfigFile locates the configuration file. HOMEFILES_CONFIG wins;
// otherwise the XDG config search path is scanned for config.toml, then
// config.yaml.
func FindConfigFile() (string, error) {
	if explicit := os.Getenv(EnvConfig); explicit != "" {
		return ExpandHome(explicit)
	}

	for _, name := range []string{ConfigFileTOML, ConfigFileYAML} {
		if found, err := xdg.SearchConfigFile(filepath.Join(AppDirName, name)); err == nil {
			return found, nil
		}
	}

	return "", errors.Newf(errors.ErrConfigLoad, "no configuration file found (looked for %s and %s under %s)",
		ConfigFileTOML, ConfigFileYAML, filepath.Join(xdg.ConfigHome, AppDirName)).
		WithDetail("searched", append([]string{xdg.ConfigHome}, xdg.ConfigDirs...))
}
