// Package where implements a cross-platform resolver for application-specific filesystem paths.
package where

import (
	"os"
	"path/filepath"

	"github.com/conatus/literal-tools/constant"
	"github.com/conatus/literal-tools/filesystem"
	"github.com/samber/lo"
)

const (
	// EnvConfigPath overrides the default configuration directory.
	EnvConfigPath = "LITERAL_CONFIG_PATH"

	// EnvTokenPath overrides the location of the session token file.
	EnvTokenPath = "LITERAL_TOKEN_PATH"
)

// ensureDir guarantees the existence of a directory at the specified path, creating it if necessary.
func ensureDir(path string) string {
	lo.Must0(filesystem.API().MkdirAll(path, os.ModePerm))
	return path
}

// Config resolves the absolute path to the primary application configuration directory.
// It honours XDG_CONFIG_HOME on Linux and the equivalent user profile paths on Darwin and Windows.
// The path can be explicitly specified via the LITERAL_CONFIG_PATH environment variable.
func Config() string {
	if custom, ok := os.LookupEnv(EnvConfigPath); ok {
		return ensureDir(custom)
	}

	base := lo.Must(os.UserConfigDir())
	return ensureDir(filepath.Join(base, constant.Literal))
}

// Logs resolves the absolute path to the directory used for application diagnostic logs.
func Logs() string {
	return ensureDir(filepath.Join(Config(), "logs"))
}

// Token resolves the path of the plain-text session token file.
// It lives directly in the user's home directory unless LITERAL_TOKEN_PATH is set.
func Token() string {
	if custom, ok := os.LookupEnv(EnvTokenPath); ok {
		return custom
	}

	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, constant.TokenFile)
}
