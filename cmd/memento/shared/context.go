// Package shared holds the context passed to all CLI commands.
package shared

import (
	"os"
	"path/filepath"

	"github.com/go-ports/memento/internal/config"
	"github.com/go-ports/memento/internal/hook"
)

// Context carries global CLI state (flags set on the root command) and the
// process lookups commands resolve the plugin root with.
type Context struct {
	// Debug enables debug logging on stderr.
	Debug bool

	// LookupEnv and Executable default to os.LookupEnv and os.Executable
	// when nil. Tests replace them to avoid touching the real process.
	LookupEnv  config.LookupEnvFunc
	Executable config.ExecutableFunc
}

// PluginRoot resolves the plugin root and its source.
func (c *Context) PluginRoot() (root, source string, err error) {
	return config.ResolvePluginRoot(c.LookupEnv, c.Executable)
}

// Emitter returns a hook.Emitter rooted at the resolved plugin root.
func (c *Context) Emitter() (*hook.Emitter, error) {
	root, _, err := c.PluginRoot()
	if err != nil {
		return nil, err
	}
	return &hook.Emitter{PluginRoot: root, Dynamic: hook.NoDynamicContext{}}, nil
}

// ResolveConfigDir picks the agent config directory: an explicit --config-dir,
// else <cwd>/<dotDir> for project scope, else ~/<dotDir>.
//
//revive:disable:flag-parameter
func ResolveConfigDir(dotDir, configDir string, project bool) string {
	if configDir != "" {
		return configDir
	}
	if project {
		cwd, _ := os.Getwd()
		return filepath.Join(cwd, dotDir)
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, dotDir)
}

//revive:enable:flag-parameter
