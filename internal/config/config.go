// Package config resolves the plugin root and the reference document location.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// PluginRootEnv names the environment variable the host sets to the plugin
// install directory.
const PluginRootEnv = "CLAUDE_PLUGIN_ROOT"

// Root sources reported by ResolvePluginRoot.
const (
	SourceEnv        = "env"
	SourceExecutable = "executable"
)

// LookupEnvFunc has the signature of os.LookupEnv.
type LookupEnvFunc func(key string) (string, bool)

// ExecutableFunc has the signature of os.Executable.
type ExecutableFunc func() (string, error)

// ---------------------------------------------------------------------------
// Plugin root resolution
// ---------------------------------------------------------------------------

// ResolvePluginRoot returns the plugin root path and the source of the resolution.
// Priority: CLAUDE_PLUGIN_ROOT env → directory of the running executable.
// The path is not checked for existence.
// Nil lookups fall back to os.LookupEnv and os.Executable.
func ResolvePluginRoot(lookupEnv LookupEnvFunc, executable ExecutableFunc) (path, source string, err error) {
	if lookupEnv == nil {
		lookupEnv = os.LookupEnv
	}
	if executable == nil {
		executable = os.Executable
	}

	if env, ok := lookupEnv(PluginRootEnv); ok && env != "" {
		return env, SourceEnv, nil
	}

	exe, err := executable()
	if err != nil {
		return "", "", fmt.Errorf("resolve plugin root: %w", err)
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	abs, err := filepath.Abs(exe)
	if err != nil {
		return "", "", fmt.Errorf("resolve plugin root: %w", err)
	}
	return filepath.Dir(abs), SourceExecutable, nil
}

// ReferencePath returns <root>/hooks/references/memento-session-start.md.
func ReferencePath(root string) string {
	return filepath.Join(root, "hooks", "references", "memento-session-start.md")
}

// ---------------------------------------------------------------------------
// Effective settings
// ---------------------------------------------------------------------------

// Settings is the effective configuration reported by `memento config`.
type Settings struct {
	PluginRoot       string `yaml:"plugin_root"`
	PluginRootSource string `yaml:"plugin_root_source"`
	ReferencePath    string `yaml:"reference_path"`
	ReferenceExists  bool   `yaml:"reference_exists"`
	ReferenceBytes   int64  `yaml:"reference_bytes"`
}

// Describe builds a Settings snapshot for root.
// A missing reference is reported, not treated as an error.
func Describe(root, source string) (*Settings, error) {
	s := &Settings{
		PluginRoot:       root,
		PluginRootSource: source,
		ReferencePath:    ReferencePath(root),
	}
	info, err := os.Stat(s.ReferencePath)
	if errors.Is(err, os.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, err
	}
	s.ReferenceExists = !info.IsDir()
	if s.ReferenceExists {
		s.ReferenceBytes = info.Size()
	}
	return s, nil
}
