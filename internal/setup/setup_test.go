package setup_test

import (
	"os"
	"path/filepath"
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/go-ports/memento/internal/checkers"
	"github.com/go-ports/memento/internal/setup"
)

func writeSettings(c *qt.C, claudeHome, content string) string {
	c.TB.Helper()
	c.Assert(os.MkdirAll(claudeHome, 0o755), qt.IsNil)
	path := setup.SettingsPath(claudeHome)
	c.Assert(os.WriteFile(path, []byte(content), 0o600), qt.IsNil)
	return path
}

// ---------------------------------------------------------------------------
// SetupClaudeCode
// ---------------------------------------------------------------------------

func TestSetupClaudeCode_HappyPath(t *testing.T) {
	c := qt.New(t)

	c.Run("first install creates settings.json with SessionStart hook", func(c *qt.C) {
		claudeHome := filepath.Join(t.TempDir(), ".claude")

		result := setup.SetupClaudeCode(claudeHome)
		c.Assert(result.Status, qt.Equals, "ok")
		c.Assert(result.Message, qt.Contains, "Installed")

		data, err := os.ReadFile(setup.SettingsPath(claudeHome))
		c.Assert(err, qt.IsNil)
		c.Assert(data, checkers.JSONPathEquals("$.hooks.SessionStart[0].hooks[0].type"), "command")
		c.Assert(data, checkers.JSONPathEquals("$.hooks.SessionStart[0].hooks[0].command"), setup.HookCommand)
	})

	c.Run("second install is idempotent", func(c *qt.C) {
		claudeHome := filepath.Join(t.TempDir(), ".claude")

		setup.SetupClaudeCode(claudeHome)
		result := setup.SetupClaudeCode(claudeHome)
		c.Assert(result.Status, qt.Equals, "ok")
		c.Assert(result.Message, qt.Equals, "Already installed")
	})

	c.Run("existing settings and hook groups are preserved", func(c *qt.C) {
		claudeHome := filepath.Join(t.TempDir(), ".claude")
		path := writeSettings(c, claudeHome, `{
  "model": "opus",
  "hooks": {
    "SessionStart": [{"hooks": [{"type": "command", "command": "other-tool start"}]}],
    "Stop": [{"hooks": [{"type": "command", "command": "other-tool stop"}]}]
  }
}`)

		result := setup.SetupClaudeCode(claudeHome)
		c.Assert(result.Message, qt.Contains, "Installed")

		data, err := os.ReadFile(path)
		c.Assert(err, qt.IsNil)
		c.Assert(data, checkers.JSONPathEquals("$.model"), "opus")
		c.Assert(data, checkers.JSONPathEquals("$.hooks.SessionStart[0].hooks[0].command"), "other-tool start")
		c.Assert(data, checkers.JSONPathEquals("$.hooks.SessionStart[1].hooks[0].command"), setup.HookCommand)
		c.Assert(data, checkers.JSONPathEquals("$.hooks.Stop[0].hooks[0].command"), "other-tool stop")
	})

	c.Run("malformed settings are replaced", func(c *qt.C) {
		claudeHome := filepath.Join(t.TempDir(), ".claude")
		path := writeSettings(c, claudeHome, `{not json`)

		result := setup.SetupClaudeCode(claudeHome)
		c.Assert(result.Message, qt.Contains, "Installed")

		data, err := os.ReadFile(path)
		c.Assert(err, qt.IsNil)
		c.Assert(data, checkers.JSONPathEquals("$.hooks.SessionStart[0].hooks[0].command"), setup.HookCommand)
	})
}

// ---------------------------------------------------------------------------
// UninstallClaudeCode
// ---------------------------------------------------------------------------

func TestUninstallClaudeCode_HappyPath(t *testing.T) {
	c := qt.New(t)

	c.Run("installed hook is removed and empty settings deleted", func(c *qt.C) {
		claudeHome := filepath.Join(t.TempDir(), ".claude")

		setup.SetupClaudeCode(claudeHome)
		result := setup.UninstallClaudeCode(claudeHome)
		c.Assert(result.Status, qt.Equals, "ok")
		c.Assert(result.Message, qt.Contains, "Removed: SessionStart")

		_, err := os.Stat(setup.SettingsPath(claudeHome))
		c.Assert(os.IsNotExist(err), qt.IsTrue)
	})

	c.Run("unrelated keys survive uninstall", func(c *qt.C) {
		claudeHome := filepath.Join(t.TempDir(), ".claude")
		path := writeSettings(c, claudeHome, `{
  "model": "opus",
  "hooks": {
    "SessionStart": [
      {"hooks": [{"type": "command", "command": "other-tool start"}]},
      {"hooks": [{"type": "command", "command": "memento session-start"}]}
    ]
  }
}`)

		result := setup.UninstallClaudeCode(claudeHome)
		c.Assert(result.Message, qt.Contains, "Removed")

		data, err := os.ReadFile(path)
		c.Assert(err, qt.IsNil)
		c.Assert(data, checkers.JSONPathEquals("$.model"), "opus")
		c.Assert(data, checkers.JSONPathEquals("$.hooks.SessionStart[0].hooks[0].command"), "other-tool start")
		c.Assert(string(data), qt.Not(qt.Contains), setup.HookCommand)
	})

	c.Run("nothing to remove when settings are absent", func(c *qt.C) {
		claudeHome := filepath.Join(t.TempDir(), ".claude")

		result := setup.UninstallClaudeCode(claudeHome)
		c.Assert(result.Status, qt.Equals, "ok")
		c.Assert(result.Message, qt.Equals, "Nothing to remove")
	})

	c.Run("nothing to remove when hook is not installed", func(c *qt.C) {
		claudeHome := filepath.Join(t.TempDir(), ".claude")
		writeSettings(c, claudeHome, `{"model":"opus"}`)

		result := setup.UninstallClaudeCode(claudeHome)
		c.Assert(result.Message, qt.Equals, "Nothing to remove")
	})

	c.Run("reinstall succeeds after uninstall", func(c *qt.C) {
		claudeHome := filepath.Join(t.TempDir(), ".claude")

		setup.SetupClaudeCode(claudeHome)
		setup.UninstallClaudeCode(claudeHome)
		result := setup.SetupClaudeCode(claudeHome)
		c.Assert(result.Message, qt.Contains, "Installed")
	})
}
