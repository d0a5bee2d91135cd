// Package setup installs and uninstalls the memento SessionStart hook in
// Claude Code settings.
package setup

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/goccy/go-json"
)

// HookCommand is the command Claude Code runs at session start.
const HookCommand = "memento session-start"

const sessionStartEvent = "SessionStart"

// Result is the return value from all Setup/Uninstall functions.
type Result struct {
	Status  string // always "ok"
	Message string
}

func ok(msg string) Result          { return Result{Status: "ok", Message: msg} }
func okf(f string, a ...any) Result { return ok(fmt.Sprintf(f, a...)) }

// ---------------------------------------------------------------------------
// Default path helpers
// ---------------------------------------------------------------------------

// DefaultClaudeHome returns the default ~/.claude directory.
func DefaultClaudeHome() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".claude")
}

// ---------------------------------------------------------------------------
// JSON helpers
// ---------------------------------------------------------------------------

func readJSON(path string) map[string]any {
	data, err := os.ReadFile(path)
	if err != nil {
		return make(map[string]any)
	}
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil || m == nil {
		return make(map[string]any)
	}
	return m
}

func writeJSON(path string, data map[string]any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	b, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return err
	}
	b = append(b, '\n')
	return os.WriteFile(path, b, 0o644) // #nosec G306 -- Claude Code settings hold hook commands, not secrets
}

// ---------------------------------------------------------------------------
// Hook group helpers
// ---------------------------------------------------------------------------

func hookGroup() map[string]any {
	return map[string]any{
		"hooks": []any{
			map[string]any{
				"type":    "command",
				"command": HookCommand,
			},
		},
	}
}

// isMementoGroup reports whether a hook group runs the memento session-start command.
func isMementoGroup(g any) bool {
	group, _ := g.(map[string]any)
	inner, _ := group["hooks"].([]any)
	for _, h := range inner {
		hm, _ := h.(map[string]any)
		cmd, _ := hm["command"].(string)
		if strings.Contains(cmd, HookCommand) {
			return true
		}
	}
	return false
}

// installSessionStartHook adds the memento group to settings.
// Returns false when an equivalent group is already present.
func installSessionStartHook(settings map[string]any) bool {
	hooks, _ := settings["hooks"].(map[string]any)
	if hooks == nil {
		hooks = make(map[string]any)
		settings["hooks"] = hooks
	}
	groups, _ := hooks[sessionStartEvent].([]any)
	for _, g := range groups {
		if isMementoGroup(g) {
			return false
		}
	}
	hooks[sessionStartEvent] = append(groups, hookGroup())
	return true
}

// removeSessionStartHooks purges memento groups from every hook event.
// Returns the event names from which hooks were removed.
func removeSessionStartHooks(settings map[string]any) []string {
	hooks, _ := settings["hooks"].(map[string]any)
	if hooks == nil {
		return nil
	}
	var removed []string
	for event, raw := range hooks {
		groups, ok := raw.([]any)
		if !ok {
			continue
		}
		filtered := make([]any, 0, len(groups))
		for _, g := range groups {
			if !isMementoGroup(g) {
				filtered = append(filtered, g)
			}
		}
		if len(filtered) != len(groups) {
			removed = append(removed, event)
			if len(filtered) > 0 {
				hooks[event] = filtered
			} else {
				delete(hooks, event)
			}
		}
	}
	if len(hooks) == 0 {
		delete(settings, "hooks")
	}
	slices.Sort(removed)
	return removed
}

// ---------------------------------------------------------------------------
// SetupClaudeCode / UninstallClaudeCode
// ---------------------------------------------------------------------------

// SettingsPath returns the settings.json inside claudeHome.
func SettingsPath(claudeHome string) string {
	return filepath.Join(claudeHome, "settings.json")
}

// SetupClaudeCode registers the SessionStart hook in Claude Code.
// claudeHome defaults to ~/.claude when empty.
func SetupClaudeCode(claudeHome string) Result {
	if claudeHome == "" {
		claudeHome = DefaultClaudeHome()
	}
	settingsPath := SettingsPath(claudeHome)
	settings := readJSON(settingsPath)
	if !installSessionStartHook(settings) {
		return ok("Already installed")
	}
	if err := writeJSON(settingsPath, settings); err != nil {
		return okf("Install failed: %v", err)
	}
	return okf("Installed: %s hook in %s", sessionStartEvent, settingsPath)
}

// UninstallClaudeCode removes the SessionStart hook from Claude Code.
// The settings file is deleted when nothing else remains in it.
func UninstallClaudeCode(claudeHome string) Result {
	if claudeHome == "" {
		claudeHome = DefaultClaudeHome()
	}
	settingsPath := SettingsPath(claudeHome)
	if _, err := os.Stat(settingsPath); os.IsNotExist(err) {
		return ok("Nothing to remove")
	}
	settings := readJSON(settingsPath)
	removed := removeSessionStartHooks(settings)
	if len(removed) == 0 {
		return ok("Nothing to remove")
	}
	var err error
	if len(settings) == 0 {
		err = os.Remove(settingsPath)
	} else {
		err = writeJSON(settingsPath, settings)
	}
	if err != nil {
		return okf("Uninstall failed: %v", err)
	}
	return okf("Removed: %s hooks from %s", strings.Join(removed, ", "), settingsPath)
}
