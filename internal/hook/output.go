// Package hook builds the SessionStart payload Claude Code injects into a new
// session.
package hook

// EventSessionStart is the hook event name echoed back to the host.
const EventSessionStart = "SessionStart"

// Output is the JSON object a SessionStart hook writes to stdout.
type Output struct {
	HookSpecificOutput SpecificOutput `json:"hookSpecificOutput"`
}

// SpecificOutput carries the event name and the context to inject.
// AdditionalContext is always serialized, even when empty.
type SpecificOutput struct {
	HookEventName     string `json:"hookEventName"`
	AdditionalContext string `json:"additionalContext"`
}

// NewOutput wraps content in the SessionStart envelope.
func NewOutput(content string) Output {
	return Output{
		HookSpecificOutput: SpecificOutput{
			HookEventName:     EventSessionStart,
			AdditionalContext: content,
		},
	}
}

// Compose appends dynamic to static, separated by a blank line.
// An empty dynamic leaves static untouched.
func Compose(static, dynamic string) string {
	if dynamic == "" {
		return static
	}
	return static + "\n\n" + dynamic
}
