package hook

import (
	"fmt"
	"io"

	"github.com/goccy/go-json"
)

// Emitter assembles the SessionStart output for one invocation.
type Emitter struct {
	// PluginRoot is the directory the reference document is resolved against.
	PluginRoot string
	// Dynamic supplies the per-session text. Nil means NoDynamicContext.
	Dynamic Generator
}

// Content returns the additional context: the reference document followed by
// any dynamic text.
func (e *Emitter) Content() (string, error) {
	static, err := LoadBoilerplate(e.PluginRoot)
	if err != nil {
		return "", err
	}
	gen := e.Dynamic
	if gen == nil {
		gen = NoDynamicContext{}
	}
	return Compose(static, gen.Generate()), nil
}

// Emit writes the SessionStart output to w as one line of JSON.
func (e *Emitter) Emit(w io.Writer) error {
	content, err := e.Content()
	if err != nil {
		return err
	}
	return Write(w, NewOutput(content))
}

// Write encodes out to w followed by a newline. HTML characters are left
// unescaped so markdown reaches the host as written.
func Write(w io.Writer, out Output) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("write hook output: %w", err)
	}
	return nil
}
