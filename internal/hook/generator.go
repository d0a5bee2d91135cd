package hook

// Generator produces per-session text appended after the reference document.
type Generator interface {
	Generate() string
}

// NoDynamicContext is the Generator in use: nothing is computed per session.
type NoDynamicContext struct{}

// Generate always returns "".
func (NoDynamicContext) Generate() string { return "" }
