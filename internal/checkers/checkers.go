// Package checkers provides quicktest checkers shared by the test suites.
package checkers

import (
	"fmt"
	"reflect"

	qt "github.com/frankban/quicktest"
	"github.com/goccy/go-json"
	"github.com/yalp/jsonpath"
)

// JSONPathEquals returns a checker asserting that the JSON document passed as
// got ([]byte or string) holds want at the given JSONPath expression.
// Numeric wants are compared as float64, the type JSON decoding produces.
//
//	c.Assert(data, checkers.JSONPathEquals("$.hooks.SessionStart[0].hooks[0].type"), "command")
func JSONPathEquals(path string) qt.Checker {
	return &jsonPathChecker{
		argNames: []string{"got", "want"},
		path:     path,
	}
}

type jsonPathChecker struct {
	argNames []string
	path     string
}

// ArgNames implements qt.Checker.
func (c *jsonPathChecker) ArgNames() []string { return c.argNames }

// Check implements qt.Checker.
func (c *jsonPathChecker) Check(got any, args []any, note func(key string, value any)) error {
	var data []byte
	switch v := got.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return qt.BadCheckf("got must be []byte or string, not %T", got)
	}

	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("cannot unmarshal JSON: %w", err)
	}

	value, err := jsonpath.Read(doc, c.path)
	if err != nil {
		note("path", c.path)
		return fmt.Errorf("cannot read JSONPath: %w", err)
	}

	want := normalize(args[0])
	if !reflect.DeepEqual(value, want) {
		note("path", c.path)
		note("value at path", value)
		return fmt.Errorf("value at path does not match")
	}
	return nil
}

func normalize(v any) any {
	switch n := v.(type) {
	case int:
		return float64(n)
	case int64:
		return float64(n)
	case float32:
		return float64(n)
	}
	return v
}
