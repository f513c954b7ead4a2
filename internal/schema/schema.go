// Package schema validates graph snapshots and run inputs against the
// embedded JSON schemas before they reach the decoders. Structural
// problems (wrong types, unknown fields, bad status values) are reported
// with the JSON path of every offending field, which a plain
// json.Unmarshal would either hide or collapse into one error.
package schema

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/xeipuuv/gojsonschema"
)

var (
	//go:embed graph.schema.json
	graphSchema []byte

	//go:embed input.schema.json
	inputSchema []byte
)

// ErrInvalid is matched by every *Error.
var ErrInvalid = errors.New("schema: document does not match")

// Violation is one schema error.
type Violation struct {
	Field       string `json:"field"`
	Description string `json:"description"`
}

func (v Violation) String() string {
	return v.Field + ": " + v.Description
}

// Error lists every violation found in one document.
type Error struct {
	Schema     string
	Violations []Violation
}

func (e *Error) Error() string {
	parts := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		parts[i] = v.String()
	}
	return fmt.Sprintf("%s: %s", e.Schema, strings.Join(parts, "; "))
}

// Is makes errors.Is(err, ErrInvalid) hold.
func (e *Error) Is(target error) bool { return target == ErrInvalid }

type compiled struct {
	graph *gojsonschema.Schema
	input *gojsonschema.Schema
}

var load = sync.OnceValues(func() (compiled, error) {
	g, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(graphSchema))
	if err != nil {
		return compiled{}, fmt.Errorf("compile graph schema: %w", err)
	}
	sl := gojsonschema.NewSchemaLoader()
	if err := sl.AddSchemas(gojsonschema.NewBytesLoader(graphSchema)); err != nil {
		return compiled{}, fmt.Errorf("register graph schema: %w", err)
	}
	in, err := sl.Compile(gojsonschema.NewBytesLoader(inputSchema))
	if err != nil {
		return compiled{}, fmt.Errorf("compile input schema: %w", err)
	}
	return compiled{graph: g, input: in}, nil
})

// Graph validates a JSON-encoded core.Graph.
func Graph(doc []byte) error {
	c, err := load()
	if err != nil {
		return err
	}
	return validate("graph", c.graph, gojsonschema.NewBytesLoader(doc))
}

// Input validates a JSON-encoded catalog.Input.
func Input(doc []byte) error {
	c, err := load()
	if err != nil {
		return err
	}
	return validate("input", c.input, gojsonschema.NewBytesLoader(doc))
}

// GoValue validates an already decoded value (for example YAML parsed into
// map[string]any) against the input schema.
func GoValue(v any) error {
	c, err := load()
	if err != nil {
		return err
	}
	return validate("input", c.input, gojsonschema.NewGoLoader(v))
}

func validate(name string, s *gojsonschema.Schema, doc gojsonschema.JSONLoader) error {
	res, err := s.Validate(doc)
	if err != nil {
		// Not JSON at all.
		return &Error{Schema: name, Violations: []Violation{{Field: "(root)", Description: err.Error()}}}
	}
	if res.Valid() {
		return nil
	}
	out := &Error{Schema: name, Violations: make([]Violation, 0, len(res.Errors()))}
	for _, re := range res.Errors() {
		out.Violations = append(out.Violations, Violation{Field: re.Field(), Description: re.Description()})
	}
	return out
}

// Raw returns the embedded schema documents, keyed by name, for serving.
func Raw() map[string][]byte {
	return map[string][]byte{"graph": graphSchema, "input": inputSchema}
}
