// Package script replays a list of structure operations, feeding the final
// snapshot of each run into the next. Scripts are YAML (or JSON, by file
// extension):
//
//	algorithm: red-black-tree
//	operations:
//	  - {kind: insert, value: 10}
//	  - {kind: insert, value: 20}
//	  - {kind: delete, value: 10}
package script

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/algoscope/catalog"
	"github.com/katalvlaran/algoscope/core"
	"github.com/katalvlaran/algoscope/internal/schema"
)

var (
	// ErrNotStructure indicates a script naming a sorting or graph algorithm.
	ErrNotStructure = errors.New("script: algorithm has no operations")

	// ErrEmpty indicates a script without operations.
	ErrEmpty = errors.New("script: no operations")
)

// Script is a starting snapshot and the operations applied to it in order.
type Script struct {
	Algorithm  string           `yaml:"algorithm" json:"algorithm"`
	Snapshot   *core.Graph      `yaml:"snapshot,omitempty" json:"snapshot,omitempty"`
	Operations []map[string]any `yaml:"operations" json:"operations"`
}

// Outcome is the result of one operation.
type Outcome struct {
	Operation map[string]any
	Result    catalog.Result
}

// Load reads a script file. ".json" files are parsed as JSON, anything
// else as YAML.
func Load(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read script: %w", err)
	}
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return ParseJSON(data)
	}
	return Parse(data)
}

// Parse decodes a YAML script and validates it. Unknown keys are errors.
func Parse(data []byte) (*Script, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	var s Script
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	return &s, s.Validate()
}

// ParseJSON decodes a JSON script and validates it.
func ParseJSON(data []byte) (*Script, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	var s Script
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	return &s, s.Validate()
}

// Validate checks the algorithm family and the shape of every operation.
// Semantic errors (an unknown kind, a map Modify) surface from Run.
func (s *Script) Validate() error {
	a, err := catalog.Lookup(s.Algorithm)
	if err != nil {
		return err
	}
	if a.Family != catalog.FamilyTree && a.Family != catalog.FamilyHash {
		return fmt.Errorf("%w: %s is a %s algorithm", ErrNotStructure, a.ID, a.Family)
	}
	if len(s.Operations) == 0 {
		return ErrEmpty
	}
	doc := map[string]any{}
	if s.Snapshot != nil {
		doc["snapshot"] = s.Snapshot
	}
	if err := schema.GoValue(doc); err != nil {
		return err
	}
	for i, op := range s.Operations {
		if err := schema.GoValue(map[string]any{"operation": op}); err != nil {
			return fmt.Errorf("operation %d: %w", i+1, err)
		}
	}
	return nil
}

// Run applies every operation in order. onStep, when non-nil, sees each
// outcome as soon as it is produced. On error the outcomes so far are
// returned with it.
func (s *Script) Run(ctx context.Context, onStep func(i int, o Outcome)) ([]Outcome, error) {
	a, err := catalog.Lookup(s.Algorithm)
	if err != nil {
		return nil, err
	}
	var cur core.Graph
	if s.Snapshot != nil {
		cur = s.Snapshot.Clone()
	}

	out := make([]Outcome, 0, len(s.Operations))
	for i, op := range s.Operations {
		snap := cur
		res, err := a.Run(ctx, catalog.Input{Snapshot: &snap, Operation: op})
		if err != nil {
			return out, fmt.Errorf("operation %d: %w", i+1, err)
		}
		o := Outcome{Operation: op, Result: res}
		out = append(out, o)
		if onStep != nil {
			onStep(i, o)
		}
		if next, ok := res.FinalSnapshot(); ok {
			cur = next
		}
	}
	return out, nil
}

// Final returns the snapshot left by the last outcome.
func Final(outcomes []Outcome) (core.Graph, bool) {
	if len(outcomes) == 0 {
		return core.Graph{}, false
	}
	return outcomes[len(outcomes)-1].Result.FinalSnapshot()
}
