package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/algoscope/catalog"
	"github.com/katalvlaran/algoscope/internal/schema"
)

// inputFlags are shared by run and play. An input file, when given, is the
// base; otherwise the algorithm's demo input is. Explicit flags override
// single fields of the base.
type inputFlags struct {
	path   string
	values []int
	start  string
	op     map[string]string
	seed   int64
	shape  string
}

func (f *inputFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.path, "input", "i", "", "input file (JSON or YAML, - for stdin JSON)")
	cmd.Flags().IntSliceVar(&f.values, "values", nil, "array to sort, e.g. 5,2,9,1")
	cmd.Flags().StringVar(&f.start, "start", "", "start node for graph traversals")
	cmd.Flags().StringToStringVar(&f.op, "op", nil, "structure operation, e.g. kind=insert,value=42")
	cmd.Flags().Int64Var(&f.seed, "seed", 0, "seed for the demo input (default: time based)")
	cmd.Flags().StringVar(&f.shape, "shape", string(catalog.DefaultShape), "topology of the demo graph: "+shapeNames())
}

func shapeNames() string {
	names := make([]string, 0, len(catalog.Shapes()))
	for _, sh := range catalog.Shapes() {
		names = append(names, string(sh))
	}
	return strings.Join(names, ", ")
}

func (f *inputFlags) resolve(cmd *cobra.Command, a catalog.Algorithm) (catalog.Input, error) {
	shape, err := catalog.ParseShape(f.shape)
	if err != nil {
		return catalog.Input{}, err
	}

	var in catalog.Input
	if f.path != "" {
		if in, err = readInput(cmd.InOrStdin(), f.path); err != nil {
			return catalog.Input{}, err
		}
	} else {
		seed := f.seed
		if !cmd.Flags().Changed("seed") {
			seed = time.Now().UnixNano()
		}
		in = a.Sample(seed, catalog.WithShape(shape))
		loggerFor(a.ID).Debug("using demo input", "seed", seed, "shape", shape)
	}

	if cmd.Flags().Changed("values") {
		in.Values = f.values
	}
	if cmd.Flags().Changed("start") {
		in.Start = f.start
	}
	if cmd.Flags().Changed("op") {
		in.Operation = make(map[string]any, len(f.op))
		for k, v := range f.op {
			in.Operation[k] = v
		}
	}
	return in, nil
}

// readInput loads a catalog.Input after checking it against the input
// schema. "-" reads JSON from stdin.
func readInput(stdin io.Reader, path string) (catalog.Input, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return catalog.Input{}, fmt.Errorf("read input: %w", err)
	}

	var in catalog.Input
	if path == "-" || strings.EqualFold(filepath.Ext(path), ".json") {
		if err := schema.Input(data); err != nil {
			return catalog.Input{}, err
		}
		if err := json.Unmarshal(data, &in); err != nil {
			return catalog.Input{}, fmt.Errorf("parse input: %w", err)
		}
		return in, nil
	}

	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return catalog.Input{}, fmt.Errorf("parse input: %w", err)
	}
	if raw == nil {
		raw = map[string]any{}
	}
	if err := schema.GoValue(raw); err != nil {
		return catalog.Input{}, err
	}
	if err := yaml.Unmarshal(data, &in); err != nil {
		return catalog.Input{}, fmt.Errorf("parse input: %w", err)
	}
	return in, nil
}
