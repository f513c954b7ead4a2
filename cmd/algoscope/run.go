package main

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/algoscope/catalog"
	"github.com/katalvlaran/algoscope/codelabel"
	"github.com/katalvlaran/algoscope/matrix"
)

var (
	runInput  inputFlags
	runFormat string
	runFrames bool
	runCode   bool
	runMatrix string
)

var runCmd = &cobra.Command{
	Use:   "run <algorithm>",
	Short: "Generate the full step sequence of one run",
	Example: `  algoscope run bubble-sort --values 5,1,4,2
  algoscope run dijkstra -i graph.json --start A --format json
  algoscope run avl --seed 3 --op kind=delete,value=4 --frames
  algoscope run dijkstra --seed 2 --matrix
  algoscope run bfs --shape grid --matrix=incidence`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := catalog.Lookup(args[0])
		if err != nil {
			return err
		}
		in, err := runInput.resolve(cmd, a)
		if err != nil {
			return err
		}

		start := time.Now()
		res, err := a.Run(cmd.Context(), in)
		elapsed := time.Since(start)
		if err != nil {
			return err
		}
		loggerFor(a.ID).Debug("run finished", "steps", res.Len(), "elapsed", elapsed)

		out := cmd.OutOrStdout()
		switch runFormat {
		case "json":
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(res)
		case "text":
		default:
			return fmt.Errorf("unknown --format %q (want text or json)", runFormat)
		}

		r := renderer()
		var src *codelabel.Parsed
		if runCode {
			src = sourceFor(r, a)
		}
		for _, f := range frames(r, res, src, runFrames || runCode) {
			fmt.Fprintln(out, f)
		}
		if runMatrix != "" {
			if err := printMatrix(cmd, res, runMatrix); err != nil {
				return err
			}
		}
		fmt.Fprintln(out, r.Summary(a.ID, res, elapsed))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
	runInput.register(runCmd)
	runCmd.Flags().StringVarP(&runFormat, "format", "f", "text", "output format: text or json")
	runCmd.Flags().BoolVar(&runFrames, "frames", false, "draw the state of every step, not just its caption")
	runCmd.Flags().BoolVar(&runCode, "code", false, "draw the reference source under every step (implies --frames)")
	runCmd.Flags().StringVar(&runMatrix, "matrix", "", "draw the final snapshot as a matrix: adjacency or incidence")
	runCmd.Flags().Lookup("matrix").NoOptDefVal = matrixAdjacency
}

const (
	matrixAdjacency = "adjacency"
	matrixIncidence = "incidence"
)

func printMatrix(cmd *cobra.Command, res catalog.Result, kind string) error {
	if kind != matrixAdjacency && kind != matrixIncidence {
		return fmt.Errorf("unknown --matrix %q (want %s or %s)", kind, matrixAdjacency, matrixIncidence)
	}
	g, ok := res.FinalSnapshot()
	if !ok {
		return fmt.Errorf("--matrix needs a graph, tree or map run, not %s", res.Family)
	}
	if len(g.Nodes) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "(empty)")
		return nil
	}
	if kind == matrixIncidence {
		inc, err := matrix.NewIncidence(g)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), renderer().IncidenceTable(inc))
		return nil
	}
	a, err := matrix.NewAdjacency(g)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), renderer().MatrixTable(a))
	return nil
}
