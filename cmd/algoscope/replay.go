package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/algoscope/core"
	"github.com/katalvlaran/algoscope/internal/script"
	"github.com/katalvlaran/algoscope/step"
)

var replaySteps bool

var replayCmd = &cobra.Command{
	Use:   "replay <script.yaml>",
	Short: "Apply a script of tree or map operations in order",
	Long: `Replays a YAML or JSON script of structure operations. Each
operation starts from the snapshot left by the previous one, so a script
reproduces a whole editing session.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := script.Load(args[0])
		if err != nil {
			return err
		}
		r := renderer()
		out := cmd.OutOrStdout()
		log := loggerFor(s.Algorithm)

		start := time.Now()
		outcomes, err := s.Run(cmd.Context(), func(i int, o script.Outcome) {
			fmt.Fprintf(out, "#%d %s\n", i+1, describeOp(o.Operation))
			if replaySteps {
				for _, f := range frames(r, o.Result, nil, false) {
					fmt.Fprintln(out, "  "+f)
				}
			} else if last, ok := step.Last(o.Result.Graphs); ok {
				fmt.Fprintln(out, "  "+last.Log)
			}
			log.Debug("operation applied", "index", i+1, "steps", o.Result.Len())
		})
		if err != nil {
			return err
		}

		if final, ok := script.Final(outcomes); ok {
			fmt.Fprintln(out)
			fmt.Fprint(out, r.Graph(step.Step[core.Graph]{State: final}))
		}
		fmt.Fprintf(out, "%d operations in %s\n", len(outcomes), time.Since(start).Round(time.Microsecond))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(replayCmd)
	replayCmd.Flags().BoolVar(&replaySteps, "steps", false, "print every step caption, not just the outcome")
}

// describeOp prints an operation payload as "kind key=value ...".
func describeOp(op map[string]any) string {
	parts := []string{fmt.Sprint(op["kind"])}
	for _, k := range []string{"key", "value", "target"} {
		if v, ok := op[k]; ok {
			parts = append(parts, fmt.Sprintf("%s=%v", k, v))
		}
	}
	return strings.Join(parts, " ")
}
