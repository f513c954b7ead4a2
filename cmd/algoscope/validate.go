package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/algoscope/internal/schema"
)

var validateKind string

// errInvalidDocument is returned after the violations have been printed.
var errInvalidDocument = errors.New("document is not valid")

var validateCmd = &cobra.Command{
	Use:   "validate <file.json|->",
	Short: "Check a graph or run input against its JSON schema",
	Example: `  algoscope validate graph.json
  algoscope validate --kind input request.json
  algoscope validate - < graph.json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var check func([]byte) error
		switch validateKind {
		case "graph":
			check = schema.Graph
		case "input":
			check = schema.Input
		default:
			return fmt.Errorf("unknown --kind %q (want graph or input)", validateKind)
		}

		var (
			data []byte
			err  error
		)
		label := args[0]
		if label == "-" {
			data, err = io.ReadAll(cmd.InOrStdin())
			label = "stdin"
		} else {
			data, err = os.ReadFile(label)
		}
		if err != nil {
			return err
		}

		ok := color.New(color.FgGreen)
		bad := color.New(color.FgRed)
		if !cfg.Render.Color {
			ok.DisableColor()
			bad.DisableColor()
		}
		out := cmd.OutOrStdout()

		err = check(data)
		var se *schema.Error
		switch {
		case err == nil:
			ok.Fprintf(out, "%s is a valid %s\n", label, validateKind)
			return nil
		case errors.As(err, &se):
			bad.Fprintf(out, "%s is not a valid %s:\n", label, validateKind)
			for _, v := range se.Violations {
				bad.Fprintf(out, "  - %s\n", v)
			}
			return errInvalidDocument
		default:
			return err
		}
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
	validateCmd.Flags().StringVar(&validateKind, "kind", "graph", "document kind: graph or input")
}
