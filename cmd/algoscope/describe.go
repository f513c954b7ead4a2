package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/algoscope/catalog"
	"github.com/katalvlaran/algoscope/codelabel"
)

var (
	describeSource bool
	describeLang   string
)

var describeCmd = &cobra.Command{
	Use:   "describe <algorithm>",
	Short: "Show an algorithm's profile and, optionally, its annotated source",
	Example: `  algoscope describe dijkstra
  algoscope describe quick-sort --source --lang python`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := catalog.Lookup(args[0])
		if err != nil {
			return err
		}
		r := renderer()
		md, err := r.Markdown(a.Markdown())
		if err != nil {
			return fmt.Errorf("render profile: %w", err)
		}
		out := cmd.OutOrStdout()
		fmt.Fprint(out, md)
		if !describeSource {
			return nil
		}

		lang := r.Language()
		if describeLang != "" {
			if lang, err = codelabel.ParseLanguage(describeLang); err != nil {
				return err
			}
		}
		src, err := a.Source(lang)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "\n%s (%s)\n\n%s\n%s\n", a.Name, lang, r.Code(src, ""), r.LabelTable(src.Lines))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(describeCmd)
	describeCmd.Flags().BoolVar(&describeSource, "source", false, "also print the reference source and its labels")
	describeCmd.Flags().StringVar(&describeLang, "lang", "", "source language: go, python, javascript (default from config)")
}
