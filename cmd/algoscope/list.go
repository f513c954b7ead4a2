package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/algoscope/catalog"
)

var listJSON bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the available algorithms",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		algs := catalog.All()
		if listJSON {
			type row struct {
				ID     string         `json:"id"`
				Name   string         `json:"name"`
				Family catalog.Family `json:"family"`
			}
			rows := make([]row, len(algs))
			for i, a := range algs {
				rows[i] = row{ID: a.ID, Name: a.Name, Family: a.Family}
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(rows)
		}
		_, err := fmt.Fprintln(cmd.OutOrStdout(), renderer().AlgorithmTable(algs))
		return err
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().BoolVar(&listJSON, "json", false, "print JSON instead of a table")
}
