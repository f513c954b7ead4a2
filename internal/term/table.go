package term

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/katalvlaran/algoscope/catalog"
	"github.com/katalvlaran/algoscope/matrix"
)

var tableHeaderColors = text.Colors{text.Bold, text.FgCyan}

// AlgorithmTable lists algorithms with their family and complexity.
func (r *Renderer) AlgorithmTable(algs []catalog.Algorithm) string {
	tbl := table.NewWriter()
	tbl.SetStyle(table.StyleLight)
	tbl.Style().Options.DrawBorder = false
	tbl.Style().Options.SeparateColumns = false
	if r.opts.Color {
		tbl.Style().Color.Header = tableHeaderColors
	}

	tbl.AppendHeader(table.Row{"ID", "Name", "Family", "Time", "Space"})
	for _, a := range algs {
		tbl.AppendRow(table.Row{a.ID, a.Name, a.Family, a.Profile.Complexity.Time, a.Profile.Complexity.Space})
	}
	tbl.AppendFooter(table.Row{fmt.Sprintf("Total: %d", len(algs))})
	return tbl.Render()
}

// LabelTable lists the labels of a parsed source in line order.
func (r *Renderer) LabelTable(src map[string]int) string {
	tbl := table.NewWriter()
	tbl.SetStyle(table.StyleLight)
	tbl.Style().Options.DrawBorder = false
	tbl.AppendHeader(table.Row{"Label", "Line"})
	tbl.SortBy([]table.SortBy{{Name: "Line", Mode: table.AscNumeric}, {Name: "Label", Mode: table.Asc}})
	for label, line := range src {
		tbl.AppendRow(table.Row{label, line + 1})
	}
	return tbl.Render()
}

// MatrixTable draws an adjacency view with node ids on both axes. Cells
// without an edge render as a dot.
func (r *Renderer) MatrixTable(a *matrix.Adjacency) string {
	tbl := table.NewWriter()
	tbl.SetStyle(table.StyleLight)
	tbl.Style().Options.DrawBorder = false
	tbl.Style().Format.Header = text.FormatDefault
	if r.opts.Color {
		tbl.Style().Color.Header = tableHeaderColors
	}

	header := table.Row{""}
	for _, id := range a.IDs {
		header = append(header, id)
	}
	tbl.AppendHeader(header)
	for i, id := range a.IDs {
		row := table.Row{id}
		for _, v := range a.Cells[i] {
			if v == a.NoEdge {
				row = append(row, ".")
				continue
			}
			row = append(row, matrix.Format(v))
		}
		tbl.AppendRow(row)
	}
	return tbl.Render()
}

// IncidenceTable draws nodes against edges. Zero cells render as a dot.
func (r *Renderer) IncidenceTable(inc *matrix.Incidence) string {
	tbl := table.NewWriter()
	tbl.SetStyle(table.StyleLight)
	tbl.Style().Options.DrawBorder = false
	tbl.Style().Format.Header = text.FormatDefault
	if r.opts.Color {
		tbl.Style().Color.Header = tableHeaderColors
	}

	header := table.Row{""}
	for _, id := range inc.EdgeIDs {
		header = append(header, id)
	}
	tbl.AppendHeader(header)
	for i, id := range inc.IDs {
		row := table.Row{id}
		for _, v := range inc.Cells[i] {
			if v == 0 {
				row = append(row, ".")
				continue
			}
			row = append(row, matrix.Format(v))
		}
		tbl.AppendRow(row)
	}
	return tbl.Render()
}
