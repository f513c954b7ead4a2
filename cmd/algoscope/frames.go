package main

import (
	"github.com/katalvlaran/algoscope/catalog"
	"github.com/katalvlaran/algoscope/codelabel"
	"github.com/katalvlaran/algoscope/internal/term"
	"github.com/katalvlaran/algoscope/playback"
)

// frames renders every step of res. Captions only unless full is set.
func frames(r *term.Renderer, res catalog.Result, src *codelabel.Parsed, full bool) []string {
	total := res.Len()
	out := make([]string, 0, total)
	for i, s := range res.Arrays {
		if full {
			out = append(out, r.ArrayFrame(playback.State{Index: i, Total: total}, s, src))
		} else {
			out = append(out, r.StepLine(i, total, s.CodeLabel, s.Log))
		}
	}
	for i, s := range res.Graphs {
		if full {
			out = append(out, r.GraphFrame(playback.State{Index: i, Total: total}, s, src))
		} else {
			out = append(out, r.StepLine(i, total, s.CodeLabel, s.Log))
		}
	}
	return out
}

// sourceFor returns the annotated source in the configured language, or
// nil when it cannot be loaded.
func sourceFor(r *term.Renderer, a catalog.Algorithm) *codelabel.Parsed {
	src, err := a.Source(r.Language())
	if err != nil {
		loggerFor(a.ID).Warn("source unavailable", "language", r.Language(), "error", err)
		return nil
	}
	return &src
}
