// Package term renders steps, reference sources and catalog data for a
// terminal. All output is returned as strings; callers decide where to
// write it. With Options.Color off every renderer emits plain text.
package term

import (
	"github.com/fatih/color"
	"github.com/muesli/termenv"

	"github.com/katalvlaran/algoscope/codelabel"
	"github.com/katalvlaran/algoscope/core"
)

// DefaultWidth is the bar width used when Options.Width is not positive.
const DefaultWidth = 60

// Options configures a Renderer.
type Options struct {
	Color    bool
	Width    int
	Language codelabel.Language
}

// Renderer holds the palette derived from Options.
type Renderer struct {
	opts    Options
	profile termenv.Profile

	counter *color.Color
	label   *color.Color
	log     *color.Color
	fail    *color.Color
}

// New builds a renderer. Color is further limited by what the terminal
// on stdout supports.
func New(opts Options) *Renderer {
	if opts.Width <= 0 {
		opts.Width = DefaultWidth
	}
	if opts.Language == "" {
		opts.Language = codelabel.Go
	}
	r := &Renderer{
		opts:    opts,
		profile: termenv.Ascii,
		counter: color.New(color.FgCyan),
		label:   color.New(color.FgYellow, color.Bold),
		log:     color.New(color.FgWhite),
		fail:    color.New(color.FgRed),
	}
	if opts.Color {
		r.profile = termenv.ColorProfile()
	} else {
		for _, c := range []*color.Color{r.counter, r.label, r.log, r.fail} {
			c.DisableColor()
		}
	}
	return r
}

// Language reports the source language used by Code.
func (r *Renderer) Language() codelabel.Language { return r.opts.Language }

func (r *Renderer) style(s string) termenv.Style { return r.profile.String(s) }

// Palette for bars and nodes.
const (
	colHighlight = "#facc15"
	colSecondary = "#c084fc"
	colVisiting  = "#facc15"
	colVisited   = "#4ade80"
	colRed       = "#f87171"
	colActive    = "#38bdf8"
)

func (r *Renderer) paint(s, hex string) string {
	return r.style(s).Foreground(r.profile.Color(hex)).String()
}

func (r *Renderer) nodeStatus(s core.NodeStatus) string {
	switch s {
	case core.StatusVisiting:
		return r.paint(string(s), colVisiting)
	case core.StatusVisited:
		return r.paint(string(s), colVisited)
	case "":
		return string(core.StatusUnvisited)
	}
	return string(s)
}
