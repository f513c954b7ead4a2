package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"slices"
	"syscall"
	"time"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/algoscope/catalog"
	"github.com/katalvlaran/algoscope/codelabel"
	"github.com/katalvlaran/algoscope/core"
	"github.com/katalvlaran/algoscope/internal/term"
	"github.com/katalvlaran/algoscope/playback"
	"github.com/katalvlaran/algoscope/step"
)

var (
	playInput inputFlags
	playSpeed time.Duration
	playCode  bool
)

var playCmd = &cobra.Command{
	Use:   "play <algorithm>",
	Short: "Animate a run in the terminal",
	Long: `Animates a run frame by frame at the configured speed until the last
step or until interrupted. On a terminal each frame replaces the previous
one; otherwise frames are printed one after another.`,
	Example: `  algoscope play quick-sort --values 9,4,7,1,8 --speed 200ms
  algoscope play red-black-tree --seed 11 --code`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := catalog.Lookup(args[0])
		if err != nil {
			return err
		}
		in, err := playInput.resolve(cmd, a)
		if err != nil {
			return err
		}
		speed := cfg.Playback.Speed
		if cmd.Flags().Changed("speed") {
			speed = playSpeed
		}
		if speed <= 0 {
			return playback.ErrInvalidSpeed
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		r := renderer()
		var src *codelabel.Parsed
		if playCode {
			src = sourceFor(r, a)
		}
		p := player{
			out:   termenv.NewOutput(cmd.OutOrStdout()),
			r:     r,
			src:   src,
			speed: speed,
		}
		if a.Family == catalog.FamilySorting {
			return playArray(ctx, p, a, in)
		}
		return playGraph(ctx, p, a, in)
	},
}

func init() {
	rootCmd.AddCommand(playCmd)
	playInput.register(playCmd)
	playCmd.Flags().DurationVar(&playSpeed, "speed", 0, "delay between steps (default from config)")
	playCmd.Flags().BoolVar(&playCode, "code", false, "show the reference source with the executing line marked")
}

type player struct {
	out   *termenv.Output
	r     *term.Renderer
	src   *codelabel.Parsed
	speed time.Duration
}

// draw replaces the screen on a terminal and appends otherwise.
func (p player) draw(frame string) {
	if p.out.Profile != termenv.Ascii {
		p.out.ClearScreen()
	}
	fmt.Fprintln(p.out, frame)
}

func playArray(ctx context.Context, p player, a catalog.Algorithm, in catalog.Input) error {
	gen := func(v []int) ([]step.Step[[]int], error) {
		in := in
		in.Values = v
		res, err := a.Run(ctx, in)
		return res.Arrays, err
	}
	return animate(ctx, p, gen, in.Values, slices.Clone[[]int], func(st playback.State, s step.Step[[]int]) string {
		return p.r.ArrayFrame(st, s, p.src)
	})
}

func playGraph(ctx context.Context, p player, a catalog.Algorithm, in catalog.Input) error {
	var initial core.Graph
	switch {
	case a.Family == catalog.FamilyGraph && in.Graph != nil:
		initial = *in.Graph
	case in.Snapshot != nil:
		initial = *in.Snapshot
	}
	gen := func(g core.Graph) ([]step.Step[core.Graph], error) {
		in := in
		if a.Family == catalog.FamilyGraph {
			in.Graph = &g
		} else {
			in.Snapshot = &g
		}
		res, err := a.Run(ctx, in)
		return res.Graphs, err
	}
	return animate(ctx, p, gen, initial, core.CloneGraph, func(st playback.State, s step.Step[core.Graph]) string {
		return p.r.GraphFrame(st, s, p.src)
	})
}

// animate plays gen's sequence to the end, drawing each visible step.
func animate[T any](ctx context.Context, p player, gen playback.Generator[T], initial T, clone func(T) T, render func(playback.State, step.Step[T]) string) error {
	changes := make(chan playback.State, 64)
	ctl, err := playback.New(gen, initial, clone,
		playback.WithSpeed(p.speed),
		playback.WithLogger(logger),
		playback.WithOnChange(func(st playback.State) {
			select {
			case changes <- st:
			default:
			}
		}),
	)
	if err != nil {
		return err
	}
	defer ctl.Close()

	p.draw(render(ctl.State(), ctl.CurrentStep()))
	if ctl.Total() <= 1 {
		return nil
	}
	ctl.Play()

	last := 0
	for {
		select {
		case <-ctx.Done():
			ctl.Pause()
			return nil
		case <-changes:
			st := ctl.State()
			if st.Index != last {
				last = st.Index
				p.draw(render(st, ctl.CurrentStep()))
			}
			if !st.Playing && st.Index == st.Total-1 {
				return nil
			}
		}
	}
}
