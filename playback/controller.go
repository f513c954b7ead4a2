package playback

import (
	"sync"
	"time"

	"github.com/katalvlaran/algoscope/step"
)

// Controller turns a materialized step sequence into a seekable animation.
// All methods are safe for concurrent use.
type Controller[T any] struct {
	mu sync.Mutex
	o  options

	clone   func(T) T
	gen     Generator[T]
	initial T
	steps   []step.Step[T]

	index   int
	playing bool
	speed   time.Duration
	closed  bool

	// session identifies the current play session; a tick from an older
	// session is discarded.
	session uint64
	ticker  Ticker
	stop    chan struct{}
	done    chan struct{}

	// inCallback is the done channel of the ticking goroutine while it runs
	// the OnChange hook.
	inCallback chan struct{}
}

// New drains gen on a copy of initial and returns a controller positioned
// on the prepended initial step. A generation error is returned as is and
// no controller is built.
func New[T any](gen Generator[T], initial T, clone func(T) T, opts ...Option) (*Controller[T], error) {
	if gen == nil {
		return nil, ErrNilGenerator
	}
	if clone == nil {
		return nil, ErrNilClone
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	c := &Controller[T]{o: o, clone: clone, speed: o.speed}
	steps, err := c.generate(gen, initial)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.install(gen, initial, steps)
	st := c.stateLocked()
	c.mu.Unlock()
	c.notify(st)
	return c, nil
}

// generate runs gen on a private copy and prepends the initial step.
func (c *Controller[T]) generate(gen Generator[T], initial T) ([]step.Step[T], error) {
	seq, err := gen(c.clone(initial))
	if err != nil {
		c.o.log.Warn("generation failed", "error", err)
		return nil, err
	}
	steps := make([]step.Step[T], 0, len(seq)+1)
	steps = append(steps, step.Step[T]{State: c.clone(initial), Log: InitialLog})
	steps = append(steps, seq...)
	c.o.log.Debug("sequence generated", "steps", len(steps))
	return steps, nil
}

// install swaps in a fresh sequence. Caller holds mu.
func (c *Controller[T]) install(gen Generator[T], initial T, steps []step.Step[T]) {
	c.stopLocked()
	c.gen = gen
	c.initial = c.clone(initial)
	c.steps = steps
	c.index = 0
	if c.o.autoPlay {
		c.startLocked()
	}
}

// Load regenerates the sequence from gen and initial, cancelling any
// pending tick first. On error the previous sequence and position stay.
func (c *Controller[T]) Load(gen Generator[T], initial T) error {
	if gen == nil {
		return ErrNilGenerator
	}
	c.Pause()
	steps, err := c.generate(gen, initial)
	if err != nil {
		return err
	}

	c.mu.Lock()
	c.install(gen, initial, steps)
	st := c.stateLocked()
	c.mu.Unlock()
	c.notify(st)
	return nil
}

// CurrentStep returns a copy of the visible step. With no sequence loaded
// it wraps the initial value alone.
func (c *Controller[T]) CurrentStep() step.Step[T] {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.steps) == 0 {
		return step.Step[T]{State: c.clone(c.initial), Log: InitialLog}
	}
	return c.steps[c.index].Clone(c.clone)
}

// Index reports the visible step's position.
func (c *Controller[T]) Index() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.index
}

// Total reports the sequence length, the initial step included.
func (c *Controller[T]) Total() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.steps)
}

// IsPlaying reports whether automatic advancement is running.
func (c *Controller[T]) IsPlaying() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.playing
}

// Speed reports the delay between automatic steps.
func (c *Controller[T]) Speed() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.speed
}

// State returns index, total, play state and speed at once.
func (c *Controller[T]) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stateLocked()
}

// SetSpeed changes the delay. A running session keeps its position and
// uses the new delay from the next tick.
func (c *Controller[T]) SetSpeed(d time.Duration) error {
	if d <= 0 {
		return ErrInvalidSpeed
	}
	c.mu.Lock()
	c.speed = d
	if c.ticker != nil {
		c.ticker.Reset(d)
	}
	st := c.stateLocked()
	c.mu.Unlock()
	c.notify(st)
	return nil
}

// Play starts automatic advancement. It does nothing on the last step or
// after Close.
func (c *Controller[T]) Play() {
	c.mu.Lock()
	changed := c.startLocked()
	st := c.stateLocked()
	c.mu.Unlock()
	if changed {
		c.notify(st)
	}
}

// Pause stops automatic advancement.
func (c *Controller[T]) Pause() {
	c.mu.Lock()
	changed := c.stopLocked()
	st := c.stateLocked()
	c.mu.Unlock()
	if changed {
		c.notify(st)
	}
}

// TogglePlay flips between Play and Pause.
func (c *Controller[T]) TogglePlay() {
	if c.IsPlaying() {
		c.Pause()
		return
	}
	c.Play()
}

// Next stops playback and moves one step forward, clamped at the end.
func (c *Controller[T]) Next() { c.move(func(i int) int { return i + 1 }) }

// Prev stops playback and moves one step back, clamped at 0.
func (c *Controller[T]) Prev() { c.move(func(i int) int { return i - 1 }) }

// Reset stops playback and returns to the initial step.
func (c *Controller[T]) Reset() { c.move(func(int) int { return 0 }) }

// Seek stops playback and jumps to i, clamped into range.
func (c *Controller[T]) Seek(i int) { c.move(func(int) int { return i }) }

func (c *Controller[T]) move(to func(int) int) {
	c.mu.Lock()
	stopped := c.stopLocked()
	prev := c.index
	c.index = c.clamp(to(c.index))
	st := c.stateLocked()
	c.mu.Unlock()
	if stopped || prev != st.Index {
		c.notify(st)
	}
}

// Close stops playback and waits for the ticking goroutine to exit.
// Navigation keeps working afterwards; Play does not. Called from an
// OnChange hook on the ticking goroutine, Close does not wait: that
// goroutine exits as soon as the hook returns.
func (c *Controller[T]) Close() {
	c.mu.Lock()
	c.closed = true
	done := c.done
	self := done != nil && done == c.inCallback
	c.stopLocked()
	c.mu.Unlock()
	if done != nil && !self {
		<-done
	}
}

func (c *Controller[T]) clamp(i int) int {
	return max(0, min(i, len(c.steps)-1))
}

func (c *Controller[T]) stateLocked() State {
	return State{Index: c.index, Total: len(c.steps), Playing: c.playing, Speed: c.speed}
}

func (c *Controller[T]) notify(st State) {
	if c.o.onChange != nil {
		c.o.onChange(st)
	}
}

// startLocked opens a play session. Caller holds mu.
func (c *Controller[T]) startLocked() bool {
	if c.playing || c.closed || c.index >= len(c.steps)-1 {
		return false
	}
	c.playing = true
	c.session++
	c.ticker = c.o.newTicker(c.speed)
	c.stop = make(chan struct{})
	c.done = make(chan struct{})
	go c.run(c.session, c.ticker, c.stop, c.done)
	c.o.log.Debug("playback started", "index", c.index, "speed", c.speed)
	return true
}

// stopLocked ends the current play session. Caller holds mu.
func (c *Controller[T]) stopLocked() bool {
	if !c.playing {
		return false
	}
	c.playing = false
	c.session++
	close(c.stop)
	c.ticker = nil
	c.stop = nil
	c.o.log.Debug("playback stopped", "index", c.index)
	return true
}

func (c *Controller[T]) run(session uint64, t Ticker, stop <-chan struct{}, done chan struct{}) {
	defer close(done)
	defer t.Stop()
	for {
		select {
		case <-stop:
			return
		case <-t.C():
			if !c.tick(session, done) {
				return
			}
		}
	}
}

// tick advances one step for session and reports whether it keeps playing.
// done identifies the calling goroutine to Close while the hook runs.
func (c *Controller[T]) tick(session uint64, done chan struct{}) bool {
	c.mu.Lock()
	if session != c.session || !c.playing {
		c.mu.Unlock()
		return false
	}
	c.index = c.clamp(c.index + 1)
	if c.index >= len(c.steps)-1 {
		c.playing = false
		c.session++
		c.ticker = nil
		c.stop = nil
		c.o.log.Debug("playback finished", "index", c.index)
	}
	st := c.stateLocked()
	c.inCallback = done
	c.mu.Unlock()
	c.notify(st)

	c.mu.Lock()
	if c.inCallback == done {
		c.inCallback = nil
	}
	playing := st.Playing && session == c.session
	c.mu.Unlock()
	return playing
}
