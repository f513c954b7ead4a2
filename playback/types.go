package playback

import (
	"errors"
	"log/slog"
	"time"

	"github.com/katalvlaran/algoscope/internal/logging"
	"github.com/katalvlaran/algoscope/step"
)

// Sentinel errors for controller construction and configuration.
var (
	// ErrNilGenerator indicates New or Load was called without a generator.
	ErrNilGenerator = errors.New("playback: nil generator")

	// ErrNilClone indicates New was called without a clone function.
	ErrNilClone = errors.New("playback: nil clone function")

	// ErrInvalidSpeed indicates a non-positive tick interval.
	ErrInvalidSpeed = errors.New("playback: speed must be positive")
)

// DefaultSpeed is the delay between automatic steps.
const DefaultSpeed = 500 * time.Millisecond

// InitialLog narrates the step the controller prepends to every sequence.
const InitialLog = "Initial State"

// Generator produces the full step sequence for one initial value. It must
// not retain or mutate initial.
type Generator[T any] func(initial T) ([]step.Step[T], error)

// Ticker is the tick source driving automatic playback. *time.Ticker
// satisfies it through NewTimeTicker.
type Ticker interface {
	C() <-chan time.Time
	Reset(d time.Duration)
	Stop()
}

// TickerFactory starts a Ticker firing every d.
type TickerFactory func(d time.Duration) Ticker

type timeTicker struct{ t *time.Ticker }

func (t timeTicker) C() <-chan time.Time    { return t.t.C }
func (t timeTicker) Reset(d time.Duration) { t.t.Reset(d) }
func (t timeTicker) Stop()                 { t.t.Stop() }

// NewTimeTicker is the default TickerFactory, backed by time.NewTicker.
func NewTimeTicker(d time.Duration) Ticker {
	return timeTicker{t: time.NewTicker(d)}
}

// State is a point-in-time view of the transport, passed to OnChange hooks.
type State struct {
	Index   int
	Total   int
	Playing bool
	Speed   time.Duration
}

// Option configures a Controller.
type Option func(*options)

type options struct {
	speed     time.Duration
	autoPlay  bool
	newTicker TickerFactory
	onChange  func(State)
	log       *slog.Logger
}

func defaultOptions() options {
	return options{
		speed:     DefaultSpeed,
		newTicker: NewTimeTicker,
		log:       logging.NewNop(),
	}
}

// WithSpeed sets the initial delay between automatic steps. Non-positive
// values are ignored.
func WithSpeed(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.speed = d
		}
	}
}

// WithAutoPlay starts playback as soon as a sequence is (re)generated.
func WithAutoPlay(on bool) Option {
	return func(o *options) { o.autoPlay = on }
}

// WithTicker replaces the tick source, typically with a fake in tests.
func WithTicker(f TickerFactory) Option {
	return func(o *options) {
		if f != nil {
			o.newTicker = f
		}
	}
}

// WithOnChange registers a hook called after every index, play-state or
// speed change. It runs outside the controller's lock and may call back
// into the controller.
func WithOnChange(fn func(State)) Option {
	return func(o *options) { o.onChange = fn }
}

// WithLogger sets the logger for generation and transport events.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.log = l
		}
	}
}
