package ragent

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// DefaultMaxIterations is the run loop's iteration cap when none is configured.
const DefaultMaxIterations = 100

// RunOption configures a single Run call.
type RunOption func(*runOptions)

type runOptions struct {
	maxIterations int
	cfg           *Config
}

// WithMaxIterations sets the iteration cap for the run. Values < 1 are
// ignored.
func WithMaxIterations(n int) RunOption {
	return func(o *runOptions) {
		if n >= 1 {
			o.maxIterations = n
		}
	}
}

// WithConfig sets the per-call configuration threaded into the collaborators.
func WithConfig(cfg *Config) RunOption {
	return func(o *runOptions) {
		o.cfg = cfg
	}
}

// Run starts the agent loop on a fresh log seeded from initial and returns a
// lazy stream of the new messages it produces. Nothing executes until the
// stream is consumed; each round runs only when its messages are pulled.
//
// Per round, up to the iteration cap: the memory manager normalizes the log, a
// step is dispatched, its messages are yielded one at a time in order, and the
// batch is appended to the log. An empty step ends the run normally. Hitting
// the cap also ends it silently; callers that need to tell "finished" from
// "exhausted" should inspect the last produced message. Collaborator errors
// end the stream and surface via [RunStream.Err].
func (a *Agent) Run(ctx context.Context, initial []Message, opts ...RunOption) *RunStream {
	options := runOptions{maxIterations: DefaultMaxIterations}
	for _, opt := range opts {
		opt(&options)
	}
	a.ensureBuilt()

	// The run owns its log; the caller's slice is never touched.
	log := make([]Message, len(initial))
	copy(log, initial)

	s := &RunStream{
		agent:         a,
		ctx:           ctx,
		cfg:           options.cfg,
		runID:         uuid.NewString(),
		maxIterations: options.maxIterations,
		log:           log,
	}
	a.hooks.FireBeforeRun(ctx, BeforeRunEvent{
		RunID:         s.runID,
		Initial:       initial,
		MaxIterations: s.maxIterations,
	})
	return s
}

// RunStream is a single-pass, pull-based iterator over the messages a run
// produces. It follows the scanner idiom:
//
//	stream := agent.Run(ctx, initial)
//	for stream.Next() {
//	    handle(stream.Message())
//	}
//	if err := stream.Err(); err != nil {
//	    // a collaborator failed or the context was canceled
//	}
//
// RunStream is not safe for concurrent use and cannot be restarted.
type RunStream struct {
	agent *Agent
	ctx   context.Context
	cfg   *Config
	runID string

	maxIterations int
	iterations    int
	produced      int

	log     []Message
	batch   []Message // current step's output, appended to log once fully yielded
	pending []Message // unyielded remainder of batch
	current Message

	done bool
	err  error
}

// RunID returns the unique identifier of this run.
func (s *RunStream) RunID() string {
	return s.runID
}

// Next advances to the next produced message. It returns false when the run
// has terminated: normally (empty step or iteration cap) or with an error.
func (s *RunStream) Next() bool {
	if len(s.pending) > 0 {
		s.current = s.pending[0]
		s.pending = s.pending[1:]
		s.produced++
		return true
	}
	if s.done {
		return false
	}

	// The previous batch has been fully yielded; commit it to the log
	// before the next round.
	if s.batch != nil {
		s.log = append(s.log, s.batch...)
		s.batch = nil
	}

	if s.iterations >= s.maxIterations {
		s.finish(nil)
		return false
	}
	if err := s.ctx.Err(); err != nil {
		s.finish(err)
		return false
	}
	s.iterations++

	s.log = s.agent.memory.Process(s.log)

	s.agent.hooks.FireBeforeStep(s.ctx, BeforeStepEvent{
		RunID:     s.runID,
		Iteration: s.iterations,
		LogLen:    len(s.log),
	})
	start := time.Now()
	batch, err := s.agent.step(s.ctx, s.log, s.cfg)
	s.agent.hooks.FireAfterStep(s.ctx, AfterStepEvent{
		RunID:     s.runID,
		Iteration: s.iterations,
		New:       batch,
		Duration:  time.Since(start),
		Err:       err,
	})
	if err != nil {
		s.agent.hooks.FireError(s.ctx, ErrorEvent{
			RunID:     s.runID,
			Iteration: s.iterations,
			Err:       err,
		})
		s.finish(err)
		return false
	}
	if len(batch) == 0 {
		s.finish(nil)
		return false
	}

	s.batch = batch
	s.current = batch[0]
	s.pending = batch[1:]
	s.produced++
	return true
}

// Message returns the message produced by the last successful Next call.
func (s *RunStream) Message() Message {
	return s.current
}

// Err returns the error that ended the run, or nil for normal termination
// (including hitting the iteration cap).
func (s *RunStream) Err() error {
	return s.err
}

// Iterations returns the number of step rounds executed so far.
func (s *RunStream) Iterations() int {
	return s.iterations
}

// Collect drains the stream and returns every remaining message.
func (s *RunStream) Collect() ([]Message, error) {
	var out []Message
	for s.Next() {
		out = append(out, s.current)
	}
	return out, s.err
}

// finish ends the run and fires AfterRun exactly once.
func (s *RunStream) finish(err error) {
	s.done = true
	s.err = err
	s.agent.hooks.FireAfterRun(s.ctx, AfterRunEvent{
		RunID:      s.runID,
		Iterations: s.iterations,
		Produced:   s.produced,
		Err:        err,
	})
}
