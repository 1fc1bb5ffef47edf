package hooks

import (
	"context"
	"sync"
	"time"

	"github.com/jmadeira/ragent"
)

// Stats is a hook that aggregates counters across runs: model calls, token
// usage, retrievals, tool calls, and errors. Register it with a Registry and
// read the totals after (or during) a run.
//
//	stats := hooks.NewStats()
//	registry := hooks.NewRegistry().Register(stats)
//	agent := ragent.NewAgent(model).WithHooks(registry)
//
//	// ... run the agent ...
//
//	fmt.Printf("%d model calls, %d tokens\n",
//	    stats.ModelCalls(), stats.TotalTokens())
//
// All methods are safe for concurrent use.
type Stats struct {
	mu sync.Mutex

	runs       int
	steps      int
	modelCalls int
	retrievals int
	toolCalls  int
	errors     int

	inputTokens       int
	outputTokens      int
	cachedInputTokens int

	modelDuration     time.Duration
	retrievalDuration time.Duration
	toolDuration      time.Duration
}

// Compile-time checks.
var (
	_ ragent.AfterRunHook       = (*Stats)(nil)
	_ ragent.AfterStepHook      = (*Stats)(nil)
	_ ragent.AfterModelCallHook = (*Stats)(nil)
	_ ragent.AfterRetrievalHook = (*Stats)(nil)
	_ ragent.AfterToolCallHook  = (*Stats)(nil)
	_ ragent.ErrorHook          = (*Stats)(nil)
)

// NewStats creates an empty Stats hook.
func NewStats() *Stats {
	return &Stats{}
}

// OnAfterRun implements ragent.AfterRunHook.
func (s *Stats) OnAfterRun(
	_ context.Context, _ ragent.AfterRunEvent,
) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.runs++
}

// OnAfterStep implements ragent.AfterStepHook.
func (s *Stats) OnAfterStep(
	_ context.Context, _ ragent.AfterStepEvent,
) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.steps++
}

// OnAfterModelCall implements ragent.AfterModelCallHook.
func (s *Stats) OnAfterModelCall(
	_ context.Context, event ragent.AfterModelCallEvent,
) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.modelCalls++
	s.modelDuration += event.Duration
	if event.Info != nil {
		s.inputTokens += event.Info.InputTokens
		s.outputTokens += event.Info.OutputTokens
		s.cachedInputTokens += event.Info.CachedInputTokens
	}
}

// OnAfterRetrieval implements ragent.AfterRetrievalHook.
func (s *Stats) OnAfterRetrieval(
	_ context.Context, event ragent.AfterRetrievalEvent,
) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.retrievals++
	s.retrievalDuration += event.Duration
}

// OnAfterToolCall implements ragent.AfterToolCallHook.
func (s *Stats) OnAfterToolCall(
	_ context.Context, event ragent.AfterToolCallEvent,
) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.toolCalls++
	s.toolDuration += event.Duration
}

// OnError implements ragent.ErrorHook.
func (s *Stats) OnError(
	_ context.Context, _ ragent.ErrorEvent,
) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.errors++
}

// Runs returns the number of completed runs.
func (s *Stats) Runs() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.runs
}

// Steps returns the number of completed steps.
func (s *Stats) Steps() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.steps
}

// ModelCalls returns the number of model API calls.
func (s *Stats) ModelCalls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.modelCalls
}

// Retrievals returns the number of retriever calls.
func (s *Stats) Retrievals() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.retrievals
}

// ToolCalls returns the number of tool executions.
func (s *Stats) ToolCalls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.toolCalls
}

// Errors returns the number of errors observed.
func (s *Stats) Errors() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.errors
}

// InputTokens returns the total input tokens across all model calls.
func (s *Stats) InputTokens() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inputTokens
}

// OutputTokens returns the total output tokens across all model calls.
func (s *Stats) OutputTokens() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.outputTokens
}

// CachedInputTokens returns the total cached input tokens across all
// model calls.
func (s *Stats) CachedInputTokens() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cachedInputTokens
}

// TotalTokens returns input plus output tokens across all model calls.
func (s *Stats) TotalTokens() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inputTokens + s.outputTokens
}

// ModelDuration returns the cumulative time spent in model calls.
func (s *Stats) ModelDuration() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.modelDuration
}

// RetrievalDuration returns the cumulative time spent in retriever calls.
func (s *Stats) RetrievalDuration() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.retrievalDuration
}

// ToolDuration returns the cumulative time spent in tool calls.
func (s *Stats) ToolDuration() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.toolDuration
}
