package loggers

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/jmadeira/ragent"
)

// ZerologHook emits structured log events through a zerolog.Logger. Model
// prompts and tool outputs are not logged, only metadata (names, counts,
// token usage, durations), so it is safe to run in services.
//
//	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()
//	registry := hooks.NewRegistry().Register(loggers.NewZerologHook(logger))
type ZerologHook struct {
	logger zerolog.Logger
}

// Compile-time checks.
var (
	_ ragent.BeforeRunHook      = (*ZerologHook)(nil)
	_ ragent.AfterRunHook       = (*ZerologHook)(nil)
	_ ragent.AfterStepHook      = (*ZerologHook)(nil)
	_ ragent.AfterModelCallHook = (*ZerologHook)(nil)
	_ ragent.AfterRetrievalHook = (*ZerologHook)(nil)
	_ ragent.AfterToolCallHook  = (*ZerologHook)(nil)
	_ ragent.ErrorHook          = (*ZerologHook)(nil)
)

// NewZerologHook creates a ZerologHook writing through logger.
func NewZerologHook(logger zerolog.Logger) *ZerologHook {
	return &ZerologHook{logger: logger}
}

// OnBeforeRun implements ragent.BeforeRunHook.
func (h *ZerologHook) OnBeforeRun(
	_ context.Context, event ragent.BeforeRunEvent,
) {
	h.logger.Info().
		Str("run_id", event.RunID).
		Int("initial_len", len(event.Initial)).
		Int("max_iterations", event.MaxIterations).
		Msg("run started")
}

// OnAfterRun implements ragent.AfterRunHook.
func (h *ZerologHook) OnAfterRun(
	_ context.Context, event ragent.AfterRunEvent,
) {
	e := h.logger.Info()
	if event.Err != nil {
		e = h.logger.Error().Err(event.Err)
	}
	e.Str("run_id", event.RunID).
		Int("iterations", event.Iterations).
		Int("produced", event.Produced).
		Msg("run completed")
}

// OnAfterStep implements ragent.AfterStepHook.
func (h *ZerologHook) OnAfterStep(
	_ context.Context, event ragent.AfterStepEvent,
) {
	e := h.logger.Debug()
	if event.Err != nil {
		e = h.logger.Error().Err(event.Err)
	}
	e.Str("run_id", event.RunID).
		Int("iteration", event.Iteration).
		Int("new_messages", len(event.New)).
		Dur("duration", event.Duration).
		Msg("step completed")
}

// OnAfterModelCall implements ragent.AfterModelCallHook.
func (h *ZerologHook) OnAfterModelCall(
	_ context.Context, event ragent.AfterModelCallEvent,
) {
	e := h.logger.Info()
	if event.Err != nil {
		e = h.logger.Error().Err(event.Err)
	}
	e = e.Str("model", event.Model).
		Dur("duration", event.Duration)
	if event.Info != nil {
		e = e.Int("input_tokens", event.Info.InputTokens).
			Int("output_tokens", event.Info.OutputTokens).
			Int("total_tokens", event.Info.TotalTokens)
	}
	e.Msg("model call completed")
}

// OnAfterRetrieval implements ragent.AfterRetrievalHook.
func (h *ZerologHook) OnAfterRetrieval(
	_ context.Context, event ragent.AfterRetrievalEvent,
) {
	e := h.logger.Info()
	if event.Err != nil {
		e = h.logger.Error().Err(event.Err)
	}
	e.Str("query", event.Query).
		Int("results", event.Results).
		Dur("duration", event.Duration).
		Msg("retrieval completed")
}

// OnAfterToolCall implements ragent.AfterToolCallHook.
func (h *ZerologHook) OnAfterToolCall(
	_ context.Context, event ragent.AfterToolCallEvent,
) {
	e := h.logger.Info()
	if event.Err != nil {
		e = h.logger.Error().Err(event.Err)
	}
	e.Str("tool", event.ToolName).
		Dur("duration", event.Duration).
		Msg("tool call completed")
}

// OnError implements ragent.ErrorHook.
func (h *ZerologHook) OnError(
	_ context.Context, event ragent.ErrorEvent,
) {
	h.logger.Error().
		Err(event.Err).
		Str("run_id", event.RunID).
		Int("iteration", event.Iteration).
		Msg("agent error")
}
