package ragent

import "context"

// -----------------------------------------------------------------------------
// Hook Interfaces
// -----------------------------------------------------------------------------
//
// Hooks allow observing execution at various points. To use hooks:
//
//  1. Implement the desired hook interface(s)
//  2. Register with hooks.Registry
//  3. Pass the registry to the Agent via WithHooks
//
// Example:
//
//	type LoggingHook struct {
//	    logger *log.Logger
//	}
//
//	func (h *LoggingHook) OnAfterModelCall(ctx context.Context, e ragent.AfterModelCallEvent) {
//	    h.logger.Printf("model %s: %d tokens in %v", e.Model, e.Info.TotalTokens, e.Duration)
//	}
//
//	registry := hooks.NewRegistry()
//	registry.Register(&LoggingHook{logger: log.Default()})
//	agent := ragent.NewAgent(model).WithHooks(registry)
//
// Hooks are called in registration order. For paired hooks (Before/After), the
// After hook is always called if the Before hook was called, even on error.
// Hooks cannot return errors; a panicking hook stops execution.

// BeforeRunHook is implemented by hooks that want to be notified when a run starts.
type BeforeRunHook interface {
	// OnBeforeRun is called once before the first step of a run.
	OnBeforeRun(ctx context.Context, event BeforeRunEvent)
}

// AfterRunHook is implemented by hooks that want to be notified when a run ends.
// Always called if OnBeforeRun was called, even on error.
type AfterRunHook interface {
	// OnAfterRun is called once after the run terminates.
	OnAfterRun(ctx context.Context, event AfterRunEvent)
}

// BeforeStepHook is implemented by hooks that want to be notified before each step.
type BeforeStepHook interface {
	// OnBeforeStep is called before each Step dispatch.
	OnBeforeStep(ctx context.Context, event BeforeStepEvent)
}

// AfterStepHook is implemented by hooks that want to be notified after each step.
type AfterStepHook interface {
	// OnAfterStep is called after each Step dispatch.
	OnAfterStep(ctx context.Context, event AfterStepEvent)
}

// BeforeModelCallHook is implemented by hooks that want to be notified before model calls.
type BeforeModelCallHook interface {
	// OnBeforeModelCall is called before each model API call.
	OnBeforeModelCall(ctx context.Context, event BeforeModelCallEvent)
}

// AfterModelCallHook is implemented by hooks that want to be notified after model calls.
type AfterModelCallHook interface {
	// OnAfterModelCall is called after each model API call completes.
	OnAfterModelCall(ctx context.Context, event AfterModelCallEvent)
}

// BeforeRetrievalHook is implemented by hooks that want to be notified before retrieval.
type BeforeRetrievalHook interface {
	// OnBeforeRetrieval is called before each retriever call.
	OnBeforeRetrieval(ctx context.Context, event BeforeRetrievalEvent)
}

// AfterRetrievalHook is implemented by hooks that want to be notified after retrieval.
type AfterRetrievalHook interface {
	// OnAfterRetrieval is called after each retriever call completes.
	OnAfterRetrieval(ctx context.Context, event AfterRetrievalEvent)
}

// BeforeToolCallHook is implemented by hooks that want to be notified before tool calls.
type BeforeToolCallHook interface {
	// OnBeforeToolCall is called before each tool execution.
	// The hook can modify event.Args to change the input.
	OnBeforeToolCall(ctx context.Context, event *BeforeToolCallEvent)
}

// AfterToolCallHook is implemented by hooks that want to be notified after tool calls.
type AfterToolCallHook interface {
	// OnAfterToolCall is called after each tool execution completes.
	OnAfterToolCall(ctx context.Context, event AfterToolCallEvent)
}

// ErrorHook is implemented by hooks that want to be notified of errors.
// The error is still returned to the caller.
type ErrorHook interface {
	// OnError is called when a collaborator error surfaces through Step or Run.
	OnError(ctx context.Context, event ErrorEvent)
}

// -----------------------------------------------------------------------------
// HookFirer
// -----------------------------------------------------------------------------

// HookFirer dispatches hook events. hooks.Registry is the standard
// implementation; the Agent accepts any HookFirer so tests can intercept
// events directly.
type HookFirer interface {
	FireBeforeRun(ctx context.Context, event BeforeRunEvent)
	FireAfterRun(ctx context.Context, event AfterRunEvent)
	FireBeforeStep(ctx context.Context, event BeforeStepEvent)
	FireAfterStep(ctx context.Context, event AfterStepEvent)
	FireBeforeModelCall(ctx context.Context, event BeforeModelCallEvent)
	FireAfterModelCall(ctx context.Context, event AfterModelCallEvent)
	FireBeforeRetrieval(ctx context.Context, event BeforeRetrievalEvent)
	FireAfterRetrieval(ctx context.Context, event AfterRetrievalEvent)
	FireBeforeToolCall(ctx context.Context, event *BeforeToolCallEvent)
	FireAfterToolCall(ctx context.Context, event AfterToolCallEvent)
	FireError(ctx context.Context, event ErrorEvent)
}

// noopFirer is the HookFirer used when no hooks are registered.
type noopFirer struct{}

func (noopFirer) FireBeforeRun(context.Context, BeforeRunEvent)             {}
func (noopFirer) FireAfterRun(context.Context, AfterRunEvent)               {}
func (noopFirer) FireBeforeStep(context.Context, BeforeStepEvent)           {}
func (noopFirer) FireAfterStep(context.Context, AfterStepEvent)             {}
func (noopFirer) FireBeforeModelCall(context.Context, BeforeModelCallEvent) {}
func (noopFirer) FireAfterModelCall(context.Context, AfterModelCallEvent)   {}
func (noopFirer) FireBeforeRetrieval(context.Context, BeforeRetrievalEvent) {}
func (noopFirer) FireAfterRetrieval(context.Context, AfterRetrievalEvent)   {}
func (noopFirer) FireBeforeToolCall(context.Context, *BeforeToolCallEvent)  {}
func (noopFirer) FireAfterToolCall(context.Context, AfterToolCallEvent)     {}
func (noopFirer) FireError(context.Context, ErrorEvent)                     {}

// Compile-time check.
var _ HookFirer = noopFirer{}
