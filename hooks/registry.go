package hooks

import (
	"context"

	"github.com/jmadeira/ragent"
)

// Registry manages a collection of hooks and dispatches events to them.
//
// # Overview
//
// Registry is the central coordination point for hooks. It:
//   - Stores registered hooks in order
//   - Dispatches events to hooks that implement the relevant interface
//
// Hooks can implement any combination of hook interfaces - they only receive
// events for the interfaces they implement.
//
// # Creating and Using
//
//	// Create a registry and register hooks
//	registry := hooks.NewRegistry()
//	registry.Register(&LoggingHook{})
//	registry.Register(&MetricsHook{})
//
//	// Use with an agent
//	agent := ragent.NewAgent(model).WithHooks(registry)
//
// # Hooks with Multiple Interfaces
//
// A single hook can implement multiple interfaces:
//
//	type FullHook struct {
//	    logger *log.Logger
//	}
//
//	func (h *FullHook) OnBeforeRun(
//	    ctx context.Context, e ragent.BeforeRunEvent,
//	) {
//	    h.logger.Printf("Run %s started", e.RunID)
//	}
//
//	func (h *FullHook) OnAfterToolCall(
//	    ctx context.Context, e ragent.AfterToolCallEvent,
//	) {
//	    h.logger.Printf("Tool %s: %v", e.ToolName, e.Duration)
//	}
//
//	// Register once - receives both event types
//	registry.Register(&FullHook{logger: log.Default()})
//
// # Thread Safety
//
// Registry is NOT thread-safe. Register all hooks before starting a run.
// Fire methods should only be called by the agent.
type Registry struct {
	hooks []any
}

// Compile-time check.
var _ ragent.HookFirer = (*Registry)(nil)

// NewRegistry creates a new empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		hooks: make([]any, 0),
	}
}

// Register adds a hook to the registry. The hook can implement any combination
// of hook interfaces (BeforeRunHook, AfterModelCallHook, etc.).
//
// Hooks are called in the order they are registered.
func (r *Registry) Register(hook any) *Registry {
	r.hooks = append(r.hooks, hook)
	return r
}

// Len returns the number of registered hooks.
func (r *Registry) Len() int {
	return len(r.hooks)
}

// Clear removes all registered hooks.
func (r *Registry) Clear() {
	r.hooks = r.hooks[:0]
}

// FireBeforeRun dispatches a BeforeRunEvent to all registered
// BeforeRunHook implementations.
func (r *Registry) FireBeforeRun(
	ctx context.Context,
	event ragent.BeforeRunEvent,
) {
	for _, h := range r.hooks {
		if hook, ok := h.(ragent.BeforeRunHook); ok {
			hook.OnBeforeRun(ctx, event)
		}
	}
}

// FireAfterRun dispatches an AfterRunEvent to all registered
// AfterRunHook implementations.
func (r *Registry) FireAfterRun(
	ctx context.Context,
	event ragent.AfterRunEvent,
) {
	for _, h := range r.hooks {
		if hook, ok := h.(ragent.AfterRunHook); ok {
			hook.OnAfterRun(ctx, event)
		}
	}
}

// FireBeforeStep dispatches a BeforeStepEvent to all registered
// BeforeStepHook implementations.
func (r *Registry) FireBeforeStep(
	ctx context.Context,
	event ragent.BeforeStepEvent,
) {
	for _, h := range r.hooks {
		if hook, ok := h.(ragent.BeforeStepHook); ok {
			hook.OnBeforeStep(ctx, event)
		}
	}
}

// FireAfterStep dispatches an AfterStepEvent to all registered
// AfterStepHook implementations.
func (r *Registry) FireAfterStep(
	ctx context.Context,
	event ragent.AfterStepEvent,
) {
	for _, h := range r.hooks {
		if hook, ok := h.(ragent.AfterStepHook); ok {
			hook.OnAfterStep(ctx, event)
		}
	}
}

// FireBeforeModelCall dispatches a BeforeModelCallEvent to all registered
// BeforeModelCallHook implementations.
func (r *Registry) FireBeforeModelCall(
	ctx context.Context,
	event ragent.BeforeModelCallEvent,
) {
	for _, h := range r.hooks {
		if hook, ok := h.(ragent.BeforeModelCallHook); ok {
			hook.OnBeforeModelCall(ctx, event)
		}
	}
}

// FireAfterModelCall dispatches an AfterModelCallEvent to all registered
// AfterModelCallHook implementations.
func (r *Registry) FireAfterModelCall(
	ctx context.Context,
	event ragent.AfterModelCallEvent,
) {
	for _, h := range r.hooks {
		if hook, ok := h.(ragent.AfterModelCallHook); ok {
			hook.OnAfterModelCall(ctx, event)
		}
	}
}

// FireBeforeRetrieval dispatches a BeforeRetrievalEvent to all registered
// BeforeRetrievalHook implementations.
func (r *Registry) FireBeforeRetrieval(
	ctx context.Context,
	event ragent.BeforeRetrievalEvent,
) {
	for _, h := range r.hooks {
		if hook, ok := h.(ragent.BeforeRetrievalHook); ok {
			hook.OnBeforeRetrieval(ctx, event)
		}
	}
}

// FireAfterRetrieval dispatches an AfterRetrievalEvent to all registered
// AfterRetrievalHook implementations.
func (r *Registry) FireAfterRetrieval(
	ctx context.Context,
	event ragent.AfterRetrievalEvent,
) {
	for _, h := range r.hooks {
		if hook, ok := h.(ragent.AfterRetrievalHook); ok {
			hook.OnAfterRetrieval(ctx, event)
		}
	}
}

// FireBeforeToolCall dispatches a BeforeToolCallEvent to all registered
// BeforeToolCallHook implementations. Hooks receive a pointer and may
// modify event.Args; modifications are visible to later hooks and to the
// tool call itself.
func (r *Registry) FireBeforeToolCall(
	ctx context.Context,
	event *ragent.BeforeToolCallEvent,
) {
	for _, h := range r.hooks {
		if hook, ok := h.(ragent.BeforeToolCallHook); ok {
			hook.OnBeforeToolCall(ctx, event)
		}
	}
}

// FireAfterToolCall dispatches an AfterToolCallEvent to all registered
// AfterToolCallHook implementations.
func (r *Registry) FireAfterToolCall(
	ctx context.Context,
	event ragent.AfterToolCallEvent,
) {
	for _, h := range r.hooks {
		if hook, ok := h.(ragent.AfterToolCallHook); ok {
			hook.OnAfterToolCall(ctx, event)
		}
	}
}

// FireError dispatches an ErrorEvent to all registered ErrorHook
// implementations.
func (r *Registry) FireError(
	ctx context.Context,
	event ragent.ErrorEvent,
) {
	for _, h := range r.hooks {
		if hook, ok := h.(ragent.ErrorHook); ok {
			hook.OnError(ctx, event)
		}
	}
}
