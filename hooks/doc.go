// Package hooks provides a registry for managing agent lifecycle hooks.
//
// Hooks allow you to observe and intercept events during agent execution.
// Each hook interface corresponds to a specific event type - implement only
// the interfaces you need.
//
// # Hook Interfaces
//
// Run lifecycle hooks:
//   - [ragent.BeforeRunHook] - Called once before the first step of a run
//   - [ragent.AfterRunHook] - Called once after the run ends
//   - [ragent.BeforeStepHook] - Called before each step dispatch
//   - [ragent.AfterStepHook] - Called after each step dispatch
//   - [ragent.ErrorHook] - Called when errors occur
//
// Model call hooks:
//   - [ragent.BeforeModelCallHook] - Called before each LLM API call
//   - [ragent.AfterModelCallHook] - Called after each LLM API call
//
// Retrieval hooks:
//   - [ragent.BeforeRetrievalHook] - Called before each retriever call
//   - [ragent.AfterRetrievalHook] - Called after each retriever call
//
// Tool call hooks:
//   - [ragent.BeforeToolCallHook] - Called before each tool execution (can modify args)
//   - [ragent.AfterToolCallHook] - Called after each tool execution
//
// # Creating a Hook
//
// Create a hook by implementing any combination of interfaces:
//
//	type MetricsHook struct{}
//
//	func (h *MetricsHook) OnAfterToolCall(
//	    ctx context.Context,
//	    event ragent.AfterToolCallEvent,
//	) {
//	    metrics.RecordToolCall(event.ToolName, event.Duration)
//	}
//
//	// Compile-time check
//	var _ ragent.AfterToolCallHook = (*MetricsHook)(nil)
//
// Register it with a Registry and pass the registry to the agent:
//
//	registry := hooks.NewRegistry()
//	registry.Register(&MetricsHook{})
//	agent := ragent.NewAgent(model).WithHooks(registry)
package hooks
