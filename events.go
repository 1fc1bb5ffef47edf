package ragent

import (
	"time"

	"github.com/tmc/langchaingo/llms"
)

// -----------------------------------------------------------------------------
// Hook Event Interface
// -----------------------------------------------------------------------------

// HookEvent is a marker interface for all hook events.
type HookEvent interface {
	hookEvent()
}

// -----------------------------------------------------------------------------
// Run Events
// -----------------------------------------------------------------------------

// BeforeRunEvent is emitted once when a run starts, before the first step.
type BeforeRunEvent struct {
	// RunID uniquely identifies this run across all events it emits.
	RunID string

	// Initial is the caller-supplied log the run started from.
	Initial []Message

	// MaxIterations is the iteration cap for this run.
	MaxIterations int
}

func (BeforeRunEvent) hookEvent() {}

// AfterRunEvent is emitted once when a run ends, for any reason.
type AfterRunEvent struct {
	// RunID uniquely identifies this run across all events it emits.
	RunID string

	// Iterations is the number of step rounds executed.
	Iterations int

	// Produced is the total number of messages the run yielded.
	Produced int

	// Err is the error that ended the run (nil for normal termination,
	// including hitting the iteration cap).
	Err error
}

func (AfterRunEvent) hookEvent() {}

// BeforeStepEvent is emitted before each Step dispatch.
type BeforeStepEvent struct {
	// RunID is empty when Step is called directly, outside a run.
	RunID string

	// Iteration is the current round number (1-indexed). Zero outside a run.
	Iteration int

	// LogLen is the length of the log being dispatched on.
	LogLen int
}

func (BeforeStepEvent) hookEvent() {}

// AfterStepEvent is emitted after each Step dispatch.
type AfterStepEvent struct {
	// RunID is empty when Step is called directly, outside a run.
	RunID string

	// Iteration is the current round number (1-indexed). Zero outside a run.
	Iteration int

	// New is the messages the step produced (nil for terminal steps).
	New []Message

	// Duration is how long the step took.
	Duration time.Duration

	// Err is any error the step surfaced (nil if successful).
	Err error
}

func (AfterStepEvent) hookEvent() {}

// -----------------------------------------------------------------------------
// Model Call Events
// -----------------------------------------------------------------------------

// BeforeModelCallEvent is emitted before each model API call.
type BeforeModelCallEvent struct {
	// Model is the model identifier, if one was configured.
	Model string

	// Prompt contains the chat messages being sent to the model.
	Prompt []llms.MessageContent
}

func (BeforeModelCallEvent) hookEvent() {}

// AfterModelCallEvent is emitted after each model API call completes.
type AfterModelCallEvent struct {
	// Model is the model identifier, if one was configured.
	Model string

	// Prompt contains the chat messages that were sent to the model.
	Prompt []llms.MessageContent

	// Info contains normalized generation metadata (nil on error).
	Info *GenerationInfo

	// Duration is how long the call took.
	Duration time.Duration

	// Err is any error that occurred (nil if successful).
	Err error
}

func (AfterModelCallEvent) hookEvent() {}

// -----------------------------------------------------------------------------
// Retrieval Events
// -----------------------------------------------------------------------------

// BeforeRetrievalEvent is emitted before each retriever call.
type BeforeRetrievalEvent struct {
	// Query is the retrieval query.
	Query string
}

func (BeforeRetrievalEvent) hookEvent() {}

// AfterRetrievalEvent is emitted after each retriever call completes.
type AfterRetrievalEvent struct {
	// Query is the retrieval query.
	Query string

	// Results is the number of documents retrieved.
	Results int

	// Duration is how long the call took.
	Duration time.Duration

	// Err is any error that occurred (nil if successful).
	Err error
}

func (AfterRetrievalEvent) hookEvent() {}

// -----------------------------------------------------------------------------
// Tool Call Events
// -----------------------------------------------------------------------------

// BeforeToolCallEvent is emitted before each tool call execution.
// Hooks can modify Args to change the input before execution.
type BeforeToolCallEvent struct {
	// ToolName is the name of the tool being called.
	ToolName string

	// Args contains the arguments that will be passed to the tool.
	// Hooks can modify this map to change the arguments.
	Args map[string]any
}

func (BeforeToolCallEvent) hookEvent() {}

// AfterToolCallEvent is emitted after each tool call execution.
type AfterToolCallEvent struct {
	// ToolName is the name of the tool that was called.
	ToolName string

	// Args contains the arguments that were passed to the tool.
	Args map[string]any

	// Output contains the tool's output ("" if an error occurred).
	Output string

	// Duration is how long the tool call took.
	Duration time.Duration

	// Err is any error that occurred (nil if successful).
	Err error
}

func (AfterToolCallEvent) hookEvent() {}

// -----------------------------------------------------------------------------
// Error Event
// -----------------------------------------------------------------------------

// ErrorEvent is emitted when a collaborator error surfaces through Step or Run.
// The error is still returned to the caller; this event is informational.
type ErrorEvent struct {
	// RunID is empty when the error occurred outside a run.
	RunID string

	// Iteration is the round where the error occurred (0 outside a run).
	Iteration int

	// Err is the error that occurred.
	Err error
}

func (ErrorEvent) hookEvent() {}
