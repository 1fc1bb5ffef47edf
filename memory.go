package ragent

// MemoryManager transforms the message log before each step. The run loop
// calls Process unconditionally every round and replaces its log wholesale
// with the result, so implementations may truncate, summarize, or filter
// freely. They must never mutate the messages themselves.
//
// The memory package provides windowing implementations; [NoopMemory] is the
// explicit "keep everything" manager the Agent defaults to.
type MemoryManager interface {
	// Process returns the log to use for the next step.
	Process(messages []Message) []Message
}

// NoopMemory returns the log unchanged.
type NoopMemory struct{}

// Process implements MemoryManager.
func (NoopMemory) Process(messages []Message) []Message {
	return messages
}

// Compile-time check.
var _ MemoryManager = NoopMemory{}
