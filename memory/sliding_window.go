package memory

import (
	"github.com/tmc/langchaingo/llms"

	"github.com/jmadeira/ragent"
)

// SlidingWindow keeps the last N messages in the log,
// discarding older ones. The leading run of system messages
// is always preserved regardless of the window size; those
// are "bonus slots" that do not count toward the window.
//
// Example:
//
//	// Keep last 50 messages (plus leading system messages)
//	agent.WithMemory(memory.NewSlidingWindow(50))
type SlidingWindow struct {
	windowSize int
}

var _ ragent.MemoryManager = (*SlidingWindow)(nil)

// NewSlidingWindow creates a SlidingWindow that keeps the
// last windowSize messages.
// Panics if windowSize < 1.
func NewSlidingWindow(windowSize int) *SlidingWindow {
	if windowSize < 1 {
		panic(
			"ragent: SlidingWindow windowSize must be >= 1",
		)
	}
	return &SlidingWindow{windowSize: windowSize}
}

// Process implements ragent.MemoryManager.
func (w *SlidingWindow) Process(
	messages []ragent.Message,
) []ragent.Message {
	prefix := systemPrefix(messages)
	rest := messages[prefix:]
	if len(rest) <= w.windowSize {
		return messages
	}

	kept := rest[len(rest)-w.windowSize:]
	result := make(
		[]ragent.Message, 0, prefix+len(kept),
	)
	result = append(result, messages[:prefix]...)
	result = append(result, kept...)
	return result
}

// systemPrefix returns the length of the leading run of
// system messages.
func systemPrefix(messages []ragent.Message) int {
	for i, msg := range messages {
		chat, ok := msg.(ragent.ChatMessage)
		if !ok || chat.Role != llms.ChatMessageTypeSystem {
			return i
		}
	}
	return len(messages)
}
