package memory

import (
	"strings"
	"sync"

	"github.com/pkoukk/tiktoken-go"

	"github.com/jmadeira/ragent"
)

// TokenCounter counts the tokens in a piece of text.
type TokenCounter func(text string) int

// TokenWindow keeps the most recent messages whose combined
// token count fits in a budget, discarding older ones. The
// leading run of system messages is always preserved and
// its tokens are charged against the budget first.
//
// Tokens are counted with the cl100k_base encoding by
// default. Use [TokenWindow.WithCounter] to supply a
// provider-specific counter.
//
// Example:
//
//	// Keep roughly the last 4000 tokens of conversation
//	agent.WithMemory(memory.NewTokenWindow(4000))
type TokenWindow struct {
	budget  int
	counter TokenCounter
}

var _ ragent.MemoryManager = (*TokenWindow)(nil)

// NewTokenWindow creates a TokenWindow with the given token
// budget.
// Panics if budget < 1.
func NewTokenWindow(budget int) *TokenWindow {
	if budget < 1 {
		panic("ragent: TokenWindow budget must be >= 1")
	}
	return &TokenWindow{
		budget:  budget,
		counter: defaultCounter,
	}
}

// WithCounter replaces the default cl100k_base counter.
func (w *TokenWindow) WithCounter(
	counter TokenCounter,
) *TokenWindow {
	w.counter = counter
	return w
}

// Process implements ragent.MemoryManager.
func (w *TokenWindow) Process(
	messages []ragent.Message,
) []ragent.Message {
	prefix := systemPrefix(messages)
	rest := messages[prefix:]

	remaining := w.budget
	for _, msg := range messages[:prefix] {
		remaining -= w.counter(messageText(msg))
	}

	// Walk backwards from the newest message, keeping as
	// many as fit.
	keep := 0
	for i := len(rest) - 1; i >= 0; i-- {
		cost := w.counter(messageText(rest[i]))
		if cost > remaining {
			break
		}
		remaining -= cost
		keep++
	}
	if keep == len(rest) {
		return messages
	}

	kept := rest[len(rest)-keep:]
	result := make(
		[]ragent.Message, 0, prefix+len(kept),
	)
	result = append(result, messages[:prefix]...)
	result = append(result, kept...)
	return result
}

// messageText extracts the countable text of a message.
func messageText(msg ragent.Message) string {
	switch m := msg.(type) {
	case ragent.ChatMessage:
		return ragent.TextContent(m)
	case ragent.RetrievalRequest:
		return m.Query
	case ragent.RetrievalResponse:
		var sb strings.Builder
		for _, doc := range m.Results {
			sb.WriteString(doc.PageContent)
			sb.WriteString("\n")
		}
		return sb.String()
	case ragent.AgentFinish:
		return m.Log
	default:
		return ""
	}
}

var (
	encodingOnce sync.Once
	encoding     *tiktoken.Tiktoken
)

// defaultCounter counts tokens with cl100k_base, falling
// back to a 4-chars-per-token estimate if the encoding
// cannot be loaded (e.g. offline with no cached BPE data).
func defaultCounter(text string) int {
	encodingOnce.Do(func() {
		enc, err := tiktoken.GetEncoding(
			tiktoken.MODEL_CL100K_BASE,
		)
		if err == nil {
			encoding = enc
		}
	})
	if encoding == nil {
		return (len(text) + 3) / 4
	}
	return len(encoding.Encode(text, nil, nil))
}
