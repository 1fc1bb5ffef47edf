package ragent

import "strings"

// OutputParser turns raw model output into message-like events. A parser may
// emit an [AgentFinish] to terminate the run, plain chat messages, or several
// messages at once. Parsers run inside the LLM program, after the model call.
type OutputParser interface {
	// ParseOutput parses the model's text output into messages.
	// Parse failures propagate to the caller of Step/Run.
	ParseOutput(content string) ([]Message, error)
}

// OutputParserFunc adapts a function to the OutputParser interface.
type OutputParserFunc func(content string) ([]Message, error)

// ParseOutput implements OutputParser.
func (f OutputParserFunc) ParseOutput(content string) ([]Message, error) {
	return f(content)
}

// FinishParser recognizes a final-answer marker in model output.
//
// When the output contains the marker, everything after it becomes the
// AgentFinish's "output" return value and the run terminates on the next step.
// Otherwise the output passes through as an AI message and the loop continues.
type FinishParser struct {
	marker string
}

// NewFinishParser creates a FinishParser with the given marker
// (e.g. "Final Answer:").
func NewFinishParser(marker string) *FinishParser {
	return &FinishParser{marker: marker}
}

// ParseOutput implements OutputParser.
func (p *FinishParser) ParseOutput(content string) ([]Message, error) {
	idx := strings.Index(content, p.marker)
	if idx < 0 {
		return []Message{NewAIMessage(content)}, nil
	}
	answer := strings.TrimSpace(content[idx+len(p.marker):])
	return []Message{
		NewAIMessage(content),
		AgentFinish{
			ReturnValues: map[string]any{"output": answer},
			Log:          content,
		},
	}, nil
}

// Compile-time check.
var _ OutputParser = (*FinishParser)(nil)
