package ragent

import (
	"fmt"
	"strings"

	"github.com/tmc/langchaingo/llms"
)

// PromptGenerator turns the message log into chat messages ready to send to the
// model. Implementations must be pure: same log in, same prompt out, no side
// effects.
type PromptGenerator func(messages []Message) []llms.MessageContent

// ChatPrompt is the default PromptGenerator.
//
// Chat messages pass through unchanged, in order. Each RetrievalResponse is
// rendered into a single synthetic human message wrapping the results in a
// <result> block so the model can tell retrieved context apart from
// conversation. Every other message kind (retrieval requests, finish signals)
// is dropped; those are control events, not prompt material.
func ChatPrompt(messages []Message) []llms.MessageContent {
	prompt := make([]llms.MessageContent, 0, len(messages))
	for _, m := range messages {
		switch msg := m.(type) {
		case ChatMessage:
			prompt = append(prompt, msg.MessageContent)
		case RetrievalResponse:
			prompt = append(prompt, renderRetrievalResponse(msg))
		}
	}
	return prompt
}

// Metadata fields interpolated into rendered results, in order. Only the
// values are included, never the field names.
var resultMetadataFields = []string{"title", "description", "source"}

// renderRetrievalResponse renders retrieved documents as a human message.
func renderRetrievalResponse(resp RetrievalResponse) llms.MessageContent {
	var sb strings.Builder
	if len(resp.Results) == 0 {
		sb.WriteString("Found no results for the query.")
	} else {
		for idx, doc := range resp.Results {
			fmt.Fprintf(&sb, "--- Result %d ---\n", idx)
			sb.WriteString("Text:\n")
			sb.WriteString(doc.PageContent)
			for _, field := range resultMetadataFields {
				if value, ok := doc.Metadata[field]; ok {
					fmt.Fprintf(&sb, "%v\n", value)
				}
			}
			fmt.Fprintf(&sb, "--- End Result %d ---\n", idx)
		}
	}
	return llms.TextParts(
		llms.ChatMessageTypeHuman,
		"Context: <result>\n"+sb.String()+"\n</result>",
	)
}
