package ragent

import (
	"strings"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/schema"
)

// Message is a single event on the agent's log. It is a closed union: the only
// implementations are [ChatMessage], [RetrievalRequest], [RetrievalResponse] and
// [AgentFinish]. Code that dispatches on a Message should switch over these four
// types and treat anything it does not recognize as "pass to the model" (see
// [Agent.Step]) or "drop" (see [ChatPrompt]).
//
// Messages are value records. Once constructed they are never mutated; the run
// loop only ever appends new messages to its log.
type Message interface {
	message()
}

// ChatMessage is a plain chat message with a role and content parts. It wraps
// LangChainGo's [llms.MessageContent] so prompts can be handed to an
// [llms.Model] without conversion.
type ChatMessage struct {
	llms.MessageContent
}

func (ChatMessage) message() {}

// RetrievalRequest asks the retriever to look up documents for Query.
// The agent emits one in response to every human chat message.
type RetrievalRequest struct {
	// Query is the text to retrieve documents for.
	Query string
}

func (RetrievalRequest) message() {}

// RetrievalResponse carries the documents returned by the retriever.
// It is consumed only by the prompt generator, which renders it into a
// synthetic human message.
type RetrievalResponse struct {
	// Results are the retrieved documents, most relevant first.
	Results []schema.Document
}

func (RetrievalResponse) message() {}

// AgentFinish signals that the agent has produced its final answer.
// Seeing one at the end of the log terminates the run loop.
type AgentFinish struct {
	// ReturnValues holds the structured final output (commonly an "output" key).
	ReturnValues map[string]any

	// Log is the raw model output the finish was parsed from.
	Log string
}

func (AgentFinish) message() {}

// NewHumanMessage creates a human-role chat message with a single text part.
func NewHumanMessage(text string) ChatMessage {
	return ChatMessage{llms.TextParts(llms.ChatMessageTypeHuman, text)}
}

// NewAIMessage creates an AI-role chat message with a single text part.
func NewAIMessage(text string) ChatMessage {
	return ChatMessage{llms.TextParts(llms.ChatMessageTypeAI, text)}
}

// NewSystemMessage creates a system-role chat message with a single text part.
func NewSystemMessage(text string) ChatMessage {
	return ChatMessage{llms.TextParts(llms.ChatMessageTypeSystem, text)}
}

// NewToolMessage creates a tool-role chat message with a single text part.
// Used by the LLM program to record tool outputs on the log.
func NewToolMessage(text string) ChatMessage {
	return ChatMessage{llms.TextParts(llms.ChatMessageTypeTool, text)}
}

// TextContent concatenates the text parts of a chat message. Non-text parts are
// skipped. Returns "" for non-chat messages.
func TextContent(m Message) string {
	chat, ok := m.(ChatMessage)
	if !ok {
		return ""
	}
	var sb strings.Builder
	for _, part := range chat.Parts {
		if text, ok := part.(llms.TextContent); ok {
			sb.WriteString(text.Text)
		}
	}
	return sb.String()
}
