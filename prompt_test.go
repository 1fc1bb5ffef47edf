package ragent_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/schema"

	"github.com/jmadeira/ragent"
	"github.com/jmadeira/ragent/internal/tt"
)

func TestChatPrompt_PassesChatMessagesThrough(t *testing.T) {
	log := []ragent.Message{
		ragent.NewSystemMessage("be brief"),
		ragent.NewHumanMessage("hi"),
		ragent.NewAIMessage("hello"),
	}

	prompt := ragent.ChatPrompt(log)

	tt.AssertPromptEqual(t, []llms.MessageContent{
		llms.TextParts(llms.ChatMessageTypeSystem, "be brief"),
		llms.TextParts(llms.ChatMessageTypeHuman, "hi"),
		llms.TextParts(llms.ChatMessageTypeAI, "hello"),
	}, prompt)
}

func TestChatPrompt_DropsControlEvents(t *testing.T) {
	log := []ragent.Message{
		ragent.NewHumanMessage("hi"),
		ragent.RetrievalRequest{Query: "hi"},
		ragent.AgentFinish{ReturnValues: map[string]any{"output": "x"}},
	}

	prompt := ragent.ChatPrompt(log)

	require.Len(t, prompt, 1)
	assert.Equal(t, llms.ChatMessageTypeHuman, prompt[0].Role)
}

func TestChatPrompt_RendersEmptyResults(t *testing.T) {
	prompt := ragent.ChatPrompt([]ragent.Message{
		ragent.RetrievalResponse{},
	})

	require.Len(t, prompt, 1)
	assert.Equal(t, llms.ChatMessageTypeHuman, prompt[0].Role)
	assert.Equal(t,
		"Context: <result>\nFound no results for the query.\n</result>",
		promptText(t, prompt[0]),
	)
}

func TestChatPrompt_RendersResultsWithMetadata(t *testing.T) {
	prompt := ragent.ChatPrompt([]ragent.Message{
		ragent.RetrievalResponse{Results: []schema.Document{
			{
				PageContent: "T",
				Metadata:    map[string]any{"title": "A"},
			},
		}},
	})

	require.Len(t, prompt, 1)
	text := promptText(t, prompt[0])
	assert.Equal(t,
		"Context: <result>\n"+
			"--- Result 0 ---\n"+
			"Text:\n"+
			"TA\n"+
			"--- End Result 0 ---\n"+
			"\n</result>",
		text,
	)
}

func TestChatPrompt_RendersMetadataFieldsInOrder(t *testing.T) {
	// title, then description, then source - regardless of map ordering.
	prompt := ragent.ChatPrompt([]ragent.Message{
		ragent.RetrievalResponse{Results: []schema.Document{
			{
				PageContent: "body\n",
				Metadata: map[string]any{
					"source":      "kb://1",
					"title":       "Refunds",
					"description": "Refund policy overview",
					"ignored":     "never rendered",
				},
			},
		}},
	})

	require.Len(t, prompt, 1)
	assert.Equal(t,
		"Context: <result>\n"+
			"--- Result 0 ---\n"+
			"Text:\n"+
			"body\n"+
			"Refunds\n"+
			"Refund policy overview\n"+
			"kb://1\n"+
			"--- End Result 0 ---\n"+
			"\n</result>",
		promptText(t, prompt[0]),
	)
}

func TestChatPrompt_NumbersMultipleResults(t *testing.T) {
	prompt := ragent.ChatPrompt([]ragent.Message{
		ragent.RetrievalResponse{Results: []schema.Document{
			{PageContent: "first\n"},
			{PageContent: "second\n"},
		}},
	})

	require.Len(t, prompt, 1)
	text := promptText(t, prompt[0])
	assert.Contains(t, text, "--- Result 0 ---\nText:\nfirst\n--- End Result 0 ---\n")
	assert.Contains(t, text, "--- Result 1 ---\nText:\nsecond\n--- End Result 1 ---\n")
}

func TestChatPrompt_EmptyLog(t *testing.T) {
	assert.Empty(t, ragent.ChatPrompt(nil))
}

// promptText extracts the concatenated text parts of a prompt message.
func promptText(t *testing.T, mc llms.MessageContent) string {
	t.Helper()
	var text string
	for _, part := range mc.Parts {
		tc, ok := part.(llms.TextContent)
		require.True(t, ok, "expected text part, got %T", part)
		text += tc.Text
	}
	return text
}
