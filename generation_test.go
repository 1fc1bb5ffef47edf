package ragent

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/tmc/langchaingo/llms"
)

func TestNewGenerationInfo(t *testing.T) {
	tests := []struct {
		name     string
		input    map[string]any
		expected GenerationInfo
	}{
		{
			name: "openai keys",
			input: map[string]any{
				"PromptTokens":     100,
				"CompletionTokens": 40,
				"TotalTokens":      140,
			},
			expected: GenerationInfo{
				InputTokens:  100,
				OutputTokens: 40,
				TotalTokens:  140,
			},
		},
		{
			name: "anthropic keys",
			input: map[string]any{
				"InputTokens":          200,
				"OutputTokens":         50,
				"CacheReadInputTokens": 120,
			},
			expected: GenerationInfo{
				InputTokens:       200,
				OutputTokens:      50,
				TotalTokens:       250,
				CachedInputTokens: 120,
			},
		},
		{
			name: "bedrock snake_case keys",
			input: map[string]any{
				"input_tokens":  30,
				"output_tokens": 10,
			},
			expected: GenerationInfo{
				InputTokens:  30,
				OutputTokens: 10,
				TotalTokens:  40,
			},
		},
		{
			name: "reasoning tokens",
			input: map[string]any{
				"PromptTokens":     10,
				"CompletionTokens": 90,
				"ReasoningTokens":  60,
			},
			expected: GenerationInfo{
				InputTokens:     10,
				OutputTokens:    90,
				TotalTokens:     100,
				ReasoningTokens: 60,
			},
		},
		{
			name: "float values from json decoding",
			input: map[string]any{
				"PromptTokens":     float64(15),
				"CompletionTokens": float64(5),
			},
			expected: GenerationInfo{
				InputTokens:  15,
				OutputTokens: 5,
				TotalTokens:  20,
			},
		},
		{
			name:     "nil info",
			input:    nil,
			expected: GenerationInfo{},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			resp := &llms.ContentResponse{
				Choices: []*llms.ContentChoice{{GenerationInfo: tc.input}},
			}
			info := newGenerationInfo(resp, time.Second)

			assert.Equal(t, tc.expected.InputTokens, info.InputTokens)
			assert.Equal(t, tc.expected.OutputTokens, info.OutputTokens)
			assert.Equal(t, tc.expected.TotalTokens, info.TotalTokens)
			assert.Equal(t, tc.expected.CachedInputTokens, info.CachedInputTokens)
			assert.Equal(t, tc.expected.ReasoningTokens, info.ReasoningTokens)
			assert.Equal(t, time.Second, info.Duration)
		})
	}
}

func TestNewGenerationInfo_NoChoices(t *testing.T) {
	info := newGenerationInfo(&llms.ContentResponse{}, time.Second)
	assert.Zero(t, info.TotalTokens)
	assert.Nil(t, info.RawGenerationInfo)
	assert.Equal(t, time.Second, info.Duration)
}

func TestGetIntFromMap(t *testing.T) {
	m := map[string]any{
		"int":     7,
		"int64":   int64(8),
		"float64": float64(9),
		"string":  "10",
	}
	assert.Equal(t, 7, getIntFromMap(m, "int"))
	assert.Equal(t, 8, getIntFromMap(m, "int64"))
	assert.Equal(t, 9, getIntFromMap(m, "float64"))
	assert.Equal(t, 0, getIntFromMap(m, "string"))
	assert.Equal(t, 0, getIntFromMap(m, "missing"))
}
