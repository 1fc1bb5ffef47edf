package ragent

// Model name constants for WithModelName. Purely convenience; any string the
// provider accepts works.

// OpenAI models.
// https://platform.openai.com/docs/models/
const (
	ModelOpenAIGPT41     = "gpt-4.1"
	ModelOpenAIGPT41Mini = "gpt-4.1-mini"
	ModelOpenAIGPT41Nano = "gpt-4.1-nano"

	ModelOpenAIGPT4o     = "gpt-4o"
	ModelOpenAIGPT4oMini = "gpt-4o-mini"

	ModelOpenAIO3     = "o3"
	ModelOpenAIO4Mini = "o4-mini"
)

// Anthropic Claude models.
// https://docs.anthropic.com/en/docs/about-claude/models/overview
const (
	ModelAnthropicClaude45Sonnet = "claude-sonnet-4-5-20250929"
	ModelAnthropicClaude45Haiku  = "claude-haiku-4-5-20251001"
	ModelAnthropicClaude35Sonnet = "claude-3-5-sonnet-20241022"
	ModelAnthropicClaude35Haiku  = "claude-3-5-haiku-20241022"
)

// Google Gemini models.
// https://ai.google.dev/gemini-api/docs/models
const (
	ModelGoogleGemini25Pro   = "gemini-2.5-pro"
	ModelGoogleGemini25Flash = "gemini-2.5-flash"
	ModelGoogleGemini20Flash = "gemini-2.0-flash"
)
