package ragent

import "github.com/tmc/langchaingo/llms"

// Config is the per-call configuration bag threaded through Step and Run into
// the collaborators. It is optional everywhere; nil means defaults.
type Config struct {
	// CallOptions are appended to the options the LLM program passes to the
	// model (temperature, max tokens, etc). Options set at Agent construction
	// (stop words, tools) take effect first so these can override them.
	CallOptions []llms.CallOption

	// Metadata is free-form data for hooks and custom collaborators.
	// The core never reads it.
	Metadata map[string]any
}

// callOptions returns the config's call options, tolerating a nil receiver.
func (c *Config) callOptions() []llms.CallOption {
	if c == nil {
		return nil
	}
	return c.CallOptions
}
