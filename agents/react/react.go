// Package react configures a ragent.Agent for the ReAct (Reasoning and
// Acting) pattern: the model thinks in visible steps, optionally calls
// tools, and signals its final answer with a marker the finish parser
// recognizes.
//
//	agent := react.New(llm,
//	    react.WithInstructions("You answer questions about our help center."),
//	    react.WithTools(searchTool),
//	    react.WithRetriever(myRetriever),
//	)
package react

import (
	"bytes"
	"text/template"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/schema"

	"github.com/jmadeira/ragent"
)

// FinishMarker is the marker the model uses to signal its final answer.
const FinishMarker = "Final Answer:"

// systemTemplate is the default ReAct system prompt. It explains the
// Think-Act-Answer loop to the model.
var systemTemplate = template.Must(template.New("react_system").Parse(
	`You are an assistant that reasons step by step before answering.

{{if .Instructions}}{{.Instructions}}

{{end}}Work in rounds. In each round, first write a "Thought:" line with your
reasoning. {{if .ToolNames}}If you need more information, call one of your
tools ({{range $i, $n := .ToolNames}}{{if $i}}, {{end}}{{$n}}{{end}}) and wait
for its result. {{end}}When you know the answer, finish with a line starting
with "{{.Marker}}" followed by the answer itself. Only the text after
"{{.Marker}}" is shown to the user.`,
))

// TemplateData is the data rendered into the system prompt template.
type TemplateData struct {
	// Instructions is additional task context provided by the caller.
	Instructions string

	// ToolNames lists the tools available to the model.
	ToolNames []string

	// Marker is the final-answer marker.
	Marker string
}

// SystemPrompt renders the ReAct system prompt.
func SystemPrompt(data TemplateData) (string, error) {
	var buf bytes.Buffer
	if err := systemTemplate.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Option configures the preset.
type Option func(*config)

type config struct {
	instructions string
	tools        []ragent.Tool
	retriever    schema.Retriever
	memory       ragent.MemoryManager
	hooks        ragent.HookFirer
	modelName    string
}

// WithInstructions adds task-specific context to the system prompt.
func WithInstructions(instructions string) Option {
	return func(c *config) { c.instructions = instructions }
}

// WithTools makes tools available to the agent.
func WithTools(tools ...ragent.Tool) Option {
	return func(c *config) { c.tools = tools }
}

// WithRetriever sets the document retriever.
func WithRetriever(retriever schema.Retriever) Option {
	return func(c *config) { c.retriever = retriever }
}

// WithMemory sets the memory manager.
func WithMemory(memory ragent.MemoryManager) Option {
	return func(c *config) { c.memory = memory }
}

// WithHooks sets the hook firer.
func WithHooks(hooks ragent.HookFirer) Option {
	return func(c *config) { c.hooks = hooks }
}

// WithModelName sets the model identifier used in hook events.
func WithModelName(name string) Option {
	return func(c *config) { c.modelName = name }
}

// New creates an Agent wired for the ReAct pattern: the rendered system
// prompt is prepended to every run's log via [Seed], model output runs
// through a finish parser keyed on [FinishMarker], and "Observation:" is a
// stop word so the model cannot fabricate tool results.
func New(model llms.Model, opts ...Option) *ragent.Agent {
	var c config
	for _, opt := range opts {
		opt(&c)
	}

	agent := ragent.NewAgent(model).
		WithParser(ragent.NewFinishParser(FinishMarker)).
		WithStopWords("Observation:")
	if len(c.tools) > 0 {
		agent.WithTools(c.tools...)
	}
	if c.retriever != nil {
		agent.WithRetriever(c.retriever)
	}
	if c.memory != nil {
		agent.WithMemory(c.memory)
	}
	if c.hooks != nil {
		agent.WithHooks(c.hooks)
	}
	if c.modelName != "" {
		agent.WithModelName(c.modelName)
	}
	return agent
}

// Seed builds the initial log for a run: the rendered system prompt
// followed by the user's question.
func Seed(question string, opts ...Option) ([]ragent.Message, error) {
	var c config
	for _, opt := range opts {
		opt(&c)
	}

	names := make([]string, 0, len(c.tools))
	for _, t := range c.tools {
		names = append(names, t.Name())
	}
	system, err := SystemPrompt(TemplateData{
		Instructions: c.instructions,
		ToolNames:    names,
		Marker:       FinishMarker,
	})
	if err != nil {
		return nil, err
	}
	return []ragent.Message{
		ragent.NewSystemMessage(system),
		ragent.NewHumanMessage(question),
	}, nil
}
