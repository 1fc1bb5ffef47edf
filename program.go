package ragent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/tmc/langchaingo/llms"
)

// ErrNoChoices is returned when the model responds without any content choice.
var ErrNoChoices = errors.New("ragent: model returned no choices")

// LLMProgram wraps a model call, optional tool dispatch, and output parsing
// behind a single Invoke. It is built once at Agent construction and never
// re-decided per call: tool dispatch is enabled iff tools were supplied.
type LLMProgram struct {
	model       llms.Model
	modelName   string
	promptGen   PromptGenerator
	tools       map[string]Tool
	toolDefs    []llms.Tool
	stop        []string
	parser      OutputParser
	invokeTools bool
	hooks       HookFirer
}

// newLLMProgram builds the program from the Agent's configuration.
func newLLMProgram(
	model llms.Model,
	modelName string,
	promptGen PromptGenerator,
	tools []Tool,
	stop []string,
	parser OutputParser,
	hooks HookFirer,
) *LLMProgram {
	p := &LLMProgram{
		model:       model,
		modelName:   modelName,
		promptGen:   promptGen,
		stop:        stop,
		parser:      parser,
		invokeTools: len(tools) > 0,
		hooks:       hooks,
	}
	if len(tools) > 0 {
		p.tools = make(map[string]Tool, len(tools))
		p.toolDefs = make([]llms.Tool, 0, len(tools))
		for _, t := range tools {
			p.tools[t.Name()] = t
			def := llms.Tool{
				Type: "function",
				Function: &llms.FunctionDefinition{
					Name:        t.Name(),
					Description: t.Description(),
				},
			}
			if params := t.Parameters(); params != nil {
				def.Function.Parameters = params.Raw()
			}
			p.toolDefs = append(p.toolDefs, def)
		}
	}
	return p
}

// Invoke generates the prompt from the log, calls the model, and turns the
// response into new messages. With tools configured and requested by the
// model, the AI message is followed by one tool message per call. With a
// parser configured, the parser decides the output (it may emit AgentFinish).
// Otherwise the response becomes a single AI message.
//
// Model, validation, and tool errors propagate unchanged; Invoke performs no
// retries.
func (p *LLMProgram) Invoke(ctx context.Context, messages []Message, cfg *Config) ([]Message, error) {
	prompt := p.promptGen(messages)

	opts := make([]llms.CallOption, 0, len(cfg.callOptions())+2)
	if len(p.stop) > 0 {
		opts = append(opts, llms.WithStopWords(p.stop))
	}
	if p.invokeTools {
		opts = append(opts, llms.WithTools(p.toolDefs))
	}
	opts = append(opts, cfg.callOptions()...)

	p.hooks.FireBeforeModelCall(ctx, BeforeModelCallEvent{
		Model:  p.modelName,
		Prompt: prompt,
	})

	start := time.Now()
	resp, err := p.model.GenerateContent(ctx, prompt, opts...)
	duration := time.Since(start)

	var info *GenerationInfo
	if resp != nil && err == nil {
		info = newGenerationInfo(resp, duration)
	}
	p.hooks.FireAfterModelCall(ctx, AfterModelCallEvent{
		Model:    p.modelName,
		Prompt:   prompt,
		Info:     info,
		Duration: duration,
		Err:      err,
	})
	if err != nil {
		return nil, err
	}
	if len(resp.Choices) == 0 {
		return nil, ErrNoChoices
	}
	choice := resp.Choices[0]

	if p.invokeTools && len(choice.ToolCalls) > 0 {
		return p.dispatchToolCalls(ctx, choice)
	}
	if p.parser != nil {
		return p.parser.ParseOutput(choice.Content)
	}
	return []Message{NewAIMessage(choice.Content)}, nil
}

// dispatchToolCalls executes each requested tool call in order. The AI message
// is recorded first so the log shows what the model asked for, followed by one
// tool message per call.
func (p *LLMProgram) dispatchToolCalls(ctx context.Context, choice *llms.ContentChoice) ([]Message, error) {
	out := make([]Message, 0, len(choice.ToolCalls)+1)
	out = append(out, NewAIMessage(choice.Content))

	for _, call := range choice.ToolCalls {
		if call.FunctionCall == nil {
			continue
		}
		name := call.FunctionCall.Name
		tool, ok := p.tools[name]
		if !ok {
			return nil, fmt.Errorf("ragent: model requested unknown tool %q", name)
		}

		args := map[string]any{}
		if call.FunctionCall.Arguments != "" {
			if err := json.Unmarshal([]byte(call.FunctionCall.Arguments), &args); err != nil {
				return nil, fmt.Errorf("ragent: tool %q arguments: %w", name, err)
			}
		}
		if params := tool.Parameters(); params != nil {
			if err := params.Validate(args); err != nil {
				return nil, fmt.Errorf("ragent: tool %q: %w", name, err)
			}
		}

		event := &BeforeToolCallEvent{ToolName: name, Args: args}
		p.hooks.FireBeforeToolCall(ctx, event)

		start := time.Now()
		output, err := tool.Call(ctx, event.Args)
		p.hooks.FireAfterToolCall(ctx, AfterToolCallEvent{
			ToolName: name,
			Args:     event.Args,
			Output:   output,
			Duration: time.Since(start),
			Err:      err,
		})
		if err != nil {
			return nil, fmt.Errorf("ragent: tool %q: %w", name, err)
		}
		out = append(out, NewToolMessage(output))
	}
	return out, nil
}
