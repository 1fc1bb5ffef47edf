package ragent

import (
	"context"
	"sync"
	"time"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/schema"
)

// Agent is a retrieval-augmented chat agent: every human message triggers a
// document lookup, the retrieved context is folded into the prompt, and the
// model produces the reply. It holds its collaborators (LLM program, retriever
// adapter, memory manager) and carries no mutable state across runs, so one
// Agent can serve sequential runs safely. Concurrent runs are only safe if the
// underlying model and retriever are.
//
// Example:
//
//	llm, _ := openai.New()
//	agent := ragent.NewAgent(llm).
//	    WithModelName(ragent.ModelOpenAIGPT4oMini).
//	    WithRetriever(myRetriever).
//	    WithMemory(memory.NewSlidingWindow(50))
//
//	stream := agent.Run(ctx, []ragent.Message{ragent.NewHumanMessage("...")})
//	for stream.Next() {
//	    fmt.Println(ragent.TextContent(stream.Message()))
//	}
//	if err := stream.Err(); err != nil {
//	    // handle err
//	}
type Agent struct {
	model     llms.Model
	modelName string
	promptGen PromptGenerator
	tools     []Tool
	stop      []string
	parser    OutputParser
	retriever schema.Retriever
	memory    MemoryManager
	hooks     HookFirer

	// Collaborators, built once on first use and immutable afterwards.
	buildOnce sync.Once
	program   *LLMProgram
	adapter   RetrieverAdapter
}

// NewAgent creates an Agent with the given model and default settings.
// Defaults:
//   - PromptGenerator: [ChatPrompt]
//   - Retriever: none ([NoopRetriever] is substituted)
//   - Memory: [NoopMemory]
//
// Configure with the WithX methods before the first Step or Run call;
// afterwards the configuration is frozen.
func NewAgent(model llms.Model) *Agent {
	return &Agent{
		model:     model,
		promptGen: ChatPrompt,
		memory:    NoopMemory{},
		hooks:     noopFirer{},
	}
}

// WithModelName sets the model identifier used in hook events.
func (a *Agent) WithModelName(name string) *Agent {
	a.modelName = name
	return a
}

// WithPromptGenerator replaces the default prompt generator.
func (a *Agent) WithPromptGenerator(gen PromptGenerator) *Agent {
	a.promptGen = gen
	return a
}

// WithTools sets the tools available to the LLM program. Supplying a non-empty
// list enables tool dispatch.
func (a *Agent) WithTools(tools ...Tool) *Agent {
	a.tools = tools
	return a
}

// WithStopWords sets stop sequences passed to every model call.
func (a *Agent) WithStopWords(stop ...string) *Agent {
	a.stop = stop
	return a
}

// WithParser sets the output parser applied to model responses.
func (a *Agent) WithParser(parser OutputParser) *Agent {
	a.parser = parser
	return a
}

// WithRetriever sets the document retriever. Without one, retrieval requests
// resolve to empty responses.
func (a *Agent) WithRetriever(retriever schema.Retriever) *Agent {
	a.retriever = retriever
	return a
}

// WithMemory sets the memory manager the run loop applies every round.
func (a *Agent) WithMemory(memory MemoryManager) *Agent {
	a.memory = memory
	return a
}

// WithHooks sets the hook firer (normally a hooks.Registry).
func (a *Agent) WithHooks(hooks HookFirer) *Agent {
	a.hooks = hooks
	return a
}

// ensureBuilt constructs the LLM program and retriever adapter exactly once.
func (a *Agent) ensureBuilt() {
	a.buildOnce.Do(func() {
		a.program = newLLMProgram(
			a.model, a.modelName, a.promptGen,
			a.tools, a.stop, a.parser, a.hooks,
		)
		a.adapter = newRetrieverAdapter(a.retriever, a.hooks)
	})
}

// Program returns the agent's LLM program, building it if necessary.
func (a *Agent) Program() *LLMProgram {
	a.ensureBuilt()
	return a.program
}

// Retriever returns the agent's retriever adapter, building it if necessary.
func (a *Agent) Retriever() RetrieverAdapter {
	a.ensureBuilt()
	return a.adapter
}

// Step performs a single transition: it inspects the last message on the log
// and returns the new messages one dispatch produces (nil when the log is
// terminal for this step).
//
// Dispatch on the last message:
//   - empty log: nil (nothing to do)
//   - AI chat message: nil (wait for external input)
//   - AgentFinish: nil (terminal)
//   - human chat message: one RetrievalRequest with the message text as query
//   - RetrievalRequest: one RetrievalResponse from the retriever adapter
//   - anything else (RetrievalResponse, system/tool messages): whatever the
//     LLM program returns for the full log
//
// Collaborator errors propagate unchanged; Step performs no retries and no
// error translation.
func (a *Agent) Step(ctx context.Context, messages []Message, cfg *Config) ([]Message, error) {
	a.hooks.FireBeforeStep(ctx, BeforeStepEvent{LogLen: len(messages)})

	start := time.Now()
	out, err := a.step(ctx, messages, cfg)

	a.hooks.FireAfterStep(ctx, AfterStepEvent{
		New:      out,
		Duration: time.Since(start),
		Err:      err,
	})
	if err != nil {
		a.hooks.FireError(ctx, ErrorEvent{Err: err})
	}
	return out, err
}

// step is the dispatch shared by Step and Run.
func (a *Agent) step(ctx context.Context, messages []Message, cfg *Config) ([]Message, error) {
	a.ensureBuilt()

	if len(messages) == 0 {
		return nil, nil
	}
	switch last := messages[len(messages)-1].(type) {
	case ChatMessage:
		switch last.Role {
		case llms.ChatMessageTypeAI:
			return nil, nil
		case llms.ChatMessageTypeHuman:
			return []Message{RetrievalRequest{Query: TextContent(last)}}, nil
		default:
			return a.program.Invoke(ctx, messages, cfg)
		}
	case AgentFinish:
		return nil, nil
	case RetrievalRequest:
		resp, err := a.adapter.Invoke(ctx, last, cfg)
		if err != nil {
			return nil, err
		}
		return []Message{resp}, nil
	default:
		return a.program.Invoke(ctx, messages, cfg)
	}
}
