// Package ragent implements a retrieval-augmented chat agent loop on top of
// LangChainGo.
//
// The agent works over a log of message-like events. Each [Agent.Step]
// dispatches on the last event of the log: a human message becomes a retrieval
// request, a retrieval request is resolved against the configured retriever,
// and anything else is handed to the LLM program, which folds retrieved
// context into the prompt and calls the model. [Agent.Run] repeats steps until
// one produces nothing or the iteration cap is reached, yielding new messages
// lazily through a pull-based [RunStream].
//
// # Quick Start
//
//	llm, _ := openai.New(openai.WithToken(apiKey))
//
//	agent := ragent.NewAgent(llm).
//	    WithModelName(ragent.ModelOpenAIGPT4oMini).
//	    WithRetriever(myRetriever).
//	    WithMemory(memory.NewSlidingWindow(50))
//
//	initial := []ragent.Message{
//	    ragent.NewSystemMessage("Answer using only the provided context."),
//	    ragent.NewHumanMessage("What is the refund policy?"),
//	}
//	stream := agent.Run(ctx, initial)
//	for stream.Next() {
//	    if text := ragent.TextContent(stream.Message()); text != "" {
//	        fmt.Println(text)
//	    }
//	}
//	if err := stream.Err(); err != nil {
//	    log.Fatal(err)
//	}
//
// # Collaborators
//
// The agent owns three collaborators, all injected at construction:
//
//   - [LLMProgram]: wraps the model call, optional tool dispatch, and output
//     parsing. Built once from the model, prompt generator, tools, stop words,
//     and parser.
//   - [RetrieverAdapter]: wraps a LangChainGo retriever; a no-op adapter is
//     substituted when none is supplied.
//   - [MemoryManager]: normalizes the log before every step. Defaults to
//     [NoopMemory]; the memory package provides sliding-window and
//     token-budget implementations.
//
// # Hooks
//
// Execution can be observed through hook events (model calls with normalized
// token usage, retrievals, tool calls, steps, runs). Implement the hook
// interfaces you care about and register with a hooks.Registry:
//
//	registry := hooks.NewRegistry()
//	registry.Register(&MyLoggingHook{})
//	agent := ragent.NewAgent(llm).WithHooks(registry)
//
// The loggers package provides ready-made YAML and zerolog hooks, and
// hooks.Stats aggregates token and call counters across a run.
package ragent
