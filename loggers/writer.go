// Package loggers provides ready-made logging hooks for agent runs.
//
//   - [WriterHook] writes every event as human-readable YAML, useful for
//     development and integration tests
//   - [ZerologHook] emits structured log events through a zerolog.Logger,
//     useful in services
package loggers

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/tmc/langchaingo/llms"
	"gopkg.in/yaml.v3"

	"github.com/jmadeira/ragent"
)

// WriterHook implements all hook interfaces and logs everything that happens
// during a run. Event payloads are logged as YAML with block scalars for easy
// reading. Nothing is truncated - full content is always logged.
type WriterHook struct {
	out io.Writer
}

// Compile-time checks.
var (
	_ ragent.BeforeRunHook       = (*WriterHook)(nil)
	_ ragent.AfterRunHook        = (*WriterHook)(nil)
	_ ragent.BeforeStepHook      = (*WriterHook)(nil)
	_ ragent.AfterStepHook       = (*WriterHook)(nil)
	_ ragent.BeforeModelCallHook = (*WriterHook)(nil)
	_ ragent.AfterModelCallHook  = (*WriterHook)(nil)
	_ ragent.BeforeRetrievalHook = (*WriterHook)(nil)
	_ ragent.AfterRetrievalHook  = (*WriterHook)(nil)
	_ ragent.BeforeToolCallHook  = (*WriterHook)(nil)
	_ ragent.AfterToolCallHook   = (*WriterHook)(nil)
	_ ragent.ErrorHook           = (*WriterHook)(nil)
)

// NewWriterHook creates a WriterHook that writes to stdout.
func NewWriterHook() *WriterHook {
	return &WriterHook{out: os.Stdout}
}

// NewWriterHookWithWriter creates a WriterHook that writes to w.
func NewWriterHookWithWriter(w io.Writer) *WriterHook {
	return &WriterHook{out: w}
}

// logEvent logs an event header with timestamp.
func (h *WriterHook) logEvent(name string) {
	timestamp := time.Now().Format("2006-01-02 15:04:05.000")
	fmt.Fprintf(h.out, "\n>>> [%s]: %s\n", name, timestamp)
}

// log writes a line without any prefix.
func (h *WriterHook) log(format string, args ...any) {
	fmt.Fprintf(h.out, format+"\n", args...)
}

func (h *WriterHook) logYAML(v any) {
	data, err := yaml.Marshal(v)
	if err != nil {
		h.log("(failed to marshal: %v)", err)
		return
	}
	fmt.Fprint(h.out, string(data))
}

// OnBeforeRun logs the start of a run with its initial log.
func (h *WriterHook) OnBeforeRun(
	_ context.Context, event ragent.BeforeRunEvent,
) {
	h.logEvent("BeforeRun")
	h.log("================================================================================")
	h.log("RUN STARTED")
	h.log("================================================================================")
	h.logYAML(map[string]any{
		"run_id":         event.RunID,
		"max_iterations": event.MaxIterations,
		"initial":        messagesYAML(event.Initial),
	})
}

// OnAfterRun logs the end of a run.
func (h *WriterHook) OnAfterRun(
	_ context.Context, event ragent.AfterRunEvent,
) {
	h.logEvent("AfterRun")
	h.log("================================================================================")
	h.log("RUN COMPLETED")
	h.log("================================================================================")
	data := map[string]any{
		"run_id":     event.RunID,
		"iterations": event.Iterations,
		"produced":   event.Produced,
	}
	if event.Err != nil {
		data["error"] = event.Err.Error()
	}
	h.logYAML(data)
}

// OnBeforeStep logs the start of a step.
func (h *WriterHook) OnBeforeStep(
	_ context.Context, event ragent.BeforeStepEvent,
) {
	h.logEvent("BeforeStep")
	h.logYAML(map[string]any{
		"iteration": event.Iteration,
		"log_len":   event.LogLen,
	})
}

// OnAfterStep logs the messages a step produced.
func (h *WriterHook) OnAfterStep(
	_ context.Context, event ragent.AfterStepEvent,
) {
	h.logEvent("AfterStep")
	data := map[string]any{
		"iteration": event.Iteration,
		"duration":  event.Duration.String(),
		"new":       messagesYAML(event.New),
	}
	if event.Err != nil {
		data["error"] = event.Err.Error()
	}
	h.logYAML(data)
}

// OnBeforeModelCall logs the full prompt sent to the model.
func (h *WriterHook) OnBeforeModelCall(
	_ context.Context, event ragent.BeforeModelCallEvent,
) {
	h.logEvent("BeforeModelCall")
	h.logYAML(map[string]any{
		"model":  event.Model,
		"prompt": promptYAML(event.Prompt),
	})
}

// OnAfterModelCall logs the model's response metadata.
func (h *WriterHook) OnAfterModelCall(
	_ context.Context, event ragent.AfterModelCallEvent,
) {
	h.logEvent("AfterModelCall")
	data := map[string]any{
		"model":    event.Model,
		"duration": event.Duration.String(),
	}
	if event.Info != nil {
		data["input_tokens"] = event.Info.InputTokens
		data["output_tokens"] = event.Info.OutputTokens
		data["total_tokens"] = event.Info.TotalTokens
	}
	if event.Err != nil {
		data["error"] = event.Err.Error()
	}
	h.logYAML(data)
}

// OnBeforeRetrieval logs the retrieval query.
func (h *WriterHook) OnBeforeRetrieval(
	_ context.Context, event ragent.BeforeRetrievalEvent,
) {
	h.logEvent("BeforeRetrieval")
	h.logYAML(map[string]any{"query": event.Query})
}

// OnAfterRetrieval logs the retrieval outcome.
func (h *WriterHook) OnAfterRetrieval(
	_ context.Context, event ragent.AfterRetrievalEvent,
) {
	h.logEvent("AfterRetrieval")
	data := map[string]any{
		"query":    event.Query,
		"results":  event.Results,
		"duration": event.Duration.String(),
	}
	if event.Err != nil {
		data["error"] = event.Err.Error()
	}
	h.logYAML(data)
}

// OnBeforeToolCall logs the tool name and arguments.
func (h *WriterHook) OnBeforeToolCall(
	_ context.Context, event *ragent.BeforeToolCallEvent,
) {
	h.logEvent("BeforeToolCall")
	h.logYAML(map[string]any{
		"tool": event.ToolName,
		"args": event.Args,
	})
}

// OnAfterToolCall logs the tool output.
func (h *WriterHook) OnAfterToolCall(
	_ context.Context, event ragent.AfterToolCallEvent,
) {
	h.logEvent("AfterToolCall")
	data := map[string]any{
		"tool":     event.ToolName,
		"output":   event.Output,
		"duration": event.Duration.String(),
	}
	if event.Err != nil {
		data["error"] = event.Err.Error()
	}
	h.logYAML(data)
}

// OnError logs an error event.
func (h *WriterHook) OnError(
	_ context.Context, event ragent.ErrorEvent,
) {
	h.logEvent("Error")
	h.logYAML(map[string]any{
		"iteration": event.Iteration,
		"error":     event.Err.Error(),
	})
}

// messagesYAML converts a message slice to a YAML-friendly representation.
func messagesYAML(messages []ragent.Message) []map[string]any {
	out := make([]map[string]any, 0, len(messages))
	for _, msg := range messages {
		out = append(out, messageYAML(msg))
	}
	return out
}

func messageYAML(msg ragent.Message) map[string]any {
	switch m := msg.(type) {
	case ragent.ChatMessage:
		return map[string]any{
			"type": "chat",
			"role": string(m.Role),
			"text": ragent.TextContent(m),
		}
	case ragent.RetrievalRequest:
		return map[string]any{
			"type":  "retrieval_request",
			"query": m.Query,
		}
	case ragent.RetrievalResponse:
		return map[string]any{
			"type":    "retrieval_response",
			"results": len(m.Results),
		}
	case ragent.AgentFinish:
		return map[string]any{
			"type":          "agent_finish",
			"return_values": m.ReturnValues,
		}
	default:
		return map[string]any{"type": fmt.Sprintf("%T", msg)}
	}
}

func promptYAML(prompt []llms.MessageContent) []map[string]any {
	out := make([]map[string]any, 0, len(prompt))
	for _, mc := range prompt {
		var text string
		for _, part := range mc.Parts {
			if tc, ok := part.(llms.TextContent); ok {
				text += tc.Text
			}
		}
		out = append(out, map[string]any{
			"role": string(mc.Role),
			"text": text,
		})
	}
	return out
}
