package loggers

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jmadeira/ragent"
)

func TestWriterHook_LogsRunLifecycle(t *testing.T) {
	var buf bytes.Buffer
	h := NewWriterHookWithWriter(&buf)
	ctx := context.Background()

	h.OnBeforeRun(ctx, ragent.BeforeRunEvent{
		RunID:         "run-1",
		MaxIterations: 100,
		Initial: []ragent.Message{
			ragent.NewHumanMessage("What is the refund policy?"),
		},
	})
	h.OnAfterRun(ctx, ragent.AfterRunEvent{
		RunID:      "run-1",
		Iterations: 3,
		Produced:   4,
	})

	out := buf.String()
	assert.Contains(t, out, ">>> [BeforeRun]")
	assert.Contains(t, out, "RUN STARTED")
	assert.Contains(t, out, "run-1")
	assert.Contains(t, out, "What is the refund policy?")
	assert.Contains(t, out, ">>> [AfterRun]")
	assert.Contains(t, out, "RUN COMPLETED")
	assert.Contains(t, out, "iterations: 3")
	assert.Contains(t, out, "produced: 4")
}

func TestWriterHook_LogsModelCallError(t *testing.T) {
	var buf bytes.Buffer
	h := NewWriterHookWithWriter(&buf)

	h.OnAfterModelCall(context.Background(), ragent.AfterModelCallEvent{
		Model:    "gpt-4o-mini",
		Duration: time.Second,
		Err:      errors.New("rate limited"),
	})

	out := buf.String()
	assert.Contains(t, out, ">>> [AfterModelCall]")
	assert.Contains(t, out, "gpt-4o-mini")
	assert.Contains(t, out, "rate limited")
}

func TestWriterHook_LogsToolCallArgs(t *testing.T) {
	var buf bytes.Buffer
	h := NewWriterHookWithWriter(&buf)

	event := ragent.BeforeToolCallEvent{
		ToolName: "search_docs",
		Args:     map[string]any{"query": "refunds"},
	}
	h.OnBeforeToolCall(context.Background(), &event)

	out := buf.String()
	assert.Contains(t, out, "search_docs")
	assert.Contains(t, out, "query: refunds")
}

func TestWriterHook_LogsMessageVariants(t *testing.T) {
	var buf bytes.Buffer
	h := NewWriterHookWithWriter(&buf)

	h.OnAfterStep(context.Background(), ragent.AfterStepEvent{
		Iteration: 1,
		New: []ragent.Message{
			ragent.RetrievalRequest{Query: "refunds"},
			ragent.RetrievalResponse{},
			ragent.AgentFinish{ReturnValues: map[string]any{"output": "done"}},
		},
	})

	out := buf.String()
	assert.Contains(t, out, "retrieval_request")
	assert.Contains(t, out, "retrieval_response")
	assert.Contains(t, out, "agent_finish")
}
