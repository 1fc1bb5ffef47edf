// Package tt provides shared test doubles and assertion helpers.
package tt

import (
	"context"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/schema"

	"github.com/jmadeira/ragent"
)

// -----------------------------------------------------------------------------
// MockModel - implements llms.Model
// -----------------------------------------------------------------------------

// MockModel is a configurable mock that implements llms.Model. Queue
// responses and errors in call order; calls beyond the queue return a
// default single-choice response.
type MockModel struct {
	responses []*llms.ContentResponse
	errors    []error
	callCount int

	// CapturedMessages stores the messages passed to each GenerateContent
	// call. Populated automatically on every call.
	CapturedMessages [][]llms.MessageContent

	// CapturedOptions stores the resolved call options of each
	// GenerateContent call.
	CapturedOptions []llms.CallOptions
}

// Compile-time check.
var _ llms.Model = (*MockModel)(nil)

// NewMockModel creates a new MockModel.
func NewMockModel() *MockModel {
	return &MockModel{}
}

// AddResponse queues a single-choice response with the given content and
// token counts.
func (m *MockModel) AddResponse(content string, inputTokens, outputTokens int) *MockModel {
	m.responses = append(m.responses, &llms.ContentResponse{
		Choices: []*llms.ContentChoice{{
			Content: content,
			GenerationInfo: map[string]any{
				"PromptTokens":     inputTokens,
				"CompletionTokens": outputTokens,
				"TotalTokens":      inputTokens + outputTokens,
			},
		}},
	})
	return m
}

// AddToolCallResponse queues a response whose first choice requests a tool
// call with the given name and raw JSON arguments.
func (m *MockModel) AddToolCallResponse(name, arguments string) *MockModel {
	m.responses = append(m.responses, &llms.ContentResponse{
		Choices: []*llms.ContentChoice{{
			ToolCalls: []llms.ToolCall{{
				FunctionCall: &llms.FunctionCall{
					Name:      name,
					Arguments: arguments,
				},
			}},
		}},
	})
	return m
}

// AddRawResponse queues a raw ContentResponse. Use this when you need full
// control over the response structure (e.g. empty Choices slice).
func (m *MockModel) AddRawResponse(resp *llms.ContentResponse) *MockModel {
	m.responses = append(m.responses, resp)
	return m
}

// AddError queues an error for the next call.
func (m *MockModel) AddError(err error) *MockModel {
	// Extend responses slice if needed to match errors length
	for len(m.responses) <= len(m.errors) {
		m.responses = append(m.responses, nil)
	}
	m.errors = append(m.errors, err)
	return m
}

// CallCount returns the number of times GenerateContent has been called.
func (m *MockModel) CallCount() int {
	return m.callCount
}

// GenerateContent implements llms.Model.
func (m *MockModel) GenerateContent(
	_ context.Context,
	messages []llms.MessageContent,
	options ...llms.CallOption,
) (*llms.ContentResponse, error) {
	idx := m.callCount
	m.callCount++

	m.CapturedMessages = append(m.CapturedMessages, messages)

	var resolved llms.CallOptions
	for _, opt := range options {
		opt(&resolved)
	}
	m.CapturedOptions = append(m.CapturedOptions, resolved)

	if idx < len(m.errors) && m.errors[idx] != nil {
		return nil, m.errors[idx]
	}
	if idx < len(m.responses) && m.responses[idx] != nil {
		return m.responses[idx], nil
	}

	return &llms.ContentResponse{
		Choices: []*llms.ContentChoice{{Content: "done"}},
	}, nil
}

// Call implements the deprecated llms.Model text-completion method.
func (m *MockModel) Call(
	ctx context.Context,
	prompt string,
	options ...llms.CallOption,
) (string, error) {
	resp, err := m.GenerateContent(
		ctx,
		[]llms.MessageContent{llms.TextParts(llms.ChatMessageTypeHuman, prompt)},
		options...,
	)
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", nil
	}
	return resp.Choices[0].Content, nil
}

// -----------------------------------------------------------------------------
// MockRetriever - implements schema.Retriever
// -----------------------------------------------------------------------------

// MockRetriever is a configurable mock that implements schema.Retriever.
type MockRetriever struct {
	results [][]schema.Document
	errors  []error

	// CapturedQueries stores the query of each call.
	CapturedQueries []string
}

// Compile-time check.
var _ schema.Retriever = (*MockRetriever)(nil)

// NewMockRetriever creates a new MockRetriever.
func NewMockRetriever() *MockRetriever {
	return &MockRetriever{}
}

// AddResults queues a result set for the next call. Calls beyond the queue
// return no documents.
func (m *MockRetriever) AddResults(docs ...schema.Document) *MockRetriever {
	m.results = append(m.results, docs)
	return m
}

// AddError queues an error for the next call.
func (m *MockRetriever) AddError(err error) *MockRetriever {
	for len(m.results) <= len(m.errors) {
		m.results = append(m.results, nil)
	}
	m.errors = append(m.errors, err)
	return m
}

// GetRelevantDocuments implements schema.Retriever.
func (m *MockRetriever) GetRelevantDocuments(
	_ context.Context,
	query string,
) ([]schema.Document, error) {
	idx := len(m.CapturedQueries)
	m.CapturedQueries = append(m.CapturedQueries, query)

	if idx < len(m.errors) && m.errors[idx] != nil {
		return nil, m.errors[idx]
	}
	if idx < len(m.results) {
		return m.results[idx], nil
	}
	return nil, nil
}

// -----------------------------------------------------------------------------
// MockMemory - implements ragent.MemoryManager
// -----------------------------------------------------------------------------

// MockMemory records every log it processes and optionally transforms it.
type MockMemory struct {
	// Transform replaces the processed log when set; otherwise the log
	// passes through unchanged.
	Transform func(messages []ragent.Message) []ragent.Message

	// CapturedLogs stores the input of each Process call.
	CapturedLogs [][]ragent.Message
}

// Compile-time check.
var _ ragent.MemoryManager = (*MockMemory)(nil)

// Process implements ragent.MemoryManager.
func (m *MockMemory) Process(messages []ragent.Message) []ragent.Message {
	m.CapturedLogs = append(m.CapturedLogs, messages)
	if m.Transform != nil {
		return m.Transform(messages)
	}
	return messages
}

// -----------------------------------------------------------------------------
// RecorderFirer - implements ragent.HookFirer
// -----------------------------------------------------------------------------

// RecorderFirer records every fired event in order. BeforeToolCall events
// are recorded by value after any mutation a real hook could have applied.
type RecorderFirer struct {
	Events []ragent.HookEvent
}

// Compile-time check.
var _ ragent.HookFirer = (*RecorderFirer)(nil)

func (r *RecorderFirer) FireBeforeRun(_ context.Context, e ragent.BeforeRunEvent) {
	r.Events = append(r.Events, e)
}

func (r *RecorderFirer) FireAfterRun(_ context.Context, e ragent.AfterRunEvent) {
	r.Events = append(r.Events, e)
}

func (r *RecorderFirer) FireBeforeStep(_ context.Context, e ragent.BeforeStepEvent) {
	r.Events = append(r.Events, e)
}

func (r *RecorderFirer) FireAfterStep(_ context.Context, e ragent.AfterStepEvent) {
	r.Events = append(r.Events, e)
}

func (r *RecorderFirer) FireBeforeModelCall(_ context.Context, e ragent.BeforeModelCallEvent) {
	r.Events = append(r.Events, e)
}

func (r *RecorderFirer) FireAfterModelCall(_ context.Context, e ragent.AfterModelCallEvent) {
	r.Events = append(r.Events, e)
}

func (r *RecorderFirer) FireBeforeRetrieval(_ context.Context, e ragent.BeforeRetrievalEvent) {
	r.Events = append(r.Events, e)
}

func (r *RecorderFirer) FireAfterRetrieval(_ context.Context, e ragent.AfterRetrievalEvent) {
	r.Events = append(r.Events, e)
}

func (r *RecorderFirer) FireBeforeToolCall(_ context.Context, e *ragent.BeforeToolCallEvent) {
	r.Events = append(r.Events, *e)
}

func (r *RecorderFirer) FireAfterToolCall(_ context.Context, e ragent.AfterToolCallEvent) {
	r.Events = append(r.Events, e)
}

func (r *RecorderFirer) FireError(_ context.Context, e ragent.ErrorEvent) {
	r.Events = append(r.Events, e)
}

// EventTypeCounts counts recorded events by type name.
func (r *RecorderFirer) EventTypeCounts() map[string]int {
	counts := make(map[string]int)
	for _, event := range r.Events {
		switch event.(type) {
		case ragent.BeforeRunEvent:
			counts["BeforeRunEvent"]++
		case ragent.AfterRunEvent:
			counts["AfterRunEvent"]++
		case ragent.BeforeStepEvent:
			counts["BeforeStepEvent"]++
		case ragent.AfterStepEvent:
			counts["AfterStepEvent"]++
		case ragent.BeforeModelCallEvent:
			counts["BeforeModelCallEvent"]++
		case ragent.AfterModelCallEvent:
			counts["AfterModelCallEvent"]++
		case ragent.BeforeRetrievalEvent:
			counts["BeforeRetrievalEvent"]++
		case ragent.AfterRetrievalEvent:
			counts["AfterRetrievalEvent"]++
		case ragent.BeforeToolCallEvent:
			counts["BeforeToolCallEvent"]++
		case ragent.AfterToolCallEvent:
			counts["AfterToolCallEvent"]++
		case ragent.ErrorEvent:
			counts["ErrorEvent"]++
		}
	}
	return counts
}
