package ragent_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tmc/langchaingo/schema"

	"github.com/jmadeira/ragent"
	"github.com/jmadeira/ragent/internal/tt"
)

func TestAgentStep_TerminalLogs(t *testing.T) {
	tests := []struct {
		name string
		log  []ragent.Message
	}{
		{
			name: "empty log",
			log:  nil,
		},
		{
			name: "ai message last",
			log: []ragent.Message{
				ragent.NewHumanMessage("hi"),
				ragent.NewAIMessage("hello"),
			},
		},
		{
			name: "agent finish last",
			log: []ragent.Message{
				ragent.NewAIMessage("Final Answer: done"),
				ragent.AgentFinish{ReturnValues: map[string]any{"output": "done"}},
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			model := tt.NewMockModel()
			agent := ragent.NewAgent(model)

			out, err := agent.Step(context.Background(), tc.log, nil)

			require.NoError(t, err)
			assert.Nil(t, out)
			assert.Zero(t, model.CallCount(), "terminal step must not call the model")
		})
	}
}

func TestAgentStep_HumanMessageBecomesRetrievalRequest(t *testing.T) {
	model := tt.NewMockModel()
	agent := ragent.NewAgent(model)

	out, err := agent.Step(context.Background(), []ragent.Message{
		ragent.NewSystemMessage("answer from context"),
		ragent.NewHumanMessage("what is the refund policy?"),
	}, nil)

	require.NoError(t, err)
	require.Len(t, out, 1)
	req, ok := out[0].(ragent.RetrievalRequest)
	require.True(t, ok, "expected RetrievalRequest, got %T", out[0])
	assert.Equal(t, "what is the refund policy?", req.Query)
	assert.Zero(t, model.CallCount())
}

func TestAgentStep_RetrievalRequestHitsRetriever(t *testing.T) {
	retriever := tt.NewMockRetriever().AddResults(
		schema.Document{PageContent: "30 day window"},
	)
	agent := ragent.NewAgent(tt.NewMockModel()).WithRetriever(retriever)

	out, err := agent.Step(context.Background(), []ragent.Message{
		ragent.NewHumanMessage("refunds?"),
		ragent.RetrievalRequest{Query: "refunds?"},
	}, nil)

	require.NoError(t, err)
	require.Len(t, out, 1)
	resp, ok := out[0].(ragent.RetrievalResponse)
	require.True(t, ok, "expected RetrievalResponse, got %T", out[0])
	require.Len(t, resp.Results, 1)
	assert.Equal(t, "30 day window", resp.Results[0].PageContent)
	assert.Equal(t, []string{"refunds?"}, retriever.CapturedQueries)
}

func TestAgentStep_NoRetrieverYieldsEmptyResponse(t *testing.T) {
	agent := ragent.NewAgent(tt.NewMockModel())

	out, err := agent.Step(context.Background(), []ragent.Message{
		ragent.RetrievalRequest{Query: "anything"},
	}, nil)

	require.NoError(t, err)
	require.Len(t, out, 1)
	resp := out[0].(ragent.RetrievalResponse)
	assert.Empty(t, resp.Results)
}

func TestAgentStep_RetrievalResponseInvokesModel(t *testing.T) {
	model := tt.NewMockModel().AddResponse("the answer", 10, 5)
	agent := ragent.NewAgent(model)

	out, err := agent.Step(context.Background(), []ragent.Message{
		ragent.NewHumanMessage("refunds?"),
		ragent.RetrievalRequest{Query: "refunds?"},
		ragent.RetrievalResponse{Results: []schema.Document{
			{PageContent: "30 day window"},
		}},
	}, nil)

	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "the answer", ragent.TextContent(out[0]))
	assert.Equal(t, 1, model.CallCount())

	// The model sees the human message plus the rendered context.
	require.Len(t, model.CapturedMessages, 1)
	require.Len(t, model.CapturedMessages[0], 2)
}

func TestAgentStep_SystemMessageInvokesModel(t *testing.T) {
	model := tt.NewMockModel().AddResponse("understood", 1, 1)
	agent := ragent.NewAgent(model)

	out, err := agent.Step(context.Background(), []ragent.Message{
		ragent.NewSystemMessage("you are a helpful assistant"),
	}, nil)

	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, 1, model.CallCount())
}

func TestAgentStep_RetrieverErrorPropagates(t *testing.T) {
	wantErr := errors.New("index offline")
	retriever := tt.NewMockRetriever().AddError(wantErr)
	agent := ragent.NewAgent(tt.NewMockModel()).WithRetriever(retriever)

	out, err := agent.Step(context.Background(), []ragent.Message{
		ragent.RetrievalRequest{Query: "x"},
	}, nil)

	assert.Nil(t, out)
	assert.ErrorIs(t, err, wantErr)
}

func TestAgentStep_FiresStepAndErrorEvents(t *testing.T) {
	recorder := &tt.RecorderFirer{}
	wantErr := errors.New("model down")
	model := tt.NewMockModel().AddError(wantErr)
	agent := ragent.NewAgent(model).WithHooks(recorder)

	_, err := agent.Step(context.Background(), []ragent.Message{
		ragent.NewSystemMessage("x"),
	}, nil)

	assert.ErrorIs(t, err, wantErr)
	counts := recorder.EventTypeCounts()
	assert.Equal(t, 1, counts["BeforeStepEvent"])
	assert.Equal(t, 1, counts["AfterStepEvent"])
	assert.Equal(t, 1, counts["ErrorEvent"])
}

func TestAgentStep_DoesNotMutateInputLog(t *testing.T) {
	log := []ragent.Message{
		ragent.NewSystemMessage("rules"),
		ragent.NewHumanMessage("hi"),
	}
	agent := ragent.NewAgent(tt.NewMockModel())

	_, err := agent.Step(context.Background(), log, nil)

	require.NoError(t, err)
	require.Len(t, log, 2)
	assert.Equal(t, "rules", ragent.TextContent(log[0]))
	assert.Equal(t, "hi", ragent.TextContent(log[1]))
}
