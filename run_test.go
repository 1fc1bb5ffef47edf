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

func TestRun_FullRetrievalRoundTrip(t *testing.T) {
	model := tt.NewMockModel().AddResponse("The refund window is 30 days.", 10, 5)
	retriever := tt.NewMockRetriever().AddResults(
		schema.Document{PageContent: "Refunds are accepted within 30 days."},
	)
	agent := ragent.NewAgent(model).WithRetriever(retriever)

	initial := []ragent.Message{
		ragent.NewSystemMessage("Answer using only the provided context."),
		ragent.NewHumanMessage("What is the refund policy?"),
	}
	out, err := agent.Run(context.Background(), initial).Collect()

	require.NoError(t, err)
	require.Len(t, out, 3)

	req := out[0].(ragent.RetrievalRequest)
	assert.Equal(t, "What is the refund policy?", req.Query)

	resp := out[1].(ragent.RetrievalResponse)
	require.Len(t, resp.Results, 1)

	assert.Equal(t, "The refund window is 30 days.", ragent.TextContent(out[2]))

	// The run ended because the AI message made the next step empty.
	assert.Equal(t, 1, model.CallCount())
	assert.Equal(t, []string{"What is the refund policy?"}, retriever.CapturedQueries)
}

func TestRun_NothingExecutesBeforeNext(t *testing.T) {
	model := tt.NewMockModel()
	retriever := tt.NewMockRetriever()
	agent := ragent.NewAgent(model).WithRetriever(retriever)

	stream := agent.Run(context.Background(), []ragent.Message{
		ragent.NewHumanMessage("hi"),
	})

	assert.Zero(t, model.CallCount())
	assert.Empty(t, retriever.CapturedQueries)
	assert.Zero(t, stream.Iterations())

	// The first pull executes exactly one round.
	require.True(t, stream.Next())
	assert.Equal(t, 1, stream.Iterations())
	assert.Empty(t, retriever.CapturedQueries, "retrieval runs in round two, not round one")
}

func TestRun_EmptyInitialLogTerminatesImmediately(t *testing.T) {
	agent := ragent.NewAgent(tt.NewMockModel())

	stream := agent.Run(context.Background(), nil)

	assert.False(t, stream.Next())
	assert.NoError(t, stream.Err())
	assert.Equal(t, 1, stream.Iterations())
}

func TestRun_IterationCapBoundsTheLoop(t *testing.T) {
	// A parser that always emits a system message keeps the loop going
	// forever; the cap must stop it silently.
	model := tt.NewMockModel()
	agent := ragent.NewAgent(model).
		WithParser(ragent.OutputParserFunc(func(string) ([]ragent.Message, error) {
			return []ragent.Message{ragent.NewSystemMessage("again")}, nil
		}))

	stream := agent.Run(
		context.Background(),
		[]ragent.Message{ragent.NewSystemMessage("go")},
		ragent.WithMaxIterations(3),
	)
	out, err := stream.Collect()

	require.NoError(t, err, "hitting the cap is not an error")
	assert.Len(t, out, 3)
	assert.Equal(t, 3, stream.Iterations())
	assert.Equal(t, 3, model.CallCount())
}

func TestRun_MemoryProcessedEveryRound(t *testing.T) {
	memory := &tt.MockMemory{}
	model := tt.NewMockModel().AddResponse("answer", 1, 1)
	agent := ragent.NewAgent(model).WithMemory(memory)

	initial := []ragent.Message{ragent.NewHumanMessage("hi")}
	_, err := agent.Run(context.Background(), initial).Collect()

	require.NoError(t, err)
	// Rounds: request, response, model answer, terminal AI check.
	require.Len(t, memory.CapturedLogs, 4)
	assert.Len(t, memory.CapturedLogs[0], 1)
	assert.Len(t, memory.CapturedLogs[1], 2)
	assert.Len(t, memory.CapturedLogs[2], 3)
	assert.Len(t, memory.CapturedLogs[3], 4)
}

func TestRun_MemoryTransformReplacesLog(t *testing.T) {
	// Memory that drops everything makes the very first step empty.
	memory := &tt.MockMemory{
		Transform: func([]ragent.Message) []ragent.Message { return nil },
	}
	agent := ragent.NewAgent(tt.NewMockModel()).WithMemory(memory)

	out, err := agent.Run(context.Background(), []ragent.Message{
		ragent.NewHumanMessage("hi"),
	}).Collect()

	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestRun_ErrorEndsStream(t *testing.T) {
	wantErr := errors.New("index offline")
	retriever := tt.NewMockRetriever().AddError(wantErr)
	agent := ragent.NewAgent(tt.NewMockModel()).WithRetriever(retriever)

	stream := agent.Run(context.Background(), []ragent.Message{
		ragent.NewHumanMessage("hi"),
	})

	// Round one produces the retrieval request.
	require.True(t, stream.Next())
	_, ok := stream.Message().(ragent.RetrievalRequest)
	assert.True(t, ok)

	// Round two fails in the retriever.
	assert.False(t, stream.Next())
	assert.ErrorIs(t, stream.Err(), wantErr)

	// The stream stays terminated.
	assert.False(t, stream.Next())
	assert.ErrorIs(t, stream.Err(), wantErr)
}

func TestRun_ContextCancellationSurfacesAsError(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	agent := ragent.NewAgent(tt.NewMockModel())

	stream := agent.Run(ctx, []ragent.Message{
		ragent.NewHumanMessage("hi"),
	})

	require.True(t, stream.Next())
	cancel()
	assert.False(t, stream.Next())
	assert.ErrorIs(t, stream.Err(), context.Canceled)
}

func TestRun_AgentFinishTerminates(t *testing.T) {
	model := tt.NewMockModel().AddResponse("Final Answer: done", 1, 1)
	agent := ragent.NewAgent(model).
		WithParser(ragent.NewFinishParser("Final Answer:"))

	out, err := agent.Run(context.Background(), []ragent.Message{
		ragent.NewSystemMessage("x"),
	}).Collect()

	require.NoError(t, err)
	require.Len(t, out, 2)
	finish, ok := out[1].(ragent.AgentFinish)
	require.True(t, ok)
	assert.Equal(t, "done", finish.ReturnValues["output"])
	assert.Equal(t, 1, model.CallCount(), "finish must stop the loop without another model call")
}

func TestRun_FiresRunLifecycleEvents(t *testing.T) {
	recorder := &tt.RecorderFirer{}
	model := tt.NewMockModel().AddResponse("answer", 1, 1)
	agent := ragent.NewAgent(model).WithHooks(recorder)

	stream := agent.Run(context.Background(), []ragent.Message{
		ragent.NewHumanMessage("hi"),
	})
	_, err := stream.Collect()
	require.NoError(t, err)

	counts := recorder.EventTypeCounts()
	assert.Equal(t, 1, counts["BeforeRunEvent"])
	assert.Equal(t, 1, counts["AfterRunEvent"])
	assert.Equal(t, 4, counts["BeforeStepEvent"])
	assert.Equal(t, 4, counts["AfterStepEvent"])

	before := recorder.Events[0].(ragent.BeforeRunEvent)
	assert.NotEmpty(t, before.RunID)
	assert.Equal(t, before.RunID, stream.RunID())

	last := recorder.Events[len(recorder.Events)-1].(ragent.AfterRunEvent)
	assert.Equal(t, before.RunID, last.RunID)
	assert.Equal(t, 4, last.Iterations)
	assert.Equal(t, 3, last.Produced)
}

func TestRun_InitialSliceNotMutated(t *testing.T) {
	model := tt.NewMockModel().AddResponse("answer", 1, 1)
	agent := ragent.NewAgent(model)

	initial := make([]ragent.Message, 1, 8)
	initial[0] = ragent.NewHumanMessage("hi")

	_, err := agent.Run(context.Background(), initial).Collect()

	require.NoError(t, err)
	require.Len(t, initial, 1)
	assert.Equal(t, "hi", ragent.TextContent(initial[0]))
}

func TestRun_BatchAppendedOnlyAfterFullYield(t *testing.T) {
	// A parser emitting two messages per round: the log must not grow
	// until both are pulled.
	memory := &tt.MockMemory{}
	model := tt.NewMockModel()
	agent := ragent.NewAgent(model).
		WithMemory(memory).
		WithParser(ragent.OutputParserFunc(func(string) ([]ragent.Message, error) {
			return []ragent.Message{
				ragent.NewSystemMessage("a"),
				ragent.NewSystemMessage("b"),
			}, nil
		}))

	stream := agent.Run(
		context.Background(),
		[]ragent.Message{ragent.NewSystemMessage("go")},
		ragent.WithMaxIterations(2),
	)

	require.True(t, stream.Next()) // round 1, message "a"
	require.True(t, stream.Next()) // message "b", still round 1
	assert.Equal(t, 1, stream.Iterations())

	require.True(t, stream.Next()) // round 2 commits the batch first
	require.Len(t, memory.CapturedLogs, 2)
	assert.Len(t, memory.CapturedLogs[0], 1)
	assert.Len(t, memory.CapturedLogs[1], 3)
}
