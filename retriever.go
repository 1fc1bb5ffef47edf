package ragent

import (
	"context"
	"time"

	"github.com/tmc/langchaingo/schema"
)

// RetrieverAdapter wraps a document-retrieval backend behind a uniform
// request/response interface. The concrete adapter is selected once at Agent
// construction: a LangChainGo retriever if one was supplied, [NoopRetriever]
// otherwise.
type RetrieverAdapter interface {
	// Invoke retrieves documents for the request. Backend errors propagate
	// unchanged; the adapter performs no retries.
	Invoke(ctx context.Context, req RetrievalRequest, cfg *Config) (RetrievalResponse, error)
}

// newRetrieverAdapter selects the adapter for the given retriever handle.
func newRetrieverAdapter(retriever schema.Retriever, hooks HookFirer) RetrieverAdapter {
	if retriever == nil {
		return NoopRetriever{}
	}
	return &langChainRetriever{retriever: retriever, hooks: hooks}
}

// langChainRetriever adapts a LangChainGo [schema.Retriever].
type langChainRetriever struct {
	retriever schema.Retriever
	hooks     HookFirer
}

// Invoke implements RetrieverAdapter.
func (r *langChainRetriever) Invoke(ctx context.Context, req RetrievalRequest, _ *Config) (RetrievalResponse, error) {
	r.hooks.FireBeforeRetrieval(ctx, BeforeRetrievalEvent{Query: req.Query})

	start := time.Now()
	docs, err := r.retriever.GetRelevantDocuments(ctx, req.Query)

	r.hooks.FireAfterRetrieval(ctx, AfterRetrievalEvent{
		Query:    req.Query,
		Results:  len(docs),
		Duration: time.Since(start),
		Err:      err,
	})
	if err != nil {
		return RetrievalResponse{}, err
	}
	return RetrievalResponse{Results: docs}, nil
}

// NoopRetriever is the adapter used when no retriever is configured. It
// returns an empty response for every request, which the prompt generator
// renders as "Found no results for the query.".
type NoopRetriever struct{}

// Invoke implements RetrieverAdapter.
func (NoopRetriever) Invoke(_ context.Context, _ RetrievalRequest, _ *Config) (RetrievalResponse, error) {
	return RetrievalResponse{}, nil
}

// Compile-time checks.
var (
	_ RetrieverAdapter = (*langChainRetriever)(nil)
	_ RetrieverAdapter = NoopRetriever{}
)
