// Package knowledgebase provides a small help-center corpus and a keyword
// retriever for integration testing the agent loop without an external
// vector store.
package knowledgebase

import (
	"context"
	"sort"
	"strings"

	"github.com/tmc/langchaingo/schema"
)

// -----------------------------------------------------------------------------
// Corpus
// -----------------------------------------------------------------------------

// Articles is the fixture corpus: help-center articles for a fictional
// online store.
var Articles = []schema.Document{
	{
		PageContent: "Customers may return any item within 30 days of " +
			"delivery for a full refund. Items must be unused and in " +
			"their original packaging. Refunds are issued to the " +
			"original payment method within 5 business days of us " +
			"receiving the return.",
		Metadata: map[string]any{
			"title":  "Refund Policy",
			"source": "kb://policies/refunds",
		},
	},
	{
		PageContent: "Standard shipping takes 3-5 business days within " +
			"the continental US. Express shipping (1-2 business days) " +
			"is available for an additional fee. Orders over $50 ship " +
			"free with standard shipping.",
		Metadata: map[string]any{
			"title":  "Shipping Options",
			"source": "kb://policies/shipping",
		},
	},
	{
		PageContent: "To reset your password, click 'Forgot password' on " +
			"the sign-in page. We will email you a reset link valid for " +
			"24 hours. If the email does not arrive, check your spam " +
			"folder or contact support.",
		Metadata: map[string]any{
			"title":       "Password Reset",
			"description": "Recovering access to your account",
			"source":      "kb://account/password-reset",
		},
	},
	{
		PageContent: "All electronics carry a one-year manufacturer " +
			"warranty covering defects in materials and workmanship. " +
			"The warranty does not cover accidental damage or normal " +
			"wear. Extended warranties can be purchased at checkout.",
		Metadata: map[string]any{
			"title":  "Warranty Coverage",
			"source": "kb://policies/warranty",
		},
	},
	{
		PageContent: "Orders can be cancelled free of charge until they " +
			"enter the 'shipped' state. Once shipped, use the return " +
			"process instead. Cancelled orders are refunded in full " +
			"immediately.",
		Metadata: map[string]any{
			"title":  "Order Cancellation",
			"source": "kb://orders/cancellation",
		},
	},
}

// -----------------------------------------------------------------------------
// KeywordRetriever
// -----------------------------------------------------------------------------

// KeywordRetriever is a deterministic schema.Retriever over an in-memory
// corpus. Documents are scored by the number of query terms they contain;
// documents with no matching term are omitted.
type KeywordRetriever struct {
	docs []schema.Document
	topK int
}

// Compile-time check.
var _ schema.Retriever = (*KeywordRetriever)(nil)

// NewKeywordRetriever creates a KeywordRetriever returning at most topK
// documents per query.
func NewKeywordRetriever(docs []schema.Document, topK int) *KeywordRetriever {
	return &KeywordRetriever{docs: docs, topK: topK}
}

// GetRelevantDocuments implements schema.Retriever.
func (r *KeywordRetriever) GetRelevantDocuments(
	_ context.Context,
	query string,
) ([]schema.Document, error) {
	terms := tokenize(query)
	if len(terms) == 0 {
		return nil, nil
	}

	type scored struct {
		doc   schema.Document
		score int
		order int
	}
	var matches []scored
	for i, doc := range r.docs {
		text := strings.ToLower(doc.PageContent)
		if title, ok := doc.Metadata["title"].(string); ok {
			text += " " + strings.ToLower(title)
		}
		score := 0
		for _, term := range terms {
			if strings.Contains(text, term) {
				score++
			}
		}
		if score > 0 {
			matches = append(matches, scored{doc: doc, score: score, order: i})
		}
	}

	// Highest score first; corpus order breaks ties so results are stable.
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].score > matches[j].score
	})
	if r.topK > 0 && len(matches) > r.topK {
		matches = matches[:r.topK]
	}

	out := make([]schema.Document, 0, len(matches))
	for _, m := range matches {
		out = append(out, m.doc)
	}
	return out, nil
}

// tokenize lowercases and splits a query into terms, dropping short
// stopword-like tokens.
func tokenize(query string) []string {
	fields := strings.FieldsFunc(strings.ToLower(query), func(r rune) bool {
		return !('a' <= r && r <= 'z') && !('0' <= r && r <= '9')
	})
	var terms []string
	for _, f := range fields {
		if len(f) >= 3 {
			terms = append(terms, f)
		}
	}
	return terms
}
