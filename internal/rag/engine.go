package rag

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_stores.go -package=mocks github.com/barros13/chatbot/internal/rag DocumentStore,PDFTextStore,Generator

import (
	"context"
	"fmt"
	"strings"

	"github.com/barros13/chatbot/internal/contextutil"
	"github.com/barros13/chatbot/internal/metrics"
)

// contextSearchThreshold gates the second retrieval tier: when the priority
// tier already produced this many distinct candidates, the softer full-text
// pass is skipped.
const contextSearchThreshold = 15

// Engine answers a question against the document corpus by extracting the
// search intent, retrieving and enriching candidate documents and having the
// model synthesize the final answer with citations.
type Engine interface {
	Answer(ctx context.Context, question string) (Answer, error)
}

type engine struct {
	docs    DocumentStore
	pdfs    PDFTextStore
	llm     Generator
	baseURL string
}

// NewEngine creates an Engine bound to the given stores and model client.
// Stores are expected to be request-scoped; the engine holds no state of its
// own between calls.
func NewEngine(docs DocumentStore, pdfs PDFTextStore, llm Generator, baseURL string) Engine {
	return &engine{
		docs:    docs,
		pdfs:    pdfs,
		llm:     llm,
		baseURL: baseURL,
	}
}

// Answer runs the pipeline stages strictly in sequence: intent extraction,
// tiered retrieval, enrichment, synthesis. Database and synthesis failures
// are fatal for the request; intent failures degrade to a verbatim search.
func (e *engine) Answer(ctx context.Context, question string) (Answer, error) {
	logger := contextutil.LoggerFromContext(ctx)

	intentResult := extractIntent(ctx, e.llm, question)
	if intentResult.Degraded {
		metrics.LLMCalls.WithLabelValues("intent", "degraded").Inc()
		logger.WarnContext(ctx, "intent extraction degraded, searching for the raw question",
			"question", question, "cause", intentResult.Cause)
	} else {
		metrics.LLMCalls.WithLabelValues("intent", "ok").Inc()
	}
	intent := intentResult.Intent
	logger.InfoContext(ctx, "search intent resolved",
		"subject", intent.PrimarySubject, "context_terms", intent.ContextTerms)

	priority, err := e.docs.SearchPriority(ctx, intent.PrimarySubject)
	if err != nil {
		return Answer{}, fmt.Errorf("priority search: %w", err)
	}
	merged := mergeDocuments(documentKey, priority)
	logger.InfoContext(ctx, "priority tier retrieved", "candidates", len(merged))

	if len(merged) < contextSearchThreshold && len(intent.ContextTerms) > 0 {
		phrase := strings.Join(intent.ContextTerms, " ")
		contextDocs, err := e.docs.SearchContext(ctx, phrase)
		if err != nil {
			return Answer{}, fmt.Errorf("context search: %w", err)
		}
		merged = mergeDocuments(documentKey, merged, contextDocs)
		logger.InfoContext(ctx, "context tier retrieved", "phrase", phrase, "candidates", len(merged))
	}

	candidates, views, err := enrichCandidates(ctx, e.pdfs, merged, logger)
	if err != nil {
		return Answer{}, fmt.Errorf("enriching candidates: %w", err)
	}

	answer, err := synthesize(ctx, e.llm, e.baseURL, question, candidates, views, logger)
	if err != nil {
		metrics.LLMCalls.WithLabelValues("synthesis", "error").Inc()
		return Answer{}, err
	}
	if len(candidates) > 0 {
		metrics.LLMCalls.WithLabelValues("synthesis", "ok").Inc()
	}

	logger.InfoContext(ctx, "answer synthesized",
		"candidates", len(candidates), "links", len(answer.Links), "answer_length", len(answer.Answer))
	return answer, nil
}
