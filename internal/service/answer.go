package service

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_document_stores.go -package=mocks github.com/barros13/chatbot/internal/service DocumentStores

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/barros13/chatbot/internal/cache"
	"github.com/barros13/chatbot/internal/contextutil"
	"github.com/barros13/chatbot/internal/metrics"
	"github.com/barros13/chatbot/internal/rag"
)

// Answer is the final response payload for a question. Its JSON form is what
// gets cached, so a cache hit is byte-identical to the original computation.
type Answer struct {
	Text  string          `json:"resposta"`
	Links []rag.FinalLink `json:"links"`
	Code  int             `json:"codigo"`
}

// DocumentStores acquires request-scoped access to the two document stores.
// The release function must be called unconditionally when the request ends.
type DocumentStores interface {
	Acquire(ctx context.Context) (docs rag.DocumentStore, pdfs rag.PDFTextStore, release func(), err error)
}

// AnswerService answers free-text questions against the document corpus.
type AnswerService interface {
	// Answer runs the full question pipeline: normalization, cache lookup,
	// intent extraction, retrieval, enrichment and synthesis.
	Answer(ctx context.Context, rawQuestion string) (Answer, error)
}

type answerService struct {
	stores  DocumentStores
	llm     rag.Generator
	cache   cache.Store
	baseURL string
}

// NewAnswerService creates an AnswerService.
func NewAnswerService(stores DocumentStores, llm rag.Generator, store cache.Store, baseURL string) AnswerService {
	return &answerService{
		stores:  stores,
		llm:     llm,
		cache:   store,
		baseURL: baseURL,
	}
}

// Normalize produces the canonical form of a question: trimmed and
// lower-cased. The normalized text is the cache key, so two questions that
// normalize equally share one cache entry.
func Normalize(rawQuestion string) string {
	return strings.ToLower(strings.TrimSpace(rawQuestion))
}

// Answer answers one question. The cache is consulted at entry and populated
// at exit; nothing is cached for failed requests, so the next attempt is a
// fresh miss.
func (s *answerService) Answer(ctx context.Context, rawQuestion string) (Answer, error) {
	logger := contextutil.LoggerFromContext(ctx)

	question := Normalize(rawQuestion)
	if question == "" {
		logger.WarnContext(ctx, "rejecting empty question")
		return Answer{}, ErrEmptyQuestion
	}

	if payload, ok, err := s.cache.Get(ctx, question); err != nil {
		logger.WarnContext(ctx, "cache read failed, treating as miss", "error", err)
	} else if ok {
		var cached Answer
		if err := json.Unmarshal(payload, &cached); err == nil {
			metrics.CacheHits.Inc()
			logger.InfoContext(ctx, "cache hit", "question", question)
			return cached, nil
		}
		logger.WarnContext(ctx, "discarding undecodable cache entry", "question", question, "error", err)
	}
	metrics.CacheMisses.Inc()
	logger.InfoContext(ctx, "cache miss, processing question", "question", question)

	docs, pdfs, release, err := s.stores.Acquire(ctx)
	if err != nil {
		return Answer{}, WrapError(err, "acquiring document stores")
	}
	defer release()

	result, err := rag.NewEngine(docs, pdfs, s.llm, s.baseURL).Answer(ctx, question)
	if err != nil {
		return Answer{}, err
	}

	answer := Answer{Text: result.Answer, Links: result.Links, Code: http.StatusOK}
	if answer.Links == nil {
		answer.Links = []rag.FinalLink{}
	}

	if payload, err := json.Marshal(answer); err != nil {
		logger.WarnContext(ctx, "failed to encode answer for caching", "error", err)
	} else if err := s.cache.Set(ctx, question, payload); err != nil {
		logger.WarnContext(ctx, "cache write failed", "error", err)
	}

	return answer, nil
}
