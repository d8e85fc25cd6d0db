package rag

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	// excerptLimit bounds the default excerpt taken from the row itself.
	excerptLimit = 500
	// pdfExcerptLimit bounds the richer excerpt pulled from extracted PDF text.
	pdfExcerptLimit = 2500

	// pdfOrigin replaces the category label when the excerpt comes from the
	// PDF text store.
	pdfOrigin = "Documento PDF"
)

// originLabel renders a category value as a human-readable origin label. The
// title caser is constructed per call: a cases.Caser is stateful and must not
// be shared between concurrent requests.
func originLabel(category string) string {
	return cases.Title(language.BrazilianPortuguese).String(strings.ReplaceAll(category, "_", " "))
}

// enrichCandidates assigns sequence ids and derives a bounded excerpt and a
// display origin for each retrieved document, in list order. Transparency
// publications backed by a PDF get their excerpt replaced with the extracted
// PDF text when the side store has it; a lookup miss keeps the default.
func enrichCandidates(ctx context.Context, pdfs PDFTextStore, docs []Document, logger *slog.Logger) ([]Candidate, []CandidateView, error) {
	candidates := make([]Candidate, 0, len(docs))
	views := make([]CandidateView, 0, len(docs))

	for i, doc := range docs {
		excerpt := defaultExcerpt(doc)
		origin := originLabel(doc.Category)

		if doc.FileName != "" && strings.Contains(doc.Category, "publicacoes") {
			text, found, err := pdfs.TextByFileName(ctx, doc.FileName)
			if err != nil {
				return nil, nil, fmt.Errorf("pdf text lookup for %q: %w", doc.FileName, err)
			}
			if found {
				excerpt = strings.ReplaceAll(truncateRunes(text, pdfExcerptLimit), "\x00", " ")
				origin = pdfOrigin
			} else {
				logger.DebugContext(ctx, "no pdf text for candidate, keeping default excerpt", "file_name", doc.FileName)
			}
		}

		candidates = append(candidates, Candidate{
			Document:   doc,
			SequenceID: i,
			Excerpt:    excerpt,
			Origin:     origin,
		})
		views = append(views, CandidateView{ID: i, Title: doc.Title, Content: excerpt})
	}

	return candidates, views, nil
}

// defaultExcerpt takes the first non-empty of description and body, bounded
// and flattened to a single line.
func defaultExcerpt(doc Document) string {
	source := doc.Description
	if source == "" {
		source = doc.Body
	}
	excerpt := strings.TrimSpace(truncateRunes(source, excerptLimit))
	return strings.ReplaceAll(excerpt, "\n", " ")
}

func truncateRunes(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
