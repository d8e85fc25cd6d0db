package rag

import (
	"context"
	"time"
)

// Document categories as stored in the site database. These values double as
// routing labels on the municipal site, so they are part of the link contract.
const (
	CategoryPages        = "paginas"
	CategoryTransparency = "publicacoes_transparencia"
	CategoryNews         = "noticias"
	CategoryBiddings     = "licitacoes"
	CategoryCouncils     = "conselhos"
	CategoryBiddingExtra = "licitacoes_extra"
)

// Document is one row from the site content database.
type Document struct {
	ID          int64
	Category    string
	Title       string
	Description string
	Body        string
	URL         string
	Modality    string
	FileName    string
	FileYear    string
	FileNumber  string
	PublishedAt *time.Time
}

// Intent is the LLM-derived decomposition of a raw question into the specific
// subject being searched for plus more generic context terms.
type Intent struct {
	PrimarySubject string   `json:"assunto_principal"`
	ContextTerms   []string `json:"contexto"`
}

// Candidate is a retrieved document augmented with its request-local sequence
// id, a bounded excerpt and a human-readable origin label.
type Candidate struct {
	Document
	SequenceID int
	Excerpt    string
	Origin     string
}

// CandidateView is the reduced candidate shape sent to the LLM. The ID is the
// join key the model must echo back in documentos_utilizados.
type CandidateView struct {
	ID      int    `json:"id"`
	Title   string `json:"titulo"`
	Content string `json:"conteudo"`
}

// FinalLink is a navigable reference included in the final answer.
type FinalLink struct {
	Name   string `json:"nome"`
	Link   string `json:"link"`
	Origin string `json:"origem"`
}

// Answer is the synthesized result of a question.
type Answer struct {
	Answer string
	Links  []FinalLink
}

// DocumentStore retrieves candidate documents from the site content database.
type DocumentStore interface {
	// SearchPriority runs the high-priority keyword match for the subject
	// across every document table, capped per table.
	SearchPriority(ctx context.Context, subject string) ([]Document, error)
	// SearchContext runs a single combined full-text search for the joined
	// context phrase across every document table, capped overall.
	SearchContext(ctx context.Context, phrase string) ([]Document, error)
}

// PDFTextStore looks up extracted PDF text by exact file name.
type PDFTextStore interface {
	// TextByFileName returns the extracted text for a file name. The boolean
	// reports whether a row was found; a miss is not an error.
	TextByFileName(ctx context.Context, fileName string) (string, bool, error)
}

// Generator is the text-generation service used for intent extraction and
// answer synthesis. Responses are raw text expected to parse as JSON after
// optional markdown fence stripping.
type Generator interface {
	Generate(ctx context.Context, prompt string, timeout time.Duration) (string, error)
}
