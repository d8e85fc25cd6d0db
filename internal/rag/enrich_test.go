package rag

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"testing"
)

func TestEnrichCandidates_Defaults(t *testing.T) {
	pdfs := &fakePDFStore{}
	docs := []Document{
		{Category: CategoryNews, Title: "a", Description: "  primeira\nlinha  "},
		{Category: CategoryPages, Title: "b", Body: "conteúdo da página"},
		{Category: CategoryBiddings, Title: "c", Description: strings.Repeat("x", 600)},
	}

	candidates, views, err := enrichCandidates(context.Background(), pdfs, docs, slog.Default())
	if err != nil {
		t.Fatalf("enrichCandidates() error = %v", err)
	}
	if len(candidates) != 3 || len(views) != 3 {
		t.Fatalf("enrichCandidates() returned %d candidates and %d views, want 3 and 3", len(candidates), len(views))
	}

	for i, c := range candidates {
		if c.SequenceID != i {
			t.Errorf("candidate %d SequenceID = %d, want %d", i, c.SequenceID, i)
		}
		if views[i].ID != i {
			t.Errorf("view %d ID = %d, want %d", i, views[i].ID, i)
		}
		if views[i].Content != c.Excerpt {
			t.Errorf("view %d content diverges from candidate excerpt", i)
		}
	}

	if candidates[0].Excerpt != "primeira linha" {
		t.Errorf("excerpt = %q, want newline collapsed and trimmed", candidates[0].Excerpt)
	}
	if candidates[1].Excerpt != "conteúdo da página" {
		t.Errorf("excerpt = %q, want body fallback when description is empty", candidates[1].Excerpt)
	}
	if len([]rune(candidates[2].Excerpt)) != 500 {
		t.Errorf("excerpt length = %d runes, want truncation at 500", len([]rune(candidates[2].Excerpt)))
	}
	if candidates[2].Origin != "Licitacoes" {
		t.Errorf("origin = %q, want %q", candidates[2].Origin, "Licitacoes")
	}
	if pdfs.calls != 0 {
		t.Errorf("pdf store consulted %d times, want 0", pdfs.calls)
	}
}

func TestEnrichCandidates_PDFOverride(t *testing.T) {
	longText := strings.Repeat("y", 3000)

	tests := []struct {
		name         string
		doc          Document
		texts        map[string]string
		wantExcerpt  string
		wantOrigin   string
		wantPDFCalls int
	}{
		{
			name: "publication with matching pdf row gets pdf excerpt",
			doc: Document{
				Category:    CategoryTransparency,
				Description: "resumo curto",
				FileName:    "decreto.pdf",
			},
			texts:        map[string]string{"decreto.pdf": "texto completo\x00do decreto"},
			wantExcerpt:  "texto completo do decreto",
			wantOrigin:   "Documento PDF",
			wantPDFCalls: 1,
		},
		{
			name: "pdf text truncated at the longer bound",
			doc: Document{
				Category: CategoryTransparency,
				FileName: "grande.pdf",
			},
			texts:        map[string]string{"grande.pdf": longText},
			wantExcerpt:  strings.Repeat("y", 2500),
			wantOrigin:   "Documento PDF",
			wantPDFCalls: 1,
		},
		{
			name: "lookup miss keeps the default excerpt",
			doc: Document{
				Category:    CategoryTransparency,
				Description: "resumo curto",
				FileName:    "faltando.pdf",
			},
			texts:        map[string]string{},
			wantExcerpt:  "resumo curto",
			wantOrigin:   "Publicacoes Transparencia",
			wantPDFCalls: 1,
		},
		{
			name: "category without publicacoes never triggers the lookup",
			doc: Document{
				Category:    CategoryBiddings,
				Description: "edital",
				FileName:    "edital.pdf",
			},
			texts:        map[string]string{"edital.pdf": "nunca usado"},
			wantExcerpt:  "edital",
			wantOrigin:   "Licitacoes",
			wantPDFCalls: 0,
		},
		{
			name: "publication without file name never triggers the lookup",
			doc: Document{
				Category:    CategoryTransparency,
				Description: "sem arquivo",
			},
			texts:        map[string]string{},
			wantExcerpt:  "sem arquivo",
			wantOrigin:   "Publicacoes Transparencia",
			wantPDFCalls: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pdfs := &fakePDFStore{texts: tt.texts}

			candidates, _, err := enrichCandidates(context.Background(), pdfs, []Document{tt.doc}, slog.Default())
			if err != nil {
				t.Fatalf("enrichCandidates() error = %v", err)
			}

			if candidates[0].Excerpt != tt.wantExcerpt {
				t.Errorf("excerpt = %q, want %q", candidates[0].Excerpt, tt.wantExcerpt)
			}
			if candidates[0].Origin != tt.wantOrigin {
				t.Errorf("origin = %q, want %q", candidates[0].Origin, tt.wantOrigin)
			}
			if pdfs.calls != tt.wantPDFCalls {
				t.Errorf("pdf store consulted %d times, want %d", pdfs.calls, tt.wantPDFCalls)
			}
		})
	}
}

// Enrichment runs once per request and requests are served concurrently, so
// it must not share mutable state across calls. Run under -race.
func TestEnrichCandidates_ConcurrentRequests(t *testing.T) {
	docs := []Document{
		{Category: CategoryTransparency, Description: "resumo", FileName: "decreto.pdf"},
		{Category: CategoryBiddings, Description: "edital"},
	}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			pdfs := &fakePDFStore{texts: map[string]string{"decreto.pdf": "texto do decreto"}}

			candidates, _, err := enrichCandidates(context.Background(), pdfs, docs, slog.Default())
			if err != nil {
				t.Errorf("enrichCandidates() error = %v", err)
				return
			}
			if candidates[0].Origin != "Documento PDF" {
				t.Errorf("origin = %q, want %q", candidates[0].Origin, "Documento PDF")
			}
			if candidates[1].Origin != "Licitacoes" {
				t.Errorf("origin = %q, want %q", candidates[1].Origin, "Licitacoes")
			}
		}()
	}
	wg.Wait()
}

func TestEnrichCandidates_PDFStoreFailureIsFatal(t *testing.T) {
	pdfs := &fakePDFStore{err: errors.New("connection reset")}
	docs := []Document{{Category: CategoryTransparency, FileName: "decreto.pdf"}}

	_, _, err := enrichCandidates(context.Background(), pdfs, docs, slog.Default())
	if err == nil {
		t.Fatal("enrichCandidates() expected error when the pdf store fails")
	}
}
