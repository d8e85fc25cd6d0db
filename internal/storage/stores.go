package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/barros13/chatbot/internal/rag"
)

// Stores holds the two database pools and hands out request-scoped
// repositories over dedicated connections.
type Stores struct {
	site *sql.DB
	pdf  *sql.DB
}

// NewStores creates Stores over the site content and PDF text pools.
func NewStores(site, pdf *sql.DB) *Stores {
	return &Stores{site: site, pdf: pdf}
}

// Acquire checks one connection out of each pool and returns repositories
// bound to them. The release function must be called unconditionally at the
// end of the request; it returns both connections to their pools.
func (s *Stores) Acquire(ctx context.Context) (rag.DocumentStore, rag.PDFTextStore, func(), error) {
	siteConn, err := s.site.Conn(ctx)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("acquiring site database connection: %w", err)
	}
	pdfConn, err := s.pdf.Conn(ctx)
	if err != nil {
		_ = siteConn.Close()
		return nil, nil, nil, fmt.Errorf("acquiring pdf database connection: %w", err)
	}

	release := func() {
		_ = pdfConn.Close()
		_ = siteConn.Close()
	}
	return NewSiteRepo(siteConn), NewPDFRepo(pdfConn), release, nil
}
