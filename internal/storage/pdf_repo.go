package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// PDFRepo looks up extracted PDF text in the side database. It implements
// rag.PDFTextStore.
type PDFRepo struct {
	q Querier
}

// NewPDFRepo creates a PDFRepo over the given connection.
func NewPDFRepo(q Querier) *PDFRepo {
	return &PDFRepo{q: q}
}

// TextByFileName returns the extracted text for a file name, first match
// only. A missing row is reported through the boolean, not as an error.
func (r *PDFRepo) TextByFileName(ctx context.Context, fileName string) (string, bool, error) {
	var text string
	err := r.q.QueryRowContext(ctx,
		"SELECT texto FROM pdf_documentos WHERE nome_arquivo = $1 LIMIT 1", fileName,
	).Scan(&text)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("querying pdf text: %w", err)
	}
	return text, true, nil
}
