package storage

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/barros13/chatbot/internal/rag"
)

const (
	// priorityLimitPerTable caps the high-priority keyword match per table.
	priorityLimitPerTable = 5
	// contextLimit caps the combined full-text search across all tables.
	contextLimit = 15
)

// documentColumns is the column set shared by every document table.
const documentColumns = "id, categoria, titulo, descricao, conteudo, url, modalidade, arquivo_nome, arquivo_ano, data_publicacao, arquivo_numero"

// documentTable describes one searchable table of the site content database.
// Keyword columns back the ILIKE tier; full-text columns must follow the
// table's actual full-text index (paginas only indexes titulo and descricao).
type documentTable struct {
	name            string
	keywordColumns  []string
	fulltextColumns []string
}

var documentTables = []documentTable{
	{
		name:            "paginas",
		keywordColumns:  []string{"titulo", "descricao", "conteudo"},
		fulltextColumns: []string{"titulo", "descricao"},
	},
	{
		name:            "publicacoes_transparencia",
		keywordColumns:  []string{"titulo", "descricao", "conteudo"},
		fulltextColumns: []string{"titulo", "descricao", "conteudo"},
	},
	{
		name:            "noticias",
		keywordColumns:  []string{"titulo", "descricao", "conteudo"},
		fulltextColumns: []string{"titulo", "descricao", "conteudo"},
	},
	{
		name:            "licitacoes",
		keywordColumns:  []string{"titulo", "descricao", "conteudo"},
		fulltextColumns: []string{"titulo", "descricao", "conteudo"},
	},
	{
		name:            "conselhos",
		keywordColumns:  []string{"titulo", "descricao", "conteudo"},
		fulltextColumns: []string{"titulo", "descricao", "conteudo"},
	},
}

// Querier is the subset of database/sql used by the repositories. Both
// *sql.DB and the request-scoped *sql.Conn satisfy it.
type Querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// SiteRepo retrieves candidate documents from the site content database.
// It implements rag.DocumentStore.
type SiteRepo struct {
	q Querier
}

// NewSiteRepo creates a SiteRepo over the given connection.
func NewSiteRepo(q Querier) *SiteRepo {
	return &SiteRepo{q: q}
}

// SearchPriority runs the keyword match for the subject against every
// document table, capped per table. The subject is wrapped in wildcards so a
// partial mention in any searchable column qualifies the row.
func (r *SiteRepo) SearchPriority(ctx context.Context, subject string) ([]rag.Document, error) {
	pattern := "%" + subject + "%"

	var docs []rag.Document
	for _, table := range documentTables {
		predicates := make([]string, len(table.keywordColumns))
		for i, column := range table.keywordColumns {
			predicates[i] = column + " ILIKE $1"
		}
		query := fmt.Sprintf("SELECT %s FROM %s WHERE %s LIMIT %d",
			documentColumns, table.name, strings.Join(predicates, " OR "), priorityLimitPerTable)

		rows, err := r.q.QueryContext(ctx, query, pattern)
		if err != nil {
			return nil, fmt.Errorf("keyword search on %s: %w", table.name, err)
		}
		tableDocs, err := collectDocuments(rows)
		if err != nil {
			return nil, fmt.Errorf("keyword search on %s: %w", table.name, err)
		}
		docs = append(docs, tableDocs...)
	}
	return docs, nil
}

// SearchContext runs one unioned natural-language full-text query for the
// context phrase across every document table, capped overall.
func (r *SiteRepo) SearchContext(ctx context.Context, phrase string) ([]rag.Document, error) {
	selects := make([]string, len(documentTables))
	for i, table := range documentTables {
		coalesced := make([]string, len(table.fulltextColumns))
		for j, column := range table.fulltextColumns {
			coalesced[j] = fmt.Sprintf("coalesce(%s, '')", column)
		}
		selects[i] = fmt.Sprintf(
			"(SELECT %s FROM %s WHERE to_tsvector('portuguese', %s) @@ plainto_tsquery('portuguese', $1))",
			documentColumns, table.name, strings.Join(coalesced, " || ' ' || "))
	}
	query := strings.Join(selects, " UNION ALL ") + fmt.Sprintf(" LIMIT %d", contextLimit)

	rows, err := r.q.QueryContext(ctx, query, phrase)
	if err != nil {
		return nil, fmt.Errorf("full-text search: %w", err)
	}
	docs, err := collectDocuments(rows)
	if err != nil {
		return nil, fmt.Errorf("full-text search: %w", err)
	}
	return docs, nil
}

func collectDocuments(rows *sql.Rows) ([]rag.Document, error) {
	defer func() {
		_ = rows.Close()
	}()

	var docs []rag.Document
	for rows.Next() {
		var doc rag.Document
		var title, description, body, url sql.NullString
		var modality, fileName, fileYear, fileNumber sql.NullString
		var publishedAt sql.NullTime
		err := rows.Scan(&doc.ID, &doc.Category, &title, &description, &body, &url,
			&modality, &fileName, &fileYear, &publishedAt, &fileNumber)
		if err != nil {
			return nil, fmt.Errorf("scanning document row: %w", err)
		}
		doc.Title = title.String
		doc.Description = description.String
		doc.Body = body.String
		doc.URL = url.String
		doc.Modality = modality.String
		doc.FileName = fileName.String
		doc.FileYear = fileYear.String
		doc.FileNumber = fileNumber.String
		if publishedAt.Valid {
			t := publishedAt.Time
			doc.PublishedAt = &t
		}
		docs = append(docs, doc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading document rows: %w", err)
	}
	return docs, nil
}
