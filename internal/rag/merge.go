package rag

import "fmt"

// documentKey is the canonical dedup key for a retrieved row. Both retrieval
// tiers key on the category stored in the row itself, so a row reached through
// different tiers always collapses to one candidate.
func documentKey(doc Document) string {
	return fmt.Sprintf("%s_%d", doc.Category, doc.ID)
}

// mergeDocuments merges tagged batches in precedence order, first write wins.
// Earlier batches are stronger relevance signals: a later batch can never
// evict or reorder a document already admitted by an earlier one. Insertion
// order is preserved within and across batches.
func mergeDocuments(keyFn func(Document) string, batches ...[]Document) []Document {
	seen := make(map[string]struct{})
	var merged []Document
	for _, batch := range batches {
		for _, doc := range batch {
			key := keyFn(doc)
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			merged = append(merged, doc)
		}
	}
	return merged
}
