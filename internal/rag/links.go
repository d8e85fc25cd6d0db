package rag

import (
	"fmt"
	"strings"
)

// BuildLink maps a document to its canonical URL on the municipal site,
// branching on category. The branches mirror the site's routing: a wrong
// branch produces a dead link, so the shapes here must not drift.
func BuildLink(baseURL string, doc Document) string {
	switch doc.Category {
	case CategoryBiddings:
		return fmt.Sprintf("%s%s?setor=%s&modalidade=%s&ano=%s&arquivo=%s",
			baseURL, doc.Modality, doc.Category, doc.Modality, doc.FileYear, doc.FileNumber)
	case CategoryBiddingExtra, CategoryTransparency:
		return fmt.Sprintf("%s%s?setor=%s&modalidade=%s&ano=%s&arquivo=%s",
			baseURL, doc.Modality, doc.Category, doc.Modality, doc.FileYear, doc.FileName)
	case CategoryNews:
		date := ""
		if doc.PublishedAt != nil {
			date = doc.PublishedAt.Format("02-01-2006")
		}
		title := strings.ToLower(strings.ReplaceAll(doc.Title, " ", "_"))
		return fmt.Sprintf("%s%s?id=%d&secretaria=%s&data=%s&titulo=%s",
			baseURL, doc.Category, doc.ID, doc.Modality, date, title)
	default:
		return baseURL + doc.URL
	}
}
