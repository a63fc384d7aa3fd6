package scraper

import (
	"context"
	"strings"

	"github.com/fr4nk3nst1ner/devsalary/internal/models"
)

// Page is one page of search results from a source
type Page struct {
	Records []models.VacancyRecord
	// Found is the total number of matches the source reports for the query
	Found int
	// More is true when another page should be requested
	More bool
}

// Source is a job search API that can be paged through for a language
type Source interface {
	// Name is the display name of the source, e.g. "hh.ru"
	Name() string
	// FetchPage requests a single zero-based page of listings for language
	FetchPage(ctx context.Context, language string, page int) (Page, error)
}

// SearchPhrase builds the free-text query sent to a source
func SearchPhrase(rolePrefix, language string) string {
	return strings.TrimSpace(strings.TrimSpace(rolePrefix) + " " + language)
}
