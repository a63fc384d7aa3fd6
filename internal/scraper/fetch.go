package scraper

import (
	"context"
	"errors"
	"fmt"

	"github.com/fr4nk3nst1ner/devsalary/internal/models"
)

// DefaultMaxPages caps the number of pages requested for one language
const DefaultMaxPages = 200

// ErrTooManyPages is returned when a source keeps reporting more pages past the cap
var ErrTooManyPages = errors.New("page limit reached")

// FetchResult holds every record fetched for a language
type FetchResult struct {
	Found    int
	Records  []models.VacancyRecord
	Requests int
}

// FetchAll pages through src until it reports no more pages. The total match
// count comes from the first page. Any failed page aborts the whole fetch.
func FetchAll(ctx context.Context, src Source, language string) (FetchResult, error) {
	return FetchAllPages(ctx, src, language, DefaultMaxPages)
}

// FetchAllPages is FetchAll with an explicit page cap
func FetchAllPages(ctx context.Context, src Source, language string, maxPages int) (FetchResult, error) {
	if maxPages <= 0 {
		maxPages = DefaultMaxPages
	}

	var result FetchResult
	for page := 0; ; page++ {
		if page >= maxPages {
			return FetchResult{}, fmt.Errorf("%w after %d pages", ErrTooManyPages, maxPages)
		}

		p, err := src.FetchPage(ctx, language, page)
		result.Requests++
		if err != nil {
			return FetchResult{}, fmt.Errorf("page %d: %w", page, err)
		}

		if page == 0 {
			result.Found = p.Found
		}
		result.Records = append(result.Records, p.Records...)

		if !p.More {
			return result, nil
		}
	}
}
