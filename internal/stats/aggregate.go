package stats

import (
	"context"

	"github.com/fr4nk3nst1ner/devsalary/internal/models"
	"github.com/fr4nk3nst1ner/devsalary/internal/scraper"
	"github.com/fr4nk3nst1ner/devsalary/internal/utils"
)

// Aggregate fetches every listing for language from src and folds the
// predicted ruble salaries into LanguageStatistics.
func Aggregate(ctx context.Context, src scraper.Source, language string) (models.LanguageStatistics, error) {
	result, err := scraper.FetchAll(ctx, src, language)
	if err != nil {
		return models.LanguageStatistics{}, err
	}
	return Summarize(language, result.Found, result.Records), nil
}

// Summarize computes statistics from already fetched records. found is the
// source's total match count, not the number of records.
func Summarize(language string, found int, records []models.VacancyRecord) models.LanguageStatistics {
	estimates := make([]float64, 0, len(records))
	for _, r := range records {
		if salary, ok := utils.PredictRubSalary(r.Currency, r.MinSalary, r.MaxSalary); ok {
			estimates = append(estimates, salary)
		}
	}

	// no salaried listings leaves the average at zero
	average, _ := utils.MeanSalary(estimates)

	return models.LanguageStatistics{
		Language:      language,
		Found:         found,
		Processed:     len(estimates),
		AverageSalary: average,
	}
}
