package stats

import (
	"context"
	"fmt"

	"github.com/pterm/pterm"

	"github.com/fr4nk3nst1ner/devsalary/internal/models"
	"github.com/fr4nk3nst1ner/devsalary/internal/scraper"
)

// DefaultLanguages is the language list queried when none is configured
var DefaultLanguages = []string{"Python", "Java", "JavaScript", "C", "C#", "C++", "Ruby", "Go", "1C"}

type reportOptions struct {
	city     string
	progress func(models.LanguageStatistics)
	logger   *pterm.Logger
}

// ReportOption customizes BuildReport
type ReportOption func(*reportOptions)

// WithCity records the searched city on the report
func WithCity(city string) ReportOption {
	return func(o *reportOptions) { o.city = city }
}

// WithProgress registers a callback invoked after each language is aggregated
func WithProgress(fn func(models.LanguageStatistics)) ReportOption {
	return func(o *reportOptions) { o.progress = fn }
}

// WithLogger sets the logger used for per-language debug output
func WithLogger(logger *pterm.Logger) ReportOption {
	return func(o *reportOptions) { o.logger = logger }
}

// BuildReport aggregates every language in order against src. The first
// failing language aborts the report and no partial report is returned.
func BuildReport(ctx context.Context, src scraper.Source, languages []string, opts ...ReportOption) (*models.Report, error) {
	o := reportOptions{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = pterm.DefaultLogger.WithLevel(pterm.LogLevelDisabled)
	}

	report := &models.Report{
		Source: src.Name(),
		City:   o.city,
		Rows:   make([]models.LanguageStatistics, 0, len(languages)),
	}

	for _, lang := range languages {
		stats, err := Aggregate(ctx, src, lang)
		if err != nil {
			return nil, fmt.Errorf("%s: %s: %w", src.Name(), lang, err)
		}

		o.logger.Debug("language aggregated", o.logger.Args(
			"source", src.Name(),
			"language", lang,
			"found", stats.Found,
			"processed", stats.Processed,
			"average", stats.AverageSalary,
		))

		report.Add(stats)
		if o.progress != nil {
			o.progress(stats)
		}
	}

	return report, nil
}
