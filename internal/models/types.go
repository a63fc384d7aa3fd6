package models

// VacancyRecord is a single listing returned by a job source. Only the salary
// fields take part in aggregation; ID and Title are kept for debug output.
type VacancyRecord struct {
	Source    string   `json:"source"`
	ID        string   `json:"id"`
	Title     string   `json:"title"`
	Currency  string   `json:"currency"`
	MinSalary *float64 `json:"min_salary,omitempty"`
	MaxSalary *float64 `json:"max_salary,omitempty"`
}

// LanguageStatistics holds the aggregated salary figures for one language
type LanguageStatistics struct {
	Language      string `json:"language"`
	Found         int    `json:"vacancies_found"`
	Processed     int    `json:"vacancies_processed"`
	AverageSalary int    `json:"average_salary"`
}

// Report is the per-source result of a run. Rows keep the order in which the
// languages were queried.
type Report struct {
	Source string               `json:"source"`
	City   string               `json:"city"`
	Rows   []LanguageStatistics `json:"languages"`
}

// Add appends the statistics for a language, replacing an earlier row with
// the same label so the report stays a mapping.
func (r *Report) Add(stats LanguageStatistics) {
	for i := range r.Rows {
		if r.Rows[i].Language == stats.Language {
			r.Rows[i] = stats
			return
		}
	}
	r.Rows = append(r.Rows, stats)
}

// Get looks up the row for a language label
func (r *Report) Get(language string) (LanguageStatistics, bool) {
	for _, row := range r.Rows {
		if row.Language == language {
			return row, true
		}
	}
	return LanguageStatistics{}, false
}

// Languages returns the language labels in query order
func (r *Report) Languages() []string {
	langs := make([]string, 0, len(r.Rows))
	for _, row := range r.Rows {
		langs = append(langs, row.Language)
	}
	return langs
}

// Float returns a pointer to v. Handy when building records by hand.
func Float(v float64) *float64 {
	return &v
}
