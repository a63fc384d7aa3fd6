package utils

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
)

const (
	// Currency codes used for rubles by hh.ru and SuperJob respectively
	CurrencyRUR = "RUR"
	CurrencyRub = "rub"

	minOnlyFactor = 1.2
	maxOnlyFactor = 0.8
)

// IsRubCurrency reports whether currency denotes rubles in either source's encoding
func IsRubCurrency(currency string) bool {
	return currency == CurrencyRUR || currency == CurrencyRub
}

// PredictRubSalary estimates a monthly salary in rubles from a salary fork.
// A zero bound counts as missing. When both bounds are present the upper one
// is returned as is.
func PredictRubSalary(currency string, minSalary, maxSalary *float64) (float64, bool) {
	if !IsRubCurrency(currency) {
		return 0, false
	}

	from := boundValue(minSalary)
	to := boundValue(maxSalary)

	switch {
	case from > 0 && to > 0:
		return to, true
	case from > 0:
		return from * minOnlyFactor, true
	case to > 0:
		return to * maxOnlyFactor, true
	default:
		return 0, false
	}
}

func boundValue(v *float64) float64 {
	if v == nil || *v < 0 {
		return 0
	}
	return *v
}

// MeanSalary returns the truncated arithmetic mean of the estimates.
// ok is false for an empty list, in which case the mean is 0.
func MeanSalary(estimates []float64) (mean int, ok bool) {
	if len(estimates) == 0 {
		return 0, false
	}

	var sum float64
	for _, e := range estimates {
		sum += e
	}
	return int(sum / float64(len(estimates))), true
}

// FormatSalary formats a ruble amount with thousands separators
func FormatSalary(amount int) string {
	if amount <= 0 {
		return "No Data"
	}
	return fmt.Sprintf("%s ₽", humanize.Comma(int64(amount)))
}

// ParseList splits a comma-separated list, trimming blanks and dropping empty items
func ParseList(csv string) []string {
	var out []string
	for _, item := range strings.Split(csv, ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			out = append(out, item)
		}
	}
	return out
}
