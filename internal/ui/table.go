package ui

import (
	"fmt"
	"io"
	"strconv"

	"github.com/pterm/pterm"

	"github.com/fr4nk3nst1ner/devsalary/internal/models"
	"github.com/fr4nk3nst1ner/devsalary/internal/utils"
)

var tableHeader = []string{"Language", "Vacancies found", "Vacancies processed", "Average salary"}

// ColorizeSalary formats a ruble amount and colors it by pay band
func ColorizeSalary(amount int) string {
	formatted := utils.FormatSalary(amount)

	switch {
	case amount >= 300000:
		return pterm.Green(formatted)
	case amount >= 200000:
		return pterm.LightGreen(formatted)
	case amount >= 100000:
		return pterm.Yellow(formatted)
	default:
		return pterm.Red(formatted)
	}
}

// ReportTitle is the heading printed above a report table
func ReportTitle(r *models.Report) string {
	if r.City == "" {
		return r.Source
	}
	return fmt.Sprintf("%s %s", r.Source, r.City)
}

// TableData converts a report into rows for a pterm table, header first
func TableData(r *models.Report) pterm.TableData {
	data := pterm.TableData{tableHeader}
	for _, row := range r.Rows {
		data = append(data, []string{
			row.Language,
			strconv.Itoa(row.Found),
			strconv.Itoa(row.Processed),
			ColorizeSalary(row.AverageSalary),
		})
	}
	return data
}

// SprintReport renders a report as a titled, boxed table
func SprintReport(r *models.Report) (string, error) {
	table, err := pterm.DefaultTable.
		WithHasHeader().
		WithBoxed().
		WithData(TableData(r)).
		Srender()
	if err != nil {
		return "", fmt.Errorf("failed to render %s table: %w", r.Source, err)
	}
	return pterm.DefaultSection.Sprint(ReportTitle(r)) + table + "\n", nil
}

// RenderReport writes the rendered table for r to w
func RenderReport(w io.Writer, r *models.Report) error {
	out, err := SprintReport(r)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, out)
	return err
}
