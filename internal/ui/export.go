package ui

import (
	"encoding/json"
	"fmt"
	"html/template"
	"io"
	"os"
	"time"

	"github.com/fr4nk3nst1ner/devsalary/internal/models"
	"github.com/fr4nk3nst1ner/devsalary/internal/utils"
)

var htmlReport = template.Must(template.New("report").Funcs(template.FuncMap{
	"salary": utils.FormatSalary,
}).Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Programmer salaries</title>
<style>
body { font-family: sans-serif; margin: 2em; }
table { border-collapse: collapse; margin-bottom: 2em; }
th, td { border: 1px solid #999; padding: 4px 10px; }
td.num { text-align: right; }
</style>
</head>
<body>
<p class="generated">Generated {{.Generated}}</p>
{{range .Reports}}
<section class="report" data-source="{{.Source}}">
<h2>{{.Source}} {{.City}}</h2>
<table>
<thead><tr><th>Language</th><th>Vacancies found</th><th>Vacancies processed</th><th>Average salary</th></tr></thead>
<tbody>
{{range .Rows}}<tr data-language="{{.Language}}"><td>{{.Language}}</td><td class="num">{{.Found}}</td><td class="num">{{.Processed}}</td><td class="num">{{salary .AverageSalary}}</td></tr>
{{end}}</tbody>
</table>
</section>
{{end}}
</body>
</html>
`))

// RenderHTML writes the reports as a standalone HTML page
func RenderHTML(w io.Writer, reports []*models.Report, generated time.Time) error {
	return htmlReport.Execute(w, struct {
		Generated string
		Reports   []*models.Report
	}{
		Generated: generated.Format(time.RFC1123),
		Reports:   reports,
	})
}

// RenderJSON writes the reports as indented JSON
func RenderJSON(w io.Writer, reports []*models.Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(reports)
}

// WriteHTMLFile renders the reports to an HTML file at path
func WriteHTMLFile(path string, reports []*models.Report) error {
	return writeFile(path, func(w io.Writer) error {
		return RenderHTML(w, reports, time.Now())
	})
}

// WriteJSONFile renders the reports to a JSON file at path
func WriteJSONFile(path string, reports []*models.Report) error {
	return writeFile(path, func(w io.Writer) error {
		return RenderJSON(w, reports)
	})
}

func writeFile(path string, render func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := render(f); err != nil {
		f.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return f.Close()
}
