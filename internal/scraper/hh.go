package scraper

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/pterm/pterm"

	"github.com/fr4nk3nst1ner/devsalary/internal/client"
	"github.com/fr4nk3nst1ner/devsalary/internal/models"
)

const (
	hhBaseURL          = "https://api.hh.ru/vacancies"
	hhSourceName       = "hh.ru"
	defaultHHPerPage   = 100
	maxHHPerPage       = 100
	defaultHHRateLimit = 5
)

// HHConfig is the query configuration for hh.ru. It is fixed when the source
// is created and never changed afterwards.
type HHConfig struct {
	BaseURL    string
	AreaID     string
	RolePrefix string
	PerPage    int
	// ExactPages stops after page pages-1. By default one extra page
	// (page == pages) is requested, matching the historical behavior.
	ExactPages        bool
	UserAgent         string
	// RequestsPerSecond of zero uses the default pace, a negative value
	// disables pacing.
	RequestsPerSecond float64
	ProxyURL          string
	Timeout           time.Duration
}

// HHSearchResponse is the subset of the hh.ru vacancy search response we use
type HHSearchResponse struct {
	Found   int         `json:"found"`
	Pages   int         `json:"pages"`
	Page    int         `json:"page"`
	PerPage int         `json:"per_page"`
	Items   []HHVacancy `json:"items"`
}

// HHVacancy is a single hh.ru listing
type HHVacancy struct {
	ID     string    `json:"id"`
	Name   string    `json:"name"`
	Salary *HHSalary `json:"salary"`
}

// HHSalary is the salary fork of an hh.ru listing
type HHSalary struct {
	From     *float64 `json:"from"`
	To       *float64 `json:"to"`
	Currency string   `json:"currency"`
	Gross    bool     `json:"gross"`
}

// HHSource searches vacancies on hh.ru
type HHSource struct {
	config HHConfig
	client *client.Client
	logger *pterm.Logger
}

// NewHHSource creates an hh.ru source
func NewHHSource(cfg HHConfig, logger *pterm.Logger) (*HHSource, error) {
	if cfg.AreaID == "" {
		return nil, errors.New("hh.ru: area id is required")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = hhBaseURL
	}
	if cfg.PerPage <= 0 || cfg.PerPage > maxHHPerPage {
		cfg.PerPage = defaultHHPerPage
	}
	if cfg.RequestsPerSecond == 0 {
		cfg.RequestsPerSecond = defaultHHRateLimit
	}
	if logger == nil {
		logger = pterm.DefaultLogger.WithLevel(pterm.LogLevelDisabled)
	}

	c, err := client.New(client.Options{
		ProxyURL:          cfg.ProxyURL,
		Timeout:           cfg.Timeout,
		UserAgent:         cfg.UserAgent,
		RequestsPerSecond: cfg.RequestsPerSecond,
		Logger:            logger,
	})
	if err != nil {
		return nil, err
	}

	return &HHSource{config: cfg, client: c, logger: logger}, nil
}

// Name returns the display name of the source
func (s *HHSource) Name() string {
	return hhSourceName
}

// FetchPage requests one page of salaried vacancies for language
func (s *HHSource) FetchPage(ctx context.Context, language string, page int) (Page, error) {
	query := url.Values{}
	query.Set("text", SearchPhrase(s.config.RolePrefix, language))
	query.Set("only_with_salary", "true")
	query.Set("area", s.config.AreaID)
	query.Set("per_page", strconv.Itoa(s.config.PerPage))
	query.Set("page", strconv.Itoa(page))

	var resp HHSearchResponse
	if err := s.client.GetJSON(ctx, s.config.BaseURL, query, http.Header{}, &resp); err != nil {
		return Page{}, err
	}

	records := make([]models.VacancyRecord, 0, len(resp.Items))
	for _, item := range resp.Items {
		records = append(records, item.toRecord())
	}

	s.logger.Debug("hh.ru page fetched", s.logger.Args(
		"language", language,
		"page", page,
		"pages", resp.Pages,
		"found", resp.Found,
		"items", len(resp.Items),
	))

	return Page{
		Records: records,
		Found:   resp.Found,
		More:    s.hasMore(page, resp.Pages),
	}, nil
}

// hasMore decides whether another page follows page given the page count
// reported by hh.ru
func (s *HHSource) hasMore(page, pages int) bool {
	if s.config.ExactPages {
		return page < pages-1
	}
	return page < pages
}

func (v HHVacancy) toRecord() models.VacancyRecord {
	record := models.VacancyRecord{
		Source: hhSourceName,
		ID:     v.ID,
		Title:  v.Name,
	}
	if v.Salary != nil {
		record.Currency = v.Salary.Currency
		record.MinSalary = v.Salary.From
		record.MaxSalary = v.Salary.To
	}
	return record
}
