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
	superJobBaseURL          = "https://api.superjob.ru/2.0/vacancies/"
	superJobSourceName       = "SuperJob"
	defaultSuperJobCount     = 100
	maxSuperJobCount         = 100
	defaultSuperJobRateLimit = 2
)

// SuperJobConfig is the query configuration for SuperJob. It is fixed when
// the source is created and never changed afterwards.
type SuperJobConfig struct {
	BaseURL           string
	APIToken          string
	Town              string
	RolePrefix        string
	Count             int
	UserAgent         string
	// RequestsPerSecond of zero uses the default pace, a negative value
	// disables pacing.
	RequestsPerSecond float64
	ProxyURL          string
	Timeout           time.Duration
}

// SuperJobResponse is the subset of the SuperJob vacancy search response we use
type SuperJobResponse struct {
	Objects []SuperJobVacancy `json:"objects"`
	Total   int               `json:"total"`
	More    bool              `json:"more"`
}

// SuperJobVacancy is a single SuperJob listing
type SuperJobVacancy struct {
	ID          int      `json:"id"`
	Profession  string   `json:"profession"`
	FirmName    string   `json:"firm_name"`
	PaymentFrom *float64 `json:"payment_from"`
	PaymentTo   *float64 `json:"payment_to"`
	Currency    string   `json:"currency"`
}

// SuperJobSource searches vacancies on SuperJob
type SuperJobSource struct {
	config SuperJobConfig
	client *client.Client
	header http.Header
	logger *pterm.Logger
}

// NewSuperJobSource creates a SuperJob source
func NewSuperJobSource(cfg SuperJobConfig, logger *pterm.Logger) (*SuperJobSource, error) {
	if cfg.APIToken == "" {
		return nil, errors.New("superjob: API token is required")
	}
	if cfg.Town == "" {
		return nil, errors.New("superjob: town is required")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = superJobBaseURL
	}
	if cfg.Count <= 0 || cfg.Count > maxSuperJobCount {
		cfg.Count = defaultSuperJobCount
	}
	if cfg.RequestsPerSecond == 0 {
		cfg.RequestsPerSecond = defaultSuperJobRateLimit
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

	header := http.Header{}
	header.Set("X-Api-App-Id", cfg.APIToken)

	return &SuperJobSource{config: cfg, client: c, header: header, logger: logger}, nil
}

// Name returns the display name of the source
func (s *SuperJobSource) Name() string {
	return superJobSourceName
}

// FetchPage requests one page of vacancies for language
func (s *SuperJobSource) FetchPage(ctx context.Context, language string, page int) (Page, error) {
	query := url.Values{}
	query.Set("keyword", SearchPhrase(s.config.RolePrefix, language))
	query.Set("town", s.config.Town)
	query.Set("page", strconv.Itoa(page))
	query.Set("count", strconv.Itoa(s.config.Count))

	var resp SuperJobResponse
	if err := s.client.GetJSON(ctx, s.config.BaseURL, query, s.header, &resp); err != nil {
		return Page{}, err
	}

	records := make([]models.VacancyRecord, 0, len(resp.Objects))
	for _, obj := range resp.Objects {
		records = append(records, obj.toRecord())
	}

	s.logger.Debug("superjob page fetched", s.logger.Args(
		"language", language,
		"page", page,
		"total", resp.Total,
		"objects", len(resp.Objects),
		"more", resp.More,
	))

	return Page{
		Records: records,
		Found:   resp.Total,
		More:    resp.More,
	}, nil
}

func (v SuperJobVacancy) toRecord() models.VacancyRecord {
	return models.VacancyRecord{
		Source:    superJobSourceName,
		ID:        strconv.Itoa(v.ID),
		Title:     v.Profession,
		Currency:  v.Currency,
		MinSalary: v.PaymentFrom,
		MaxSalary: v.PaymentTo,
	}
}
