package scraper

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"

	"github.com/fr4nk3nst1ner/devsalary/internal/client"
)

type hhServer struct {
	mu       sync.Mutex
	pages    int
	found    int
	items    []HHVacancy
	status   int
	requests []string
}

func (h *hhServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	h.requests = append(h.requests, r.URL.Query().Get("page"))
	h.mu.Unlock()

	if h.status != 0 {
		http.Error(w, `{"errors":[{"type":"forbidden"}]}`, h.status)
		return
	}
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	json.NewEncoder(w).Encode(HHSearchResponse{
		Found: h.found,
		Pages: h.pages,
		Page:  page,
		Items: h.items,
	})
}

func rurVacancy(id string, from, to *float64) HHVacancy {
	return HHVacancy{ID: id, Name: "Developer", Salary: &HHSalary{From: from, To: to, Currency: "RUR"}}
}

func newTestHH(t *testing.T, url string, exact bool) *HHSource {
	t.Helper()
	src, err := NewHHSource(HHConfig{
		BaseURL:           url,
		AreaID:            "1",
		RolePrefix:        "Программист",
		ExactPages:        exact,
		RequestsPerSecond: -1,
	}, nil)
	if err != nil {
		t.Fatalf("NewHHSource: %v", err)
	}
	return src
}

func TestHHFetchAllRequestsOneExtraPage(t *testing.T) {
	from := 100000.0
	srv := &hhServer{pages: 3, found: 50, items: []HHVacancy{rurVacancy("1", &from, nil)}}
	ts := httptest.NewServer(srv)
	defer ts.Close()

	result, err := FetchAll(context.Background(), newTestHH(t, ts.URL, false), "Python")
	if err != nil {
		t.Fatalf("FetchAll: %v", err)
	}
	if result.Requests != 4 || len(srv.requests) != 4 {
		t.Fatalf("requests = %d (server saw %d), want pages+1 = 4", result.Requests, len(srv.requests))
	}
	for i, p := range srv.requests {
		if p != strconv.Itoa(i) {
			t.Errorf("request %d asked for page %q", i, p)
		}
	}
	if result.Found != 50 {
		t.Errorf("found = %d, want 50", result.Found)
	}
	if len(result.Records) != 4 {
		t.Errorf("records = %d, want 4", len(result.Records))
	}
}

func TestHHFetchAllExactPages(t *testing.T) {
	srv := &hhServer{pages: 3, found: 50}
	ts := httptest.NewServer(srv)
	defer ts.Close()

	result, err := FetchAll(context.Background(), newTestHH(t, ts.URL, true), "Python")
	if err != nil {
		t.Fatalf("FetchAll: %v", err)
	}
	if result.Requests != 3 {
		t.Errorf("requests = %d, want pages = 3", result.Requests)
	}
}

func TestHHFetchAllZeroPages(t *testing.T) {
	srv := &hhServer{pages: 0, found: 0}
	ts := httptest.NewServer(srv)
	defer ts.Close()

	result, err := FetchAll(context.Background(), newTestHH(t, ts.URL, false), "1C")
	if err != nil {
		t.Fatalf("FetchAll: %v", err)
	}
	if result.Requests != 1 {
		t.Errorf("requests = %d, want 1", result.Requests)
	}
}

func TestHHFetchPageQuery(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		checks := map[string]string{
			"text":             "Программист Go",
			"only_with_salary": "true",
			"area":             "2",
			"page":             "5",
			"per_page":         "100",
		}
		for key, want := range checks {
			if got := q.Get(key); got != want {
				t.Errorf("%s = %q, want %q", key, got, want)
			}
		}
		if r.Header.Get("User-Agent") != "api-test-agent" {
			t.Errorf("User-Agent = %q", r.Header.Get("User-Agent"))
		}
		w.Write([]byte(`{"found":3,"pages":1,"items":[{"id":"7","name":"Go dev","salary":null},{"id":"8","name":"Go dev","salary":{"from":null,"to":200000,"currency":"RUR"}}]}`))
	}))
	defer ts.Close()

	src, err := NewHHSource(HHConfig{
		BaseURL:           ts.URL,
		AreaID:            "2",
		RolePrefix:        "Программист",
		UserAgent:         "api-test-agent",
		RequestsPerSecond: -1,
	}, nil)
	if err != nil {
		t.Fatalf("NewHHSource: %v", err)
	}

	page, err := src.FetchPage(context.Background(), "Go", 5)
	if err != nil {
		t.Fatalf("FetchPage: %v", err)
	}
	if len(page.Records) != 2 {
		t.Fatalf("records = %d, want 2", len(page.Records))
	}
	if page.Records[0].Currency != "" || page.Records[0].MinSalary != nil {
		t.Errorf("listing without salary should have empty salary fields: %+v", page.Records[0])
	}
	if r := page.Records[1]; r.Currency != "RUR" || r.MinSalary != nil || r.MaxSalary == nil || *r.MaxSalary != 200000 {
		t.Errorf("unexpected record %+v", r)
	}
	if page.More {
		t.Error("page 5 of 1 should not report more pages")
	}
}

func TestHHFetchAllStatusError(t *testing.T) {
	srv := &hhServer{status: http.StatusForbidden}
	ts := httptest.NewServer(srv)
	defer ts.Close()

	_, err := FetchAll(context.Background(), newTestHH(t, ts.URL, false), "Java")
	var statusErr *client.StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("expected *client.StatusError, got %v", err)
	}
	if statusErr.StatusCode != http.StatusForbidden {
		t.Errorf("status = %d", statusErr.StatusCode)
	}
}

func TestNewHHSourceRequiresArea(t *testing.T) {
	if _, err := NewHHSource(HHConfig{}, nil); err == nil {
		t.Fatal("expected an error without an area id")
	}
}
