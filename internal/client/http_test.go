package client

import (
	"compress/gzip"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
)

type payload struct {
	Found int `json:"found"`
}

func TestGetJSONSendsQueryAndHeaders(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("text"); got != "Программист Go" {
			t.Errorf("text = %q", got)
		}
		if got := r.Header.Get("User-Agent"); got != "test-agent" {
			t.Errorf("User-Agent = %q", got)
		}
		if got := r.Header.Get("X-Api-App-Id"); got != "secret" {
			t.Errorf("X-Api-App-Id = %q", got)
		}
		json.NewEncoder(w).Encode(payload{Found: 42})
	}))
	defer srv.Close()

	c, err := New(Options{UserAgent: "test-agent"})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	var out payload
	header := http.Header{}
	header.Set("X-Api-App-Id", "secret")
	err = c.GetJSON(context.Background(), srv.URL, url.Values{"text": {"Программист Go"}}, header, &out)
	if err != nil {
		t.Fatalf("GetJSON: %v", err)
	}
	if out.Found != 42 {
		t.Errorf("found = %d, want 42", out.Found)
	}
}

func TestGetJSONStatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad token", http.StatusForbidden)
	}))
	defer srv.Close()

	c, err := New(Options{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	var out payload
	err = c.GetJSON(context.Background(), srv.URL, nil, nil, &out)

	var statusErr *StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("expected *StatusError, got %v", err)
	}
	if statusErr.StatusCode != http.StatusForbidden {
		t.Errorf("status = %d, want %d", statusErr.StatusCode, http.StatusForbidden)
	}
	if statusErr.Body == "" {
		t.Error("expected response body in error")
	}
}

func TestGetJSONGzip(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Encoding", "gzip")
		gz := gzip.NewWriter(w)
		json.NewEncoder(gz).Encode(payload{Found: 7})
		gz.Close()
	}))
	defer srv.Close()

	c, err := New(Options{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	var out payload
	if err := c.GetJSON(context.Background(), srv.URL, nil, nil, &out); err != nil {
		t.Fatalf("GetJSON: %v", err)
	}
	if out.Found != 7 {
		t.Errorf("found = %d, want 7", out.Found)
	}
}

func TestGetJSONInvalidBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>not json</html>"))
	}))
	defer srv.Close()

	c, err := New(Options{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	var out payload
	if err := c.GetJSON(context.Background(), srv.URL, nil, nil, &out); err == nil {
		t.Fatal("expected a decode error")
	}
}

func TestGetJSONCanceledContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("request should not be sent")
	}))
	defer srv.Close()

	c, err := New(Options{RequestsPerSecond: 1})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out payload
	if err := c.GetJSON(ctx, srv.URL, nil, nil, &out); err == nil {
		t.Fatal("expected an error for a canceled context")
	}
}

func TestCreateProxyHTTPClientInvalidProxy(t *testing.T) {
	if _, err := CreateProxyHTTPClient("://bad", 0); err == nil {
		t.Fatal("expected an error for an invalid proxy URL")
	}
}
