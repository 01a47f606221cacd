package report

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestPostMatch(t *testing.T) {
	var got Match
	var path, contentType string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		contentType = r.Header.Get("Content-Type")
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode body: %v", err)
		}
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	// A trailing slash on the base URL must not double up in the path.
	c := NewClient(srv.URL + "/")
	m := Match{
		Player1:         "alice",
		Player2:         "bob",
		Player1Score:    11,
		Player2Score:    7,
		Winner:          "alice",
		DurationSeconds: 93.5,
	}

	if err := c.PostMatch(context.Background(), m); err != nil {
		t.Fatalf("PostMatch: %v", err)
	}
	if path != "/matches/" {
		t.Errorf("expected POST to /matches/, got %s", path)
	}
	if contentType != "application/json" {
		t.Errorf("expected JSON content type, got %q", contentType)
	}
	if got != m {
		t.Errorf("payload mismatch: want %+v got %+v", m, got)
	}
}

func TestPostMatch_BackendError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusUnprocessableEntity)
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	if err := c.PostMatch(context.Background(), Match{}); err == nil {
		t.Error("expected an error for a rejected match")
	}
}

func TestPostMatch_ContextCancel(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := NewClient(srv.URL)
	if err := c.PostMatch(ctx, Match{}); err == nil {
		t.Error("expected an error for a canceled context")
	}
}
