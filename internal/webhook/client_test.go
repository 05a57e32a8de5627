package webhook

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/mkrol/cvsift/internal/store"
)

func TestNotifyPostsResult(t *testing.T) {
	var gotAuth string
	var gotDocID string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		var res store.AnalysisResult
		if err := json.NewDecoder(r.Body).Decode(&res); err != nil {
			t.Errorf("decode body: %v", err)
		}
		gotDocID = res.DocID
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "secret")
	err := c.Notify(context.Background(), &store.AnalysisResult{
		DocID:     "doc-1",
		Filename:  "cv.pdf",
		CreatedAt: time.Now(),
	})
	if err != nil {
		t.Fatalf("Notify: %v", err)
	}
	if gotAuth != "Bearer secret" {
		t.Errorf("Authorization = %q", gotAuth)
	}
	if gotDocID != "doc-1" {
		t.Errorf("doc_id = %q, want doc-1", gotDocID)
	}
}

func TestNotifyReportsServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusBadGateway)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "")
	err := c.Notify(context.Background(), &store.AnalysisResult{DocID: "doc-1"})
	if err == nil {
		t.Fatal("expected error on 502 response")
	}
}

func TestDisabledClientIsNoop(t *testing.T) {
	c := NewClient("", "key")
	if c.Enabled() {
		t.Fatal("client without URL reports enabled")
	}
	if err := c.Notify(context.Background(), &store.AnalysisResult{}); err != nil {
		t.Fatalf("disabled Notify returned error: %v", err)
	}
}
