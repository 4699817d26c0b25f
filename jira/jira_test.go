// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package jira

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestIssueTitle(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/rest/api/2/issue/PROJ-123" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-token" {
			t.Errorf("unexpected auth header %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"fields": {"summary": "Add login page"}}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "test-token")
	title, err := c.IssueTitle(context.Background(), "PROJ-123")
	if err != nil {
		t.Fatalf("IssueTitle() error = %v", err)
	}
	if title != "Add login page" {
		t.Errorf("IssueTitle() = %q, want %q", title, "Add login page")
	}
}

func TestIssueTitle_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "")
	if _, err := c.IssueTitle(context.Background(), "PROJ-999"); err == nil {
		t.Error("expected error for missing issue")
	}
}

func TestIssueTitle_BadJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "")
	if _, err := c.IssueTitle(context.Background(), "PROJ-1"); err == nil {
		t.Error("expected error for malformed response")
	}
}
