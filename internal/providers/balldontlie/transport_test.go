package balldontlie

import (
	"context"
	"net/http"
	"net/url"
	"testing"
	"time"
)

func TestNormalizeBaseURLTrimsTrailingSlashAndDefaults(t *testing.T) {
	if got := normalizeBaseURL(""); got != defaultBaseURL {
		t.Fatalf("expected default base url, got %s", got)
	}
	if got := normalizeBaseURL(" https://example.com/ "); got != "https://example.com" {
		t.Fatalf("expected trailing slash trimmed, got %s", got)
	}
}

func TestResolveHTTPClientDefaultsTimeout(t *testing.T) {
	client, ok := resolveHTTPClient(nil).(*http.Client)
	if !ok || client.Timeout != defaultHTTPTimeout {
		t.Fatalf("expected default client with %v timeout", defaultHTTPTimeout)
	}
}

func TestResolveHTTPClientUsesProvidedClient(t *testing.T) {
	custom := &http.Client{Timeout: time.Second}
	if resolveHTTPClient(custom) != custom {
		t.Fatalf("expected provided client to be used")
	}
}

func TestResolveMaxPages(t *testing.T) {
	if resolveMaxPages(0) != defaultMaxPages || resolveMaxPages(3) != 3 {
		t.Fatalf("unexpected max pages resolution")
	}
}

func TestNewRequestSetsAuthAndQuery(t *testing.T) {
	params := url.Values{}
	params.Add("team_ids[]", "14")
	req, err := newRequest(context.Background(), "https://example.com/v1", "/games", params, "secret")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if req.Method != http.MethodGet || req.URL.Path != "/v1/games" {
		t.Fatalf("unexpected request %s %s", req.Method, req.URL.Path)
	}
	if req.Header.Get("Authorization") != "secret" || req.Header.Get("Accept") != "application/json" {
		t.Fatalf("expected auth and accept headers, got %v", req.Header)
	}
	if req.URL.Query().Get("team_ids[]") != "14" {
		t.Fatalf("expected encoded query, got %s", req.URL.RawQuery)
	}
}

func TestNewRequestWithoutParamsLeavesQueryEmpty(t *testing.T) {
	req, err := newRequest(context.Background(), defaultBaseURL, "/teams", nil, "k")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if req.URL.RawQuery != "" {
		t.Fatalf("expected no query, got %s", req.URL.RawQuery)
	}
}
