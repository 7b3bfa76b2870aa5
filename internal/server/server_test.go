package server

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"resumelens/internal/analysis"
	apperrors "resumelens/internal/errors"
	"resumelens/internal/types"
)

func testServer() *Server {
	return &Server{
		APIKeys: map[string]bool{"valid-key-12345678": true},
		History: analysis.NewHistory(),
		Logger:  apperrors.NewLogger(slog.LevelError),
	}
}

func TestAuthMiddleware(t *testing.T) {
	s := testServer()
	handler := s.authMiddleware(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	tests := []struct {
		name       string
		header     string
		value      string
		wantStatus int
	}{
		{name: "missing key", wantStatus: http.StatusUnauthorized},
		{name: "invalid key", header: "X-API-Key", value: "wrong", wantStatus: http.StatusUnauthorized},
		{name: "valid key", header: "X-API-Key", value: "valid-key-12345678", wantStatus: http.StatusOK},
		{name: "bearer token", header: "Authorization", value: "Bearer valid-key-12345678", wantStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/history", nil)
			if tt.header != "" {
				req.Header.Set(tt.header, tt.value)
			}
			rec := httptest.NewRecorder()
			handler(rec, req)
			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
		})
	}
}

func TestAuthMiddlewareOpenWhenNoKeys(t *testing.T) {
	s := testServer()
	s.APIKeys = map[string]bool{}
	handler := s.authMiddleware(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/history", nil)
	rec := httptest.NewRecorder()
	handler(rec, req)
	if rec.Code != http.StatusOK {
		t.Errorf("expected open access without configured keys, got %d", rec.Code)
	}
}

func TestHistoryEndpoints(t *testing.T) {
	s := testServer()
	stored := s.History.Save(types.StoredAnalysis{
		FileName:      "resume.txt",
		ExtractedText: "react developer",
		WordCount:     2,
	})

	mux := http.NewServeMux()
	mux.HandleFunc("/history", s.historyListHandler)
	mux.HandleFunc("/history/{id}", s.historyEntryHandler)

	// list
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/history", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("list status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), stored.ID) {
		t.Errorf("list response missing entry %s", stored.ID)
	}

	// get
	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/history/"+stored.ID, nil))
	if rec.Code != http.StatusOK {
		t.Errorf("get status = %d", rec.Code)
	}

	// get unknown
	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/history/nope", nil))
	if rec.Code != http.StatusNotFound {
		t.Errorf("get unknown status = %d, want 404", rec.Code)
	}

	// delete
	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/history/"+stored.ID, nil))
	if rec.Code != http.StatusNoContent {
		t.Errorf("delete status = %d, want 204", rec.Code)
	}
	if len(s.History.List()) != 0 {
		t.Error("entry should be gone after delete")
	}
}

func TestRateLimiterBurst(t *testing.T) {
	limiter := NewRateLimiter(60, time.Minute, 2, apperrors.NewLogger(slog.LevelError))
	defer limiter.Close()

	if !limiter.Allow("ip:1.2.3.4") || !limiter.Allow("ip:1.2.3.4") {
		t.Fatal("burst capacity should admit the first two requests")
	}
	if limiter.Allow("ip:1.2.3.4") {
		t.Error("third immediate request should exceed the burst")
	}
	// other keys are unaffected
	if !limiter.Allow("ip:5.6.7.8") {
		t.Error("separate key should have its own bucket")
	}
}

func TestGetRateLimitKey(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/match", nil)
	req.Header.Set("X-API-Key", "abc")
	req.RemoteAddr = "10.0.0.1:4242"

	if got := getRateLimitKey(req, true, true); got != "api:abc" {
		t.Errorf("api key precedence: got %q", got)
	}
	if got := getRateLimitKey(req, false, true); got != "ip:10.0.0.1" {
		t.Errorf("by ip: got %q", got)
	}
	if got := getRateLimitKey(req, false, false); got != "" {
		t.Errorf("disabled: got %q", got)
	}
}

func TestGetClientIP(t *testing.T) {
	tests := []struct {
		name       string
		forwarded  string
		realIP     string
		remoteAddr string
		want       string
	}{
		{name: "x-forwarded-for", forwarded: "203.0.113.7, 10.0.0.1", remoteAddr: "10.0.0.2:80", want: "203.0.113.7"},
		{name: "x-real-ip", realIP: "203.0.113.9", remoteAddr: "10.0.0.2:80", want: "203.0.113.9"},
		{name: "remote addr", remoteAddr: "10.0.0.2:80", want: "10.0.0.2"},
		{name: "invalid forwarded falls through", forwarded: "not-an-ip", remoteAddr: "10.0.0.2:80", want: "10.0.0.2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remoteAddr
			if tt.forwarded != "" {
				req.Header.Set("X-Forwarded-For", tt.forwarded)
			}
			if tt.realIP != "" {
				req.Header.Set("X-Real-IP", tt.realIP)
			}
			if got := getClientIP(req); got != tt.want {
				t.Errorf("getClientIP = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestMaskAPIKey(t *testing.T) {
	if got := maskAPIKey("short"); got != "****" {
		t.Errorf("short key: got %q", got)
	}
	if got := maskAPIKey("abcdefghijklmnop"); got != "abcdefgh****" {
		t.Errorf("long key: got %q", got)
	}
}
