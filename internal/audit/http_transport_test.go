package audit

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/qualink/page-audit/internal/model"
	"github.com/qualink/page-audit/internal/platform/errs"
)

// mockProvider implements PageAuditProvider for testing.
type mockProvider struct {
	links  []model.LinkRecord
	report *model.PageReport
	err    error
}

func (m *mockProvider) Links(_ context.Context, _ string, _ bool) ([]model.LinkRecord, error) {
	return m.links, m.err
}

func (m *mockProvider) Images(_ context.Context, _ string, _ bool) ([]model.ImageRecord, error) {
	return nil, m.err
}

func (m *mockProvider) Meta(_ context.Context, _ string, _ bool) ([]model.MetaTagRecord, error) {
	return nil, m.err
}

func (m *mockProvider) Headings(_ context.Context, _ string, _ bool) ([]model.HeadingRecord, error) {
	return nil, m.err
}

func (m *mockProvider) Videos(_ context.Context, _ string, _ bool) ([]model.VideoRecord, error) {
	return nil, m.err
}

func (m *mockProvider) Audit(_ context.Context, _ string, _ bool) (*model.PageReport, error) {
	return m.report, m.err
}

func newTestMux(provider PageAuditProvider) *http.ServeMux {
	logger := slog.Default()
	svc := NewService(provider, logger)
	transport := NewTransport(svc, logger)
	mux := http.NewServeMux()
	transport.RegisterRoutes(mux)
	return mux
}

func postJSON(mux *http.ServeMux, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

func TestHandleLinks_Success(t *testing.T) {
	provider := &mockProvider{
		links: []model.LinkRecord{
			{
				LinkType:      "cta",
				LinkText:      "Go",
				URL:           "https://x/ok",
				RedirectedURL: "https://x/ok",
				StatusCode:    200,
				StatusColor:   "green",
			},
		},
	}
	mux := newTestMux(provider)

	rec := postJSON(mux, "/links", `{"url": "https://example.com", "includeUhf": true}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	var resp struct {
		Links []model.LinkRecord `json:"links"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(resp.Links) != 1 {
		t.Fatalf("len(links) = %d, want 1", len(resp.Links))
	}
	if resp.Links[0].LinkType != "cta" || resp.Links[0].StatusColor != "green" {
		t.Errorf("links[0] = %+v", resp.Links[0])
	}
}

func TestHandleAudit_Success(t *testing.T) {
	provider := &mockProvider{
		report: &model.PageReport{
			URL:   "https://example.com",
			Title: "Example",
			Links: []model.LinkRecord{},
		},
	}
	mux := newTestMux(provider)

	rec := postJSON(mux, "/audit", `{"url": "https://example.com"}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	var report model.PageReport
	if err := json.NewDecoder(rec.Body).Decode(&report); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if report.Title != "Example" {
		t.Errorf("Title = %q, want %q", report.Title, "Example")
	}
}

func TestHandle_EmptyURL(t *testing.T) {
	mux := newTestMux(&mockProvider{})

	for _, path := range []string{"/links", "/images", "/meta", "/headings", "/videos", "/audit"} {
		rec := postJSON(mux, path, `{"url": ""}`)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("%s: status = %d, want %d", path, rec.Code, http.StatusBadRequest)
		}
	}
}

func TestHandle_MalformedJSON(t *testing.T) {
	mux := newTestMux(&mockProvider{})

	rec := postJSON(mux, "/links", `{invalid json`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestHandle_ErrorMapping(t *testing.T) {
	tests := []struct {
		name     string
		err      *errs.AppError
		expected int
	}{
		{
			name:     "invalid input",
			err:      &errs.AppError{Kind: errs.InvalidInput, Message: "bad url"},
			expected: http.StatusBadRequest,
		},
		{
			name:     "document unavailable",
			err:      &errs.AppError{Kind: errs.DocumentUnavailable, Message: "cannot reach"},
			expected: http.StatusInternalServerError,
		},
		{
			name:     "timeout",
			err:      &errs.AppError{Kind: errs.Timeout, Message: "too slow", Cause: context.DeadlineExceeded},
			expected: http.StatusGatewayTimeout,
		},
		{
			name:     "parsing failed",
			err:      &errs.AppError{Kind: errs.ParsingFailed, Message: "bad html"},
			expected: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mux := newTestMux(&mockProvider{err: tt.err})

			rec := postJSON(mux, "/links", `{"url": "https://example.com"}`)
			if rec.Code != tt.expected {
				t.Errorf("status = %d, want %d", rec.Code, tt.expected)
			}

			var body model.ErrorResponse
			if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
				t.Fatalf("failed to decode error body: %v", err)
			}
			if body.Message != tt.err.Message {
				t.Errorf("message = %q, want %q", body.Message, tt.err.Message)
			}
		})
	}
}

func TestHandle_WrongMethod(t *testing.T) {
	mux := newTestMux(&mockProvider{})

	req := httptest.NewRequest(http.MethodGet, "/links", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	// ServeMux returns 405 for method mismatch.
	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusMethodNotAllowed)
	}
}
