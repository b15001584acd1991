package audit

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/qualink/page-audit/internal/model"
	"github.com/qualink/page-audit/internal/platform/errs"
)

const auditTimeout = 60 * time.Second

var errURLRequired = errors.New("the \"url\" field is required")

// Transport handles HTTP requests for page audits.
type Transport struct {
	service *Service
	logger  *slog.Logger
}

// NewTransport creates an HTTP transport backed by the given service.
func NewTransport(service *Service, logger *slog.Logger) *Transport {
	return &Transport{service: service, logger: logger}
}

// RegisterRoutes attaches the transport's handlers to the given mux. Every
// endpoint accepts the same request body and reports one category of page
// facts; /audit returns them all.
func (t *Transport) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /links", t.handle(func(ctx context.Context, req auditRequest) (any, error) {
		links, err := t.service.Links(ctx, req.URL, req.IncludeUhf)
		return linksResponse{Links: links}, err
	}))
	mux.HandleFunc("POST /images", t.handle(func(ctx context.Context, req auditRequest) (any, error) {
		images, err := t.service.Images(ctx, req.URL, req.IncludeUhf)
		return imagesResponse{Images: images}, err
	}))
	mux.HandleFunc("POST /meta", t.handle(func(ctx context.Context, req auditRequest) (any, error) {
		meta, err := t.service.Meta(ctx, req.URL, req.IncludeUhf)
		return metaResponse{Meta: meta}, err
	}))
	mux.HandleFunc("POST /headings", t.handle(func(ctx context.Context, req auditRequest) (any, error) {
		headings, err := t.service.Headings(ctx, req.URL, req.IncludeUhf)
		return headingsResponse{Headings: headings}, err
	}))
	mux.HandleFunc("POST /videos", t.handle(func(ctx context.Context, req auditRequest) (any, error) {
		videos, err := t.service.Videos(ctx, req.URL, req.IncludeUhf)
		return videosResponse{Videos: videos}, err
	}))
	mux.HandleFunc("POST /audit", t.handle(func(ctx context.Context, req auditRequest) (any, error) {
		report, err := t.service.Audit(ctx, req.URL, req.IncludeUhf)
		if err != nil {
			return nil, err
		}
		return report, nil
	}))
}

type auditRequest struct {
	URL        string `json:"url"`
	IncludeUhf bool   `json:"includeUhf"`
}

func (r auditRequest) validate() error {
	if r.URL == "" {
		return errURLRequired
	}
	return nil
}

type linksResponse struct {
	Links []model.LinkRecord `json:"links"`
}

type imagesResponse struct {
	Images []model.ImageRecord `json:"images"`
}

type metaResponse struct {
	Meta []model.MetaTagRecord `json:"meta"`
}

type headingsResponse struct {
	Headings []model.HeadingRecord `json:"headings"`
}

type videosResponse struct {
	Videos []model.VideoRecord `json:"videos"`
}

func (t *Transport) handle(collect func(ctx context.Context, req auditRequest) (any, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const maxRequestBody = 1 << 20 // 1 MB
		r.Body = http.MaxBytesReader(w, r.Body, maxRequestBody)

		var req auditRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.renderError(w, http.StatusBadRequest, "Invalid request body. Please send a JSON object with a \"url\" field.")
			return
		}

		if err := req.validate(); err != nil {
			t.renderError(w, http.StatusBadRequest, err.Error())
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), auditTimeout)
		defer cancel()

		result, err := collect(ctx, req)
		if err != nil {
			t.handleServiceError(w, err)
			return
		}

		t.renderJSON(w, http.StatusOK, result)
	}
}

func (t *Transport) handleServiceError(w http.ResponseWriter, err error) {
	var appErr *errs.AppError
	if errors.As(err, &appErr) {
		status := http.StatusInternalServerError
		switch appErr.Kind {
		case errs.InvalidInput:
			status = http.StatusBadRequest
		case errs.Timeout:
			status = http.StatusGatewayTimeout
		case errs.DocumentUnavailable, errs.ParsingFailed, errs.Unknown:
			// 500 Internal Server Error
		}
		t.renderError(w, status, appErr.Message)
		return
	}

	t.renderError(w, http.StatusInternalServerError, "An unexpected error occurred.")
}

func (t *Transport) renderJSON(w http.ResponseWriter, status int, data any) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(data); err != nil {
		t.logger.Error("failed to encode response", "error", err)
		http.Error(w, `{"error":"Internal Server Error"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

func (t *Transport) renderError(w http.ResponseWriter, status int, message string) {
	t.renderJSON(w, status, model.ErrorResponse{
		Error:      http.StatusText(status),
		StatusCode: status,
		Message:    message,
	})
}
