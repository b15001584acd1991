package audit

import (
	"context"
	"errors"
	"log/slog"

	"github.com/qualink/page-audit/internal/model"
	"github.com/qualink/page-audit/internal/platform/errs"
	"github.com/qualink/page-audit/internal/platform/requestid"
)

// Service wraps a PageAuditProvider and logs every outcome.
type Service struct {
	provider PageAuditProvider
	logger   *slog.Logger
}

// NewService creates a Service backed by the given provider.
func NewService(provider PageAuditProvider, logger *slog.Logger) *Service {
	return &Service{provider: provider, logger: logger}
}

// Links delegates to the provider and logs the outcome.
func (s *Service) Links(ctx context.Context, targetURL string, includeUhf bool) ([]model.LinkRecord, error) {
	records, err := s.provider.Links(ctx, targetURL, includeUhf)
	if err != nil {
		return nil, s.fail(ctx, targetURL, "link audit failed", err)
	}
	s.complete(ctx, targetURL, "link audit complete", "links", len(records))
	return records, nil
}

// Images delegates to the provider and logs the outcome.
func (s *Service) Images(ctx context.Context, targetURL string, includeUhf bool) ([]model.ImageRecord, error) {
	images, err := s.provider.Images(ctx, targetURL, includeUhf)
	if err != nil {
		return nil, s.fail(ctx, targetURL, "image scan failed", err)
	}
	s.complete(ctx, targetURL, "image scan complete", "images", len(images))
	return images, nil
}

// Meta delegates to the provider and logs the outcome.
func (s *Service) Meta(ctx context.Context, targetURL string, includeUhf bool) ([]model.MetaTagRecord, error) {
	meta, err := s.provider.Meta(ctx, targetURL, includeUhf)
	if err != nil {
		return nil, s.fail(ctx, targetURL, "meta scan failed", err)
	}
	s.complete(ctx, targetURL, "meta scan complete", "meta_tags", len(meta))
	return meta, nil
}

// Headings delegates to the provider and logs the outcome.
func (s *Service) Headings(ctx context.Context, targetURL string, includeUhf bool) ([]model.HeadingRecord, error) {
	headings, err := s.provider.Headings(ctx, targetURL, includeUhf)
	if err != nil {
		return nil, s.fail(ctx, targetURL, "heading scan failed", err)
	}
	s.complete(ctx, targetURL, "heading scan complete", "headings", len(headings))
	return headings, nil
}

// Videos delegates to the provider and logs the outcome.
func (s *Service) Videos(ctx context.Context, targetURL string, includeUhf bool) ([]model.VideoRecord, error) {
	videos, err := s.provider.Videos(ctx, targetURL, includeUhf)
	if err != nil {
		return nil, s.fail(ctx, targetURL, "video scan failed", err)
	}
	s.complete(ctx, targetURL, "video scan complete", "videos", len(videos))
	return videos, nil
}

// Audit delegates to the provider and logs the outcome.
func (s *Service) Audit(ctx context.Context, targetURL string, includeUhf bool) (*model.PageReport, error) {
	report, err := s.provider.Audit(ctx, targetURL, includeUhf)
	if err != nil {
		return nil, s.fail(ctx, targetURL, "page audit failed", err)
	}
	s.complete(ctx, targetURL, "page audit complete",
		"title", report.Title,
		"links", len(report.Links),
		"images", len(report.Images),
		"meta_tags", len(report.Meta),
		"headings", len(report.Headings),
		"videos", len(report.Videos),
	)
	return report, nil
}

func (s *Service) fail(ctx context.Context, targetURL, msg string, err error) error {
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		err = &errs.AppError{
			Kind:    errs.Timeout,
			Message: "The audit timed out. The target URL may be slow to respond.",
			Cause:   err,
		}
	}

	attrs := []any{
		"url", targetURL,
		"request_id", requestid.FromContext(ctx),
		"error", err,
	}
	var appErr *errs.AppError
	if errors.As(err, &appErr) && appErr.UpstreamStatus != 0 {
		attrs = append(attrs, "target_status", appErr.UpstreamStatus)
	}
	s.logger.Error(msg, attrs...)
	return err
}

func (s *Service) complete(ctx context.Context, targetURL, msg string, extra ...any) {
	attrs := append([]any{
		"url", targetURL,
		"request_id", requestid.FromContext(ctx),
	}, extra...)
	s.logger.Info(msg, attrs...)
}
