package audit

import (
	"context"
	"net/url"

	"github.com/qualink/page-audit/internal/linkaudit"
	"github.com/qualink/page-audit/internal/model"
	"github.com/qualink/page-audit/internal/pagedoc"
	"github.com/qualink/page-audit/internal/pagescan"
	"github.com/qualink/page-audit/internal/platform/errs"
)

const invalidURLMessage = "Invalid URL format. Please ensure you entered a valid URL (e.g., https://example.com)."

// Engine orchestrates page fetching, fact extraction, and link validation.
type Engine struct {
	documents *pagedoc.Provider
	collector *linkaudit.Collector
}

// NewEngine returns an Engine backed by the given document provider and link
// collector.
func NewEngine(documents *pagedoc.Provider, collector *linkaudit.Collector) *Engine {
	return &Engine{
		documents: documents,
		collector: collector,
	}
}

// document validates the target URL and fetches its parsed tree.
func (e *Engine) document(ctx context.Context, targetURL string, includeUhf bool) (*pagedoc.Document, error) {
	parsed, err := url.Parse(targetURL)
	if err != nil {
		return nil, &errs.AppError{
			Kind:    errs.InvalidInput,
			Message: invalidURLMessage,
			Cause:   err,
		}
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return nil, &errs.AppError{
			Kind:    errs.InvalidInput,
			Message: invalidURLMessage,
		}
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, &errs.AppError{
			Kind:    errs.InvalidInput,
			Message: "Only http and https URLs are supported.",
		}
	}

	return e.documents.FetchDocument(ctx, targetURL, includeUhf)
}

// Links probes and classifies every anchor on the page.
func (e *Engine) Links(ctx context.Context, targetURL string, includeUhf bool) ([]model.LinkRecord, error) {
	doc, err := e.document(ctx, targetURL, includeUhf)
	if err != nil {
		return nil, err
	}
	return e.collector.Collect(ctx, doc), nil
}

// Images reports the page's images and their alt-text coverage.
func (e *Engine) Images(ctx context.Context, targetURL string, includeUhf bool) ([]model.ImageRecord, error) {
	doc, err := e.document(ctx, targetURL, includeUhf)
	if err != nil {
		return nil, err
	}
	return pagescan.Images(doc), nil
}

// Meta reports the page's meta tags.
func (e *Engine) Meta(ctx context.Context, targetURL string, includeUhf bool) ([]model.MetaTagRecord, error) {
	doc, err := e.document(ctx, targetURL, includeUhf)
	if err != nil {
		return nil, err
	}
	return pagescan.MetaTags(doc), nil
}

// Headings reports the page's heading hierarchy in document order.
func (e *Engine) Headings(ctx context.Context, targetURL string, includeUhf bool) ([]model.HeadingRecord, error) {
	doc, err := e.document(ctx, targetURL, includeUhf)
	if err != nil {
		return nil, err
	}
	return pagescan.Headings(doc), nil
}

// Videos reports the page's video players.
func (e *Engine) Videos(ctx context.Context, targetURL string, includeUhf bool) ([]model.VideoRecord, error) {
	doc, err := e.document(ctx, targetURL, includeUhf)
	if err != nil {
		return nil, err
	}
	return pagescan.Videos(doc), nil
}

// Audit fetches the page once and assembles the full report.
func (e *Engine) Audit(ctx context.Context, targetURL string, includeUhf bool) (*model.PageReport, error) {
	doc, err := e.document(ctx, targetURL, includeUhf)
	if err != nil {
		return nil, err
	}

	return &model.PageReport{
		URL:      targetURL,
		Title:    doc.Title,
		Links:    e.collector.Collect(ctx, doc),
		Images:   pagescan.Images(doc),
		Meta:     pagescan.MetaTags(doc),
		Headings: pagescan.Headings(doc),
		Videos:   pagescan.Videos(doc),
	}, nil
}
