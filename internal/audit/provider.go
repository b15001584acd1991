package audit

import (
	"context"

	"github.com/qualink/page-audit/internal/model"
)

// PageAuditProvider defines the contract for any audit engine. Every method
// takes the page URL and a flag saying whether the surrounding template
// chrome is kept or the page is narrowed to its primary content region.
type PageAuditProvider interface {
	Links(ctx context.Context, targetURL string, includeUhf bool) ([]model.LinkRecord, error)
	Images(ctx context.Context, targetURL string, includeUhf bool) ([]model.ImageRecord, error)
	Meta(ctx context.Context, targetURL string, includeUhf bool) ([]model.MetaTagRecord, error)
	Headings(ctx context.Context, targetURL string, includeUhf bool) ([]model.HeadingRecord, error)
	Videos(ctx context.Context, targetURL string, includeUhf bool) ([]model.VideoRecord, error)
	Audit(ctx context.Context, targetURL string, includeUhf bool) (*model.PageReport, error)
}
