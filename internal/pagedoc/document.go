package pagedoc

import (
	"context"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/qualink/page-audit/internal/platform/errs"
)

// chromeSelector marks the primary content region a page is narrowed to when
// the surrounding template chrome (header, footer, navigation) is excluded.
const chromeSelector = "main"

// Document is a parsed page handed to the extractors. Title is read from the
// full page head before any trimming; Root is the region extractors query.
type Document struct {
	URL   string
	Title string
	Root  *goquery.Selection
}

// Provider fetches a page and hands back a queryable document tree.
type Provider struct {
	fetcher Fetcher
}

// NewProvider returns a Provider backed by the given Fetcher.
func NewProvider(fetcher Fetcher) *Provider {
	return &Provider{fetcher: fetcher}
}

// FetchDocument retrieves targetURL and parses it into a queryable tree.
// When includeChrome is false, the tree is narrowed to the page's primary
// content region; a page without one yields an empty document rather than
// an error.
func (p *Provider) FetchDocument(ctx context.Context, targetURL string, includeChrome bool) (*Document, error) {
	body, statusCode, err := p.fetcher.Fetch(ctx, targetURL)
	if err != nil {
		return nil, &errs.AppError{
			Kind:    errs.DocumentUnavailable,
			Message: "The provided URL could not be reached. Check the address.",
			Cause:   err,
		}
	}
	defer func() { _ = body.Close() }()

	if statusCode >= 400 {
		return nil, &errs.AppError{
			Kind:           errs.DocumentUnavailable,
			UpstreamStatus: statusCode,
			Message:        "The provided URL returned an error status.",
		}
	}

	doc, err := goquery.NewDocumentFromReader(body)
	if err != nil {
		return nil, &errs.AppError{
			Kind:    errs.ParsingFailed,
			Message: "Failed to parse the HTML content.",
			Cause:   err,
		}
	}

	d := &Document{
		URL:   targetURL,
		Title: strings.TrimSpace(doc.Find("head title").First().Text()),
		Root:  doc.Selection,
	}

	if !includeChrome {
		// An empty selection when the region is absent: extractors then see
		// an empty tree, which is the contract, not a failure.
		d.Root = doc.Find(chromeSelector).First()
	}

	return d, nil
}
