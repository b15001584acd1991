package linkaudit

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/qualink/page-audit/internal/pagedoc"
)

const probeUserAgent = "PageAuditBot/1.0"

// Outcome is the result of probing a single link. Responded is false when the
// request produced no HTTP response at all (DNS failure, timeout, refused
// connection); StatusCode and FinalURL are only meaningful when it is true.
type Outcome struct {
	StatusCode int
	FinalURL   string
	Responded  bool
}

// Prober performs a single point-in-time liveness check against a URL.
type Prober interface {
	Probe(ctx context.Context, link string) Outcome
}

// HTTPProber probes links with a shared HTTP client that follows redirects.
type HTTPProber struct {
	client *http.Client
}

// NewHTTPProber returns a prober whose transport blocks private/reserved
// address ranges. Each probe is a single GET bounded by timeout; there are
// no retries. The concurrency parameter sizes the connection pool to match
// the collector's worker pool.
func NewHTTPProber(timeout time.Duration, concurrency int) *HTTPProber {
	return newHTTPProber(timeout, &http.Transport{
		DialContext:         pagedoc.SafeDialer().DialContext,
		MaxConnsPerHost:     concurrency,
		MaxIdleConnsPerHost: concurrency,
		IdleConnTimeout:     90 * time.Second,
	})
}

func newHTTPProber(timeout time.Duration, transport http.RoundTripper) *HTTPProber {
	return &HTTPProber{
		client: &http.Client{
			Timeout:   timeout,
			Transport: transport,
		},
	}
}

// Probe issues a GET to link, following redirects, and reports the final
// status and URL. Any response, including 4xx/5xx, is a successful probe of
// an unhealthy link; only the complete absence of a response (DNS failure,
// timeout, refused connection) yields an unresponded outcome.
func (p *HTTPProber) Probe(ctx context.Context, link string) Outcome {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, link, nil)
	if err != nil {
		return Outcome{}
	}
	req.Header.Set("User-Agent", probeUserAgent)

	resp, err := p.client.Do(req)
	if err != nil {
		// A broken redirect chain still carries the last response; treat it
		// like any other answered probe.
		if resp != nil {
			defer func() { _ = resp.Body.Close() }()
			return Outcome{
				StatusCode: resp.StatusCode,
				FinalURL:   resp.Request.URL.String(),
				Responded:  true,
			}
		}
		return Outcome{}
	}
	defer func() { _ = resp.Body.Close() }()

	// Drain a bounded amount so the connection can be reused by the pool.
	const maxDrain = 64 << 10
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxDrain))

	return Outcome{
		StatusCode: resp.StatusCode,
		FinalURL:   resp.Request.URL.String(),
		Responded:  true,
	}
}
