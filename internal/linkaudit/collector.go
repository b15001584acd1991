package linkaudit

import (
	"context"
	"strings"
	"sync"

	"github.com/PuerkitoBio/goquery"

	"github.com/qualink/page-audit/internal/model"
	"github.com/qualink/page-audit/internal/pagedoc"
)

const maxAnchors = 1000

// Collector fans probes out over a bounded worker pool and assembles link
// records in document order.
type Collector struct {
	prober      Prober
	concurrency int
}

// NewCollector returns a Collector that runs at most concurrency probes at
// once.
func NewCollector(prober Prober, concurrency int) *Collector {
	return &Collector{
		prober:      prober,
		concurrency: concurrency,
	}
}

// Anchors reads every anchor element under the document root, in document
// order.
func Anchors(doc *pagedoc.Document) []Anchor {
	var anchors []Anchor
	doc.Root.Find("a").Each(func(_ int, s *goquery.Selection) {
		anchors = append(anchors, Anchor{
			Href:       s.AttrOr("href", ""),
			Text:       strings.TrimSpace(s.Text()),
			AriaLabel:  s.AttrOr("aria-label", ""),
			Target:     s.AttrOr("target", ""),
			ClassNames: s.AttrOr("class", ""),
		})
	})
	return anchors
}

// Collect probes and classifies every anchor on the page. Anchors without an
// href are classified directly and never probed. Results keep document order
// regardless of probe completion order, and one unreachable link degrades
// only its own record; the batch always yields one record per anchor.
// Processes at most 1000 anchors.
func (c *Collector) Collect(ctx context.Context, doc *pagedoc.Document) []model.LinkRecord {
	anchors := Anchors(doc)
	if len(anchors) > maxAnchors {
		anchors = anchors[:maxAnchors]
	}

	records := make([]model.LinkRecord, len(anchors))
	if len(anchors) == 0 {
		return records
	}

	type job struct {
		index  int
		anchor Anchor
	}
	jobs := make(chan job, len(anchors))

	numWorkers := min(len(anchors), c.concurrency)

	var wg sync.WaitGroup
	for range numWorkers {
		wg.Go(func() {
			for j := range jobs {
				var outcome *Outcome
				if j.anchor.Href != "" {
					o := c.prober.Probe(ctx, j.anchor.Href)
					outcome = &o
				}
				// Workers write to disjoint indices, so the slice needs no lock.
				records[j.index] = Classify(j.anchor, outcome)
			}
		})
	}

	for i, a := range anchors {
		jobs <- job{index: i, anchor: a}
	}
	close(jobs)

	wg.Wait()
	return records
}
