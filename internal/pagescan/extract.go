// Package pagescan extracts simple, single-pass facts from an already-parsed
// page document: images and their alt-text coverage, meta tags, heading
// hierarchy, and video-player metadata.
package pagescan

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/qualink/page-audit/internal/model"
	"github.com/qualink/page-audit/internal/pagedoc"
)

// Images reports every img element with its alt-text coverage.
func Images(doc *pagedoc.Document) []model.ImageRecord {
	images := make([]model.ImageRecord, 0)
	doc.Root.Find("img").Each(func(_ int, s *goquery.Selection) {
		alt, hasAlt := s.Attr("alt")
		images = append(images, model.ImageRecord{
			Src:    s.AttrOr("src", ""),
			Alt:    alt,
			HasAlt: hasAlt && strings.TrimSpace(alt) != "",
		})
	})
	return images
}

// MetaTags reports every meta tag that carries a name (or property) and
// content pair.
func MetaTags(doc *pagedoc.Document) []model.MetaTagRecord {
	meta := make([]model.MetaTagRecord, 0)
	doc.Root.Find("meta").Each(func(_ int, s *goquery.Selection) {
		name := s.AttrOr("name", "")
		if name == "" {
			name = s.AttrOr("property", "")
		}
		content := s.AttrOr("content", "")
		if name == "" || content == "" {
			return
		}
		meta = append(meta, model.MetaTagRecord{Name: name, Content: content})
	})
	return meta
}

// Headings reports h1-h6 elements in document order so callers can audit the
// heading hierarchy.
func Headings(doc *pagedoc.Document) []model.HeadingRecord {
	headings := make([]model.HeadingRecord, 0)
	doc.Root.Find("h1, h2, h3, h4, h5, h6").Each(func(_ int, s *goquery.Selection) {
		tag := goquery.NodeName(s)
		headings = append(headings, model.HeadingRecord{
			Level: int(tag[1] - '0'),
			Text:  strings.TrimSpace(s.Text()),
		})
	})
	return headings
}

// Videos reports native video elements and known iframe embeds, in document
// order.
func Videos(doc *pagedoc.Document) []model.VideoRecord {
	videos := make([]model.VideoRecord, 0)
	doc.Root.Find("video, iframe").Each(func(_ int, s *goquery.Selection) {
		switch goquery.NodeName(s) {
		case "video":
			videos = append(videos, videoElement(s))
		case "iframe":
			if v, ok := embeddedPlayer(s); ok {
				videos = append(videos, v)
			}
		}
	})
	return videos
}

func videoElement(s *goquery.Selection) model.VideoRecord {
	src := s.AttrOr("src", "")
	if src == "" {
		// Sources may live on child <source> elements instead.
		src = s.Find("source").First().AttrOr("src", "")
	}

	_, controls := s.Attr("controls")
	_, autoplay := s.Attr("autoplay")
	_, muted := s.Attr("muted")

	return model.VideoRecord{
		Src:      src,
		Poster:   s.AttrOr("poster", ""),
		Provider: "html5",
		Controls: controls,
		Autoplay: autoplay,
		Muted:    muted,
	}
}

// embedProviders maps URL fragments of known hosted players to provider names.
var embedProviders = map[string]string{
	"youtube.com/embed":          "youtube",
	"youtube-nocookie.com/embed": "youtube",
	"player.vimeo.com":           "vimeo",
}

func embeddedPlayer(s *goquery.Selection) (model.VideoRecord, bool) {
	src := s.AttrOr("src", "")
	for fragment, provider := range embedProviders {
		if strings.Contains(src, fragment) {
			return model.VideoRecord{Src: src, Provider: provider}, true
		}
	}
	return model.VideoRecord{}, false
}
