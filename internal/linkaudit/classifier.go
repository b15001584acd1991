package linkaudit

import (
	"net/http"
	"slices"
	"strings"

	"github.com/qualink/page-audit/internal/model"
)

// Anchor is the raw material read from a single anchor element.
type Anchor struct {
	Href       string
	Text       string
	AriaLabel  string
	Target     string
	ClassNames string
}

// Severity tiers and divergence markers surfaced in LinkRecord.
const (
	colorGreen  = "green"
	colorYellow = "yellow"
	colorOrange = "orange"
	colorRed    = "red"
	colorGray   = "gray"

	colorOriginalDiverged   = "blue"
	colorRedirectedDiverged = "purple"
)

// roleTokens are checked in priority order against the anchor's class list;
// first match wins.
var roleTokens = []string{"cta", "button", "link"}

// Classify turns an anchor and its probe outcome into the final record.
// outcome is nil for anchors with no destination; those carry a non-erroring
// 200/green default and are never probed. A probe that produced no response
// at all is reported as unreachable (status 0, gray) so a dead link is never
// mistaken for a healthy one.
//
// Classify is a pure function: same inputs always produce the same record.
func Classify(a Anchor, outcome *Outcome) model.LinkRecord {
	rec := model.LinkRecord{
		LinkType:   roleFor(a.ClassNames),
		LinkText:   a.Text,
		AriaLabel:  a.AriaLabel,
		URL:        a.Href,
		Target:     a.Target,
		StatusCode: http.StatusOK,
	}

	if outcome != nil {
		if !outcome.Responded {
			rec.StatusCode = 0
			rec.StatusColor = colorGray
			return rec
		}

		rec.StatusCode = outcome.StatusCode
		rec.RedirectedURL = outcome.FinalURL
		if a.Href != outcome.FinalURL {
			rec.OriginalURLColor = colorOriginalDiverged
			rec.RedirectedURLColor = colorRedirectedDiverged
		}
	}

	rec.StatusColor = severityFor(rec.StatusCode)
	return rec
}

func roleFor(classNames string) string {
	classes := strings.Fields(classNames)
	for _, role := range roleTokens {
		if slices.Contains(classes, role) {
			return role
		}
	}
	return "unknown"
}

func severityFor(statusCode int) string {
	switch {
	case statusCode >= 500:
		return colorRed
	case statusCode >= 400:
		return colorOrange
	case statusCode >= 300:
		return colorYellow
	default:
		return colorGreen
	}
}
