package service

import (
	"net/url"
	"strings"
	"unicode"

	"github.com/PuerkitoBio/goquery"

	"seo_url_checker/internal/domain/models"
)

// Extractor turns fetched HTML into the SEO-relevant page signals. The
// contract is tolerant parsing: malformed markup never fails, it degrades to
// absent signals.
type Extractor interface {
	Extract(body string, base *url.URL) models.PageSignals
}

// SignalExtractor extracts page signals using CSS selectors.
type SignalExtractor struct{}

func NewSignalExtractor() *SignalExtractor { return &SignalExtractor{} }

// Extract parses the body and pulls out the canonical href, robots
// directives, title, and meta description. Relative canonical hrefs are
// resolved against base. Fields that are missing, or empty after trimming,
// stay absent.
func (e *SignalExtractor) Extract(body string, base *url.URL) models.PageSignals {
	var signals models.PageSignals

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	if err != nil {
		// Parse anomaly: no signals rather than a hard failure.
		return signals
	}

	if href := strings.TrimSpace(doc.Find(`link[rel="canonical"]`).First().AttrOr("href", "")); href != "" {
		resolved := href
		if base != nil {
			if abs, err := base.Parse(href); err == nil {
				resolved = abs.String()
			}
		}
		signals.Canonical = &resolved
	}

	if robots := doc.Find(`meta[name="robots"]`).First(); robots.Length() > 0 {
		content, _ := robots.Attr("content")
		signals.Robots = splitDirectives(content)
	}

	if title := strings.TrimSpace(doc.Find("title").First().Text()); title != "" {
		signals.Title = &title
	}

	if desc := strings.TrimSpace(doc.Find(`meta[name="description"]`).First().AttrOr("content", "")); desc != "" {
		signals.Description = &desc
	}

	return signals
}

// splitDirectives tokenizes a robots content value on commas and whitespace,
// lower-casing every token. The returned slice is non-nil even when empty: a
// present-but-empty robots meta is not the same as an absent one.
func splitDirectives(content string) []string {
	fields := strings.FieldsFunc(strings.ToLower(content), func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})

	directives := make([]string, 0, len(fields))
	for _, f := range fields {
		if f != "" {
			directives = append(directives, f)
		}
	}
	return directives
}
