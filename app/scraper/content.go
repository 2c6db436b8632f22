package scraper

import (
	"bytes"
	"fmt"
	"log/slog"
	"strings"

	"github.com/PuerkitoBio/goquery"
	readability "github.com/go-shiori/go-readability"
	"github.com/popwire/popwire/app/config"
)

// Elements stripped before any text is read, so boilerplate and executable
// content never pollute the output.
const strippedElements = "script, style, noscript, iframe, nav, footer, header"

// ContentExtractor reduces article markup to a flat block of body text.
type ContentExtractor struct {
	selectors      config.Selectors
	minLength      int
	useReadability bool
}

func NewContentExtractor(siteConfig *config.SiteConfig) *ContentExtractor {
	return &ContentExtractor{
		selectors:      siteConfig.Selectors,
		minLength:      siteConfig.Scrape.MinParagraphLength,
		useReadability: siteConfig.Scrape.UseReadability,
	}
}

// Run extracts the article body: paragraph text from the resolved content
// region, noise-filtered and space-joined in document order. A cascade miss
// yields an empty string, not an error.
func (e *ContentExtractor) Run(data []byte) (string, error) {
	if len(data) == 0 {
		return "", fmt.Errorf("HTML data is empty")
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("failed to parse article HTML: %w", err)
	}

	doc.Find(strippedElements).Remove()

	scope := doc.Find(e.selectors.ContentRegion).First()
	if scope.Length() == 0 {
		if found := firstMatch(doc.Selection, e.selectors.ContentFallbacks); found != nil {
			scope = found
		} else {
			scope = doc.Selection
		}
	}

	var parts []string
	scope.Find("p").Each(func(_ int, p *goquery.Selection) {
		text := strings.TrimSpace(p.Text())
		if len(text) > e.minLength {
			parts = append(parts, text)
		}
	})

	content := strings.Join(parts, " ")
	if content == "" && e.useReadability {
		content = e.readabilityFallback(data)
	}

	return content, nil
}

// readabilityFallback runs the readability algorithm over the original
// markup when the paragraph cascade produced nothing. Still best-effort:
// a failure falls back to empty content.
func (e *ContentExtractor) readabilityFallback(data []byte) string {
	article, err := readability.FromReader(bytes.NewReader(data), nil)
	if err != nil {
		slog.Debug("Readability fallback failed", "error", err)
		return ""
	}
	return strings.Join(strings.Fields(article.TextContent), " ")
}
