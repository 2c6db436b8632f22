package scraper

import (
	"bytes"
	"fmt"
	"log/slog"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/popwire/popwire/app/config"
)

// Discoverer locates the "popular articles" list in homepage markup and
// turns it into an ordered set of references.
type Discoverer struct {
	selectors config.Selectors
	baseURL   string
	limit     int
}

func NewDiscoverer(siteConfig *config.SiteConfig) *Discoverer {
	return &Discoverer{
		selectors: siteConfig.Selectors,
		baseURL:   siteConfig.Site.BaseURL,
		limit:     siteConfig.Scrape.ArticleCount,
	}
}

// Run parses homepage markup and returns at most the configured number of
// article references in display order. Candidates without a usable title
// or link are skipped; only the initially capped set is inspected, so the
// result may legitimately be shorter than the cap. Zero references is an
// error.
func (d *Discoverer) Run(data []byte) ([]Reference, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to parse homepage HTML: %w", err)
	}

	candidates := d.findCandidates(doc)
	slog.Debug("Found article elements", "count", candidates.Length())

	var refs []Reference
	candidates.Each(func(_ int, el *goquery.Selection) {
		if ref, ok := d.extractReference(el); ok {
			refs = append(refs, ref)
			slog.Debug("Found article", "title", ref.Title, "url", ref.URL)
		}
	})

	if len(refs) == 0 {
		return nil, fmt.Errorf("no articles found on the page")
	}

	return refs, nil
}

// findCandidates resolves the popular-list container cascade: the known
// list marker, then the popular/trending fallback selectors, then any
// article elements document-wide.
func (d *Discoverer) findCandidates(doc *goquery.Document) *goquery.Selection {
	list := doc.Find(d.selectors.PopularList).First()
	if list.Length() == 0 {
		if found := firstMatch(doc.Selection, d.selectors.PopularFallbacks); found != nil {
			list = found
		}
	}

	if list.Length() == 0 {
		slog.Warn("Could not find popular section, falling back to article elements")
		return capSelection(doc.Find("article"), d.limit)
	}

	return capSelection(list.Find("li"), d.limit)
}

func (d *Discoverer) extractReference(el *goquery.Selection) (Reference, bool) {
	title := el.Find(d.selectors.ArticleTitle).First()
	if title.Length() == 0 {
		title = el.Find("h2, h3, h4, h5, h6").First()
	}
	if title.Length() == 0 {
		title = el.Find("a").First()
	}
	if title.Length() == 0 {
		return Reference{}, false
	}

	text := strings.TrimSpace(title.Text())
	if text == "" {
		return Reference{}, false
	}

	link := el.Find("a[href]").First()
	if link.Length() == 0 {
		if goquery.NodeName(title) != "a" {
			return Reference{}, false
		}
		link = title
	}

	href, ok := link.Attr("href")
	if !ok || href == "" {
		return Reference{}, false
	}

	return Reference{Title: text, URL: ResolveURL(d.baseURL, href)}, true
}
