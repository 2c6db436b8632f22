package scraper

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// firstMatch returns the first element matched by the ordered candidate
// selectors, or nil when none match. Discovery and content extraction share
// this cascade so the two call sites cannot drift.
func firstMatch(scope *goquery.Selection, selectors []string) *goquery.Selection {
	for _, sel := range selectors {
		if found := scope.Find(sel).First(); found.Length() > 0 {
			return found
		}
	}
	return nil
}

// capSelection limits a selection to its first n elements, preserving
// document order.
func capSelection(sel *goquery.Selection, n int) *goquery.Selection {
	if n > 0 && sel.Length() > n {
		return sel.Slice(0, n)
	}
	return sel
}

// ResolveURL converts a scraped href into an absolute URL against the
// site origin. Hrefs that already carry a scheme pass through unchanged.
func ResolveURL(origin, href string) string {
	switch {
	case strings.HasPrefix(href, "/"):
		return origin + href
	case strings.HasPrefix(href, "./"):
		return origin + href[1:]
	case !strings.HasPrefix(href, "http"):
		return origin + "/" + href
	default:
		return href
	}
}
