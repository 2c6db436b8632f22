package scraper

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/mmcdole/gofeed"
)

// FeedDiscoverer reads article references from the site's RSS/Atom feed
// instead of scraping homepage markup. Used when the site profile names a
// feed URL.
type FeedDiscoverer struct {
	gofeedParser *gofeed.Parser
	limit        int
}

func NewFeedDiscoverer(limit int) *FeedDiscoverer {
	return &FeedDiscoverer{
		gofeedParser: gofeed.NewParser(),
		limit:        limit,
	}
}

// Run parses feed data and returns up to the configured number of
// references, preserving feed order. Entries without a title or link are
// skipped. An empty result is an error, matching homepage discovery.
func (d *FeedDiscoverer) Run(data []byte) ([]Reference, error) {
	feed, err := d.gofeedParser.Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to parse feed: %w", err)
	}

	var refs []Reference
	for _, item := range feed.Items {
		if len(refs) == d.limit {
			break
		}
		title := strings.TrimSpace(item.Title)
		if title == "" || item.Link == "" {
			continue
		}
		refs = append(refs, Reference{Title: title, URL: item.Link})
	}

	if len(refs) == 0 {
		return nil, fmt.Errorf("no articles found in feed")
	}

	return refs, nil
}
