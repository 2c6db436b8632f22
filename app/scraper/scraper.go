package scraper

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/popwire/popwire/app/config"
)

// Scraper ties fetching, discovery and content extraction together for a
// single site profile.
type Scraper struct {
	client     *Client
	discoverer *Discoverer
	feed       *FeedDiscoverer
	extractor  *ContentExtractor
	site       config.SiteInfo
}

func New(siteConfig *config.SiteConfig, userAgent string) *Scraper {
	return &Scraper{
		client:     NewClient(siteConfig.Scrape.GetRequestTimeout(), userAgent),
		discoverer: NewDiscoverer(siteConfig),
		feed:       NewFeedDiscoverer(siteConfig.Scrape.ArticleCount),
		extractor:  NewContentExtractor(siteConfig),
		site:       siteConfig.Site,
	}
}

// Discover fetches the configured source and returns the popular article
// references. This is the one fetch whose failure is fatal for the run.
func (s *Scraper) Discover(ctx context.Context) ([]Reference, error) {
	if s.site.FeedURL != "" {
		slog.Info("Fetching popular articles from feed", "url", s.site.FeedURL)
		data, err := s.client.Fetch(ctx, s.site.FeedURL)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch feed: %w", err)
		}
		return s.feed.Run(data)
	}

	homepage := s.site.BaseURL + "/"
	slog.Info("Fetching popular articles", "url", homepage)
	data, err := s.client.Fetch(ctx, homepage)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch homepage: %w", err)
	}
	return s.discoverer.Run(data)
}

// Scrape fetches one article page and extracts its body text. Failures
// degrade to an empty-content article instead of aborting the batch.
func (s *Scraper) Scrape(ctx context.Context, ref Reference) Article {
	article := Article{Title: ref.Title, URL: ref.URL}

	data, err := s.client.Fetch(ctx, ref.URL)
	if err != nil {
		slog.Error("Failed to fetch article", "url", ref.URL, "error", err)
		return article
	}

	content, err := s.extractor.Run(data)
	if err != nil {
		slog.Error("Failed to extract content", "url", ref.URL, "error", err)
		return article
	}
	if content == "" {
		slog.Warn("No content extracted", "url", ref.URL)
	}

	article.Content = content
	return article
}
