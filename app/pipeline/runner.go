package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/popwire/popwire/app/config"
	"github.com/popwire/popwire/app/scraper"
)

// Runner executes one end-to-end batch: discover the trending articles,
// fetch each one, summarize the batch and deliver the script.
type Runner struct {
	source     Source
	summarizer Summarizer
	deliverer  Deliverer

	articleCount int
	requestDelay time.Duration
}

func NewRunner(siteConfig *config.SiteConfig, source Source, summarizer Summarizer, deliverer Deliverer) *Runner {
	return &Runner{
		source:       source,
		summarizer:   summarizer,
		deliverer:    deliverer,
		articleCount: siteConfig.Scrape.ArticleCount,
		requestDelay: siteConfig.Scrape.GetRequestDelay(),
	}
}

// Run executes the batch once. Scrape failures degrade individual articles
// but never abort the run; discovery, summarization and delivery failures do.
func (r *Runner) Run(ctx context.Context) error {
	refs, err := r.source.Discover(ctx)
	if err != nil {
		return fmt.Errorf("discovery failed: %w", err)
	}

	if len(refs) < r.articleCount {
		slog.Warn("Fewer articles than expected", "expected", r.articleCount, "got", len(refs))
	}

	articles := r.scrapeAll(ctx, refs)

	script, err := r.summarizer.Summarize(ctx, articles)
	if err != nil {
		return fmt.Errorf("summarization failed: %w", err)
	}

	if !r.deliverer.SendScript(script) {
		return fmt.Errorf("delivery failed")
	}

	slog.Info("Batch completed", "articles", len(articles))
	return nil
}

// scrapeAll fetches every reference, pausing between requests but not after
// the last one. The result always has one article per reference.
func (r *Runner) scrapeAll(ctx context.Context, refs []scraper.Reference) []scraper.Article {
	articles := make([]scraper.Article, 0, len(refs))

	for i, ref := range refs {
		articles = append(articles, r.source.Scrape(ctx, ref))

		if i < len(refs)-1 && r.requestDelay > 0 {
			select {
			case <-time.After(r.requestDelay):
			case <-ctx.Done():
				return articles
			}
		}
	}

	return articles
}
