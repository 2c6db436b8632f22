package pipeline

import (
	"context"

	"github.com/popwire/popwire/app/scraper"
)

// Source discovers trending article references and fetches their content.
type Source interface {
	Discover(ctx context.Context) ([]scraper.Reference, error)
	Scrape(ctx context.Context, ref scraper.Reference) scraper.Article
}

// Summarizer turns a batch of articles into a single narrated script.
type Summarizer interface {
	Summarize(ctx context.Context, articles []scraper.Article) (string, error)
}

// Deliverer sends the finished script, or a failure notification, to the
// configured destination.
type Deliverer interface {
	SendScript(script string) bool
	SendError(reason string) bool
}
