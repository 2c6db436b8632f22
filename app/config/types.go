package config

// SiteConfig represents a complete site profile
type SiteConfig struct {
	Site      SiteInfo       `yaml:"site"`
	Scrape    ScrapeSettings `yaml:"scrape"`
	Selectors Selectors      `yaml:"selectors"`
}

// SiteInfo contains basic information about the target site
type SiteInfo struct {
	Name    string `yaml:"name"`
	BaseURL string `yaml:"base_url"`
	FeedURL string `yaml:"feed_url"` // optional; switches discovery to the site's feed
}

// ScrapeSettings contains scraping limits and pacing
type ScrapeSettings struct {
	ArticleCount       int  `yaml:"article_count"`
	RequestTimeout     int  `yaml:"request_timeout"` // seconds
	RequestDelay       int  `yaml:"request_delay"`   // seconds, between article fetches
	MinParagraphLength int  `yaml:"min_paragraph_length"`
	UseReadability     bool `yaml:"use_readability"`
}

// Selectors holds the ordered selector cascades for discovery and content extraction
type Selectors struct {
	PopularList      string   `yaml:"popular_list"`
	PopularFallbacks []string `yaml:"popular_fallbacks"`
	ArticleTitle     string   `yaml:"article_title"`
	ContentRegion    string   `yaml:"content_region"`
	ContentFallbacks []string `yaml:"content_fallbacks"`
}
