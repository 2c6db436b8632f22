package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Loader handles loading and validation of the site profile
type Loader struct {
	path string
}

// NewLoader creates a new site profile loader
func NewLoader(path string) *Loader {
	return &Loader{path: path}
}

// Load reads the site profile from disk. A missing file is not an error:
// the built-in Bloomberg Technoz profile is returned instead.
func (l *Loader) Load() (*SiteConfig, error) {
	if _, err := os.Stat(l.path); os.IsNotExist(err) {
		config := &SiteConfig{}
		l.setDefaults(config)
		return config, nil
	}

	data, err := os.ReadFile(l.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read site profile: %w", err)
	}

	var config SiteConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	l.setDefaults(&config)

	if err := l.validate(&config); err != nil {
		return nil, fmt.Errorf("invalid site profile %s: %w", l.path, err)
	}

	return &config, nil
}

// setDefaults applies default values to the site profile
func (l *Loader) setDefaults(config *SiteConfig) {
	if config.Site.Name == "" {
		config.Site.Name = "Bloomberg Technoz"
	}
	if config.Site.BaseURL == "" {
		config.Site.BaseURL = "https://www.bloombergtechnoz.com"
	}
	if config.Scrape.ArticleCount == 0 {
		config.Scrape.ArticleCount = 5
	}
	if config.Scrape.RequestTimeout == 0 {
		config.Scrape.RequestTimeout = 10 // seconds
	}
	if config.Scrape.RequestDelay == 0 {
		config.Scrape.RequestDelay = 2 // seconds
	}
	if config.Scrape.MinParagraphLength == 0 {
		config.Scrape.MinParagraphLength = 20
	}
	if config.Selectors.PopularList == "" {
		config.Selectors.PopularList = "ul.list-terpopuler"
	}
	if len(config.Selectors.PopularFallbacks) == 0 {
		config.Selectors.PopularFallbacks = []string{
			".popular-posts ul",
			".trending ul",
			"[class*='popular'] ul",
			"[class*='trending'] ul",
		}
	}
	if config.Selectors.ArticleTitle == "" {
		config.Selectors.ArticleTitle = "h5.title"
	}
	if config.Selectors.ContentRegion == "" {
		config.Selectors.ContentRegion = "div.detail-in"
	}
	if len(config.Selectors.ContentFallbacks) == 0 {
		config.Selectors.ContentFallbacks = []string{
			".article-content",
			".post-content",
			".entry-content",
			"article",
			".content",
			"main",
		}
	}
}

// validate validates the site profile
func (l *Loader) validate(config *SiteConfig) error {
	if config.Site.BaseURL == "" && config.Site.FeedURL == "" {
		return fmt.Errorf("site base_url or feed_url is required")
	}
	if config.Site.BaseURL != "" && !strings.HasPrefix(config.Site.BaseURL, "http") {
		return fmt.Errorf("site base_url must be an absolute URL: %s", config.Site.BaseURL)
	}
	if config.Scrape.ArticleCount < 0 {
		return fmt.Errorf("article count must be non-negative")
	}
	if config.Scrape.RequestTimeout < 0 {
		return fmt.Errorf("request timeout must be non-negative")
	}
	if config.Scrape.RequestDelay < 0 {
		return fmt.Errorf("request delay must be non-negative")
	}
	if config.Scrape.MinParagraphLength < 0 {
		return fmt.Errorf("minimum paragraph length must be non-negative")
	}
	return nil
}
