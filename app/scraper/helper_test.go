package scraper

import (
	"path/filepath"
	"testing"

	"github.com/popwire/popwire/app/config"
)

// testSiteConfig returns the built-in site profile with its defaults.
func testSiteConfig(t *testing.T) *config.SiteConfig {
	t.Helper()

	cfg, err := config.NewLoader(filepath.Join(t.TempDir(), "site.yml")).Load()
	if err != nil {
		t.Fatal(err)
	}
	return cfg
}
