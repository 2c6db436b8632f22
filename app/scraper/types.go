package scraper

// Reference is a discovered article: headline plus absolute URL.
type Reference struct {
	Title string
	URL   string
}

// Article is a scraped article. Content may be empty when extraction
// degraded; downstream consumers treat that as "content not available".
type Article struct {
	Title   string
	URL     string
	Content string
}
