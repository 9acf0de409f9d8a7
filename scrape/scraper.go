package scrape

// Scraper is an interface for a remote scraping service that converts web
// pages into markdown content and metadata.
type Scraper interface {
	// ScrapePage fetches a single page in the configured formats.
	ScrapePage(url string) (*Page, error)
	// CrawlSite discovers and scrapes up to limit pages reachable from url,
	// blocking until the remote crawl completes. pollIntervalSec is the delay
	// between successive status checks.
	CrawlSite(url string, limit, pollIntervalSec int) (*CrawlResult, error)
}
