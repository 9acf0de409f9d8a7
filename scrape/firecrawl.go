package scrape

import (
	"github.com/mendableai/firecrawl-go"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/envisean/squad/log"
)

const FIRECRAWL_API = "https://api.firecrawl.dev"

// FirecrawlScraper is a Scraper backed by the Firecrawl API. Polling, rate
// limiting and page discovery are owned by the API and its client; this type
// only shapes requests and wraps responses.
type FirecrawlScraper struct {
	log zerolog.Logger
	app *firecrawl.FirecrawlApp

	// Single-page scrapes request both renderings; crawls only markdown.
	pageFormats  []string
	crawlFormats []string
}

// NewFirecrawlScraper creates a scraper bound to the given credential. An
// empty apiURL selects the public Firecrawl endpoint. The key is passed
// through unvalidated; a bad key fails on the first remote call.
func NewFirecrawlScraper(key, apiURL string) (*FirecrawlScraper, error) {
	if apiURL == "" {
		apiURL = FIRECRAWL_API
	}

	app, err := firecrawl.NewFirecrawlApp(key, apiURL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create Firecrawl client")
	}

	return &FirecrawlScraper{
		log:          log.NewLogger("scrape"),
		app:          app,
		pageFormats:  []string{"markdown", "html"},
		crawlFormats: []string{"markdown"},
	}, nil
}

// ScrapePage scrapes a single URL and returns the resulting Page.
func (s *FirecrawlScraper) ScrapePage(url string) (*Page, error) {
	s.log.Info().Str("url", url).Msg("Scraping page")

	doc, err := s.app.ScrapeURL(url, &firecrawl.ScrapeParams{
		Formats: s.pageFormats,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to scrape URL %s", url)
	}

	return NewPage(doc), nil
}

// CrawlSite starts a crawl of the given site and blocks until the remote
// crawl completes, checking status every pollIntervalSec seconds. The call
// has no intermediate states visible to the caller.
func (s *FirecrawlScraper) CrawlSite(url string, limit, pollIntervalSec int) (*CrawlResult, error) {
	s.log.Info().Str("url", url).Int("limit", limit).Msg("Starting crawl")

	params := &firecrawl.CrawlParams{
		Limit: &limit,
		ScrapeOptions: firecrawl.ScrapeParams{
			Formats: s.crawlFormats,
		},
	}

	status, err := s.app.CrawlURL(url, params, nil, pollIntervalSec)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to crawl site %s", url)
	}

	result := NewCrawlResult(status)
	s.log.Info().
		Str("status", result.Status()).
		Int("total", result.Total()).
		Int("completed", result.Completed()).
		Msg("Crawl finished")

	return result, nil
}
