package main

import (
	"fmt"
	"io"
	"os"

	"github.com/envisean/squad/config"
	"github.com/envisean/squad/log"
	"github.com/envisean/squad/report"
	"github.com/envisean/squad/scrape"
)

const (
	targetURL        = "https://concreit.com"
	crawlPageLimit   = 10
	pollIntervalSecs = 30
)

func main() {
	if err := run(os.Stdout); err != nil {
		// One generic line for any failure, and a normal exit afterwards.
		fmt.Println("Error:", err)
	}
}

func run(w io.Writer) error {
	logger := log.NewLogger("main")

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger.Info().Str("target", targetURL).Msg("Starting Firecrawl smoke test")

	scraper, err := scrape.NewFirecrawlScraper(cfg.APIKey, cfg.APIURL)
	if err != nil {
		return err
	}

	return demo(scraper, report.NewReporter(w))
}

// demo runs the smoke-test sequence: scrape one page, then crawl the site.
// The first failing step aborts the rest.
func demo(scraper scrape.Scraper, r *report.Reporter) error {
	r.Scraping(targetURL)
	page, err := scraper.ScrapePage(targetURL)
	if err != nil {
		return err
	}
	r.ScrapeResults(page)

	r.Crawling(targetURL)
	result, err := scraper.CrawlSite(targetURL, crawlPageLimit, pollIntervalSecs)
	if err != nil {
		return err
	}
	r.CrawlResults(result)

	return nil
}
