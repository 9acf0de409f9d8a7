package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/mendableai/firecrawl-go"
	"github.com/pkg/errors"

	"github.com/envisean/squad/report"
	"github.com/envisean/squad/scrape"
)

type fakeScraper struct {
	page      *scrape.Page
	scrapeErr error

	result   *scrape.CrawlResult
	crawlErr error

	crawlCalled bool
}

func (f *fakeScraper) ScrapePage(url string) (*scrape.Page, error) {
	if f.scrapeErr != nil {
		return nil, f.scrapeErr
	}
	return f.page, nil
}

func (f *fakeScraper) CrawlSite(url string, limit, pollIntervalSec int) (*scrape.CrawlResult, error) {
	f.crawlCalled = true
	if f.crawlErr != nil {
		return nil, f.crawlErr
	}
	return f.result, nil
}

func strPtr(s string) *string {
	return &s
}

func TestDemoSequence(t *testing.T) {
	scraper := &fakeScraper{
		page: scrape.NewPage(&firecrawl.FirecrawlDocument{
			Markdown: "# Concreit\nBuild wealth with real estate.",
			Metadata: &firecrawl.FirecrawlDocumentMetadata{
				Title: strPtr("Concreit"),
			},
		}),
		result: scrape.NewCrawlResult(&firecrawl.CrawlStatusResponse{
			Status:      "completed",
			Total:       10,
			Completed:   10,
			CreditsUsed: 5,
			Data: []*firecrawl.FirecrawlDocument{
				{
					Markdown: "Welcome...",
					Metadata: &firecrawl.FirecrawlDocumentMetadata{
						SourceURL: strPtr("https://concreit.com"),
						Title:     strPtr("Home"),
					},
				},
			},
		}),
	}

	var buf bytes.Buffer
	if err := demo(scraper, report.NewReporter(&buf)); err != nil {
		t.Fatal(err)
	}

	out := buf.String()
	for _, line := range []string{
		"Scraping https://concreit.com...",
		"Title: Concreit",
		"Starting crawl of https://concreit.com...",
		"Total Pages: 10",
		"Completed Pages: 10",
		"Credits Used: 5",
		"URL: https://concreit.com",
		"Title: Home",
	} {
		if !strings.Contains(out, line) {
			t.Errorf("output missing %q:\n%s", line, out)
		}
	}
}

func TestDemoScrapeFailureAbortsCrawl(t *testing.T) {
	scraper := &fakeScraper{
		scrapeErr: errors.New("401: invalid API key"),
	}

	var buf bytes.Buffer
	err := demo(scraper, report.NewReporter(&buf))
	if err == nil {
		t.Fatal("expected an error")
	}

	if scraper.crawlCalled {
		t.Error("crawl ran after a failed scrape")
	}

	if strings.Contains(buf.String(), "Scrape Results:") {
		t.Errorf("results printed after a failed scrape:\n%s", buf.String())
	}
}

func TestDemoCrawlFailure(t *testing.T) {
	scraper := &fakeScraper{
		page:     scrape.NewPage(&firecrawl.FirecrawlDocument{Markdown: "ok"}),
		crawlErr: errors.New("crawl timed out"),
	}

	var buf bytes.Buffer
	err := demo(scraper, report.NewReporter(&buf))
	if err == nil {
		t.Fatal("expected an error")
	}

	out := buf.String()
	if !strings.Contains(out, "Scrape Results:") {
		t.Errorf("expected scrape results before the crawl failure:\n%s", out)
	}

	if strings.Contains(out, "Crawl Results:") {
		t.Errorf("crawl results printed after a failure:\n%s", out)
	}
}
