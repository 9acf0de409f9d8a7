// Package report writes the human-readable smoke-test output. The lines are
// unstructured console output, not a machine-parsable format.
package report

import (
	"fmt"
	"io"

	"github.com/envisean/squad/scrape"
)

const (
	// ScrapePreviewChars is the preview length for the single-page scrape.
	ScrapePreviewChars = 500
	// CrawlPreviewChars is the preview length for the first crawled page.
	CrawlPreviewChars = 200
)

// Reporter writes report sections to a single output stream.
type Reporter struct {
	w io.Writer
}

func NewReporter(w io.Writer) *Reporter {
	return &Reporter{w: w}
}

// Scraping announces the single-page scrape.
func (r *Reporter) Scraping(url string) {
	fmt.Fprintf(r.w, "Scraping %s...\n", url)
}

// ScrapeResults writes the title, content length and markdown preview of a
// scraped page. Absent fields print as an empty title, a zero length and an
// empty preview.
func (r *Reporter) ScrapeResults(page *scrape.Page) {
	fmt.Fprintln(r.w, "\nScrape Results:")
	fmt.Fprintf(r.w, "Title: %s\n", page.Title())
	fmt.Fprintf(r.w, "Content Length: %d\n", page.ContentLength())
	fmt.Fprintf(r.w, "\nFirst %d chars of markdown:\n", ScrapePreviewChars)
	fmt.Fprintln(r.w, page.Preview(ScrapePreviewChars))
}

// Crawling announces the site crawl.
func (r *Reporter) Crawling(url string) {
	fmt.Fprintf(r.w, "\nStarting crawl of %s...\n", url)
}

// CrawlResults writes the aggregate crawl counters, followed by a first-page
// section only when the crawl returned at least one page.
func (r *Reporter) CrawlResults(result *scrape.CrawlResult) {
	fmt.Fprintln(r.w, "\nCrawl Results:")
	fmt.Fprintf(r.w, "Total Pages: %d\n", result.Total())
	fmt.Fprintf(r.w, "Completed Pages: %d\n", result.Completed())
	fmt.Fprintf(r.w, "Credits Used: %d\n", result.CreditsUsed())

	first, ok := result.FirstPage()
	if !ok {
		return
	}

	fmt.Fprintln(r.w, "\nFirst page content:")
	fmt.Fprintf(r.w, "URL: %s\n", first.SourceURL())
	fmt.Fprintf(r.w, "Title: %s\n", first.Title())
	fmt.Fprintf(r.w, "Content Preview: %s\n", first.Preview(CrawlPreviewChars))
}
