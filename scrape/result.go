package scrape

import (
	"unicode/utf8"

	"github.com/mendableai/firecrawl-go"
)

// Page wraps a scraped document behind nil-safe accessors. The Firecrawl
// types model optional fields as pointers and omitted strings as empty;
// every accessor returns a defined default instead of panicking when the
// underlying document or its metadata is absent.
type Page struct {
	doc *firecrawl.FirecrawlDocument
}

// NewPage wraps a Firecrawl document. A nil document is valid and yields a
// Page whose accessors all return defaults.
func NewPage(doc *firecrawl.FirecrawlDocument) *Page {
	return &Page{doc: doc}
}

func (p *Page) metadata() *firecrawl.FirecrawlDocumentMetadata {
	if p == nil || p.doc == nil {
		return nil
	}
	return p.doc.Metadata
}

// Title returns the page title from metadata, preferring the document title
// over the OpenGraph one. Absent both, it returns the empty string.
func (p *Page) Title() string {
	md := p.metadata()
	if md == nil {
		return ""
	}

	if md.Title != nil {
		return *md.Title
	}
	if md.OGTitle != nil {
		return *md.OGTitle
	}

	return ""
}

// SourceURL returns the URL the page was scraped from, or "".
func (p *Page) SourceURL() string {
	md := p.metadata()
	if md == nil || md.SourceURL == nil {
		return ""
	}
	return *md.SourceURL
}

// Markdown returns the markdown rendering of the page, or "" when the
// format was not requested or not returned.
func (p *Page) Markdown() string {
	if p == nil || p.doc == nil {
		return ""
	}
	return p.doc.Markdown
}

// HTML returns the raw page markup, or "".
func (p *Page) HTML() string {
	if p == nil || p.doc == nil {
		return ""
	}
	return p.doc.HTML
}

// ContentLength returns the length of the markdown rendering in characters.
func (p *Page) ContentLength() int {
	return utf8.RuneCountInString(p.Markdown())
}

// Preview returns the first n characters of the markdown rendering, or the
// whole rendering when it is shorter. Truncation is on rune boundaries.
func (p *Page) Preview(n int) string {
	md := p.Markdown()
	if n <= 0 {
		return ""
	}

	runes := []rune(md)
	if len(runes) <= n {
		return md
	}
	return string(runes[:n])
}

// CrawlResult wraps a completed crawl behind nil-safe accessors. The
// underlying counters are plain integers in the wire format, so an absent
// counter is indistinguishable from zero; zero is the defined default.
type CrawlResult struct {
	status *firecrawl.CrawlStatusResponse
}

// NewCrawlResult wraps a Firecrawl crawl status response. A nil response is
// valid and yields a result with zero counters and no pages.
func NewCrawlResult(status *firecrawl.CrawlStatusResponse) *CrawlResult {
	return &CrawlResult{status: status}
}

// Status returns the remote crawl state, e.g. "completed", or "".
func (c *CrawlResult) Status() string {
	if c == nil || c.status == nil {
		return ""
	}
	return c.status.Status
}

// Total returns the number of pages the crawl discovered.
func (c *CrawlResult) Total() int {
	if c == nil || c.status == nil {
		return 0
	}
	return c.status.Total
}

// Completed returns the number of pages the crawl finished scraping.
func (c *CrawlResult) Completed() int {
	if c == nil || c.status == nil {
		return 0
	}
	return c.status.Completed
}

// CreditsUsed returns the credits the crawl consumed.
func (c *CrawlResult) CreditsUsed() int {
	if c == nil || c.status == nil {
		return 0
	}
	return c.status.CreditsUsed
}

// Pages returns the crawled pages in the order the service returned them.
func (c *CrawlResult) Pages() []*Page {
	if c == nil || c.status == nil {
		return nil
	}

	pages := make([]*Page, 0, len(c.status.Data))
	for _, doc := range c.status.Data {
		pages = append(pages, NewPage(doc))
	}
	return pages
}

// FirstPage returns the first crawled page, if any came back.
func (c *CrawlResult) FirstPage() (*Page, bool) {
	pages := c.Pages()
	if len(pages) == 0 {
		return nil, false
	}
	return pages[0], true
}
