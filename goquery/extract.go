// Package goquery extracts a title and readable text from pasted HTML, so
// manual saves of paywalled pages don't require hand-copying title and body.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/jbartnik/refdeck"
)

// Compile-time interface verification.
var _ refdeck.ContentExtractor = (*Extractor)(nil)

// Extractor pulls title and plain text out of an HTML document. This is a
// local convenience for the manual save path, not a substitute for the
// server's extraction pipeline: it picks the most content-bearing container
// and joins its block text.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Containers likely to hold the main content, most specific first.
var contentSelectors = []string{"article", "main", "[role=main]", "body"}

// Extract processes raw HTML and returns the page title and readable text.
// The title comes from og:title or the <title> element; text is block
// elements of the first matching content container, joined by blank lines.
func (e *Extractor) Extract(html string) (*refdeck.ExtractResult, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, refdeck.Errorf(refdeck.EINVALID, "failed to parse HTML: %v", err)
	}

	// Script and style text would otherwise leak into the body.
	doc.Find("script, style, noscript, nav, header, footer, aside").Remove()

	result := &refdeck.ExtractResult{
		Title: extractTitle(doc),
	}

	for _, selector := range contentSelectors {
		container := doc.Find(selector).First()
		if container.Length() == 0 {
			continue
		}
		if text := extractText(container); text != "" {
			result.Text = text
			break
		}
	}

	if result.Title == "" && result.Text == "" {
		return nil, refdeck.Errorf(refdeck.EINVALID, "no readable content found")
	}

	return result, nil
}

// extractTitle prefers og:title over the document title.
func extractTitle(doc *goquery.Document) string {
	if og, ok := doc.Find(`meta[property="og:title"]`).Attr("content"); ok {
		if t := strings.TrimSpace(og); t != "" {
			return t
		}
	}
	return strings.TrimSpace(doc.Find("title").First().Text())
}

// extractText joins the container's block-level text with blank lines.
// Falls back to the container's flattened text when it has no blocks.
func extractText(container *goquery.Selection) string {
	var blocks []string
	container.Find("p, h1, h2, h3, h4, h5, h6, li, blockquote, pre").Each(func(_ int, sel *goquery.Selection) {
		if t := strings.TrimSpace(sel.Text()); t != "" {
			blocks = append(blocks, t)
		}
	})

	if len(blocks) == 0 {
		return strings.TrimSpace(container.Text())
	}
	return strings.Join(blocks, "\n\n")
}
