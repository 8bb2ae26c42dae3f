package refdeck

// ExtractResult holds title and readable text pulled from pasted HTML.
type ExtractResult struct {
	Title string
	Text  string
}

// ContentExtractor extracts a title and plain text from an HTML document.
// Used by manual saves so the user can paste a page source instead of
// hand-copying title and body.
type ContentExtractor interface {
	Extract(html string) (*ExtractResult, error)
}
