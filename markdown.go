package refdeck

import (
	"html"
	"regexp"
	"strings"
)

// Inline substitution rules. Bold runs before italic so ** pairs are not
// consumed as two italic markers.
var (
	mdBold   = regexp.MustCompile(`\*\*(.+?)\*\*`)
	mdItalic = regexp.MustCompile(`\*(.+?)\*`)
)

// RenderMarkdown converts the trusted markdown subset produced by the
// synthesis endpoint into HTML for file output. Rule table:
//
//	# / ## / ### text   -> <h1>..<h3>
//	**text**            -> <strong>
//	*text*              -> <em>
//	- item              -> <li> inside <ul>; consecutive items share one list
//	N. item             -> <li> inside <ol>; consecutive items share one list
//	> text              -> <blockquote>; consecutive lines merge into one
//	any other non-blank -> <p>
//
// This is a best-effort display convenience, not a markdown implementation:
// nested lists and mixed constructs within a line render literally.
func RenderMarkdown(md string) string {
	var b strings.Builder
	var inUL, inOL, inQuote bool

	closeBlocks := func() {
		if inUL {
			b.WriteString("</ul>\n")
			inUL = false
		}
		if inOL {
			b.WriteString("</ol>\n")
			inOL = false
		}
		if inQuote {
			b.WriteString("</blockquote>\n")
			inQuote = false
		}
	}

	for _, line := range strings.Split(md, "\n") {
		trimmed := strings.TrimSpace(line)

		switch {
		case trimmed == "":
			closeBlocks()

		case strings.HasPrefix(trimmed, "### "):
			closeBlocks()
			b.WriteString("<h3>" + renderInline(strings.TrimPrefix(trimmed, "### ")) + "</h3>\n")

		case strings.HasPrefix(trimmed, "## "):
			closeBlocks()
			b.WriteString("<h2>" + renderInline(strings.TrimPrefix(trimmed, "## ")) + "</h2>\n")

		case strings.HasPrefix(trimmed, "# "):
			closeBlocks()
			b.WriteString("<h1>" + renderInline(strings.TrimPrefix(trimmed, "# ")) + "</h1>\n")

		case strings.HasPrefix(trimmed, "> "):
			if !inQuote {
				closeBlocks()
				b.WriteString("<blockquote>")
				inQuote = true
			} else {
				b.WriteString(" ")
			}
			b.WriteString(renderInline(strings.TrimPrefix(trimmed, "> ")))

		case strings.HasPrefix(trimmed, "- "):
			if !inUL {
				closeBlocks()
				b.WriteString("<ul>\n")
				inUL = true
			}
			b.WriteString("<li>" + renderInline(strings.TrimPrefix(trimmed, "- ")) + "</li>\n")

		case isOrderedItem(trimmed):
			if !inOL {
				closeBlocks()
				b.WriteString("<ol>\n")
				inOL = true
			}
			_, item, _ := strings.Cut(trimmed, ". ")
			b.WriteString("<li>" + renderInline(item) + "</li>\n")

		default:
			closeBlocks()
			b.WriteString("<p>" + renderInline(trimmed) + "</p>\n")
		}
	}
	closeBlocks()

	return b.String()
}

// renderInline escapes HTML and applies the bold and italic rules.
func renderInline(s string) string {
	s = html.EscapeString(s)
	s = mdBold.ReplaceAllString(s, "<strong>$1</strong>")
	s = mdItalic.ReplaceAllString(s, "<em>$1</em>")
	return s
}

// isOrderedItem reports whether the line starts with "N. " for decimal N.
func isOrderedItem(s string) bool {
	num, rest, ok := strings.Cut(s, ". ")
	if !ok || num == "" || rest == "" {
		return false
	}
	for _, r := range num {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
