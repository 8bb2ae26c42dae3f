package refdeck

import (
	"fmt"
	"strings"
	"time"
)

// exportSeparator divides article blocks in the export document.
const exportSeparator = "======================================================================"

// Defaults used when optional article fields are absent.
const (
	exportUntitled  = "Untitled"
	exportNoDomain  = "Unknown"
	exportNoSummary = "No summary available."
)

// FormatExport renders articles as a flat text document for clipboard or
// file export. One block per article: separator line, 1-based index and
// title, URL, domain, save date, summary, and the full text body when
// present. A footer states the export date and total count.
//
// Callers must not pass an empty slice; commands guard on the selection
// before invoking the formatter.
func FormatExport(articles []*Article, now time.Time) string {
	var b strings.Builder

	for i, a := range articles {
		title := a.Title
		if title == "" {
			title = exportUntitled
		}
		domain := a.Domain
		if domain == "" {
			domain = exportNoDomain
		}
		summary := a.Summary
		if summary == "" {
			summary = exportNoSummary
		}

		b.WriteString(exportSeparator + "\n")
		fmt.Fprintf(&b, "%d. %s\n", i+1, title)
		fmt.Fprintf(&b, "URL: %s\n", a.URL)
		fmt.Fprintf(&b, "Domain: %s\n", domain)
		fmt.Fprintf(&b, "Saved: %s\n", a.CreatedAt.Format("January 2, 2006"))
		fmt.Fprintf(&b, "\nSummary: %s\n", summary)
		if a.CleanText != "" {
			fmt.Fprintf(&b, "\nFull text:\n%s\n", a.CleanText)
		}
		b.WriteString("\n")
	}

	b.WriteString(exportSeparator + "\n")
	fmt.Fprintf(&b, "Exported %s. %d article(s).\n", now.Format("January 2, 2006"), len(articles))

	return b.String()
}
