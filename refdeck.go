// Package refdeck provides a CLI client for the Research Bookmarks API.
// It lists and semantically searches saved articles, saves new ones by URL
// or pasted content, and scopes export and synthesis actions to a selected
// subset of search results. All search ranking, summarization, and embedding
// generation happen server-side; this package only speaks the HTTP contract.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., http/, sqlite/, goquery/).
package refdeck
