package refdeck

import (
	"context"
	"time"
)

// Category is a server-side grouping construct used for periodic digest
// rotation. The client only performs CRUD and preview display; matching is
// done server-side against the category embedding.
type Category struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Description  string     `json:"description"`
	Source       string     `json:"source"`
	Status       string     `json:"status"`
	LastDigestAt *time.Time `json:"last_digest_at"`
	CreatedAt    time.Time  `json:"created_at"`

	// Populated on list/get responses only.
	MatchingQuotes   int `json:"matching_quotes_count"`
	MatchingArticles int `json:"matching_articles_count"`
}

// Validate returns an error if the category contains invalid fields.
func (c *Category) Validate() error {
	if c.Name == "" {
		return Errorf(EINVALID, "category name required")
	}
	return nil
}

// CategoryUpdate represents fields that can be updated on a category.
type CategoryUpdate struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
}

// Minimum content a category digest needs before the server will send it.
const (
	MinDigestQuotes   = 3
	MinDigestArticles = 2
)

// CategoryPreview reports what a category digest would contain. CanSend is
// false while the category has fewer than MinDigestQuotes matching quotes
// from MinDigestArticles distinct articles.
type CategoryPreview struct {
	CategoryID       string   `json:"category_id"`
	CategoryName     string   `json:"category_name"`
	MatchingQuotes   int      `json:"matching_quotes"`
	MatchingArticles int      `json:"matching_articles"`
	CanSend          bool     `json:"can_send"`
	SampleQuotes     []string `json:"sample_quotes"`
}

// Theme is a digest theme discovered from past digest history that could be
// converted into a category.
type Theme struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// CategoryService represents the remote category resource.
type CategoryService interface {
	// ListCategories retrieves all categories with matching statistics.
	ListCategories(ctx context.Context) ([]*Category, error)

	// FindCategoryByID retrieves a single category with statistics.
	// Returns ENOTFOUND if the category does not exist.
	FindCategoryByID(ctx context.Context, id string) (*Category, error)

	// CreateCategory creates a new category. New categories start queued
	// and are used in the next daily digest.
	CreateCategory(ctx context.Context, category *Category) error

	// UpdateCategory updates name and/or description.
	// Returns ENOTFOUND if the category does not exist and EINVALID if the
	// update is empty.
	UpdateCategory(ctx context.Context, id string, upd CategoryUpdate) (*Category, error)

	// DeleteCategory deactivates a category.
	// Returns ENOTFOUND if the category does not exist.
	DeleteCategory(ctx context.Context, id string) error

	// PreviewCategory reports what the category's digest would contain.
	// Returns ENOTFOUND if the category does not exist.
	PreviewCategory(ctx context.Context, id string) (*CategoryPreview, error)

	// DiscoveredThemes lists themes from past digests, most frequent first.
	DiscoveredThemes(ctx context.Context) ([]*Theme, error)
}
