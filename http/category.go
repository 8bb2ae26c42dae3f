package http

import (
	"context"
	"net/http"

	"github.com/jbartnik/refdeck"
)

// Compile-time interface verification.
var _ refdeck.CategoryService = (*Client)(nil)

type categoryPayload struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	Description      string `json:"description"`
	Source           string `json:"source"`
	Status           string `json:"status"`
	LastDigestAt     string `json:"last_digest_at"`
	CreatedAt        string `json:"created_at"`
	MatchingQuotes   int    `json:"matching_quotes_count"`
	MatchingArticles int    `json:"matching_articles_count"`
}

func (p *categoryPayload) toCategory() *refdeck.Category {
	cat := &refdeck.Category{
		ID:               p.ID,
		Name:             p.Name,
		Description:      p.Description,
		Source:           p.Source,
		Status:           p.Status,
		CreatedAt:        parseTime(p.CreatedAt),
		MatchingQuotes:   p.MatchingQuotes,
		MatchingArticles: p.MatchingArticles,
	}
	if p.LastDigestAt != "" {
		t := parseTime(p.LastDigestAt)
		cat.LastDigestAt = &t
	}
	return cat
}

// ListCategories retrieves all categories with matching statistics.
func (c *Client) ListCategories(ctx context.Context) ([]*refdeck.Category, error) {
	var payload []*categoryPayload
	if err := c.do(ctx, http.MethodGet, "/categories", nil, &payload); err != nil {
		return nil, err
	}

	categories := make([]*refdeck.Category, 0, len(payload))
	for _, p := range payload {
		categories = append(categories, p.toCategory())
	}
	return categories, nil
}

// FindCategoryByID retrieves a single category with statistics.
func (c *Client) FindCategoryByID(ctx context.Context, id string) (*refdeck.Category, error) {
	var payload categoryPayload
	if err := c.do(ctx, http.MethodGet, "/categories/"+id, nil, &payload); err != nil {
		return nil, err
	}
	return payload.toCategory(), nil
}

// CreateCategory creates a new category. The server generates the matching
// embedding and queues the category for the next digest.
func (c *Client) CreateCategory(ctx context.Context, category *refdeck.Category) error {
	if err := category.Validate(); err != nil {
		return err
	}

	in := struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	}{Name: category.Name, Description: category.Description}

	var payload categoryPayload
	if err := c.do(ctx, http.MethodPost, "/categories", in, &payload); err != nil {
		return err
	}

	*category = *payload.toCategory()
	return nil
}

// UpdateCategory updates name and/or description.
func (c *Client) UpdateCategory(ctx context.Context, id string, upd refdeck.CategoryUpdate) (*refdeck.Category, error) {
	if upd.Name == nil && upd.Description == nil {
		return nil, refdeck.Errorf(refdeck.EINVALID, "no updates provided")
	}

	var payload categoryPayload
	if err := c.do(ctx, http.MethodPatch, "/categories/"+id, upd, &payload); err != nil {
		return nil, err
	}
	return payload.toCategory(), nil
}

// DeleteCategory deactivates a category.
func (c *Client) DeleteCategory(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/categories/"+id, nil, nil)
}

// PreviewCategory reports what the category's digest would contain.
func (c *Client) PreviewCategory(ctx context.Context, id string) (*refdeck.CategoryPreview, error) {
	var out refdeck.CategoryPreview
	if err := c.do(ctx, http.MethodGet, "/categories/"+id+"/preview", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DiscoveredThemes lists digest themes that could become categories.
func (c *Client) DiscoveredThemes(ctx context.Context) ([]*refdeck.Theme, error) {
	var out []*refdeck.Theme
	if err := c.do(ctx, http.MethodGet, "/categories/discovered", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
