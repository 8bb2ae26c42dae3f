package http

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/jbartnik/refdeck"
)

// Compile-time interface verification.
var _ refdeck.ArticleService = (*Client)(nil)

// articlePayload is the wire form of an article. The server serializes
// timestamps without a timezone suffix, so created_at is parsed manually.
type articlePayload struct {
	ID        string `json:"id"`
	URL       string `json:"url"`
	Title     string `json:"title"`
	Summary   string `json:"summary"`
	Domain    string `json:"domain"`
	CleanText string `json:"clean_text"`
	CreatedAt string `json:"created_at"`
}

func (p *articlePayload) toArticle() *refdeck.Article {
	return &refdeck.Article{
		ID:        p.ID,
		URL:       p.URL,
		Title:     p.Title,
		Summary:   p.Summary,
		Domain:    p.Domain,
		CleanText: p.CleanText,
		CreatedAt: parseTime(p.CreatedAt),
	}
}

// parseTime accepts RFC3339 timestamps with or without a timezone suffix.
// Unparseable values decode to the zero time rather than failing the whole
// response.
func parseTime(s string) time.Time {
	for _, layout := range []string{time.RFC3339Nano, "2006-01-02T15:04:05.999999", "2006-01-02T15:04:05"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

// ListArticles retrieves saved articles, newest first.
func (c *Client) ListArticles(ctx context.Context, filter refdeck.ArticleFilter) ([]*refdeck.Article, error) {
	limit := filter.Limit
	if limit <= 0 {
		limit = 50
	}

	var payload []*articlePayload
	path := fmt.Sprintf("/articles?limit=%d&offset=%d", limit, filter.Offset)
	if err := c.do(ctx, http.MethodGet, path, nil, &payload); err != nil {
		return nil, err
	}

	articles := make([]*refdeck.Article, 0, len(payload))
	for _, p := range payload {
		articles = append(articles, p.toArticle())
	}
	return articles, nil
}

// FindArticleByID retrieves a single article.
func (c *Client) FindArticleByID(ctx context.Context, id string) (*refdeck.Article, error) {
	var payload articlePayload
	if err := c.do(ctx, http.MethodGet, "/articles/"+id, nil, &payload); err != nil {
		return nil, err
	}
	return payload.toArticle(), nil
}

// SaveArticle saves a new article by URL. Extraction, summarization, and
// embedding happen server-side.
func (c *Client) SaveArticle(ctx context.Context, url string) (*refdeck.Article, error) {
	if url == "" {
		return nil, refdeck.Errorf(refdeck.EINVALID, "article URL required")
	}

	in := struct {
		URL string `json:"url"`
	}{URL: url}

	var payload articlePayload
	if err := c.do(ctx, http.MethodPost, "/articles", in, &payload); err != nil {
		return nil, err
	}
	return payload.toArticle(), nil
}

// SaveManualArticle saves pasted content directly.
func (c *Client) SaveManualArticle(ctx context.Context, article refdeck.ManualArticle) (*refdeck.Article, error) {
	if err := article.Validate(); err != nil {
		return nil, err
	}

	in := struct {
		URL     string `json:"url"`
		Title   string `json:"title"`
		Content string `json:"content"`
	}{URL: article.URL, Title: article.Title, Content: article.Content}

	var payload articlePayload
	if err := c.do(ctx, http.MethodPost, "/articles/manual", in, &payload); err != nil {
		return nil, err
	}
	return payload.toArticle(), nil
}

// ExportArticles retrieves full records, including body text, for the ids.
func (c *Client) ExportArticles(ctx context.Context, ids []string) ([]*refdeck.Article, error) {
	if len(ids) == 0 {
		return nil, refdeck.Errorf(refdeck.EINVALID, "no article ids provided")
	}
	if len(ids) > refdeck.MaxExportArticles {
		return nil, refdeck.Errorf(refdeck.EINVALID, "maximum %d articles per export", refdeck.MaxExportArticles)
	}

	var payload []*articlePayload
	if err := c.do(ctx, http.MethodPost, "/articles/export", ids, &payload); err != nil {
		return nil, err
	}

	articles := make([]*refdeck.Article, 0, len(payload))
	for _, p := range payload {
		articles = append(articles, p.toArticle())
	}
	return articles, nil
}
