package refdeck

import (
	"context"
	"strings"
	"time"
)

// Article represents a saved bookmark. The server owns article records; the
// client holds transient, possibly-stale copies. CleanText is only populated
// by the export endpoint.
type Article struct {
	ID        string    `json:"id"`
	URL       string    `json:"url"`
	Title     string    `json:"title"`
	Summary   string    `json:"summary"`
	Domain    string    `json:"domain"`
	CleanText string    `json:"clean_text,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// ManualArticle is the payload for saving pasted content directly, used for
// paywalled or scraper-resistant sites the server cannot fetch itself.
type ManualArticle struct {
	URL     string `json:"url"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

// MinManualContentLen is the minimum pasted content length the server accepts.
const MinManualContentLen = 100

// Validate returns an error if the manual article contains invalid fields.
func (m *ManualArticle) Validate() error {
	if m.URL == "" {
		return Errorf(EINVALID, "article URL required")
	}
	if m.Title == "" {
		return Errorf(EINVALID, "article title required")
	}
	if len(strings.TrimSpace(m.Content)) < MinManualContentLen {
		return Errorf(EINVALID, "article content too short, paste at least %d characters", MinManualContentLen)
	}
	return nil
}

// MaxExportArticles is the server-side cap on ids per export request.
const MaxExportArticles = 50

// ArticleFilter represents paging options for ListArticles.
type ArticleFilter struct {
	Limit  int
	Offset int
}

// ArticleService represents the remote catalog of saved articles.
type ArticleService interface {
	// ListArticles retrieves saved articles, newest first.
	ListArticles(ctx context.Context, filter ArticleFilter) ([]*Article, error)

	// FindArticleByID retrieves a single article.
	// Returns ENOTFOUND if the article does not exist.
	FindArticleByID(ctx context.Context, id string) (*Article, error)

	// SaveArticle saves a new article by URL. The server fetches, extracts,
	// and summarizes the content. Returns ECONFLICT if the URL was already
	// saved and EINVALID if the content could not be extracted.
	SaveArticle(ctx context.Context, url string) (*Article, error)

	// SaveManualArticle saves pasted content directly.
	// Returns ECONFLICT if the URL was already saved.
	SaveManualArticle(ctx context.Context, article ManualArticle) (*Article, error)

	// ExportArticles retrieves full records, including body text, for the
	// given ids. At most MaxExportArticles ids per call.
	ExportArticles(ctx context.Context, ids []string) ([]*Article, error)
}

// ArticleCache is a local store of last-seen article records. It backs the
// export fallback: when the remote fetch fails the export degrades to cached
// data instead of aborting.
type ArticleCache interface {
	// UpsertArticles inserts or refreshes cached copies.
	UpsertArticles(ctx context.Context, articles []*Article) error

	// ArticlesByIDs returns the cached records for the given ids, skipping
	// ids that have never been cached.
	ArticlesByIDs(ctx context.Context, ids []string) ([]*Article, error)

	// URLs returns every cached article URL, for seeding the duplicate hint
	// filter before a save.
	URLs(ctx context.Context) ([]string, error)
}
