package sqlite

import (
	"context"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/jbartnik/refdeck"
)

// Compile-time interface verification.
var _ refdeck.ArticleCache = (*ArticleCache)(nil)

// ArticleCache implements refdeck.ArticleCache using SQLite. It keeps the
// last-seen copy of every article the client has displayed or exported, so
// an export can degrade to cached data when the server is unreachable.
type ArticleCache struct {
	db *DB
}

// NewArticleCache creates a new ArticleCache.
func NewArticleCache(db *DB) *ArticleCache {
	return &ArticleCache{db: db}
}

// hashArticle computes an xxHash over the cached fields and returns hex.
// Used to skip rewrites when a record has not changed since last seen.
func hashArticle(a *refdeck.Article) string {
	h := xxhash.New()
	for _, s := range []string{a.URL, a.Title, a.Summary, a.Domain, a.CleanText} {
		_, _ = h.WriteString(s)
		_, _ = h.Write([]byte{0})
	}
	b := make([]byte, 8)
	sum := h.Sum64()
	for i := 0; i < 8; i++ {
		b[i] = byte(sum >> (56 - 8*i))
	}
	return hex.EncodeToString(b)
}

// UpsertArticles inserts or refreshes cached copies. A record with an empty
// body never overwrites a cached full text: list and search responses omit
// clean_text, and losing an already-cached body would defeat the fallback.
func (c *ArticleCache) UpsertArticles(ctx context.Context, articles []*refdeck.Article) error {
	now := time.Now().UTC().Format(time.RFC3339)

	for _, a := range articles {
		if a.ID == "" {
			return refdeck.Errorf(refdeck.EINVALID, "article id required")
		}

		merged := *a
		var existingHash, existingText string
		err := c.db.QueryRowContext(ctx, `
			SELECT content_hash, clean_text FROM cached_articles WHERE id = ?
		`, a.ID).Scan(&existingHash, &existingText)
		if err != nil && !errors.Is(err, sql.ErrNoRows) {
			return err
		}
		if merged.CleanText == "" {
			merged.CleanText = existingText
		}

		hash := hashArticle(&merged)
		if hash == existingHash {
			continue
		}

		_, err = c.db.ExecContext(ctx, `
			INSERT INTO cached_articles (id, url, title, summary, domain, clean_text, content_hash, created_at, cached_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
			ON CONFLICT(id) DO UPDATE SET
				url = excluded.url,
				title = excluded.title,
				summary = excluded.summary,
				domain = excluded.domain,
				clean_text = excluded.clean_text,
				content_hash = excluded.content_hash,
				created_at = excluded.created_at,
				cached_at = excluded.cached_at
		`, merged.ID, merged.URL, merged.Title, merged.Summary, merged.Domain, merged.CleanText,
			hash, merged.CreatedAt.UTC().Format(time.RFC3339), now)
		if err != nil {
			return err
		}
	}

	return nil
}

// ArticlesByIDs returns cached records in the requested id order, skipping
// ids that have never been cached.
func (c *ArticleCache) ArticlesByIDs(ctx context.Context, ids []string) ([]*refdeck.Article, error) {
	var articles []*refdeck.Article

	for _, id := range ids {
		var a refdeck.Article
		var createdAt string

		err := c.db.QueryRowContext(ctx, `
			SELECT id, url, title, summary, domain, clean_text, created_at
			FROM cached_articles
			WHERE id = ?
		`, id).Scan(&a.ID, &a.URL, &a.Title, &a.Summary, &a.Domain, &a.CleanText, &createdAt)
		if errors.Is(err, sql.ErrNoRows) {
			continue
		}
		if err != nil {
			return nil, err
		}

		a.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse created_at: %w", err)
		}

		articles = append(articles, &a)
	}

	return articles, nil
}

// URLs returns every cached article URL.
func (c *ArticleCache) URLs(ctx context.Context) ([]string, error) {
	rows, err := c.db.QueryContext(ctx, `SELECT url FROM cached_articles`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var urls []string
	for rows.Next() {
		var u string
		if err := rows.Scan(&u); err != nil {
			return nil, err
		}
		urls = append(urls, u)
	}
	return urls, rows.Err()
}
