package mock

import (
	"context"

	"github.com/jbartnik/refdeck"
)

var _ refdeck.ArticleCache = (*ArticleCache)(nil)

// ArticleCache is a mock implementation of refdeck.ArticleCache.
type ArticleCache struct {
	UpsertArticlesFn func(ctx context.Context, articles []*refdeck.Article) error
	ArticlesByIDsFn  func(ctx context.Context, ids []string) ([]*refdeck.Article, error)
	URLsFn           func(ctx context.Context) ([]string, error)
}

func (c *ArticleCache) UpsertArticles(ctx context.Context, articles []*refdeck.Article) error {
	return c.UpsertArticlesFn(ctx, articles)
}

func (c *ArticleCache) ArticlesByIDs(ctx context.Context, ids []string) ([]*refdeck.Article, error) {
	return c.ArticlesByIDsFn(ctx, ids)
}

func (c *ArticleCache) URLs(ctx context.Context) ([]string, error) {
	return c.URLsFn(ctx)
}

var _ refdeck.ContentExtractor = (*ContentExtractor)(nil)

// ContentExtractor is a mock implementation of refdeck.ContentExtractor.
type ContentExtractor struct {
	ExtractFn func(html string) (*refdeck.ExtractResult, error)
}

func (e *ContentExtractor) Extract(html string) (*refdeck.ExtractResult, error) {
	return e.ExtractFn(html)
}
