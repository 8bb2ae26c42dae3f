package mock

import (
	"context"

	"github.com/jbartnik/refdeck"
)

var _ refdeck.ArticleService = (*ArticleService)(nil)

// ArticleService is a mock implementation of refdeck.ArticleService.
type ArticleService struct {
	ListArticlesFn      func(ctx context.Context, filter refdeck.ArticleFilter) ([]*refdeck.Article, error)
	FindArticleByIDFn   func(ctx context.Context, id string) (*refdeck.Article, error)
	SaveArticleFn       func(ctx context.Context, url string) (*refdeck.Article, error)
	SaveManualArticleFn func(ctx context.Context, article refdeck.ManualArticle) (*refdeck.Article, error)
	ExportArticlesFn    func(ctx context.Context, ids []string) ([]*refdeck.Article, error)
}

func (s *ArticleService) ListArticles(ctx context.Context, filter refdeck.ArticleFilter) ([]*refdeck.Article, error) {
	return s.ListArticlesFn(ctx, filter)
}

func (s *ArticleService) FindArticleByID(ctx context.Context, id string) (*refdeck.Article, error) {
	return s.FindArticleByIDFn(ctx, id)
}

func (s *ArticleService) SaveArticle(ctx context.Context, url string) (*refdeck.Article, error) {
	return s.SaveArticleFn(ctx, url)
}

func (s *ArticleService) SaveManualArticle(ctx context.Context, article refdeck.ManualArticle) (*refdeck.Article, error) {
	return s.SaveManualArticleFn(ctx, article)
}

func (s *ArticleService) ExportArticles(ctx context.Context, ids []string) ([]*refdeck.Article, error) {
	return s.ExportArticlesFn(ctx, ids)
}
