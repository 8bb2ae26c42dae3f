package main_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/jbartnik/refdeck"
	main "github.com/jbartnik/refdeck/cmd/refdeck"
	"github.com/jbartnik/refdeck/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("prints numbered results with similarity", func(t *testing.T) {
		t.Parallel()

		search := &mock.SearchService{
			SearchArticlesFn: func(_ context.Context, query string, limit int) ([]*refdeck.SearchResult, error) {
				assert.Equal(t, "attention", query)
				assert.Equal(t, 10, limit)
				return []*refdeck.SearchResult{
					{Article: refdeck.Article{ID: "a1", Title: "Transformers", URL: "https://example.com/t"}, Similarity: 0.91},
					{Article: refdeck.Article{ID: "a2", Title: "RNNs", URL: "https://example.com/r"}, Similarity: 0.42},
				}, nil
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: stderr,
			Search: search,
		}

		cmd := &main.SearchCmd{Query: "attention", Limit: 10}

		err := cmd.Run(deps)

		require.NoError(t, err)
		output := stdout.String()
		assert.Contains(t, output, "1. [0.91] Transformers")
		assert.Contains(t, output, "2. [0.42] RNNs")
		assert.Contains(t, output, "https://example.com/t")
	})

	t.Run("shows message for no results", func(t *testing.T) {
		t.Parallel()

		search := &mock.SearchService{
			SearchArticlesFn: func(_ context.Context, _ string, _ int) ([]*refdeck.SearchResult, error) {
				return []*refdeck.SearchResult{}, nil
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: stderr,
			Search: search,
		}

		cmd := &main.SearchCmd{Query: "nothing"}

		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), `No results for "nothing"`)
	})

	t.Run("returns error when search fails", func(t *testing.T) {
		t.Parallel()

		search := &mock.SearchService{
			SearchArticlesFn: func(_ context.Context, _ string, _ int) ([]*refdeck.SearchResult, error) {
				return nil, refdeck.Errorf(refdeck.EUNAVAILABLE, "cannot reach server")
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: stderr,
			Search: search,
		}

		cmd := &main.SearchCmd{Query: "topic"}

		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Contains(t, stderr.String(), "cannot reach server")
		assert.Empty(t, stdout.String())
	})

	t.Run("caches result articles", func(t *testing.T) {
		t.Parallel()

		search := &mock.SearchService{
			SearchArticlesFn: func(_ context.Context, _ string, _ int) ([]*refdeck.SearchResult, error) {
				return []*refdeck.SearchResult{
					{Article: refdeck.Article{ID: "a1", Title: "Transformers"}, Similarity: 0.9},
				}, nil
			},
		}

		var upserted []*refdeck.Article
		cache := &mock.ArticleCache{
			UpsertArticlesFn: func(_ context.Context, in []*refdeck.Article) error {
				upserted = in
				return nil
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: stderr,
			Search: search,
			Cache:  cache,
		}

		cmd := &main.SearchCmd{Query: "topic"}

		err := cmd.Run(deps)

		require.NoError(t, err)
		require.Len(t, upserted, 1)
		assert.Equal(t, "a1", upserted[0].ID)
	})
}
