package refdeck_test

import (
	"testing"

	"github.com/jbartnik/refdeck"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSynthesisRequest_Validate(t *testing.T) {
	t.Parallel()

	t.Run("accepts a focused request with articles", func(t *testing.T) {
		t.Parallel()

		req := refdeck.SynthesisRequest{
			ArticleIDs: []string{"a1", "a2"},
			FocusTopic: "model evaluation",
		}

		require.NoError(t, req.Validate())
	})

	t.Run("rejects empty focus topic even with selected articles", func(t *testing.T) {
		t.Parallel()

		req := refdeck.SynthesisRequest{
			ArticleIDs: []string{"a1", "a2"},
			FocusTopic: "",
		}

		err := req.Validate()
		require.Error(t, err)
		assert.Equal(t, refdeck.EINVALID, refdeck.ErrorCode(err))
	})

	t.Run("rejects whitespace-only focus topic", func(t *testing.T) {
		t.Parallel()

		req := refdeck.SynthesisRequest{
			ArticleIDs: []string{"a1"},
			FocusTopic: "   ",
		}

		err := req.Validate()
		require.Error(t, err)
		assert.Equal(t, refdeck.EINVALID, refdeck.ErrorCode(err))
	})

	t.Run("rejects empty selection", func(t *testing.T) {
		t.Parallel()

		req := refdeck.SynthesisRequest{FocusTopic: "anything"}

		err := req.Validate()
		require.Error(t, err)
		assert.Equal(t, refdeck.EINVALID, refdeck.ErrorCode(err))
	})

	t.Run("rejects more than the article cap", func(t *testing.T) {
		t.Parallel()

		ids := make([]string, refdeck.MaxSynthesisArticles+1)
		for i := range ids {
			ids[i] = "a"
		}
		req := refdeck.SynthesisRequest{ArticleIDs: ids, FocusTopic: "topic"}

		err := req.Validate()
		require.Error(t, err)
		assert.Equal(t, refdeck.EINVALID, refdeck.ErrorCode(err))
	})
}

func TestManualArticle_Validate(t *testing.T) {
	t.Parallel()

	long := make([]byte, refdeck.MinManualContentLen)
	for i := range long {
		long[i] = 'x'
	}

	t.Run("accepts complete manual article", func(t *testing.T) {
		t.Parallel()

		m := refdeck.ManualArticle{URL: "http://x", Title: "T", Content: string(long)}
		require.NoError(t, m.Validate())
	})

	t.Run("rejects short content", func(t *testing.T) {
		t.Parallel()

		m := refdeck.ManualArticle{URL: "http://x", Title: "T", Content: "too short"}
		err := m.Validate()
		require.Error(t, err)
		assert.Equal(t, refdeck.EINVALID, refdeck.ErrorCode(err))
	})

	t.Run("rejects missing url and title", func(t *testing.T) {
		t.Parallel()

		assert.Error(t, (&refdeck.ManualArticle{Title: "T", Content: string(long)}).Validate())
		assert.Error(t, (&refdeck.ManualArticle{URL: "http://x", Content: string(long)}).Validate())
	})
}
