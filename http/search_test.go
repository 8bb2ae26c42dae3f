package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	refhttp "github.com/jbartnik/refdeck/http"

	"github.com/jbartnik/refdeck"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_SearchArticles(t *testing.T) {
	t.Parallel()

	t.Run("posts query and decodes scored results", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/search", r.URL.Path)

			var in map[string]any
			require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
			assert.Equal(t, "transformer interpretability", in["query"])
			assert.Equal(t, float64(3), in["limit"])

			_, _ = w.Write([]byte(`[
				{"id": "a1", "url": "http://x", "title": "Best", "similarity": 0.91, "created_at": "2025-02-03T09:30:00"},
				{"id": "a2", "url": "http://y", "title": "Close", "similarity": 0.74, "created_at": "2025-02-01T00:00:00"}
			]`))
		}))
		defer srv.Close()

		client := refhttp.NewClient(srv.URL)
		results, err := client.SearchArticles(context.Background(), "transformer interpretability", 3)

		require.NoError(t, err)
		require.Len(t, results, 2)
		assert.Equal(t, "Best", results[0].Title)
		assert.InDelta(t, 0.91, results[0].Similarity, 0.0001)
		assert.InDelta(t, 0.74, results[1].Similarity, 0.0001)
	})

	t.Run("defaults the result limit", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var in map[string]any
			require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
			assert.Equal(t, float64(refdeck.DefaultSearchLimit), in["limit"])
			_, _ = w.Write([]byte(`[]`))
		}))
		defer srv.Close()

		client := refhttp.NewClient(srv.URL)
		_, err := client.SearchArticles(context.Background(), "q", 0)

		require.NoError(t, err)
	})

	t.Run("rejects an empty query without a request", func(t *testing.T) {
		t.Parallel()

		requests := 0
		srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
			requests++
		}))
		defer srv.Close()

		client := refhttp.NewClient(srv.URL)
		_, err := client.SearchArticles(context.Background(), "", 5)

		require.Error(t, err)
		assert.Equal(t, refdeck.EINVALID, refdeck.ErrorCode(err))
		assert.Zero(t, requests)
	})
}

func TestClient_Synthesize(t *testing.T) {
	t.Parallel()

	t.Run("posts the request and decodes the synthesis", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/synthesize", r.URL.Path)

			var in refdeck.SynthesisRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
			assert.Equal(t, []string{"a1", "a2"}, in.ArticleIDs)
			assert.Equal(t, "evaluation methods", in.FocusTopic)

			_, _ = w.Write([]byte(`{
				"focus_topic": "evaluation methods",
				"summary": "# Brief\n\nCombined findings.",
				"sources": [{"id": "a1", "title": "One", "url": "http://x", "domain": "x.com"}]
			}`))
		}))
		defer srv.Close()

		client := refhttp.NewClient(srv.URL)
		syn, err := client.Synthesize(context.Background(), refdeck.SynthesisRequest{
			ArticleIDs: []string{"a1", "a2"},
			FocusTopic: "evaluation methods",
		})

		require.NoError(t, err)
		assert.Equal(t, "evaluation methods", syn.FocusTopic)
		assert.Contains(t, syn.Summary, "Combined findings.")
		require.Len(t, syn.Sources, 1)
		assert.Equal(t, "One", syn.Sources[0].Title)
	})

	t.Run("refuses an unfocused request without any network call", func(t *testing.T) {
		t.Parallel()

		requests := 0
		srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
			requests++
		}))
		defer srv.Close()

		client := refhttp.NewClient(srv.URL)
		_, err := client.Synthesize(context.Background(), refdeck.SynthesisRequest{
			ArticleIDs: []string{"a1", "a2"},
			FocusTopic: "",
		})

		require.Error(t, err)
		assert.Equal(t, refdeck.EINVALID, refdeck.ErrorCode(err))
		assert.Zero(t, requests)
	})
}
