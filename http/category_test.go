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

func TestClient_ListCategories(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/categories", r.URL.Path)
		_, _ = w.Write([]byte(`[
			{"id": "c1", "name": "Alignment", "description": "d", "source": "requested", "status": "queued",
			 "last_digest_at": null, "created_at": "2025-01-10T08:00:00",
			 "matching_quotes_count": 7, "matching_articles_count": 4},
			{"id": "c2", "name": "Robotics", "source": "discovered", "status": "pool",
			 "last_digest_at": "2025-02-01T09:45:00", "created_at": "2025-01-12T08:00:00",
			 "matching_quotes_count": 1, "matching_articles_count": 1}
		]`))
	}))
	defer srv.Close()

	client := refhttp.NewClient(srv.URL)
	categories, err := client.ListCategories(context.Background())

	require.NoError(t, err)
	require.Len(t, categories, 2)
	assert.Equal(t, "Alignment", categories[0].Name)
	assert.Equal(t, 7, categories[0].MatchingQuotes)
	assert.Nil(t, categories[0].LastDigestAt)
	require.NotNil(t, categories[1].LastDigestAt)
	assert.Equal(t, 2025, categories[1].LastDigestAt.Year())
}

func TestClient_CreateCategory(t *testing.T) {
	t.Parallel()

	t.Run("posts name and description and fills in server fields", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)

			var in map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
			assert.Equal(t, "Alignment", in["name"])

			_, _ = w.Write([]byte(`{"id": "c9", "name": "Alignment", "description": "d",
				"source": "requested", "status": "queued", "created_at": "2025-01-10T08:00:00"}`))
		}))
		defer srv.Close()

		client := refhttp.NewClient(srv.URL)
		cat := &refdeck.Category{Name: "Alignment", Description: "d"}

		require.NoError(t, client.CreateCategory(context.Background(), cat))
		assert.Equal(t, "c9", cat.ID)
		assert.Equal(t, "queued", cat.Status)
	})

	t.Run("rejects a nameless category without a request", func(t *testing.T) {
		t.Parallel()

		requests := 0
		srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
			requests++
		}))
		defer srv.Close()

		client := refhttp.NewClient(srv.URL)
		err := client.CreateCategory(context.Background(), &refdeck.Category{})

		require.Error(t, err)
		assert.Equal(t, refdeck.EINVALID, refdeck.ErrorCode(err))
		assert.Zero(t, requests)
	})
}

func TestClient_UpdateCategory(t *testing.T) {
	t.Parallel()

	t.Run("patches only the provided fields", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPatch, r.Method)
			assert.Equal(t, "/categories/c1", r.URL.Path)

			var in map[string]any
			require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
			assert.Equal(t, "Renamed", in["name"])
			assert.NotContains(t, in, "description")

			_, _ = w.Write([]byte(`{"id": "c1", "name": "Renamed", "source": "requested",
				"status": "pool", "created_at": "2025-01-10T08:00:00"}`))
		}))
		defer srv.Close()

		name := "Renamed"
		client := refhttp.NewClient(srv.URL)
		cat, err := client.UpdateCategory(context.Background(), "c1", refdeck.CategoryUpdate{Name: &name})

		require.NoError(t, err)
		assert.Equal(t, "Renamed", cat.Name)
	})

	t.Run("rejects an empty update without a request", func(t *testing.T) {
		t.Parallel()

		requests := 0
		srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
			requests++
		}))
		defer srv.Close()

		client := refhttp.NewClient(srv.URL)
		_, err := client.UpdateCategory(context.Background(), "c1", refdeck.CategoryUpdate{})

		require.Error(t, err)
		assert.Equal(t, refdeck.EINVALID, refdeck.ErrorCode(err))
		assert.Zero(t, requests)
	})
}

func TestClient_PreviewCategory(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/categories/c1/preview", r.URL.Path)
		_, _ = w.Write([]byte(`{"category_id": "c1", "category_name": "Alignment",
			"matching_quotes": 2, "matching_articles": 1, "can_send": false,
			"sample_quotes": ["a quote"]}`))
	}))
	defer srv.Close()

	client := refhttp.NewClient(srv.URL)
	preview, err := client.PreviewCategory(context.Background(), "c1")

	require.NoError(t, err)
	assert.False(t, preview.CanSend)
	assert.Equal(t, 2, preview.MatchingQuotes)
	assert.Equal(t, []string{"a quote"}, preview.SampleQuotes)
}

func TestClient_DiscoveredThemes(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/categories/discovered", r.URL.Path)
		_, _ = w.Write([]byte(`[{"name": "agents", "count": 5}, {"name": "safety", "count": 2}]`))
	}))
	defer srv.Close()

	client := refhttp.NewClient(srv.URL)
	themes, err := client.DiscoveredThemes(context.Background())

	require.NoError(t, err)
	require.Len(t, themes, 2)
	assert.Equal(t, "agents", themes[0].Name)
	assert.Equal(t, 5, themes[0].Count)
}

func TestClient_DeleteCategory(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/categories/c1", r.URL.Path)
		_, _ = w.Write([]byte(`{"message": "Category deactivated", "id": "c1"}`))
	}))
	defer srv.Close()

	client := refhttp.NewClient(srv.URL)
	require.NoError(t, client.DeleteCategory(context.Background(), "c1"))
}
