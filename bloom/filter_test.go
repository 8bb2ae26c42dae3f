package bloom_test

import (
	"fmt"
	"testing"

	"github.com/jbartnik/refdeck/bloom"
	"github.com/stretchr/testify/assert"
)

func TestSeenURLs(t *testing.T) {
	t.Parallel()

	t.Run("reports added urls as seen", func(t *testing.T) {
		t.Parallel()

		s := bloom.NewSeenURLs(100, 0.01)
		s.Add("https://example.com/a")

		assert.True(t, s.Seen("https://example.com/a"))
	})

	t.Run("never reports false negatives", func(t *testing.T) {
		t.Parallel()

		s := bloom.NewSeenURLs(1000, 0.01)
		for i := 0; i < 1000; i++ {
			s.Add(fmt.Sprintf("https://example.com/%d", i))
		}
		for i := 0; i < 1000; i++ {
			assert.True(t, s.Seen(fmt.Sprintf("https://example.com/%d", i)))
		}
	})

	t.Run("unknown urls are mostly unseen", func(t *testing.T) {
		t.Parallel()

		s := bloom.FromURLs([]string{"https://example.com/a", "https://example.com/b"})

		falsePositives := 0
		for i := 0; i < 100; i++ {
			if s.Seen(fmt.Sprintf("https://other.com/%d", i)) {
				falsePositives++
			}
		}
		assert.Less(t, falsePositives, 5)
	})

	t.Run("estimates the number of urls", func(t *testing.T) {
		t.Parallel()

		s := bloom.FromURLs([]string{"a", "b", "c"})

		assert.InDelta(t, 3, float64(s.EstimatedCount()), 1)
	})
}
