package leetcode_test

import (
	"testing"
	"time"

	errorvalues "github.com/limbo/leetmap/internal/error_values"
	"github.com/limbo/leetmap/internal/leetcode"
	"github.com/limbo/leetmap/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSubmissionCalendar(t *testing.T) {
	t.Run("decodes epoch keys to days", func(t *testing.T) {
		// 1704067200 = 2024-01-01T00:00:00Z
		subs, err := leetcode.ParseSubmissionCalendar(`{"1704067200": 7, "1704153600": 2}`)
		require.NoError(t, err)
		assert.Equal(t, entity.Submissions{
			time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC): 7,
			time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC): 2,
		}, subs)
	})
	t.Run("empty object", func(t *testing.T) {
		subs, err := leetcode.ParseSubmissionCalendar(`{}`)
		require.NoError(t, err)
		assert.Empty(t, subs)
	})
	t.Run("zero count is kept", func(t *testing.T) {
		subs, err := leetcode.ParseSubmissionCalendar(`{"1704067200": 0}`)
		require.NoError(t, err)
		count, ok := subs[time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)]
		require.True(t, ok)
		assert.Equal(t, 0, count)
	})
	t.Run("same day collision keeps the larger count", func(t *testing.T) {
		// both timestamps fall on 2024-01-01
		subs, err := leetcode.ParseSubmissionCalendar(`{"1704067200": 2, "1704100000": 5}`)
		require.NoError(t, err)
		assert.Equal(t, entity.Submissions{
			time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC): 5,
		}, subs)
	})
	t.Run("malformed payload", func(t *testing.T) {
		_, err := leetcode.ParseSubmissionCalendar(`not json`)
		assert.ErrorIs(t, err, errorvalues.ErrParse)
	})
	t.Run("non numeric key", func(t *testing.T) {
		_, err := leetcode.ParseSubmissionCalendar(`{"yesterday": 3}`)
		assert.ErrorIs(t, err, errorvalues.ErrParse)
	})
}
