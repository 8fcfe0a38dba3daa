package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPageOf(t *testing.T) {
	items := []string{"a", "b", "c", "d"}

	tests := []struct {
		name    string
		limit   int
		skip    int
		want    []string
		hasMore bool
	}{
		{name: "first page", limit: 2, skip: 0, want: []string{"a", "b"}, hasMore: true},
		{name: "middle page", limit: 2, skip: 1, want: []string{"b", "c"}, hasMore: true},
		{name: "exact end", limit: 2, skip: 2, want: []string{"c", "d"}, hasMore: false},
		{name: "short last page", limit: 2, skip: 3, want: []string{"d"}, hasMore: false},
		{name: "skip beyond list", limit: 2, skip: 10, want: []string{}, hasMore: false},
		{name: "limit covers all", limit: 10, skip: 0, want: []string{"a", "b", "c", "d"}, hasMore: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page := PageOf(items, tt.limit, tt.skip)
			assert.Equal(t, tt.want, page.List)
			assert.Equal(t, tt.hasMore, page.HasMore)
		})
	}
}

func TestTrimLookahead(t *testing.T) {
	t.Run("surplus row flags more data", func(t *testing.T) {
		page := TrimLookahead([]int{1, 2, 3}, 2)
		assert.Equal(t, []int{1, 2}, page.List)
		assert.True(t, page.HasMore)
	})

	t.Run("exactly limit rows", func(t *testing.T) {
		page := TrimLookahead([]int{1, 2}, 2)
		assert.Equal(t, []int{1, 2}, page.List)
		assert.False(t, page.HasMore)
	})

	t.Run("nil becomes empty page", func(t *testing.T) {
		page := TrimLookahead[int](nil, 2)
		assert.NotNil(t, page.List)
		assert.Empty(t, page.List)
		assert.False(t, page.HasMore)
	})
}
