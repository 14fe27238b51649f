package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Mayuushi/freedom-wall-music/internal/youtube"
)

type mockSearcher struct {
	mock.Mock
}

func (m *mockSearcher) Search(ctx context.Context, q string) ([]youtube.Video, error) {
	args := m.Called(ctx, q)
	videos, _ := args.Get(0).([]youtube.Video)
	return videos, args.Error(1)
}

func TestSearchShortQueryNeverCallsUpstream(t *testing.T) {
	m := &mockSearcher{}
	svc := NewSearchService(m)

	for _, q := range []string{"", " ", "a", "  b  "} {
		items, err := svc.Search(context.Background(), q)
		require.NoError(t, err)
		assert.NotNil(t, items)
		assert.Empty(t, items)
	}
	m.AssertNotCalled(t, "Search", mock.Anything, mock.Anything)
}

func TestSearchTruncatesQuery(t *testing.T) {
	m := &mockSearcher{}
	long := strings.Repeat("x", 100)
	m.On("Search", mock.Anything, strings.Repeat("x", 80)).Return([]youtube.Video{
		{VideoID: "abc123", Title: "T", URL: "https://www.youtube.com/watch?v=abc123"},
	}, nil)

	items, err := NewSearchService(m).Search(context.Background(), "  "+long+"  ")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "abc123", items[0].VideoID)
	m.AssertExpectations(t)
}

func TestSearchPassesUpstreamErrors(t *testing.T) {
	m := &mockSearcher{}
	upstream := &youtube.UpstreamError{Status: 500, Body: "boom"}
	m.On("Search", mock.Anything, "lofi").Return(nil, upstream)

	_, err := NewSearchService(m).Search(context.Background(), "lofi")
	var ue *youtube.UpstreamError
	assert.True(t, errors.As(err, &ue))
}
