package services

import (
	"context"
	"strings"

	"github.com/Mayuushi/freedom-wall-music/dto"
	"github.com/Mayuushi/freedom-wall-music/internal/youtube"
)

const (
	MinQueryLength = 2
	MaxQueryLength = 80
)

type VideoSearcher interface {
	Search(ctx context.Context, q string) ([]youtube.Video, error)
}

type SearchService struct {
	Videos VideoSearcher
}

func NewSearchService(videos VideoSearcher) *SearchService {
	return &SearchService{Videos: videos}
}

// Search proxies a video search. Short queries never reach the upstream API.
func (s *SearchService) Search(ctx context.Context, q string) ([]dto.VideoItem, error) {
	query := []rune(strings.TrimSpace(q))
	if len(query) > MaxQueryLength {
		query = query[:MaxQueryLength]
	}
	if len(query) < MinQueryLength {
		return []dto.VideoItem{}, nil
	}

	videos, err := s.Videos.Search(ctx, string(query))
	if err != nil {
		return nil, err
	}
	items := make([]dto.VideoItem, 0, len(videos))
	for _, v := range videos {
		items = append(items, dto.VideoItem{
			VideoID:      v.VideoID,
			Title:        v.Title,
			ChannelTitle: v.ChannelTitle,
			Thumbnail:    v.Thumbnail,
			URL:          v.URL,
		})
	}
	return items, nil
}
