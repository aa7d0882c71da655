package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"guru_learn_backend/internal/config"
)

const defaultYouTubeBaseURL = "https://www.googleapis.com/youtube/v3/search"

type Video struct {
	VideoID      string `json:"videoId"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	Thumbnail    string `json:"thumbnail"`
	ChannelTitle string `json:"channelTitle"`
	EmbedURL     string `json:"embedUrl"`
	Duration     string `json:"duration"`
}

type YouTubeService struct {
	cfg    config.YouTubeConfig
	client *http.Client
}

func NewYouTubeService(cfg config.YouTubeConfig) *YouTubeService {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultYouTubeBaseURL
	}
	return &YouTubeService{
		cfg:    cfg,
		client: http.DefaultClient,
	}
}

type searchResponse struct {
	Items []struct {
		ID struct {
			VideoID string `json:"videoId"`
		} `json:"id"`
		Snippet struct {
			Title        string `json:"title"`
			Description  string `json:"description"`
			ChannelTitle string `json:"channelTitle"`
			Thumbnails   struct {
				High struct {
					URL string `json:"url"`
				} `json:"high"`
			} `json:"thumbnails"`
		} `json:"snippet"`
	} `json:"items"`
}

// SearchVideos queries the Data API for embeddable videos matching the query.
func (s *YouTubeService) SearchVideos(ctx context.Context, query string, maxResults int) ([]Video, error) {
	if s.cfg.APIKey == "" {
		return nil, fmt.Errorf("youtube api key is not configured")
	}
	if maxResults <= 0 {
		maxResults = 1
	}

	params := url.Values{}
	params.Set("key", s.cfg.APIKey)
	params.Set("q", query)
	params.Set("part", "snippet")
	params.Set("type", "video")
	params.Set("videoEmbeddable", "true")
	params.Set("maxResults", strconv.Itoa(maxResults))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.cfg.BaseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("youtube search failed (status %d): %s", resp.StatusCode, string(body))
	}

	var result searchResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, err
	}

	videos := make([]Video, 0, len(result.Items))
	for _, item := range result.Items {
		videos = append(videos, Video{
			VideoID:      item.ID.VideoID,
			Title:        item.Snippet.Title,
			Description:  item.Snippet.Description,
			Thumbnail:    item.Snippet.Thumbnails.High.URL,
			ChannelTitle: item.Snippet.ChannelTitle,
			EmbedURL:     "https://www.youtube.com/embed/" + item.ID.VideoID,
			Duration:     "N/A",
		})
	}
	return videos, nil
}
