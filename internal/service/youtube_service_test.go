package service

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"guru_learn_backend/internal/config"
)

func TestSearchVideos(t *testing.T) {
	var gotQuery, gotEmbeddable, gotMax string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("q")
		gotEmbeddable = r.URL.Query().Get("videoEmbeddable")
		gotMax = r.URL.Query().Get("maxResults")
		fmt.Fprint(w, `{"items":[
			{"id":{"videoId":"v1"},"snippet":{"title":"Intro","description":"d1","channelTitle":"Chan","thumbnails":{"high":{"url":"http://img/1.jpg"}}}},
			{"id":{"videoId":"v2"},"snippet":{"title":"Part 2","description":"d2","channelTitle":"Chan","thumbnails":{"high":{"url":"http://img/2.jpg"}}}}
		]}`)
	}))
	defer srv.Close()

	svc := NewYouTubeService(config.YouTubeConfig{APIKey: "key", BaseURL: srv.URL})
	videos, err := svc.SearchVideos(context.Background(), "go basics", 2)
	if err != nil {
		t.Fatalf("SearchVideos: %v", err)
	}

	if gotQuery != "go basics" {
		t.Errorf("query = %q", gotQuery)
	}
	if gotEmbeddable != "true" {
		t.Errorf("videoEmbeddable = %q, want true", gotEmbeddable)
	}
	if gotMax != "2" {
		t.Errorf("maxResults = %q, want 2", gotMax)
	}

	if len(videos) != 2 {
		t.Fatalf("videos = %d, want 2", len(videos))
	}
	if videos[0].EmbedURL != "https://www.youtube.com/embed/v1" {
		t.Errorf("embed url = %q", videos[0].EmbedURL)
	}
	if videos[0].Duration != "N/A" {
		t.Errorf("duration = %q, want N/A", videos[0].Duration)
	}
}

func TestSearchVideosRequiresAPIKey(t *testing.T) {
	svc := NewYouTubeService(config.YouTubeConfig{})
	if _, err := svc.SearchVideos(context.Background(), "anything", 1); err == nil {
		t.Error("expected error without an api key")
	}
}

func TestSearchVideosUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"code":403,"message":"quota exceeded"}}`, http.StatusForbidden)
	}))
	defer srv.Close()

	svc := NewYouTubeService(config.YouTubeConfig{APIKey: "key", BaseURL: srv.URL})
	if _, err := svc.SearchVideos(context.Background(), "anything", 1); err == nil {
		t.Error("expected error on upstream 403")
	}
}
