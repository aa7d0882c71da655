package service

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"guru_learn_backend/internal/config"
)

func TestLocalStorageProvider(t *testing.T) {
	dir := t.TempDir()
	provider := &LocalStorageProvider{Config: &config.StorageConfig{LocalPath: dir}}
	ctx := context.Background()

	url, err := provider.Upload(ctx, "courses/cover.png", strings.NewReader("png-bytes"), 9, "image/png")
	if err != nil {
		t.Fatalf("Upload: %v", err)
	}
	if url != "/uploads/courses/cover.png" {
		t.Errorf("url = %q", url)
	}

	data, err := os.ReadFile(filepath.Join(dir, "courses", "cover.png"))
	if err != nil {
		t.Fatalf("read uploaded file: %v", err)
	}
	if string(data) != "png-bytes" {
		t.Errorf("content = %q", data)
	}

	if err := provider.Delete(ctx, "courses/cover.png"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "courses", "cover.png")); !os.IsNotExist(err) {
		t.Error("file still present after Delete")
	}
}

func TestStorageServiceFallsBackToLocal(t *testing.T) {
	cfg := &config.Config{}
	cfg.Storage.Type = "local"
	cfg.Storage.LocalPath = t.TempDir()

	svc := NewStorageService(cfg)
	if _, ok := svc.Provider.(*LocalStorageProvider); !ok {
		t.Errorf("provider = %T, want *LocalStorageProvider", svc.Provider)
	}
}
