package service

import (
	"context"
	"testing"

	"guru_learn_backend/internal/model"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
)

func TestDashboardStats(t *testing.T) {
	db := newTestDB(t)
	repos := newTestRepos(db)
	svc := NewDashboardService(repos.user, repos.course, nil)

	for _, u := range []string{"a@example.com", "b@example.com"} {
		if err := repos.user.Create(&model.User{FullName: "U", Email: u, Password: "x"}); err != nil {
			t.Fatal(err)
		}
	}
	if err := repos.course.Create(&model.Course{Title: "Only Course", Instructor: "I", Category: "C"}); err != nil {
		t.Fatal(err)
	}

	stats, err := svc.Stats(context.Background())
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if stats.TotalUsers != 2 {
		t.Errorf("totalUsers = %d, want 2", stats.TotalUsers)
	}
	if stats.TotalCourses != 1 {
		t.Errorf("totalCourses = %d, want 1", stats.TotalCourses)
	}
}

func TestDashboardStatsCached(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	db := newTestDB(t)
	repos := newTestRepos(db)
	svc := NewDashboardService(repos.user, repos.course, rdb)
	ctx := context.Background()

	if _, err := svc.Stats(ctx); err != nil {
		t.Fatal(err)
	}
	if !mr.Exists("admin:dashboard_stats") {
		t.Fatal("stats cache key missing")
	}

	// New rows are invisible until the cache entry expires.
	if err := repos.user.Create(&model.User{FullName: "U", Email: "late@example.com", Password: "x"}); err != nil {
		t.Fatal(err)
	}
	stats, err := svc.Stats(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if stats.TotalUsers != 0 {
		t.Errorf("totalUsers = %d, want cached 0", stats.TotalUsers)
	}

	mr.FastForward(statsCacheTTL + 1)
	stats, err = svc.Stats(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if stats.TotalUsers != 1 {
		t.Errorf("totalUsers after expiry = %d, want 1", stats.TotalUsers)
	}
}
