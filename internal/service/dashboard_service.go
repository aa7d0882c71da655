package service

import (
	"context"
	"encoding/json"
	"time"

	"guru_learn_backend/internal/repository"

	"github.com/go-redis/redis/v8"
)

const (
	statsCacheKey = "admin:dashboard_stats"
	statsCacheTTL = time.Minute
)

type DashboardService struct {
	UserRepo   *repository.UserRepository
	CourseRepo *repository.CourseRepository
	Redis      *redis.Client
}

func NewDashboardService(userRepo *repository.UserRepository, courseRepo *repository.CourseRepository, rdb *redis.Client) *DashboardService {
	return &DashboardService{
		UserRepo:   userRepo,
		CourseRepo: courseRepo,
		Redis:      rdb,
	}
}

type DashboardStats struct {
	TotalUsers   int64 `json:"totalUsers"`
	TotalCourses int64 `json:"totalCourses"`
}

func (s *DashboardService) Stats(ctx context.Context) (*DashboardStats, error) {
	if s.Redis != nil {
		if val, err := s.Redis.Get(ctx, statsCacheKey).Result(); err == nil {
			var cached DashboardStats
			if err := json.Unmarshal([]byte(val), &cached); err == nil {
				return &cached, nil
			}
		}
	}

	totalUsers, err := s.UserRepo.Count()
	if err != nil {
		return nil, err
	}
	totalCourses, err := s.CourseRepo.Count()
	if err != nil {
		return nil, err
	}

	stats := &DashboardStats{
		TotalUsers:   totalUsers,
		TotalCourses: totalCourses,
	}

	if s.Redis != nil {
		if data, err := json.Marshal(stats); err == nil {
			s.Redis.Set(ctx, statsCacheKey, data, statsCacheTTL)
		}
	}

	return stats, nil
}
