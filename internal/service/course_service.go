package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"guru_learn_backend/internal/model"
	"guru_learn_backend/internal/repository"
	"guru_learn_backend/internal/util"
	"guru_learn_backend/pkg/logger"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	catalogCacheKey    = "courses:catalog"
	categoriesCacheKey = "courses:categories"
	catalogCacheTTL    = 5 * time.Minute
)

type CourseService struct {
	CourseRepo     *repository.CourseRepository
	UserRepo       *repository.UserRepository
	EnrollmentRepo *repository.EnrollmentRepository
	Agent          AgentClient
	YouTube        *YouTubeService
	Redis          *redis.Client
}

func NewCourseService(
	courseRepo *repository.CourseRepository,
	userRepo *repository.UserRepository,
	enrollmentRepo *repository.EnrollmentRepository,
	agent AgentClient,
	youtube *YouTubeService,
	rdb *redis.Client,
) *CourseService {
	return &CourseService{
		CourseRepo:     courseRepo,
		UserRepo:       userRepo,
		EnrollmentRepo: enrollmentRepo,
		Agent:          agent,
		YouTube:        youtube,
		Redis:          rdb,
	}
}

// ListAll serves the catalog from redis when possible. A cache failure is
// never fatal, the database stays authoritative.
func (s *CourseService) ListAll(ctx context.Context) ([]model.Course, error) {
	if s.Redis != nil {
		if val, err := s.Redis.Get(ctx, catalogCacheKey).Result(); err == nil {
			var cached []model.Course
			if err := json.Unmarshal([]byte(val), &cached); err == nil {
				return cached, nil
			}
		}
	}

	courses, err := s.CourseRepo.ListAll()
	if err != nil {
		return nil, err
	}

	if s.Redis != nil {
		if data, err := json.Marshal(courses); err == nil {
			if err := s.Redis.Set(ctx, catalogCacheKey, data, catalogCacheTTL).Err(); err != nil {
				logger.Log.Warn("catalog cache write failed", zap.Error(err))
			}
		}
	}

	return courses, nil
}

func (s *CourseService) ListCategories(ctx context.Context) ([]string, error) {
	if s.Redis != nil {
		if val, err := s.Redis.Get(ctx, categoriesCacheKey).Result(); err == nil {
			var cached []string
			if err := json.Unmarshal([]byte(val), &cached); err == nil {
				return cached, nil
			}
		}
	}

	categories, err := s.CourseRepo.ListCategories()
	if err != nil {
		return nil, err
	}

	if s.Redis != nil {
		if data, err := json.Marshal(categories); err == nil {
			if err := s.Redis.Set(ctx, categoriesCacheKey, data, catalogCacheTTL).Err(); err != nil {
				logger.Log.Warn("categories cache write failed", zap.Error(err))
			}
		}
	}

	return categories, nil
}

func (s *CourseService) Get(id uint) (*model.Course, error) {
	course, err := s.CourseRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrCourseNotFound
	}
	return course, err
}

// Create validates the catalog entry, generates one placeholder module per
// lesson and invalidates the catalog cache.
func (s *CourseService) Create(ctx context.Context, course *model.Course) error {
	if course.Level == "" {
		course.Level = model.LevelBeginner
	}
	if !course.Level.Valid() {
		return util.ErrInvalidLevel
	}

	_, err := s.CourseRepo.FindByTitle(course.Title)
	if err == nil {
		return util.ErrTitleTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	if course.Lessons <= 0 {
		course.Lessons = 1
	}
	for i := 1; i <= course.Lessons; i++ {
		course.Modules = append(course.Modules, model.CourseModule{
			Position: i,
			Title:    fmt.Sprintf("Lesson %d: %s - Part %d", i, course.Title, i),
			Content:  fmt.Sprintf("This is content for Lesson %d of the %s course.", i, course.Title),
		})
	}

	if err := s.CourseRepo.Create(course); err != nil {
		return err
	}

	s.invalidateCatalog(ctx)
	return nil
}

// Update applies catalog edits to an existing course. The title must stay
// unique across the rest of the catalog and the level constrained.
func (s *CourseService) Update(ctx context.Context, course *model.Course) error {
	if !course.Level.Valid() {
		return util.ErrInvalidLevel
	}

	existing, err := s.CourseRepo.FindByTitle(course.Title)
	switch {
	case err == nil:
		if existing.ID != course.ID {
			return util.ErrTitleTaken
		}
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return err
	}

	if err := s.CourseRepo.Update(course); err != nil {
		return err
	}

	s.invalidateCatalog(ctx)
	return nil
}

// Delete removes a catalog entry and its lesson modules.
func (s *CourseService) Delete(ctx context.Context, id uint) error {
	if _, err := s.Get(id); err != nil {
		return err
	}

	if err := s.CourseRepo.Delete(id); err != nil {
		return err
	}

	s.invalidateCatalog(ctx)
	return nil
}

// Enroll opts a user into a course. Re-enrolling is a user error, never a
// silent duplicate: the lookup plus the unique (user_id, course_id) index
// keep the enrollment set unchanged on the second call.
func (s *CourseService) Enroll(userID, courseID uint) error {
	if _, err := s.UserRepo.FindByID(userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrUserNotFound
		}
		return err
	}
	if _, err := s.CourseRepo.FindByID(courseID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrCourseNotFound
		}
		return err
	}

	enrolled, err := s.EnrollmentRepo.Exists(userID, courseID)
	if err != nil {
		return err
	}
	if enrolled {
		return util.ErrAlreadyEnrolled
	}

	err = s.EnrollmentRepo.Create(&model.Enrollment{
		UserID:   userID,
		CourseID: courseID,
		Status:   model.EnrollmentOngoing,
	})
	// Two racing requests can both pass the lookup; the unique index catches
	// the loser and the caller still sees the duplicate-enrollment error.
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return util.ErrAlreadyEnrolled
	}
	return err
}

func (s *CourseService) EnrolledCourses(userID uint) ([]model.Course, error) {
	enrollments, err := s.EnrollmentRepo.ListByUser(userID)
	if err != nil {
		return nil, err
	}

	courses := make([]model.Course, 0, len(enrollments))
	for _, e := range enrollments {
		if e.Course != nil {
			courses = append(courses, *e.Course)
		}
	}
	return courses, nil
}

// Videos looks up one YouTube video per lesson for the course title.
func (s *CourseService) Videos(ctx context.Context, courseID uint) ([]Video, error) {
	course, err := s.Get(courseID)
	if err != nil {
		return nil, err
	}
	max := course.Lessons
	if max <= 0 {
		max = 1
	}
	return s.YouTube.SearchVideos(ctx, course.Title, max)
}

// GenerateContent fills every lesson slot with a YouTube video and an AI
// generated quiz. Upstream failures degrade per lesson: a slot that could not
// be filled stays empty while the rest of the course is still generated.
func (s *CourseService) GenerateContent(ctx context.Context, courseID uint) (*model.Course, error) {
	course, err := s.Get(courseID)
	if err != nil {
		return nil, err
	}

	lessons := course.Lessons
	if lessons <= 0 {
		lessons = 3
	}

	modules := make([]model.CourseModule, 0, lessons)
	for i := 1; i <= lessons; i++ {
		lessonTitle := fmt.Sprintf("%s - Lesson %d", course.Title, i)
		module := model.CourseModule{
			CourseID: course.ID,
			Position: i,
			Title:    lessonTitle,
		}

		videos, err := s.YouTube.SearchVideos(ctx, lessonTitle, 1)
		if err != nil {
			logger.Log.Warn("video lookup failed for lesson",
				zap.String("lesson", lessonTitle), zap.Error(err))
		} else if len(videos) > 0 {
			v := videos[0]
			module.VideoID = v.VideoID
			module.VideoTitle = v.Title
			module.VideoThumbnail = v.Thumbnail
			module.VideoChannelTitle = v.ChannelTitle
			module.VideoEmbedURL = v.EmbedURL
			module.VideoDuration = v.Duration
		}

		questions, err := s.Agent.GenerateQuiz(ctx, lessonTitle)
		if err != nil {
			logger.Log.Warn("quiz generation failed for lesson",
				zap.String("lesson", lessonTitle), zap.Error(err))
		} else if len(questions) > 0 {
			if data, err := json.Marshal(questions); err == nil {
				module.Quiz = data
				module.QuizGenerated = true
			}
		}

		modules = append(modules, module)
	}

	now := time.Now()
	course.Modules = modules
	course.ContentGenerated = true
	course.LastContentSync = &now

	if err := s.CourseRepo.SaveWithModules(course); err != nil {
		return nil, err
	}

	s.invalidateCatalog(ctx)
	return course, nil
}

func (s *CourseService) invalidateCatalog(ctx context.Context) {
	if s.Redis == nil {
		return
	}
	if err := s.Redis.Del(ctx, catalogCacheKey, categoriesCacheKey).Err(); err != nil {
		logger.Log.Warn("catalog cache invalidation failed", zap.Error(err))
	}
}
