package repository

import (
	"guru_learn_backend/internal/model"

	"gorm.io/gorm"
)

type AssessmentRepository struct {
	DB *gorm.DB
}

func NewAssessmentRepository(db *gorm.DB) *AssessmentRepository {
	return &AssessmentRepository{DB: db}
}

// Create persists the attempt together with its answer rows in one
// transaction. Attempts are never updated afterwards.
func (r *AssessmentRepository) Create(assessment *model.Assessment) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		return tx.Create(assessment).Error
	})
}

func (r *AssessmentRepository) ListByUserAndCourse(userID, courseID uint) ([]model.Assessment, error) {
	var assessments []model.Assessment
	err := r.DB.Where("user_id = ? AND course_id = ?", userID, courseID).
		Preload("Answers").
		Order("created_at ASC").
		Find(&assessments).Error
	return assessments, err
}
