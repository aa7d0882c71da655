package service

import (
	"fmt"

	"guru_learn_backend/internal/model"
	"guru_learn_backend/internal/repository"
)

type AssessmentService struct {
	AssessmentRepo *repository.AssessmentRepository
	CourseRepo     *repository.CourseRepository
}

func NewAssessmentService(assessmentRepo *repository.AssessmentRepository, courseRepo *repository.CourseRepository) *AssessmentService {
	return &AssessmentService{
		AssessmentRepo: assessmentRepo,
		CourseRepo:     courseRepo,
	}
}

type SubmittedAnswer struct {
	Question   string `json:"question"`
	UserAnswer string `json:"userAnswer"`
	IsCorrect  bool   `json:"isCorrect"`
}

// Submit records one quiz attempt. The percentage is computed server side;
// the record is immutable once written.
func (s *AssessmentService) Submit(userID, courseID uint, topic string, score, totalQuestions int, answers []SubmittedAnswer) (*model.Assessment, error) {
	percentage := 0.0
	if totalQuestions > 0 {
		percentage = float64(score) / float64(totalQuestions) * 100
	}

	assessment := &model.Assessment{
		UserID:         userID,
		CourseID:       courseID,
		Topic:          topic,
		Score:          score,
		TotalQuestions: totalQuestions,
		Percentage:     percentage,
	}
	for _, a := range answers {
		assessment.Answers = append(assessment.Answers, model.AssessmentAnswer{
			Question:   a.Question,
			UserAnswer: a.UserAnswer,
			IsCorrect:  a.IsCorrect,
		})
	}

	if err := s.AssessmentRepo.Create(assessment); err != nil {
		return nil, err
	}
	return assessment, nil
}

type Prediction struct {
	AverageScore string `json:"averageScore"`
	QuizzesTaken int    `json:"quizzesTaken"`
	TotalLessons int    `json:"totalLessons"`
	Prediction   string `json:"prediction"`
}

// Predict averages a user's attempt percentages for one course and maps the
// average onto an advisory message.
func (s *AssessmentService) Predict(userID, courseID uint) (*Prediction, error) {
	assessments, err := s.AssessmentRepo.ListByUserAndCourse(userID, courseID)
	if err != nil {
		return nil, err
	}

	if len(assessments) == 0 {
		return &Prediction{
			AverageScore: "N/A",
			Prediction:   "No quiz data available for prediction yet for this course.",
		}, nil
	}

	totalLessons := len(assessments)
	if course, err := s.CourseRepo.FindByID(courseID); err == nil {
		totalLessons = course.Lessons
	}

	var total float64
	for _, a := range assessments {
		total += a.Percentage
	}
	average := total / float64(len(assessments))

	var message string
	switch {
	case average >= 80:
		message = "Excellent progress! You are likely to master this course."
	case average >= 60:
		message = "Good progress. You are on track to complete this course successfully."
	case average >= 40:
		message = "Needs some improvement. Consider reviewing earlier lessons in this course."
	default:
		message = "At risk of falling behind. Strong recommendation to seek additional support for this course."
	}

	return &Prediction{
		AverageScore: fmt.Sprintf("%.2f", average),
		QuizzesTaken: len(assessments),
		TotalLessons: totalLessons,
		Prediction:   message,
	}, nil
}
