package service

import (
	"testing"

	"guru_learn_backend/internal/model"
)

func newAssessmentFixture(t *testing.T) (*AssessmentService, *testRepos, *model.User, *model.Course) {
	t.Helper()
	db := newTestDB(t)
	repos := newTestRepos(db)
	svc := NewAssessmentService(repos.assessment, repos.course)

	user := &model.User{FullName: "Ann", Email: "quiz@example.com", Password: "x"}
	if err := repos.user.Create(user); err != nil {
		t.Fatal(err)
	}
	course := &model.Course{Title: "Quizzed", Instructor: "A", Category: "C", Lessons: 4}
	if err := repos.course.Create(course); err != nil {
		t.Fatal(err)
	}
	return svc, repos, user, course
}

func TestSubmitComputesPercentage(t *testing.T) {
	svc, repos, user, course := newAssessmentFixture(t)

	answers := []SubmittedAnswer{
		{Question: "Q1", UserAnswer: "A", IsCorrect: true},
		{Question: "Q2", UserAnswer: "B", IsCorrect: true},
		{Question: "Q3", UserAnswer: "C", IsCorrect: true},
		{Question: "Q4", UserAnswer: "D", IsCorrect: false},
	}
	assessment, err := svc.Submit(user.ID, course.ID, "Loops", 3, 4, answers)
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}

	if assessment.Percentage != 75 {
		t.Errorf("percentage = %v, want 75", assessment.Percentage)
	}
	if assessment.ID == "" {
		t.Error("assessment id not assigned")
	}

	stored, err := repos.assessment.ListByUserAndCourse(user.ID, course.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(stored) != 1 {
		t.Fatalf("stored attempts = %d, want 1", len(stored))
	}
	if len(stored[0].Answers) != 4 {
		t.Errorf("stored answers = %d, want 4", len(stored[0].Answers))
	}
}

func TestPredictWithoutData(t *testing.T) {
	svc, _, user, course := newAssessmentFixture(t)

	p, err := svc.Predict(user.ID, course.ID)
	if err != nil {
		t.Fatalf("Predict: %v", err)
	}
	if p.AverageScore != "N/A" {
		t.Errorf("average = %q, want N/A", p.AverageScore)
	}
	if p.QuizzesTaken != 0 {
		t.Errorf("quizzes taken = %d, want 0", p.QuizzesTaken)
	}
}

func TestPredictAdvisoryBands(t *testing.T) {
	tests := []struct {
		name   string
		scores []int // out of 10
		want   string
	}{
		{"excellent", []int{9, 8}, "Excellent progress! You are likely to master this course."},
		{"good", []int{7, 6}, "Good progress. You are on track to complete this course successfully."},
		{"needs improvement", []int{5, 4}, "Needs some improvement. Consider reviewing earlier lessons in this course."},
		{"at risk", []int{2, 3}, "At risk of falling behind. Strong recommendation to seek additional support for this course."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _, user, course := newAssessmentFixture(t)

			for _, score := range tt.scores {
				if _, err := svc.Submit(user.ID, course.ID, "Band", score, 10, nil); err != nil {
					t.Fatal(err)
				}
			}

			p, err := svc.Predict(user.ID, course.ID)
			if err != nil {
				t.Fatalf("Predict: %v", err)
			}
			if p.Prediction != tt.want {
				t.Errorf("prediction = %q, want %q", p.Prediction, tt.want)
			}
			if p.QuizzesTaken != len(tt.scores) {
				t.Errorf("quizzes taken = %d, want %d", p.QuizzesTaken, len(tt.scores))
			}
			if p.TotalLessons != course.Lessons {
				t.Errorf("total lessons = %d, want %d", p.TotalLessons, course.Lessons)
			}
		})
	}
}
