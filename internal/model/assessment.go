package model

// Assessment records one quiz attempt. Created at submission time and never
// mutated afterwards.
//
// swagger:model Assessment
type Assessment struct {
	UUIDBase
	UserID         uint               `gorm:"index;not null" json:"userId"`
	CourseID       uint               `gorm:"index;not null" json:"courseId"`
	Topic          string             `gorm:"size:255;not null" json:"topic"`
	Score          int                `gorm:"not null" json:"score"`
	TotalQuestions int                `gorm:"not null" json:"totalQuestions"`
	Percentage     float64            `gorm:"not null" json:"percentage"`
	Answers        []AssessmentAnswer `gorm:"foreignKey:AssessmentID" json:"answers,omitempty"`
}

func (Assessment) TableName() string {
	return "assessments"
}

type AssessmentAnswer struct {
	UUIDBase
	AssessmentID string `gorm:"index;type:varchar(36)" json:"assessmentId"`
	Question     string `gorm:"type:text" json:"question"`
	UserAnswer   string `gorm:"type:text" json:"userAnswer"`
	IsCorrect    bool   `gorm:"default:false" json:"isCorrect"`
}

func (AssessmentAnswer) TableName() string {
	return "assessment_answers"
}
