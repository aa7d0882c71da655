package model

import "encoding/json"

type EnrollmentStatus string

const (
	EnrollmentOngoing   EnrollmentStatus = "ongoing"
	EnrollmentCompleted EnrollmentStatus = "completed"
)

// Enrollment links a user to a course they opted into. The composite unique
// index is the hard guarantee behind enroll idempotence.
type Enrollment struct {
	BaseModel
	UserID           uint             `gorm:"not null;uniqueIndex:idx_user_course" json:"userId"`
	CourseID         uint             `gorm:"not null;uniqueIndex:idx_user_course" json:"courseId"`
	Status           EnrollmentStatus `gorm:"size:20;default:'ongoing'" json:"status"`
	CompletedModules json.RawMessage  `gorm:"type:json" json:"completedModules,omitempty"`
	Course           *Course          `gorm:"foreignKey:CourseID" json:"course,omitempty"`
}

func (Enrollment) TableName() string {
	return "enrollments"
}
