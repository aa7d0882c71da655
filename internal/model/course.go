package model

import (
	"encoding/json"
	"time"
)

type CourseLevel string

const (
	LevelBeginner     CourseLevel = "Beginner"
	LevelIntermediate CourseLevel = "Intermediate"
	LevelAdvanced     CourseLevel = "Advanced"
)

// swagger:model Course
type Course struct {
	BaseModel
	Title            string         `gorm:"size:255;unique;not null" json:"title"`
	Description      string         `gorm:"type:text" json:"description"`
	Instructor       string         `gorm:"size:100;not null" json:"instructor"`
	Price            float64        `gorm:"default:0" json:"price"`
	Category         string         `gorm:"size:100;not null;index" json:"category"`
	Level            CourseLevel    `gorm:"size:20;default:'Beginner'" json:"level"`
	ImageURL         string         `gorm:"size:255" json:"imageUrl"`
	Duration         string         `gorm:"size:50" json:"duration"`
	Rating           float64        `gorm:"default:0" json:"rating"`
	Lessons          int            `gorm:"default:0" json:"lessons"`
	IsPublished      bool           `gorm:"default:false" json:"isPublished"`
	ContentGenerated bool           `gorm:"default:false" json:"contentGenerated"`
	LastContentSync  *time.Time     `json:"lastContentSync,omitempty"`
	Modules          []CourseModule `gorm:"foreignKey:CourseID" json:"modules,omitempty"`
}

func (Course) TableName() string {
	return "courses"
}

func (l CourseLevel) Valid() bool {
	return l == LevelBeginner || l == LevelIntermediate || l == LevelAdvanced
}

// CourseModule is one lesson slot of a course. Video fields hold the YouTube
// lookup result; Quiz holds the generated question set verbatim.
type CourseModule struct {
	BaseModel
	CourseID          uint            `gorm:"index;not null" json:"courseId"`
	Position          int             `gorm:"not null" json:"position"`
	Title             string          `gorm:"size:255;not null" json:"title"`
	Content           string          `gorm:"type:text" json:"content"`
	VideoID           string          `gorm:"size:32" json:"videoId,omitempty"`
	VideoTitle        string          `gorm:"size:255" json:"videoTitle,omitempty"`
	VideoThumbnail    string          `gorm:"size:255" json:"videoThumbnail,omitempty"`
	VideoChannelTitle string          `gorm:"size:255" json:"videoChannelTitle,omitempty"`
	VideoEmbedURL     string          `gorm:"size:255" json:"videoEmbedUrl,omitempty"`
	VideoDuration     string          `gorm:"size:32" json:"videoDuration,omitempty"`
	Quiz              json.RawMessage `gorm:"type:json" json:"quiz,omitempty"`
	QuizGenerated     bool            `gorm:"default:false" json:"quizGenerated"`
}

func (CourseModule) TableName() string {
	return "course_modules"
}
