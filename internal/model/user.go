package model

import (
	"encoding/json"
	"time"
)

type UserRole string

const (
	RoleUser  UserRole = "user"
	RoleAdmin UserRole = "admin"
)

// swagger:model User
type User struct {
	BaseModel
	FullName  string          `gorm:"size:100;not null" json:"fullName"`
	Email     string          `gorm:"size:100;unique;not null" json:"email"`
	Password  string          `gorm:"size:100;not null" json:"-"`
	Role      UserRole        `gorm:"size:20;default:'user';index" json:"role"`
	Points    int             `gorm:"default:0" json:"points"`
	Streak    int             `gorm:"default:0" json:"streak"`
	Badges    json.RawMessage `gorm:"type:json" json:"badges,omitempty"`
	LastLogin time.Time       `gorm:"default:CURRENT_TIMESTAMP(3)" json:"lastLogin"`
}

func (User) TableName() string {
	return "users"
}

func (r UserRole) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}
