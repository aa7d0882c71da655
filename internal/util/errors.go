package util

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrCourseNotFound     = errors.New("course not found")
	ErrEmailRegistered    = errors.New("email already registered")
	ErrTitleTaken         = errors.New("course title already exists")
	ErrAlreadyEnrolled    = errors.New("user is already enrolled in this course")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidRole        = errors.New("invalid role")
	ErrInvalidLevel       = errors.New("invalid course level")
)
