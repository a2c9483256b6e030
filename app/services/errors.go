package services

import "errors"

// Sentinel errors the controllers map onto HTTP statuses.
var (
	ErrCourseNotFound     = errors.New("course not found")
	ErrChapterNotFound    = errors.New("chapter not found")
	ErrEmailAlreadyUsed   = errors.New("email already in use")
	ErrPhoneAlreadyUsed   = errors.New("phone number already in use")
	ErrMissingIdentifier  = errors.New("please provide either email or phone number")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUploadFailed       = errors.New("upload failed")
)
