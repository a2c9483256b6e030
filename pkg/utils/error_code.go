package utils

// Authentication errors
const (
	ErrAuthorizationKeyNotFound = "authorization_key_not_found"
	ErrUnauthorized             = "unauthorized"
	ErrTokenExpired             = "token_expired"
	ErrInvalidCredentials       = "invalid_credentials"
)

// Request errors
const (
	ErrBadRequest        = "bad_request"
	ErrMissingIdentifier = "missing_identifier"
)

// User-related errors
const (
	ErrEmailAlreadyUsed = "email_already_used"
	ErrPhoneAlreadyUsed = "phone_number_already_used"
)

// Course/chapter errors
const (
	ErrCourseNotExist   = "course_not_exist"
	ErrChapterNotExist  = "chapter_not_exist"
	ErrVideoRequired    = "video_required"
	ErrResourceRequired = "resource_required"
	ErrUploadFailed     = "upload_failed"
)

// Database errors
const (
	ErrSaveData = "error_save_data"
	ErrGetData  = "error_get_data"
)

// Internal errors
const (
	ErrHashData      = "hash_data_failed"
	ErrGenerateToken = "generate_token_failed"
)
