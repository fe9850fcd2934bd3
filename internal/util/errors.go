package util

import "errors"

var (
	ErrUserNotFound   = errors.New("user not found")
	ErrCourseNotFound = errors.New("course not found")

	ErrInvalidCategory   = errors.New("invalid course category")
	ErrInvalidTotalHours = errors.New("total hours must be positive")
	ErrHoursOutOfRange   = errors.New("completed hours out of range")
	ErrInvalidAmount     = errors.New("experience amount must be positive")

	// ErrConcurrentUpdate is internal to the award retry loop; it escapes
	// only when the retry budget is exhausted.
	ErrConcurrentUpdate = errors.New("concurrent progress update")
)
