package usecase

import "errors"

var (
	// ErrInvalidNotice is returned when notice input fails validation.
	// It is wrapped with a description of the offending field.
	ErrInvalidNotice = errors.New("invalid notice")

	// ErrNoticeNotFound is returned when a notice does not exist.
	ErrNoticeNotFound = errors.New("notice not found")
)
