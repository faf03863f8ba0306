package domain

import "errors"

var (
	ErrEmptyChangeset       = errors.New("no files to commit")
	ErrInvalidCommitCount   = errors.New("commit count must be a positive integer")
	ErrInvalidDate          = errors.New("invalid date, expected YYYY-MM-DD")
	ErrInvalidDateRange     = errors.New("start date must not be after end date")
	ErrInvalidRepo          = errors.New("not a git repository")
	ErrInvalidSectionCount  = errors.New("section count must be a positive integer")
	ErrRunNotFound          = errors.New("run not found")
	ErrSchedulerAlreadyUsed = errors.New("scheduler already ran")
)
