package ui

import (
	"fmt"
	"strconv"
	"strings"

	"greener/internal/domain"
	"greener/internal/paths"
)

// ValidateCommitCount accepts a positive integer
func ValidateCommitCount(s string) error {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 {
		return domain.ErrInvalidCommitCount
	}
	return nil
}

// ValidateDate accepts a YYYY-MM-DD calendar date
func ValidateDate(s string) error {
	_, err := domain.ParseDate(strings.TrimSpace(s))
	return err
}

// ValidateEndDate accepts a date that is not before start. An unparsable
// start is left to its own field.
func ValidateEndDate(start string) func(string) error {
	return func(end string) error {
		if err := ValidateDate(end); err != nil {
			return err
		}
		if ValidateDate(start) != nil {
			return nil
		}
		_, err := domain.NewDateRange(strings.TrimSpace(start), strings.TrimSpace(end))
		return err
	}
}

// ValidateRepoPath accepts a directory holding git metadata
func ValidateRepoPath(s string) error {
	path := paths.ExpandPath(strings.TrimSpace(s))
	if path == "" {
		return fmt.Errorf("repository path required")
	}
	if !domain.HasGitMetadata(path) {
		return fmt.Errorf("%w: %s", domain.ErrInvalidRepo, path)
	}
	return nil
}

// ValidateMessage accepts any non-blank commit message
func ValidateMessage(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("commit message required")
	}
	return nil
}
