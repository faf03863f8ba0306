package domain

import (
	"fmt"
	"time"
)

// CommitRequest describes one scheduled commit attempt
type CommitRequest struct {
	Attempt      int       // 0-based attempt index
	Files        Section   // Files staged for this attempt
	Message      string    // Full commit message, including the section label
	SectionIndex int       // 0-based index into the section list
	Timestamp    time.Time // Author and committer date
}

// SectionLabel returns the 1-based section number shown to the operator
func (r CommitRequest) SectionLabel() int {
	return r.SectionIndex + 1
}

// CommitResult is the outcome of one commit attempt
type CommitResult struct {
	Request   CommitRequest
	Succeeded bool
}

// SectionMessage tags the base message with a 1-based section label
func SectionMessage(base string, sectionIndex int) string {
	return fmt.Sprintf("%s (Section %d)", base, sectionIndex+1)
}
