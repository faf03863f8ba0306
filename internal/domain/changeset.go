package domain

import (
	"sort"
	"strings"
)

// FilePath is a repository-relative path
type FilePath string

// Changeset is the sorted, deduplicated set of paths eligible for committing
type Changeset []FilePath

// NewChangeset merges path lists into a Changeset.
// Blank entries are dropped, duplicates are counted once and the
// result is sorted lexically so the same input always yields the same order.
func NewChangeset(lists ...[]string) Changeset {
	seen := make(map[FilePath]struct{})
	var files Changeset
	for _, list := range lists {
		for _, raw := range list {
			p := FilePath(strings.TrimSpace(raw))
			if p == "" {
				continue
			}
			if _, ok := seen[p]; ok {
				continue
			}
			seen[p] = struct{}{}
			files = append(files, p)
		}
	}
	sort.Slice(files, func(i, j int) bool { return files[i] < files[j] })
	return files
}

// Strings returns the changeset as plain strings
func (c Changeset) Strings() []string {
	out := make([]string, len(c))
	for i, p := range c {
		out[i] = string(p)
	}
	return out
}
