package domain

import "strings"

// DefaultSectionCount is the number of sections a changeset is split into
// when nothing else is configured
const DefaultSectionCount = 4

// Section is an ordered, non-empty group of files committed together
type Section []FilePath

// Strings returns the section paths as plain strings
func (s Section) Strings() []string {
	return Changeset(s).Strings()
}

// String joins the section paths with ", " for display
func (s Section) String() string {
	return strings.Join(s.Strings(), ", ")
}

// Partition splits the changeset into contiguous sections of at most
// ceil(len(files)/k) paths each. The last section may be smaller and
// fewer than k sections come back when the files don't divide evenly
// (5 files, k=4 gives sizes 2, 2, 1). An empty changeset gives no sections.
func Partition(files Changeset, k int) ([]Section, error) {
	if k < 1 {
		return nil, ErrInvalidSectionCount
	}
	if len(files) == 0 {
		return []Section{}, nil
	}

	size := (len(files) + k - 1) / k
	sections := make([]Section, 0, k)
	for start := 0; start < len(files); start += size {
		end := min(start+size, len(files))
		section := make(Section, end-start)
		copy(section, files[start:end])
		sections = append(sections, section)
	}
	return sections, nil
}
