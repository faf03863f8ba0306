package domain

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeChangeset(n int) Changeset {
	files := make([]string, n)
	for i := range files {
		files[i] = fmt.Sprintf("file-%03d.txt", i)
	}
	return NewChangeset(files)
}

func TestPartition_FiveFilesFourSections(t *testing.T) {
	files := NewChangeset([]string{"a.txt", "b.txt", "c.txt", "d.txt", "e.txt"})

	sections, err := Partition(files, 4)

	require.NoError(t, err)
	require.Len(t, sections, 3)
	assert.Equal(t, Section{"a.txt", "b.txt"}, sections[0])
	assert.Equal(t, Section{"c.txt", "d.txt"}, sections[1])
	assert.Equal(t, Section{"e.txt"}, sections[2])
}

func TestPartition_EmptyChangeset(t *testing.T) {
	sections, err := Partition(nil, DefaultSectionCount)

	require.NoError(t, err)
	assert.Empty(t, sections)
}

func TestPartition_InvalidSectionCount(t *testing.T) {
	for _, k := range []int{0, -1} {
		t.Run(fmt.Sprintf("k=%d", k), func(t *testing.T) {
			_, err := Partition(makeChangeset(3), k)
			assert.ErrorIs(t, err, ErrInvalidSectionCount)
		})
	}
}

func TestPartition_CoversChangesetWithoutOverlap(t *testing.T) {
	for n := 1; n <= 25; n++ {
		for k := 1; k <= 8; k++ {
			t.Run(fmt.Sprintf("n=%d/k=%d", n, k), func(t *testing.T) {
				files := makeChangeset(n)
				sections, err := Partition(files, k)
				require.NoError(t, err)

				limit := (n + k - 1) / k
				seen := make(map[FilePath]int)
				var union Changeset
				for _, s := range sections {
					assert.NotEmpty(t, s, "sections are never empty")
					assert.LessOrEqual(t, len(s), limit)
					for _, p := range s {
						seen[p]++
						union = append(union, p)
					}
				}

				for p, count := range seen {
					assert.Equal(t, 1, count, "path %s appears in more than one section", p)
				}
				assert.Equal(t, files, union, "sections are contiguous slices in changeset order")
			})
		}
	}
}

func TestPartition_DoesNotAliasInput(t *testing.T) {
	files := makeChangeset(4)

	sections, err := Partition(files, 2)
	require.NoError(t, err)

	sections[0][0] = "changed"
	assert.Equal(t, FilePath("file-000.txt"), files[0])
}

func TestNewChangeset_DeduplicatesAndSorts(t *testing.T) {
	untracked := []string{"new.txt", "b.txt", ""}
	modified := []string{"b.txt", "a.txt"}
	staged := []string{"  a.txt  ", "c.txt"}

	files := NewChangeset(untracked, modified, staged)

	assert.Equal(t, Changeset{"a.txt", "b.txt", "c.txt", "new.txt"}, files)
}

func TestNewChangeset_Empty(t *testing.T) {
	assert.Empty(t, NewChangeset(nil, []string{""}, []string{"   "}))
}

func TestSectionMessage_UsesOneBasedLabel(t *testing.T) {
	assert.Equal(t, "Update project files (Section 1)", SectionMessage("Update project files", 0))
	assert.Equal(t, "wip (Section 3)", SectionMessage("wip", 2))
}
