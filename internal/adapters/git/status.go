package git

import (
	"context"

	"greener/internal/logging"
)

// listUntracked returns untracked files that are not ignored
func listUntracked(ctx context.Context, repoPath string) ([]string, error) {
	return listPaths(ctx, repoPath, "untracked", "ls-files", "-z", "--others", "--exclude-standard")
}

// listModified returns tracked files with unstaged changes
func listModified(ctx context.Context, repoPath string) ([]string, error) {
	return listPaths(ctx, repoPath, "modified", "diff", "--name-only", "-z")
}

// listStaged returns files with staged changes
func listStaged(ctx context.Context, repoPath string) ([]string, error) {
	return listPaths(ctx, repoPath, "staged", "diff", "--name-only", "--cached", "-z")
}

func listPaths(ctx context.Context, repoPath, category string, args ...string) ([]string, error) {
	output, err := runGit(ctx, repoPath, nil, args...)
	if err != nil {
		return nil, err
	}

	paths := splitPaths(output)
	logging.Logger.Debug("Status query finished", "category", category, "count", len(paths))
	return paths, nil
}
