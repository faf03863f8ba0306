package git

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"greener/internal/logging"
)

// runGit runs git with args inside repoPath and returns stdout.
// extraEnv entries are appended to the inherited environment.
func runGit(ctx context.Context, repoPath string, extraEnv []string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = repoPath
	if len(extraEnv) > 0 {
		cmd.Env = append(os.Environ(), extraEnv...)
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	logging.Logger.Debug("Running git", "repo_path", repoPath, "args", args)
	if err := cmd.Run(); err != nil {
		output := strings.TrimSpace(stderr.String())
		if output == "" {
			// git commit reports "nothing to commit" on stdout
			output = strings.TrimSpace(stdout.String())
		}
		logging.Logger.Debug("Git command failed", "args", args, "error", err, "output", output)
		return "", fmt.Errorf("git %s failed: %w\nOutput: %s", args[0], err, output)
	}

	return stdout.String(), nil
}

// splitPaths splits NUL separated git output into paths, dropping empty entries
func splitPaths(output string) []string {
	var paths []string
	for _, p := range strings.Split(output, "\x00") {
		p = strings.TrimRight(p, "\n")
		if p == "" {
			continue
		}
		paths = append(paths, p)
	}
	return paths
}
