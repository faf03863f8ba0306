// Package harness provides utilities for integration testing the greener CLI.
// It handles binary compilation, environment isolation, and command execution.
//
// Environment variables managed:
//   - GREENER_HOME: Isolated per test (temp directory)
//   - GREENER_DEBUG: Disabled to reduce noise
//   - GIT_AUTHOR_*/GIT_COMMITTER_*: Fixed identity so commits work without a global git config
package harness
