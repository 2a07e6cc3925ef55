package corecount

import (
	"bytes"
	"os/exec"
)

// Runner abstracts subprocess execution for testability.
//
// Run executes a command with its standard error merged into its
// standard output and its standard input closed (some enumeration
// commands, WMIC among them, block forever when input is left open).
// It waits for the process to exit with no timeout; a caller that needs
// bounded latency must impose its own deadline around the whole
// detection call.
type Runner interface {
	Run(name string, args ...string) (combined string, exitCode int, err error)
}

// RealRunner implements Runner using actual OS commands.
type RealRunner struct{}

// Run executes a command and returns its combined output. A non-zero
// exit is reported through exitCode, not err; err is reserved for spawn
// and I/O failures.
func (r *RealRunner) Run(name string, args ...string) (string, int, error) {
	cmd := exec.Command(name, args...)
	var combined bytes.Buffer
	cmd.Stdout = &combined
	cmd.Stderr = &combined
	// Stdin stays nil so the child reads from the null device, the
	// equivalent of a closed input stream.
	if err := cmd.Run(); err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return combined.String(), exitErr.ExitCode(), nil
		}
		return "", -1, err
	}
	return combined.String(), 0, nil
}

// MockRunner is a test double for Runner.
type MockRunner struct {
	RunFunc func(name string, args ...string) (string, int, error)
}

// Run calls the mock function.
func (m *MockRunner) Run(name string, args ...string) (string, int, error) {
	return m.RunFunc(name, args...)
}
