// Package process defines the uniform result envelope for external
// invocations and the runner abstraction used to spawn them.
package process

import (
	"bytes"
	"errors"
	"fmt"
	"os/exec"
)

// Result holds the outcome of a single external invocation or check.
// StatusCode is 0 iff the operation succeeded; Error is non-empty iff it
// failed; Output carries the success message or raw captured text.
type Result struct {
	Output     string
	Error      string
	StatusCode int
}

// OK returns true if the operation succeeded.
func (r Result) OK() bool {
	return r.StatusCode == 0
}

// Ok builds a successful result carrying a message.
func Ok(output string) Result {
	return Result{Output: output}
}

// Okf builds a successful result with a formatted message.
func Okf(format string, args ...any) Result {
	return Ok(fmt.Sprintf(format, args...))
}

// Fail builds a failed result carrying an error message.
func Fail(message string) Result {
	return Result{Error: message, StatusCode: 1}
}

// Failf builds a failed result with a formatted error message.
func Failf(format string, args ...any) Result {
	return Fail(fmt.Sprintf(format, args...))
}

// Runner executes external commands.
// A non-nil error means the process could not be spawned at all (binary
// missing, permission denied); a non-zero exit is reported through the
// Result instead.
type Runner interface {
	Run(argv []string) (Result, error)
}

// OSRunner implements Runner using actual OS commands.
type OSRunner struct{}

// Run executes argv, capturing stdout, stderr and the exit code.
func (OSRunner) Run(argv []string) (Result, error) {
	if len(argv) == 0 {
		return Result{}, errors.New("empty command")
	}

	cmd := exec.Command(argv[0], argv[1:]...)
	var outBuf, errBuf bytes.Buffer
	cmd.Stdout = &outBuf
	cmd.Stderr = &errBuf

	err := cmd.Run()
	if err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return Result{}, err
		}
		stderr := errBuf.String()
		if stderr == "" {
			stderr = err.Error()
		}
		return Result{
			Output:     outBuf.String(),
			Error:      stderr,
			StatusCode: exitErr.ExitCode(),
		}, nil
	}

	return Result{Output: outBuf.String()}, nil
}

// MockRunner is a test double for Runner.
type MockRunner struct {
	RunFunc func(argv []string) (Result, error)
	Calls   [][]string
}

// Run records the invocation and calls the mock function.
func (m *MockRunner) Run(argv []string) (Result, error) {
	m.Calls = append(m.Calls, argv)
	return m.RunFunc(argv)
}
