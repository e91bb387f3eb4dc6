// Package packages drives the Python package manager (pipenv) for the
// instance's dependency management.
package packages

import (
	"os"
	"path/filepath"

	"github.com/rdmlab/instancectl/pkg/process"
	"github.com/rdmlab/instancectl/pkg/steps"
)

// Binary is the expected package manager executable name. The presence
// check verifies that the program answering under this name really is it.
const Binary = "pipenv"

// Lockfile is the dependency lockfile relative to the project directory.
const Lockfile = "Pipfile.lock"

// Pipenv assembles pipenv invocations for a project directory.
type Pipenv struct {
	Runner process.Runner
	Dir    string
}

// Locked reports whether the project has a dependency lockfile.
func (p *Pipenv) Locked() bool {
	_, err := os.Stat(filepath.Join(p.Dir, Lockfile))
	return err == nil
}

// RunCommand wraps args in a "pipenv run" invocation so they execute inside
// the managed virtualenv.
func (p *Pipenv) RunCommand(args ...string) []string {
	return append([]string{Binary, "run"}, args...)
}

// LockSteps builds the steps that produce a fresh lockfile.
func (p *Pipenv) LockSteps(pre, dev bool) []steps.Step {
	argv := []string{Binary, "lock"}
	if pre {
		argv = append(argv, "--pre")
	}
	if dev {
		argv = append(argv, "--dev")
	}

	return []steps.Step{{
		Message: "Locking Python dependencies...",
		Run:     p.commandStep(argv, "Dependencies locked successfully."),
	}}
}

// SyncSteps builds the steps that install dependencies from the lockfile.
func (p *Pipenv) SyncSteps(dev bool) []steps.Step {
	argv := []string{Binary, "sync"}
	if dev {
		argv = append(argv, "--dev")
	}

	return []steps.Step{{
		Message: "Installing locked dependencies...",
		Run:     p.commandStep(argv, "Dependencies installed successfully."),
	}}
}

// commandStep runs argv and replaces raw tool output with a step-level
// success message.
func (p *Pipenv) commandStep(argv []string, success string) func() process.Result {
	return func() process.Result {
		result, err := p.Runner.Run(argv)
		if err != nil {
			return process.Failf("%s not found. Got %v.", Binary, err)
		}
		if result.OK() {
			result.Output = success
		}
		return result
	}
}
