// Package install assembles the provisioning step lists for a local
// instance: Python dependencies, configuration symlinks and static assets.
package install

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/rdmlab/instancectl/pkg/config"
	"github.com/rdmlab/instancectl/pkg/fsutil"
	"github.com/rdmlab/instancectl/pkg/packages"
	"github.com/rdmlab/instancectl/pkg/process"
	"github.com/rdmlab/instancectl/pkg/steps"
)

// Commands builds installation steps against a project configuration.
type Commands struct {
	Config *config.Config
	Runner process.Runner
	Pipenv *packages.Pipenv
}

// New wires a Commands with a pipenv handle rooted at the project dir.
func New(cfg *config.Config, runner process.Runner) *Commands {
	return &Commands{
		Config: cfg,
		Runner: runner,
		Pipenv: &packages.Pipenv{Runner: runner, Dir: cfg.ProjectDir},
	}
}

// PyDependencySteps builds the dependency installation steps. An unlocked
// project is locked first; installation always goes through the lockfile.
func (c *Commands) PyDependencySteps(pre, dev bool) []steps.Step {
	var list []steps.Step
	if !c.Pipenv.Locked() {
		list = append(list, c.Pipenv.LockSteps(pre, dev)...)
	}
	return append(list, c.Pipenv.SyncSteps(dev)...)
}

// UpdateInstancePath queries the installed application for its instance
// path and records it in the project config.
func (c *Commands) UpdateInstancePath() process.Result {
	argv := c.Pipenv.RunCommand("app", "instance-path")
	result, err := c.Runner.Run(argv)
	if err != nil {
		return process.Failf("failed to query instance path: %v", err)
	}
	if !result.OK() {
		return result
	}

	if err := c.Config.UpdateInstancePath(strings.TrimSpace(result.Output)); err != nil {
		return process.Failf("failed to update instance path: %v", err)
	}

	result.Output = "Instance path updated successfully."
	return result
}

// SymlinkSteps builds the steps linking project files and folders into the
// instance. The instance path is refreshed first so the links land in the
// right place.
func (c *Commands) SymlinkSteps() []steps.Step {
	list := []steps.Step{{
		Message: "Updating instance path...",
		Run:     c.UpdateInstancePath,
	}}

	for _, target := range c.Config.Symlinks {
		target := target // pre-1.22 loop variable semantics
		list = append(list, steps.Step{
			Message: fmt.Sprintf("Symlinking %q...", target),
			Run: func() process.Result {
				return fsutil.ForceSymlink(
					filepath.Join(c.Config.ProjectDir, target),
					filepath.Join(c.Config.InstancePath, target),
				)
			},
		})
	}

	return list
}

// AssetsSteps builds the step that rebuilds the instance's statics and
// assets.
func (c *Commands) AssetsSteps(debug bool) []steps.Step {
	argv := c.Config.AssetsCommand
	if len(argv) == 0 {
		argv = c.Pipenv.RunCommand("app", "assets", "build")
	}
	if debug {
		argv = append(append([]string(nil), argv...), "--debug")
	}

	return []steps.Step{{
		Message: "Updating statics and assets...",
		Run: func() process.Result {
			result, err := c.Runner.Run(argv)
			if err != nil {
				return process.Failf("failed to build assets: %v", err)
			}
			if result.OK() {
				result.Output = "Assets built successfully."
			}
			return result
		},
	}}
}

// InstallSteps is the full installation sequence: dependencies, symlinks,
// assets.
func (c *Commands) InstallSteps(pre, dev, debug bool) []steps.Step {
	list := c.PyDependencySteps(pre, dev)
	list = append(list, c.SymlinkSteps()...)
	list = append(list, c.AssetsSteps(debug)...)
	return list
}
