package main

import (
	"errors"

	"github.com/rdmlab/instancectl/pkg/config"
	"github.com/rdmlab/instancectl/pkg/install"
	"github.com/rdmlab/instancectl/pkg/output"
	"github.com/rdmlab/instancectl/pkg/process"
	"github.com/rdmlab/instancectl/pkg/steps"
)

// ErrStepFailed is returned when a step fails. The failing step's message
// has already been printed; the error only drives the exit code.
var ErrStepFailed = errors.New("step failed")

// runSteps executes a step list with console reporting and maps a failure
// to a non-nil error so Cobra exits with code 1.
func runSteps(list []steps.Step) error {
	runner := &steps.Runner{Reporter: output.Console{}}

	result := runner.Run(list)
	if !result.OK() {
		return ErrStepFailed
	}
	return nil
}

// loadProject loads the config and builds the install command set against
// the real process runner.
func loadProject() (*install.Commands, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	return install.New(cfg, process.OSRunner{}), nil
}
