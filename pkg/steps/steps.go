// Package steps provides the ordered, abortable step sequence that every
// instancectl command executes.
package steps

import (
	"github.com/rdmlab/instancectl/pkg/process"
)

// Step is a named, independently executable unit of work. It is owned by
// the runner that executes it and carries no state of its own.
type Step struct {
	Message string
	Run     func() process.Result
}

// Reporter receives step lifecycle events.
type Reporter interface {
	StepStarted(message string)
	StepFinished(result process.Result)
}

// Runner executes steps strictly in order, stopping at the first failure.
// No parallelism, no retry: a failed step is a terminal condition that
// requires manual remediation.
type Runner struct {
	Reporter Reporter
}

// Run executes the steps one at a time. It returns the first failing
// result, or a success result once every step has completed.
func (r *Runner) Run(list []Step) process.Result {
	for _, s := range list {
		if r.Reporter != nil {
			r.Reporter.StepStarted(s.Message)
		}

		result := s.Run()

		if r.Reporter != nil {
			r.Reporter.StepFinished(result)
		}
		if !result.OK() {
			return result
		}
	}

	return process.Ok("All steps completed successfully.")
}
