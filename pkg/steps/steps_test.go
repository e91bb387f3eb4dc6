package steps

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rdmlab/instancectl/pkg/process"
)

// recordingReporter captures the event sequence for assertions.
type recordingReporter struct {
	started  []string
	finished []process.Result
}

func (r *recordingReporter) StepStarted(message string) {
	r.started = append(r.started, message)
}

func (r *recordingReporter) StepFinished(result process.Result) {
	r.finished = append(r.finished, result)
}

func passStep(message string, executed *[]string) Step {
	return Step{
		Message: message,
		Run: func() process.Result {
			*executed = append(*executed, message)
			return process.Ok(message + " ok")
		},
	}
}

func TestRunner_AllPass(t *testing.T) {
	var executed []string
	reporter := &recordingReporter{}
	runner := &Runner{Reporter: reporter}

	result := runner.Run([]Step{
		passStep("first", &executed),
		passStep("second", &executed),
	})

	assert.True(t, result.OK())
	assert.Equal(t, []string{"first", "second"}, executed)
	assert.Equal(t, []string{"first", "second"}, reporter.started)
	assert.Len(t, reporter.finished, 2)
}

func TestRunner_StopsAtFirstFailure(t *testing.T) {
	var executed []string
	runner := &Runner{}

	failing := Step{
		Message: "failing",
		Run: func() process.Result {
			executed = append(executed, "failing")
			return process.Fail("boom")
		},
	}

	result := runner.Run([]Step{
		passStep("first", &executed),
		failing,
		passStep("never", &executed),
	})

	assert.False(t, result.OK())
	assert.Equal(t, "boom", result.Error)
	assert.Equal(t, []string{"first", "failing"}, executed, "third step must never run")
}

func TestRunner_EmptySequence(t *testing.T) {
	runner := &Runner{}
	result := runner.Run(nil)
	assert.True(t, result.OK())
}

func TestRunner_FailurePropagatesStatusCode(t *testing.T) {
	runner := &Runner{}
	result := runner.Run([]Step{{
		Message: "exit code",
		Run: func() process.Result {
			return process.Result{Error: "exit status 3", StatusCode: 3}
		},
	}})

	assert.Equal(t, 3, result.StatusCode)
}
