// Package output prints step progress with colored status markers.
package output

import (
	"fmt"
	"io"
	"os"

	"github.com/jwalton/go-supportscolor"

	"github.com/rdmlab/instancectl/pkg/process"
)

var (
	green = "\033[32m"
	red   = "\033[31m"
	reset = "\033[0m"
)

func init() {
	if !supportscolor.Stdout().SupportsColor {
		green, red, reset = "", "", ""
	}
}

// Console reports step progress to a writer (stdout by default).
type Console struct {
	Writer io.Writer
}

func (c Console) out() io.Writer {
	if c.Writer != nil {
		return c.Writer
	}
	return os.Stdout
}

// StepStarted prints the step message before execution.
func (c Console) StepStarted(message string) {
	fmt.Fprintln(c.out(), message)
}

// StepFinished prints the step outcome with a colored status marker.
func (c Console) StepFinished(r process.Result) {
	if r.OK() {
		fmt.Fprintf(c.out(), "%s[OK]%s %s\n", green, reset, r.Output)
	} else {
		fmt.Fprintf(c.out(), "%s[FAIL]%s %s\n", red, reset, r.Error)
	}
}
