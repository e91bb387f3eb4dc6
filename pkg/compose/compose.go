// Package compose resolves the compose invocation for the local container
// engine.
package compose

import (
	"github.com/rdmlab/instancectl/pkg/logger"
	"github.com/rdmlab/instancectl/pkg/process"
)

// Command is the argument-vector prefix for compose invocations, e.g.
// ["docker", "compose"] or ["docker-compose"].
type Command struct {
	argv []string
}

// Argv returns a copy of the invocation prefix.
func (c Command) Argv() []string {
	return append([]string(nil), c.argv...)
}

// Detect probes for the compose plugin and falls back to the standalone
// docker-compose binary. Newer engines ship compose as a plugin; older
// installs only have the standalone binary.
func Detect(r process.Runner) Command {
	result, err := r.Run([]string{"docker", "compose", "version"})
	if err == nil && result.OK() {
		logger.Debug("using compose plugin\n")
		return Command{argv: []string{"docker", "compose"}}
	}
	logger.Debug("compose plugin unavailable, falling back to docker-compose\n")
	return Command{argv: []string{"docker-compose"}}
}
