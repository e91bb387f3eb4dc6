package requirements

import (
	"github.com/rdmlab/instancectl/pkg/process"
	"github.com/rdmlab/instancectl/pkg/steps"
	"github.com/rdmlab/instancectl/pkg/version"
)

// NodeTier returns the minimum node and npm major versions for a platform
// major version. Older platform releases keep working against the node LTS
// they shipped with.
func NodeTier(platformMajor int) (node, npm int) {
	switch {
	case platformMajor >= 12:
		return 18, 10
	case platformMajor >= 11:
		return 16, 7
	default:
		return 14, 6
	}
}

// CheckSteps builds the ordered pre-requisite checks. When dev is set, the
// development tooling checks are appended.
func (c *Checks) CheckSteps(platformMajor int, dev bool) []steps.Step {
	list := []steps.Step{
		{
			Message: "Checking Python version...",
			Run:     func() process.Result { return c.Python(version.Min(3, 9)) },
		},
		{
			Message: "Checking Pipenv is installed...",
			Run:     c.PipenvInstalled,
		},
		{
			Message: "Checking Docker version...",
			Run:     func() process.Result { return c.Docker(version.Min(0, 0)) },
		},
		{
			Message: "Checking Docker Compose version...",
			Run:     func() process.Result { return c.DockerCompose(version.Min(1, 17)) },
		},
	}

	if dev {
		list = append(list, c.DevSteps(platformMajor)...)
	}

	return list
}

// DevSteps builds the development tooling checks. Node and npm minimums
// follow the platform tier.
func (c *Checks) DevSteps(platformMajor int) []steps.Step {
	nodeMin, npmMin := NodeTier(platformMajor)

	return []steps.Step{
		{
			Message: "Checking Node version...",
			Run:     func() process.Result { return c.Node(version.Min(nodeMin)) },
		},
		{
			Message: "Checking NPM version...",
			Run:     func() process.Result { return c.NPM(version.Min(npmMin)) },
		},
		{
			Message: "Checking ImageMagick version...",
			Run:     func() process.Result { return c.ImageMagick(version.Min(0, 0)) },
		},
		{
			Message: "Checking git version...",
			Run:     func() process.Result { return c.Git(version.Min(0, 0)) },
		},
	}
}
