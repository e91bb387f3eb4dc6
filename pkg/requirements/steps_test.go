package requirements

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rdmlab/instancectl/pkg/process"
)

func TestNodeTier(t *testing.T) {
	tests := []struct {
		platformMajor int
		wantNode      int
		wantNPM       int
	}{
		{13, 18, 10},
		{12, 18, 10},
		{11, 16, 7},
		{10, 14, 6},
		{9, 14, 6},
	}

	for _, tt := range tests {
		node, npm := NodeTier(tt.platformMajor)
		assert.Equal(t, tt.wantNode, node, "node for platform %d", tt.platformMajor)
		assert.Equal(t, tt.wantNPM, npm, "npm for platform %d", tt.platformMajor)
	}
}

func stepMessages(c *Checks, platformMajor int, dev bool) []string {
	var messages []string
	for _, s := range c.CheckSteps(platformMajor, dev) {
		messages = append(messages, s.Message)
	}
	return messages
}

func TestCheckSteps_Order(t *testing.T) {
	c := &Checks{Runner: canned("")}

	assert.Equal(t, []string{
		"Checking Python version...",
		"Checking Pipenv is installed...",
		"Checking Docker version...",
		"Checking Docker Compose version...",
	}, stepMessages(c, 12, false))
}

func TestCheckSteps_DevAppendsToolingChecks(t *testing.T) {
	c := &Checks{Runner: canned("")}

	assert.Equal(t, []string{
		"Checking Python version...",
		"Checking Pipenv is installed...",
		"Checking Docker version...",
		"Checking Docker Compose version...",
		"Checking Node version...",
		"Checking NPM version...",
		"Checking ImageMagick version...",
		"Checking git version...",
	}, stepMessages(c, 12, true))
}

func TestDevSteps_UseTierMinimums(t *testing.T) {
	// Platform 11 requires node >= 16; a node 14 install must fail, and the
	// same install must pass for platform 10.
	nodeRunner := &process.MockRunner{
		RunFunc: func(argv []string) (process.Result, error) {
			return process.Ok("v14.4.0\n"), nil
		},
	}
	c := &Checks{Runner: nodeRunner}

	v11 := c.DevSteps(11)[0].Run()
	assert.False(t, v11.OK())
	assert.Equal(t, "Node wrong version. Got 14.4.0 expected 16", v11.Error)

	v10 := c.DevSteps(10)[0].Run()
	assert.True(t, v10.OK())
}
