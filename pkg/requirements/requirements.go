// Package requirements checks the external tooling a local instance needs:
// runtime interpreter, package managers, container engine, image utilities
// and version control.
package requirements

import (
	"strings"

	"github.com/tidwall/gjson"

	"github.com/rdmlab/instancectl/pkg/compose"
	"github.com/rdmlab/instancectl/pkg/packages"
	"github.com/rdmlab/instancectl/pkg/process"
	"github.com/rdmlab/instancectl/pkg/version"
)

// Checks probes external tools through an injected process runner.
type Checks struct {
	Runner  process.Runner
	Compose compose.Command
}

// compareVersion extracts a version from raw tool output and checks it
// against a requirement, rendering the uniform pass/fail messages.
func compareVersion(tool, raw string, spec version.Spec) process.Result {
	v, err := version.Extract(raw)
	if err != nil {
		return process.Failf("%s incorrect version format or not found. Check that it is installed correctly", tool)
	}

	if !spec.Satisfies(v) {
		return process.Failf("%s wrong version. Got %s expected %s", tool, v, spec.Expected())
	}

	return process.Okf("%s version OK. Got %s.", tool, v)
}

// versionCheck runs argv and compares the reported version.
func (c *Checks) versionCheck(tool string, argv []string, spec version.Spec) process.Result {
	result, err := c.Runner.Run(argv)
	if err != nil {
		return process.Failf("%s not found. Got %v.", tool, err)
	}
	return compareVersion(tool, strings.TrimSpace(result.Output), spec)
}

// Node checks the node version. Output comes in the form of "v14.4.0\n".
func (c *Checks) Node(spec version.Spec) process.Result {
	return c.versionCheck("Node", []string{"node", "--version"}, spec)
}

// NPM checks the npm version. Output comes in the form of "6.14.13\n".
func (c *Checks) NPM(spec version.Spec) process.Result {
	return c.versionCheck("NPM", []string{"npm", "--version"}, spec)
}

// Python checks the Python interpreter version. Output comes in the form of
// "Python 3.9.5\n".
func (c *Checks) Python(spec version.Spec) process.Result {
	return c.versionCheck("Python", []string{"python3", "--version"}, spec)
}

// Docker checks the container engine client version from its JSON-formatted
// version report.
func (c *Checks) Docker(spec version.Spec) process.Result {
	result, err := c.Runner.Run([]string{"docker", "version", "--format", "json"})
	if err != nil {
		return process.Failf("Docker not found. Got %v.", err)
	}

	clientVersion := gjson.Get(result.Output, "Client.Version")
	if !clientVersion.Exists() {
		return process.Fail("Docker incorrect version format or not found. Check that it is installed correctly")
	}

	return compareVersion("Docker", clientVersion.String(), spec)
}

// DockerCompose checks the compose version using the invocation resolved by
// the compose helper. Output comes in the form of
// "Docker Compose version v2.17.3\n".
func (c *Checks) DockerCompose(spec version.Spec) process.Result {
	argv := append(c.Compose.Argv(), "version")
	return c.versionCheck("Docker Compose", argv, spec)
}

// ImageMagick checks the image utility version. Output comes in the form of
// "ImageMagick, version 7.0.11-13\n".
func (c *Checks) ImageMagick(spec version.Spec) process.Result {
	return c.versionCheck("ImageMagick", []string{"convert", "--version"}, spec)
}

// Git checks the git version. Output comes in the form of
// "git version 2.36.1\n".
func (c *Checks) Git(spec version.Spec) process.Result {
	return c.versionCheck("git", []string{"git", "--version"}, spec)
}

// PipenvInstalled verifies that the pipenv binary answers as pipenv and
// reports a version. Output comes in the form of
// "pipenv, version 2020.11.15\n"; a different first token means another
// program is installed under the expected name.
func (c *Checks) PipenvInstalled() process.Result {
	result, err := c.Runner.Run([]string{packages.Binary, "--version"})
	if err != nil {
		return process.Failf("Pipenv not found. Got %v.", err)
	}

	parts := strings.SplitN(strings.TrimSpace(result.Output), ",", 2)
	if parts[0] != packages.Binary {
		return process.Failf("Pipenv not found. Got %s.", parts[0])
	}
	if len(parts) < 2 {
		return process.Fail("Pipenv incorrect version format or not found. Check that it is installed correctly")
	}

	v, err := version.Extract(parts[1])
	if err != nil {
		return process.Fail("Pipenv incorrect version format or not found. Check that it is installed correctly")
	}

	return process.Okf("Pipenv OK. Got version %s.", v)
}
