// Package fsutil provides the filesystem operations instancectl performs
// while provisioning an instance.
package fsutil

import (
	"os"

	"github.com/rdmlab/instancectl/pkg/logger"
	"github.com/rdmlab/instancectl/pkg/process"
)

// ForceSymlink creates a symlink at link pointing to target, replacing any
// existing file or link at that path.
func ForceSymlink(target, link string) process.Result {
	if err := os.Remove(link); err != nil && !os.IsNotExist(err) {
		return process.Failf("failed to remove %s: %v", link, err)
	}

	if err := os.Symlink(target, link); err != nil {
		return process.Failf("failed to symlink %s -> %s: %v", link, target, err)
	}

	logger.Debug("symlinked %s -> %s\n", link, target)
	return process.Okf("Symlinked %s successfully.", link)
}
