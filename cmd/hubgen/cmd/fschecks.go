// Copyright © 2018 One Concern

package cmd

import (
	"os"

	"golang.org/x/sys/unix"
)

// DieIfNotAccessible exits the process with ENOENT when the path cannot be
// reached, so scripted callers may tell a missing source tree from a failed
// generation.
func DieIfNotAccessible(path string) {
	if _, err := os.Stat(path); err != nil {
		wrapFatalWithCodef(int(unix.ENOENT), "%v", err)
	}
}

// DieIfNotDirectory exits the process when the path points to anything but a
// directory.
func DieIfNotDirectory(path string) {
	fileInfo, err := os.Stat(path)
	if err != nil {
		wrapFatalWithCodef(int(unix.ENOENT), "%v", err)
	}
	if !fileInfo.IsDir() {
		wrapFatalWithCodef(int(unix.ENOTDIR), "%q is not a directory", path)
	}
}
