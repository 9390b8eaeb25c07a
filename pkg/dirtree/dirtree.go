// Package dirtree creates directory hierarchies one segment at a time,
// tolerating components that already exist.
package dirtree

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"golang.org/x/sys/unix"
)

// ErrEmptyPath is returned when MakeAll is asked to create nothing.
var ErrEmptyPath = errors.New("dirtree: empty path")

// MakeAll ensures path exists as a directory, creating every missing
// segment left to right with the given permission mode. A segment that
// already exists is not an error. Any other creation failure stops the walk
// and is returned; segments created before the failure are deliberately
// left in place.
func MakeAll(path string, mode os.FileMode) error {
	if path == "" {
		return ErrEmptyPath
	}

	accum := ""
	if path[0] == '/' {
		accum = "/"
	}
	for _, seg := range strings.Split(path, "/") {
		if seg == "" {
			continue
		}
		if accum != "" && accum != "/" {
			accum += "/"
		}
		accum += seg

		err := unix.Mkdir(accum, uint32(mode.Perm()))
		if err != nil && !errors.Is(err, unix.EEXIST) {
			return fmt.Errorf("dirtree: mkdir %s: %w", accum, err)
		}
	}
	return nil
}

// SplitLast splits path into its parent directory and final component.
// A path without a slash yields ("", path); the root yields ("/", "").
func SplitLast(path string) (dir, base string) {
	i := strings.LastIndexByte(path, '/')
	switch {
	case i < 0:
		return "", path
	case i == 0:
		return "/", path[1:]
	default:
		return path[:i], path[i+1:]
	}
}
