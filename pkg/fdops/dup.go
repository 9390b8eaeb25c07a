package fdops

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// dupper duplicates oldfd onto a descriptor numbered at least minfd, with
// the close-on-exec flag set on the copy.
type dupper interface {
	dup(oldfd, minfd int) (int, error)
}

// fastDup duplicates and marks in a single fcntl call.
type fastDup struct{}

func (fastDup) dup(oldfd, minfd int) (int, error) {
	return unix.FcntlInt(uintptr(oldfd), unix.F_DUPFD_CLOEXEC, minfd)
}

// portableDup duplicates first and marks afterwards. If marking fails the
// duplicate is closed and the marking error reported; the close result is
// deliberately discarded so it cannot mask the original failure.
type portableDup struct{}

func (portableDup) dup(oldfd, minfd int) (int, error) {
	fd, err := unix.FcntlInt(uintptr(oldfd), unix.F_DUPFD, minfd)
	if err != nil {
		return -1, err
	}
	flags, err := unix.FcntlInt(uintptr(fd), unix.F_GETFD, 0)
	if err == nil {
		_, err = unix.FcntlInt(uintptr(fd), unix.F_SETFD, flags|unix.FD_CLOEXEC)
	}
	if err != nil {
		unix.Close(fd)
		return -1, err
	}
	return fd, nil
}

// DupCloexec duplicates oldfd to a new descriptor numbered minfd or above
// and marks the copy close-on-exec, so it does not leak across an exec
// boundary. The original descriptor is left untouched.
func DupCloexec(oldfd, minfd int) (int, error) {
	fd, err := defaultDupper.dup(oldfd, minfd)
	if err != nil {
		return -1, fmt.Errorf("fdops: dup fd %d above %d: %w", oldfd, minfd, err)
	}
	return fd, nil
}
