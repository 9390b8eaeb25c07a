package tmpfile

import "golang.org/x/sys/unix"

// creator performs the exclusive create of one candidate path and returns an
// open descriptor already marked close-on-exec. Implementations report EEXIST
// unchanged so the caller can retry with a fresh name.
type creator interface {
	createExclusive(path string) (int, error)
}

// atomicCreator sets the close-on-exec flag in the same open call, leaving no
// window in which a forked child could inherit the descriptor.
type atomicCreator struct{}

func (atomicCreator) createExclusive(path string) (int, error) {
	return unix.Open(path, unix.O_RDWR|unix.O_CREAT|unix.O_EXCL|unix.O_CLOEXEC, 0o600)
}

// setCloexec marks fd close-on-exec after the fact. Package variable so
// tests can force the marking step to fail.
var setCloexec = func(fd int) error {
	flags, err := unix.FcntlInt(uintptr(fd), unix.F_GETFD, 0)
	if err != nil {
		return err
	}
	_, err = unix.FcntlInt(uintptr(fd), unix.F_SETFD, flags|unix.FD_CLOEXEC)
	return err
}

// portableCreator creates the file first and marks it close-on-exec
// afterwards. If the marking step fails, the file is unlinked and the
// descriptor closed before returning, so no failure path leaves an orphaned
// entry on disk; the marking error is what gets reported.
type portableCreator struct{}

func (portableCreator) createExclusive(path string) (int, error) {
	fd, err := unix.Open(path, unix.O_RDWR|unix.O_CREAT|unix.O_EXCL, 0o600)
	if err != nil {
		return -1, err
	}
	if err := setCloexec(fd); err != nil {
		unix.Unlink(path)
		unix.Close(fd)
		return -1, err
	}
	return fd, nil
}
