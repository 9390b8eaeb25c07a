//go:build linux

package filecopy

import (
	"os"

	"golang.org/x/sys/unix"
)

const (
	// maxTransfer caps a single sendfile call; the kernel itself truncates
	// counts to this value.
	maxTransfer = 0x7ffff000

	// drainChunk bounds the extra transfer calls issued after the size-based
	// loop, which pick up data appended between the fstat and the copy.
	drainChunk = 1 << 20
)

// sendfiler moves up to n bytes between two descriptors inside the kernel.
// Held as a field so tests can inject transfer failures.
type sendfiler func(dstFD, srcFD, n int) (int, error)

// fastEngine copies regular files with sendfile(2) and hands everything else
// to the buffered engine. Any transfer failure abandons the fast path and
// restarts the copy from the descriptors' current offsets through userspace.
type fastEngine struct {
	transfer sendfiler
}

func newFastEngine() fastEngine {
	return fastEngine{
		transfer: func(dstFD, srcFD, n int) (int, error) {
			return unix.Sendfile(dstFD, srcFD, nil, n)
		},
	}
}

var defaultEngine engine = newFastEngine()

func (e fastEngine) copy(src, dst *os.File) error {
	var st unix.Stat_t
	if err := unix.Fstat(int(src.Fd()), &st); err != nil {
		return &ReadError{Err: err}
	}
	if st.Mode&unix.S_IFMT != unix.S_IFREG {
		return buffered{}.copy(src, dst)
	}

	srcFD, dstFD := int(src.Fd()), int(dst.Fd())
	for left := st.Size; left != 0; {
		n, err := e.transfer(dstFD, srcFD, clampTransfer(left))
		if err != nil {
			return buffered{}.copy(src, dst)
		}
		if n == 0 {
			// The file shrank between fstat and now; early end of file is
			// a legitimate outcome, not an error.
			return nil
		}
		left -= int64(n)
	}

	// The observed size was only advisory. Keep issuing bounded transfers
	// until the kernel reports end of file, in case the file grew.
	for {
		n, err := e.transfer(dstFD, srcFD, drainChunk)
		if err != nil {
			return buffered{}.copy(src, dst)
		}
		if n == 0 {
			return nil
		}
	}
}

func clampTransfer(left int64) int {
	if left > maxTransfer {
		return maxTransfer
	}
	return int(left)
}
