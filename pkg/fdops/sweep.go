package fdops

import "golang.org/x/sys/unix"

// CloseAll closes every descriptor open in the current process except those
// listed in keep. It never fails: closing a descriptor that is not open is
// a no-op, so the sweep is idempotent.
//
// The enumerate-then-close strategy cannot observe descriptors created
// concurrently by other threads; callers must quiesce descriptor activity
// first. The intended call site is immediately before replacing the process
// image with an untrusted program, when no other goroutines are running.
func CloseAll(keep ...int) {
	newEnumerator().each(func(fd int) {
		if !inSet(keep, fd) {
			unix.Close(fd)
		}
	})
}

func inSet(set []int, fd int) bool {
	for _, k := range set {
		if k == fd {
			return true
		}
	}
	return false
}
