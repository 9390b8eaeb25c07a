package tmpfile

import "golang.org/x/sys/unix"

// maskScope holds the process umask saved before narrowing it for a
// creation call. The umask is process-wide state, so restore must run on
// every exit path; callers defer it immediately after narrowMask.
type maskScope struct {
	old int
}

// narrowMask sets the umask to 077 so the created file is readable and
// writable by the owner only, and returns the scope that undoes it.
func narrowMask() *maskScope {
	return &maskScope{old: unix.Umask(0o077)}
}

func (m *maskScope) restore() {
	unix.Umask(m.old)
}
