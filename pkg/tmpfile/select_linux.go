//go:build linux

package tmpfile

// Linux opens with O_CLOEXEC directly, so creation and marking are one
// atomic step. Variable rather than constant so tests can exercise the
// portable creator's unwind path.
var defaultCreator creator = atomicCreator{}
