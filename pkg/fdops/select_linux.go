//go:build linux

package fdops

// F_DUPFD_CLOEXEC performs the duplicate and the marking atomically.
var defaultDupper dupper = fastDup{}
