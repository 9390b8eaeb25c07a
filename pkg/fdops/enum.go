package fdops

import (
	"math"
	"os"
	"strconv"

	"golang.org/x/sys/unix"
)

// procFDDir is the kernel-maintained listing of the calling process's open
// descriptors; each entry name is a decimal descriptor number.
const procFDDir = "/proc/self/fd"

// fallbackTableSize is the compiled-in last resort when the descriptor table
// size cannot be queried, matching the historical OPEN_MAX.
const fallbackTableSize = 1024

// enumerator yields candidate descriptor numbers for a sweep. An
// implementation that holds a descriptor open for the enumeration itself
// must not yield that descriptor.
type enumerator interface {
	each(fn func(fd int))
}

// newEnumerator picks the strategy once per sweep: the live kernel listing
// when it exists, otherwise brute force over the table range.
func newEnumerator() enumerator {
	if st, err := os.Lstat(procFDDir); err == nil && st.IsDir() {
		return procEnumerator{}
	}
	return rangeEnumerator{}
}

// procEnumerator walks the descriptor pseudo-directory. Only entries whose
// names are pure decimal integers are considered; anything else is skipped.
type procEnumerator struct{}

func (procEnumerator) each(fn func(fd int)) {
	dir, err := os.Open(procFDDir)
	if err != nil {
		rangeEnumerator{}.each(fn)
		return
	}
	defer dir.Close()

	names, _ := dir.Readdirnames(-1)
	self := int(dir.Fd())
	for _, name := range names {
		fd, ok := parseFDName(name)
		if !ok {
			continue
		}
		if fd == self {
			continue
		}
		fn(fd)
	}
}

// parseFDName parses a directory entry name as a strict base-10 descriptor
// number. Empty strings, signs, and trailing non-digits are all rejected.
func parseFDName(name string) (int, bool) {
	n, err := strconv.ParseUint(name, 10, 31)
	if err != nil {
		return -1, false
	}
	return int(n), true
}

// rangeEnumerator yields every integer below the descriptor table size.
type rangeEnumerator struct{}

func (rangeEnumerator) each(fn func(fd int)) {
	for fd, n := 0, tableSize(); fd < n; fd++ {
		fn(fd)
	}
}

// tableSize queries the soft open-file limit, falling back to the
// compiled-in constant when the limit is unavailable or unbounded.
func tableSize() int {
	var rl unix.Rlimit
	if err := unix.Getrlimit(unix.RLIMIT_NOFILE, &rl); err == nil &&
		rl.Cur > 0 && rl.Cur != unix.RLIM_INFINITY && rl.Cur <= math.MaxInt32 {
		return int(rl.Cur)
	}
	return fallbackTableSize
}
