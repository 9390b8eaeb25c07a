//go:build linux

package caps

const (
	// CombinedCreateTemp: temporary files are created and marked
	// close-on-exec in a single open call.
	CombinedCreateTemp = true

	// FastDup: descriptor duplication and close-on-exec marking happen in
	// one fcntl call.
	FastDup = true

	// FastCopy: whole-file copies attempt an in-kernel transfer before
	// falling back to buffered I/O.
	FastCopy = true

	// SecureZero: copy buffers are actively erased after use.
	SecureZero = true
)
