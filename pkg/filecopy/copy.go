package filecopy

import (
	"io"
	"os"
)

// bufSize is the chunk size of the buffered fallback path.
const bufSize = 8 * 1024

// ReadError reports that the source side of a copy failed.
type ReadError struct {
	Err error
}

func (e *ReadError) Error() string { return "filecopy: read source: " + e.Err.Error() }
func (e *ReadError) Unwrap() error { return e.Err }

// WriteError reports that the destination side of a copy failed.
type WriteError struct {
	Err error
}

func (e *WriteError) Error() string { return "filecopy: write destination: " + e.Err.Error() }
func (e *WriteError) Unwrap() error { return e.Err }

// engine is one copy strategy. The compile-time default is chosen in the
// per-platform select files; accelerated engines fall back to buffered on
// their own.
type engine interface {
	copy(src, dst *os.File) error
}

// Copy transfers everything remaining in src to dst, starting from each
// file's current offset. It returns nil on success, a *ReadError when the
// source fails, and a *WriteError when the destination fails.
func Copy(src, dst *os.File) error {
	return defaultEngine.copy(src, dst)
}

// buffered is the always-available engine: read a chunk, write it out in
// full (retrying short writes), until the source reports end of file. The
// buffer is shredded afterwards so copied data does not linger in reusable
// memory.
type buffered struct{}

func (buffered) copy(src, dst *os.File) error {
	buf := make([]byte, bufSize)
	defer shred(buf)

	for {
		nr, rerr := src.Read(buf)
		for off := 0; off < nr; {
			nw, werr := dst.Write(buf[off:nr])
			if werr != nil {
				return &WriteError{Err: werr}
			}
			off += nw
		}
		if rerr == io.EOF {
			return nil
		}
		if rerr != nil {
			return &ReadError{Err: rerr}
		}
	}
}
