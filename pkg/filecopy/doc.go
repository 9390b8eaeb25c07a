// Package filecopy transfers the remaining contents of one open file to
// another, using an in-kernel transfer when the platform offers one and a
// buffered read/write loop otherwise. Read-side and write-side failures are
// reported as distinct error types so callers can say which file was at
// fault.
package filecopy
