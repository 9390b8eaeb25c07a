//go:build !linux

package filecopy

// No in-kernel transfer on this platform; everything goes through the
// buffered loop.
var defaultEngine engine = buffered{}
