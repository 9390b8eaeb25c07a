//go:build !linux

package tmpfile

// Without a combined create+mark primitive the portable creator marks the
// descriptor immediately after creation, unwinding on failure.
var defaultCreator creator = portableCreator{}
