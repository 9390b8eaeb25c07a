// Package tmpfile creates uniquely named, owner-only temporary files whose
// descriptors are marked close-on-exec, so they are never inherited by
// executed child processes. Creation is exclusive: an existing file with the
// same name is a hard failure, never silently reused.
package tmpfile
