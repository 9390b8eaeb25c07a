// Package fdops manipulates the process's file descriptor table: duplicating
// descriptors above a floor with close-on-exec set, and sweeping the whole
// table closed before handing the process image to an untrusted program.
package fdops
