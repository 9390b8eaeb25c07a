// Package caps reports the platform capability set this binary was built
// with. The primitive packages select their implementations through matching
// build tags; these constants exist so callers can report which paths are in
// effect without re-deriving platform knowledge.
package caps
