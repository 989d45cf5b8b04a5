// Package kernel contains shared domain primitives used across aggregates:
// validated UUIDs, geographic coordinates with great-circle distance, and the
// acting identity (user plus role) that authorization rules are written
// against. All types are immutable value objects created through validating
// constructors.
package kernel
