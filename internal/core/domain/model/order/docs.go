// Package order contains the Order aggregate and its value objects: the
// status and payment-status state machines, order lines with selected
// options, the human-readable order number, and the lifecycle events emitted
// on every successful transition.
//
// The aggregate enforces all workflow invariants itself; the application
// layer only loads it, invokes a transition, and persists the result with an
// optimistic version check.
package order
