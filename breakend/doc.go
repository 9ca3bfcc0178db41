// Package breakend defines the Breakend record — one half of a structural-
// variant junction — and CNSegment, Link, and the Set collection that holds
// a run's breakends indexed by ID.
//
// A Breakend asserts that, at a given chromosome position, the rearranged
// sequence is severed from one side of the reference and joined to a mate
// breakend elsewhere. Direction RIGHT means the rearranged sequence
// continues rightward from this position (the left side is severed); LEFT
// is the mirror.
//
// Set provides O(1) ID lookup and O(1) mate resolution while keeping
// deterministic, sorted iteration — the same discipline
// core.Graph applies to its vertex catalog, generalized here to breakend
// records instead of graph vertices, and without core.Graph's concurrency
// machinery: a Set is built once from a parsed batch and never mutated
// concurrently (see DESIGN.md).
package breakend
