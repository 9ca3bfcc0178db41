// Package chainer implements the greedy chaining engine: an alternative to
// segwalk's port-wiring traversal, used when callers need scored,
// explainable TI-edge selection (for example after cnfilter has pruned
// candidate edges by copy number) rather than segwalk's deterministic
// port-degree wiring.
//
// Scoring and the splice/extend/skip pipeline are grounded on the
// teacher's tsp package: Options/DefaultOptions follows tsp.Options, and
// the repeated score-then-apply loop generalizes tsp's nearest-neighbor
// greedy-with-restart shape to graph edges instead of tour legs.
package chainer
