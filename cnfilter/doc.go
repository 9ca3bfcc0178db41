// Package cnfilter prunes candidate TI edges whose spanned interval
// carries near-zero rearrangement-attributable copy number.
//
// The aggregation rule (length-weighted mean of major+minor-ploidy
// across overlapping CN segments) is exposed as a pluggable WeightFn,
// grounded on builder.WeightFn's abstraction for pluggable,
// testable edge-weight rules; the staged precondition checks follow the
// builder/validators.go's style (one small function per
// precondition, returning a formatted, package-prefixed error).
package cnfilter
