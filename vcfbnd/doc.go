// Package vcfbnd parses VCF breakend (BND) records into breakend.Breakend
// values: the ALT-field bracket notation defined by VCF 4.3 maps to a
// (direction, mate direction) pair, and MATEID/EVENT/JCN/JCNUNCERT are
// read from INFO when present.
//
// This package has no direct upstream analogue — it is the input
// boundary the rest of this module's algorithms sit behind (see
// DESIGN.md). Its error-handling posture still follows the rest of this
// module: malformed or non-BND lines are skippable facts — ParseLine
// returns ok=false rather than an error for those — and only genuine I/O
// failures surface as errors.
package vcfbnd
