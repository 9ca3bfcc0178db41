// Package classify labels a single chain produced by segwalk or chainer
// as one of DEL, DUP, INV, TRA, COMPLEX, or UNKNOWN.
//
// Classify itself is a small table-driven decision over a normalized
// Chain summary (segment count, touched chromosomes, any-reverse flag,
// and open-end directions); FromWalkChain and FromChainerChain adapt the
// two chain producers' native representations into that summary, since
// each producer counts "segments" by a different convention (walked ref
// segments vs. spliced junctions). The staged, one-condition-per-branch
// style follows builder/validators.go.
package classify
