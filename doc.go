// Package svrecon reconstructs derivative chromosomes from structural-
// variant breakend (BND) records.
//
// Given a set of position/orientation adjacencies asserted over a linear
// reference, svrecon recovers ordered, oriented sequences of reference
// intervals — linear chains, circular/loop products, orphaned intervals —
// that correspond to derivative chromosomes. Two reconstruction paths are
// provided: a deterministic segment-graph walk (package segwalk) for
// inputs whose adjacencies admit a unique port-degree-one wiring, and a
// heuristic greedy chaining engine (package chainer) for ambiguous
// inputs where templated-insertion candidates must be ranked and spliced.
//
// Under the hood, everything is organized as:
//
//	breakend/   — the Breakend/Link/CNSegment record types and a Set catalog
//	svgraph/    — SV/TI/DB edge construction over a breakend Set, with its
//	              own candidate-edge adjacency
//	segwalk/    — the deterministic segment-graph walker, with its own
//	              port-name adjacency
//	chainer/    — the greedy priority-class chaining engine
//	cnfilter/   — copy-number-weighted pruning of ambiguous TI edges
//	cluster/    — informational event/mate/proximity grouping
//	classify/   — DEL/DUP/INV/TRA/COMPLEX labeling of a reconstructed chain
//	vcfbnd/     — VCF BND-line parsing into breakend.Breakend values
//	cmd/svrecon — a CLI front end: VCF in, JSON chains out
//
//	go get github.com/derivchrom/svrecon
package svrecon

// Glossary:
//
// BND — the VCF "breakend" record type; a single half of an assertion
// that two reference positions are adjacent in a rearranged sample.
//
// Breakend — one endpoint of a junction, with a facing direction.
//
// Junction — a non-reference adjacency between two breakends (their mate
// relationship).
//
// TI (templated insertion) — a same-chromosome pair of non-mate
// breakends facing inward; the interval between them is retained and
// spliced elsewhere.
//
// DB (deletion bridge) — a same-chromosome pair of non-mate breakends
// facing outward; the interval between them is lost.
//
// JCN — junction copy number; how many times a junction is traversed
// across the derivative population.
//
// Derivative chromosome — a path (possibly cyclic) through the segment
// graph representing one rearranged chromosome.
//
// Segment — a contiguous interval of the reference between adjacent
// breakend positions (plus synthetic end stubs).
//
// Port — one of the two endpoints (LEFT, RIGHT) of a segment used to
// wire the walk graph.
