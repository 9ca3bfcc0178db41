// Package cluster groups breakends that likely describe the same
// structural event into Clusters, by union-find over three successive
// bases: shared event tag, mate linkage, and same-chromosome proximity.
//
// Cluster identities are informational: segwalk and chainer never
// consult them. They exist so a caller can report "these N breakends
// are probably one event" alongside the reconstructed chains.
//
// The union-find itself — path compression, union by rank, iterative
// find — is the same disjoint-set technique Kruskal uses to grow a
// minimum spanning tree one sorted edge at a time; here it grows
// breakend groups one merge rule at a time instead.
package cluster
