// Package svgraph builds the three candidate-edge sets used by the
// chaining engine: SV edges (mate pairs), TI edges (templated-insertion,
// same-chromosome facing-inward non-mate pairs), and DB edges
// (deletion-bridge, same-chromosome facing-outward non-mate pairs).
//
// Each builder returns a plain []breakend.Link (the contract callers rely
// on) and also inserts the same pairs into a Graph — an undirected
// breakend-ID adjacency set private to this package — so callers that
// want adjacency queries (NeighborIDs, Degree) over the candidate-edge
// set get them without re-scanning the []Link slice.
package svgraph
