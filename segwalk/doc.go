// Package segwalk implements the deterministic segment-graph walker (WALK):
// given a breakend set, it partitions each chromosome into reference
// segments at breakend positions, models each segment as two ports
// (L{idx}, R{idx}), wires ports by junction and adjacency rules, and
// traverses free ports to emit chains, orphan indices, and closed loops.
//
// The port graph (portGraph) is a small undirected adjacency set over
// port-name vertices; "severed and connected to mate's port" and "wired
// to reference neighbor" both become a single edge in it. Traversal
// walks the graph one hop at a time, mirroring bfs/dfs
// single-step-at-a-time internal loop shape — queue-free here, since
// each port has degree <= 1 by construction (a linked walk, not a
// search).
//
// Reconstruct is deterministic: the same breakend set always yields the
// same segmentation, port wiring, and sequence of chains and orphan
// indices.
package segwalk
