package svgraph

import (
	"sort"

	"github.com/derivchrom/svrecon/breakend"
)

// Graph is the candidate-edge adjacency built by BuildSVEdges/
// BuildTIEdges/BuildDBEdges, keyed by breakend ID. It tracks only
// breakend-ID-to-breakend-ID reachability: a candidate edge's kind (SV,
// TI, DB) lives in the []Link slice each builder returns, not here — a
// breakend pair that is adjacent at all is adjacent regardless of which
// rule produced the edge.
type Graph struct {
	adj map[string]map[string]struct{}
}

// NewGraph constructs an empty candidate-edge graph.
func NewGraph() *Graph {
	return &Graph{adj: make(map[string]map[string]struct{})}
}

func (cg *Graph) insert(l breakend.Link) {
	if cg.adj[l.B1] == nil {
		cg.adj[l.B1] = make(map[string]struct{})
	}
	if cg.adj[l.B2] == nil {
		cg.adj[l.B2] = make(map[string]struct{})
	}
	cg.adj[l.B1][l.B2] = struct{}{}
	cg.adj[l.B2][l.B1] = struct{}{}
}

// NeighborIDs returns the sorted, unique breakend IDs with a candidate edge
// to id, regardless of edge kind.
func (cg *Graph) NeighborIDs(id string) ([]string, error) {
	neighbors := cg.adj[id]
	out := make([]string, 0, len(neighbors))
	for n := range neighbors {
		out = append(out, n)
	}
	sort.Strings(out)

	return out, nil
}

// Degree returns the number of distinct breakend IDs with a candidate edge
// to id.
func (cg *Graph) Degree(id string) (int, error) {
	return len(cg.adj[id]), nil
}

// pairKey produces a canonical, order-independent key for a breakend pair,
// used to deduplicate symmetric SV mate assertions.
func pairKey(a, b string) (string, string) {
	if a <= b {
		return a, b
	}

	return b, a
}

// BuildSVEdges emits one SV Link per resolved mate pair, deduplicated by
// identifier set (symmetric a↔b assertions collapse to one edge).
//
// Complexity: O(n) where n = set.Len().
func BuildSVEdges(set *breakend.Set, cg *Graph) []breakend.Link {
	seen := make(map[[2]string]struct{})
	var out []breakend.Link

	for _, b := range set.All() {
		mate, ok := set.Mate(b)
		if !ok {
			continue
		}
		lo, hi := pairKey(b.ID, mate.ID)
		key := [2]string{lo, hi}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}

		l := breakend.Link{Kind: breakend.SV, B1: lo, B2: hi}
		out = append(out, l)
		if cg != nil {
			cg.insert(l)
		}
	}

	sortLinks(out)

	return out
}

// BuildTIEdges emits a TI Link for every same-chromosome, non-mate pair
// (a,b) with a.Pos <= b.Pos that faces inward: a.Dir == LEFT && b.Dir == RIGHT.
//
// All pairs are considered, not only adjacent ones.
//
// Complexity: O(n^2) per chromosome in the worst case (every pair inspected).
func BuildTIEdges(set *breakend.Set, cg *Graph) []breakend.Link {
	return buildOrientedEdges(set, cg, breakend.TI, func(lo, hi breakend.Breakend) bool {
		return lo.Dir == breakend.LEFT && hi.Dir == breakend.RIGHT
	})
}

// BuildDBEdges emits a DB Link for every same-chromosome, non-mate pair
// (a,b) with a.Pos <= b.Pos that faces outward: a.Dir == RIGHT && b.Dir == LEFT.
//
// Complexity: O(n^2) per chromosome in the worst case.
func BuildDBEdges(set *breakend.Set, cg *Graph) []breakend.Link {
	return buildOrientedEdges(set, cg, breakend.DB, func(lo, hi breakend.Breakend) bool {
		return lo.Dir == breakend.RIGHT && hi.Dir == breakend.LEFT
	})
}

func buildOrientedEdges(set *breakend.Set, cg *Graph, kind breakend.LinkKind, faces func(lo, hi breakend.Breakend) bool) []breakend.Link {
	byChr := make(map[string][]breakend.Breakend)
	for _, b := range set.All() {
		byChr[b.Chr] = append(byChr[b.Chr], b)
	}

	var chrs []string
	for c := range byChr {
		chrs = append(chrs, c)
	}
	sort.Strings(chrs)

	var out []breakend.Link
	for _, c := range chrs {
		bs := byChr[c] // already sorted by (Chr,Pos,ID) via set.All()
		for i := 0; i < len(bs); i++ {
			for j := i + 1; j < len(bs); j++ {
				a, b := bs[i], bs[j]
				if a.Pos > b.Pos {
					a, b = b, a
				}
				if a.HasMate() && a.MateID == b.ID {
					continue
				}
				if b.HasMate() && b.MateID == a.ID {
					continue
				}
				if !faces(a, b) {
					continue
				}
				l := breakend.Link{Kind: kind, B1: a.ID, B2: b.ID}
				out = append(out, l)
				if cg != nil {
					cg.insert(l)
				}
			}
		}
	}

	sortLinks(out)

	return out
}

func sortLinks(links []breakend.Link) {
	sort.Slice(links, func(i, j int) bool {
		if links[i].B1 != links[j].B1 {
			return links[i].B1 < links[j].B1
		}

		return links[i].B2 < links[j].B2
	})
}
