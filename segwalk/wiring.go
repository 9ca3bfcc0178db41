package segwalk

import (
	"github.com/derivchrom/svrecon/breakend"
)

// portOf maps a breakend to the port it severs: a RIGHT breakend maps to
// the R-port of the segment ending at its position, a LEFT breakend to
// the L-port of the segment starting at its position.
func portOf(b breakend.Breakend, byChr map[string]*chromSegments) (string, bool) {
	cs, ok := byChr[b.Chr]
	if !ok {
		return "", false
	}
	if b.Dir == breakend.RIGHT {
		idx, ok2 := cs.endAt[b.Pos]
		if !ok2 {
			return "", false
		}
		return rightPort(idx), true
	}
	idx, ok2 := cs.startAt[b.Pos]
	if !ok2 {
		return "", false
	}
	return leftPort(idx), true
}

// wirePorts builds the port graph: one vertex per segment port, one edge
// per severed-and-resolved junction or unsevered reference adjacency.
//
// Only three kinds of port ever become a legitimate traversal start: the
// synthetic left stub of a chromosome's first segment, its right stub,
// and a port explicitly targeted by a breakend whose mate does not
// resolve. A port that is simply the untouched side of an asymmetric
// boundary (one breakend severs its sibling port, none targets this one)
// carries no connection and starts nothing — its segment surfaces as an
// orphan unless some other edge reaches it. This mirrors a deleted
// interval: no breakend ever claims it, so it leaves no open end.
func wirePorts(set *breakend.Set, segments []RefSegment, byChr map[string]*chromSegments) (*portGraph, map[string]bool) {
	g := newPortGraph()
	eligible := make(map[string]bool, 2*len(segments))

	for _, seg := range segments {
		g.addPort(leftPort(seg.Index))
		g.addPort(rightPort(seg.Index))
	}

	portByID := make(map[string]string, set.Len())
	byPosition := make(map[string]map[int][]breakend.Breakend, len(byChr))
	for _, b := range set.All() {
		if p, ok := portOf(b, byChr); ok {
			portByID[b.ID] = p
		}
		if byPosition[b.Chr] == nil {
			byPosition[b.Chr] = make(map[int][]breakend.Breakend)
		}
		byPosition[b.Chr][b.Pos] = append(byPosition[b.Chr][b.Pos], b)
	}

	for _, cs := range byChr {
		if len(cs.segs) == 0 {
			continue
		}
		eligible[leftPort(cs.segs[0].Index)] = true
		eligible[rightPort(cs.segs[len(cs.segs)-1].Index)] = true
	}

	for c, cs := range byChr {
		for i := 0; i < len(cs.segs)-1; i++ {
			left := cs.segs[i]
			right := cs.segs[i+1]
			pos := right.Start

			var severedRight, severedLeft []breakend.Breakend
			for _, b := range byPosition[c][pos] {
				switch b.Dir {
				case breakend.RIGHT:
					severedRight = append(severedRight, b)
				case breakend.LEFT:
					severedLeft = append(severedLeft, b)
				}
			}

			if len(severedRight) == 0 && len(severedLeft) == 0 {
				g.link(rightPort(left.Index), leftPort(right.Index))
				continue
			}

			port := rightPort(left.Index)
			for _, rb := range severedRight {
				eligible[port] = true
				if mate, ok := set.Mate(rb); ok {
					if matePort, ok2 := portByID[mate.ID]; ok2 {
						g.link(port, matePort)
					}
				}
			}

			port = leftPort(right.Index)
			for _, lb := range severedLeft {
				eligible[port] = true
				if mate, ok := set.Mate(lb); ok {
					if matePort, ok2 := portByID[mate.ID]; ok2 {
						g.link(port, matePort)
					}
				}
			}
		}
	}

	return g, eligible
}

// portDegree reports how many distinct neighbors a port has in the port
// graph; zero means the port carries no connection at all.
func portDegree(g *portGraph, port string) int {
	return g.degree(port)
}
