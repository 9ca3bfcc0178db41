package chainer

import (
	"github.com/derivchrom/svrecon/breakend"
	"github.com/derivchrom/svrecon/segwalk"
)

// chainState is the mutable working form of a Chain during Derive: ends[0]
// is the breakend ID open at the front of segs, ends[1] the one open at
// the back. A freshly seeded chain (from an SV edge) has no segments yet;
// both ends are open from the start.
type chainState struct {
	segs   []ChainSegment
	ends   [2]string
	closed bool
}

func (c *chainState) reverse() {
	for i, j := 0, len(c.segs)-1; i < j; i, j = i+1, j-1 {
		c.segs[i], c.segs[j] = c.segs[j], c.segs[i]
	}
	for i := range c.segs {
		c.segs[i].Orientation = flip(c.segs[i].Orientation)
	}
	c.ends[0], c.ends[1] = c.ends[1], c.ends[0]
}

func flip(o segwalk.Orientation) segwalk.Orientation {
	if o == segwalk.FORWARD {
		return segwalk.REVERSE
	}
	return segwalk.FORWARD
}

// junctionSegment builds the ref segment spliced between a and b: a point
// segment (no interval) when they lie on different chromosomes, otherwise
// a FORWARD/REVERSE interval oriented by the DB-shaped splice rule.
func junctionSegment(a, b breakend.Breakend) ChainSegment {
	if a.Chr != b.Chr {
		return ChainSegment{CrossChromosome: true}
	}

	lo, hi := a, b
	if lo.Pos > hi.Pos {
		lo, hi = hi, lo
	}

	orient := segwalk.FORWARD
	if lo.Dir == breakend.RIGHT && hi.Dir == breakend.LEFT {
		orient = segwalk.REVERSE
	}

	return ChainSegment{Chr: lo.Chr, Start: lo.Pos, End: hi.Pos, Orientation: orient}
}

// Derive runs the greedy chaining engine: seed one partial chain per SV
// edge, score every TI edge once, then repeatedly apply the
// highest-scoring applicable TI edge (splicing two chains, extending one,
// or closing a chain onto itself) until a full pass applies nothing. Each
// TI edge is applied at most once.
func Derive(svLinks, tiLinks []breakend.Link, set *breakend.Set, opts ...Option) ([]Chain, error) {
	options := DefaultOptions()
	for _, opt := range opts {
		opt(&options)
	}

	scored, err := ScoreEdges(tiLinks, set, opts...)
	if err != nil {
		return nil, err
	}

	var chains []*chainState
	openIndex := make(map[string]int) // breakend ID -> index into chains, valid only while that end is open

	for _, l := range svLinks {
		cs := &chainState{ends: [2]string{l.B1, l.B2}}
		chains = append(chains, cs)
		idx := len(chains) - 1
		openIndex[l.B1] = idx
		openIndex[l.B2] = idx
	}

	used := make([]bool, len(scored))

	for {
		applied := false

		for i, e := range scored {
			if used[i] {
				continue
			}
			idx1, ok1 := openIndex[e.B1]
			idx2, ok2 := openIndex[e.B2]

			switch {
			case ok1 && ok2 && idx1 == idx2:
				closeChain(chains[idx1], set)
				delete(openIndex, e.B1)
				delete(openIndex, e.B2)
				applied = true

			case ok1 && ok2:
				merged := spliceChains(chains[idx1], chains[idx2], e, set)
				chains[idx1] = merged
				chains[idx2] = nil
				delete(openIndex, e.B1)
				delete(openIndex, e.B2)
				openIndex[merged.ends[0]] = idx1
				openIndex[merged.ends[1]] = idx1
				applied = true

			case ok1 || ok2:
				var idx int
				var matchedID, otherID string
				if ok1 {
					idx, matchedID, otherID = idx1, e.B1, e.B2
				} else {
					idx, matchedID, otherID = idx2, e.B2, e.B1
				}
				extendChain(chains[idx], matchedID, otherID, set)
				delete(openIndex, matchedID)
				openIndex[otherID] = idx
				applied = true

			default:
				continue
			}

			used[i] = true
			options.OnApply(e)
			break
		}

		if !applied {
			break
		}
	}

	out := make([]Chain, 0, len(chains))
	for _, cs := range chains {
		if cs == nil {
			continue
		}
		out = append(out, Chain{Segments: cs.segs, Open: cs.ends, IsClosed: cs.closed})
	}

	return out, nil
}

// extendChain appends (or prepends) the junction segment between
// matchedID and otherID to the chain end currently held by matchedID,
// leaving otherID as that end's new open breakend.
func extendChain(c *chainState, matchedID, otherID string, set *breakend.Set) {
	a, _ := set.Get(matchedID)
	b, _ := set.Get(otherID)
	seg := junctionSegment(a, b)

	if c.ends[1] == matchedID {
		c.segs = append(c.segs, seg)
		c.ends[1] = otherID
		return
	}

	c.segs = append([]ChainSegment{seg}, c.segs...)
	c.ends[0] = otherID
}

// spliceChains joins c1 and c2 into one chain at the edge's two matched
// ends, normalizing orientation so the matched ends become adjacent
// interior points.
func spliceChains(c1, c2 *chainState, e ScoredEdge, set *breakend.Set) *chainState {
	// e.B1 is c1's open end and e.B2 is c2's open end by construction:
	// the caller looked up idx1 via openIndex[e.B1] and idx2 via
	// openIndex[e.B2] to find these two chains.
	matched1, matched2 := e.B1, e.B2

	if c1.ends[0] == matched1 {
		c1.reverse()
	}
	if c2.ends[1] == matched2 {
		c2.reverse()
	}

	a, _ := set.Get(matched1)
	b, _ := set.Get(matched2)
	seg := junctionSegment(a, b)

	segs := make([]ChainSegment, 0, len(c1.segs)+1+len(c2.segs))
	segs = append(segs, c1.segs...)
	segs = append(segs, seg)
	segs = append(segs, c2.segs...)

	return &chainState{segs: segs, ends: [2]string{c1.ends[0], c2.ends[1]}}
}

// closeChain splices a chain's two open ends to each other, producing a
// closed loop. junctionSegment orders its own arguments by position, so
// which end is passed first does not matter here.
func closeChain(c *chainState, set *breakend.Set) {
	a, _ := set.Get(c.ends[0])
	b, _ := set.Get(c.ends[1])
	c.segs = append(c.segs, junctionSegment(a, b))
	c.closed = true
}
