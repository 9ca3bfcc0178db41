package chainer

import (
	"math"
	"sort"

	"github.com/derivchrom/svrecon/breakend"
)

// ScoreEdges assigns a priority class and numeric tie-break score to every
// TI link, per the four-class rule: ONLY (an endpoint unique to this
// edge), ADJACENT (positionally consecutive endpoints), JCN_MATCH
// (compatible junction copy numbers), NEAREST (fallback, scored by
// inverse distance). The result is sorted by descending score, with a
// (B1,B2) tie-break for determinism.
func ScoreEdges(tiLinks []breakend.Link, set *breakend.Set, opts ...Option) ([]ScoredEdge, error) {
	options := DefaultOptions()
	for _, opt := range opts {
		opt(&options)
	}

	degree := make(map[string]int, len(tiLinks)*2)
	for _, l := range tiLinks {
		degree[l.B1]++
		degree[l.B2]++
	}

	adjacent := adjacentPairs(set)

	out := make([]ScoredEdge, 0, len(tiLinks))
	for _, l := range tiLinks {
		a, ok := set.Get(l.B1)
		if !ok {
			return nil, ErrUnresolvedEndpoint
		}
		b, ok := set.Get(l.B2)
		if !ok {
			return nil, ErrUnresolvedEndpoint
		}

		se := ScoredEdge{B1: l.B1, B2: l.B2}
		switch {
		case degree[l.B1] == 1 || degree[l.B2] == 1:
			se.Priority, se.Score = ONLY, 4
		case adjacent[pairKey(l.B1, l.B2)]:
			se.Priority, se.Score = ADJACENT, 3
		case jcnCompatible(a, b, options.JCNUncertainty):
			se.Priority, se.Score = JCN_MATCH, 2
		default:
			se.Priority, se.Score = NEAREST, 1/(1+float64(distance(a, b)))
		}

		out = append(out, se)
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		if out[i].B1 != out[j].B1 {
			return out[i].B1 < out[j].B1
		}
		return out[i].B2 < out[j].B2
	})

	return out, nil
}

// pairKey canonicalizes a breakend ID pair into an order-independent key.
func pairKey(a, b string) [2]string {
	if a <= b {
		return [2]string{a, b}
	}
	return [2]string{b, a}
}

// adjacentPairs returns the set of breakend ID pairs that are positionally
// consecutive on the same chromosome, after sorting all breakends by
// (chr, pos).
func adjacentPairs(set *breakend.Set) map[[2]string]bool {
	out := make(map[[2]string]bool)
	all := set.All()
	for i := 0; i+1 < len(all); i++ {
		if all[i].Chr != all[i+1].Chr {
			continue
		}
		out[pairKey(all[i].ID, all[i+1].ID)] = true
	}
	return out
}

// jcnCompatible reports whether a and b carry parsed JCN values within
// their combined uncertainty, falling back to fallbackUnc per endpoint
// whose JCNUnc is zero. An absent uncertainty and an explicit zero one
// are not told apart: both take the fallback.
func jcnCompatible(a, b breakend.Breakend, fallbackUnc float64) bool {
	if !a.HasJCN || !b.HasJCN {
		return false
	}
	uncA, uncB := a.JCNUnc, b.JCNUnc
	if uncA == 0 {
		uncA = fallbackUnc
	}
	if uncB == 0 {
		uncB = fallbackUnc
	}

	return math.Abs(a.JCN-b.JCN) < math.Max(0.5, uncA+uncB)
}

// distance returns the absolute position distance between two breakends,
// defined only meaningfully when they share a chromosome (guaranteed for
// candidate TI edges).
func distance(a, b breakend.Breakend) int {
	d := a.Pos - b.Pos
	if d < 0 {
		d = -d
	}
	return d
}
