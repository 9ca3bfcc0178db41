package classify

import (
	"sort"

	"github.com/derivchrom/svrecon/breakend"
	"github.com/derivchrom/svrecon/chainer"
	"github.com/derivchrom/svrecon/segwalk"
)

// FromWalkChain adapts a segwalk.Chain into a Chain summary. Segments
// counts the junctions between walked ref segments (len(walked)-1);
// AnyReverse scans every walked segment's orientation, since an
// interior-walked REVERSE (not a junction's own orientation) is what
// signals an inversion. Open-end direction is inferred from which port
// type (L or R) is free at each end of the walk: a FORWARD-entered start
// leaves its L port free (RIGHT-facing outward), and a FORWARD-exited end
// leaves its R port free (LEFT-facing outward); REVERSE mirrors both.
func FromWalkChain(c segwalk.Chain) Chain {
	if c.IsClosed || len(c.Segments) == 0 {
		return Chain{IsClosed: true}
	}

	chrSet := make(map[string]struct{}, len(c.Segments))
	anyReverse := false
	for _, seg := range c.Segments {
		chrSet[seg.Chr] = struct{}{}
		if seg.Orientation == segwalk.REVERSE {
			anyReverse = true
		}
	}

	first, last := c.Segments[0], c.Segments[len(c.Segments)-1]

	startDir, startPos := breakend.RIGHT, first.Start
	if first.Orientation == segwalk.REVERSE {
		startDir, startPos = breakend.LEFT, first.End
	}
	endDir, endPos := breakend.LEFT, last.End
	if last.Orientation == segwalk.REVERSE {
		endDir, endPos = breakend.RIGHT, last.Start
	}

	lower := OpenEnd{Chr: first.Chr, Dir: startDir}
	upper := OpenEnd{Chr: last.Chr, Dir: endDir}
	if first.Chr == last.Chr && startPos > endPos {
		lower, upper = OpenEnd{Chr: last.Chr, Dir: endDir}, OpenEnd{Chr: first.Chr, Dir: startDir}
	}

	return Chain{
		Segments:    len(c.Segments) - 1,
		Chromosomes: sortedKeys(chrSet),
		AnyReverse:  anyReverse,
		Lower:       lower,
		Upper:       upper,
	}
}

// FromChainerChain adapts a chainer.Chain into a Chain summary. Segments
// counts the chain's spliced junctions directly (chainer never materializes
// the walked ref-segment bodies segwalk does); AnyReverse scans each
// junction's own orientation; open-end directions come straight from the
// real breakend each open end names.
func FromChainerChain(c chainer.Chain, set *breakend.Set) (Chain, error) {
	if c.IsClosed {
		return Chain{IsClosed: true}, nil
	}

	lowerB, ok := set.Get(c.Open[0])
	if !ok {
		return Chain{}, ErrUnresolvedOpenEnd
	}
	upperB, ok := set.Get(c.Open[1])
	if !ok {
		return Chain{}, ErrUnresolvedOpenEnd
	}
	if lowerB.Chr == upperB.Chr && lowerB.Pos > upperB.Pos {
		lowerB, upperB = upperB, lowerB
	}

	chrSet := map[string]struct{}{lowerB.Chr: {}, upperB.Chr: {}}
	anyReverse := false
	for _, seg := range c.Segments {
		if seg.CrossChromosome {
			continue
		}
		chrSet[seg.Chr] = struct{}{}
		if seg.Orientation == segwalk.REVERSE {
			anyReverse = true
		}
	}

	return Chain{
		Segments:    len(c.Segments),
		Chromosomes: sortedKeys(chrSet),
		AnyReverse:  anyReverse,
		Lower:       OpenEnd{Chr: lowerB.Chr, Dir: lowerB.Dir},
		Upper:       OpenEnd{Chr: upperB.Chr, Dir: upperB.Dir},
	}, nil
}

func sortedKeys(m map[string]struct{}) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)

	return out
}
