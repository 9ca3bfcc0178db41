package cnfilter

import (
	"sort"

	"github.com/derivchrom/svrecon/breakend"
)

// Keep reports whether the TI edge between b1 and b2 survives CN
// filtering: edges spanning two chromosomes, or no overlapping CN
// segment, always survive; otherwise the length-weighted mean of
// (weight(seg) - background) over overlapping segments must reach
// opts.Threshold.
func Keep(b1, b2 breakend.Breakend, segs []breakend.CNSegment, opts ...Option) (bool, error) {
	options := DefaultOptions()
	for _, opt := range opts {
		opt(&options)
	}

	if err := ValidateSegments(segs); err != nil {
		return false, err
	}

	if b1.Chr != b2.Chr {
		return true, nil
	}

	lo, hi := b1.Pos, b2.Pos
	if lo > hi {
		lo, hi = hi, lo
	}
	if err := ValidateInterval(lo, hi); err != nil {
		return false, err
	}

	var weightedSum, totalLen float64
	for _, seg := range segs {
		if seg.Chr != b1.Chr {
			continue
		}
		overlap := overlapLen(lo, hi, seg.Start, seg.End)
		if overlap <= 0 {
			continue
		}
		weightedSum += (options.Weight(seg) - options.BackgroundPloidy) * float64(overlap)
		totalLen += float64(overlap)
	}

	if totalLen == 0 {
		return true, nil
	}

	return weightedSum/totalLen >= options.Threshold, nil
}

// overlapLen returns the length of the overlap between [lo,hi] and
// [start,end), or 0 if they do not overlap.
func overlapLen(lo, hi, start, end int) int {
	l := max(lo, start)
	r := min(hi, end-1)
	if r < l {
		return 0
	}

	return r - l + 1
}

// FilterEdges drops TI links that fail Keep, leaving SV and DB links
// untouched (CN filtering applies only to ambiguous TI candidates).
func FilterEdges(links []breakend.Link, set *breakend.Set, segs []breakend.CNSegment, opts ...Option) ([]breakend.Link, error) {
	if err := ValidateSegments(segs); err != nil {
		return nil, err
	}

	kept := make([]breakend.Link, 0, len(links))
	for _, l := range links {
		if l.Kind != breakend.TI {
			kept = append(kept, l)
			continue
		}

		b1, ok1 := set.Get(l.B1)
		b2, ok2 := set.Get(l.B2)
		if !ok1 || !ok2 {
			continue
		}

		keep, err := Keep(b1, b2, segs, opts...)
		if err != nil {
			return nil, err
		}
		if keep {
			kept = append(kept, l)
		}
	}

	sort.Slice(kept, func(i, j int) bool {
		if kept[i].B1 != kept[j].B1 {
			return kept[i].B1 < kept[j].B1
		}
		return kept[i].B2 < kept[j].B2
	})

	return kept, nil
}
