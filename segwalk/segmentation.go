package segwalk

import (
	"sort"

	"github.com/derivchrom/svrecon/breakend"
)

// chromSegments indexes one chromosome's reference segments by the
// boundary position that produced each port, so wiring and port-mapping
// never need to re-derive a segment from a raw position.
type chromSegments struct {
	segs    []RefSegment
	startAt map[int]int // boundary position -> index of segment whose Start == position
	endAt   map[int]int // boundary position -> index of segment whose End == position
}

// buildSegmentation partitions every chromosome present in set into
// reference segments at its distinct breakend positions, padded by PAD on
// the right, and assigns each a dense global Index in chromosome-name,
// ascending-position order.
func buildSegmentation(set *breakend.Set) ([]RefSegment, map[string]*chromSegments) {
	posByChr := make(map[string]map[int]struct{})
	for _, b := range set.All() {
		if posByChr[b.Chr] == nil {
			posByChr[b.Chr] = make(map[int]struct{})
		}
		posByChr[b.Chr][b.Pos] = struct{}{}
	}

	chrs := make([]string, 0, len(posByChr))
	for c := range posByChr {
		chrs = append(chrs, c)
	}
	sort.Strings(chrs)

	byChr := make(map[string]*chromSegments, len(chrs))
	var segments []RefSegment
	next := 0

	for _, c := range chrs {
		positions := make([]int, 0, len(posByChr[c]))
		for p := range posByChr[c] {
			positions = append(positions, p)
		}
		sort.Ints(positions)

		boundaries := make([]int, 0, len(positions)+2)
		boundaries = append(boundaries, 0)
		boundaries = append(boundaries, positions...)
		boundaries = append(boundaries, positions[len(positions)-1]+PAD)

		cs := &chromSegments{startAt: make(map[int]int), endAt: make(map[int]int)}
		for i := 0; i < len(boundaries)-1; i++ {
			seg := RefSegment{Index: next, Chr: c, Start: boundaries[i], End: boundaries[i+1]}
			cs.segs = append(cs.segs, seg)
			cs.startAt[seg.Start] = seg.Index
			cs.endAt[seg.End] = seg.Index
			segments = append(segments, seg)
			next++
		}
		byChr[c] = cs
	}

	return segments, byChr
}
