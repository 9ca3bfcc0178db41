package segwalk

import "github.com/derivchrom/svrecon/breakend"

// Reconstruct partitions the chromosomes touched by breakends into
// reference segments, wires their ports, and walks every free port to
// produce derivative-chromosome chains. It returns the chains found, the
// indices of segments entered by no chain, and the full segmentation for
// callers that want to render or cross-reference it.
//
// Malformed input is never fatal here: a breakend with an ID already
// present in the set is dropped (first occurrence wins) rather than
// aborting reconstruction, consistent with the package's "skip what you
// can't use, never panic on parsed data" stance.
func Reconstruct(breakends []breakend.Breakend, opts ...Option) (chains []Chain, orphanIndices []int, refSegments []RefSegment, err error) {
	options := DefaultOptions()
	for _, opt := range opts {
		opt(&options)
	}

	set := breakend.NewSet()
	for _, b := range breakends {
		_ = set.Add(b)
	}

	segments, byChr := buildSegmentation(set)
	for _, seg := range segments {
		options.OnSegment(seg)
	}

	g, eligible := wirePorts(set, segments, byChr)
	entered := make([]bool, len(segments))

	var freeL, freeR []string
	for _, seg := range segments {
		lp, rp := leftPort(seg.Index), rightPort(seg.Index)
		if eligible[lp] && portDegree(g, lp) == 0 {
			freeL = append(freeL, lp)
		}
		if eligible[rp] && portDegree(g, rp) == 0 {
			freeR = append(freeR, rp)
		}
	}

	starts := make([]string, 0, len(freeL)+len(freeR))
	starts = append(starts, freeL...)
	starts = append(starts, freeR...)

	for _, p := range starts {
		if entered[segIndexOf(p)] {
			continue
		}
		options.OnChainStart(p)
		c := walkFrom(g, segments, entered, p)
		if len(c.Segments) > 0 {
			chains = append(chains, c)
			options.OnChainEnd(c)
		}
	}

	// Residual pass: segments left unentered after the free-port pass
	// belong either to a closed loop in the port graph, or to a
	// structurally unwired (deleted) stretch with no connection at all.
	// Only the former is walked; the latter falls straight through to
	// orphanIndices below.
	for _, seg := range segments {
		if entered[seg.Index] {
			continue
		}
		lp, rp := leftPort(seg.Index), rightPort(seg.Index)
		if portDegree(g, lp) == 0 && portDegree(g, rp) == 0 {
			continue
		}
		options.OnChainStart(lp)
		c := walkFrom(g, segments, entered, lp)
		if len(c.Segments) > 0 {
			chains = append(chains, c)
			options.OnChainEnd(c)
		}
	}

	for _, seg := range segments {
		if !entered[seg.Index] {
			orphanIndices = append(orphanIndices, seg.Index)
			options.OnOrphan(seg.Index)
		}
	}

	return chains, orphanIndices, segments, nil
}
