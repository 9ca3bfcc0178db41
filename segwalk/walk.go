package segwalk

// walkFrom follows the port graph one hop at a time starting at start,
// marking each entered segment in entered. It terminates when the exit
// port has no connection, or reports the chain closed when the walk
// returns to the segment it began at.
//
// The same function serves both the free-port pass and the residual-
// cycle pass: "closed" is detected identically in both cases, by
// re-encountering the starting segment's index.
func walkFrom(g *portGraph, segments []RefSegment, entered []bool, start string) Chain {
	var segs []WalkSegment
	startIdx := -1
	current := start

	for {
		i := segIndexOf(current)
		if entered[i] {
			closed := i == startIdx && len(segs) > 0
			return Chain{Segments: segs, IsClosed: closed}
		}
		entered[i] = true
		if startIdx == -1 {
			startIdx = i
		}

		seg := segments[i]
		orientation := FORWARD
		if !isLeftPort(current) {
			orientation = REVERSE
		}
		segs = append(segs, WalkSegment{
			RefIndex:    i,
			Chr:         seg.Chr,
			Start:       seg.Start,
			End:         seg.End,
			Orientation: orientation,
		})

		exit := oppositePort(current)
		neighbors := g.neighbors(exit)
		if len(neighbors) == 0 {
			return Chain{Segments: segs, IsClosed: false}
		}
		current = neighbors[0]
	}
}
