package chainer

import (
	"errors"

	"github.com/derivchrom/svrecon/segwalk"
)

// Sentinel errors, mirroring tsp's flat var-block
// convention for validation failures.
var (
	// ErrUnresolvedEndpoint indicates a Link referenced a breakend ID not
	// present in the Set passed to ScoreEdges or Derive.
	ErrUnresolvedEndpoint = errors.New("chainer: link endpoint does not resolve in breakend set")
)

// Priority is the link priority class assigned by ScoreEdges.
type Priority uint8

const (
	// NEAREST is the fallback class: no stronger signal applies.
	NEAREST Priority = iota
	// JCN_MATCH indicates both endpoints carry a compatible junction copy number.
	JCN_MATCH
	// ADJACENT indicates the endpoints are positionally consecutive breakends.
	ADJACENT
	// ONLY indicates at least one endpoint appears in exactly one candidate edge.
	ONLY
)

// String renders the priority mnemonic.
func (p Priority) String() string {
	switch p {
	case ONLY:
		return "ONLY"
	case ADJACENT:
		return "ADJACENT"
	case JCN_MATCH:
		return "JCN_MATCH"
	default:
		return "NEAREST"
	}
}

// ScoredEdge is a TI candidate edge annotated with its priority class and
// numeric tie-break score, produced by ScoreEdges.
type ScoredEdge struct {
	B1, B2   string
	Priority Priority
	Score    float64
}

// ChainSegment is one ref-segment entry spliced between two chain
// endpoints during Derive. CrossChromosome marks a point segment inserted
// between endpoints on different chromosomes, which carries no interval.
type ChainSegment struct {
	Chr             string
	Start           int
	End             int
	Orientation     segwalk.Orientation
	CrossChromosome bool
}

// Chain is a chain produced by Derive: an ordered sequence of spliced ref
// segments plus the two breakend identifiers still open at its ends.
// IsClosed reports that a TI edge joined the chain's own two open ends to
// each other (the chain was spliced onto itself); Open still names those
// two breakends.
type Chain struct {
	Segments []ChainSegment
	Open     [2]string
	IsClosed bool
}
