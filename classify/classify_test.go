package classify_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/derivchrom/svrecon/breakend"
	"github.com/derivchrom/svrecon/chainer"
	"github.com/derivchrom/svrecon/classify"
	"github.com/derivchrom/svrecon/segwalk"
)

func ws(chr string, start, end int, o segwalk.Orientation) segwalk.WalkSegment {
	return segwalk.WalkSegment{Chr: chr, Start: start, End: end, Orientation: o}
}

func TestClassify_Deletion(t *testing.T) {
	chain := segwalk.Chain{Segments: []segwalk.WalkSegment{
		ws("chr1", 0, 1000, segwalk.FORWARD),
		ws("chr1", 2000, 3000, segwalk.FORWARD),
	}}

	label := classify.Classify(classify.FromWalkChain(chain))
	assert.Equal(t, classify.DEL, label)
}

func TestClassify_Inversion(t *testing.T) {
	chain := segwalk.Chain{Segments: []segwalk.WalkSegment{
		ws("chr1", 0, 1000, segwalk.FORWARD),
		ws("chr1", 1000, 2000, segwalk.REVERSE),
		ws("chr1", 2000, 3000, segwalk.FORWARD),
	}}

	label := classify.Classify(classify.FromWalkChain(chain))
	assert.Equal(t, classify.INV, label)
}

func TestClassify_BalancedTranslocationChainIsTRA(t *testing.T) {
	chain := segwalk.Chain{Segments: []segwalk.WalkSegment{
		ws("chr1", 0, 1000, segwalk.FORWARD),
		ws("chr2", 3000, 4000, segwalk.FORWARD),
	}}

	label := classify.Classify(classify.FromWalkChain(chain))
	assert.Equal(t, classify.TRA, label)
}

func TestClassify_ClosedChainIsComplex(t *testing.T) {
	chain := segwalk.Chain{IsClosed: true, Segments: []segwalk.WalkSegment{
		ws("chr1", 1000, 2000, segwalk.FORWARD),
	}}

	label := classify.Classify(classify.FromWalkChain(chain))
	assert.Equal(t, classify.COMPLEX, label)
}

func TestClassify_MoreThanTwoSegmentsIsComplex(t *testing.T) {
	chain := segwalk.Chain{Segments: []segwalk.WalkSegment{
		ws("chr1", 0, 1000, segwalk.FORWARD),
		ws("chr1", 1000, 2000, segwalk.FORWARD),
		ws("chr1", 2000, 3000, segwalk.FORWARD),
		ws("chr1", 3000, 4000, segwalk.FORWARD),
	}}

	label := classify.Classify(classify.FromWalkChain(chain))
	assert.Equal(t, classify.COMPLEX, label)
}

func TestClassify_FromChainerChainTranslocation(t *testing.T) {
	set := breakend.NewSet()
	a, _ := breakend.New("a", "chr1", 1000, breakend.RIGHT)
	b, _ := breakend.New("b", "chr1", 5000, breakend.LEFT)
	c, _ := breakend.New("c", "chr2", 2000, breakend.RIGHT)
	d, _ := breakend.New("d", "chr2", 6000, breakend.LEFT)
	require.NoError(t, set.Add(a))
	require.NoError(t, set.Add(b))
	require.NoError(t, set.Add(c))
	require.NoError(t, set.Add(d))

	chains, err := chainer.Derive(
		[]breakend.Link{{Kind: breakend.SV, B1: "a", B2: "b"}, {Kind: breakend.SV, B1: "c", B2: "d"}},
		[]breakend.Link{{Kind: breakend.TI, B1: "b", B2: "c"}},
		set,
	)
	require.NoError(t, err)
	require.Len(t, chains, 1)

	summary, err := classify.FromChainerChain(chains[0], set)
	require.NoError(t, err)
	assert.Equal(t, classify.TRA, classify.Classify(summary))
}

func TestClassify_FromChainerChainUnresolvedEndReturnsError(t *testing.T) {
	set := breakend.NewSet()
	chain := chainer.Chain{Open: [2]string{"missing1", "missing2"}}
	_, err := classify.FromChainerChain(chain, set)
	assert.ErrorIs(t, err, classify.ErrUnresolvedOpenEnd)
}
