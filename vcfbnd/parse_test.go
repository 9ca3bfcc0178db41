package vcfbnd_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/derivchrom/svrecon/breakend"
	"github.com/derivchrom/svrecon/vcfbnd"
)

func TestParseALT_AllFourPatterns(t *testing.T) {
	cases := []struct {
		alt      string
		dir      breakend.Direction
		mateDir  breakend.Direction
		mateChr  string
		matePos  int
	}{
		{"A[chr1:2000[", breakend.RIGHT, breakend.RIGHT, "chr1", 2000},
		{"A]chr1:2000]", breakend.RIGHT, breakend.LEFT, "chr1", 2000},
		{"]chr1:2000]A", breakend.LEFT, breakend.LEFT, "chr1", 2000},
		{"[chr1:2000[A", breakend.LEFT, breakend.RIGHT, "chr1", 2000},
	}

	for _, c := range cases {
		dir, mateChr, matePos, mateDir, ok := vcfbnd.ParseALT(c.alt)
		require.True(t, ok, "pattern %q should match", c.alt)
		assert.Equal(t, c.dir, dir, c.alt)
		assert.Equal(t, c.mateDir, mateDir, c.alt)
		assert.Equal(t, c.mateChr, mateChr, c.alt)
		assert.Equal(t, c.matePos, matePos, c.alt)
	}
}

func TestParseALT_RejectsNonBNDShape(t *testing.T) {
	_, _, _, _, ok := vcfbnd.ParseALT("<DEL>")
	assert.False(t, ok)
}

func TestParseLine_DeletionPairParsesBothBreakends(t *testing.T) {
	a, ok, err := vcfbnd.ParseLine("chr1\t1000\ta\tA[chr1:2000[\t.\t.\tPASS\tSVTYPE=BND;MATEID=b")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "a", a.ID)
	assert.Equal(t, "chr1", a.Chr)
	assert.Equal(t, 1000, a.Pos)
	assert.Equal(t, breakend.RIGHT, a.Dir)
	assert.Equal(t, "b", a.MateID)

	b, ok, err := vcfbnd.ParseLine("chr1\t2000\tb\t]chr1:1000]C\t.\t.\tPASS\tSVTYPE=BND;MATEID=a")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, breakend.LEFT, b.Dir)
	assert.Equal(t, "a", b.MateID)
}

func TestParseLine_NonBNDSvtypeIsSkipped(t *testing.T) {
	_, ok, err := vcfbnd.ParseLine("chr1\t1000\ta\t<DEL>\t.\t.\tPASS\tSVTYPE=DEL")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestParseLine_TooFewColumnsIsSkipped(t *testing.T) {
	_, ok, err := vcfbnd.ParseLine("chr1\t1000")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestParseLine_JCNFields(t *testing.T) {
	b, ok, err := vcfbnd.ParseLine("chr1\t1000\ta\tA[chr1:2000[\t.\t.\tPASS\tSVTYPE=BND;MATEID=b;JCN=2.5;JCNUNCERT=0.3")
	require.NoError(t, err)
	require.True(t, ok)
	assert.True(t, b.HasJCN)
	assert.InDelta(t, 2.5, b.JCN, 1e-9)
	assert.InDelta(t, 0.3, b.JCNUnc, 1e-9)
}

func TestParseRecords_SkipsCommentsAndBlankLines(t *testing.T) {
	input := strings.Join([]string{
		"##fileformat=VCFv4.3",
		"",
		"chr1\t1000\ta\tA[chr1:2000[\t.\t.\tPASS\tSVTYPE=BND;MATEID=b",
		"chr1\t2000\tb\t]chr1:1000]C\t.\t.\tPASS\tSVTYPE=BND;MATEID=a",
	}, "\n")

	bs, err := vcfbnd.ParseRecords(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, bs, 2)
	assert.Equal(t, "a", bs[0].ID)
	assert.Equal(t, "b", bs[1].ID)
}
