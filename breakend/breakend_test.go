package breakend_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/derivchrom/svrecon/breakend"
)

func TestNew_Validation(t *testing.T) {
	_, err := breakend.New("", "chr1", 1000, breakend.RIGHT)
	require.ErrorIs(t, err, breakend.ErrEmptyID)

	_, err = breakend.New("a", "chr1", 0, breakend.RIGHT)
	require.ErrorIs(t, err, breakend.ErrBadPosition)

	b, err := breakend.New("a", "chr1", 1000, breakend.RIGHT)
	require.NoError(t, err)
	assert.Equal(t, "a", b.ID)
	assert.False(t, b.HasMate())
}

func TestSet_AddGetMate(t *testing.T) {
	s := breakend.NewSet()

	a, _ := breakend.New("a", "chr1", 1000, breakend.RIGHT)
	a.MateID = "b"
	b, _ := breakend.New("b", "chr1", 2000, breakend.LEFT)
	b.MateID = "a"

	require.NoError(t, s.Add(a))
	require.NoError(t, s.Add(b))

	err := s.Add(a)
	require.ErrorIs(t, err, breakend.ErrDuplicateID)

	got, ok := s.Get("a")
	require.True(t, ok)
	assert.Equal(t, a, got)

	mate, ok := s.Mate(a)
	require.True(t, ok)
	assert.Equal(t, "b", mate.ID)

	_, ok = s.Mate(breakend.Breakend{})
	assert.False(t, ok)
}

func TestSet_DeterministicOrder(t *testing.T) {
	s := breakend.NewSet()
	mk := func(id, chr string, pos int) breakend.Breakend {
		b, _ := breakend.New(id, chr, pos, breakend.RIGHT)
		return b
	}
	require.NoError(t, s.Add(mk("c", "chr2", 500)))
	require.NoError(t, s.Add(mk("a", "chr1", 2000)))
	require.NoError(t, s.Add(mk("b", "chr1", 1000)))

	assert.Equal(t, []string{"b", "a", "c"}, s.IDs())

	// Memoized ordering stays stable across repeated calls.
	assert.Equal(t, s.IDs(), s.IDs())
}
